package delegate

import (
	"fmt"
	"reflect"
)

type (
	// Action is the canonical shape of a delegated unit of work.
	// The host invoking the connection is always the first argument.
	Action func(caller any, args ...any) (any, error)

	// Connection binds a single attribute slot to a deferred action.
	// The wrapped action is fixed at construction and only runs when
	// the owning host invokes the connection.  Hosts share a
	// connection by reference since the action may capture a live
	// target that must not be duplicated.
	Connection struct {
		action Action
		label  string
		strict bool
	}

	// UnresolvedActionError reports a named action missing from its
	// target when the connection was invoked.
	UnresolvedActionError struct {
		target reflect.Type
		name   string
	}
)

// New builds a Connection directly from a canonical action.
// Most connections are built by Connect instead.
func New(action Action, opts ...Options) *Connection {
	if action == nil {
		panic("action cannot be nil")
	}
	var options Options
	for _, o := range opts {
		MergeOptions(o, &options)
	}
	return newConnection(options, action)
}

// Invoke runs the wrapped action with caller prepended to args.
// The result and error are returned exactly as the action produced
// them.  Nothing is cached, so every invocation runs the action again.
func (c *Connection) Invoke(caller any, args ...any) (any, error) {
	if c.strict && caller == nil {
		return nil, fmt.Errorf("connection %q requires a caller", c.describe())
	}
	return c.action(caller, args...)
}

// Bind returns a plain function over Invoke so the connection can be
// passed around and called like any other function value.
func (c *Connection) Bind() Action {
	return c.Invoke
}

// Label identifies the connection in diagnostics.
// It has no behavioral significance.
func (c *Connection) Label() string {
	return c.label
}

func (c *Connection) describe() string {
	if c.label != "" {
		return c.label
	}
	return "connection"
}

func newConnection(options Options, action Action) *Connection {
	return &Connection{
		action: action,
		label:  options.Label,
		strict: options.RequireCaller == OptionTrue,
	}
}

// UnresolvedActionError

func (e *UnresolvedActionError) Target() reflect.Type {
	return e.target
}

func (e *UnresolvedActionError) Name() string {
	return e.name
}

func (e *UnresolvedActionError) Error() string {
	return fmt.Sprintf("unresolved action %q on target %v", e.name, e.target)
}
