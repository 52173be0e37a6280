package delegate

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// ConnectorArgumentError reports factory arguments that cannot
// form a valid connection.
type ConnectorArgumentError struct {
	args   []any
	reason error
}

func (e *ConnectorArgumentError) Args() []any {
	return e.args
}

func (e *ConnectorArgumentError) Error() string {
	return fmt.Sprintf("invalid connector arguments: %v", e.reason)
}

func (e *ConnectorArgumentError) Unwrap() error {
	return e.reason
}

// Connect builds a Connection from one of two binding forms.
//
//	Connect(target, actionName) resolves actionName on target each
//	time the connection is invoked and calls
//	target.actionName(caller, args...).
//
//	Connect(callable) invokes callable(caller, args...) where the
//	callable's first parameter receives the caller.
//
// The binding itself is validated immediately; resolution of a named
// action is deferred to each invocation so the target may still be
// partially initialized when the connection is created.
func Connect(binding ...any) (*Connection, error) {
	return ConnectWith(Options{}, binding...)
}

// ConnectWith is Connect with explicit options.
func ConnectWith(options Options, binding ...any) (*Connection, error) {
	switch len(binding) {
	case 1:
		return connectFunc(options, binding[0])
	case 2:
		return connectMethod(options, binding[0], binding[1])
	default:
		return nil, &ConnectorArgumentError{binding, fmt.Errorf(
			"expected (target, actionName) or (callable), received %d arguments",
			len(binding))}
	}
}

func connectFunc(options Options, callable any) (*Connection, error) {
	if callable == nil {
		return nil, &ConnectorArgumentError{[]any{callable},
			errors.New("callable cannot be nil")}
	}
	fun := reflect.ValueOf(callable)
	if fun.Kind() != reflect.Func {
		return nil, &ConnectorArgumentError{[]any{callable}, fmt.Errorf(
			"%T is not callable", callable)}
	}
	if err := validateAction(fun.Type()); err != nil {
		return nil, &ConnectorArgumentError{[]any{callable}, err}
	}
	return newConnection(options, func(caller any, args ...any) (any, error) {
		return callAction(fun, caller, args)
	}), nil
}

func connectMethod(options Options, target, action any) (*Connection, error) {
	var invalid error
	name, ok := action.(string)
	if !ok {
		invalid = multierror.Append(invalid, fmt.Errorf(
			"action name must be a string, received %T", action))
	} else if name == "" {
		invalid = multierror.Append(invalid,
			errors.New("action name cannot be empty"))
	} else if !exportedName(name) {
		invalid = multierror.Append(invalid, fmt.Errorf(
			"action name %q must be an exported identifier", name))
	}
	if target == nil {
		invalid = multierror.Append(invalid,
			errors.New("target cannot be nil"))
	} else if tv := reflect.ValueOf(target); tv.Kind() == reflect.Func {
		invalid = multierror.Append(invalid, fmt.Errorf(
			"target %v cannot be a function", tv.Type()))
	}
	if invalid != nil {
		return nil, &ConnectorArgumentError{[]any{target, action}, invalid}
	}
	tv := reflect.ValueOf(target)
	return newConnection(options, func(caller any, args ...any) (any, error) {
		method := tv.MethodByName(name)
		if !method.IsValid() {
			return nil, &UnresolvedActionError{tv.Type(), name}
		}
		return callAction(method, caller, args)
	}), nil
}

func exportedName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
