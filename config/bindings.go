package config

import (
	"fmt"

	"github.com/delegate-go/delegate"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// Binding declares one delegation slot: the attribute it fills and
// the action resolved on the target when the slot is invoked.
type Binding struct {
	Slot   string `path:"slot"   validate:"required"`
	Action string `path:"action" validate:"required"`
	Label  string `path:"label"`
}

var validate = validator.New()

// Load reads the bindings at path and connects each one against
// target.  Connections are returned keyed by slot and stay lazy:
// loading never invokes an action, and an action name the target
// does not expose only surfaces when that slot is invoked.
func Load(
	provider Provider,
	path     string,
	target   any,
) (map[string]*delegate.Connection, error) {
	if provider == nil {
		panic("provider cannot be nil")
	}
	var bindings []Binding
	if err := provider.Unmarshal(path, &bindings); err != nil {
		return nil, fmt.Errorf("config: unable to load bindings at %q: %w", path, err)
	}
	var invalid error
	connections := make(map[string]*delegate.Connection, len(bindings))
	for i, binding := range bindings {
		if err := validate.Struct(binding); err != nil {
			invalid = multierror.Append(invalid,
				fmt.Errorf("binding %d: %w", i, err))
			continue
		}
		if _, dup := connections[binding.Slot]; dup {
			invalid = multierror.Append(invalid,
				fmt.Errorf("binding %d: duplicate slot %q", i, binding.Slot))
			continue
		}
		conn, err := delegate.ConnectWith(
			delegate.Options{Label: bindingLabel(binding)},
			target, binding.Action)
		if err != nil {
			invalid = multierror.Append(invalid,
				fmt.Errorf("binding %d (%s): %w", i, binding.Slot, err))
			continue
		}
		connections[binding.Slot] = conn
	}
	if invalid != nil {
		return nil, invalid
	}
	return connections, nil
}

func bindingLabel(b Binding) string {
	if b.Label != "" {
		return b.Label
	}
	return b.Slot
}
