package delegate

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/delegate-go/delegate/internal"
)

// validateAction checks that typ can serve as a delegated action:
// at least one input to receive the caller and an output shape that
// normalizes to a single result and an optional trailing error.
func validateAction(typ reflect.Type) error {
	if typ.NumIn() == 0 {
		return errors.New("an action must accept the caller as its first argument")
	}
	switch typ.NumOut() {
	case 0, 1:
	case 2:
		if typ.Out(1) != internal.ErrorType {
			return fmt.Errorf(
				"the second output of an action must be an error, found %v",
				typ.Out(1))
		}
	default:
		return fmt.Errorf(
			"an action can produce at most one result and one error, found %d outputs",
			typ.NumOut())
	}
	return nil
}

// callAction calls the function stored in the fun argument.
// It prepends caller to args to supply the input arguments and
// normalizes the outputs to a single result and optional error.
func callAction(
	fun    reflect.Value,
	caller any,
	args   []any,
) (any, error) {
	typ := fun.Type()
	if err := validateAction(typ); err != nil {
		return nil, err
	}
	numIn := typ.NumIn()
	fixed := numIn
	if typ.IsVariadic() {
		fixed = numIn - 1
	}
	callArgs := make([]any, len(args)+1)
	callArgs[0] = caller
	copy(callArgs[1:], args)
	if len(callArgs) < fixed {
		return nil, fmt.Errorf(
			"action expects at least %d arguments, received %d",
			fixed, len(callArgs))
	}
	if !typ.IsVariadic() && len(callArgs) > numIn {
		return nil, fmt.Errorf(
			"action expects %d arguments, received %d",
			numIn, len(callArgs))
	}
	in := make([]reflect.Value, len(callArgs))
	for i, a := range callArgs {
		var pt reflect.Type
		if i < fixed {
			pt = typ.In(i)
		} else {
			pt = typ.In(numIn - 1).Elem()
		}
		av, err := coerceArg(a, pt, i)
		if err != nil {
			return nil, err
		}
		in[i] = av
	}
	return normalizeOutput(fun.Call(in))
}

// coerceArg maps an untyped nil to the zero value of nilable
// parameter types and rejects unassignable arguments with an
// error instead of a reflect panic.
func coerceArg(arg any, typ reflect.Type, index int) (reflect.Value, error) {
	if arg == nil {
		switch typ.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface,
			reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(typ), nil
		default:
			return reflect.Value{}, fmt.Errorf(
				"argument %d: nil is not assignable to %v", index, typ)
		}
	}
	av := reflect.ValueOf(arg)
	if !av.Type().AssignableTo(typ) {
		return reflect.Value{}, fmt.Errorf(
			"argument %d: %v is not assignable to %v", index, av.Type(), typ)
	}
	return av, nil
}

// normalizeOutput reduces the declared outputs to (result, error).
// A sole output declared as error is treated as the error, not the
// result, so actions performing only side effects read naturally.
func normalizeOutput(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type() == internal.ErrorType {
			err, _ := out[0].Interface().(error)
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
}
