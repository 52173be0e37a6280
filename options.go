package delegate

import "github.com/imdario/mergo"

// OptionBool should be used in option structs instead of bool to
// be able to represent a bool not set.  Otherwise, the zero value
// of a bool cannot be distinguished from false.
type OptionBool byte

const (
	OptionNone OptionBool = iota
	OptionFalse
	OptionTrue
)

func (b OptionBool) Bool() bool {
	switch b {
	case OptionFalse:
		return false
	case OptionTrue:
		return true
	default:
		panic("only OptionFalse and OptionTrue can convert to a bool")
	}
}

// Options represent extensible connection settings.
type Options struct {
	// Label identifies the connection in diagnostics.
	Label string

	// RequireCaller rejects a nil caller at invocation.
	// Left unset, the connection accepts whatever caller it is given.
	RequireCaller OptionBool
}

// MergeOptions fills the unset fields of into from from.
func MergeOptions(from any, into any) bool {
	return mergo.Merge(into, from) == nil
}
