package injector

import "fmt"

// Kind is the resolution strategy of a Binding.
type Kind uint

const (
	// KindClass constructs a new value of a struct type, setting its
	// exported fields from the resolved dependencies.
	KindClass Kind = iota

	// KindFunction calls a function with the resolved dependencies and
	// uses its return value.
	KindFunction

	// KindInstance returns the bound value unchanged.
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("Kind(%d)", uint(k))
	}
}

func (k Kind) valid() bool {
	return k <= KindInstance
}
