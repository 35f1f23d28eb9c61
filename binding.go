package injector

import (
	"fmt"
	"reflect"
)

// Binding is a single bound target along with how to resolve it. It also
// owns the cached value of a singleton once it has been resolved.
//
// The kind of a Binding is fixed when it is created.
type Binding struct {
	target interface{}
	opts   Options
	deps   []string

	// Exactly one of these is set for class and function kinds.
	class *structType
	fn    *funcTarget

	cached bool
	value  interface{}
}

// NewBinding creates a Binding for target. Without options the binding is
// a singleton instance binding.
//
// Class and function targets are reflected on here, so a target with a
// shape that can't be materialized is rejected immediately.
func NewBinding(target interface{}, opts ...BindOpt) (*Binding, error) {
	builder, err := newBindBuilder(opts...)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		target: target,
		opts:   builder.opts,
	}

	switch b.opts.Kind {
	case KindInstance:
		if isNil(target) {
			return nil, ErrInvalidTarget
		}
		if builder.hasDeps {
			return nil, fmt.Errorf("%w: instances have no dependencies", ErrInvalidSignature)
		}

	case KindClass:
		typ, err := classType(target)
		if err != nil {
			return nil, err
		}

		b.class, err = newStructType(typ)
		if err != nil {
			return nil, err
		}

		b.deps = b.class.names()
		if builder.hasDeps {
			if len(builder.deps) != len(b.deps) {
				return nil, fmt.Errorf("%w: %s declares %d dependencies, got %d names",
					ErrInvalidSignature, typ, len(b.deps), len(builder.deps))
			}

			for i, name := range builder.deps {
				b.class.fields[i].Name = name
			}
			b.deps = builder.deps
		}

	case KindFunction:
		b.fn, err = newFuncTarget(target, builder.deps, builder.hasDeps)
		if err != nil {
			return nil, err
		}

		b.deps = b.fn.names
	}

	return b, nil
}

// Options returns the options of the binding with defaults applied.
func (b *Binding) Options() Options { return b.opts }

// Kind returns the resolution strategy of the binding.
func (b *Binding) Kind() Kind { return b.opts.Kind }

// Attribute returns the bound target exactly as it was given.
func (b *Binding) Attribute() interface{} { return b.target }

// Deps returns the declared dependency names in order. Instance bindings
// have none.
func (b *Binding) Deps() []string {
	return append([]string{}, b.deps...)
}

// Cached returns the cached value, if one has been stored.
func (b *Binding) Cached() (interface{}, bool) {
	return b.value, b.cached
}

func (b *Binding) cache(v interface{}) {
	if !b.opts.Singleton {
		return
	}

	b.value = v
	b.cached = true
}

// materialize produces the value of the binding from the resolved
// dependencies, which are aligned with Deps.
func (b *Binding) materialize(args []interface{}) (interface{}, error) {
	switch b.opts.Kind {
	case KindClass:
		v, err := b.class.build(args)
		if err != nil {
			return nil, err
		}

		return v.Addr().Interface(), nil

	case KindFunction:
		return b.fn.call(args)

	case KindInstance:
		return b.target, nil

	default:
		panic(fmt.Sprintf("unknown binding kind: %s", b.opts.Kind))
	}
}

// isNil returns true for nil and for typed nil values of nillable kinds.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	}

	return false
}
