package injector

import (
	"fmt"
	"reflect"
)

// ParameterNames returns the declared dependency names of a class or
// function target, in declaration order and verbatim.
//
// For a struct type (given as a reflect.Type, a struct value or a pointer
// to a struct) these are the exported fields. For a function these are the
// fields of its Params struct argument. A function with no arguments and a
// struct with no exported fields both return an empty list. A function
// taking plain arguments has no declared names and returns
// ErrUndeclaredParams; bind it with Deps instead.
func ParameterNames(target interface{}) ([]string, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target is nil", ErrInvalidSignature)
	}

	if _, ok := target.(reflect.Type); !ok && reflect.TypeOf(target).Kind() == reflect.Func {
		f, err := newFuncTarget(target, nil, false)
		if err != nil {
			return nil, err
		}

		return f.names, nil
	}

	typ, err := classType(target)
	if err != nil {
		return nil, err
	}

	st, err := newStructType(typ)
	if err != nil {
		return nil, err
	}

	return st.names(), nil
}
