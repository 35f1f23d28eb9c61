package injector

import (
	"fmt"
	"reflect"
	"runtime"
)

// funcTarget is a function bound with KindFunction along with the
// dependency names of its arguments.
//
// A function can take its dependencies in two ways. If its only argument
// is a struct (or pointer to a struct) that embeds Params, the fields of
// that struct are the dependencies. Otherwise every argument is a
// dependency and the names come from an explicit manifest (see Deps),
// since Go reflection doesn't expose parameter names.
//
// A function may return nothing, one value, or one value followed by an
// error. A non-nil error fails the resolution.
type funcTarget struct {
	fn reflect.Value

	// in is set when the function takes a Params struct.
	in    *structType
	inPtr bool

	names   []string
	hasErr  bool
	numVals int
}

func newFuncTarget(f interface{}, manifest []string, hasManifest bool) (*funcTarget, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: fn is nil", ErrInvalidSignature)
	}

	fv := reflect.ValueOf(f)
	ft := fv.Type()
	if k := ft.Kind(); k != reflect.Func {
		return nil, fmt.Errorf("%w: fn should be a function, got %s", ErrInvalidSignature, k)
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("%w: fn is nil", ErrInvalidSignature)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic functions are not supported", ErrInvalidSignature)
	}

	result := &funcTarget{fn: fv}

	// Get our output parameters. If the last parameter is an error type
	// then it is the error result and not a value.
	numOut := ft.NumOut()
	if numOut >= 1 && ft.Out(numOut-1) == errType {
		result.hasErr = true
		numOut--
	}
	if numOut > 1 {
		return nil, fmt.Errorf("%w: fn must return at most one value and an error, got %d values",
			ErrInvalidSignature, numOut)
	}
	result.numVals = numOut

	switch {
	case ft.NumIn() == 1 && isParamsStruct(ft.In(0)):
		typ := ft.In(0)
		if typ.Kind() == reflect.Ptr {
			result.inPtr = true
			typ = typ.Elem()
		}

		in, err := newStructType(typ)
		if err != nil {
			return nil, err
		}
		result.in = in
		result.names = in.names()

	case ft.NumIn() == 0:
		result.names = []string{}

	case !hasManifest:
		return nil, fmt.Errorf("%w: %s takes %d arguments, use Deps to name them",
			ErrUndeclaredParams, result.Name(), ft.NumIn())
	}

	if hasManifest {
		want := ft.NumIn()
		if result.in != nil {
			want = len(result.in.fields)
		}
		if len(manifest) != want {
			return nil, fmt.Errorf("%w: %s declares %d dependencies, got %d names",
				ErrInvalidSignature, result.Name(), want, len(manifest))
		}

		result.names = append([]string{}, manifest...)
		if result.in != nil {
			for i, name := range result.names {
				result.in.fields[i].Name = name
			}
		}
	}

	return result, nil
}

// Name returns the name of the function, or its type signature if no
// friendly name can be found.
func (f *funcTarget) Name() string {
	if rfunc := runtime.FuncForPC(f.fn.Pointer()); rfunc != nil {
		if name := rfunc.Name(); name != "" {
			return name
		}
	}

	return f.fn.Type().String()
}

// call calls the function with args, which is aligned with names.
func (f *funcTarget) call(args []interface{}) (interface{}, error) {
	var in []reflect.Value
	if f.in != nil {
		v, err := f.in.build(args)
		if err != nil {
			return nil, err
		}
		if f.inPtr {
			v = v.Addr()
		}

		in = []reflect.Value{v}
	} else {
		ft := f.fn.Type()
		in = make([]reflect.Value, ft.NumIn())
		for i := range in {
			in[i] = reflect.New(ft.In(i)).Elem()
			if err := assign(in[i], args[i], f.names[i]); err != nil {
				return nil, err
			}
		}
	}

	r := callResult{out: f.fn.Call(in), hasErr: f.hasErr, numVals: f.numVals}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return r.Value(), nil
}

// errType is used for comparison in newFuncTarget
var errType = reflect.TypeOf((*error)(nil)).Elem()
