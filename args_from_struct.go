package injector

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// BindFields binds every exported field of the struct v as an instance.
// Each field is bound under its `inject` tag, or its field name when it
// has no tag; fields tagged "-" are skipped. Fields holding nil are
// skipped too, since an instance can't be nil.
//
// This is useful to bind a configuration struct in one call. v must be a
// struct or a pointer to a struct.
func (c *Container) BindFields(v interface{}) error {
	sv := structValueOf(reflect.ValueOf(v))
	if !sv.IsValid() {
		return fmt.Errorf("%w: only struct or pointer to struct types are supported, got %T",
			ErrInvalidSignature, v)
	}

	st, err := newStructType(sv.Type())
	if err != nil {
		return err
	}

	var result error
	for _, f := range st.fields {
		fv := sv.Field(f.Index).Interface()
		if isNil(fv) {
			continue
		}

		if err := c.BindInstance(f.Name, fv); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func structValueOf(rv reflect.Value) reflect.Value {
	if k := rv.Kind(); k != reflect.Struct && k != reflect.Ptr {
		return reflect.Value{}
	}

	sv := rv
	if sv.Kind() == reflect.Ptr {
		// unwrap ptr
		if sv.IsNil() {
			return reflect.Value{}
		}

		sv = sv.Elem()
		if sv.Kind() != reflect.Struct {
			return reflect.Value{}
		}
	}

	return sv
}
