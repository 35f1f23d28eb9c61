package injector

import (
	"fmt"
	"reflect"
	"strings"
)

// tagName is the struct tag used to give a field its dependency name.
const tagName = "inject"

// Params is embedded in the single struct argument of a function to declare
// its dependencies by field, the same way a class target does:
//
//	func newRouter(in struct {
//		injector.Params
//
//		Logger *Logger `inject:"$$logger"`
//	}) *Router
//
// The embedded Params field itself is not a dependency.
type Params struct{}

var paramsType = reflect.TypeOf(Params{})

// structType is the parsed dependency layout of a struct type.
type structType struct {
	typ reflect.Type

	// fields are the dependency fields in declaration order.
	fields []*structField
}

type structField struct {
	// Index is the index using reflect.Value.Field that can be used to
	// set this field on typ.
	Index int

	// Name is the declared dependency name.
	Name string

	// Type is the type of this field.
	Type reflect.Type
}

func newStructType(typ reflect.Type) (*structType, error) {
	// Verify our value is a struct
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: struct expected, got %s", ErrInvalidSignature, typ.Kind())
	}

	result := &structType{typ: typ}
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)

		// Ignore unexported fields and our marker
		if sf.PkgPath != "" || isParamsField(sf) {
			continue
		}

		// Embedded structs are part of the type, not dependencies, unless
		// they are tagged.
		tag, hasTag := sf.Tag.Lookup(tagName)
		if sf.Anonymous && !hasTag {
			continue
		}

		// name is the name of the dependency, verbatim.
		name := sf.Name
		if hasTag {
			tag = strings.TrimSpace(tag)
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		result.fields = append(result.fields, &structField{
			Index: i,
			Name:  name,
			Type:  sf.Type,
		})
	}

	return result, nil
}

// names returns the declared dependency names in field order.
func (t *structType) names() []string {
	result := make([]string, len(t.fields))
	for i, f := range t.fields {
		result[i] = f.Name
	}

	return result
}

// build returns a new addressable value of the struct type with the
// dependency fields set from args, which is aligned with fields.
func (t *structType) build(args []interface{}) (reflect.Value, error) {
	v := reflect.New(t.typ).Elem()
	for i, f := range t.fields {
		if err := assign(v.Field(f.Index), args[i], f.Name); err != nil {
			return reflect.Value{}, err
		}
	}

	return v, nil
}

// classType returns the struct type described by a class target. The
// target may be a reflect.Type, a struct value, or a (possibly nil)
// pointer to a struct.
func classType(target interface{}) (reflect.Type, error) {
	var typ reflect.Type
	switch t := target.(type) {
	case nil:
		return nil, fmt.Errorf("%w: class target is nil", ErrInvalidSignature)
	case reflect.Type:
		typ = t
	default:
		typ = reflect.TypeOf(target)
	}

	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: class should be a struct, got %s", ErrInvalidSignature, typ.Kind())
	}

	return typ, nil
}

// isParamsStruct returns true if t is a struct, or pointer to a struct,
// that embeds Params.
func isParamsStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < t.NumField(); i++ {
		if isParamsField(t.Field(i)) {
			return true
		}
	}

	return false
}

func isParamsField(f reflect.StructField) bool {
	return f.Anonymous && f.Type == paramsType
}

// assign sets dst from a resolved dependency. A nil dependency leaves the
// zero value in place.
func assign(dst reflect.Value, v interface{}, name string) error {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("dependency %q of type %s is not assignable to %s",
			name, rv.Type(), dst.Type())
	}

	dst.Set(rv)
	return nil
}
