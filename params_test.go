package injector

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterNames(t *testing.T) {
	cases := []struct {
		Name     string
		Target   interface{}
		Expected []string
		Err      error
	}{
		{
			"class with dependencies",
			Router{},
			[]string{"$$logger"},
			nil,
		},

		{
			"class pointer",
			(*Router)(nil),
			[]string{"$$logger"},
			nil,
		},

		{
			"class type",
			reflect.TypeOf(Util{}),
			[]string{"$$logger", "$$router", "$$async"},
			nil,
		},

		{
			"class without dependencies",
			Logger{},
			[]string{},
			nil,
		},

		{
			"untagged, skipped and unexported fields",
			struct {
				Plain  int
				Tagged int `inject:"$$tagged"`
				Skip   int `inject:"-"`
				hidden int
			}{},
			[]string{"Plain", "$$tagged"},
			nil,
		},

		{
			"embedded struct",
			Son{},
			[]string{},
			nil,
		},

		{
			"embedded pointer",
			Daughter{},
			[]string{},
			nil,
		},

		{
			"tagged embedded pointer",
			Heir{},
			[]string{"$$father"},
			nil,
		},

		{
			"params function",
			paramsFunc,
			[]string{"$$logger"},
			nil,
		},

		{
			"function without arguments",
			func() string { return "test" },
			[]string{},
			nil,
		},

		{
			"function returning a channel",
			func(in struct {
				Params

				Logger *Logger `inject:"$$logger"`
			}) <-chan string {
				return nil
			},
			[]string{"$$logger"},
			nil,
		},

		{
			"function with plain arguments",
			testFunc,
			nil,
			ErrUndeclaredParams,
		},

		{
			"primitive",
			42,
			nil,
			ErrInvalidSignature,
		},

		{
			"nil",
			nil,
			nil,
			ErrInvalidSignature,
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			actual, err := ParameterNames(tt.Target)
			if tt.Err != nil {
				require.True(errors.Is(err, tt.Err), "unexpected error: %v", err)
				return
			}

			require.NoError(err)
			require.Equal(tt.Expected, actual)
		})
	}
}

func TestIsParamsStruct(t *testing.T) {
	cases := []struct {
		Name     string
		Test     interface{}
		Expected bool
	}{
		{
			"primitive",
			7,
			false,
		},

		{
			"plain struct",
			Router{},
			false,
		},

		{
			"struct embeds",
			struct {
				Params
			}{},
			true,
		},

		{
			"pointer to struct embeds",
			&struct {
				Params
			}{},
			true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			actual := isParamsStruct(reflect.TypeOf(tt.Test))
			require.Equal(tt.Expected, actual)
		})
	}
}
