package injector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryBind(t *testing.T) {
	require := require.New(t)

	r := newRegistry(injectorKey)
	b, err := r.bind("logger", Logger{}, KindClass)
	require.NoError(err)
	require.Equal(KindClass, b.Kind())

	actual, ok := r.lookup("$$logger")
	require.True(ok)
	require.Same(b, actual)

	// Lookups are by key, never by logical name.
	_, ok = r.lookup("logger")
	require.False(ok)

	// The kind given to bind wins over options.
	b, err = r.bind("value", "v", KindInstance, WithKind(KindClass))
	require.NoError(err)
	require.Equal(KindInstance, b.Kind())

	_, err = r.bind("logger", "v", KindInstance)
	require.True(errors.Is(err, ErrNameConflict))

	_, err = r.bind(InjectorName, "v", KindInstance)
	require.True(errors.Is(err, ErrNameConflict))

	require.Equal([]string{"$$injector", "$$logger", "$$value"}, r.keys())
}

func TestRegistryBindKeepsCallerOptions(t *testing.T) {
	require := require.New(t)

	// Spare capacity after the last option must not be written to.
	opts := make([]BindOpt, 1, 2)
	opts[0] = Singleton(false)

	r := newRegistry(injectorKey)
	b, err := r.bind("logger", Logger{}, KindClass, opts...)
	require.NoError(err)
	require.False(b.Options().Singleton)
	require.Nil(opts[:2][1])
}

func TestRegistryUnbind(t *testing.T) {
	require := require.New(t)

	r := newRegistry(injectorKey)
	_, err := r.bind("a", "a", KindInstance)
	require.NoError(err)
	_, err = r.bind("b", "b", KindInstance)
	require.NoError(err)
	_, err = r.bind("c", "c", KindInstance)
	require.NoError(err)

	require.NoError(r.unbind("$$a"))
	require.False(r.has("$$a"))
	require.NoError(r.unbind("$$a"))
	require.Equal(ErrInvalidName, r.unbind(""))

	require.NoError(r.unbindMany([]string{"$$b", "$$c", "$$missing"}))
	require.False(r.has("$$b"))
	require.False(r.has("$$c"))
	require.Equal(ErrInvalidList, r.unbindMany(nil))

	// Reserved keys stay.
	require.NoError(r.unbind(injectorKey))
	require.True(r.has(injectorKey))
}
