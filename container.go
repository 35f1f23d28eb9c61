package injector

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Container binds logical names to targets and resolves them, along with
// their declared dependencies, by key.
//
// Each Container is an independent scope: singletons are cached per
// container and nothing is shared between containers. The container
// always answers the key Key(InjectorName) with itself.
type Container struct {
	logger   hclog.Logger
	registry *registry
}

// New creates an empty Container. The only bound key is the container's
// own "$$injector".
func New(opts ...Option) *Container {
	c := &Container{
		logger:   hclog.L().Named("injector"),
		registry: newRegistry(injectorKey),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BindInstance binds the value v under name. Resolving it returns v
// itself, so every consumer shares the same value.
func (c *Container) BindInstance(name string, v interface{}, opts ...BindOpt) error {
	return c.bind(name, v, KindInstance, opts...)
}

// BindClass binds a struct type under name. Resolving it returns a pointer
// to a new value of the type with its exported fields set from their
// dependencies. The type may be given as a reflect.Type, a struct value or
// a (possibly nil) pointer to a struct.
func (c *Container) BindClass(name string, class interface{}, opts ...BindOpt) error {
	return c.bind(name, class, KindClass, opts...)
}

// BindFunction binds a function under name. Resolving it calls the
// function with its dependencies and returns its result unchanged. A
// function that returns a pending computation, such as a wait function or a
// channel, has that value returned and cached; the container never waits
// on it.
func (c *Container) BindFunction(name string, fn interface{}, opts ...BindOpt) error {
	return c.bind(name, fn, KindFunction, opts...)
}

// BindInstances binds every value of m as an instance under its key in
// m. Names are bound in sorted order. Every failure is returned, and the
// values that could be bound stay bound.
func (c *Container) BindInstances(m map[string]interface{}) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var result error
	for _, name := range names {
		if err := c.BindInstance(name, m[name]); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func (c *Container) bind(name string, target interface{}, kind Kind, opts ...BindOpt) error {
	b, err := c.registry.bind(name, target, kind, opts...)
	if err != nil {
		return err
	}

	c.logger.Debug("bound", "key", Key(name), "kind", kind, "deps", b.deps)
	return nil
}

// GetInstance resolves key. The key is the prefixed form, such as
// Key("logger") or "$$logger".
//
// An unbound key returns nil and no error. The error is non-nil only when
// the bound target, or one of its dependencies, failed to materialize.
func (c *Container) GetInstance(key string) (interface{}, error) {
	return c.resolve(key)
}

// GetInstances resolves every key independently and returns the results
// in the same order. A failure for one key leaves nil in its position and
// doesn't affect the others; all failures are returned together.
//
// A nil keys returns ErrInvalidList.
func (c *Container) GetInstances(keys []string) ([]interface{}, error) {
	if keys == nil {
		return nil, ErrInvalidList
	}

	var result error
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		v, err := c.resolve(key)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		values[i] = v
	}

	return values, result
}

// DeleteInstance removes the binding for key along with any cached value.
// Deleting an unbound key does nothing. The container's own key can't be
// deleted.
func (c *Container) DeleteInstance(key string) error {
	if err := c.registry.unbind(key); err != nil {
		return err
	}

	c.logger.Debug("deleted", "key", key)
	return nil
}

// DeleteInstances removes the binding of every key. A nil keys, or one
// containing an empty key, returns ErrInvalidList and removes nothing.
func (c *Container) DeleteInstances(keys []string) error {
	if err := c.registry.unbindMany(keys); err != nil {
		return err
	}

	c.logger.Debug("deleted", "keys", keys)
	return nil
}

// Binding returns the binding stored under key, or nil.
func (c *Container) Binding(key string) *Binding {
	b, _ := c.registry.lookup(key)
	return b
}

// Has returns true if key is bound.
func (c *Container) Has(key string) bool {
	return c.registry.has(key)
}

// Keys returns every bound key in sorted order, including the container's
// own key.
func (c *Container) Keys() []string {
	return c.registry.keys()
}
