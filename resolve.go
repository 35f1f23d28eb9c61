package injector

// resolve returns the value bound to key, materializing it if needed.
//
// A key with no binding resolves to nil with no error. Dependencies are
// resolved depth-first in declared order using the names exactly as
// declared, and a dependency that resolves to nil leaves the zero value
// in its position. Only a failure to materialize a bound target is an
// error.
func (c *Container) resolve(key string) (interface{}, error) {
	log := c.logger

	// The container always answers its own key. It is never stored in the
	// registry.
	if key == injectorKey {
		log.Trace("resolved to the container", "key", key)
		return c, nil
	}

	b, ok := c.registry.lookup(key)
	if !ok {
		log.Trace("no binding, resolving to nil", "key", key)
		return nil, nil
	}

	if v, ok := b.Cached(); ok {
		log.Trace("singleton cache hit", "key", key)
		return v, nil
	}

	args := make([]interface{}, len(b.deps))
	if len(b.deps) > 0 {
		log.Trace("resolving dependencies", "key", key, "kind", b.Kind(), "deps", b.deps)
	}
	for i, name := range b.deps {
		v, err := c.resolve(name)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	v, err := b.materialize(args)
	if err != nil {
		log.Trace("error materializing binding", "key", key, "kind", b.Kind(), "err", err)
		return nil, &ResolveError{Key: key, Err: err}
	}

	// The cache is written only after materialization completes.
	b.cache(v)
	log.Trace("materialized binding", "key", key, "kind", b.Kind(),
		"singleton", b.Options().Singleton)
	return v, nil
}
