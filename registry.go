package injector

import "sort"

// registry maps keys to their bindings. Logical names are unique: binding
// a name twice is an error, never an overwrite.
type registry struct {
	bindings map[string]*Binding

	// reserved keys are always considered bound.
	reserved map[string]struct{}
}

func newRegistry(reserved ...string) *registry {
	r := &registry{
		bindings: make(map[string]*Binding),
		reserved: make(map[string]struct{}),
	}
	for _, k := range reserved {
		r.reserved[k] = struct{}{}
	}

	return r
}

// bind creates and stores a binding of the given kind under Key(name).
// The kind always wins over any WithKind in opts.
func (r *registry) bind(name string, target interface{}, kind Kind, opts ...BindOpt) (*Binding, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if kind == KindInstance && isNil(target) {
		return nil, ErrInvalidTarget
	}

	key := Key(name)
	if r.has(key) {
		return nil, &ConflictError{Name: name}
	}

	// Copy so the caller's slice is never written to.
	opts = append(append([]BindOpt{}, opts...), WithKind(kind))
	b, err := NewBinding(target, opts...)
	if err != nil {
		return nil, err
	}

	r.bindings[key] = b
	return b, nil
}

// unbind removes the binding for key. An absent key is not an error.
func (r *registry) unbind(key string) error {
	if key == "" {
		return ErrInvalidName
	}

	delete(r.bindings, key)
	return nil
}

// unbindMany removes the binding for every key. The whole list is
// validated before anything is removed.
func (r *registry) unbindMany(keys []string) error {
	if keys == nil {
		return ErrInvalidList
	}
	for _, k := range keys {
		if k == "" {
			return ErrInvalidList
		}
	}

	for _, k := range keys {
		delete(r.bindings, k)
	}

	return nil
}

func (r *registry) lookup(key string) (*Binding, bool) {
	b, ok := r.bindings[key]
	return b, ok
}

func (r *registry) has(key string) bool {
	if _, ok := r.reserved[key]; ok {
		return true
	}

	_, ok := r.bindings[key]
	return ok
}

// keys returns every bound key, reserved keys included, sorted.
func (r *registry) keys() []string {
	result := make([]string, 0, len(r.bindings)+len(r.reserved))
	for k := range r.reserved {
		result = append(result, k)
	}
	for k := range r.bindings {
		result = append(result, k)
	}

	sort.Strings(result)
	return result
}
