// Package injector is a name-based dependency-injection container for Go.
//
// A Container binds logical names to producers of values. There are three
// kinds of producer: a struct type that is constructed (BindClass), a
// function that is called (BindFunction) and a plain value that is returned
// as-is (BindInstance). Every binding is stored under the key Prefix+name,
// for example "$$logger" for the name "logger".
//
// Consumers declare their dependencies by name. For a struct type, every
// exported field is a dependency and its name is the `inject` tag or, when
// there is no tag, the field name. For a function, the names come either from
// a single struct argument that embeds Params or from an explicit manifest
// given with Deps. Go reflection doesn't expose function parameter names, so
// one of the two is required for functions that take arguments.
//
// Declared names are matched verbatim against the bound keys. A name that
// isn't bound (including any name missing the "$$" prefix) resolves to nil,
// so the consumer receives the zero value in that position. This is not an
// error.
//
// Bindings are singletons by default: the first resolution is cached in the
// binding and returned on every later lookup.
//
// An asynchronous function returns its pending computation, and the
// container returns and caches that value as-is without waiting on it.
// Since every later lookup gets the same value, return something that can
// be waited on more than once, such as a function built with
// sync.OnceValue:
//
//	func fetch() func() string {
//		ch := make(chan string, 1)
//		go func() { ch <- load() }()
//		return sync.OnceValue(func() string { return <-ch })
//	}
//
// A bare channel can only be received from once.
//
// The container always answers the key "$$injector" with itself, so any
// producer may depend on the container.
//
// A Container is not safe for concurrent use.
package injector
