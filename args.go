package injector

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// BindOpt is an option for a single binding.
type BindOpt func(*bindBuilder) error

// Options are the resolution options of a Binding after defaults are
// applied.
type Options struct {
	// Singleton caches the first resolved value and returns it on every
	// later lookup. Defaults to true.
	Singleton bool

	// Kind is the resolution strategy. Defaults to KindInstance.
	Kind Kind
}

type bindBuilder struct {
	opts Options

	deps    []string
	hasDeps bool
}

func newBindBuilder(opts ...BindOpt) (*bindBuilder, error) {
	builder := &bindBuilder{
		opts: Options{
			Singleton: true,
			Kind:      KindInstance,
		},
	}

	var buildErr error
	for _, opt := range opts {
		if err := opt(builder); err != nil {
			buildErr = multierror.Append(buildErr, err)
		}
	}

	return builder, buildErr
}

// WithKind sets the resolution strategy of the binding. The Container bind
// methods set this themselves.
func WithKind(k Kind) BindOpt {
	return func(b *bindBuilder) error {
		if !k.valid() {
			return fmt.Errorf("unknown binding kind: %s", k)
		}

		b.opts.Kind = k
		return nil
	}
}

// Singleton sets whether the resolved value is cached. With false the
// target is materialized again on every lookup.
func Singleton(v bool) BindOpt {
	return func(b *bindBuilder) error {
		b.opts.Singleton = v
		return nil
	}
}

// Deps is the explicit dependency manifest of a class or function target.
// It is an error on an instance binding.
// The names replace any reflected names and must match them in count: one
// per exported field for a class or Params argument, one per argument for
// a plain function.
func Deps(names ...string) BindOpt {
	return func(b *bindBuilder) error {
		b.deps = append([]string{}, names...)
		b.hasDeps = true
		return nil
	}
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used by the container. By default the
// container uses hclog.L() named "injector".
func WithLogger(l hclog.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l
		}
	}
}
