package polyhedron

import "github.com/ddpoly/ppl/internal/polytrace"

// config is the immutable set of optional settings resolved once at
// construction time.
type config struct {
	trace polytrace.Hook
}

// Option configures an optional behavior of a polyhedron constructor.
type Option func(*config)

// WithTrace attaches a polytrace.Hook the polyhedron calls at each
// conversion/minimization step. The default is the no-op zero Hook.
func WithTrace(h polytrace.Hook) Option {
	return func(c *config) { c.trace = h }
}

func resolveOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
