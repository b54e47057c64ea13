package maze

import "context"

// Option configures optional behavior of Build and Solve.
type Option func(*Options)

// Options holds configurable parameters for graph discovery.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered.
	// Returning an error aborts the build with that error.
	OnVisit func(v Vertex) error

	// OnExit, if non-nil, is invoked after all four directions of a vertex
	// have been explored, right after it is inserted into the index.
	// Returning an error aborts the build.
	OnExit func(v Vertex) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the discovery hook.
func WithOnVisit(fn func(v Vertex) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the completion hook.
func WithOnExit(fn func(v Vertex) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}
