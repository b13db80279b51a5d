package loaders

import "context"

// Loader turns an entry point's module identifier into a live value. The
// resolution layer treats loaders as opaque: side effects and failure modes
// belong to the implementation and propagate to the caller unchanged.
type Loader interface {
	Load(ctx context.Context, target string, args ...any) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, target string, args ...any) (any, error)

func (f LoaderFunc) Load(ctx context.Context, target string, args ...any) (any, error) {
	return f(ctx, target, args...)
}
