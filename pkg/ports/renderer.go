package ports

import (
	"context"

	"github.com/aretw0/voie/pkg/domain"
)

// Renderer mounts views for committed contexts.
type Renderer interface {
	// Render mounts component for c; the returned handle is stored in c.View.
	Render(ctx context.Context, c *domain.Context, component any) (view any, err error)

	// Dispose unmounts the view of a context being torn down.
	Dispose(ctx context.Context, c *domain.Context) error
}

// RendererFuncs adapts plain functions to Renderer. Nil funcs are no-ops.
type RendererFuncs struct {
	RenderFunc  func(ctx context.Context, c *domain.Context, component any) (any, error)
	DisposeFunc func(ctx context.Context, c *domain.Context) error
}

func (r RendererFuncs) Render(ctx context.Context, c *domain.Context, component any) (any, error) {
	if r.RenderFunc == nil {
		return nil, nil
	}
	return r.RenderFunc(ctx, c, component)
}

func (r RendererFuncs) Dispose(ctx context.Context, c *domain.Context) error {
	if r.DisposeFunc == nil {
		return nil
	}
	return r.DisposeFunc(ctx, c)
}
