package runtime

import (
	"context"
	"log/slog"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/ports"
)

// DefaultMaxRedirects bounds redirect hops per transition.
const DefaultMaxRedirects = 10

// UncaughtHandler is the terminal sink for failed transitions. Returning nil
// swallows the failure; returning an error makes Go return it.
type UncaughtHandler func(ctx context.Context, err error) error

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxRedirects sets the redirect limit. Non-positive values keep the default.
func WithMaxRedirects(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxRedirects = n
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) ManagerOption {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithRenderer configures the view renderer invoked on commit and teardown.
func WithRenderer(r ports.Renderer) ManagerOption {
	return func(m *Manager) {
		m.renderer = r
	}
}

// WithUncaughtHandler replaces the default policy, which returns the error unchanged.
func WithUncaughtHandler(h UncaughtHandler) ManagerOption {
	return func(m *Manager) {
		m.uncaught = h
	}
}

// WithRegistry shares an existing registry instead of creating one.
func WithRegistry(r *Registry) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}
