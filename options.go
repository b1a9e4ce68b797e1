package voie

import (
	"log/slog"

	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/ports"
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// UncaughtHandler is the terminal sink for failed transitions.
type UncaughtHandler = runtime.UncaughtHandler

// WithHistory binds the engine to a history provider. Without it an in-memory
// history is used.
func WithHistory(h ports.History) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// WithBase sets the href prefix of the default in-memory history.
func WithBase(base string) Option {
	return func(e *Engine) {
		e.base = base
	}
}

// WithMaxRedirects bounds redirect hops per transition (default 10).
func WithMaxRedirects(n int) Option {
	return func(e *Engine) {
		e.managerOpts = append(e.managerOpts, runtime.WithMaxRedirects(n))
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.managerOpts = append(e.managerOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithRenderer configures the view renderer.
func WithRenderer(r ports.Renderer) Option {
	return func(e *Engine) {
		e.managerOpts = append(e.managerOpts, runtime.WithRenderer(r))
	}
}

// WithUncaughtHandler replaces the default failure policy (return the error).
func WithUncaughtHandler(h UncaughtHandler) Option {
	return func(e *Engine) {
		e.managerOpts = append(e.managerOpts, runtime.WithUncaughtHandler(h))
	}
}

// WithStates registers specs at construction, in order.
func WithStates(specs ...domain.StateSpec) Option {
	return func(e *Engine) {
		e.specs = append(e.specs, specs...)
	}
}
