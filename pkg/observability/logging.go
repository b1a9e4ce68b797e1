package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/voie/pkg/domain"
)

// LoggingHooks returns lifecycle hooks writing an audit trail to logger.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransitionStart: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Info("transition_start", "target", e.Target)
		},
		OnTransitionEnd: func(ctx context.Context, e *domain.TransitionEvent) {
			if e.Err != nil {
				logger.Warn("transition_end",
					"target", e.Target,
					"redirects", e.Redirects,
					"duration", e.Duration,
					"error", e.Err,
				)
				return
			}
			logger.Info("transition_end",
				"target", e.Target,
				"destination", e.Destination,
				"redirects", e.Redirects,
				"duration", e.Duration,
			)
		},
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.Info("state_enter", "state", e.State)
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			logger.Info("state_leave", "state", e.State)
		},
		OnRedirect: func(ctx context.Context, e *domain.RedirectEvent) {
			logger.Debug("redirect", "from", e.From, "to", e.To, "count", e.Count)
		},
	}
}
