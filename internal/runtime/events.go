package runtime

import (
	"context"
	"time"

	"github.com/aretw0/voie/pkg/domain"
)

func (m *Manager) emitTransitionStart(ctx context.Context, t *transition) {
	if m.hooks.OnTransitionStart == nil {
		return
	}
	m.hooks.OnTransitionStart(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransitionStart},
		Target:    t.target.Name,
	})
}

func (m *Manager) emitTransitionEnd(ctx context.Context, t *transition, d time.Duration, err error) {
	if m.hooks.OnTransitionEnd == nil {
		return
	}
	e := &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransitionEnd},
		Target:    t.target.Name,
		Redirects: t.redirects,
		Duration:  d,
		Err:       err,
	}
	if t.dst != nil {
		e.Destination = t.dst.Name()
	}
	m.hooks.OnTransitionEnd(ctx, e)
}

func (m *Manager) emitStateEvent(ctx context.Context, hook func(context.Context, *domain.StateEvent), typ domain.EventType, c *domain.Context) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.StateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		State:     c.StateName(),
		Params:    c.Params.Clone(),
	})
}

func (m *Manager) emitRedirect(ctx context.Context, from, to string, count int) {
	if m.hooks.OnRedirect == nil {
		return
	}
	m.hooks.OnRedirect(ctx, &domain.RedirectEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRedirect},
		From:      from,
		To:        to,
		Count:     count,
	})
}
