package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransitionStart EventType = "transition_start"
	EventTransitionEnd   EventType = "transition_end"
	EventStateEnter      EventType = "state_enter"
	EventStateLeave      EventType = "state_leave"
	EventRedirect        EventType = "redirect"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StateEvent represents entry into or exit from a state.
type StateEvent struct {
	EventBase
	State  string `json:"state"`
	Params Params `json:"params,omitempty"`
}

// RedirectEvent represents one redirect hop.
type RedirectEvent struct {
	EventBase
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// TransitionEvent represents the start or the end of a navigation.
// Destination, Duration and Err are only set on end events.
type TransitionEvent struct {
	EventBase
	Target      string        `json:"target"`
	Destination string        `json:"destination,omitempty"`
	Redirects   int           `json:"redirects"`
	Duration    time.Duration `json:"duration,omitempty"`
	Err         error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// They never influence control flow.
type LifecycleHooks struct {
	OnTransitionStart func(context.Context, *TransitionEvent)
	OnTransitionEnd   func(context.Context, *TransitionEvent)
	OnStateEnter      func(context.Context, *StateEvent)
	OnStateLeave      func(context.Context, *StateEvent)
	OnRedirect        func(context.Context, *RedirectEvent)
}

// Combine returns hooks invoking every non-nil callback of all given hooks in order.
func Combine(all ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransitionStart: func(ctx context.Context, e *TransitionEvent) {
			for _, h := range all {
				if h.OnTransitionStart != nil {
					h.OnTransitionStart(ctx, e)
				}
			}
		},
		OnTransitionEnd: func(ctx context.Context, e *TransitionEvent) {
			for _, h := range all {
				if h.OnTransitionEnd != nil {
					h.OnTransitionEnd(ctx, e)
				}
			}
		},
		OnStateEnter: func(ctx context.Context, e *StateEvent) {
			for _, h := range all {
				if h.OnStateEnter != nil {
					h.OnStateEnter(ctx, e)
				}
			}
		},
		OnStateLeave: func(ctx context.Context, e *StateEvent) {
			for _, h := range all {
				if h.OnStateLeave != nil {
					h.OnStateLeave(ctx, e)
				}
			}
		},
		OnRedirect: func(ctx context.Context, e *RedirectEvent) {
			for _, h := range all {
				if h.OnRedirect != nil {
					h.OnRedirect(ctx, e)
				}
			}
		},
	}
}
