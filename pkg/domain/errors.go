package domain

import (
	"errors"
	"fmt"
)

// ErrTransitionInProgress is returned when navigation starts while another transition is in flight.
var ErrTransitionInProgress = errors.New("transition is in progress")

// StateNotFoundError is returned when a state name cannot be resolved.
type StateNotFoundError struct {
	Name string
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state %q not found", e.Name)
}

// DuplicateStateError is returned when registering a name twice.
type DuplicateStateError struct {
	Name string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("state %q already added", e.Name)
}

// InvalidStateError is returned for specs that cannot produce a state.
type InvalidStateError struct {
	Name   string
	Reason string
	Err    error
}

func (e *InvalidStateError) Error() string {
	msg := "invalid state"
	if e.Name != "" {
		msg = fmt.Sprintf("invalid state %q", e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }

// RedirectLoopError is returned when a transition exceeds the redirect limit.
type RedirectLoopError struct {
	Transition Transition
	Max        int
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected after %d redirects (raise max redirects to allow more per transition)", e.Max)
}

// InvalidRedirectError is returned when a redirect func yields no destination.
type InvalidRedirectError struct {
	State string
}

func (e *InvalidRedirectError) Error() string {
	return fmt.Sprintf("redirect of state %q resolved to no destination", e.State)
}

// HookError annotates a failure returned by a state hook.
type HookError struct {
	State string
	Hook  string
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("state %q %s: %v", e.State, e.Hook, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }
