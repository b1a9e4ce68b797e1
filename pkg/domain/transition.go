package domain

// Phase is the lifecycle position of a transition.
type Phase string

const (
	PhaseCreated    Phase = "created"
	PhaseResolving  Phase = "resolving_destination"
	PhaseUpstream   Phase = "going_upstream"
	PhaseDownstream Phase = "going_downstream"
	PhaseRedirected Phase = "redirected"
	PhaseCommitted  Phase = "committed"
	PhaseFailed     Phase = "failed"
)

// Terminal reports whether no further work happens in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseCommitted || p == PhaseFailed
}

// Transition is the read-only view of an in-flight navigation.
type Transition interface {
	// Destination is the resolved non-redirecting target; nil while still resolving the first hop.
	Destination() *State
	// Params returns a copy of the accumulated target params.
	Params() Params
	// RedirectCount is the number of redirect hops taken so far.
	RedirectCount() int
	Phase() Phase
}

// Target describes a navigation request.
type Target struct {
	Name   string `json:"name"`
	Params Params `json:"params,omitempty"`
	// Replace asks the history binding to replace the current entry instead of pushing.
	Replace bool `json:"replace,omitempty"`
}
