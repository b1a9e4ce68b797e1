package runtime

import (
	"sync"

	"github.com/aretw0/voie/pkg/domain"
)

// Registry holds registered states by name, remembering registration order.
type Registry struct {
	mu     sync.RWMutex
	states map[string]*domain.State
	order  []*domain.State
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*domain.State)}
}

// Add registers a state. The parent (explicit, or inferred from a dotted name)
// must already be registered, so parent cycles cannot be expressed.
func (r *Registry) Add(spec domain.StateSpec) (*domain.State, error) {
	if spec.Name == "" {
		return nil, &domain.InvalidStateError{Reason: "name is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[spec.Name]; exists {
		return nil, &domain.DuplicateStateError{Name: spec.Name}
	}

	parentName := spec.Parent
	if parentName == "" {
		parentName = domain.InferParentName(spec.Name)
	}

	var parent *domain.State
	if parentName != "" {
		parent = r.states[parentName]
		if parent == nil {
			return nil, &domain.StateNotFoundError{Name: parentName}
		}
	}

	state, err := domain.NewState(spec, parent)
	if err != nil {
		return nil, err
	}
	r.states[state.Name()] = state
	r.order = append(r.order, state)
	return state, nil
}

// Get returns the named state or nil.
func (r *Registry) Get(name string) *domain.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[name]
}

// States returns all states in registration order.
func (r *Registry) States() []*domain.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.State, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
