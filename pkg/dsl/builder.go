package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
)

// Builder manages the state tree construction.
type Builder struct {
	order  []string
	states map[string]*StateBuilder
}

// New creates a new state tree builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Add creates a new state in the tree.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		spec:    domain.StateSpec{Name: name},
		builder: b,
	}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Specs returns the specs in the order they were added.
func (b *Builder) Specs() []domain.StateSpec {
	specs := make([]domain.StateSpec, 0, len(b.order))
	for _, name := range b.order {
		specs = append(specs, b.states[name].Build())
	}
	return specs
}

// Build compiles the tree into a memory Loader. Unknown parents and cycles
// are reported here rather than at registration.
func (b *Builder) Build() (*memory.Loader, error) {
	loader := memory.NewLoader(b.Specs()...)
	if _, err := loader.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
