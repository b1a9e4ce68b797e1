package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/voie/pkg/domain"
)

// Loader implements ports.DefinitionLoader over specs declared in code.
type Loader struct {
	specs []domain.StateSpec
}

// NewLoader creates a Loader. Specs may be given in any order.
func NewLoader(specs ...domain.StateSpec) *Loader {
	return &Loader{specs: append([]domain.StateSpec(nil), specs...)}
}

// Load returns the specs ordered so that every parent precedes its children.
// Relative order is otherwise preserved. Undeclared parents are an error.
func (l *Loader) Load(ctx context.Context) ([]domain.StateSpec, error) {
	declared := make(map[string]bool, len(l.specs))
	for _, s := range l.specs {
		if declared[s.Name] {
			return nil, &domain.DuplicateStateError{Name: s.Name}
		}
		declared[s.Name] = true
	}

	out := make([]domain.StateSpec, 0, len(l.specs))
	placed := make(map[string]bool, len(l.specs))
	pending := l.specs
	for len(pending) > 0 {
		var next []domain.StateSpec
		for _, s := range pending {
			parent := parentOf(s)
			if parent == "" || placed[parent] {
				out = append(out, s)
				placed[s.Name] = true
				continue
			}
			if !declared[parent] {
				return nil, fmt.Errorf("load %q: %w", s.Name, &domain.StateNotFoundError{Name: parent})
			}
			next = append(next, s)
		}
		if len(next) == len(pending) {
			return nil, fmt.Errorf("load: unresolvable parents for %d states", len(next))
		}
		pending = next
	}
	return out, nil
}

func parentOf(s domain.StateSpec) string {
	if s.Parent != "" {
		return s.Parent
	}
	return domain.InferParentName(s.Name)
}
