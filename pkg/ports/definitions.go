package ports

import (
	"context"

	"github.com/aretw0/voie/pkg/domain"
)

// DefinitionLoader produces state specs in registration order: parents must
// precede their children.
type DefinitionLoader interface {
	Load(ctx context.Context) ([]domain.StateSpec, error)
}
