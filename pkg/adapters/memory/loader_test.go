package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
	contract "github.com/aretw0/voie/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Contract(t *testing.T) {
	loader := memory.NewLoader(
		domain.StateSpec{Name: "users.list", Path: "list"},
		domain.StateSpec{Name: "app", Path: "/"},
		domain.StateSpec{Name: "users", Parent: "app", Path: "users"},
	)

	contract.DefinitionLoaderContractTest(t, loader, []string{"app", "users", "users.list"})
}

func TestLoader_Errors(t *testing.T) {
	t.Run("Missing Parent", func(t *testing.T) {
		_, err := memory.NewLoader(domain.StateSpec{Name: "a.b"}).Load(context.Background())
		var nf *domain.StateNotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "a", nf.Name)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := memory.NewLoader(domain.StateSpec{Name: "a"}, domain.StateSpec{Name: "a"}).Load(context.Background())
		var dup *domain.DuplicateStateError
		assert.True(t, errors.As(err, &dup))
	})

	t.Run("Parent Cycle", func(t *testing.T) {
		_, err := memory.NewLoader(
			domain.StateSpec{Name: "a", Parent: "b"},
			domain.StateSpec{Name: "b", Parent: "a"},
		).Load(context.Background())
		assert.Error(t, err)
	})
}
