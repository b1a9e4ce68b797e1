package tests

import (
	"context"
	"testing"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an adapter
// complies with ports.DefinitionLoader. want lists the expected state names in order.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader, want []string) {
	t.Helper()

	specs, err := loader.Load(context.Background())
	require.NoError(t, err)

	t.Run("Order Preserved", func(t *testing.T) {
		names := make([]string, len(specs))
		for i, s := range specs {
			names[i] = s.Name
		}
		assert.Equal(t, want, names)
	})

	t.Run("Parents Precede Children", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, s := range specs {
			parent := s.Parent
			if parent == "" {
				parent = domain.InferParentName(s.Name)
			}
			if parent != "" {
				assert.True(t, seen[parent], "state %q loaded before its parent %q", s.Name, parent)
			}
			seen[s.Name] = true
		}
	})

	t.Run("Names Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, s := range specs {
			assert.False(t, seen[s.Name], "duplicate state %q", s.Name)
			seen[s.Name] = true
		}
	})
}
