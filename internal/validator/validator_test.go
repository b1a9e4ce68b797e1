package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/domain"
)

func states(t *testing.T, specs ...domain.StateSpec) []*domain.State {
	t.Helper()
	reg := runtime.NewRegistry()
	for _, spec := range specs {
		_, err := reg.Add(spec)
		require.NoError(t, err)
	}
	return reg.States()
}

func TestValidateStates(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := ValidateStates(states(t,
			domain.StateSpec{Name: "app", Path: "/", Redirect: domain.RedirectTo("app.home")},
			domain.StateSpec{Name: "app.home", Path: "home"},
			domain.StateSpec{Name: "app.users", Path: "users", Redirect: domain.RedirectWith("app.home", domain.Params{"tab": "users"})},
			domain.StateSpec{Name: "app.dyn", Path: "dyn", Redirect: domain.RedirectBy(func(ctx context.Context, tr domain.Transition) (domain.Redirect, error) {
				return domain.RedirectTo("ghost"), nil
			})},
		))
		assert.NoError(t, err)
	})

	t.Run("MissingTarget", func(t *testing.T) {
		err := ValidateStates(states(t,
			domain.StateSpec{Name: "app", Path: "/", Redirect: domain.RedirectTo("ghost")},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing redirect target: 'app' -> 'ghost'")
	})

	t.Run("Cycle", func(t *testing.T) {
		err := ValidateStates(states(t,
			domain.StateSpec{Name: "a", Path: "/a", Redirect: domain.RedirectTo("b")},
			domain.StateSpec{Name: "b", Path: "/b", Redirect: domain.RedirectTo("a")},
			domain.StateSpec{Name: "c", Path: "/c", Redirect: domain.RedirectTo("a")},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found 1 errors")
		assert.Contains(t, err.Error(), "Redirect cycle: a -> b -> a")
	})
}
