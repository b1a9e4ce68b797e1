package runtime_test

import (
	"errors"
	"testing"

	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Add(t *testing.T) {
	r := runtime.NewRegistry()

	a, err := r.Add(domain.StateSpec{Name: "a", Path: "/a"})
	require.NoError(t, err)
	ab, err := r.Add(domain.StateSpec{Name: "a.b", Path: ":id"})
	require.NoError(t, err)

	assert.Same(t, a, r.Get("a"))
	assert.Same(t, a, r.Get("a.b").Parent())
	assert.Equal(t, "/a/:id", ab.FullPath())
	assert.Nil(t, r.Get("missing"))
}

func TestRegistry_ExplicitParent(t *testing.T) {
	r := runtime.NewRegistry()
	app, err := r.Add(domain.StateSpec{Name: "app", Path: "/"})
	require.NoError(t, err)

	users, err := r.Add(domain.StateSpec{Name: "users", Parent: "app", Path: "users"})
	require.NoError(t, err)

	assert.Same(t, app, users.Parent())
	assert.Equal(t, "/users", users.FullPath())
}

func TestRegistry_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup []domain.StateSpec
		spec  domain.StateSpec
		check func(t *testing.T, err error)
	}{
		{
			name: "Empty Name",
			spec: domain.StateSpec{Path: "/"},
			check: func(t *testing.T, err error) {
				var target *domain.InvalidStateError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "Duplicate",
			setup: []domain.StateSpec{{Name: "a"}},
			spec:  domain.StateSpec{Name: "a"},
			check: func(t *testing.T, err error) {
				var target *domain.DuplicateStateError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "a", target.Name)
			},
		},
		{
			name: "Child Before Inferred Parent",
			spec: domain.StateSpec{Name: "a.b"},
			check: func(t *testing.T, err error) {
				var target *domain.StateNotFoundError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "a", target.Name)
			},
		},
		{
			name: "Missing Explicit Parent",
			spec: domain.StateSpec{Name: "b", Parent: "ghost"},
			check: func(t *testing.T, err error) {
				var target *domain.StateNotFoundError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "ghost", target.Name)
			},
		},
		{
			name: "Bad Path",
			spec: domain.StateSpec{Name: "a", Path: "/:"},
			check: func(t *testing.T, err error) {
				var target *domain.InvalidStateError
				assert.True(t, errors.As(err, &target))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runtime.NewRegistry()
			for _, s := range tt.setup {
				_, err := r.Add(s)
				require.NoError(t, err)
			}
			state, err := r.Add(tt.spec)
			require.Error(t, err)
			assert.Nil(t, state)
			tt.check(t, err)
		})
	}
}

func TestRegistry_LineageInvariant(t *testing.T) {
	r := runtime.NewRegistry()
	for _, name := range []string{"a", "a.b", "a.b.c", "a.d", "x"} {
		_, err := r.Add(domain.StateSpec{Name: name})
		require.NoError(t, err)
	}

	for _, s := range r.States() {
		lineage := s.Lineage()
		require.NotEmpty(t, lineage)
		assert.Same(t, s, lineage[len(lineage)-1], "state %s must end its own lineage", s.Name())

		seen := make(map[*domain.State]bool)
		for _, st := range lineage {
			assert.False(t, seen[st], "duplicate %s in lineage of %s", st.Name(), s.Name())
			seen[st] = true
		}
	}
}

func TestRegistry_StatesOrder(t *testing.T) {
	r := runtime.NewRegistry()
	names := []string{"b", "a", "a.z", "a.y"}
	for _, name := range names {
		_, err := r.Add(domain.StateSpec{Name: name})
		require.NoError(t, err)
	}

	var got []string
	for _, s := range r.States() {
		got = append(got, s.Name())
	}
	assert.Equal(t, names, got)
	assert.Equal(t, 4, r.Len())
}
