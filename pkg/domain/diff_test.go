package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffContexts(t *testing.T) {
	app := mustState(t, domain.StateSpec{Name: "app"}, nil)
	users := mustState(t, domain.StateSpec{Name: "users", Params: domain.Params{"page": "1"}}, app)
	groups := mustState(t, domain.StateSpec{Name: "groups"}, app)

	root := domain.NewRootContext()
	appCtx := root.Child(app, nil)
	usersCtx := appCtx.Child(users, nil)
	groupsCtx := appCtx.Child(groups, nil)

	t.Run("Initial Load", func(t *testing.T) {
		d := domain.DiffContexts(nil, usersCtx)
		assert.Empty(t, d.Left)
		assert.Equal(t, []string{"app", "users"}, d.Entered)
		assert.Equal(t, map[string]any{"page": "1"}, d.Params)
	})

	t.Run("Sibling Switch", func(t *testing.T) {
		d := domain.DiffContexts(usersCtx, groupsCtx)
		assert.Equal(t, []string{"users"}, d.Left)
		assert.Equal(t, []string{"groups"}, d.Entered)
		assert.Equal(t, map[string]any{"page": nil}, d.Params)
	})

	t.Run("No Changes", func(t *testing.T) {
		d := domain.DiffContexts(usersCtx, usersCtx)
		assert.True(t, d.IsEmpty())
	})

	t.Run("Deletions As Null", func(t *testing.T) {
		bytes, err := json.Marshal(domain.DiffContexts(usersCtx, groupsCtx))
		require.NoError(t, err)
		assert.Contains(t, string(bytes), `"page":null`)
	})
}

func TestContext_Lineage(t *testing.T) {
	app := mustState(t, domain.StateSpec{Name: "app"}, nil)
	users := mustState(t, domain.StateSpec{Name: "users", Params: domain.Params{"q": nil}}, app)

	root := domain.NewRootContext()
	appCtx := root.Child(app, domain.Params{"q": "x"})
	appCtx.Data["user"] = "alice"
	usersCtx := appCtx.Child(users, domain.Params{"q": "x"})

	assert.True(t, root.IsRoot())
	assert.Empty(t, root.Lineage())
	assert.Equal(t, []string{"app", "users"}, usersCtx.Names())
	assert.Equal(t, "alice", usersCtx.Data["user"])
	assert.Equal(t, domain.Params{"q": "x"}, usersCtx.Params)
	assert.Empty(t, appCtx.Params, "app declares no params")

	usersCtx.Data["extra"] = true
	assert.NotContains(t, appCtx.Data, "extra", "data is copied, not shared")

	snap := usersCtx.Snapshot()
	assert.Equal(t, "users", snap.State)
	assert.Equal(t, []string{"app", "users"}, snap.Lineage)
}
