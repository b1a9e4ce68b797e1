package dsl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/voie/pkg/domain"
	contract "github.com/aretw0/voie/pkg/ports/tests"
)

func TestBuilder_Tree(t *testing.T) {
	b := New()

	entered := false
	b.Add("app").Path("/").Redirect("users").
		Add("users").Parent("app").Path("users").Redirect("users.list").
		Add("users.list").Path("list").Param("page", 1).Component("UserList").
		Add("users.show").Path(":id").RedirectWith("users.list", domain.Params{"page": 2}).
		OnEnter(func(ctx context.Context, c *domain.Context) (domain.Result, error) {
			entered = true
			return domain.Result{}, nil
		})

	// Re-adding an existing name returns the same builder.
	b.Add("users.list").Param("sort", "name")

	loader, err := b.Build()
	require.NoError(t, err)
	contract.DefinitionLoaderContractTest(t, loader, []string{"app", "users", "users.list", "users.show"})

	specs, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, specs, 4)

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"app", "users", "users.list", "users.show"}, names)

	list := specs[2]
	assert.Equal(t, "list", list.Path)
	assert.Equal(t, domain.Params{"page": 1, "sort": "name"}, list.Params)
	assert.Equal(t, "UserList", list.Component)

	show := specs[3]
	assert.Equal(t, domain.RedirectNamed, show.Redirect.Kind())
	assert.Equal(t, "users.list", show.Redirect.Name())
	require.NotNil(t, show.Enter)
	_, err = show.Enter(context.Background(), domain.NewRootContext())
	require.NoError(t, err)
	assert.True(t, entered)
}

func TestBuilder_Errors(t *testing.T) {
	b := New()
	b.Add("users.list").Path("list")

	_, err := b.Build()
	assert.Error(t, err, "undeclared parent should fail")
}

func TestStateBuilder_BuildCopiesParams(t *testing.T) {
	sb := New().Add("app").Param("lang", "en")
	spec := sb.Build()
	spec.Params["lang"] = "fr"

	assert.Equal(t, "en", sb.Build().Params["lang"])
}
