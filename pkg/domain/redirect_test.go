package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRedirect_Variants(t *testing.T) {
	assert.True(t, domain.NoRedirect().IsZero())
	assert.Equal(t, domain.RedirectNone, domain.Redirect{}.Kind())

	byName := domain.RedirectTo("users.list")
	assert.Equal(t, domain.RedirectName, byName.Kind())
	assert.Equal(t, "users.list", byName.Name())
	assert.Nil(t, byName.Params())

	params := domain.Params{"id": "1"}
	named := domain.RedirectWith("user", params)
	params["id"] = "2"
	assert.Equal(t, domain.RedirectNamed, named.Kind())
	assert.Equal(t, domain.Params{"id": "1"}, named.Params(), "params are copied on construction")

	dynamic := domain.RedirectBy(func(ctx context.Context, t domain.Transition) (domain.Redirect, error) {
		return domain.RedirectTo("x"), nil
	})
	assert.Equal(t, domain.RedirectDynamic, dynamic.Kind())
	assert.NotNil(t, dynamic.Func())
	assert.Equal(t, "<func>", dynamic.String())

	assert.True(t, domain.RedirectBy(nil).IsZero())
}
