package tui_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/voie/internal/presentation/tui"
	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/domain"
)

func newManager(t *testing.T) *runtime.Manager {
	t.Helper()
	m := runtime.NewManager()
	for _, spec := range []domain.StateSpec{
		{Name: "app", Path: "/"},
		{Name: "app.users", Path: "users", Redirect: domain.RedirectTo("app.users.list")},
		{Name: "app.users.list", Path: "list", Params: domain.Params{"page": 1}},
		{Name: "app.user", Path: "/user/:id"},
	} {
		_, err := m.Add(spec)
		require.NoError(t, err)
	}
	return m
}

func TestPrinter_PrintChain(t *testing.T) {
	m := newManager(t)
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf, termenv.WithProfile(termenv.Ascii))

	p.PrintChain(m.Current())
	assert.Equal(t, "(root)\n", buf.String())

	buf.Reset()
	require.NoError(t, m.Go(context.Background(), domain.Target{Name: "app.users", Params: domain.Params{"page": 3}}))
	p.PrintChain(m.Current())
	assert.Equal(t, "app › app.users › app.users.list\n  page = 3\n", buf.String())
}

func TestDescribeStates(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.Go(context.Background(), domain.Target{Name: "app.users"}))

	md := tui.DescribeStates(m.States(), m.Current())

	assert.Contains(t, md, "| ○ | `app` | `/` |  |  |\n")
	assert.Contains(t, md, "| ○ | `app.users` | `/users` |  | → app.users.list |\n")
	assert.Contains(t, md, "| ● | `app.users.list` | `/users/list` | page=1 |  |\n")
	assert.Contains(t, md, "|  | `app.user` | `/user/:id` | id |  |\n")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "\\_/")
}
