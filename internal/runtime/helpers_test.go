package runtime_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/require"
)

// recorder captures hook invocations as "enter:<state>" / "leave:<state>".
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) record(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

// spec returns a StateSpec whose hooks are recorded.
func (r *recorder) spec(name, path string) domain.StateSpec {
	return domain.StateSpec{
		Name: name,
		Path: path,
		Enter: func(ctx context.Context, c *domain.Context) (domain.Result, error) {
			r.record("enter:" + name)
			return domain.Result{}, nil
		},
		Leave: func(ctx context.Context, c *domain.Context) error {
			r.record("leave:" + name)
			return nil
		},
	}
}

func newManager(t *testing.T, specs []domain.StateSpec, opts ...runtime.ManagerOption) *runtime.Manager {
	t.Helper()
	m := runtime.NewManager(opts...)
	for _, s := range specs {
		_, err := m.Add(s)
		require.NoError(t, err, "add %s", s.Name)
	}
	return m
}

func goTo(t *testing.T, m *runtime.Manager, name string, params domain.Params) {
	t.Helper()
	require.NoError(t, m.Go(context.Background(), domain.Target{Name: name, Params: params}))
}
