package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/aretw0/voie/internal/logging"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/ports"
)

// Manager owns the registry and the active context chain, and runs one
// transition at a time.
type Manager struct {
	registry     *Registry
	maxRedirects int
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	renderer     ports.Renderer
	uncaught     UncaughtHandler

	inFlight atomic.Bool

	mu      sync.RWMutex
	current *domain.Context

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(*domain.Context)
}

// NewManager creates a Manager positioned at the synthetic root context.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		registry:     NewRegistry(),
		maxRedirects: DefaultMaxRedirects,
		logger:       logging.NewNop(),
		current:      domain.NewRootContext(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers a state.
func (m *Manager) Add(spec domain.StateSpec) (*domain.State, error) {
	state, err := m.registry.Add(spec)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("add", "state", state.Name(), "path", state.FullPath())
	return state, nil
}

// Get returns the named state or nil.
func (m *Manager) Get(name string) *domain.State { return m.registry.Get(name) }

// States returns all states in registration order.
func (m *Manager) States() []*domain.State { return m.registry.States() }

func (m *Manager) MaxRedirects() int { return m.maxRedirects }

// Current returns the active leaf context. It is safe to call from any goroutine.
func (m *Manager) Current() *domain.Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// InProgress reports whether a transition is in flight.
func (m *Manager) InProgress() bool { return m.inFlight.Load() }

// Subscribe registers fn to be called with every newly committed context.
// Listeners run on the navigating goroutine and must not call Go.
func (m *Manager) Subscribe(fn func(*domain.Context)) (unsubscribe func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// Go navigates to target. It fails with domain.ErrTransitionInProgress, leaving
// the active context untouched, if another transition is in flight. Any other
// failure goes through HandleUncaught.
func (m *Manager) Go(ctx context.Context, target domain.Target) error {
	if !m.inFlight.CompareAndSwap(false, true) {
		return domain.ErrTransitionInProgress
	}
	if err := m.transition(ctx, target); err != nil {
		return m.HandleUncaught(ctx, err)
	}
	return nil
}

func (m *Manager) transition(ctx context.Context, target domain.Target) (err error) {
	defer m.inFlight.Store(false)

	start := time.Now()
	t := newTransition(m, target)
	m.logger.Debug("go", "target", target.Name, "params", target.Params)
	m.emitTransitionStart(ctx, t)

	defer func() {
		if err != nil {
			t.phase = domain.PhaseFailed
		}
		m.emitTransitionEnd(ctx, t, time.Since(start), err)
	}()

	if err := t.resolve(ctx, target.Name); err != nil {
		return err
	}
	return t.run(ctx)
}

// HandleUncaught applies the uncaught policy to err.
func (m *Manager) HandleUncaught(ctx context.Context, err error) error {
	if m.uncaught == nil {
		return err
	}
	return m.uncaught(ctx, err)
}

// UpdateParams replaces the active context with a copy whose params are merged
// with params, without navigating. Committed contexts are never mutated.
func (m *Manager) UpdateParams(params domain.Params) (*domain.Context, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrTransitionInProgress
	}
	defer m.inFlight.Store(false)

	current := m.Current()
	updated := &domain.Context{
		Parent: current.Parent,
		State:  current.State,
		Params: current.Params.Merge(params),
		Data:   current.Data,
		View:   current.View,
	}
	m.setCurrent(updated)
	return updated, nil
}

// commit makes c the active leaf and mounts its view.
func (m *Manager) commit(ctx context.Context, c *domain.Context, component any) error {
	m.setCurrent(c)
	m.logger.Debug("entered", "state", c.StateName())

	if component != nil && m.renderer != nil {
		view, err := m.renderer.Render(ctx, c, component)
		if err != nil {
			return err
		}
		c.View = view
	}

	m.emitStateEvent(ctx, m.hooks.OnStateEnter, domain.EventStateEnter, c)
	m.notify(c)
	return nil
}

// teardown disposes the view of c and moves the active pointer to its parent.
func (m *Manager) teardown(ctx context.Context, c *domain.Context) error {
	if c.View != nil && m.renderer != nil {
		if err := m.renderer.Dispose(ctx, c); err != nil {
			return &domain.HookError{State: c.StateName(), Hook: "dispose", Err: err}
		}
		c.View = nil
	}
	m.setCurrent(c.Parent)
	m.logger.Debug("left", "state", c.StateName())
	m.emitStateEvent(ctx, m.hooks.OnStateLeave, domain.EventStateLeave, c)
	return nil
}

func (m *Manager) setCurrent(c *domain.Context) {
	m.mu.Lock()
	m.current = c
	m.mu.Unlock()
}

func (m *Manager) notify(c *domain.Context) {
	m.subMu.Lock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, s := range subs {
		s.fn(c)
	}
}
