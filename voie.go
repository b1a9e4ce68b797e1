package voie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/voie/internal/logging"
	"github.com/aretw0/voie/internal/runtime"
	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/ports"
)

// Engine is the high-level entry point for the voie library.
// It wraps the runtime Manager and keeps a history provider in sync with the
// active context.
type Engine struct {
	manager     *runtime.Manager
	history     ports.History
	logger      *slog.Logger
	base        string
	managerOpts []runtime.ManagerOption
	specs       []domain.StateSpec

	mu       sync.Mutex
	lastURL  string
	unlisten func()
}

// New initializes an Engine and registers the states given via WithStates.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	if e.history == nil {
		e.history = memory.NewHistory(memory.WithBase(e.base))
	}
	e.manager = runtime.NewManager(append([]runtime.ManagerOption{runtime.WithLogger(e.logger)}, e.managerOpts...)...)

	for _, spec := range e.specs {
		if _, err := e.manager.Add(spec); err != nil {
			return nil, fmt.Errorf("failed to add state: %w", err)
		}
	}
	return e, nil
}

// Add registers a state.
func (e *Engine) Add(spec domain.StateSpec) (*domain.State, error) {
	return e.manager.Add(spec)
}

// Load registers every spec produced by loader.
func (e *Engine) Load(ctx context.Context, loader ports.DefinitionLoader) error {
	specs, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	for _, spec := range specs {
		if _, err := e.manager.Add(spec); err != nil {
			return fmt.Errorf("failed to add state: %w", err)
		}
	}
	return nil
}

// Get returns the named state or nil.
func (e *Engine) Get(name string) *domain.State { return e.manager.Get(name) }

// States returns all states in registration order.
func (e *Engine) States() []*domain.State { return e.manager.States() }

// Current returns the active leaf context.
func (e *Engine) Current() *domain.Context { return e.manager.Current() }

// History returns the bound history provider.
func (e *Engine) History() ports.History { return e.history }

// Subscribe registers fn for every committed context.
func (e *Engine) Subscribe(fn func(*domain.Context)) func() { return e.manager.Subscribe(fn) }

// Go navigates to target and then records the resulting URL in history, even
// when the uncaught handler swallowed a failure. An empty target name means
// the current state with its params overridden by target.Params.
func (e *Engine) Go(ctx context.Context, target domain.Target) error {
	if target.Name == "" {
		current := e.manager.Current()
		if current.IsRoot() {
			return &domain.StateNotFoundError{Name: ""}
		}
		target.Name = current.StateName()
		target.Params = current.Params.Merge(target.Params)
	}

	err := e.manager.Go(ctx, target)
	if errors.Is(err, domain.ErrTransitionInProgress) {
		return err
	}
	if herr := e.updateHistory(target.Replace); herr != nil && err == nil {
		err = herr
	}
	return err
}

// Update merges params into the active context without navigating and
// records the new URL.
func (e *Engine) Update(params domain.Params, replace bool) error {
	if _, err := e.manager.UpdateParams(params); err != nil {
		return err
	}
	return e.updateHistory(replace)
}

// Start begins listening for history changes and navigates to the state
// matching the current location. Calling Start twice is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.unlisten != nil {
		e.mu.Unlock()
		return nil
	}
	e.unlisten = e.history.Listen(func(loc domain.Location) {
		if err := e.matchLocation(ctx, loc); err != nil {
			e.logger.Warn("navigation from history failed", "url", loc.String(), "error", err)
		}
	})
	e.mu.Unlock()

	return e.matchLocation(ctx, e.history.Location())
}

// Stop stops listening for history changes.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.unlisten == nil {
		return
	}
	e.unlisten()
	e.unlisten = nil
}

// Match finds the first state, in registration order, whose path matches loc.
// Params combine path captures and query values.
func (e *Engine) Match(loc domain.Location) (*domain.State, domain.Params, bool) {
	for _, state := range e.manager.States() {
		if params, ok := state.Match(loc); ok {
			return state, params, true
		}
	}
	return nil, nil, false
}

// URL formats the URL of the named state.
func (e *Engine) URL(name string, params domain.Params) (string, error) {
	state := e.manager.Get(name)
	if state == nil {
		return "", &domain.StateNotFoundError{Name: name}
	}
	return state.URL(params)
}

// Href formats a link target for the named state through the history provider.
func (e *Engine) Href(name string, params domain.Params) (string, error) {
	url, err := e.URL(name, params)
	if err != nil {
		return "", err
	}
	return e.history.CreateHref(url), nil
}

// CurrentURL returns the URL of the active context, "/" at the root.
func (e *Engine) CurrentURL() (string, error) {
	c := e.manager.Current()
	if c.IsRoot() {
		return "/", nil
	}
	return c.State.URL(c.Params)
}

func (e *Engine) matchLocation(ctx context.Context, loc domain.Location) error {
	url := loc.String()
	e.mu.Lock()
	same := url == e.lastURL
	e.mu.Unlock()
	if same {
		return nil
	}

	state, params, ok := e.Match(loc)
	if !ok {
		e.logger.Warn("no states match url", "url", url)
		return e.rewriteHistory()
	}
	e.logger.Debug("match url", "url", url, "state", state.Name())
	return e.Go(ctx, domain.Target{Name: state.Name(), Params: params, Replace: true})
}

// updateHistory pushes (or replaces) the URL of the active context unless it
// is already the last recorded one.
func (e *Engine) updateHistory(replace bool) error {
	url, err := e.CurrentURL()
	if err != nil {
		return fmt.Errorf("failed to format url: %w", err)
	}

	e.mu.Lock()
	if url == e.lastURL {
		e.mu.Unlock()
		return nil
	}
	e.lastURL = url
	e.mu.Unlock()

	if replace {
		e.history.Replace(url)
	} else {
		e.history.Push(url)
	}
	return nil
}

// rewriteHistory replaces an unmatched location with the active context URL.
func (e *Engine) rewriteHistory() error {
	url, err := e.CurrentURL()
	if err != nil {
		return fmt.Errorf("failed to format url: %w", err)
	}
	e.mu.Lock()
	e.lastURL = url
	e.mu.Unlock()
	e.history.Replace(url)
	return nil
}
