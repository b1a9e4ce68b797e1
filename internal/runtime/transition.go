package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/voie/pkg/domain"
)

// transition is a single navigation run by the Manager. It is only touched by
// the goroutine that called Go.
type transition struct {
	m         *Manager
	target    domain.Target
	dst       *domain.State
	params    domain.Params
	redirects int
	phase     domain.Phase
}

var _ domain.Transition = (*transition)(nil)

func newTransition(m *Manager, target domain.Target) *transition {
	return &transition{
		m:      m,
		target: target,
		params: target.Params.Clone(),
		phase:  domain.PhaseCreated,
	}
}

func (t *transition) Destination() *domain.State { return t.dst }
func (t *transition) Params() domain.Params { return t.params.Clone() }
func (t *transition) RedirectCount() int { return t.redirects }
func (t *transition) Phase() domain.Phase { return t.phase }

// resolve looks name up and follows state redirects until a state without one
// is found. No enter or leave hook runs here.
func (t *transition) resolve(ctx context.Context, name string) error {
	t.phase = domain.PhaseResolving
	for {
		state := t.m.registry.Get(name)
		if state == nil {
			return &domain.StateNotFoundError{Name: name}
		}
		if state.Redirect().IsZero() {
			t.dst = state
			return nil
		}
		next, err := t.follow(ctx, state.Name(), state.Redirect())
		if err != nil {
			return err
		}
		name = next
	}
}

// follow takes one redirect hop and returns the name it points to. Param
// overrides are merged into the target params, last writer wins.
func (t *transition) follow(ctx context.Context, from string, r domain.Redirect) (string, error) {
	t.redirects++
	if t.redirects > t.m.maxRedirects {
		return "", &domain.RedirectLoopError{Transition: t, Max: t.m.maxRedirects}
	}

	// Funcs may return further funcs; their nesting is bounded like hops.
	for depth := 1; r.Kind() == domain.RedirectDynamic; depth++ {
		if depth > t.m.maxRedirects {
			return "", &domain.RedirectLoopError{Transition: t, Max: t.m.maxRedirects}
		}
		next, err := r.Func()(ctx, t)
		if err != nil {
			return "", &domain.HookError{State: from, Hook: "redirect", Err: err}
		}
		if next.IsZero() {
			return "", &domain.InvalidRedirectError{State: from}
		}
		r = next
	}

	t.params = t.params.Merge(r.Params())
	t.m.logger.Debug("redirect", "from", from, "to", r.Name(), "count", t.redirects)
	t.m.emitRedirect(ctx, from, r.Name(), t.redirects)
	return r.Name(), nil
}

// run alternates teardown and setup until the destination is committed. A
// redirect returned by an enter hook re-resolves the destination and restarts
// from whatever context is active at that point.
func (t *transition) run(ctx context.Context) error {
	for {
		if err := t.goUpstream(ctx); err != nil {
			return err
		}
		redirected, err := t.goDownstream(ctx)
		if err != nil {
			return err
		}
		if !redirected {
			t.phase = domain.PhaseCommitted
			return nil
		}
	}
}

func (t *transition) goUpstream(ctx context.Context) error {
	t.phase = domain.PhaseUpstream
	for {
		c := t.m.Current()
		if c.IsRoot() {
			return nil
		}
		state := c.State
		if t.dst.Includes(state) && t.reusable(c) {
			return nil
		}
		if err := state.Leave(ctx, c); err != nil {
			return &domain.HookError{State: state.Name(), Hook: "leave", Err: err}
		}
		if err := t.m.teardown(ctx, c); err != nil {
			return err
		}
	}
}

// reusable reports whether every param of c is unchanged in the target params.
// A key missing from the target counts as nil.
func (t *transition) reusable(c *domain.Context) bool {
	for k, v := range c.Params {
		if !domain.ParamsEqual(v, t.params[k]) {
			return false
		}
	}
	return true
}

func (t *transition) goDownstream(ctx context.Context) (redirected bool, err error) {
	t.phase = domain.PhaseDownstream
	for {
		prev := t.m.Current()
		next := t.dst.Next(prev.State)
		if next == nil {
			return false, nil
		}

		c := prev.Child(next, t.params)
		result, err := next.Enter(ctx, c)
		if err != nil {
			result, err = next.HandleError(ctx, err, c)
			if err != nil {
				return false, &domain.HookError{State: next.Name(), Hook: "enter", Err: err}
			}
		}

		if !result.Redirect.IsZero() {
			t.phase = domain.PhaseRedirected
			name, err := t.follow(ctx, next.Name(), result.Redirect)
			if err != nil {
				return false, err
			}
			if err := t.resolve(ctx, name); err != nil {
				return false, err
			}
			return true, nil
		}

		component := result.Component
		if component == nil {
			component = next.Component()
		}
		if err := t.m.commit(ctx, c, component); err != nil {
			return false, fmt.Errorf("commit %q: %w", next.Name(), err)
		}
	}
}
