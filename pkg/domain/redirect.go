package domain

import "context"

// RedirectKind tags the variant held by a Redirect.
type RedirectKind int

const (
	// RedirectNone is the zero Redirect: the state is enterable directly.
	RedirectNone RedirectKind = iota
	// RedirectName targets a state by name without param overrides.
	RedirectName
	// RedirectNamed targets a state by name with param overrides.
	RedirectNamed
	// RedirectDynamic computes the redirect from the in-flight transition.
	RedirectDynamic
)

func (k RedirectKind) String() string {
	switch k {
	case RedirectName:
		return "name"
	case RedirectNamed:
		return "named"
	case RedirectDynamic:
		return "dynamic"
	default:
		return "none"
	}
}

// RedirectFunc computes a redirect from the in-flight transition. The returned
// Redirect may itself be dynamic; a zero Redirect is an error.
type RedirectFunc func(ctx context.Context, t Transition) (Redirect, error)

// Redirect names the destination a state (or a hook result) forwards to.
type Redirect struct {
	kind   RedirectKind
	name   string
	params Params
	fn     RedirectFunc
}

// RedirectTo redirects to the named state.
func RedirectTo(name string) Redirect {
	return Redirect{kind: RedirectName, name: name}
}

// RedirectWith redirects to the named state, overriding target params.
func RedirectWith(name string, params Params) Redirect {
	return Redirect{kind: RedirectNamed, name: name, params: params.Clone()}
}

// RedirectBy redirects to whatever fn resolves at transition time.
func RedirectBy(fn RedirectFunc) Redirect {
	if fn == nil {
		return Redirect{}
	}
	return Redirect{kind: RedirectDynamic, fn: fn}
}

// NoRedirect returns the zero Redirect.
func NoRedirect() Redirect { return Redirect{} }

func (r Redirect) Kind() RedirectKind { return r.kind }
func (r Redirect) IsZero() bool { return r.kind == RedirectNone }

// Name is the target state name; empty for dynamic redirects.
func (r Redirect) Name() string { return r.name }

// Params returns a copy of the param overrides, nil when there are none.
func (r Redirect) Params() Params {
	if r.params == nil {
		return nil
	}
	return r.params.Clone()
}

// Func returns the resolver of a dynamic redirect.
func (r Redirect) Func() RedirectFunc { return r.fn }

func (r Redirect) String() string {
	switch r.kind {
	case RedirectName, RedirectNamed:
		return r.name
	case RedirectDynamic:
		return "<func>"
	default:
		return ""
	}
}
