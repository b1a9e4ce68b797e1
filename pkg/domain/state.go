package domain

import (
	"context"
	"strings"

	"github.com/aretw0/voie/pkg/pathmatch"
)

// EnterFunc is invoked when going downstream into or through a state.
type EnterFunc func(ctx context.Context, c *Context) (Result, error)

// LeaveFunc is invoked when going upstream out of or through a state.
type LeaveFunc func(ctx context.Context, c *Context) error

// ErrorFunc is invoked with the error returned by Enter; it may recover by
// returning a Result.
type ErrorFunc func(ctx context.Context, err error, c *Context) (Result, error)

// Result is what Enter and HandleError resolve to. A non-zero Redirect aborts
// entering and restarts the transition towards the redirect destination.
type Result struct {
	Redirect  Redirect
	Component any
}

// Hooks is the lifecycle capability of a state.
type Hooks interface {
	Enter(ctx context.Context, c *Context) (Result, error)
	Leave(ctx context.Context, c *Context) error
	HandleError(ctx context.Context, err error, c *Context) (Result, error)
}

var _ Hooks = (*State)(nil)

// StateSpec configures a state at registration time.
type StateSpec struct {
	// Name is required. Dots infer the parent ("users.list" -> "users") unless Parent is set.
	Name string
	// Parent names the parent state explicitly.
	Parent string
	// Path is absolute when it starts with "/", otherwise appended to the parent's full path.
	Path string
	// Params declares accepted params with their defaults; nil means no default.
	Params Params
	// Redirect forwards navigation to another state, typically a default sub-state.
	Redirect Redirect
	// Component is an opaque marker handed to the view renderer.
	Component any

	Enter       EnterFunc
	Leave       LeaveFunc
	HandleError ErrorFunc
}

// State is a node of the state tree. It is immutable once registered.
type State struct {
	name       string
	parent     *State
	lineage    []*State
	path       string
	fullPath   string
	pattern    *pathmatch.Pattern
	paramsSpec Params
	redirect   Redirect
	component  any

	enter       EnterFunc
	leave       LeaveFunc
	handleError ErrorFunc
}

// InferParentName strips the last dot-separated segment of name.
func InferParentName(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[:i]
}

// NewState builds a state under parent (nil for a root). Registries are expected
// to resolve parent and enforce name uniqueness.
func NewState(spec StateSpec, parent *State) (*State, error) {
	if spec.Name == "" {
		return nil, &InvalidStateError{Reason: "name is required"}
	}

	s := &State{
		name:        spec.Name,
		parent:      parent,
		path:        spec.Path,
		redirect:    spec.Redirect,
		component:   spec.Component,
		enter:       spec.Enter,
		leave:       spec.Leave,
		handleError: spec.HandleError,
	}

	if parent != nil {
		s.lineage = make([]*State, 0, len(parent.lineage)+1)
		s.lineage = append(s.lineage, parent.lineage...)
	}
	s.lineage = append(s.lineage, s)

	s.fullPath = joinPath(parent, spec.Path)
	pattern, err := pathmatch.Compile(s.fullPath)
	if err != nil {
		return nil, &InvalidStateError{Name: spec.Name, Reason: "bad path", Err: err}
	}
	s.pattern = pattern

	s.paramsSpec = spec.Params.Clone()
	for _, name := range pattern.Names() {
		if _, ok := s.paramsSpec[name]; !ok {
			s.paramsSpec[name] = nil
		}
	}
	return s, nil
}

func joinPath(parent *State, path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	parentPath := "/"
	if parent != nil {
		parentPath = parent.fullPath
	}
	full := strings.TrimRight(parentPath, "/")
	if path != "" {
		full += "/" + path
	}
	if full == "" {
		return "/"
	}
	return full
}

func (s *State) Name() string { return s.name }

// Parent returns the parent state, nil for roots.
func (s *State) Parent() *State { return s.parent }

// Lineage returns the states from the root to s, inclusive.
func (s *State) Lineage() []*State {
	out := make([]*State, len(s.lineage))
	copy(out, s.lineage)
	return out
}

// Depth is the index of s in its own lineage.
func (s *State) Depth() int { return len(s.lineage) - 1 }

// Path returns the fragment as given at registration.
func (s *State) Path() string { return s.path }

// FullPath returns the absolute path pattern.
func (s *State) FullPath() string { return s.fullPath }

// PathParams returns capture names of the full path in order.
func (s *State) PathParams() []string { return s.pattern.Names() }

// ParamsSpec returns a copy of the accepted params and their defaults.
func (s *State) ParamsSpec() Params { return s.paramsSpec.Clone() }

func (s *State) Redirect() Redirect { return s.redirect }
func (s *State) Component() any { return s.component }

// Includes reports whether other is s or one of its ancestors.
func (s *State) Includes(other *State) bool {
	if other == nil {
		return false
	}
	for _, st := range s.lineage {
		if st == other {
			return true
		}
	}
	return false
}

// Next returns the state following prev in the lineage of s, starting from the
// root when prev is nil. It returns nil once s is reached or if prev is not an ancestor.
func (s *State) Next(prev *State) *State {
	if prev == nil {
		return s.lineage[0]
	}
	for i, st := range s.lineage {
		if st == prev {
			if i+1 < len(s.lineage) {
				return s.lineage[i+1]
			}
			return nil
		}
	}
	return nil
}

// MakeParams restricts target to the declared params, filling in defaults.
func (s *State) MakeParams(target Params) Params {
	out := make(Params, len(s.paramsSpec))
	for name, def := range s.paramsSpec {
		if v, ok := target[name]; ok {
			out[name] = v
		} else {
			out[name] = def
		}
	}
	return out
}

// Match matches loc against the full path, merging query params on top of path
// captures. Params whose default is a slice always come back as []string.
// Malformed queries are ignored.
func (s *State) Match(loc Location) (Params, bool) {
	captures, ok := s.pattern.Match(loc.Path)
	if !ok {
		return nil, false
	}
	params := make(Params, len(captures))
	for k, v := range captures {
		params[k] = v
	}
	var lists []string
	for name, def := range s.paramsSpec {
		if pathmatch.IsList(def) {
			lists = append(lists, name)
		}
	}
	if query, err := pathmatch.ParseQuery(loc.RawQuery, lists...); err == nil {
		for k, v := range query {
			params[k] = v
		}
	}
	return params, true
}

// URL formats params into the full path plus a query of the non-path params.
func (s *State) URL(params Params) (string, error) {
	path, err := s.pattern.Format(params)
	if err != nil {
		return "", err
	}
	if q := pathmatch.EncodeQuery(params, s.pattern.Names()...); q != "" {
		return path + "?" + q, nil
	}
	return path, nil
}

// Enter runs the enter hook; the default resolves an empty Result.
func (s *State) Enter(ctx context.Context, c *Context) (Result, error) {
	if s.enter == nil {
		return Result{}, nil
	}
	return s.enter(ctx, c)
}

// Leave runs the leave hook; the default is a no-op.
func (s *State) Leave(ctx context.Context, c *Context) error {
	if s.leave == nil {
		return nil
	}
	return s.leave(ctx, c)
}

// HandleError runs the error hook; the default returns err unchanged.
func (s *State) HandleError(ctx context.Context, err error, c *Context) (Result, error) {
	if s.handleError == nil {
		return Result{}, err
	}
	return s.handleError(ctx, err, c)
}

func (s *State) String() string { return s.name }
