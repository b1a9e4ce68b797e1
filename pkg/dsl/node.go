package dsl

import "github.com/aretw0/voie/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	spec    domain.StateSpec
	builder *Builder
}

// Parent names the parent explicitly instead of inferring it from the dotted name.
func (s *StateBuilder) Parent(name string) *StateBuilder {
	s.spec.Parent = name
	return s
}

// Path sets the path segment ("users", ":id") or an absolute path ("/login").
func (s *StateBuilder) Path(path string) *StateBuilder {
	s.spec.Path = path
	return s
}

// Param declares an accepted param with its default value.
func (s *StateBuilder) Param(key string, def any) *StateBuilder {
	if s.spec.Params == nil {
		s.spec.Params = make(domain.Params)
	}
	s.spec.Params[key] = def
	return s
}

// Redirect forwards navigation to the named state.
func (s *StateBuilder) Redirect(target string) *StateBuilder {
	s.spec.Redirect = domain.RedirectTo(target)
	return s
}

// RedirectWith forwards navigation to the named state with param overrides.
func (s *StateBuilder) RedirectWith(target string, params domain.Params) *StateBuilder {
	s.spec.Redirect = domain.RedirectWith(target, params)
	return s
}

// RedirectBy computes the redirect when the state is targeted.
func (s *StateBuilder) RedirectBy(fn domain.RedirectFunc) *StateBuilder {
	s.spec.Redirect = domain.RedirectBy(fn)
	return s
}

// Component sets the marker handed to the renderer.
func (s *StateBuilder) Component(c any) *StateBuilder {
	s.spec.Component = c
	return s
}

func (s *StateBuilder) OnEnter(fn domain.EnterFunc) *StateBuilder {
	s.spec.Enter = fn
	return s
}

func (s *StateBuilder) OnLeave(fn domain.LeaveFunc) *StateBuilder {
	s.spec.Leave = fn
	return s
}

func (s *StateBuilder) OnError(fn domain.ErrorFunc) *StateBuilder {
	s.spec.HandleError = fn
	return s
}

// Add starts the next state on the same builder, for chaining.
func (s *StateBuilder) Add(name string) *StateBuilder {
	return s.builder.Add(name)
}

// Build returns the underlying domain.StateSpec.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StateBuilder) Build() domain.StateSpec {
	spec := s.spec
	spec.Params = s.spec.Params.Clone()
	return spec
}
