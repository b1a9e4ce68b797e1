package domain

// Context is one entered state of the active chain. The synthetic root context
// has a nil State. Contexts are built fresh for every downstream step; only
// Data, View and Params (through history updates) are mutated after creation.
type Context struct {
	Parent *Context
	State  *State
	Params Params
	// Data is inherited (shallow-copied) from the parent; Enter hooks stash resolved data here.
	Data map[string]any
	// View is the handle returned by the renderer, disposed on teardown.
	View any
}

// NewRootContext returns the synthetic context preceding every root state.
func NewRootContext() *Context {
	return &Context{
		Params: Params{},
		Data:   make(map[string]any),
	}
}

// Child builds the context for entering state below c: params are inherited and
// overridden by the state's own params computed from target.
func (c *Context) Child(state *State, target Params) *Context {
	data := make(map[string]any, len(c.Data))
	for k, v := range c.Data {
		data[k] = v
	}
	return &Context{
		Parent: c,
		State:  state,
		Params: c.Params.Merge(state.MakeParams(target)),
		Data:   data,
	}
}

// IsRoot reports whether c is the synthetic root.
func (c *Context) IsRoot() bool { return c.State == nil }

// StateName returns the state name, empty for the root.
func (c *Context) StateName() string {
	if c.State == nil {
		return ""
	}
	return c.State.Name()
}

// Lineage returns the non-root contexts from the outermost to c.
func (c *Context) Lineage() []*Context {
	var out []*Context
	for ctx := c; ctx != nil && ctx.State != nil; ctx = ctx.Parent {
		out = append(out, ctx)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Names returns the state names of Lineage.
func (c *Context) Names() []string {
	lineage := c.Lineage()
	names := make([]string, len(lineage))
	for i, ctx := range lineage {
		names[i] = ctx.State.Name()
	}
	return names
}

// Snapshot is a serializable view of a context chain.
type Snapshot struct {
	State   string         `json:"state"`
	Lineage []string       `json:"lineage"`
	Params  Params         `json:"params"`
	Data    map[string]any `json:"data,omitempty"`
}

// Snapshot captures c for transport and diffing.
func (c *Context) Snapshot() Snapshot {
	return Snapshot{
		State:   c.StateName(),
		Lineage: c.Names(),
		Params:  c.Params.Clone(),
		Data:    c.Data,
	}
}
