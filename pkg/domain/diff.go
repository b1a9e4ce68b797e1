package domain

// Diff describes how the active chain changed between two contexts.
// It is designed to be serialized to JSON for clients tracking navigation.
type Diff struct {
	// Left lists states torn down, leaf first.
	Left []string `json:"left,omitempty"`
	// Entered lists states entered, root first.
	Entered []string `json:"entered,omitempty"`
	// Params contains changed, added or deleted params of the new leaf.
	// Deletions carry a nil value.
	Params map[string]any `json:"params,omitempty"`
}

// IsEmpty reports whether nothing changed.
func (d *Diff) IsEmpty() bool {
	return len(d.Left) == 0 && len(d.Entered) == 0 && len(d.Params) == 0
}

// DiffContexts compares two active chains. Contexts are compared by identity, so
// a state re-entered with new params shows up in both Left and Entered.
// A nil old context is treated as the synthetic root.
func DiffContexts(old, new *Context) *Diff {
	if new == nil {
		return nil
	}
	oldChain := old.lineageOrNil()
	newChain := new.Lineage()

	common := 0
	for common < len(oldChain) && common < len(newChain) && oldChain[common] == newChain[common] {
		common++
	}

	d := &Diff{}
	for i := len(oldChain) - 1; i >= common; i-- {
		d.Left = append(d.Left, oldChain[i].State.Name())
	}
	for _, ctx := range newChain[common:] {
		d.Entered = append(d.Entered, ctx.State.Name())
	}
	d.Params = diffParams(old, new)
	return d
}

func (c *Context) lineageOrNil() []*Context {
	if c == nil {
		return nil
	}
	return c.Lineage()
}

func diffParams(old, new *Context) map[string]any {
	delta := make(map[string]any)

	var before Params
	if old != nil {
		before = old.Params
	}

	for k, v := range new.Params {
		prev, exists := before[k]
		if !exists || !ParamsEqual(prev, v) {
			delta[k] = v
		}
	}
	for k := range before {
		if _, exists := new.Params[k]; !exists {
			delta[k] = nil
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}
