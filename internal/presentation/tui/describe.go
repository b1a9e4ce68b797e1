package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/voie/pkg/domain"
)

// DescribeStates renders the state table as markdown. States on the active
// chain of current are marked.
func DescribeStates(states []*domain.State, current *domain.Context) string {
	active := make(map[string]bool)
	leaf := ""
	if current != nil && !current.IsRoot() {
		for _, name := range current.Names() {
			active[name] = true
		}
		leaf = current.StateName()
	}

	var sb strings.Builder
	sb.WriteString("# States\n\n")
	sb.WriteString("| | State | Path | Params | Redirect |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, st := range states {
		marker := ""
		switch {
		case st.Name() == leaf:
			marker = "●"
		case active[st.Name()]:
			marker = "○"
		}
		fmt.Fprintf(&sb, "| %s | `%s` | `%s` | %s | %s |\n",
			marker, st.Name(), st.FullPath(), describeParams(st.ParamsSpec()), describeRedirect(st.Redirect()))
	}
	return sb.String()
}

func describeParams(spec domain.Params) string {
	if len(spec) == 0 {
		return ""
	}
	keys := make([]string, 0, len(spec))
	for k := range spec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		if v := spec[k]; v != nil {
			parts[i] = fmt.Sprintf("%s=%v", k, v)
		} else {
			parts[i] = k
		}
	}
	return strings.Join(parts, ", ")
}

func describeRedirect(r domain.Redirect) string {
	if r.IsZero() {
		return ""
	}
	return "→ " + r.String()
}
