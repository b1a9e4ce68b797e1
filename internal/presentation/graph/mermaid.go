package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/voie/pkg/domain"
)

// GraphOverlay contains the active chain to highlight on the graph.
type GraphOverlay struct {
	ActiveStates []string
	CurrentState string
}

// OverlayFor builds the overlay of an active context.
func OverlayFor(c *domain.Context) *GraphOverlay {
	if c == nil || c.IsRoot() {
		return &GraphOverlay{}
	}
	return &GraphOverlay{
		ActiveStates: c.Names(),
		CurrentState: c.StateName(),
	}
}

// GenerateMermaid produces a Mermaid flowchart of the state tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Redirecting: {{Hexagon}}
// - Parametrized path: [/Parallelogram/]
// - Default: [Rectangle]
// Parent links are solid arrows, static redirects are dotted arrows.
// It also applies overlay styles (Active/Current) if provided.
func GenerateMermaid(states []*domain.State, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, st := range states {
		safeID := sanitizeMermaidID(st.Name())

		opener, closer := "[", "]"
		switch {
		case st.Parent() == nil:
			opener, closer = "((", "))"
		case !st.Redirect().IsZero():
			opener, closer = "{{", "}}"
		case len(st.PathParams()) > 0:
			opener, closer = "[/", "/]"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> %s\"%s\n", safeID, opener, st.Name(), escapeLabel(st.FullPath()), closer))

		if p := st.Parent(); p != nil {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(p.Name()), safeID))
		}

		switch r := st.Redirect(); r.Kind() {
		case domain.RedirectName, domain.RedirectNamed:
			sb.WriteString(fmt.Sprintf("    %s -. redirect .-> %s\n", safeID, sanitizeMermaidID(r.Name())))
		}
	}

	// Apply Overlay Styles
	if overlay != nil && overlay.CurrentState != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef active fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.ActiveStates {
			safeID := sanitizeMermaidID(name)
			if name == overlay.CurrentState || seen[safeID] || safeID == "" {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s active;\n", safeID))
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
