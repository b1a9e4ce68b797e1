package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/voie/pkg/domain"
)

// Printer writes the active context chain with terminal styling.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter creates a printer on w. Pass termenv.WithProfile(termenv.Ascii)
// to disable colors.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w, opts...)}
}

// PrintChain prints "app › users › users.list" with the leaf highlighted,
// followed by the leaf params sorted by key.
func (p *Printer) PrintChain(c *domain.Context) {
	if c == nil || c.IsRoot() {
		fmt.Fprintln(p.w, p.out.String("(root)").Faint())
		return
	}

	names := c.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		if i == len(names)-1 {
			parts[i] = p.out.String(name).Bold().Foreground(p.out.Color("#fbbf24")).String()
			continue
		}
		parts[i] = p.out.String(name).Foreground(p.out.Color("#60a5fa")).String()
	}
	fmt.Fprintln(p.w, strings.Join(parts, " › "))

	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(p.w, "  %s = %v\n", p.out.String(k).Faint(), c.Params[k])
	}
}
