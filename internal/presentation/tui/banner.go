package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the voie ASCII art banner.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Teal/Cyan)
	lines := []struct {
		text  string
		color string
	}{
		{" __   __   _", "#2dd4bf"},
		{" \\ \\ / /__(_) ___", "#22d3ee"},
		{"  \\ V / _ \\ |/ _ \\", "#38bdf8"},
		{"   \\_/\\___/_|\\___/", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
