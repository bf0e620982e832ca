package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ldevran/grep-tui/internal/model"
)

var (
	headerColor   = color.New(color.Bold)
	pathColor     = color.New(color.FgCyan, color.Bold)
	locationColor = color.New(color.FgYellow)
)

// PrintReport writes the grouped report to w with per-part coloring.
// Color degrades to plain text automatically on non-terminal writers.
func PrintReport(w io.Writer, matches []model.Match, query string) {
	groups := groupByPath(matches)

	headerColor.Fprintf(w, "grep-tui matches for %q (%d lines in %d files):\n\n",
		query, len(matches), len(groups))

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		pathColor.Fprintf(w, "%s:\n", g.path)
		for _, m := range g.matches {
			locationColor.Fprintf(w, "  %d:%d ", m.Line, m.Col)
			fmt.Fprintln(w, m.Content)
		}
	}
}
