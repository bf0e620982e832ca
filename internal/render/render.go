package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ldevran/grep-tui/internal/model"
)

// MaxRowContentLength trims result rows to a sane width. Without a cap,
// minified Javascript and the like make the list view unusably slow.
const MaxRowContentLength = 1000

// Row is one display entry for the interactive list: a shortened
// location and the matched text.
type Row struct {
	Location string
	Content  string
}

// ShortenPath abbreviates a path for display: paths under one of the
// search roots render relative to it with a "." prefix, and paths under
// the home directory render with "~".
func ShortenPath(path string, roots []string) string {
	home, _ := os.UserHomeDir()

	type abbrev struct{ prefix, short string }
	var abbrevs []abbrev
	for _, root := range roots {
		abbrevs = append(abbrevs, abbrev{root, "."})
	}
	if home != "" {
		abbrevs = append(abbrevs, abbrev{home, "~"})
	}

	for _, a := range abbrevs {
		rel, err := filepath.Rel(a.prefix, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		return filepath.Join(a.short, rel)
	}
	return path
}

// Rows builds the flat listing used by the selection UI.
func Rows(matches []model.Match, roots []string) []Row {
	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		content := strings.TrimSpace(m.Content)
		if len(content) > MaxRowContentLength {
			content = content[:MaxRowContentLength]
		}
		short := model.Match{
			Path: ShortenPath(m.Path, roots),
			Line: m.Line,
			Col:  m.Col,
		}
		rows = append(rows, Row{Location: short.Location(), Content: content})
	}
	return rows
}

// fileGroup keeps per-file matches in first-seen order.
type fileGroup struct {
	path    string
	matches []model.Match
}

func groupByPath(matches []model.Match) []fileGroup {
	var groups []fileGroup
	index := make(map[string]int)
	for _, m := range matches {
		i, ok := index[m.Path]
		if !ok {
			i = len(groups)
			index[m.Path] = i
			groups = append(groups, fileGroup{path: m.Path})
		}
		groups[i].matches = append(groups[i].matches, m)
	}
	return groups
}

// Report renders the grouped textual report: a header with the query and
// totals, then one block per file in first-seen order.
func Report(matches []model.Match, query string) string {
	groups := groupByPath(matches)

	var b strings.Builder
	fmt.Fprintf(&b, "grep-tui matches for %q (%d lines in %d files):\n\n",
		query, len(matches), len(groups))

	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		blocks = append(blocks, renderFileBlock(g))
	}
	b.WriteString(strings.Join(blocks, "\n"))
	return b.String()
}

func renderFileBlock(g fileGroup) string {
	lines := make([]string, 0, len(g.matches))
	for _, m := range g.matches {
		lines = append(lines, fmt.Sprintf("  %d:%d %s", m.Line, m.Col, m.Content))
	}
	return fmt.Sprintf("%s:\n%s", g.path, strings.Join(lines, "\n"))
}
