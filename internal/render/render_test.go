package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldevran/grep-tui/internal/model"
)

func TestShortenPathUnderRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "Main.hs")
	assert.Equal(t, filepath.Join(".", "src", "Main.hs"), ShortenPath(path, []string{root}))
}

func TestShortenPathFirstMatchingRootWins(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	path := filepath.Join(rootB, "x.hs")
	assert.Equal(t, filepath.Join(".", "x.hs"), ShortenPath(path, []string{rootA, rootB}))
}

func TestShortenPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	path := filepath.Join(home, "code", "x.hs")
	assert.Equal(t, filepath.Join("~", "code", "x.hs"), ShortenPath(path, nil))
}

func TestShortenPathOutsideAllPrefixes(t *testing.T) {
	assert.Equal(t, "/somewhere/else.hs", ShortenPath("/somewhere/else.hs", []string{t.TempDir()}))
}

func TestRowsTruncateLongContent(t *testing.T) {
	long := strings.Repeat("x", MaxRowContentLength+500)
	rows := Rows([]model.Match{{Path: "min.js", Line: 1, Col: 1, Content: long}}, nil)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Content, MaxRowContentLength)
}

func TestRowsTrimAndLocate(t *testing.T) {
	rows := Rows([]model.Match{
		{Path: "a.hs", Line: 3, Col: 7, Content: "  body  "},
	}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "a.hs:3:7", rows[0].Location)
	assert.Equal(t, "body", rows[0].Content)
}

func TestReportGroupsByFirstSeenPath(t *testing.T) {
	matches := []model.Match{
		{Path: "b.hs", Line: 2, Col: 1, Content: "two"},
		{Path: "a.hs", Line: 1, Col: 1, Content: "one"},
		{Path: "b.hs", Line: 9, Col: 4, Content: "nine"},
	}

	report := Report(matches, "q")
	assert.Contains(t, report, `grep-tui matches for "q" (3 lines in 2 files):`)

	// b.hs was seen first, so its block precedes a.hs.
	assert.Less(t, strings.Index(report, "b.hs:"), strings.Index(report, "a.hs:"))
	assert.Contains(t, report, "  2:1 two")
	assert.Contains(t, report, "  9:4 nine")
	assert.Contains(t, report, "  1:1 one")
}

func TestPrintReportPlainWriter(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	PrintReport(&buf, []model.Match{
		{Path: "a.hs", Line: 1, Col: 1, Content: "one"},
	}, "one")

	out := buf.String()
	assert.Contains(t, out, "1 lines in 1 files")
	assert.Contains(t, out, "a.hs:")
	assert.Contains(t, out, "1:1 one")
}
