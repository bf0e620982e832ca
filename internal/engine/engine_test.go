package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldevran/grep-tui/internal/config"
	"github.com/ldevran/grep-tui/internal/model"
)

func newTestEngine(t *testing.T, engineName, script string) (*Engine, string) {
	t.Helper()
	cfg, root := stubEngine(t, engineName, script)
	eng, err := New(cfg)
	require.NoError(t, err)
	return eng, root
}

func TestSearchPlainEndToEnd(t *testing.T) {
	// Engine output with an exact duplicate on line 10: the duplicate
	// collapses, the non-adjacent line 12 and the other file survive.
	eng, root := newTestEngine(t, "ripgrep", `printf '%s\n' \
		'src/a.py:10:3:def foo():' \
		'src/a.py:10:3:def foo():' \
		'src/a.py:12:1:    return 1' \
		'src/b.py:5:2:import foo'`)

	matches, err := eng.Search(context.Background(), model.ModePlain, model.Request{
		Query: "foo",
		Roots: []string{root},
	})
	require.NoError(t, err)

	want := []model.Match{
		{Path: "src/a.py", Line: 10, Col: 3, Content: "def foo():"},
		{Path: "src/a.py", Line: 12, Col: 1, Content: "    return 1"},
		{Path: "src/b.py", Line: 5, Col: 2, Content: "import foo"},
	}
	assert.Equal(t, want, matches)
}

func TestSearchPlainKeepsAdjacentLines(t *testing.T) {
	eng, root := newTestEngine(t, "ripgrep", `printf '%s\n' \
		'a.hs:1:1:x' 'a.hs:2:1:y' 'a.hs:3:1:z'`)

	matches, err := eng.Search(context.Background(), model.ModePlain, model.Request{
		Query: "x", Roots: []string{root},
	})
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestSearchHaskellCollapsesAcrossSubQueries(t *testing.T) {
	// Every sub-query reports the same definition site; the combined
	// stream collapses to a single match.
	eng, root := newTestEngine(t, "ripgrep", `echo 'src/A.hs:10:1:data Foo = Foo'`)

	matches, err := eng.Search(context.Background(), model.ModeHaskell, model.Request{
		Query: "Foo", Roots: []string{root},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Match{{Path: "src/A.hs", Line: 10, Col: 1, Content: "data Foo = Foo"}}, matches)
}

func TestSearchHaskellCollapsesAdjacentLines(t *testing.T) {
	// A two-line definition reported line by line folds into its first
	// line in definition mode.
	eng, root := newTestEngine(t, "ripgrep", "printf 'A.hs:5:1:data T\\nA.hs:6:1:  = C\\n'\nexit 2")

	matches, err := eng.Search(context.Background(), model.ModeHaskell, model.Request{
		Query: "justOnce", Roots: []string{root},
	})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, 5, matches[0].Line)
}

func TestSearchHaskellAbortsOnSubQueryFailure(t *testing.T) {
	countFile := filepath.Join(t.TempDir(), "count")
	script := fmt.Sprintf(`count=$(cat %[1]q 2>/dev/null || echo 0)
count=$((count + 1))
echo "$count" > %[1]q
if [ "$count" -ge 2 ]; then
  echo 'engine blew up' >&2
  exit 2
fi
echo 'src/A.hs:1:1:foo :: Int'`, countFile)

	eng, root := newTestEngine(t, "ripgrep", script)

	_, err := eng.Search(context.Background(), model.ModeHaskell, model.Request{
		Query: "foo", Roots: []string{root},
	})
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, "engine blew up", engErr.Stderr)

	// The failure on sub-query 2 must stop sub-queries 3 and beyond.
	data, readErr := os.ReadFile(countFile)
	require.NoError(t, readErr)
	assert.Equal(t, "2\n", string(data))
}

func TestSearchHaskellEmptyQuery(t *testing.T) {
	eng, root := newTestEngine(t, "ripgrep", `exit 0`)

	_, err := eng.Search(context.Background(), model.ModeHaskell, model.Request{
		Query: "   ", Roots: []string{root},
	})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchPlainEmptyQueryIsNoResults(t *testing.T) {
	eng, root := newTestEngine(t, "ripgrep", `echo 'a.hs:1:1:everything'`)

	matches, err := eng.Search(context.Background(), model.ModePlain, model.Request{
		Query: "   ", Roots: []string{root},
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchNoRoots(t *testing.T) {
	eng, _ := newTestEngine(t, "ripgrep", `exit 0`)

	_, err := eng.Search(context.Background(), model.ModePlain, model.Request{Query: "x"})
	assert.ErrorIs(t, err, config.ErrNoSearchRoots)
}

func TestSearchMalformedEngineOutput(t *testing.T) {
	eng, root := newTestEngine(t, "ripgrep", `echo 'not a match line'`)

	_, err := eng.Search(context.Background(), model.ModePlain, model.Request{
		Query: "x", Roots: []string{root},
	})
	var malformed *MalformedMatchError
	require.ErrorAs(t, err, &malformed)
}
