package engine

import "github.com/ldevran/grep-tui/internal/model"

// Collapse removes near-duplicate matches in a single forward pass. Each
// match is compared against the immediately preceding input match, even
// when that one was itself dropped:
//
//   - different path: kept (a new file resets the comparison)
//   - same path, same line: dropped (the query hit the line more than once)
//   - same path, line exactly one below the previous, ignoreAdjacents set:
//     dropped
//   - anything else: kept
//
// Engines report a multi-line match once per physical line; with
// ignoreAdjacents such a run collapses to its first line. The heuristic
// cannot tell a split multi-line match from two genuine hits on
// consecutive lines, so it is opt-in and only used for definition search,
// where definitions are expected to be sparse.
func Collapse(matches []model.Match, ignoreAdjacents bool) []model.Match {
	if len(matches) == 0 {
		return nil
	}

	kept := make([]model.Match, 0, len(matches))
	kept = append(kept, matches[0])

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if cur.Path == prev.Path {
			if cur.Line == prev.Line {
				continue
			}
			if ignoreAdjacents && cur.Line == prev.Line+1 {
				continue
			}
		}
		kept = append(kept, cur)
	}
	return kept
}
