package engine

import (
	"strconv"
	"strings"

	"github.com/ldevran/grep-tui/internal/model"
)

// ParseMatch converts one engine output line into a Match. The expected
// shape is path:line:col:content; content may itself contain colons, so
// the split is bounded at four fields.
//
// A line that does not fit is a format mismatch between the configured
// engine and this parser, so it is reported rather than skipped: silently
// dropping lines would hide a systematic misconfiguration.
func ParseMatch(raw string) (model.Match, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 4 {
		return model.Match{}, &MalformedMatchError{Line: raw, Reason: "too few colon-separated fields"}
	}

	line, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Match{}, &MalformedMatchError{Line: raw, Reason: "line number not an integer"}
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return model.Match{}, &MalformedMatchError{Line: raw, Reason: "column number not an integer"}
	}

	return model.Match{
		Path:    strings.TrimSpace(parts[0]),
		Line:    line,
		Col:     col,
		Content: parts[3],
	}, nil
}

// parseLines maps ParseMatch over a full engine output, failing on the
// first malformed line.
func parseLines(lines []string) ([]model.Match, error) {
	matches := make([]model.Match, 0, len(lines))
	for _, raw := range lines {
		m, err := ParseMatch(raw)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
