package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned by definition search when the query is
	// empty after trimming. Plain search treats an empty query as zero
	// results instead.
	ErrEmptyQuery = errors.New("empty search query")
)

// EngineError means the external search process failed, either by the
// engine's own error policy or by hitting the run timeout. Stderr holds
// whatever diagnostic text the process produced, possibly empty.
type EngineError struct {
	Engine string
	Stderr string
	Err    error
}

func (e *EngineError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %s", e.Engine, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Engine)
}

func (e *EngineError) Unwrap() error { return e.Err }

// MalformedMatchError means an engine output line did not have the
// expected path:line:col:content shape. This is a configuration problem
// (wrong engine flags), not a per-line condition, so it aborts the search.
type MalformedMatchError struct {
	Line   string
	Reason string
}

func (e *MalformedMatchError) Error() string {
	return fmt.Sprintf("malformed match line (%s): %s", e.Reason, e.Line)
}
