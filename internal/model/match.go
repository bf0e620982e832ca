package model

import "fmt"

// Mode selects how a query is expanded before it reaches the engine.
type Mode int

const (
	// ModePlain passes the query to the engine verbatim.
	ModePlain Mode = iota
	// ModeHaskell expands the query into a plan of definition-site
	// sub-queries for Haskell source.
	ModeHaskell
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeHaskell:
		return "haskell"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request is one search invocation: a query plus the directories the
// engine is allowed to scan. Roots must be non-empty.
type Request struct {
	Query string
	Roots []string
}

// Match is a single matched line as reported by the engine. Paths are
// engine-reported and may be relative to the first search root. Line and
// Col are 1-based.
type Match struct {
	Path    string
	Line    int
	Col     int
	Content string
}

// Location renders the path:line:col form editors accept as a jump target.
func (m Match) Location() string {
	return fmt.Sprintf("%s:%d:%d", m.Path, m.Line, m.Col)
}

// RawLine renders the match back into the engine's output format. Only
// meaningful when Content has no embedded newline.
func (m Match) RawLine() string {
	return fmt.Sprintf("%s:%d:%d:%s", m.Path, m.Line, m.Col, m.Content)
}

// SubQuery is one regex search issued as part of a definition-search plan,
// labelled by the syntactic construct it targets.
type SubQuery struct {
	Label   string
	Pattern string
}

// Plan is an ordered set of sub-queries. Running a plan runs each
// sub-query as an independent search and concatenates the results in
// plan order.
type Plan []SubQuery
