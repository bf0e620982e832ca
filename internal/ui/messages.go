package ui

import "github.com/ldevran/grep-tui/internal/model"

// SearchDoneMsg carries a finished search back into the update loop.
type SearchDoneMsg struct {
	Query   string
	Mode    model.Mode
	Matches []model.Match
	Err     error
}

// EditorClosedMsg fires when the spawned $EDITOR process exits.
type EditorClosedMsg struct {
	Err error
}

type StatusMsg struct {
	Text string
}
