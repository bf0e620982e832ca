package tui

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldevran/grep-tui/internal/config"
	"github.com/ldevran/grep-tui/internal/engine"
	"github.com/ldevran/grep-tui/internal/model"
	"github.com/ldevran/grep-tui/internal/tui/resultsview"
	"github.com/ldevran/grep-tui/internal/ui"
)

type App struct {
	cfg    config.Config
	eng    *engine.Engine
	roots  []string
	mode   model.Mode
	search resultsview.Model

	width  int
	height int
	status string
}

// NewApp wires the search pipeline into the interactive UI. If
// initialQuery is nonempty the first search fires immediately, skipping
// the prompt.
func NewApp(cfg config.Config, eng *engine.Engine, mode model.Mode, roots []string, initialQuery string) App {
	return App{
		cfg:    cfg,
		eng:    eng,
		roots:  roots,
		mode:   mode,
		search: resultsview.New(initialQuery),
		status: fmt.Sprintf("%d roots | %s mode", len(roots), mode),
	}
}

func (a App) Init() tea.Cmd {
	if q := a.search.Query(); q != "" {
		a.search.StartSearch()
		return tea.Batch(a.search.Init(), a.runSearch(q))
	}
	return a.search.Init()
}

func (a App) runSearch(query string) tea.Cmd {
	eng, mode, roots := a.eng, a.mode, a.roots
	return func() tea.Msg {
		matches, err := eng.Search(context.Background(), mode, model.Request{
			Query: query,
			Roots: roots,
		})
		return ui.SearchDoneMsg{Query: query, Mode: mode, Matches: matches, Err: err}
	}
}

// openInEditor suspends the UI and opens the match location in $EDITOR.
// Relative engine paths resolve against the first search root, the same
// directory the engine ran in.
func (a App) openInEditor(m model.Match) tea.Cmd {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, fmt.Sprintf("+%d", m.Line), m.Path)
	cmd.Dir = a.roots[0]
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return ui.EditorClosedMsg{Err: err}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width - 2, Height: msg.Height - 4}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(inner)
		return a, cmd

	case ui.SearchDoneMsg:
		if msg.Err != nil {
			a.search.PromptAgain()
			a.status = ui.StyleFailure.Render("Error: " + msg.Err.Error())
			return a, nil
		}
		if len(msg.Matches) == 0 {
			a.search.PromptAgain()
			a.status = fmt.Sprintf("No results for %q", msg.Query)
			return a, nil
		}
		a.status = fmt.Sprintf("%d matches for %q", len(msg.Matches), msg.Query)
		a.search.SetResults(msg.Query, msg.Matches, a.roots)
		return a, nil

	case ui.EditorClosedMsg:
		if msg.Err != nil {
			a.status = ui.StyleFailure.Render("Editor: " + msg.Err.Error())
		}
		return a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.search.IsInputMode() {
			if key.Matches(msg, ui.Keys.Mode) {
				a.mode = a.toggleMode()
				a.status = fmt.Sprintf("%d roots | %s mode", len(a.roots), a.mode)
				return a, nil
			}
			switch msg.String() {
			case "enter":
				if q := a.search.Query(); q != "" && !a.search.IsLoading() {
					a.search.StartSearch()
					return a, a.runSearch(q)
				}
				return a, nil
			case "esc":
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(msg)
			return a, cmd
		}

		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter":
			if m := a.search.SelectedMatch(); m != nil {
				return a, a.openInEditor(*m)
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return a, cmd
}

func (a App) toggleMode() model.Mode {
	if a.mode == model.ModePlain {
		return model.ModeHaskell
	}
	return model.ModePlain
}

func (a App) contextHints() string {
	if a.search.IsInputMode() {
		return "enter:search  ctrl+t:mode  esc:quit"
	}
	return "enter:open  l:list  j/k:navigate  /:new search  q:quit"
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	contentH := a.height - 4
	if contentH < 1 {
		contentH = 1
	}
	content := ui.StylePaneFocused.Width(a.width - 2).Height(contentH).
		Render(a.search.View())

	header := RenderHeader(a.cfg.EngineName, a.mode, a.width)
	statusbar := RenderStatusBar(a.status, a.contextHints(), a.width)

	return header + "\n" + content + "\n" + statusbar
}
