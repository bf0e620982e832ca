package resultsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldevran/grep-tui/internal/model"
	"github.com/ldevran/grep-tui/internal/render"
	"github.com/ldevran/grep-tui/internal/ui"
)

type Mode int

const (
	// ModeInput shows the query prompt.
	ModeInput Mode = iota
	// ModeResults shows the selectable flat match list.
	ModeResults
	// ModeReport shows the grouped per-file report.
	ModeReport
)

type Model struct {
	input    textinput.Model
	viewport viewport.Model
	query    string
	matches  []model.Match
	rows     []render.Row
	report   string
	mode     Mode
	cursor   int
	width    int
	height   int
	loading  bool
	ready    bool
}

func New(initialQuery string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.CharLimit = 256
	ti.SetValue(initialQuery)
	ti.Focus()

	return Model{input: ti}
}

func (m Model) Query() string { return m.input.Value() }

func (m Model) IsInputMode() bool { return m.mode == ModeInput }

func (m Model) IsLoading() bool { return m.loading }

func (m *Model) StartSearch() {
	m.loading = true
}

// SetResults switches to the results list for a finished search.
func (m *Model) SetResults(query string, matches []model.Match, roots []string) {
	m.loading = false
	m.query = query
	m.matches = matches
	m.rows = render.Rows(matches, roots)
	m.report = render.Report(matches, query)
	m.cursor = 0
	m.mode = ModeResults
	m.input.Blur()
	m.refresh()
}

// PromptAgain returns to the input prompt, keeping the previous query
// text selected for editing.
func (m *Model) PromptAgain() {
	m.loading = false
	m.mode = ModeInput
	m.input.Focus()
}

func (m Model) SelectedMatch() *model.Match {
	if m.mode == ModeInput || m.cursor >= len(m.matches) {
		return nil
	}
	return &m.matches[m.cursor]
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeInput {
			if msg.String() == "enter" {
				// Parent dispatches the search.
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Down):
			if m.mode == ModeResults && m.cursor < len(m.matches)-1 {
				m.cursor++
				m.refresh()
				return m, nil
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.mode == ModeResults && m.cursor > 0 {
				m.cursor--
				m.refresh()
				return m, nil
			}
		case key.Matches(msg, ui.Keys.ListView):
			if m.mode == ModeResults {
				m.mode = ModeReport
				m.refresh()
				return m, nil
			}
		case key.Matches(msg, ui.Keys.Search):
			m.PromptAgain()
			return m, textinput.Blink
		case key.Matches(msg, ui.Keys.Back):
			if m.mode == ModeReport {
				m.mode = ModeResults
				m.refresh()
				return m, nil
			}
			m.PromptAgain()
			return m, textinput.Blink
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	switch m.mode {
	case ModeResults:
		m.viewport.SetContent(m.renderRows())
		m.scrollToCursor()
	case ModeReport:
		m.viewport.SetContent(m.report)
	}
}

// scrollToCursor keeps the selected row inside the viewport. The two
// header lines above the rows shift everything down by two.
func (m *Model) scrollToCursor() {
	line := m.cursor + 2
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m Model) renderRows() string {
	var b strings.Builder
	paths := make(map[string]struct{}, len(m.matches))
	for _, match := range m.matches {
		paths[match.Path] = struct{}{}
	}
	b.WriteString(fmt.Sprintf("  %d matches in %d files for %q\n\n",
		len(m.matches), len(paths), m.query))

	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + ui.StyleLocation.Render(row.Location) + "  " + row.Content
		if i == m.cursor {
			line = ui.StyleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) View() string {
	if m.mode == ModeInput {
		prompt := "\n  Search: " + m.input.View()
		if m.loading {
			prompt += "\n\n  " + ui.StyleMuted.Render("searching...")
		}
		return prompt
	}
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
