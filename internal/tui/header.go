package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevran/grep-tui/internal/model"
	"github.com/ldevran/grep-tui/internal/ui"
)

func RenderHeader(engineName string, mode model.Mode, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" grep-tui | %s", engineName))

	right := lipgloss.NewStyle().Foreground(ui.ColorInfo).
		Render(fmt.Sprintf("mode: %s ", mode))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
