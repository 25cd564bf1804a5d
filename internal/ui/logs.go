package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showtrack/internal/logtail"
)

// renderLogs renders the log overlay, newest lines at the bottom.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	width := max(m.width-6, 20)
	height := max(m.height-6, 3)

	lines := m.logLines
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Log"))
	b.WriteString(styles.FaintText.Render("  L/esc to close"))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString(styles.FaintText.Render("(empty)"))
	}
	for i, line := range lines {
		b.WriteString(styles.LevelStyle(logtail.Level(line)).Render(truncate(line, width)))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	modal := styles.Modal.Padding(0, 1).Width(width + 2).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
