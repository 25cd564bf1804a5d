package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showtrack/internal/state"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showLogs {
		return m.renderLogs()
	}

	switch m.app.Mode {
	case state.Initializing:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.Styles().MutedText.Render("Loading shows..."))
	case state.HelpWindow:
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderQueryBar())
	b.WriteString("\n")
	if m.app.Mode == state.SeasonView {
		b.WriteString(m.renderSeasons())
	} else {
		b.WriteString(m.renderShows())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// bodyHeight is the number of lines between the query bar and the footer.
func (m Model) bodyHeight() int {
	return max(m.height-2, 1)
}

// renderQueryBar renders row 0: the free-text input.
func (m Model) renderQueryBar() string {
	styles := m.theme.Styles()
	bar := m.input.View()
	if m.app.Mode != state.Querying && m.app.Input == "" {
		bar = styles.FaintText.Render("/ search shows")
	}
	return styles.Header.Width(m.width).Render(bar)
}

// renderShows renders the show table scrolled so the selection stays visible.
func (m Model) renderShows() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()
	rows := make([]string, 0, height)

	titleW := max(m.width-36, 10)
	rows = append(rows, styles.MutedText.Render(fmt.Sprintf("  %-*s %-10s %-5s %5s  %s",
		titleW, "Title", "IMDb", "Year", "Eps", "Status")))

	shows := m.app.Shows
	if len(shows) == 0 {
		rows = append(rows, styles.FaintText.Render("  No shows. Import a title.basics.tsv with -import."))
		return padLines(rows, height)
	}

	visible := height - 1
	start := windowStart(m.app.Scroll.Position, visible, len(shows))
	selected, hasSelection := m.app.Selected.Index()

	for i := start; i < len(shows) && i < start+visible; i++ {
		show := shows[i]
		line := fmt.Sprintf("  %-*s %-10s %-5s %5s  ",
			titleW, truncate(show.Title, titleW), show.IMDBID, formatInt(show.Year), formatInt(show.Episodes))
		badge := styles.StatusStyle(show.UserStatus.String()).Render(show.UserStatus.String())
		if hasSelection && i == selected {
			line = styles.Selected.Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		rows = append(rows, line+badge)
	}
	return padLines(rows, height)
}

// renderSeasons renders the open show, its overview and its seasons.
func (m Model) renderSeasons() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()
	var rows []string

	show, ok := m.app.SelectedShow()
	if ok {
		title := styles.AccentText.Bold(true).Render(show.Title)
		meta := styles.MutedText.Render(joinNonEmpty(" · ", formatInt(show.Year), show.Network,
			episodesLabel(show.Episodes)))
		rows = append(rows, " "+title+"  "+meta)
	}
	if m.overview != "" {
		rows = append(rows, strings.Split(strings.TrimRight(m.overview, "\n"), "\n")...)
	}

	seasons := m.app.ShowView.Seasons
	if len(seasons) == 0 {
		rows = append(rows, styles.FaintText.Render("  No seasons reported."))
		return padLines(rows, height)
	}

	rows = append(rows, styles.MutedText.Render(fmt.Sprintf("  %-8s %-24s %9s %-10s  %s",
		"Season", "Title", "Aired", "Premiere", "Status")))

	visible := max(height-len(rows), 1)
	selected, hasSelection := m.app.ShowView.Selected.Index()
	start := 0
	if hasSelection {
		start = windowStart(selected, visible, len(seasons))
	}

	for i := start; i < len(seasons) && i < start+visible; i++ {
		season := seasons[i]
		line := fmt.Sprintf("  %-8d %-24s %4d/%-4d %-10s  ",
			season.Number, truncate(season.Title, 24), season.Aired, season.Episodes, season.FirstAired)
		badge := styles.StatusStyle(season.UserStatus.String()).Render(season.UserStatus.String())
		if hasSelection && i == selected {
			line = styles.Selected.Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		rows = append(rows, line+badge)
	}
	return padLines(rows, height)
}

// renderFooter renders the status line: spinner, message, key hints and the
// scroll indicator.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	left := m.help.ShortHelpView(m.keys.ShortHelp())
	switch {
	case m.app.Loading:
		left = m.spinner.View() + " Fetching details..."
	case m.status != "":
		left = m.status
	}

	right := fmt.Sprintf("%s  %s  %s", m.app.Mode, m.scrollLabel(), m.theme.Name)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) scrollLabel() string {
	if m.app.Scroll.Length == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.app.Scroll.Position+1, m.app.Scroll.Length)
}

// refreshOverview re-renders the open show's overview as markdown when the
// show, theme or width changed.
func (m *Model) refreshOverview() {
	if m.app == nil || m.app.Mode != state.SeasonView {
		return
	}
	show, ok := m.app.SelectedShow()
	if !ok || strings.TrimSpace(show.Overview) == "" {
		m.overview = ""
		m.overviewKey = ""
		return
	}
	key := show.IMDBID + "|" + m.theme.Name
	if key == m.overviewKey && m.width == m.overviewWidth {
		return
	}
	m.overview = renderMarkdown(show.Overview, max(m.width-4, 20))
	m.overviewKey = key
	m.overviewWidth = m.width
}

func renderMarkdown(markdown string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

// windowStart returns the first row to draw so that pos is visible.
func windowStart(pos, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	start := 0
	if pos >= visible {
		start = pos - visible + 1
	}
	return min(start, total-visible)
}

func padLines(rows []string, height int) string {
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// truncate truncates a string to limit runes with ellipsis.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

func formatInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func episodesLabel(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d episodes", n)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
