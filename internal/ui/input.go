package ui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/showtrack/internal/logtail"
	"github.com/five82/showtrack/internal/prefs"
	"github.com/five82/showtrack/internal/state"
)

// handleKey dispatches keyboard input by App mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// One detail lookup at a time: everything else waits for it.
	if m.app.Loading {
		return m, nil
	}

	if m.showLogs {
		if key.Matches(msg, m.keys.Logs, m.keys.Quit) {
			m.showLogs = false
		}
		return m, nil
	}

	switch m.app.Mode {
	case state.Querying:
		return m.handleQueryKey(msg)
	case state.HelpWindow:
		// Any key closes help
		m.app.ToggleHelp()
		return m, nil
	case state.SeasonView:
		return m.handleSeasonKey(msg)
	case state.MainView:
		return m.handleMainKey(msg)
	default:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Down):
		m.app.MoveForward(1)
	case key.Matches(msg, m.keys.Up):
		m.app.MoveBackward(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.app.MoveForward(m.pageStep)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.app.MoveBackward(m.pageStep)
	case key.Matches(msg, m.keys.Top):
		m.app.MoveTop()
	case key.Matches(msg, m.keys.Bottom):
		m.app.MoveBottom()
	case key.Matches(msg, m.keys.Query):
		return m.startQuery()
	case key.Matches(msg, m.keys.Help):
		m.app.ToggleHelp()
	case key.Matches(msg, m.keys.Open):
		req, ok := m.app.BeginShowDetails()
		if !ok {
			return m, nil
		}
		m.status = ""
		return m, tea.Batch(fetchDetailsCmd(m.ctx, m.app, req), m.spinner.Tick)
	case key.Matches(msg, m.keys.CycleStatus):
		if err := m.app.CycleShowStatus(m.ctx); err != nil {
			return m.fail(err)
		}
	case key.Matches(msg, m.keys.Yank):
		if show, ok := m.app.SelectedShow(); ok {
			return m, yankCmd(show.IMDBID)
		}
	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	}
	return m, nil
}

func (m Model) handleSeasonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.app.LeaveSeasonView()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Down):
		m.app.SeasonForward(1)
	case key.Matches(msg, m.keys.Up):
		m.app.SeasonBackward(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.app.SeasonForward(m.pageStep)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.app.SeasonBackward(m.pageStep)
	case key.Matches(msg, m.keys.Top):
		m.app.SeasonTop()
	case key.Matches(msg, m.keys.Bottom):
		m.app.SeasonBottom()
	case key.Matches(msg, m.keys.CycleStatus):
		if err := m.app.CycleSeasonStatus(m.ctx); err != nil {
			return m.fail(err)
		}
	case key.Matches(msg, m.keys.Yank):
		if show, ok := m.app.SelectedShow(); ok {
			return m, yankCmd(show.IMDBID)
		}
	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	}
	return m, nil
}

func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.EndQuery) {
		return m.endQuery(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.app.SetInput(m.input.Value())
	return m, cmd
}

// handleMouse scrolls the active list with the wheel. A click on the search
// bar opens the query input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.app.Loading || m.showLogs || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.app.Mode == state.Querying {
			m = m.endQuery()
		}
		up := msg.Button == tea.MouseButtonWheelUp
		switch m.app.Mode {
		case state.MainView:
			if up {
				m.app.MoveBackward(1)
			} else {
				m.app.MoveForward(1)
			}
		case state.SeasonView:
			if up {
				m.app.SeasonBackward(1)
			} else {
				m.app.SeasonForward(1)
			}
		}
	case tea.MouseButtonLeft:
		if msg.Y == 0 && m.app.Mode == state.MainView {
			return m.startQuery()
		}
	}
	return m, nil
}

func (m Model) startQuery() (tea.Model, tea.Cmd) {
	m.app.StartQuery()
	if m.app.Mode != state.Querying {
		return m, nil
	}
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m Model) endQuery() Model {
	m.input.Blur()
	m.app.EndQuery()
	return m
}

func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.showLogs = true
	return m, readLogsCmd(m.logPath)
}

// cycleTheme switches to the next theme and persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.overviewKey = ""
	m.refreshOverview()
	if m.prefsPath == "" {
		return m, nil
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageStep: m.pageStep}); err != nil {
		log.Printf("level=warn msg=\"save prefs failed\" path=%s err=%q", m.prefsPath, err)
		m.status = "prefs: " + err.Error()
	}
	return m, nil
}

func yankCmd(imdbID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(imdbID); err != nil {
			log.Printf("level=warn msg=\"clipboard write failed\" imdb_id=%s err=%q", imdbID, err)
			return statusMsg(fmt.Sprintf("clipboard: %v", err))
		}
		return statusMsg("Copied " + imdbID)
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logOverlayLines)
		return logsMsg{lines: lines, err: err}
	}
}
