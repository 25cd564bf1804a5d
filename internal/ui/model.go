package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/showtrack/internal/prefs"
	"github.com/five82/showtrack/internal/state"
)

// logOverlayLines is how much of the log the L overlay shows.
const logOverlayLines = 200

// Options configures the UI.
type Options struct {
	Context   context.Context
	App       *state.App
	Tick      time.Duration
	ThemeName string
	PageStep  int
	PrefsPath string
	LogPath   string
}

// Model is the root Bubble Tea model. It owns the App and is the only code
// that mutates it.
type Model struct {
	ctx       context.Context
	app       *state.App
	tick      time.Duration
	pageStep  int
	prefsPath string
	logPath   string

	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
	theme   Theme

	width  int
	height int

	// Season view overview, rendered once per show and width.
	overview      string
	overviewKey   string
	overviewWidth int

	showLogs bool
	logLines []string

	status string
	err    error
}

// New creates a new Bubble Tea model around app.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}

	pageStep := opts.PageStep
	if pageStep <= 0 {
		pageStep = prefs.Defaults().PageStep
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	theme := GetTheme(themeName)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search shows"
	ti.CharLimit = 120

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:       ctx,
		app:       opts.App,
		tick:      tick,
		pageStep:  pageStep,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     ti,
		spinner:   s,
		theme:     theme,
	}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshOverview()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case detailMsg:
		if err := m.app.ApplyShowDetails(m.ctx, state.DetailResult(msg)); err != nil {
			return m.fail(err)
		}
		m.refreshOverview()
		return m, nil

	case spinner.TickMsg:
		if !m.app.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logsMsg:
		if msg.err != nil {
			m.status = "log: " + msg.err.Error()
			return m, nil
		}
		m.logLines = msg.lines
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	return m, nil
}

// handleTick advances the App and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.app.Tick(); err != nil {
		return m.fail(err)
	}
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	return m, tea.Batch(cmds...)
}

// fail records a fatal error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.app.Quit()
	m.err = err
	return m, tea.Quit
}

// quit stops the program without an error.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.app.Quit()
	return m, tea.Quit
}

// Messages

type tickMsg time.Time

type detailMsg state.DetailResult

type logsMsg struct {
	lines []string
	err   error
}

type statusMsg string

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchDetailsCmd runs the remote lookup off the interactive loop. The result
// is applied back on the loop as a detailMsg.
func fetchDetailsCmd(ctx context.Context, app *state.App, req state.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		return detailMsg(app.FetchShowDetails(ctx, req))
	}
}

// Run starts the Bubble Tea program and returns the error that stopped it.
func Run(opts Options) error {
	if opts.App == nil {
		return errors.New("ui: nil app")
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	log.Printf("level=info msg=\"ui stopped\"")
	return nil
}
