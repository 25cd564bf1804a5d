package state

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/showtrack/internal/media"
	"github.com/five82/showtrack/internal/trakt"
)

// ErrDataManagerUnavailable is returned when the data manager worker is gone.
var ErrDataManagerUnavailable = errors.New("data manager unavailable")

// initialQuery is sent on the first tick. The data manager ignores its text.
const initialQuery = "spurious"

// Mode is the top-level UI state.
type Mode int

const (
	Initializing Mode = iota
	MainView
	Querying
	HelpWindow
	SeasonView
)

func (m Mode) String() string {
	switch m {
	case MainView:
		return "main"
	case Querying:
		return "querying"
	case HelpWindow:
		return "help"
	case SeasonView:
		return "seasons"
	default:
		return "initializing"
	}
}

// Querier answers show listing queries. ok is false when the worker is lost.
type Querier interface {
	Query(text string) (shows []media.Show, ok bool)
}

// Writer is the part of the local store the interactive loop writes through.
type Writer interface {
	UpsertShow(ctx context.Context, show media.Show) error
	UpsertSeason(ctx context.Context, season media.Season) error
	ReconcileSeasons(ctx context.Context, show media.Show, infos []media.SeasonInfo) ([]media.Season, error)
}

// Scroll mirrors the scrollbar of the show list.
type Scroll struct {
	Length   int
	Position int
}

// ShowView holds the seasons of the show whose details are open.
type ShowView struct {
	ShowIndex int
	Seasons   []media.Season
	Selected  Selection
}

// App is the application state machine. Its exported fields are read by the
// renderer and mutated only through App methods on the interactive loop.
type App struct {
	Running  bool
	Mode     Mode
	Input    string
	Shows    []media.Show
	Selected Selection
	Scroll   Scroll
	ShowView ShowView
	// Loading is set while a detail lookup is outstanding.
	Loading bool

	data   Querier
	remote trakt.Detailer
	store  Writer

	requestID int
}

// New returns an App in the Initializing mode.
func New(data Querier, remote trakt.Detailer, store Writer) *App {
	return &App{
		Running: true,
		Mode:    Initializing,
		data:    data,
		remote:  remote,
		store:   store,
	}
}

// Quit stops the interactive loop.
func (a *App) Quit() {
	a.Running = false
}

// Tick loads the show list while it is empty and leaves Initializing once a
// listing has arrived.
func (a *App) Tick() error {
	if len(a.Shows) > 0 {
		return nil
	}

	shows, ok := a.data.Query(initialQuery)
	if !ok {
		log.Printf("level=error msg=\"data manager worker lost\" query=%q", initialQuery)
		return ErrDataManagerUnavailable
	}

	a.Shows = shows
	a.Scroll.Length = len(shows)
	if a.Mode == Initializing {
		a.Mode = MainView
	}
	return nil
}

// SetInput replaces the free-text input buffer.
func (a *App) SetInput(text string) {
	a.Input = text
}

// StartQuery switches to the query input from the main view.
func (a *App) StartQuery() {
	if a.Mode == MainView {
		a.Mode = Querying
	}
}

// EndQuery returns from the query input to the main view.
func (a *App) EndQuery() {
	if a.Mode == Querying {
		a.Mode = MainView
	}
}

// ToggleHelp opens the help window from the main view and closes it again.
func (a *App) ToggleHelp() {
	switch a.Mode {
	case MainView:
		a.Mode = HelpWindow
	case HelpWindow:
		a.Mode = MainView
	}
}

// LeaveSeasonView returns to the show list.
func (a *App) LeaveSeasonView() {
	if a.Mode == SeasonView {
		a.Mode = MainView
	}
}

// SelectedShow returns the show under the cursor.
func (a *App) SelectedShow() (media.Show, bool) {
	i, ok := a.Selected.Index()
	if !ok || i >= len(a.Shows) {
		return media.Show{}, false
	}
	return a.Shows[i], true
}

// SelectedSeason returns the season under the cursor in the season view.
func (a *App) SelectedSeason() (media.Season, bool) {
	i, ok := a.ShowView.Selected.Index()
	if !ok || i >= len(a.ShowView.Seasons) {
		return media.Season{}, false
	}
	return a.ShowView.Seasons[i], true
}

// CycleShowStatus advances the selected show's status and persists it.
func (a *App) CycleShowStatus(ctx context.Context) error {
	i, ok := a.Selected.Index()
	if !ok || i >= len(a.Shows) {
		return nil
	}
	show := &a.Shows[i]
	show.UserStatus = show.UserStatus.Next()
	log.Printf("level=info msg=\"show status changed\" imdb_id=%s title=%q status=%s", show.IMDBID, show.Title, show.UserStatus)

	if err := a.store.UpsertShow(ctx, *show); err != nil {
		log.Printf("level=error msg=\"persist show status failed\" imdb_id=%s title=%q err=%q", show.IMDBID, show.Title, err)
		return fmt.Errorf("update show %s: %w", show.IMDBID, err)
	}
	return nil
}

// CycleSeasonStatus advances the selected season's status and persists it.
func (a *App) CycleSeasonStatus(ctx context.Context) error {
	i, ok := a.ShowView.Selected.Index()
	if !ok || i >= len(a.ShowView.Seasons) {
		return nil
	}
	season := &a.ShowView.Seasons[i]
	season.UserStatus = season.UserStatus.Next()
	log.Printf("level=info msg=\"season status changed\" imdb_id=%s season=%d status=%s", season.ShowIMDBID, season.Number, season.UserStatus)

	if err := a.store.UpsertSeason(ctx, *season); err != nil {
		log.Printf("level=error msg=\"persist season status failed\" imdb_id=%s season=%d err=%q", season.ShowIMDBID, season.Number, err)
		return fmt.Errorf("update season %s/%d: %w", season.ShowIMDBID, season.Number, err)
	}
	return nil
}
