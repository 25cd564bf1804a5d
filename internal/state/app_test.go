package state

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/showtrack/internal/media"
)

type fakeQuerier struct {
	shows   []media.Show
	lost    bool
	queries []string
}

func (f *fakeQuerier) Query(text string) ([]media.Show, bool) {
	f.queries = append(f.queries, text)
	if f.lost {
		return nil, false
	}
	return append([]media.Show{}, f.shows...), true
}

type fakeDetailer struct {
	details media.ShowDetails
	seasons []media.SeasonInfo
	err     error
	calls   []string
}

func (f *fakeDetailer) Detail(_ context.Context, imdbID string) (media.ShowDetails, []media.SeasonInfo, error) {
	f.calls = append(f.calls, imdbID)
	return f.details, f.seasons, f.err
}

type fakeWriter struct {
	shows        []media.Show
	seasons      []media.Season
	reconciled   []media.Show
	showErr      error
	seasonErr    error
	reconcileErr error
}

func (f *fakeWriter) UpsertShow(_ context.Context, show media.Show) error {
	f.shows = append(f.shows, show)
	return f.showErr
}

func (f *fakeWriter) UpsertSeason(_ context.Context, season media.Season) error {
	f.seasons = append(f.seasons, season)
	return f.seasonErr
}

func (f *fakeWriter) ReconcileSeasons(_ context.Context, show media.Show, infos []media.SeasonInfo) ([]media.Season, error) {
	f.reconciled = append(f.reconciled, show)
	if f.reconcileErr != nil {
		return nil, f.reconcileErr
	}
	seasons := make([]media.Season, 0, len(infos))
	for _, info := range infos {
		seasons = append(seasons, media.Season{ShowIMDBID: show.IMDBID, Number: info.Number, Episodes: info.EpisodeCount})
	}
	return seasons, nil
}

func twoShows() []media.Show {
	return []media.Show{
		{IMDBID: "tt1", Title: "One"},
		{IMDBID: "tt2", Title: "Two", TraktID: 42},
	}
}

func newTestApp(shows []media.Show) (*App, *fakeQuerier, *fakeDetailer, *fakeWriter) {
	q := &fakeQuerier{shows: shows}
	d := &fakeDetailer{}
	w := &fakeWriter{}
	return New(q, d, w), q, d, w
}

func TestTick_LoadsShowsAndEntersMainView(t *testing.T) {
	app, q, _, _ := newTestApp(twoShows())

	if app.Mode != Initializing || !app.Running {
		t.Fatalf("new app mode = %v running = %v, want initializing/true", app.Mode, app.Running)
	}
	if err := app.Tick(); err != nil {
		t.Fatalf("Tick error = %v", err)
	}
	if app.Mode != MainView {
		t.Fatalf("mode = %v, want main", app.Mode)
	}
	if len(app.Shows) != 2 || app.Scroll.Length != 2 {
		t.Fatalf("shows = %d scroll = %d, want 2/2", len(app.Shows), app.Scroll.Length)
	}
	if _, ok := app.Selected.Index(); ok {
		t.Fatal("selection set before first navigation")
	}

	// Loaded lists are not queried again.
	if err := app.Tick(); err != nil {
		t.Fatalf("second Tick error = %v", err)
	}
	if len(q.queries) != 1 || q.queries[0] != initialQuery {
		t.Fatalf("queries = %q, want one %q", q.queries, initialQuery)
	}
}

func TestTick_EmptyStoreStillLeavesInitializing(t *testing.T) {
	app, _, _, _ := newTestApp(nil)
	if err := app.Tick(); err != nil {
		t.Fatalf("Tick error = %v", err)
	}
	if app.Mode != MainView || len(app.Shows) != 0 {
		t.Fatalf("mode = %v shows = %d, want main with none", app.Mode, len(app.Shows))
	}
}

func TestTick_WorkerLostFails(t *testing.T) {
	app, q, _, _ := newTestApp(nil)
	q.lost = true

	err := app.Tick()
	if !errors.Is(err, ErrDataManagerUnavailable) {
		t.Fatalf("Tick error = %v, want ErrDataManagerUnavailable", err)
	}
	if app.Mode != Initializing {
		t.Fatalf("mode = %v, want initializing", app.Mode)
	}
}

func TestModeOverlays(t *testing.T) {
	app, _, _, _ := newTestApp(twoShows())

	app.StartQuery()
	if app.Mode != Initializing {
		t.Fatalf("StartQuery before load changed mode to %v", app.Mode)
	}
	_ = app.Tick()

	app.StartQuery()
	if app.Mode != Querying {
		t.Fatalf("mode = %v, want querying", app.Mode)
	}
	app.SetInput("breaking")
	app.EndQuery()
	if app.Mode != MainView || app.Input != "breaking" {
		t.Fatalf("mode = %v input = %q, want main/breaking", app.Mode, app.Input)
	}

	app.ToggleHelp()
	if app.Mode != HelpWindow {
		t.Fatalf("mode = %v, want help", app.Mode)
	}
	app.ToggleHelp()
	if app.Mode != MainView {
		t.Fatalf("mode = %v, want main", app.Mode)
	}

	app.Quit()
	if app.Running {
		t.Fatal("Running = true after Quit")
	}
}

func TestCycleShowStatus_PersistsEachStep(t *testing.T) {
	app, _, _, w := newTestApp(twoShows())
	ctx := context.Background()
	_ = app.Tick()

	// Nothing selected: no-op.
	if err := app.CycleShowStatus(ctx); err != nil {
		t.Fatalf("CycleShowStatus error = %v", err)
	}
	if len(w.shows) != 0 {
		t.Fatalf("store writes = %d, want 0 without selection", len(w.shows))
	}

	app.MoveForward(1)
	want := []media.UserStatusShow{media.ShowWatched, media.ShowUnwatched, media.ShowTodo}
	for step, status := range want {
		if err := app.CycleShowStatus(ctx); err != nil {
			t.Fatalf("CycleShowStatus step %d error = %v", step, err)
		}
		if app.Shows[0].UserStatus != status {
			t.Fatalf("step %d status = %v, want %v", step, app.Shows[0].UserStatus, status)
		}
		if len(w.shows) != step+1 || w.shows[step].UserStatus != status || w.shows[step].IMDBID != "tt1" {
			t.Fatalf("step %d store writes = %#v", step, w.shows)
		}
	}
}

func TestCycleShowStatus_PropagatesStoreError(t *testing.T) {
	app, _, _, w := newTestApp(twoShows())
	_ = app.Tick()
	app.MoveForward(1)
	w.showErr = errors.New("readonly")

	err := app.CycleShowStatus(context.Background())
	if !errors.Is(err, w.showErr) {
		t.Fatalf("CycleShowStatus error = %v, want store error", err)
	}
	if app.Shows[0].UserStatus != media.ShowWatched {
		t.Fatalf("in-memory status = %v, want watched", app.Shows[0].UserStatus)
	}
}

func TestCycleSeasonStatus(t *testing.T) {
	app, _, _, w := newTestApp(nil)
	ctx := context.Background()

	if err := app.CycleSeasonStatus(ctx); err != nil {
		t.Fatalf("CycleSeasonStatus without selection error = %v", err)
	}

	app.ShowView.Seasons = []media.Season{{ShowIMDBID: "tt1", Number: 1}, {ShowIMDBID: "tt1", Number: 2}}
	app.ShowView.Selected = Select(1)
	for i := 0; i < 3; i++ {
		if err := app.CycleSeasonStatus(ctx); err != nil {
			t.Fatalf("CycleSeasonStatus error = %v", err)
		}
	}
	if got := app.ShowView.Seasons[1].UserStatus; got != media.SeasonUnfilled {
		t.Fatalf("status after 3 cycles = %v, want unfilled", got)
	}
	if len(w.seasons) != 3 || w.seasons[0].UserStatus != media.SeasonOnRelease || w.seasons[0].Number != 2 {
		t.Fatalf("store writes = %#v", w.seasons)
	}

	w.seasonErr = errors.New("full")
	if err := app.CycleSeasonStatus(ctx); !errors.Is(err, w.seasonErr) {
		t.Fatalf("CycleSeasonStatus error = %v, want store error", err)
	}
}
