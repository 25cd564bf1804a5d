package state

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/showtrack/internal/media"
)

func loadedApp(t *testing.T) (*App, *fakeDetailer, *fakeWriter) {
	t.Helper()
	app, _, d, w := newTestApp(twoShows())
	if err := app.Tick(); err != nil {
		t.Fatalf("Tick error = %v", err)
	}
	return app, d, w
}

func TestEnterShowDetails_AssignsCatalogIDAndOpensSeasons(t *testing.T) {
	app, d, w := loadedApp(t)
	d.details = media.ShowDetails{Overview: "Pilot", Network: "AMC", AiredEpisodes: 62, TraktID: 1388}
	d.seasons = []media.SeasonInfo{{Number: 1, EpisodeCount: 7}, {Number: 2, EpisodeCount: 13}}

	app.MoveForward(1)
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v", err)
	}

	if app.Mode != SeasonView {
		t.Fatalf("mode = %v, want seasons", app.Mode)
	}
	show := app.Shows[0]
	if show.TraktID != 1388 || show.Overview != "Pilot" || show.Network != "AMC" || show.Episodes != 62 {
		t.Fatalf("show = %#v, want merged details", show)
	}
	if len(d.calls) != 1 || d.calls[0] != "tt1" {
		t.Fatalf("lookups = %q, want [tt1]", d.calls)
	}
	if len(w.shows) != 1 || w.shows[0].TraktID != 1388 {
		t.Fatalf("persisted shows = %#v, want merged show", w.shows)
	}
	if len(app.ShowView.Seasons) != 2 || app.ShowView.ShowIndex != 0 {
		t.Fatalf("show view = %#v, want 2 seasons of show 0", app.ShowView)
	}
	if got := selected(t, app.ShowView.Selected); got != 0 {
		t.Fatalf("season selection = %d, want 0", got)
	}
	if app.Loading {
		t.Fatal("Loading still set after lookup")
	}

	app.LeaveSeasonView()
	if app.Mode != MainView {
		t.Fatalf("mode = %v, want main", app.Mode)
	}
}

func TestEnterShowDetails_KeepsExistingCatalogID(t *testing.T) {
	app, d, _ := loadedApp(t)
	d.details = media.ShowDetails{TraktID: 9999}

	app.MoveForward(1)
	app.MoveForward(1)
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v", err)
	}
	if app.Shows[1].TraktID != 42 {
		t.Fatalf("TraktID = %d, want existing 42", app.Shows[1].TraktID)
	}
}

func TestEnterShowDetails_NoSeasonsClearsSelection(t *testing.T) {
	app, _, _ := loadedApp(t)
	app.ShowView.Selected = Select(3)

	app.MoveForward(1)
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v", err)
	}
	if app.Mode != SeasonView {
		t.Fatalf("mode = %v, want seasons", app.Mode)
	}
	if _, ok := app.ShowView.Selected.Index(); ok {
		t.Fatal("season selection set for a show without seasons")
	}
}

func TestEnterShowDetails_Preconditions(t *testing.T) {
	app, d, _ := loadedApp(t)

	// Nothing selected.
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v", err)
	}
	// Wrong mode.
	app.MoveForward(1)
	app.ToggleHelp()
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v", err)
	}
	if len(d.calls) != 0 || app.Mode != HelpWindow {
		t.Fatalf("lookups = %d mode = %v, want none/help", len(d.calls), app.Mode)
	}
}

func TestEnterShowDetails_LookupFailureIsFatal(t *testing.T) {
	app, d, w := loadedApp(t)
	d.err = errors.New("503")

	app.MoveForward(1)
	err := app.EnterShowDetails(context.Background())
	if !errors.Is(err, d.err) {
		t.Fatalf("EnterShowDetails error = %v, want lookup error", err)
	}
	if app.Running {
		t.Fatal("Running = true after lookup failure")
	}
	if app.Mode != MainView || len(w.shows) != 0 {
		t.Fatalf("mode = %v writes = %d, want main and no writes", app.Mode, len(w.shows))
	}
}

func TestEnterShowDetails_PersistFailureIsSwallowed(t *testing.T) {
	app, d, w := loadedApp(t)
	d.seasons = []media.SeasonInfo{{Number: 1}}
	w.showErr = errors.New("disk full")

	app.MoveForward(1)
	if err := app.EnterShowDetails(context.Background()); err != nil {
		t.Fatalf("EnterShowDetails error = %v, want nil", err)
	}
	if app.Mode != SeasonView || len(app.ShowView.Seasons) != 1 {
		t.Fatalf("mode = %v seasons = %d, want seasons/1", app.Mode, len(app.ShowView.Seasons))
	}
}

func TestEnterShowDetails_ReconcileFailurePropagates(t *testing.T) {
	app, _, w := loadedApp(t)
	w.reconcileErr = errors.New("locked")

	app.MoveForward(1)
	if err := app.EnterShowDetails(context.Background()); !errors.Is(err, w.reconcileErr) {
		t.Fatalf("EnterShowDetails error = %v, want reconcile error", err)
	}
	if app.Mode != MainView {
		t.Fatalf("mode = %v, want main", app.Mode)
	}
}

func TestApplyShowDetails_DropsStaleResults(t *testing.T) {
	app, _, w := loadedApp(t)
	ctx := context.Background()
	app.MoveForward(1)

	req, ok := app.BeginShowDetails()
	if !ok || !app.Loading {
		t.Fatalf("BeginShowDetails = %v loading = %v, want started", ok, app.Loading)
	}
	if _, again := app.BeginShowDetails(); again {
		t.Fatal("second BeginShowDetails started while loading")
	}

	stale := DetailResult{Request: DetailRequest{ID: req.ID - 1, Index: req.Index, IMDBID: req.IMDBID}}
	if err := app.ApplyShowDetails(ctx, stale); err != nil {
		t.Fatalf("ApplyShowDetails(stale) error = %v", err)
	}
	if !app.Loading || app.Mode != MainView || len(w.reconciled) != 0 {
		t.Fatal("stale result was applied")
	}

	if err := app.ApplyShowDetails(ctx, app.FetchShowDetails(ctx, req)); err != nil {
		t.Fatalf("ApplyShowDetails error = %v", err)
	}
	if app.Loading || app.Mode != SeasonView {
		t.Fatalf("loading = %v mode = %v, want applied", app.Loading, app.Mode)
	}
}
