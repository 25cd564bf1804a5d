package state

import (
	"context"
	"fmt"
	"log"

	"github.com/five82/showtrack/internal/media"
)

// DetailRequest identifies an outstanding detail lookup.
type DetailRequest struct {
	ID     int
	Index  int
	IMDBID string
}

// DetailResult carries the outcome of a lookup back to the interactive loop.
type DetailResult struct {
	Request DetailRequest
	Details media.ShowDetails
	Seasons []media.SeasonInfo
	Err     error
}

// EnterShowDetails looks up the selected show and opens its season view.
// Any lookup failure is fatal: the App stops running and the error is returned.
func (a *App) EnterShowDetails(ctx context.Context) error {
	req, ok := a.BeginShowDetails()
	if !ok {
		return nil
	}
	return a.ApplyShowDetails(ctx, a.FetchShowDetails(ctx, req))
}

// BeginShowDetails starts a lookup for the selected show. It reports false
// when the main view is not active, nothing is selected, or a lookup is
// already outstanding.
func (a *App) BeginShowDetails() (DetailRequest, bool) {
	if a.Mode != MainView || a.Loading {
		return DetailRequest{}, false
	}
	i, ok := a.Selected.Index()
	if !ok || i >= len(a.Shows) {
		return DetailRequest{}, false
	}
	a.requestID++
	a.Loading = true
	return DetailRequest{ID: a.requestID, Index: i, IMDBID: a.Shows[i].IMDBID}, true
}

// FetchShowDetails performs the remote lookup for req. It does not touch App
// state and may run off the interactive loop.
func (a *App) FetchShowDetails(ctx context.Context, req DetailRequest) DetailResult {
	details, seasons, err := a.remote.Detail(ctx, req.IMDBID)
	return DetailResult{Request: req, Details: details, Seasons: seasons, Err: err}
}

// ApplyShowDetails merges a lookup result into the show it was made for,
// reconciles its seasons, and switches to the season view. Results for a
// request other than the outstanding one are dropped.
func (a *App) ApplyShowDetails(ctx context.Context, res DetailResult) error {
	if !a.Loading || res.Request.ID != a.requestID {
		return nil
	}
	a.Loading = false

	i := res.Request.Index
	if i < 0 || i >= len(a.Shows) || a.Shows[i].IMDBID != res.Request.IMDBID {
		log.Printf("level=warn msg=\"detail result for unknown show\" imdb_id=%s", res.Request.IMDBID)
		return nil
	}
	show := &a.Shows[i]

	if res.Err != nil {
		log.Printf("level=error msg=\"error querying show details\" imdb_id=%s title=%q err=%q", show.IMDBID, show.Title, res.Err)
		a.Quit()
		return fmt.Errorf("query details for %s: %w", show.IMDBID, res.Err)
	}

	show.Overview = res.Details.Overview
	show.Network = res.Details.Network
	show.Episodes = res.Details.AiredEpisodes
	if !show.HasTraktID() {
		show.TraktID = res.Details.TraktID
	}

	// Best effort: the season view still opens when this write fails.
	if err := a.store.UpsertShow(ctx, *show); err != nil {
		log.Printf("level=warn msg=\"persist show details failed\" imdb_id=%s title=%q err=%q", show.IMDBID, show.Title, err)
	}

	seasons, err := a.store.ReconcileSeasons(ctx, *show, res.Seasons)
	if err != nil {
		log.Printf("level=error msg=\"reconcile seasons failed\" imdb_id=%s title=%q err=%q", show.IMDBID, show.Title, err)
		return fmt.Errorf("reconcile seasons for %s: %w", show.IMDBID, err)
	}

	a.ShowView.ShowIndex = i
	a.ShowView.Seasons = seasons
	if len(seasons) > 0 {
		a.ShowView.Selected = Select(0)
	} else {
		a.ShowView.Selected.Clear()
	}
	a.Mode = SeasonView
	log.Printf("level=info msg=\"opened season view\" imdb_id=%s title=%q seasons=%d", show.IMDBID, show.Title, len(seasons))
	return nil
}
