package trakt

import (
	"strings"
	"time"

	"github.com/five82/showtrack/internal/media"
)

// IDs mirrors the ids object attached to every Trakt entity.
type IDs struct {
	Trakt int64  `json:"trakt"`
	Slug  string `json:"slug"`
	TVDB  int64  `json:"tvdb"`
	IMDB  string `json:"imdb"`
	TMDB  int64  `json:"tmdb"`
}

// ShowResponse mirrors /shows/{id}?extended=full.
type ShowResponse struct {
	Title         string `json:"title"`
	Year          int    `json:"year"`
	IDs           IDs    `json:"ids"`
	Overview      string `json:"overview"`
	Network       string `json:"network"`
	Status        string `json:"status"`
	AiredEpisodes int    `json:"aired_episodes"`
}

// SeasonResponse mirrors one entry of /shows/{id}/seasons?extended=full.
type SeasonResponse struct {
	Number        int    `json:"number"`
	IDs           IDs    `json:"ids"`
	Title         string `json:"title"`
	EpisodeCount  int    `json:"episode_count"`
	AiredEpisodes int    `json:"aired_episodes"`
	FirstAired    string `json:"first_aired"`
}

// Details converts the payload into the record the rest of the program uses.
func (r ShowResponse) Details() media.ShowDetails {
	return media.ShowDetails{
		Title:         strings.TrimSpace(r.Title),
		Year:          r.Year,
		Overview:      strings.TrimSpace(r.Overview),
		Network:       strings.TrimSpace(r.Network),
		Status:        r.Status,
		AiredEpisodes: r.AiredEpisodes,
		TraktID:       r.IDs.Trakt,
		IMDBID:        r.IDs.IMDB,
	}
}

// Info converts the payload into a media.SeasonInfo. FirstAired is reduced
// to a date when it parses.
func (r SeasonResponse) Info() media.SeasonInfo {
	return media.SeasonInfo{
		Number:        r.Number,
		TraktID:       r.IDs.Trakt,
		Title:         strings.TrimSpace(r.Title),
		EpisodeCount:  r.EpisodeCount,
		AiredEpisodes: r.AiredEpisodes,
		FirstAired:    airDate(r.FirstAired),
	}
}

func airDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.DateOnly)
		}
	}
	return value
}
