package media

import (
	"fmt"
	"strings"
)

// UserStatusShow is the watch status a user assigns to a show.
type UserStatusShow int

const (
	ShowTodo UserStatusShow = iota
	ShowWatched
	ShowUnwatched
)

// Next returns the following status in the Todo -> Watched -> Unwatched cycle.
func (s UserStatusShow) Next() UserStatusShow {
	switch s {
	case ShowTodo:
		return ShowWatched
	case ShowWatched:
		return ShowUnwatched
	default:
		return ShowTodo
	}
}

func (s UserStatusShow) String() string {
	switch s {
	case ShowWatched:
		return "watched"
	case ShowUnwatched:
		return "unwatched"
	default:
		return "todo"
	}
}

// ParseUserStatusShow maps a stored status string back to its value.
func ParseUserStatusShow(value string) (UserStatusShow, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "todo":
		return ShowTodo, nil
	case "watched":
		return ShowWatched, nil
	case "unwatched":
		return ShowUnwatched, nil
	}
	return ShowTodo, fmt.Errorf("unknown show status %q", value)
}

// UserStatusSeason records when a user intends to watch a season.
type UserStatusSeason int

const (
	SeasonUnfilled UserStatusSeason = iota
	SeasonOnRelease
	SeasonOtherDate
)

// Next returns the following status in the Unfilled -> OnRelease -> OtherDate cycle.
func (s UserStatusSeason) Next() UserStatusSeason {
	switch s {
	case SeasonUnfilled:
		return SeasonOnRelease
	case SeasonOnRelease:
		return SeasonOtherDate
	default:
		return SeasonUnfilled
	}
}

func (s UserStatusSeason) String() string {
	switch s {
	case SeasonOnRelease:
		return "on_release"
	case SeasonOtherDate:
		return "other_date"
	default:
		return "unfilled"
	}
}

// ParseUserStatusSeason maps a stored status string back to its value.
func ParseUserStatusSeason(value string) (UserStatusSeason, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "unfilled":
		return SeasonUnfilled, nil
	case "on_release":
		return SeasonOnRelease, nil
	case "other_date":
		return SeasonOtherDate, nil
	}
	return SeasonUnfilled, fmt.Errorf("unknown season status %q", value)
}

// Show is a tracked title. IMDBID is the external metadata id; TraktID is the
// catalog id and stays zero until a detail lookup assigns one.
type Show struct {
	IMDBID     string
	Title      string
	Year       int
	Overview   string
	Network    string
	Episodes   int
	TraktID    int64
	UserStatus UserStatusShow
}

// HasTraktID reports whether a catalog id has been assigned.
func (s Show) HasTraktID() bool {
	return s.TraktID != 0
}

// Season is a numbered season of a show.
type Season struct {
	ShowIMDBID string
	Number     int
	TraktID    int64
	Title      string
	Episodes   int
	Aired      int
	FirstAired string
	UserStatus UserStatusSeason
}

// ShowDetails is the extended metadata returned by a detail lookup.
type ShowDetails struct {
	Title         string
	Year          int
	Overview      string
	Network       string
	Status        string
	AiredEpisodes int
	TraktID       int64
	IMDBID        string
}

// SeasonInfo describes one season as reported by the remote API.
type SeasonInfo struct {
	Number        int
	TraktID       int64
	Title         string
	EpisodeCount  int
	AiredEpisodes int
	FirstAired    string
}
