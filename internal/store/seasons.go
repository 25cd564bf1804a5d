package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/five82/showtrack/internal/media"
)

// UpsertSeason stores a season row, including its user status.
func (s *Store) UpsertSeason(ctx context.Context, season media.Season) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store: missing database connection")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO seasons (show_imdb_id, number, trakt_id, title, episodes, aired, first_aired, user_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(show_imdb_id, number) DO UPDATE SET
			trakt_id=excluded.trakt_id,
			title=excluded.title,
			episodes=excluded.episodes,
			aired=excluded.aired,
			first_aired=excluded.first_aired,
			user_status=excluded.user_status
	`,
		season.ShowIMDBID,
		season.Number,
		nullInt(season.TraktID),
		nullString(season.Title),
		season.Episodes,
		season.Aired,
		nullString(season.FirstAired),
		season.UserStatus.String(),
	)
	if err != nil {
		return fmt.Errorf("store: upsert season %s/%d: %w", season.ShowIMDBID, season.Number, err)
	}
	return nil
}

// ReconcileSeasons makes the stored season list of show match infos: reported
// seasons are inserted or refreshed (keeping their user status) and seasons no
// longer reported are removed. It returns the stored seasons ordered by number.
func (s *Store) ReconcileSeasons(ctx context.Context, show media.Show, infos []media.SeasonInfo) (seasons []media.Season, err error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store: missing database connection")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: begin reconcile %s: %w", show.IMDBID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// The season rows reference the show, so make sure it exists.
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO shows (imdb_id, title, user_status) VALUES (?, ?, ?)
		ON CONFLICT(imdb_id) DO NOTHING
	`, show.IMDBID, show.Title, show.UserStatus.String()); err != nil {
		return nil, fmt.Errorf("store: reconcile %s: ensure show: %w", show.IMDBID, err)
	}

	keep := make([]any, 0, len(infos)+1)
	keep = append(keep, show.IMDBID)
	for _, info := range infos {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO seasons (show_imdb_id, number, trakt_id, title, episodes, aired, first_aired)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(show_imdb_id, number) DO UPDATE SET
				trakt_id=excluded.trakt_id,
				title=excluded.title,
				episodes=excluded.episodes,
				aired=excluded.aired,
				first_aired=excluded.first_aired
		`,
			show.IMDBID,
			info.Number,
			nullInt(info.TraktID),
			nullString(info.Title),
			info.EpisodeCount,
			info.AiredEpisodes,
			nullString(info.FirstAired),
		); err != nil {
			return nil, fmt.Errorf("store: reconcile %s: season %d: %w", show.IMDBID, info.Number, err)
		}
		keep = append(keep, info.Number)
	}

	prune := `DELETE FROM seasons WHERE show_imdb_id = ?`
	if len(infos) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(infos)), ",")
		prune += fmt.Sprintf(" AND number NOT IN (%s)", placeholders)
	}
	if _, err = tx.ExecContext(ctx, prune, keep...); err != nil {
		return nil, fmt.Errorf("store: reconcile %s: prune: %w", show.IMDBID, err)
	}

	seasons, err = listSeasons(ctx, tx, show.IMDBID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: commit reconcile %s: %w", show.IMDBID, err)
	}
	return seasons, nil
}

// Seasons returns the stored seasons of a show ordered by number.
func (s *Store) Seasons(ctx context.Context, imdbID string) ([]media.Season, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store: missing database connection")
	}
	return listSeasons(ctx, s.db, imdbID)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listSeasons(ctx context.Context, q queryer, imdbID string) ([]media.Season, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT number, trakt_id, title, episodes, aired, first_aired, user_status
		FROM seasons
		WHERE show_imdb_id = ?
		ORDER BY number
	`, imdbID)
	if err != nil {
		return nil, fmt.Errorf("store: list seasons %s: %w", imdbID, err)
	}
	defer rows.Close()

	seasons := []media.Season{}
	for rows.Next() {
		var (
			season     = media.Season{ShowIMDBID: imdbID}
			traktID    sql.NullInt64
			title      sql.NullString
			firstAired sql.NullString
			status     string
		)
		if err := rows.Scan(&season.Number, &traktID, &title, &season.Episodes, &season.Aired, &firstAired, &status); err != nil {
			return nil, fmt.Errorf("store: scan season: %w", err)
		}
		season.TraktID = traktID.Int64
		season.Title = title.String
		season.FirstAired = firstAired.String
		season.UserStatus, err = media.ParseUserStatusSeason(status)
		if err != nil {
			return nil, fmt.Errorf("store: season %s/%d: %w", imdbID, season.Number, err)
		}
		seasons = append(seasons, season)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list seasons %s: %w", imdbID, err)
	}
	return seasons, nil
}
