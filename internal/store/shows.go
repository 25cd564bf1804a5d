package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/five82/showtrack/internal/media"
)

// ListAll returns every show in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]media.Show, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store: missing database connection")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT imdb_id, title, year, overview, network, episodes, trakt_id, user_status
		FROM shows
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list shows: %w", err)
	}
	defer rows.Close()

	shows := []media.Show{}
	for rows.Next() {
		var (
			show     media.Show
			year     sql.NullInt64
			overview sql.NullString
			network  sql.NullString
			episodes sql.NullInt64
			traktID  sql.NullInt64
			status   string
		)
		if err := rows.Scan(&show.IMDBID, &show.Title, &year, &overview, &network, &episodes, &traktID, &status); err != nil {
			return nil, fmt.Errorf("store: scan show: %w", err)
		}
		show.Year = int(year.Int64)
		show.Overview = overview.String
		show.Network = network.String
		show.Episodes = int(episodes.Int64)
		show.TraktID = traktID.Int64
		show.UserStatus, err = media.ParseUserStatusShow(status)
		if err != nil {
			return nil, fmt.Errorf("store: show %s: %w", show.IMDBID, err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list shows: %w", err)
	}
	return shows, nil
}

// UpsertShow inserts the show or overwrites the stored row with its fields.
func (s *Store) UpsertShow(ctx context.Context, show media.Show) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store: missing database connection")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shows (imdb_id, title, year, overview, network, episodes, trakt_id, user_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(imdb_id) DO UPDATE SET
			title=excluded.title,
			year=excluded.year,
			overview=excluded.overview,
			network=excluded.network,
			episodes=excluded.episodes,
			trakt_id=excluded.trakt_id,
			user_status=excluded.user_status
	`,
		show.IMDBID,
		show.Title,
		nullInt(int64(show.Year)),
		nullString(show.Overview),
		nullString(show.Network),
		nullInt(int64(show.Episodes)),
		nullInt(show.TraktID),
		show.UserStatus.String(),
	)
	if err != nil {
		return fmt.Errorf("store: upsert show %s: %w", show.IMDBID, err)
	}
	return nil
}

// ImportShows inserts shows that are not stored yet and leaves existing rows
// untouched. It returns the number of rows inserted.
func (s *Store) ImportShows(ctx context.Context, shows []media.Show) (inserted int, err error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("store: missing database connection")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shows (imdb_id, title, year, user_status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(imdb_id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, show := range shows {
		res, execErr := stmt.ExecContext(ctx, show.IMDBID, show.Title, nullInt(int64(show.Year)), show.UserStatus.String())
		if execErr != nil {
			err = fmt.Errorf("store: import show %s: %w", show.IMDBID, execErr)
			return 0, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit import: %w", err)
	}
	return inserted, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullInt(value int64) sql.NullInt64 {
	return sql.NullInt64{Int64: value, Valid: value != 0}
}
