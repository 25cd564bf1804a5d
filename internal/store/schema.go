package store

import "fmt"

const schemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY
);`

const schemaShows = `
CREATE TABLE IF NOT EXISTS shows (
	imdb_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	year INTEGER,
	overview TEXT,
	network TEXT,
	episodes INTEGER CHECK (episodes IS NULL OR episodes >= 0),
	trakt_id INTEGER,
	user_status TEXT NOT NULL DEFAULT 'todo'
);`

const schemaSeasons = `
CREATE TABLE IF NOT EXISTS seasons (
	show_imdb_id TEXT NOT NULL,
	number INTEGER NOT NULL CHECK (number >= 0),
	trakt_id INTEGER,
	title TEXT,
	episodes INTEGER NOT NULL DEFAULT 0,
	aired INTEGER NOT NULL DEFAULT 0,
	first_aired TEXT,
	user_status TEXT NOT NULL DEFAULT 'unfilled',
	PRIMARY KEY (show_imdb_id, number),
	FOREIGN KEY (show_imdb_id) REFERENCES shows(imdb_id) ON DELETE CASCADE
);`

type migration struct {
	version    int
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		statements: []string{
			schemaShows,
			schemaSeasons,
		},
	},
	{
		version: 2,
		statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_shows_trakt_id ON shows(trakt_id);`,
			`CREATE INDEX IF NOT EXISTS idx_shows_user_status ON shows(user_status);`,
		},
	},
}

// MigrateSchema applies every migration newer than the recorded version.
func (s *Store) MigrateSchema() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store: missing database connection")
	}

	if _, err := s.db.Exec(schemaMigrations); err != nil {
		return fmt.Errorf("store: create schema_migrations table: %w", err)
	}

	current, err := s.currentSchemaVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := s.applyMigration(m); err != nil {
			return err
		}
		current = m.version
	}
	return nil
}

func (s *Store) currentSchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("store: read schema version: %w", err)
	}
	return version, nil
}

func (s *Store) applyMigration(m migration) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: start migration %d: %w", m.version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, statement := range m.statements {
		if _, err = tx.Exec(statement); err != nil {
			return fmt.Errorf("store: migration %d failed: %w", m.version, err)
		}
	}

	if _, err = tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
		return fmt.Errorf("store: record migration %d: %w", m.version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit migration %d: %w", m.version, err)
	}
	return nil
}
