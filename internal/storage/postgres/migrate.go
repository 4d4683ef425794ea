package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		address VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres VARCHAR(500) NOT NULL DEFAULT '',
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres VARCHAR(120) NOT NULL DEFAULT '',
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id SERIAL PRIMARY KEY,
		venue_id INTEGER NOT NULL CONSTRAINT shows_venue_id_fkey REFERENCES venues (id),
		artist_id INTEGER NOT NULL CONSTRAINT shows_artist_id_fkey REFERENCES artists (id),
		start_time TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_start ON shows (venue_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_start ON shows (artist_id, start_time)`,
}

// Migrate creates the tables and indexes when they are missing.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
