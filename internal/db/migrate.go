package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema migrations. Statements are idempotent; the
// migration list is re-run in full on every open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run on every open; an already
			// applied column addition is not an error.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cook_sessions (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'planned'
		              CHECK(status IN ('planned','in_progress','completed','cancelled')),
		estimated_min INTEGER NOT NULL DEFAULT 0,
		actual_min    INTEGER,
		started_at    TEXT,
		finished_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cook_sessions_status ON cook_sessions(status)`,

	`CREATE TABLE IF NOT EXISTS session_steps (
		id               TEXT PRIMARY KEY,
		session_id       TEXT NOT NULL REFERENCES cook_sessions(id) ON DELETE CASCADE,
		step_order       INTEGER NOT NULL CHECK(step_order > 0),
		title            TEXT NOT NULL DEFAULT '',
		parallel_group   INTEGER NOT NULL DEFAULT 0,
		duration_min     INTEGER NOT NULL,
		equipment        TEXT NOT NULL DEFAULT '',
		supervision_only INTEGER NOT NULL DEFAULT 0,
		noisy            INTEGER NOT NULL DEFAULT 0,
		temperature_c    INTEGER,
		status           TEXT NOT NULL DEFAULT 'todo'
		                 CHECK(status IN ('todo','in_progress','done','skipped')),
		started_at       TEXT,
		finished_at      TEXT,
		UNIQUE(session_id, step_order)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_steps_session ON session_steps(session_id)`,
}
