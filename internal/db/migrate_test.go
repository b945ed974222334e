package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Migrations re-run on every open; a second and third pass must be
	// clean no-ops.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"cook_sessions", "session_steps"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_cook_sessions_status", "idx_session_steps_session"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_StatusChecksEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO cook_sessions (id, title, status, created_at, updated_at)
		VALUES ('s1', 'x', 'simmering', '2026-03-08T14:00:00Z', '2026-03-08T14:00:00Z')`)
	assert.Error(t, err, "unknown session status must be rejected by the schema")
}

func TestMigrate_StepOrderUniquePerSession(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO cook_sessions (id, title, status, created_at, updated_at)
		VALUES ('s1', 'x', 'planned', '2026-03-08T14:00:00Z', '2026-03-08T14:00:00Z')`)
	require.NoError(t, err)

	insert := `INSERT INTO session_steps (id, session_id, step_order, duration_min) VALUES (?, 's1', 1, 10)`
	_, err = db.Exec(insert, "st1")
	require.NoError(t, err)
	_, err = db.Exec(insert, "st2")
	assert.Error(t, err, "duplicate step order within one session must be rejected")
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}
