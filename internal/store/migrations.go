package store

import (
	"database/sql"
	"fmt"
)

// Migration is one database schema step.
type Migration struct {
	Version     int
	Description string
	Up          string
}

// migrations contains all schema migrations in order.
var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema with sessions and events",
		Up:          migrationV1Up,
	},
	{
		Version:     2,
		Description: "Add per-kind index for counting queries",
		Up:          migrationV2Up,
	},
}

const migrationV1Up = `
CREATE TABLE IF NOT EXISTS sessions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    hostname    TEXT NOT NULL,
    started_ns  INTEGER NOT NULL,
    stopped_ns  INTEGER
);

CREATE TABLE IF NOT EXISTS events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id  INTEGER NOT NULL REFERENCES sessions(id),
    captured_ns INTEGER NOT NULL,
    kind        TEXT NOT NULL,
    event_ms    INTEGER NOT NULL,
    mask        INTEGER NOT NULL,

    key_code    INTEGER,
    raw_code    INTEGER,
    key_char    INTEGER,

    button      INTEGER,
    clicks      INTEGER,
    x           INTEGER,
    y           INTEGER,

    wheel_type  INTEGER,
    amount      INTEGER,
    rotation    INTEGER,
    direction   INTEGER
);

CREATE INDEX IF NOT EXISTS idx_events_captured ON events(captured_ns);
CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, captured_ns);
`

const migrationV2Up = `
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
`

// applyMigrations brings the database to the latest schema version,
// recording applied versions in schema_migrations.
func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
		    version     INTEGER PRIMARY KEY,
		    applied_ns  INTEGER NOT NULL,
		    description TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.Up); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, applied_ns, description) VALUES (?, strftime('%s','now') * 1000000000, ?)`,
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}
