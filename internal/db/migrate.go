package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		input_path  TEXT NOT NULL,
		output_base TEXT NOT NULL DEFAULT '',
		sense       TEXT NOT NULL CHECK(sense IN ('min','max')),
		status      TEXT NOT NULL DEFAULT 'running'
		            CHECK(status IN ('running','done','failed')),
		records     INTEGER NOT NULL DEFAULT 0,
		nodes       INTEGER NOT NULL DEFAULT 0,
		feasible    INTEGER NOT NULL DEFAULT 0,
		incumbent   REAL,
		follow      INTEGER NOT NULL DEFAULT 0,
		error       TEXT NOT NULL DEFAULT '',
		started_at  TEXT NOT NULL,
		finished_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

	`CREATE TABLE IF NOT EXISTS snapshots (
		run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL CHECK(seq > 0),
		records    INTEGER NOT NULL,
		nodes      INTEGER NOT NULL,
		incumbent  REAL,
		dot_path   TEXT NOT NULL DEFAULT '',
		outputs    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	)`,
}
