package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it
// is safe on a fresh file, on every start, and on databases created by the
// earlier Python release, whose tables share these columns.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS daily_reports (
		entry_date TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS weekly_reports (
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (start_date, end_date)
	)`,

	`CREATE TABLE IF NOT EXISTS okr_reports (
		creation_date TEXT PRIMARY KEY,
		content       TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS todo_items (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		text       TEXT NOT NULL CHECK(length(trim(text)) > 0),
		done       INTEGER NOT NULL DEFAULT 0 CHECK(done IN (0, 1)),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_weekly_reports_end ON weekly_reports(end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_todo_items_done ON todo_items(done, id)`,
}
