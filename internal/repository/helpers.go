package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// legacyTimestampLayout is SQLite's CURRENT_TIMESTAMP format, found in rows
// written before timestamps were stored as RFC3339.
const legacyTimestampLayout = "2006-01-02 15:04:05"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseTimestamp parses a stored timestamp. NULL, empty or unparseable
// values yield the zero time.
func parseTimestamp(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, legacyTimestampLayout} {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// parseDateColumn parses a YYYY-MM-DD key column.
func parseDateColumn(s, column string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return d, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// formatTimestamp renders t for storage, defaulting to now.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// affectedOrNotFound turns a zero-row write into ErrNotFound.
func affectedOrNotFound(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
