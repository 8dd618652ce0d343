package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/domain"
)

// SQLiteWeeklyReportRepo implements WeeklyReportRepo using a SQLite database.
type SQLiteWeeklyReportRepo struct {
	db db.DBTX
}

// NewSQLiteWeeklyReportRepo creates a new SQLiteWeeklyReportRepo.
func NewSQLiteWeeklyReportRepo(conn db.DBTX) *SQLiteWeeklyReportRepo {
	return &SQLiteWeeklyReportRepo{db: conn}
}

const weeklyColumns = `start_date, end_date, content, created_at, updated_at`

func weeklyKey(start, end domain.Date) string {
	return "weekly report " + start.String() + ".." + end.String()
}

func (r *SQLiteWeeklyReportRepo) Save(ctx context.Context, w *domain.WeeklyReport) error {
	now := formatTimestamp(w.UpdatedAt)
	query := `INSERT INTO weekly_reports (start_date, end_date, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(start_date, end_date) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
		WHERE weekly_reports.content != excluded.content`
	_, err := r.db.ExecContext(ctx, query,
		w.StartDate.String(), w.EndDate.String(), w.Content, now, now)
	if err != nil {
		return fmt.Errorf("saving %s: %w", weeklyKey(w.StartDate, w.EndDate), err)
	}
	return nil
}

func (r *SQLiteWeeklyReportRepo) Update(ctx context.Context, w *domain.WeeklyReport) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE weekly_reports SET content = ?, updated_at = ? WHERE start_date = ? AND end_date = ?`,
		w.Content, formatTimestamp(w.UpdatedAt), w.StartDate.String(), w.EndDate.String())
	if err != nil {
		return fmt.Errorf("updating %s: %w", weeklyKey(w.StartDate, w.EndDate), err)
	}
	return affectedOrNotFound(res, weeklyKey(w.StartDate, w.EndDate))
}

func (r *SQLiteWeeklyReportRepo) Get(ctx context.Context, start, end domain.Date) (*domain.WeeklyReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+weeklyColumns+` FROM weekly_reports WHERE start_date = ? AND end_date = ?`,
		start.String(), end.String())
	w, err := scanWeeklyReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", weeklyKey(start, end), ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWeeklyReportRepo) Latest(ctx context.Context, today domain.Date) (*domain.WeeklyReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+weeklyColumns+` FROM weekly_reports
		ORDER BY ABS(julianday(end_date) - julianday(?)), end_date DESC
		LIMIT 1`, today.String())
	w, err := scanWeeklyReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("latest weekly report: %w", ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWeeklyReportRepo) List(ctx context.Context, f WeeklyFilter) ([]*domain.WeeklyReport, error) {
	var (
		where []string
		args  []any
	)
	if !f.Start.IsZero() {
		where = append(where, "start_date = ?")
		args = append(args, f.Start.String())
	}
	if !f.End.IsZero() {
		where = append(where, "end_date = ?")
		args = append(args, f.End.String())
	}
	query := `SELECT ` + weeklyColumns + ` FROM weekly_reports`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY end_date DESC, start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing weekly reports: %w", err)
	}
	defer rows.Close()

	var out []*domain.WeeklyReport
	for rows.Next() {
		w, err := scanWeeklyReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *SQLiteWeeklyReportRepo) Delete(ctx context.Context, start, end domain.Date) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM weekly_reports WHERE start_date = ? AND end_date = ?`, start.String(), end.String())
	if err != nil {
		return fmt.Errorf("deleting %s: %w", weeklyKey(start, end), err)
	}
	return affectedOrNotFound(res, weeklyKey(start, end))
}

func scanWeeklyReport(s scanner) (*domain.WeeklyReport, error) {
	var (
		start, end         string
		w                  domain.WeeklyReport
		createdAt, updated sql.NullString
	)
	if err := s.Scan(&start, &end, &w.Content, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning weekly report: %w", err)
	}
	var err error
	if w.StartDate, err = parseDateColumn(start, "start_date"); err != nil {
		return nil, err
	}
	if w.EndDate, err = parseDateColumn(end, "end_date"); err != nil {
		return nil, err
	}
	w.CreatedAt = parseTimestamp(createdAt)
	w.UpdatedAt = parseTimestamp(updated)
	return &w, nil
}
