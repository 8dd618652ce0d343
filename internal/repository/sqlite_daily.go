package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/domain"
)

// SQLiteDailyReportRepo implements DailyReportRepo using a SQLite database.
type SQLiteDailyReportRepo struct {
	db db.DBTX
}

// NewSQLiteDailyReportRepo creates a new SQLiteDailyReportRepo.
func NewSQLiteDailyReportRepo(conn db.DBTX) *SQLiteDailyReportRepo {
	return &SQLiteDailyReportRepo{db: conn}
}

const dailyColumns = `entry_date, content, created_at, updated_at`

func (r *SQLiteDailyReportRepo) Save(ctx context.Context, d *domain.DailyReport) error {
	now := formatTimestamp(d.UpdatedAt)
	query := `INSERT INTO daily_reports (entry_date, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(entry_date) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
		WHERE daily_reports.content != excluded.content`
	if _, err := r.db.ExecContext(ctx, query, d.EntryDate.String(), d.Content, now, now); err != nil {
		return fmt.Errorf("saving daily report %s: %w", d.EntryDate, err)
	}
	return nil
}

func (r *SQLiteDailyReportRepo) Get(ctx context.Context, date domain.Date) (*domain.DailyReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+dailyColumns+` FROM daily_reports WHERE entry_date = ?`, date.String())
	d, err := scanDailyReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("daily report %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDailyReportRepo) ListRange(ctx context.Context, start, end domain.Date) ([]*domain.DailyReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dailyColumns+` FROM daily_reports
		WHERE entry_date BETWEEN ? AND ?
		ORDER BY entry_date`, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("listing daily reports: %w", err)
	}
	defer rows.Close()

	var out []*domain.DailyReport
	for rows.Next() {
		d, err := scanDailyReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *SQLiteDailyReportRepo) ListDates(ctx context.Context) ([]domain.Date, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT entry_date FROM daily_reports ORDER BY entry_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing daily report dates: %w", err)
	}
	defer rows.Close()

	var out []domain.Date
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning entry_date: %w", err)
		}
		d, err := parseDateColumn(s, "entry_date")
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *SQLiteDailyReportRepo) Delete(ctx context.Context, date domain.Date) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_reports WHERE entry_date = ?`, date.String())
	if err != nil {
		return fmt.Errorf("deleting daily report %s: %w", date, err)
	}
	return affectedOrNotFound(res, "daily report "+date.String())
}

func scanDailyReport(s scanner) (*domain.DailyReport, error) {
	var (
		entryDate          string
		d                  domain.DailyReport
		createdAt, updated sql.NullString
	)
	if err := s.Scan(&entryDate, &d.Content, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily report: %w", err)
	}
	date, err := parseDateColumn(entryDate, "entry_date")
	if err != nil {
		return nil, err
	}
	d.EntryDate = date
	d.CreatedAt = parseTimestamp(createdAt)
	d.UpdatedAt = parseTimestamp(updated)
	return &d, nil
}
