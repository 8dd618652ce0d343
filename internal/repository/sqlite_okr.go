package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/domain"
)

// SQLiteOKRReportRepo implements OKRReportRepo using a SQLite database.
type SQLiteOKRReportRepo struct {
	db db.DBTX
}

// NewSQLiteOKRReportRepo creates a new SQLiteOKRReportRepo.
func NewSQLiteOKRReportRepo(conn db.DBTX) *SQLiteOKRReportRepo {
	return &SQLiteOKRReportRepo{db: conn}
}

const okrColumns = `creation_date, content, created_at, updated_at`

func (r *SQLiteOKRReportRepo) Save(ctx context.Context, o *domain.OKRReport) error {
	now := formatTimestamp(o.UpdatedAt)
	query := `INSERT INTO okr_reports (creation_date, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(creation_date) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
		WHERE okr_reports.content != excluded.content`
	if _, err := r.db.ExecContext(ctx, query, o.CreationDate.String(), o.Content, now, now); err != nil {
		return fmt.Errorf("saving OKR report %s: %w", o.CreationDate, err)
	}
	return nil
}

func (r *SQLiteOKRReportRepo) Update(ctx context.Context, o *domain.OKRReport) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE okr_reports SET content = ?, updated_at = ? WHERE creation_date = ?`,
		o.Content, formatTimestamp(o.UpdatedAt), o.CreationDate.String())
	if err != nil {
		return fmt.Errorf("updating OKR report %s: %w", o.CreationDate, err)
	}
	return affectedOrNotFound(res, "OKR report "+o.CreationDate.String())
}

func (r *SQLiteOKRReportRepo) Get(ctx context.Context, date domain.Date) (*domain.OKRReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+okrColumns+` FROM okr_reports WHERE creation_date = ?`, date.String())
	o, err := scanOKRReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("OKR report %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (r *SQLiteOKRReportRepo) Latest(ctx context.Context) (*domain.OKRReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+okrColumns+` FROM okr_reports ORDER BY creation_date DESC LIMIT 1`)
	o, err := scanOKRReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("latest OKR report: %w", ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (r *SQLiteOKRReportRepo) List(ctx context.Context) ([]*domain.OKRReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+okrColumns+` FROM okr_reports ORDER BY creation_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing OKR reports: %w", err)
	}
	defer rows.Close()

	var out []*domain.OKRReport
	for rows.Next() {
		o, err := scanOKRReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *SQLiteOKRReportRepo) Delete(ctx context.Context, date domain.Date) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM okr_reports WHERE creation_date = ?`, date.String())
	if err != nil {
		return fmt.Errorf("deleting OKR report %s: %w", date, err)
	}
	return affectedOrNotFound(res, "OKR report "+date.String())
}

func scanOKRReport(s scanner) (*domain.OKRReport, error) {
	var (
		creation           string
		o                  domain.OKRReport
		createdAt, updated sql.NullString
	)
	if err := s.Scan(&creation, &o.Content, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning OKR report: %w", err)
	}
	date, err := parseDateColumn(creation, "creation_date")
	if err != nil {
		return nil, err
	}
	o.CreationDate = date
	o.CreatedAt = parseTimestamp(createdAt)
	o.UpdatedAt = parseTimestamp(updated)
	return &o, nil
}
