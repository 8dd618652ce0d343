package repository

import (
	"context"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// DailyReportRepo stores one work log per calendar day.
type DailyReportRepo interface {
	// Save inserts or replaces the log for r.EntryDate. Saving content
	// identical to what is stored changes nothing, timestamps included.
	Save(ctx context.Context, r *domain.DailyReport) error
	Get(ctx context.Context, date domain.Date) (*domain.DailyReport, error)
	ListRange(ctx context.Context, start, end domain.Date) ([]*domain.DailyReport, error)
	ListDates(ctx context.Context) ([]domain.Date, error)
	Delete(ctx context.Context, date domain.Date) error
}

// WeeklyFilter narrows List to exact start and/or end dates. Zero fields
// do not filter.
type WeeklyFilter struct {
	Start domain.Date
	End   domain.Date
}

// WeeklyReportRepo stores weekly reports keyed by their date span.
type WeeklyReportRepo interface {
	Save(ctx context.Context, r *domain.WeeklyReport) error
	// Update replaces the content of an existing report and fails with
	// ErrNotFound when there is none.
	Update(ctx context.Context, r *domain.WeeklyReport) error
	Get(ctx context.Context, start, end domain.Date) (*domain.WeeklyReport, error)
	// Latest returns the report whose end date is closest to today.
	Latest(ctx context.Context, today domain.Date) (*domain.WeeklyReport, error)
	List(ctx context.Context, f WeeklyFilter) ([]*domain.WeeklyReport, error)
	Delete(ctx context.Context, start, end domain.Date) error
}

// OKRReportRepo stores OKR drafts keyed by creation date.
type OKRReportRepo interface {
	Save(ctx context.Context, r *domain.OKRReport) error
	Update(ctx context.Context, r *domain.OKRReport) error
	Get(ctx context.Context, date domain.Date) (*domain.OKRReport, error)
	Latest(ctx context.Context) (*domain.OKRReport, error)
	List(ctx context.Context) ([]*domain.OKRReport, error)
	Delete(ctx context.Context, date domain.Date) error
}

// TodoRepo stores TODO items under auto-assigned integer ids.
type TodoRepo interface {
	// Create assigns t.ID.
	Create(ctx context.Context, t *domain.TodoItem) error
	Get(ctx context.Context, id int64) (*domain.TodoItem, error)
	List(ctx context.Context) ([]*domain.TodoItem, error)
	Update(ctx context.Context, t *domain.TodoItem) error
	Delete(ctx context.Context, id int64) error
}

var (
	_ DailyReportRepo  = (*SQLiteDailyReportRepo)(nil)
	_ WeeklyReportRepo = (*SQLiteWeeklyReportRepo)(nil)
	_ OKRReportRepo    = (*SQLiteOKRReportRepo)(nil)
	_ TodoRepo         = (*SQLiteTodoRepo)(nil)
)
