package service

import (
	"context"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/intelligence"
	"github.com/alexanderramin/workbrief/internal/repository"
)

type DailyReportService interface {
	Save(ctx context.Context, entryDate, content string) (*domain.DailyReport, error)
	Get(ctx context.Context, entryDate string) (*domain.DailyReport, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]*domain.DailyReport, error)
	ListDates(ctx context.Context) ([]domain.Date, error)
	Delete(ctx context.Context, entryDate string) error
}

// WeeklyFilter selects weekly reports by exact start and/or end date.
// Empty fields match everything.
type WeeklyFilter struct {
	StartDate string
	EndDate   string
}

type WeeklyReportService interface {
	Save(ctx context.Context, startDate, endDate, content string) (*domain.WeeklyReport, error)
	Update(ctx context.Context, startDate, endDate, content string) (*domain.WeeklyReport, error)
	Get(ctx context.Context, startDate, endDate string) (*domain.WeeklyReport, error)
	Latest(ctx context.Context) (*domain.WeeklyReport, error)
	List(ctx context.Context, f WeeklyFilter) ([]*domain.WeeklyReport, error)
	Delete(ctx context.Context, startDate, endDate string) error
}

type OKRReportService interface {
	Save(ctx context.Context, creationDate, content string) (*domain.OKRReport, error)
	Update(ctx context.Context, creationDate, content string) (*domain.OKRReport, error)
	Get(ctx context.Context, creationDate string) (*domain.OKRReport, error)
	Latest(ctx context.Context) (*domain.OKRReport, error)
	List(ctx context.Context) ([]*domain.OKRReport, error)
	Delete(ctx context.Context, creationDate string) error
}

type TodoService interface {
	Create(ctx context.Context, text string) (*domain.TodoItem, error)
	List(ctx context.Context) ([]*domain.TodoItem, error)
	// Update changes the non-nil fields of item id.
	Update(ctx context.Context, id int64, text *string, done *bool) (*domain.TodoItem, error)
	Delete(ctx context.Context, id int64) error
}

// WeeklyGenerateRequest is the input of a weekly generation. StartDate and
// EndDate must be given together or not at all.
type WeeklyGenerateRequest struct {
	Content   string
	UseMock   bool
	StartDate string
	EndDate   string
}

// OKRGenerateRequest is the input of an OKR generation.
type OKRGenerateRequest struct {
	Content string
	Quarter string
	UseMock bool
}

// AssistantService exposes parsing, generation and validation.
type AssistantService interface {
	WeekRange() domain.WeekRange
	Parse(ctx context.Context, content string) (*domain.ParsedData, error)
	GenerateWeekly(ctx context.Context, req WeeklyGenerateRequest) (*intelligence.WeeklyResult, error)
	GenerateOKR(ctx context.Context, req OKRGenerateRequest) (*intelligence.OKRResult, error)
	ValidateWeekly(report string) intelligence.WeeklyValidation
	ValidateOKR(okr string) intelligence.OKRValidation
	// MaxInputChars is the limit applied to log and history text.
	MaxInputChars() int
	// LLMConfigured reports whether a real provider is available.
	LLMConfigured() bool
}

func (f WeeklyFilter) toRepo() (repository.WeeklyFilter, error) {
	var out repository.WeeklyFilter
	var err error
	if f.StartDate != "" {
		if out.Start, err = parseDate("start_date", f.StartDate); err != nil {
			return out, err
		}
	}
	if f.EndDate != "" {
		if out.End, err = parseDate("end_date", f.EndDate); err != nil {
			return out, err
		}
	}
	return out, nil
}
