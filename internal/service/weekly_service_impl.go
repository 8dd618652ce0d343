package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/repository"
)

type weeklyReportService struct {
	reports repository.WeeklyReportRepo
	now     func() time.Time
}

// NewWeeklyReportService creates a WeeklyReportService. now decides which
// report is the latest; nil uses time.Now.
func NewWeeklyReportService(reports repository.WeeklyReportRepo, now func() time.Time) WeeklyReportService {
	if now == nil {
		now = time.Now
	}
	return &weeklyReportService{reports: reports, now: now}
}

func (s *weeklyReportService) Save(ctx context.Context, startDate, endDate, content string) (*domain.WeeklyReport, error) {
	report, err := s.build(startDate, endDate, content)
	if err != nil {
		return nil, err
	}
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, report.StartDate, report.EndDate)
}

func (s *weeklyReportService) Update(ctx context.Context, startDate, endDate, content string) (*domain.WeeklyReport, error) {
	report, err := s.build(startDate, endDate, content)
	if err != nil {
		return nil, err
	}
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, report.StartDate, report.EndDate)
}

func (s *weeklyReportService) Get(ctx context.Context, startDate, endDate string) (*domain.WeeklyReport, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, start, end)
}

func (s *weeklyReportService) Latest(ctx context.Context) (*domain.WeeklyReport, error) {
	return s.reports.Latest(ctx, domain.DateOf(s.now()))
}

func (s *weeklyReportService) List(ctx context.Context, f WeeklyFilter) ([]*domain.WeeklyReport, error) {
	filter, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.reports.List(ctx, filter)
}

func (s *weeklyReportService) Delete(ctx context.Context, startDate, endDate string) error {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return err
	}
	return s.reports.Delete(ctx, start, end)
}

func (s *weeklyReportService) build(startDate, endDate, content string) (*domain.WeeklyReport, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "is required")
	}
	return &domain.WeeklyReport{
		StartDate: start,
		EndDate:   end,
		Content:   content,
		UpdatedAt: s.now().UTC(),
	}, nil
}
