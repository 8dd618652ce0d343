package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/repository"
)

type dailyReportService struct {
	reports repository.DailyReportRepo
}

func NewDailyReportService(reports repository.DailyReportRepo) DailyReportService {
	return &dailyReportService{reports: reports}
}

func (s *dailyReportService) Save(ctx context.Context, entryDate, content string) (*domain.DailyReport, error) {
	date, err := parseDate("entry_date", entryDate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "is required")
	}

	report := &domain.DailyReport{
		EntryDate: date,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, date)
}

func (s *dailyReportService) Get(ctx context.Context, entryDate string) (*domain.DailyReport, error) {
	date, err := parseDate("entry_date", entryDate)
	if err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, date)
}

func (s *dailyReportService) ListRange(ctx context.Context, startDate, endDate string) ([]*domain.DailyReport, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reports.ListRange(ctx, start, end)
}

func (s *dailyReportService) ListDates(ctx context.Context) ([]domain.Date, error) {
	return s.reports.ListDates(ctx)
}

func (s *dailyReportService) Delete(ctx context.Context, entryDate string) error {
	date, err := parseDate("entry_date", entryDate)
	if err != nil {
		return err
	}
	return s.reports.Delete(ctx, date)
}
