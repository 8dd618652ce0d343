package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/repository"
)

type okrReportService struct {
	reports repository.OKRReportRepo
}

func NewOKRReportService(reports repository.OKRReportRepo) OKRReportService {
	return &okrReportService{reports: reports}
}

func (s *okrReportService) Save(ctx context.Context, creationDate, content string) (*domain.OKRReport, error) {
	report, err := buildOKR(creationDate, content)
	if err != nil {
		return nil, err
	}
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, report.CreationDate)
}

func (s *okrReportService) Update(ctx context.Context, creationDate, content string) (*domain.OKRReport, error) {
	report, err := buildOKR(creationDate, content)
	if err != nil {
		return nil, err
	}
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, report.CreationDate)
}

func (s *okrReportService) Get(ctx context.Context, creationDate string) (*domain.OKRReport, error) {
	date, err := parseDate("creation_date", creationDate)
	if err != nil {
		return nil, err
	}
	return s.reports.Get(ctx, date)
}

func (s *okrReportService) Latest(ctx context.Context) (*domain.OKRReport, error) {
	return s.reports.Latest(ctx)
}

func (s *okrReportService) List(ctx context.Context) ([]*domain.OKRReport, error) {
	return s.reports.List(ctx)
}

func (s *okrReportService) Delete(ctx context.Context, creationDate string) error {
	date, err := parseDate("creation_date", creationDate)
	if err != nil {
		return err
	}
	return s.reports.Delete(ctx, date)
}

func buildOKR(creationDate, content string) (*domain.OKRReport, error) {
	date, err := parseDate("creation_date", creationDate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "is required")
	}
	return &domain.OKRReport{
		CreationDate: date,
		Content:      content,
		UpdatedAt:    time.Now().UTC(),
	}, nil
}
