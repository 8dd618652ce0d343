package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/intelligence"
	"github.com/alexanderramin/workbrief/internal/parser"
)

// DefaultMaxInputChars bounds log and history text when no limit is configured.
const DefaultMaxInputChars = 20000

// AssistantConfig holds the limits and flags reported to clients.
type AssistantConfig struct {
	MaxInputChars int
	LLMConfigured bool
}

type assistantService struct {
	parser   *parser.Parser
	reports  intelligence.ReportService
	cfg      AssistantConfig
	now      func() time.Time
	observer UseCaseObserver
}

// NewAssistantService creates an AssistantService. A nil parser uses the
// default keyword table and a nil now uses time.Now.
func NewAssistantService(
	p *parser.Parser,
	reports intelligence.ReportService,
	cfg AssistantConfig,
	now func() time.Time,
	observers ...UseCaseObserver,
) AssistantService {
	if p == nil {
		p = parser.New(nil)
	}
	if now == nil {
		now = time.Now
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	return &assistantService{
		parser:   p,
		reports:  reports,
		cfg:      cfg,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *assistantService) WeekRange() domain.WeekRange {
	return domain.CurrentWeek(s.now())
}

func (s *assistantService) Parse(ctx context.Context, content string) (parsed *domain.ParsedData, err error) {
	fields := map[string]any{"input_chars": utf8.RuneCountInString(content)}
	defer observe(ctx, s.observer, "parse", time.Now(), fields, &err)

	if err = checkLength("content", content, s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	data := s.parser.Parse(content, s.now())
	fields["blocks"] = len(data.Blocks)
	return &data, nil
}

func (s *assistantService) GenerateWeekly(ctx context.Context, req WeeklyGenerateRequest) (result *intelligence.WeeklyResult, err error) {
	fields := map[string]any{
		"input_chars": utf8.RuneCountInString(req.Content),
		"use_mock":    req.UseMock,
	}
	defer observe(ctx, s.observer, "generate-weekly", time.Now(), fields, &err)

	if err = requireText("content", req.Content, s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	in := intelligence.WeeklyRequest{Content: req.Content, UseMock: req.UseMock}
	if in.Start, in.End, err = optionalRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	result, err = s.reports.GenerateWeekly(ctx, in)
	if err != nil {
		return nil, err
	}
	fields["mock"] = result.Mock
	fields["model"] = result.Model
	fields["valid"] = result.Validation.Valid
	return result, nil
}

func (s *assistantService) GenerateOKR(ctx context.Context, req OKRGenerateRequest) (result *intelligence.OKRResult, err error) {
	fields := map[string]any{
		"input_chars": utf8.RuneCountInString(req.Content),
		"use_mock":    req.UseMock,
	}
	defer observe(ctx, s.observer, "generate-okr", time.Now(), fields, &err)

	if err = requireText("content", req.Content, s.cfg.MaxInputChars); err != nil {
		return nil, err
	}

	result, err = s.reports.GenerateOKR(ctx, intelligence.OKRRequest{
		Content: req.Content,
		Quarter: req.Quarter,
		UseMock: req.UseMock,
	})
	if err != nil {
		return nil, err
	}
	fields["quarter"] = result.Quarter
	fields["mock"] = result.Mock
	fields["model"] = result.Model
	fields["valid"] = result.Validation.Valid
	return result, nil
}

func (s *assistantService) ValidateWeekly(report string) intelligence.WeeklyValidation {
	return intelligence.ValidateWeeklyReport(report)
}

func (s *assistantService) ValidateOKR(okr string) intelligence.OKRValidation {
	return intelligence.ValidateOKR(okr)
}

func (s *assistantService) MaxInputChars() int { return s.cfg.MaxInputChars }

func (s *assistantService) LLMConfigured() bool { return s.cfg.LLMConfigured }

func requireText(field, text string, limit int) error {
	if strings.TrimSpace(text) == "" {
		return invalid(field, "is required")
	}
	return checkLength(field, text, limit)
}

// optionalRange parses an override range. Both bounds or neither.
func optionalRange(startDate, endDate string) (domain.Date, domain.Date, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	switch {
	case startDate == "" && endDate == "":
		return domain.Date{}, domain.Date{}, nil
	case startDate == "" || endDate == "":
		return domain.Date{}, domain.Date{}, invalid("start_date", "start_date and end_date must be given together")
	}
	return parseRange(startDate, endDate)
}
