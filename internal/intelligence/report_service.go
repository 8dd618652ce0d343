package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/parser"
)

// WeeklyRequest asks for a weekly report. A non-zero Start and End
// replace the range inferred from the log.
type WeeklyRequest struct {
	Content string
	UseMock bool
	Start   domain.Date
	End     domain.Date
}

// WeeklyResult is a generated weekly report with the data it was built from.
type WeeklyResult struct {
	Report     string
	Parsed     domain.ParsedData
	Validation WeeklyValidation
	Mock       bool
	Model      string
}

// OKRRequest asks for an OKR draft. An empty Quarter means the quarter
// after the current one.
type OKRRequest struct {
	Content string
	Quarter string
	UseMock bool
}

// OKRResult is a generated OKR draft.
type OKRResult struct {
	OKR        string
	Quarter    string
	Validation OKRValidation
	Mock       bool
	Model      string
}

// ReportService runs the parse, prompt, complete and validate pipeline.
type ReportService interface {
	GenerateWeekly(ctx context.Context, req WeeklyRequest) (*WeeklyResult, error)
	GenerateOKR(ctx context.Context, req OKRRequest) (*OKRResult, error)
}

type reportService struct {
	parser   *parser.Parser
	selector llm.Selector
	now      func() time.Time
}

// NewReportService creates a ReportService. A nil now uses time.Now.
func NewReportService(p *parser.Parser, selector llm.Selector, now func() time.Time) ReportService {
	if p == nil {
		p = parser.New(nil)
	}
	if now == nil {
		now = time.Now
	}
	if selector.Mock == nil {
		selector.Mock = llm.NewMockClient(nil)
	}
	return &reportService{parser: p, selector: selector, now: now}
}

func (s *reportService) GenerateWeekly(ctx context.Context, req WeeklyRequest) (*WeeklyResult, error) {
	parsed := s.parser.Parse(req.Content, s.now())
	if !req.Start.IsZero() && !req.End.IsZero() {
		parsed.WeekRange = domain.WeekRange{Start: req.Start, End: req.End}
	}

	prompt, err := BuildWeeklyPrompt(parsed)
	if err != nil {
		return nil, err
	}
	resp, mock, err := s.complete(ctx, domain.TaskWeeklyReport, prompt, req.UseMock)
	if err != nil {
		return nil, fmt.Errorf("generating weekly report: %w", err)
	}

	return &WeeklyResult{
		Report:     resp.Text,
		Parsed:     parsed,
		Validation: ValidateWeeklyReport(resp.Text),
		Mock:       mock,
		Model:      resp.Model,
	}, nil
}

func (s *reportService) GenerateOKR(ctx context.Context, req OKRRequest) (*OKRResult, error) {
	quarter := strings.TrimSpace(req.Quarter)
	if quarter == "" {
		quarter = NextQuarter(s.now())
	}

	prompt, err := BuildOKRPrompt(req.Content, quarter)
	if err != nil {
		return nil, err
	}
	resp, mock, err := s.complete(ctx, domain.TaskOKR, prompt, req.UseMock)
	if err != nil {
		return nil, fmt.Errorf("generating OKR: %w", err)
	}

	return &OKRResult{
		OKR:        resp.Text,
		Quarter:    quarter,
		Validation: ValidateOKR(resp.Text),
		Mock:       mock,
		Model:      resp.Model,
	}, nil
}

// complete runs the call on a context detached from ctx's cancellation.
// The client's own timeout still bounds it.
func (s *reportService) complete(ctx context.Context, task domain.Task, p Prompt, wantMock bool) (*llm.Completion, bool, error) {
	client, mock := s.selector.Pick(wantMock)
	resp, err := client.Complete(context.WithoutCancel(ctx), llm.CompletionRequest{
		Task:   task,
		System: p.System,
		User:   p.User,
	})
	if err != nil {
		return nil, mock, err
	}
	return resp, mock, nil
}
