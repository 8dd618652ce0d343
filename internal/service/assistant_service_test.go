package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/intelligence"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureUseCaseObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.events)
	return c.events[len(c.events)-1]
}

func fixedClock() time.Time { return testutil.FixedNow }

func setupAssistant(t *testing.T, maxChars int) (AssistantService, *captureUseCaseObserver) {
	t.Helper()
	reports := intelligence.NewReportService(nil, llm.Selector{Mock: llm.NewMockClient(nil)}, fixedClock)
	obs := &captureUseCaseObserver{}
	return NewAssistantService(nil, reports, AssistantConfig{MaxInputChars: maxChars}, fixedClock, obs), obs
}

type failingReports struct{ err error }

func (f failingReports) GenerateWeekly(context.Context, intelligence.WeeklyRequest) (*intelligence.WeeklyResult, error) {
	return nil, f.err
}

func (f failingReports) GenerateOKR(context.Context, intelligence.OKRRequest) (*intelligence.OKRResult, error) {
	return nil, f.err
}

func TestAssistant_WeekRange(t *testing.T) {
	svc, _ := setupAssistant(t, 0)

	r := svc.WeekRange()
	assert.Equal(t, "2025-12-08", r.Start.String())
	assert.Equal(t, "2025-12-12", r.End.String())
}

func TestAssistant_DefaultLimit(t *testing.T) {
	svc, _ := setupAssistant(t, 0)
	assert.Equal(t, DefaultMaxInputChars, svc.MaxInputChars())
	assert.False(t, svc.LLMConfigured())
}

func TestAssistant_Parse(t *testing.T) {
	svc, obs := setupAssistant(t, 0)

	parsed, err := svc.Parse(context.Background(), testutil.SampleWeekLog)
	require.NoError(t, err)
	assert.Equal(t, 3, parsed.DatedBlocks())
	assert.Equal(t, "2025-12-08", parsed.WeekRange.Start.String())
	assert.Equal(t, "2025-12-12", parsed.WeekRange.End.String())

	ev := obs.last(t)
	assert.Equal(t, "parse", ev.Name)
	assert.True(t, ev.Success)
}

func TestAssistant_ParseEmptyIsAllowed(t *testing.T) {
	svc, _ := setupAssistant(t, 0)

	parsed, err := svc.Parse(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, parsed.Blocks)
}

func TestAssistant_InputLimitCountsCharacters(t *testing.T) {
	svc, obs := setupAssistant(t, 5)
	ctx := context.Background()

	_, err := svc.Parse(ctx, "周报周报周")
	require.NoError(t, err, "five CJK characters fit a five character limit")

	_, err = svc.Parse(ctx, "周报周报周报")
	requireValidationError(t, err, "content")
	assert.False(t, obs.last(t).Success)

	_, err = svc.GenerateWeekly(ctx, WeeklyGenerateRequest{Content: strings.Repeat("x", 6)})
	requireValidationError(t, err, "content")

	_, err = svc.GenerateOKR(ctx, OKRGenerateRequest{Content: strings.Repeat("x", 6)})
	requireValidationError(t, err, "content")
}

func TestAssistant_GenerateWeeklyMock(t *testing.T) {
	svc, obs := setupAssistant(t, 0)

	res, err := svc.GenerateWeekly(context.Background(), WeeklyGenerateRequest{Content: testutil.SampleWeekLog, UseMock: true})
	require.NoError(t, err)
	assert.True(t, res.Mock)
	assert.True(t, res.Validation.Valid)
	assert.Equal(t, "2025-12-08", res.Parsed.WeekRange.Start.String())

	ev := obs.last(t)
	assert.Equal(t, "generate-weekly", ev.Name)
	assert.Equal(t, true, ev.Fields["mock"])
}

func TestAssistant_GenerateWeeklyRangeOverride(t *testing.T) {
	svc, _ := setupAssistant(t, 0)
	ctx := context.Background()

	res, err := svc.GenerateWeekly(ctx, WeeklyGenerateRequest{
		Content:   testutil.SampleWeekLog,
		StartDate: "2025-12-01",
		EndDate:   "2025-12-14",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WeekRange{Start: testutil.MustDate("2025-12-01"), End: testutil.MustDate("2025-12-14")}, res.Parsed.WeekRange)

	_, err = svc.GenerateWeekly(ctx, WeeklyGenerateRequest{Content: "x", StartDate: "2025-12-01"})
	requireValidationError(t, err, "start_date")

	_, err = svc.GenerateWeekly(ctx, WeeklyGenerateRequest{Content: "x", StartDate: "2025-12-10", EndDate: "2025-12-01"})
	requireValidationError(t, err, "end_date")
}

func TestAssistant_GenerateRequiresContent(t *testing.T) {
	svc, _ := setupAssistant(t, 0)
	ctx := context.Background()

	_, err := svc.GenerateWeekly(ctx, WeeklyGenerateRequest{Content: "  "})
	requireValidationError(t, err, "content")

	_, err = svc.GenerateOKR(ctx, OKRGenerateRequest{})
	requireValidationError(t, err, "content")
}

func TestAssistant_GenerateOKRMock(t *testing.T) {
	svc, _ := setupAssistant(t, 0)

	res, err := svc.GenerateOKR(context.Background(), OKRGenerateRequest{Content: "本季度完成支付项目上线"})
	require.NoError(t, err)
	assert.Equal(t, "2026第一季度", res.Quarter)
	assert.True(t, res.Mock)
	assert.True(t, res.Validation.Valid)
}

func TestAssistant_LLMErrorPropagates(t *testing.T) {
	llmErr := &llm.Error{Kind: llm.KindStatus, StatusCode: 429, Message: "rate limited"}
	obs := &captureUseCaseObserver{}
	svc := NewAssistantService(nil, failingReports{err: llmErr}, AssistantConfig{}, fixedClock, obs)

	_, err := svc.GenerateWeekly(context.Background(), WeeklyGenerateRequest{Content: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrStatus)

	ev := obs.last(t)
	assert.False(t, ev.Success)
	assert.True(t, errors.Is(ev.Err, llm.ErrStatus))
}

func TestAssistant_Validate(t *testing.T) {
	svc, _ := setupAssistant(t, 0)

	assert.True(t, svc.ValidateWeekly(llm.MockResponse(domain.TaskWeeklyReport)).Valid)
	assert.False(t, svc.ValidateWeekly("随便写写").Valid)
	assert.True(t, svc.ValidateOKR(llm.MockResponse(domain.TaskOKR)).Valid)
}
