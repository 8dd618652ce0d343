package testutil

import (
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// FixedNow is the reference instant used by fixtures: Friday 2025-12-12.
var FixedNow = time.Date(2025, 12, 12, 18, 0, 0, 0, time.UTC)

// SampleWeekLog is a daily log covering Monday, Wednesday and Friday of
// the week of 2025-12-08.
const SampleWeekLog = `本周计划同步
20251208 8h
- 完成支付项目联调
- 周会
2025-12-10 7.5h
1. 搭建监控告警平台
2. 调研向量数据库选型
2025-12-12
- 完成支付项目联调
- 整理报销单据`

// MustDate parses s or panics. For test fixtures only.
func MustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func NewTestDailyReport(date, content string) *domain.DailyReport {
	return &domain.DailyReport{EntryDate: MustDate(date), Content: content}
}

func NewTestWeeklyReport(start, end, content string) *domain.WeeklyReport {
	return &domain.WeeklyReport{StartDate: MustDate(start), EndDate: MustDate(end), Content: content}
}

func NewTestOKRReport(date, content string) *domain.OKRReport {
	return &domain.OKRReport{CreationDate: MustDate(date), Content: content}
}

// TodoOption customises a fixture TODO item.
type TodoOption func(*domain.TodoItem)

func WithDone() TodoOption {
	return func(t *domain.TodoItem) { t.Done = true }
}

func WithCreatedAt(at time.Time) TodoOption {
	return func(t *domain.TodoItem) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTodo(text string, opts ...TodoOption) *domain.TodoItem {
	t := &domain.TodoItem{Text: text}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
