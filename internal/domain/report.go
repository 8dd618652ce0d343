package domain

import (
	"errors"
	"strings"
	"time"
)

// DailyReport is one day's free-text work log. EntryDate is unique.
type DailyReport struct {
	EntryDate Date      `json:"entry_date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeeklyReport is generated or edited prose for an arbitrary date span,
// keyed by (StartDate, EndDate).
type WeeklyReport struct {
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Range returns the span the report covers.
func (w *WeeklyReport) Range() WeekRange {
	return WeekRange{Start: w.StartDate, End: w.EndDate}
}

// OKRReport is one OKR draft per creation date. The target quarter is part
// of the content, not the key.
type OKRReport struct {
	CreationDate Date      `json:"creation_date"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ErrEmptyTodoText is returned when a TODO item would end up without text.
var ErrEmptyTodoText = errors.New("todo text must not be empty")

// TodoItem is a checklist entry with no date association.
type TodoItem struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyUpdate changes the fields that are non-nil. Text is trimmed and must
// stay non-empty.
func (t *TodoItem) ApplyUpdate(text *string, done *bool, now time.Time) error {
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return ErrEmptyTodoText
		}
		t.Text = trimmed
	}
	if done != nil {
		t.Done = *done
	}
	t.UpdatedAt = now
	return nil
}
