package contract

import "strings"

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	Content *string `json:"content" binding:"required"`
}

// GenerateWeeklyRequest is the body of POST /api/generate/weekly-report.
// StartDate and EndDate override the range inferred from the log.
type GenerateWeeklyRequest struct {
	Content   *string `json:"content" binding:"required"`
	UseMock   bool    `json:"use_mock"`
	StartDate string  `json:"start_date" binding:"omitempty,isodate"`
	EndDate   string  `json:"end_date" binding:"omitempty,isodate"`
}

// GenerateOKRRequest is the body of POST /api/generate/okr.
type GenerateOKRRequest struct {
	Content     *string `json:"content" binding:"required"`
	NextQuarter string  `json:"next_quarter"`
	UseMock     bool    `json:"use_mock"`
}

type ValidateWeeklyRequest struct {
	Report *string `json:"report" binding:"required"`
}

type ValidateOKRRequest struct {
	OKR *string `json:"okr" binding:"required"`
}

type SaveDailyRequest struct {
	EntryDate string  `json:"entry_date" binding:"required,isodate"`
	Content   *string `json:"content" binding:"required"`
}

type SaveWeeklyRequest struct {
	StartDate string  `json:"start_date" binding:"required,isodate"`
	EndDate   string  `json:"end_date" binding:"required,isodate"`
	Content   *string `json:"content" binding:"required"`
}

type SaveOKRRequest struct {
	CreationDate string  `json:"creation_date" binding:"required,isodate"`
	Content      *string `json:"content" binding:"required"`
}

// ContentRequest is the body of the PUT routes that replace a stored text.
type ContentRequest struct {
	Content *string `json:"content" binding:"required"`
}

// CreateTodoRequest is the body of POST /api/todo-items. Content is the
// older spelling of Text.
type CreateTodoRequest struct {
	Text    string `json:"text"`
	Content string `json:"content"`
}

// Value returns the item text, preferring Text.
func (r CreateTodoRequest) Value() string {
	if strings.TrimSpace(r.Text) != "" {
		return r.Text
	}
	return r.Content
}

// UpdateTodoRequest is the body of PUT /api/todo-items/:id. Absent fields
// are left unchanged; Content and Completed are older spellings.
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Content   *string `json:"content"`
	Done      *bool   `json:"done"`
	Completed *bool   `json:"completed"`
}

func (r UpdateTodoRequest) TextValue() *string {
	if r.Text != nil {
		return r.Text
	}
	return r.Content
}

func (r UpdateTodoRequest) DoneValue() *bool {
	if r.Done != nil {
		return r.Done
	}
	return r.Completed
}

// DateRangeQuery binds ?start_date=&end_date= when both are required.
type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"required,isodate"`
	EndDate   string `form:"end_date" binding:"required,isodate"`
}

// WeeklyListQuery binds the optional filters of GET /api/weekly-reports.
type WeeklyListQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,isodate"`
	EndDate   string `form:"end_date" binding:"omitempty,isodate"`
}
