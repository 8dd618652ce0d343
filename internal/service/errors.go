package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// ValidationError reports caller input that cannot be processed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// parseDate parses a required YYYY-MM-DD field.
func parseDate(field, value string) (domain.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Date{}, invalid(field, "is required")
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, invalid(field, "must be a date in YYYY-MM-DD format, got %q", value)
	}
	return d, nil
}

// parseRange parses a start/end pair and requires start <= end.
func parseRange(startDate, endDate string) (domain.Date, domain.Date, error) {
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	if end.Before(start) {
		return domain.Date{}, domain.Date{}, invalid("end_date", "must not be before start_date")
	}
	return start, end, nil
}

// checkLength rejects text longer than limit runes. A non-positive limit
// disables the check.
func checkLength(field, text string, limit int) error {
	if limit <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > limit {
		return invalid(field, "input exceeds the maximum length (%d > %d characters)", n, limit)
	}
	return nil
}
