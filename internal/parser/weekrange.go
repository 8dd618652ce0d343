package parser

import (
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// ResolveWeekRange returns the earliest through latest dated block. With no
// dated blocks it falls back to Monday through Friday of now's week.
func ResolveWeekRange(blocks []domain.ParsedBlock, now time.Time) domain.WeekRange {
	var r domain.WeekRange
	for _, b := range blocks {
		if b.Date == nil {
			continue
		}
		d := *b.Date
		if r.Start.IsZero() || d.Before(r.Start) {
			r.Start = d
		}
		if r.End.IsZero() || d.After(r.End) {
			r.End = d
		}
	}
	if r.Start.IsZero() {
		return domain.CurrentWeek(now)
	}
	return r
}
