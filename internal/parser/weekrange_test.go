package parser

import (
	"testing"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveWeekRange_MinToMax(t *testing.T) {
	blocks := []domain.ParsedBlock{
		{Date: datePtr(2025, 12, 10)},
		{Date: nil},
		{Date: datePtr(2025, 12, 12)},
		{Date: datePtr(2025, 12, 8)},
	}

	r := ResolveWeekRange(blocks, testNow)

	assert.Equal(t, domain.NewDate(2025, 12, 8), r.Start)
	assert.Equal(t, domain.NewDate(2025, 12, 12), r.End)
}

func TestResolveWeekRange_SingleDate(t *testing.T) {
	r := ResolveWeekRange([]domain.ParsedBlock{{Date: datePtr(2025, 11, 3)}}, testNow)

	assert.Equal(t, domain.NewDate(2025, 11, 3), r.Start)
	assert.Equal(t, r.Start, r.End)
}

func TestResolveWeekRange_NoDatesUsesCurrentWeek(t *testing.T) {
	sunday := time.Date(2025, 12, 14, 20, 0, 0, 0, time.UTC)

	r := ResolveWeekRange([]domain.ParsedBlock{{Content: []string{"x"}}}, sunday)

	assert.Equal(t, domain.NewDate(2025, 12, 8), r.Start)
	assert.Equal(t, domain.NewDate(2025, 12, 12), r.End)
}
