package domain

import (
	"bytes"
	"encoding/json"
)

// ParsedBlock is one date-tagged segment of a raw work log. Date is nil for
// the unlabeled block that precedes the first date marker.
type ParsedBlock struct {
	Date    *Date    `json:"date"`
	Hours   float64  `json:"hours"`
	Content []string `json:"content"`
}

// Categories maps each category to its lines in first-seen order.
type Categories map[Category][]string

// NewCategories returns an empty bucket for every category.
func NewCategories() Categories {
	c := make(Categories, len(AllCategories))
	for _, cat := range AllCategories {
		c[cat] = []string{}
	}
	return c
}

// Total returns the number of lines across all buckets.
func (c Categories) Total() int {
	n := 0
	for _, lines := range c {
		n += len(lines)
	}
	return n
}

// MarshalJSON writes the buckets in report order, empty ones included.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range AllCategories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(string(cat))
		buf.Write(key)
		buf.WriteByte(':')
		lines := c[cat]
		if lines == nil {
			lines = []string{}
		}
		val, err := json.Marshal(lines)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParsedData is the parser's full output for one piece of log text.
type ParsedData struct {
	Blocks          []ParsedBlock `json:"blocks"`
	Categories      Categories    `json:"categories"`
	WeekRange       WeekRange     `json:"week_range"`
	TotalHours      float64       `json:"total_hours"`
	DatedBlockCount int           `json:"dated_block_count"`
}

// DatedBlocks returns the number of blocks that carry a date.
func (p *ParsedData) DatedBlocks() int {
	n := 0
	for _, b := range p.Blocks {
		if b.Date != nil {
			n++
		}
	}
	return n
}
