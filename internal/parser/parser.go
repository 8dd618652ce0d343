// Package parser turns loosely formatted daily work logs into dated blocks
// and category buckets.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/workbrief/internal/domain"
)

var (
	// markerPrefix matches a date at the start of a line, optionally behind
	// markdown or bracket decoration.
	markerPrefix = regexp.MustCompile(`^[#*>\s【\[(（]*(\d{4}-\d{2}-\d{2}|\d{8})`)

	// weekdayToken matches an optional weekday name after the date.
	weekdayToken = regexp.MustCompile(`^[\s】\])）:：,，、|/-]*(?:周|星期)[一二三四五六日天]`)

	// hoursToken matches an hours count right after the date marker,
	// optionally bracketed: "8h", "(8h)", "（8小时）".
	hoursToken = regexp.MustCompile(`^[\s】\])）:：,，、|/-]*[(（【\[]?\s*(\d+(?:\.\d+)?)\s*(?:[hH]|小时)\s*[)）】\]]?`)

	// deadlineSuffix marks a date used as a due date ("2025-12-20前提交")
	// rather than as the start of a day. It must touch the date.
	deadlineSuffix = regexp.MustCompile(`^(?:之前|以前|之后|以后|前|后|截止|到期)`)

	// bulletPrefix matches list markers in front of a content line.
	bulletPrefix = regexp.MustCompile(`^(?:[-*•·+]+\s*|\d{1,2}[、)）]\s*|[(（]\d{1,2}[)）]\s*|\d{1,2}\.\s*)`)
)

const separatorChars = " \t】])）:：,，、|/-"

type marker struct {
	date  domain.Date
	hours float64
	rest  string
}

// matchMarker reports whether line opens a new day. Dates that do not exist
// on the calendar are not markers.
func matchMarker(line string) (marker, bool) {
	loc := markerPrefix.FindStringSubmatchIndex(line)
	if loc == nil {
		return marker{}, false
	}
	raw := line[loc[2]:loc[3]]
	rest := line[loc[1]:]
	if isDeadline(rest) {
		return marker{}, false
	}
	// A digit straight after the date is only allowed when it starts an
	// hours token ("202512088h"); otherwise the number is longer than a date.
	if rest != "" && unicode.IsDigit(rune(rest[0])) && !hoursToken.MatchString(rest) {
		return marker{}, false
	}

	layout := domain.DateLayout
	if !strings.Contains(raw, "-") {
		layout = "20060102"
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return marker{}, false
	}

	m := marker{date: domain.DateOf(t)}
	if w := weekdayToken.FindStringIndex(rest); w != nil {
		rest = rest[w[1]:]
	}
	if h := hoursToken.FindStringSubmatchIndex(rest); h != nil {
		m.hours, _ = strconv.ParseFloat(rest[h[2]:h[3]], 64)
		rest = rest[h[1]:]
	}
	m.rest = strings.TrimSpace(strings.TrimLeft(rest, separatorChars))
	return m, true
}

// isDeadline reports whether the text after a date turns it into a due
// date. 前端 and 后端 (frontend, backend) are work areas, not deadlines.
func isDeadline(rest string) bool {
	if !deadlineSuffix.MatchString(rest) {
		return false
	}
	for _, area := range []string{"前端", "后端", "前台", "后台"} {
		if strings.HasPrefix(rest, area) {
			return false
		}
	}
	return true
}

// cleanLine strips a leading list marker. A numbered prefix followed by
// another digit ("1.5天") is a number, not a list marker.
func cleanLine(line string) string {
	loc := bulletPrefix.FindStringIndex(line)
	if loc == nil {
		return line
	}
	rest := line[loc[1]:]
	prefix := line[:loc[1]]
	if strings.HasSuffix(strings.TrimSpace(prefix), ".") && rest != "" && unicode.IsDigit(rune(rest[0])) {
		return line
	}
	return strings.TrimSpace(rest)
}

// Parser extracts blocks and categories from work-log text.
type Parser struct {
	classifier *Classifier
}

// New returns a Parser using c. A nil classifier means NewClassifier().
func New(c *Classifier) *Parser {
	if c == nil {
		c = NewClassifier()
	}
	return &Parser{classifier: c}
}

// Parse splits text into blocks at each date marker, files every content
// line under a category and resolves the covered range against now.
//
// Lines before the first marker form a single undated block. Within the
// category buckets a line equal to an earlier one is kept only once.
func (p *Parser) Parse(text string, now time.Time) domain.ParsedData {
	blocks := splitBlocks(text)

	cats := domain.NewCategories()
	seen := make(map[string]bool)
	var total float64
	for _, b := range blocks {
		total += b.Hours
		for _, line := range b.Content {
			if seen[line] {
				continue
			}
			seen[line] = true
			cat := p.classifier.Classify(line)
			cats[cat] = append(cats[cat], line)
		}
	}

	data := domain.ParsedData{
		Blocks:     blocks,
		Categories: cats,
		WeekRange:  ResolveWeekRange(blocks, now),
		TotalHours: total,
	}
	data.DatedBlockCount = data.DatedBlocks()
	return data
}

// Classify exposes the parser's classifier for single lines.
func (p *Parser) Classify(line string) domain.Category {
	return p.classifier.Classify(line)
}

func splitBlocks(text string) []domain.ParsedBlock {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	leading := domain.ParsedBlock{Content: []string{}}
	var dated []domain.ParsedBlock

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if m, ok := matchMarker(trimmed); ok {
			d := m.date
			b := domain.ParsedBlock{Date: &d, Hours: m.hours, Content: []string{}}
			if line := cleanLine(m.rest); line != "" {
				b.Content = append(b.Content, line)
			}
			dated = append(dated, b)
			continue
		}

		line := cleanLine(trimmed)
		if line == "" {
			continue
		}
		if len(dated) == 0 {
			leading.Content = append(leading.Content, line)
		} else {
			last := &dated[len(dated)-1]
			last.Content = append(last.Content, line)
		}
	}

	blocks := make([]domain.ParsedBlock, 0, len(dated)+1)
	if len(leading.Content) > 0 {
		blocks = append(blocks, leading)
	}
	return append(blocks, dated...)
}
