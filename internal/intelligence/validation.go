package intelligence

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// WeeklyValidation reports whether a weekly report carries the four
// section headers in report order.
type WeeklyValidation struct {
	Valid           bool     `json:"valid"`
	SectionsFound   []string `json:"sections_found"`
	MissingSections []string `json:"missing_sections"`
	OrderCorrect    bool     `json:"order_correct"`
}

// OKRValidation reports the structural properties of an OKR draft.
type OKRValidation struct {
	Valid                   bool     `json:"valid"`
	ObjectiveCount          int      `json:"objective_count"`
	ObjectivesValid         bool     `json:"objectives_valid"`
	KRCount                 int      `json:"kr_count"`
	DateNodeCount           int      `json:"date_node_count"`
	DateNodes               []string `json:"date_nodes"`
	HasDateNodes            bool     `json:"has_date_nodes"`
	QuantitativeExpressions []string `json:"quantitative_expressions"`
	HasQuantitative         bool     `json:"has_quantitative"`
	Milestones              []string `json:"milestones"`
	HasMilestones           bool     `json:"has_milestones"`
}

const (
	minObjectives = 2
	maxObjectives = 3
)

var (
	objectivePattern = regexp.MustCompile(`(?m)^[\s#*>\-]*O([1-9])\b`)
	krPattern        = regexp.MustCompile(`(?m)^[\s#*>\-]*KR\s*\d+`)
	dateNodePattern  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}前`)
	milestonePattern = regexp.MustCompile(`\bM([1-9])\b`)

	// quantPattern matches thresholds (≥95%), percentages (30%) and counts
	// with a unit (2个, 3天, 200ms).
	quantPattern = regexp.MustCompile(
		`(?:[≥≤>＞<＜]=?\s*)?\d+(?:\.\d+)?\s*(?:%|％|个|次|项|人|天|小时|分钟|周|倍|件|条|篇|份|万|毫秒|ms|秒)` +
			`|[≥≤]\s*\d+(?:\.\d+)?`)
)

// ValidateWeeklyReport checks text for the section headers. A header
// counts as present on the first line that mentions its label. Order is
// judged among the headers that were found.
func ValidateWeeklyReport(text string) WeeklyValidation {
	lines := strings.Split(text, "\n")
	v := WeeklyValidation{SectionsFound: []string{}, MissingSections: []string{}, OrderCorrect: true}

	last := -1
	for _, cat := range domain.AllCategories {
		label := cat.Label()
		pos := firstLineContaining(lines, label)
		if pos < 0 {
			v.MissingSections = append(v.MissingSections, label)
			continue
		}
		v.SectionsFound = append(v.SectionsFound, label)
		if pos < last {
			v.OrderCorrect = false
		}
		last = pos
	}

	v.Valid = len(v.MissingSections) == 0 && v.OrderCorrect
	return v
}

// ValidateOKR checks an OKR draft. It never fails; every finding is data.
func ValidateOKR(text string) OKRValidation {
	v := OKRValidation{}

	objectives := map[string]bool{}
	for _, m := range objectivePattern.FindAllStringSubmatch(text, -1) {
		objectives[m[1]] = true
	}
	v.ObjectiveCount = len(objectives)
	v.ObjectivesValid = v.ObjectiveCount >= minObjectives && v.ObjectiveCount <= maxObjectives

	v.KRCount = len(krPattern.FindAllString(text, -1))

	v.DateNodes = dateNodePattern.FindAllString(text, -1)
	if v.DateNodes == nil {
		v.DateNodes = []string{}
	}
	v.DateNodeCount = len(v.DateNodes)
	v.HasDateNodes = v.DateNodeCount > 0

	v.QuantitativeExpressions = uniqueMatches(quantPattern, text)
	v.HasQuantitative = len(v.QuantitativeExpressions) > 0

	seen := map[string]bool{}
	v.Milestones = []string{}
	for _, m := range milestonePattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			v.Milestones = append(v.Milestones, m)
		}
	}
	sort.Strings(v.Milestones)
	v.HasMilestones = len(v.Milestones) > 0

	v.Valid = v.ObjectivesValid && v.HasDateNodes && v.HasQuantitative && v.HasMilestones
	return v
}

func firstLineContaining(lines []string, s string) int {
	for i, line := range lines {
		if strings.Contains(line, s) {
			return i
		}
	}
	return -1
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
