package intelligence

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// Prompt is a rendered system and user message pair.
type Prompt struct {
	System string
	User   string
}

var sectionNumerals = []string{"一", "二", "三", "四"}

var promptFuncs = template.FuncMap{
	"hours": func(h float64) string { return strconv.FormatFloat(h, 'f', -1, 64) },
}

var (
	weeklyTmpl = template.Must(template.New("weekly").Funcs(promptFuncs).Parse(weeklyUserTemplate))
	okrTmpl    = template.Must(template.New("okr").Parse(okrUserTemplate))
)

// SectionHeading returns the numbered heading for the i-th category in
// report order, e.g. "一、当前项目工作".
func SectionHeading(i int) string {
	return sectionNumerals[i] + "、" + domain.AllCategories[i].Label()
}

type weeklyView struct {
	Start      string
	End        string
	Blocks     []blockView
	TotalHours float64
	Sections   []sectionView
}

type blockView struct {
	Day     string
	Hours   float64
	Content []string
}

type sectionView struct {
	Label   string
	Heading string
	Lines   []string
}

// BuildWeeklyPrompt renders parsed work-log data into the weekly report
// prompt. An undated leading block is presented as today's work.
func BuildWeeklyPrompt(data domain.ParsedData) (Prompt, error) {
	view := weeklyView{
		Start:      data.WeekRange.Start.String(),
		End:        data.WeekRange.End.String(),
		TotalHours: data.TotalHours,
	}
	for _, b := range data.Blocks {
		day := "今天"
		if b.Date != nil {
			day = b.Date.String() + " " + weekdayName(b.Date.Weekday())
		}
		view.Blocks = append(view.Blocks, blockView{Day: day, Hours: b.Hours, Content: b.Content})
	}
	for i, cat := range domain.AllCategories {
		view.Sections = append(view.Sections, sectionView{
			Label:   cat.Label(),
			Heading: SectionHeading(i),
			Lines:   data.Categories[cat],
		})
	}

	user, err := render(weeklyTmpl, view)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: weeklySystemPrompt, User: user}, nil
}

// BuildOKRPrompt renders historical material and the target quarter into
// the OKR prompt.
func BuildOKRPrompt(history, quarter string) (Prompt, error) {
	user, err := render(okrTmpl, struct {
		History string
		Quarter string
	}{History: strings.TrimSpace(history), Quarter: quarter})
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: okrSystemPrompt, User: user}, nil
}

// NextQuarter returns the label of the quarter after the one containing
// now, e.g. "2027第一季度" for any day in 2026 Q4.
func NextQuarter(now time.Time) string {
	q := (int(now.Month())-1)/3 + 1
	year := now.Year()
	if q == 4 {
		return QuarterLabel(year+1, 1)
	}
	return QuarterLabel(year, q+1)
}

// QuarterLabel formats a quarter as used in OKR prompts.
func QuarterLabel(year, quarter int) string {
	return fmt.Sprintf("%d第%s季度", year, sectionNumerals[quarter-1])
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func weekdayName(w time.Weekday) string {
	return [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}[w]
}
