package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// FormatParsed renders parser output: the resolved range, one row per
// block and the categorized lines.
func FormatParsed(p *domain.ParsedData) string {
	var b strings.Builder

	b.WriteString(Header("解析结果"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s ~ %s    %s %s\n\n",
		Dim("周期"), Bold(p.WeekRange.Start.String()), Bold(p.WeekRange.End.String()),
		Dim("合计"), FormatHours(p.TotalHours))

	rows := make([][]string, 0, len(p.Blocks))
	for _, blk := range p.Blocks {
		date := Dim("(无日期)")
		if blk.Date != nil {
			date = blk.Date.String()
		}
		rows = append(rows, []string{date, FormatHours(blk.Hours), fmt.Sprintf("%d", len(blk.Content))})
	}
	b.WriteString(RenderTable([]string{"日期", "工时", "条目"}, rows))
	b.WriteString("\n")

	b.WriteString(FormatCategories(p.Categories))
	return b.String()
}

// FormatCategories lists each category's lines in report order.
func FormatCategories(c domain.Categories) string {
	var b strings.Builder
	for _, cat := range domain.AllCategories {
		lines := c[cat]
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(cat.Label()), Dim(fmt.Sprintf("(%d)", len(lines))))
		for _, line := range lines {
			fmt.Fprintf(&b, "  • %s\n", line)
		}
	}
	return b.String()
}

// FormatWeekRange renders the current reporting week.
func FormatWeekRange(r domain.WeekRange) string {
	return fmt.Sprintf("%s %s\n%s %s\n", Dim("周一"), Bold(r.Start.String()), Dim("周五"), Bold(r.End.String()))
}
