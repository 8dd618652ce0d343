package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workbrief/internal/intelligence"
)

// FormatWeeklyResult renders a generated weekly report with its range and
// structural check.
func FormatWeeklyResult(r *intelligence.WeeklyResult) string {
	var b strings.Builder
	title := fmt.Sprintf("周报 %s ~ %s", r.Parsed.WeekRange.Start, r.Parsed.WeekRange.End)
	b.WriteString(RenderBox(title, r.Report))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", ModeBadge(r.Mock, r.Model))
	b.WriteString(FormatWeeklyValidation(r.Validation))
	return b.String()
}

// FormatOKRResult renders a generated OKR draft and its structural check.
func FormatOKRResult(r *intelligence.OKRResult) string {
	var b strings.Builder
	b.WriteString(RenderBox("OKR "+r.Quarter, r.OKR))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", ModeBadge(r.Mock, r.Model))
	b.WriteString(FormatOKRValidation(r.Validation))
	return b.String()
}

func FormatWeeklyValidation(v intelligence.WeeklyValidation) string {
	var b strings.Builder
	b.WriteString(Check(v.Valid, "结构检查"))
	b.WriteString("\n")
	for _, s := range v.SectionsFound {
		fmt.Fprintf(&b, "  %s\n", Check(true, s))
	}
	for _, s := range v.MissingSections {
		fmt.Fprintf(&b, "  %s\n", Check(false, s+"（缺失）"))
	}
	if !v.OrderCorrect {
		fmt.Fprintf(&b, "  %s\n", Check(false, "章节顺序"))
	}
	return b.String()
}

func FormatOKRValidation(v intelligence.OKRValidation) string {
	var b strings.Builder
	b.WriteString(Check(v.Valid, "结构检查"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", Check(v.ObjectivesValid, fmt.Sprintf("目标 %d 个", v.ObjectiveCount)))
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("关键结果 %d 个", v.KRCount)))
	fmt.Fprintf(&b, "  %s\n", Check(v.HasDateNodes, fmt.Sprintf("时间节点 %d 个", v.DateNodeCount)))
	fmt.Fprintf(&b, "  %s\n", Check(v.HasQuantitative, "量化指标 "+joinOrNone(v.QuantitativeExpressions)))
	fmt.Fprintf(&b, "  %s\n", Check(v.HasMilestones, "里程碑 "+joinOrNone(v.Milestones)))
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "无"
	}
	return strings.Join(items, "、")
}
