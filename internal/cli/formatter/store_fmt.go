package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// FormatDailyReport renders one stored log entry.
func FormatDailyReport(r *domain.DailyReport, now time.Time) string {
	title := r.EntryDate.String() + " " + weekdayLabel(r.EntryDate.Weekday())
	footer := Dim("更新于 " + HumanTimestamp(r.UpdatedAt, now))
	return RenderBox(title, r.Content) + "\n" + footer + "\n"
}

// FormatDailyDates lists the days that have a log, newest first.
func FormatDailyDates(dates []domain.Date) string {
	if len(dates) == 0 {
		return Dim("暂无日志") + "\n"
	}
	rows := make([][]string, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, []string{d.String(), weekdayLabel(d.Weekday())})
	}
	return RenderTable([]string{"日期", "星期"}, rows)
}

// FormatDailyList renders logs with a one-line preview of each.
func FormatDailyList(reports []*domain.DailyReport) string {
	if len(reports) == 0 {
		return Dim("该范围内没有日志") + "\n"
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.EntryDate.String(), Truncate(r.Content, 48)})
	}
	return RenderTable([]string{"日期", "内容"}, rows)
}

// FormatTodos renders the todo list with open items marked.
func FormatTodos(items []*domain.TodoItem) string {
	if len(items) == 0 {
		return Dim("没有待办事项") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		mark := StyleBlue.Render("○")
		text := it.Text
		if it.Done {
			mark = StyleGreen.Render("✔")
			text = Dim(text)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", it.ID), mark, text})
	}
	return RenderTable([]string{"ID", "", "内容"}, rows)
}

var weekdayNames = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

func weekdayLabel(d time.Weekday) string {
	return weekdayNames[d]
}

// Success renders a confirmation line.
func Success(format string, args ...any) string {
	return StyleGreen.Render("✔ "+strings.TrimSpace(fmt.Sprintf(format, args...))) + "\n"
}
