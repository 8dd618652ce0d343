package domain

// Category is one of the four fixed buckets a work-log line is filed under.
type Category string

const (
	CategoryCurrentProject    Category = "current_project"
	CategoryServiceCapability Category = "service_capability"
	CategoryPreResearch       Category = "pre_research"
	CategoryOther             Category = "other"
)

// AllCategories lists the categories in report order.
var AllCategories = []Category{
	CategoryCurrentProject,
	CategoryServiceCapability,
	CategoryPreResearch,
	CategoryOther,
}

// Label returns the heading used for the category in generated reports.
func (c Category) Label() string {
	switch c {
	case CategoryCurrentProject:
		return "当前项目工作"
	case CategoryServiceCapability:
		return "服务能力建设"
	case CategoryPreResearch:
		return "预研工作"
	case CategoryOther:
		return "其他事务性工作"
	default:
		return string(c)
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCurrentProject, CategoryServiceCapability, CategoryPreResearch, CategoryOther:
		return true
	}
	return false
}

// Task identifies which report an LLM completion is producing.
type Task string

const (
	TaskWeeklyReport Task = "weekly_report"
	TaskOKR          Task = "okr"
)
