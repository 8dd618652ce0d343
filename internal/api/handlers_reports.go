package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/service"
)

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, contract.Response{Success: true, Data: data})
}

func okMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, contract.Response{Success: true, Message: msg, Data: data})
}

// --- daily reports ---

func saveDaily(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.SaveDailyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Save(c.Request.Context(), req.EntryDate, *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "daily report saved", report)
	}
}

func updateDaily(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.ContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Save(c.Request.Context(), c.Param("entry_date"), *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "daily report saved", report)
	}
}

func getDaily(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Get(c.Request.Context(), c.Param("entry_date"))
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, report)
	}
}

func listDailyRange(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q contract.DateRangeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindError(c, err)
			return
		}
		reports, err := svc.ListRange(c.Request.Context(), q.StartDate, q.EndDate)
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, orEmpty(reports))
	}
}

func listDailyDates(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		dates, err := svc.ListDates(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, orEmpty(dates))
	}
}

func deleteDaily(svc service.DailyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("entry_date")); err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "daily report deleted", nil)
	}
}

// --- weekly reports ---

func saveWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.SaveWeeklyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Save(c.Request.Context(), req.StartDate, req.EndDate, *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "weekly report saved", report)
	}
}

func updateWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q contract.DateRangeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindError(c, err)
			return
		}
		var req contract.ContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Update(c.Request.Context(), q.StartDate, q.EndDate, *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "weekly report updated", report)
	}
}

func getWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q contract.DateRangeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Get(c.Request.Context(), q.StartDate, q.EndDate)
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, report)
	}
}

func latestWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Latest(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, report)
	}
}

func listWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q contract.WeeklyListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindError(c, err)
			return
		}
		reports, err := svc.List(c.Request.Context(), service.WeeklyFilter{StartDate: q.StartDate, EndDate: q.EndDate})
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, orEmpty(reports))
	}
}

func deleteWeekly(svc service.WeeklyReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q contract.DateRangeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), q.StartDate, q.EndDate); err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "weekly report deleted", nil)
	}
}

// --- OKR reports ---

func saveOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.SaveOKRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Save(c.Request.Context(), req.CreationDate, *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "OKR saved", report)
	}
}

func updateOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.ContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		report, err := svc.Update(c.Request.Context(), c.Param("creation_date"), *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "OKR updated", report)
	}
}

func getOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Get(c.Request.Context(), c.Param("creation_date"))
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, report)
	}
}

func latestOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Latest(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, report)
	}
}

func listOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, orEmpty(reports))
	}
}

func deleteOKR(svc service.OKRReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("creation_date")); err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "OKR deleted", nil)
	}
}
