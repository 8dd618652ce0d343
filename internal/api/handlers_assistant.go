package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/service"
)

func handleHealth(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contract.HealthResponse{
			Status:        "healthy",
			LLMConfigured: svc.LLMConfigured(),
			MaxInputChars: svc.MaxInputChars(),
		})
	}
}

func handleWeekRange(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contract.NewWeekRangeResponse(svc.WeekRange()))
	}
}

func handleParse(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		parsed, err := svc.Parse(c.Request.Context(), *req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract.Response{Success: true, Data: parsed})
	}
}

func handleGenerateWeekly(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.GenerateWeeklyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		res, err := svc.GenerateWeekly(c.Request.Context(), service.WeeklyGenerateRequest{
			Content:   *req.Content,
			UseMock:   req.UseMock,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract.NewGenerateWeeklyResponse(res))
	}
}

func handleGenerateOKR(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.GenerateOKRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		res, err := svc.GenerateOKR(c.Request.Context(), service.OKRGenerateRequest{
			Content: *req.Content,
			Quarter: req.NextQuarter,
			UseMock: req.UseMock,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract.NewGenerateOKRResponse(res))
	}
}

func handleValidateWeekly(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.ValidateWeeklyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract.ValidationResponse{Success: true, Validation: svc.ValidateWeekly(*req.Report)})
	}
}

func handleValidateOKR(svc service.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.ValidateOKRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract.ValidationResponse{Success: true, Validation: svc.ValidateOKR(*req.OKR)})
	}
}
