package api

import "github.com/gin-gonic/gin"

// SetupRoutes registers the JSON API under /api.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/health", handleHealth(d.Assistant))
		api.GET("/week-range", handleWeekRange(d.Assistant))
		api.POST("/parse", handleParse(d.Assistant))

		api.POST("/generate/weekly-report", handleGenerateWeekly(d.Assistant))
		api.POST("/generate/okr", handleGenerateOKR(d.Assistant))
		api.POST("/validate/weekly-report", handleValidateWeekly(d.Assistant))
		api.POST("/validate/okr", handleValidateOKR(d.Assistant))

		daily := api.Group("/daily-reports")
		{
			daily.POST("", saveDaily(d.Daily))
			daily.GET("/dates", listDailyDates(d.Daily))
			daily.GET("/range", listDailyRange(d.Daily))
			daily.GET("/:entry_date", getDaily(d.Daily))
			daily.PUT("/:entry_date", updateDaily(d.Daily))
			daily.DELETE("/:entry_date", deleteDaily(d.Daily))
		}

		weekly := api.Group("/weekly-reports")
		{
			weekly.POST("", saveWeekly(d.Weekly))
			weekly.GET("", listWeekly(d.Weekly))
			weekly.GET("/query", getWeekly(d.Weekly))
			weekly.GET("/latest", latestWeekly(d.Weekly))
			weekly.PUT("", updateWeekly(d.Weekly))
			weekly.DELETE("", deleteWeekly(d.Weekly))
		}

		okr := api.Group("/okr-reports")
		{
			okr.POST("", saveOKR(d.OKR))
			okr.GET("", listOKR(d.OKR))
			okr.GET("/latest", latestOKR(d.OKR))
			okr.GET("/:creation_date", getOKR(d.OKR))
			okr.PUT("/:creation_date", updateOKR(d.OKR))
			okr.DELETE("/:creation_date", deleteOKR(d.OKR))
		}

		todos := api.Group("/todo-items")
		{
			todos.GET("", listTodos(d.Todos))
			todos.POST("", createTodo(d.Todos))
			todos.PUT("/:id", updateTodo(d.Todos))
			todos.DELETE("/:id", deleteTodo(d.Todos))
		}
	}
}
