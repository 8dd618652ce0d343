package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/service"
)

func todoID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &service.ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return id, nil
}

func listTodos(svc service.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, orEmpty(items))
	}
}

func createTodo(svc service.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contract.CreateTodoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		item, err := svc.Create(c.Request.Context(), req.Value())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, item)
	}
}

func updateTodo(svc service.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := todoID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		var req contract.UpdateTodoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		item, err := svc.Update(c.Request.Context(), id, req.TextValue(), req.DoneValue())
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, item)
	}
}

func deleteTodo(svc service.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := todoID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		okMessage(c, "todo item deleted", nil)
	}
}
