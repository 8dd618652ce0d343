package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/repository"
	"github.com/alexanderramin/workbrief/internal/service"
)

// statusFor maps an error from the service layer to an HTTP status.
func statusFor(err error) int {
	var ve *service.ValidationError
	var le *llm.Error
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, llm.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &le):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single place errors become responses. Internal errors
// are recorded on the context for the access log and hidden from clients.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, contract.Response{Success: false, Error: msg})
}

// writeBindError reports a request that failed to bind or validate.
func writeBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, contract.Response{
		Success: false,
		Error:   bindErrorMessage(err),
	})
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing field %s", name)
	case contract.ISODateTag:
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name)
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}
