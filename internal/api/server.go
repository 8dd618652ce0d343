package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/metrics"
	"github.com/alexanderramin/workbrief/internal/service"
)

// Deps holds everything the router serves.
type Deps struct {
	Assistant service.AssistantService
	Daily     service.DailyReportService
	Weekly    service.WeeklyReportService
	OKR       service.OKRReportService
	Todos     service.TodoService

	Metrics *metrics.Metrics // nil disables /metrics and request metrics
	UI      http.Handler     // nil disables the web UI
	Log     *zap.Logger
}

var registerValidators sync.Once

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(d Deps) (*gin.Engine, error) {
	var regErr error
	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			regErr = contract.RegisterValidators(v)
		}
	})
	if regErr != nil {
		return nil, regErr
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(RequestID(), AccessLog(d.Log), Recovery(d.Log))
	if d.Metrics != nil {
		r.Use(Metrics(d.Metrics))
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	SetupRoutes(r, d)

	r.NoRoute(func(c *gin.Context) {
		if d.UI != nil && c.Request.Method == http.MethodGet && !isAPIPath(c.Request.URL.Path) {
			d.UI.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, contract.Response{Success: false, Error: "not found"})
	})
	return r, nil
}

// NewServer wraps handler in an http.Server whose write timeout leaves room
// for an LLM call of llmTimeout.
func NewServer(addr string, handler http.Handler, llmTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      llmTimeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
