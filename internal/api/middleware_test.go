package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Len(t, rec.Header().Get(requestIDHeader), 36, "a uuid is assigned")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(RequestID(), Recovery(log))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec, body := do(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "internal server error", body["error"])
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestAccessLog_LevelsByStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	d := newTestDeps(t)
	d.Log = zap.New(core)
	r, err := NewRouter(d)
	require.NoError(t, err)

	do(t, r, http.MethodGet, "/api/health", nil)
	do(t, r, http.MethodGet, "/api/daily-reports/2025-12-08", nil)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodGet, "/api/health", nil)
	do(t, r, http.MethodPost, "/api/generate/weekly-report", map[string]any{"content": "20251208\n- 周会", "use_mock": true})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `workbrief_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestNoRoute(t *testing.T) {
	d := newTestDeps(t)
	d.UI = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html>ui</html>")
	})
	r, err := NewRouter(d)
	require.NoError(t, err)

	rec, body := do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", body["error"])

	rec, _ = do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ui"))

	rec, _ = do(t, r, http.MethodPost, "/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
