package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workbrief/internal/domain"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cfg.Model = "test-model"
	return cfg
}

func newTestClient(t *testing.T, cfg Config, obs Observer) *OpenAIClient {
	t.Helper()
	c := NewOpenAIClient(cfg, obs)
	t.Cleanup(c.CloseIdleConnections)
	return c
}

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func writeChoice(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "test-model-2025",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
}

func TestOpenAIClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, float32(0.3), req.Temperature)
		assert.Equal(t, 2048, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "system prompt", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "user prompt", req.Messages[1].Content)

		writeChoice(w, "```markdown\n一、当前项目工作\n```")
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), CompletionRequest{
		Task:   domain.TaskWeeklyReport,
		System: "system prompt",
		User:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, "一、当前项目工作", resp.Text)
	assert.Equal(t, "test-model-2025", resp.Model)
	assert.False(t, resp.Mock)
	assert.GreaterOrEqual(t, resp.Latency, time.Duration(0))
}

func TestOpenAIClient_Complete_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		writeChoice(w, "ok")
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL+"/v1/"), nil)
	resp, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskOKR, User: "x"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestOpenAIClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	client := newTestClient(t, cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestOpenAIClient_Complete_Unavailable(t *testing.T) {
	client := newTestClient(t, testConfig("http://127.0.0.1:1"), NoopObserver{})

	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, KindUnavailable, KindOf(err))
}

func TestOpenAIClient_Complete_ProviderErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskOKR, User: "test"})

	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, KindStatus, llmErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, llmErr.StatusCode)
	assert.Equal(t, "invalid api key", llmErr.Message)
	assert.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAIClient_Complete_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskOKR, User: "test"})

	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, KindStatus, llmErr.Kind)
	assert.Equal(t, http.StatusBadGateway, llmErr.StatusCode)
}

func TestOpenAIClient_Complete_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIClient_Complete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"m","choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClient_Complete_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChoice(w, "  \n ")
	}))
	defer srv.Close()

	client := newTestClient(t, testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	assert.Equal(t, KindEmpty, KindOf(err))
}

func TestOpenAIClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChoice(w, "ok")
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := newTestClient(t, testConfig(srv.URL), obs)
	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskOKR, User: "test"})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskOKR, captured.Task)
	assert.Equal(t, "test-model", captured.Model)
	assert.True(t, captured.Success)
	assert.False(t, captured.Mock)
	assert.Empty(t, captured.ErrorKind)
}

func TestOpenAIClient_ObserverTimeoutKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := newTestClient(t, cfg, obs)

	_, err := client.Complete(context.Background(), CompletionRequest{Task: domain.TaskWeeklyReport, User: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, KindTimeout, captured.ErrorKind)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "llm status (HTTP 429): rate limited",
		(&Error{Kind: KindStatus, StatusCode: 429, Message: "rate limited"}).Error())
	assert.Equal(t, "llm timeout", (&Error{Kind: KindTimeout}).Error())
	assert.Equal(t, ErrorKind(""), KindOf(assert.AnError))
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
