package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// CompletionRequest holds the parameters for one chat completion.
type CompletionRequest struct {
	Task   domain.Task
	System string
	User   string
}

// Completion holds the result of a completion call.
type Completion struct {
	Text    string
	Model   string
	Latency time.Duration
	Mock    bool
}

// Client produces report text from a prompt.
type Client interface {
	// Complete sends one request and returns the model's answer.
	// Failures are always *Error.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// OpenAIClient implements Client against any OpenAI-compatible
// chat-completions endpoint. Calls are never retried.
type OpenAIClient struct {
	cfg       Config
	api       *openai.Client
	transport *http.Transport
	observer  Observer
}

// NewOpenAIClient creates a client for cfg.BaseURL authenticated with cfg.APIKey.
func NewOpenAIClient(cfg Config, observer Observer) *OpenAIClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Transport: transport}

	return &OpenAIClient{
		cfg:       cfg,
		api:       openai.NewClientWithConfig(oc),
		transport: transport,
		observer:  observer,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	task := c.cfg.Task(req.Task)
	body := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: task.Temperature,
		MaxTokens:   task.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, body)
	if err != nil {
		return nil, c.fail(req.Task, start, classify(ctx, err))
	}
	if len(resp.Choices) == 0 {
		return nil, c.fail(req.Task, start, &Error{Kind: KindEmpty, Message: "response contained no choices"})
	}
	text := CleanText(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, c.fail(req.Task, start, &Error{Kind: KindEmpty, Message: "response content was blank"})
	}

	latency := time.Since(start)
	c.observer.OnCallComplete(CallEvent{
		Task:    req.Task,
		Model:   c.cfg.Model,
		Latency: latency,
		Success: true,
	})

	model := resp.Model
	if model == "" {
		model = c.cfg.Model
	}
	return &Completion{
		Text:    text,
		Model:   model,
		Latency: latency,
	}, nil
}

// CloseIdleConnections releases pooled connections to the provider.
func (c *OpenAIClient) CloseIdleConnections() {
	c.transport.CloseIdleConnections()
}

func (c *OpenAIClient) fail(task domain.Task, start time.Time, e *Error) error {
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		Latency:   time.Since(start),
		ErrorKind: e.Kind,
	})
	return e
}

func classify(ctx context.Context, err error) *Error {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Message: "no response within deadline", Err: err}
	case errors.As(err, &apiErr):
		return &Error{Kind: KindStatus, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	case errors.As(err, &reqErr):
		msg := strings.TrimSpace(string(reqErr.Body))
		if msg == "" {
			msg = reqErr.HTTPStatus
		}
		return &Error{Kind: KindStatus, StatusCode: reqErr.HTTPStatusCode, Message: msg, Err: err}
	case isConnectionError(err):
		return &Error{Kind: KindUnavailable, Message: "cannot reach provider: " + err.Error(), Err: err}
	default:
		return &Error{Kind: KindUnavailable, Message: err.Error(), Err: err}
	}
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
