package llm

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workbrief/internal/domain"
)

const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// TaskConfig holds per-task sampling parameters.
type TaskConfig struct {
	Temperature float32
	MaxTokens   int
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	Tasks    map[domain.Task]TaskConfig
}

// DefaultConfig returns a Config pointing at the public OpenAI endpoint.
// Without an API key the configuration is not usable and callers fall back
// to the mock client.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o-mini",
		BaseURL:  "https://api.openai.com/v1",
		Timeout:  60 * time.Second,
		Tasks: map[domain.Task]TaskConfig{
			domain.TaskWeeklyReport: {Temperature: 0.3, MaxTokens: 2048},
			domain.TaskOKR:          {Temperature: 0.4, MaxTokens: 2048},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overwrites cfg with any LLM_* variables that are set.
// OPENAI_API_KEY is honoured when LLM_API_KEY is absent.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, ok := ParseTimeout(v); ok {
			cfg.Timeout = d
		}
	}
}

// ParseTimeout accepts whole seconds ("60") or a Go duration ("90s", "2m").
func ParseTimeout(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return 0, false
		}
		return time.Duration(n) * time.Second, true
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// Configured reports whether a real provider can be called.
func (c Config) Configured() bool {
	return c.Provider != ProviderMock && strings.TrimSpace(c.APIKey) != ""
}

// Task returns the sampling parameters for task, zero if none are set.
func (c Config) Task(task domain.Task) TaskConfig {
	return c.Tasks[task]
}
