package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/logging"
)

const (
	DefaultAddr          = "127.0.0.1:5000"
	DefaultMaxInputChars = 20000
	appDir               = ".workbrief"
)

// Config is the fully resolved application configuration.
type Config struct {
	Addr            string
	DBPath          string
	MaxInputChars   int
	ProjectKeywords []string
	LLM             llm.Config
	Log             logging.Config

	// KeySource tells where the API key came from: "config", "env",
	// "keyring" or "" when there is none.
	KeySource string
}

type fileConfig struct {
	Server struct {
		Addr          string `yaml:"addr"`
		MaxInputChars int    `yaml:"max_input_chars"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	LLM struct {
		Provider string                  `yaml:"provider"`
		APIKey   string                  `yaml:"api_key"`
		Model    string                  `yaml:"model"`
		BaseURL  string                  `yaml:"base_url"`
		Timeout  string                  `yaml:"timeout"`
		Tasks    map[string]taskOverride `yaml:"tasks"`
	} `yaml:"llm"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Parser struct {
		ProjectKeywords []string `yaml:"project_keywords"`
	} `yaml:"parser"`
}

type taskOverride struct {
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:          DefaultAddr,
		DBPath:        filepath.Join(homeDir(), appDir, "workbrief.db"),
		MaxInputChars: DefaultMaxInputChars,
		LLM:           llm.DefaultConfig(),
	}
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(homeDir(), appDir, "config.yaml")
}

// Load resolves the configuration: defaults, then the YAML file, then
// environment variables, then the keyring for a missing API key.
// path falls back to $WORKBRIEF_CONFIG and then DefaultPath; only an
// explicitly named file must exist. keys may be nil.
func Load(path string, keys KeyStore) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("WORKBRIEF_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	if err := cfg.applyFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.LLM.Provider != llm.ProviderMock && strings.TrimSpace(cfg.LLM.APIKey) == "" && keys != nil {
		key, err := keys.Get()
		switch {
		case err == nil && strings.TrimSpace(key) != "":
			cfg.LLM.APIKey = key
			cfg.KeySource = "keyring"
		case err == nil, errors.Is(err, ErrKeyNotFound), errors.Is(err, ErrKeyringUnavailable):
		default:
			return nil, err
		}
	}
	return &cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.Server.Addr != "" {
		c.Addr = fc.Server.Addr
	}
	if fc.Server.MaxInputChars > 0 {
		c.MaxInputChars = fc.Server.MaxInputChars
	}
	if fc.Database.Path != "" {
		c.DBPath = expandHome(fc.Database.Path)
	}
	if fc.LLM.Provider != "" {
		c.LLM.Provider = strings.ToLower(fc.LLM.Provider)
	}
	if fc.LLM.APIKey != "" {
		c.LLM.APIKey = fc.LLM.APIKey
		c.KeySource = "config"
	}
	if fc.LLM.Model != "" {
		c.LLM.Model = fc.LLM.Model
	}
	if fc.LLM.BaseURL != "" {
		c.LLM.BaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Timeout != "" {
		d, ok := llm.ParseTimeout(fc.LLM.Timeout)
		if !ok {
			return fmt.Errorf("config %s: invalid llm.timeout %q", path, fc.LLM.Timeout)
		}
		c.LLM.Timeout = d
	}
	for name, o := range fc.LLM.Tasks {
		task := domain.Task(name)
		if task != domain.TaskWeeklyReport && task != domain.TaskOKR {
			return fmt.Errorf("config %s: unknown llm task %q", path, name)
		}
		tc := c.LLM.Tasks[task]
		if o.Temperature != nil {
			tc.Temperature = *o.Temperature
		}
		if o.MaxTokens != nil {
			tc.MaxTokens = *o.MaxTokens
		}
		c.LLM.Tasks[task] = tc
	}
	if fc.Log.Level != "" {
		c.Log.Level = fc.Log.Level
	}
	if fc.Log.File != "" {
		c.Log.File = expandHome(fc.Log.File)
	}
	c.ProjectKeywords = append(c.ProjectKeywords, fc.Parser.ProjectKeywords...)
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("WORKBRIEF_DB"); v != "" {
		c.DBPath = expandHome(v)
	}
	if v := os.Getenv("WORKBRIEF_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("WORKBRIEF_MAX_INPUT_CHARS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return fmt.Errorf("WORKBRIEF_MAX_INPUT_CHARS must be a positive integer, got %q", v)
		}
		c.MaxInputChars = n
	}
	if v := os.Getenv("WORKBRIEF_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("WORKBRIEF_LOG_FILE"); v != "" {
		c.Log.File = expandHome(v)
	}

	before := c.LLM.APIKey
	llm.ApplyEnv(&c.LLM)
	if c.LLM.APIKey != before {
		c.KeySource = "env"
	}
	return nil
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
