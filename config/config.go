// Package config holds environment-driven configuration for promptsmith.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/marcward/promptsmith/utils"
)

// Config carries everything needed to construct a model gateway. The judge
// and metaprompt models are configured separately from the prediction model
// because the evaluation side of a run usually wants a reasoning model.
type Config struct {
	Provider        string         `env:"LLM_PROVIDER" envDefault:"openai" validate:"required"`
	Model           string         `env:"LLM_MODEL" envDefault:"gpt-4o-mini" validate:"required"`
	JudgeModel      string         `env:"LLM_JUDGE_MODEL" envDefault:"o3-mini"`
	ReasoningEffort string         `env:"LLM_REASONING_EFFORT" envDefault:"low" validate:"omitempty,oneof=low medium high"`
	Temperature     float64        `env:"LLM_TEMPERATURE" envDefault:"0.0"`
	MaxTokens       int            `env:"LLM_MAX_TOKENS" envDefault:"1024" validate:"min=1"`
	Timeout         time.Duration  `env:"LLM_TIMEOUT" envDefault:"90s"`
	MaxRetries      int            `env:"LLM_MAX_RETRIES" envDefault:"3" validate:"min=0"`
	RetryDelay      time.Duration  `env:"LLM_RETRY_DELAY" envDefault:"2s"`
	LogLevel        utils.LogLevel `env:"LLM_LOG_LEVEL" envDefault:"WARN"`
	EnableCaching   bool           `env:"LLM_ENABLE_CACHING" envDefault:"true"`
	APIKeys         map[string]string
	ExtraHeaders    map[string]string
}

// LoadConfig builds a Config from the environment. Provider API keys are
// collected from every *_API_KEY variable, keyed by the lowercased prefix.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKeys:      make(map[string]string),
		ExtraHeaders: make(map[string]string),
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	loadAPIKeys(cfg)
	return cfg, nil
}

func loadAPIKeys(cfg *Config) {
	for _, envVar := range os.Environ() {
		key, value, found := strings.Cut(envVar, "=")
		if found && strings.HasSuffix(strings.ToUpper(key), "_API_KEY") {
			provider := strings.TrimSuffix(strings.ToUpper(key), "_API_KEY")
			cfg.APIKeys[strings.ToLower(provider)] = value
		}
	}
}

// NewConfig returns a Config with library defaults, for callers that
// configure programmatically instead of via the environment.
func NewConfig() *Config {
	return &Config{
		Provider:        "openai",
		Model:           "gpt-4o-mini",
		JudgeModel:      "o3-mini",
		ReasoningEffort: "low",
		Temperature:     0.0,
		MaxTokens:       1024,
		Timeout:         90 * time.Second,
		MaxRetries:      3,
		RetryDelay:      2 * time.Second,
		LogLevel:        utils.LogLevelWarn,
		EnableCaching:   true,
		APIKeys:         make(map[string]string),
		ExtraHeaders:    make(map[string]string),
	}
}

type ConfigOption func(*Config)

func SetProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

func SetModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

func SetJudgeModel(model string) ConfigOption {
	return func(c *Config) {
		c.JudgeModel = model
	}
}

func SetReasoningEffort(effort string) ConfigOption {
	return func(c *Config) {
		c.ReasoningEffort = effort
	}
}

func SetTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

func SetMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		if maxTokens < 1 {
			maxTokens = 1
		}
		c.MaxTokens = maxTokens
	}
}

func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func SetAPIKey(apiKey string) ConfigOption {
	return func(c *Config) {
		if c.APIKeys == nil {
			c.APIKeys = make(map[string]string)
		}
		c.APIKeys[c.Provider] = apiKey
	}
}

func SetMaxRetries(maxRetries int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = maxRetries
	}
}

func SetRetryDelay(retryDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = retryDelay
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetEnableCaching(enableCaching bool) ConfigOption {
	return func(c *Config) {
		c.EnableCaching = enableCaching
	}
}

func SetExtraHeaders(headers map[string]string) ConfigOption {
	return func(c *Config) {
		if c.ExtraHeaders == nil {
			c.ExtraHeaders = make(map[string]string)
		}
		for k, v := range headers {
			c.ExtraHeaders[k] = v
		}
	}
}

func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}
