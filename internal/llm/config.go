package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the active LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds one request including retries. Generating a full
	// question batch is slow, so the default is generous.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific settings. BaseURL also covers
// OpenRouter and other OpenAI-compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig tunes the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// envOverride copies the env var value into dst when set.
func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers ASCENDQUIZ_* environment variables over the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride("ASCENDQUIZ_LLM_PROVIDER", &cfg.Provider)
	envOverride("ASCENDQUIZ_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	envOverride("ASCENDQUIZ_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	envOverride("ASCENDQUIZ_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	envOverride("ASCENDQUIZ_OPENAI_MODEL", &cfg.OpenAI.Model)
	envOverride("ASCENDQUIZ_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	envOverride("ASCENDQUIZ_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	envOverride("ASCENDQUIZ_GEMINI_MODEL", &cfg.Gemini.Model)

	return cfg
}

// DiscoverConfig probes the standard API key variables (Anthropic,
// then OpenAI, then Gemini) and returns a Config for the first
// provider with a key set. The second return is false when no key was
// found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ASCENDQUIZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ASCENDQUIZ_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ASCENDQUIZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
