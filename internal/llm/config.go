package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM provider. The zero value is not
// usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the endpoint for OpenAI-compatible APIs.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks cheap, fast models per provider.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// setenv copies the env var into dst when it is set.
func setenv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv reads FUNLEARN_-prefixed variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv(&cfg.Provider, "FUNLEARN_LLM_PROVIDER")

	setenv(&cfg.Anthropic.APIKey, "FUNLEARN_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "FUNLEARN_ANTHROPIC_MODEL")

	setenv(&cfg.OpenAI.APIKey, "FUNLEARN_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "FUNLEARN_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "FUNLEARN_OPENAI_BASE_URL")

	setenv(&cfg.Gemini.APIKey, "FUNLEARN_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "FUNLEARN_GEMINI_MODEL")

	setenv(&cfg.OpenRouter.APIKey, "FUNLEARN_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "FUNLEARN_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the standard provider key variables, Gemini first,
// and returns a Config for the first key found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("FUNLEARN_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("FUNLEARN_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("FUNLEARN_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("FUNLEARN_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// Needs no key.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
