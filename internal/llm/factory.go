package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/ritika/funlearn/internal/store"
)

// NewProviderFromEnv builds a provider from the environment. An explicit
// FUNLEARN_LLM_PROVIDER selection is honored strictly; otherwise standard
// provider API key variables are probed in priority order.
func NewProviderFromEnv(ctx context.Context, logRepo store.LLMLogRepo) (Provider, error) {
	if os.Getenv("FUNLEARN_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, logRepo)
	}

	if cfg, ok := DiscoverConfig(); ok {
		return NewProvider(ctx, cfg, logRepo)
	}
	return nil, fmt.Errorf("no LLM provider configured: set FUNLEARN_LLM_PROVIDER or a provider API key")
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, logRepo store.LLMLogRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, logRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
