package llm

import (
	"context"
	"fmt"

	"github.com/coursecraft/flowengine/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware (caller → retry → logging → base). A nil
// eventRepo skips the logging layer.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, eventRepo)
	}
	wrapped = WithRetry(wrapped, cfg.Retry)

	return wrapped, nil
}

// ResolveConfig resolves the effective configuration: FLOW_* env vars
// first, then standard API key discovery. ok is false when no
// credential is configured anywhere.
func ResolveConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return DiscoverConfig()
	}
	return cfg, true
}

// NewProviderFromEnv builds a Provider from FLOW_* env configuration,
// falling back to DiscoverConfig when no explicit provider is set.
// Returns (nil, nil) when no credential is configured at all: callers
// treat that as "AI unavailable" and run in simple-scoring mode.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, cfg, eventRepo)
}
