package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/studybuddy/internal/store"
)

// standardKeyVars maps providers to the vendor's own API key variable.
var standardKeyVars = map[string]string{
	"anthropic":  "ANTHROPIC_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"gemini":     "GEMINI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// ResolveConfig loads .env, reads STUDYBUDDY_* variables and, when the
// selected provider has no key, falls back to the vendor's standard key
// variable. With no explicit provider the first standard key found
// picks the provider.
func ResolveConfig() (Config, error) {
	LoadDotEnv()

	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}

	if !cfg.hasKey() {
		if os.Getenv("STUDYBUDDY_LLM_PROVIDER") == "" {
			cfg, _ = DiscoverConfig(cfg)
		} else if v, ok := standardKeyVars[cfg.Provider]; ok {
			cfg = withKey(cfg, os.Getenv(v))
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func withKey(cfg Config, key string) Config {
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.APIKey = key
	case "openai":
		cfg.OpenAI.APIKey = key
	case "gemini":
		cfg.Gemini.APIKey = key
	case "openrouter":
		cfg.OpenRouter.APIKey = key
	}
	return cfg
}

// NewProvider creates a Provider from configuration.
// The returned chain is caller → cache → retry → logging → base.
// A nil eventRepo disables event logging.
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
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewEchoProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return WithCache(retried, cfg.CacheSize)
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider chain.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
