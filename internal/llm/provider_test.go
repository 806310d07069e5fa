package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: UserMessage("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Fatalf("expected 'first answer', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: UserMessage("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Fatalf("expected 'second answer', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_EmptyTextIsEmptyResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{})
	_, err := mock.Generate(context.Background(), Request{})
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:   "sys",
		Messages: UserMessage("hello"),
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" {
		t.Fatalf("expected system 'sys', got %q", last.System)
	}
}

func TestMockProvider_HonoursCancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "late"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEchoProvider(t *testing.T) {
	p := NewEchoProvider()
	resp, err := p.Generate(context.Background(), Request{Messages: UserMessage("volcanoes")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "[mock] volcanoes" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "quiz")
	if p := PurposeFrom(ctx); p != "quiz" {
		t.Fatalf("expected 'quiz', got %q", p)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if id := RequestIDFrom(ctx); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}

	ctx = WithRequestID(ctx, "")
	generated := RequestIDFrom(ctx)
	if len(generated) != 36 {
		t.Fatalf("expected generated UUID, got %q", generated)
	}

	ctx = WithRequestID(ctx, "fixed")
	if id := RequestIDFrom(ctx); id != "fixed" {
		t.Fatalf("expected 'fixed', got %q", id)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYBUDDY_LLM_PROVIDER", "STUDYBUDDY_LLM_TIMEOUT", "STUDYBUDDY_LLM_CACHE_SIZE",
		"STUDYBUDDY_ANTHROPIC_API_KEY", "STUDYBUDDY_ANTHROPIC_MODEL", "STUDYBUDDY_ANTHROPIC_BASE_URL",
		"STUDYBUDDY_OPENAI_API_KEY", "STUDYBUDDY_OPENAI_MODEL", "STUDYBUDDY_OPENAI_BASE_URL",
		"STUDYBUDDY_GEMINI_API_KEY", "STUDYBUDDY_GEMINI_MODEL",
		"STUDYBUDDY_OPENROUTER_API_KEY", "STUDYBUDDY_OPENROUTER_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("STUDYBUDDY_LLM_PROVIDER", "openai")
	t.Setenv("STUDYBUDDY_OPENAI_API_KEY", "sk-env")
	t.Setenv("STUDYBUDDY_OPENAI_MODEL", "gpt-4o")
	t.Setenv("STUDYBUDDY_LLM_TIMEOUT", "45s")
	t.Setenv("STUDYBUDDY_LLM_CACHE_SIZE", "16")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("timeout = %s, want 45s", cfg.Timeout)
	}
	if cfg.CacheSize != 16 {
		t.Fatalf("cache size = %d, want 16", cfg.CacheSize)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-20250514" {
		t.Fatalf("anthropic default model lost: %q", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnv_InvalidValues(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("STUDYBUDDY_LLM_TIMEOUT", "soon")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid timeout")
	}

	t.Setenv("STUDYBUDDY_LLM_TIMEOUT", "")
	t.Setenv("STUDYBUDDY_LLM_CACHE_SIZE", "-1")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for negative cache size")
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("discovers standard key", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-standard")

		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-standard" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("explicit provider uses its own standard key", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("STUDYBUDDY_LLM_PROVIDER", "gemini")
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		t.Setenv("GEMINI_API_KEY", "gm-key")

		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gm-key" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("no key anywhere", func(t *testing.T) {
		clearLLMEnv(t)
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("mock needs nothing", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("STUDYBUDDY_LLM_PROVIDER", "mock")
		if _, err := ResolveConfig(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.CacheSize = 4

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
	if _, ok := p.(*CachingProvider); !ok {
		t.Fatalf("expected caching provider at the head of the chain, got %T", p)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"claude-sonnet-4-20250514", true},
		{"anthropic/claude-sonnet-4", true},
		{"anthropic/claude-opus-4", true},
		{"anthropic/claude-haiku-4-5", true},
		{"gemini-2.5-flash-001", true},
		{"gpt-4o-mini", true},
		{"mock", false},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}

	if c := LookupCost(DefaultConfig().OpenRouter.Model); c == nil {
		t.Errorf("default OpenRouter model %q has no pricing", DefaultConfig().OpenRouter.Model)
	}

	c := LookupCost("claude-sonnet-4-20250514")
	if cost := c.Cost(1_000_000, 1_000_000); cost != 18 {
		t.Errorf("cost = %v, want 18", cost)
	}
}
