package llm

import (
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered but the reply carried
// no usable text segment.
type ErrEmptyResponse struct {
	Provider string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("no text content in %s response", e.Provider)
	}
	return "no text content in LLM response"
}

// ErrProviderUnavailable indicates the provider is down or unreachable,
// or answered with a non-success status.
type ErrProviderUnavailable struct {
	// StatusCode is the HTTP status when the provider answered; zero for
	// transport failures.
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// Permanent reports whether the failure is a client error that a retry
// cannot fix (bad key, unknown model, malformed request).
func (e *ErrProviderUnavailable) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusRequestTimeout &&
		e.StatusCode != http.StatusTooManyRequests
}

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit and nothing usable came back.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
