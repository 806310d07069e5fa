package llm

import "context"

// Provider is the completion client boundary. Each call is stateless and
// carries the full instruction; nothing is retained between calls.
type Provider interface {
	// Generate sends the request and returns the first plain-text segment
	// of the reply. A reply without any text segment is reported as
	// *ErrEmptyResponse; transport and non-2xx failures as
	// *ErrProviderUnavailable or *ErrRateLimit.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is an optional system prompt.
	System string

	// Messages is the conversation. StudyBuddy always sends exactly one
	// user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single-turn request body.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Response holds the LLM's output.
type Response struct {
	// Text is the first text segment of the reply. Never empty on success.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
