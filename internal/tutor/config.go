package tutor

import "time"

// Config holds request settings shared by explanations and quizzes.
type Config struct {
	MaxTokens   int
	Temperature float64

	// QuestionCount is the number of questions asked for in a quiz prompt.
	QuestionCount int

	// Timeout bounds each request. Zero means no limit beyond the caller's
	// context.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1000,
		QuestionCount: 5,
		Timeout:       30 * time.Second,
	}
}
