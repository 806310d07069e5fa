// Package tutor turns a study topic into a plain-language explanation or
// a multiple-choice quiz by asking the configured LLM provider.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/studybuddy/internal/llm"
	"github.com/abhisek/studybuddy/internal/quiz"
)

// Fixed messages shown in place of a result when a request fails.
const (
	MsgNoExplanation  = "Could not generate explanation."
	MsgConnectFailure = "Error: Could not connect to AI. Please try again."
	MsgQuizFailure    = "Error generating quiz. Please try again."
)

// ErrEmptyTopic is returned when the topic is blank after trimming.
var ErrEmptyTopic = errors.New("topic is empty")

// Service issues explanation and quiz requests. It keeps no state between
// calls.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ModelID returns the model answering requests.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}

// Explain asks for a simplified explanation of topic and returns the
// reply text.
func (s *Service) Explain(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	resp, err := s.generate(llm.WithPurpose(ctx, "explain"), s.request(explainPrompt(topic)))
	if err != nil {
		return "", fmt.Errorf("explain %q: %w", topic, err)
	}
	return resp.Text, nil
}

// Quiz asks for a multiple-choice quiz on topic and parses the reply.
// Parse failures wrap quiz.ErrMalformedQuiz.
func (s *Service) Quiz(ctx context.Context, topic string) (*quiz.Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	req := s.request(quizPrompt(topic, s.cfg.QuestionCount))
	resp, err := s.generate(llm.WithPurpose(ctx, "quiz"), req)
	if err != nil {
		return nil, fmt.Errorf("quiz %q: %w", topic, err)
	}

	q, err := quiz.Parse(resp.Text)
	if err != nil {
		if f, ok := s.provider.(llm.Forgetter); ok {
			f.Forget(req)
		}
		return nil, fmt.Errorf("quiz %q: %w", topic, err)
	}
	return q, nil
}

// ExplainRequest returns the text to display for an explanation request.
// Failures map to fixed messages: a reply with no text (including one
// truncated before any text) yields MsgNoExplanation, anything else
// MsgConnectFailure.
func (s *Service) ExplainRequest(ctx context.Context, topic string) string {
	text, err := s.Explain(ctx, topic)
	if err == nil {
		return text
	}
	var empty *llm.ErrEmptyResponse
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &empty) || errors.As(err, &truncated) {
		return MsgNoExplanation
	}
	return MsgConnectFailure
}

// QuizRequest returns a parsed quiz, or nil and MsgQuizFailure when the
// request, the JSON or the quiz shape fails.
func (s *Service) QuizRequest(ctx context.Context, topic string) (*quiz.Quiz, string) {
	q, err := s.Quiz(ctx, topic)
	if err != nil {
		return nil, MsgQuizFailure
	}
	return q, ""
}

func (s *Service) request(prompt string) llm.Request {
	return llm.Request{
		Messages:    llm.UserMessage(prompt),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
}

func (s *Service) generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	if llm.RequestIDFrom(ctx) == "" {
		ctx = llm.WithRequestID(ctx, "")
	}

	return s.provider.Generate(ctx, req)
}
