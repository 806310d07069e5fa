package quiz

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrMalformedQuiz is wrapped by every Parse failure.
var ErrMalformedQuiz = errors.New("malformed quiz")

// StripFences removes every "```json" and "```" marker from text and
// trims surrounding whitespace. Models often wrap JSON in a markdown
// code block despite being asked not to.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Parse decodes a model reply into a Quiz. The text may be fenced. It
// must hold a single JSON document matching the quiz shape, with at
// least one question, exactly four options per question and a correct
// index inside the options.
func Parse(text string) (*Quiz, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedQuiz)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrMalformedQuiz, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedQuiz, err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedQuiz, err)
	}

	var q Quiz
	if err := json.Unmarshal([]byte(cleaned), &q); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformedQuiz, err)
	}

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedQuiz, err)
	}

	return &q, nil
}
