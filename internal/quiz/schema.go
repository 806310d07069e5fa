package quiz

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://studybuddy/quiz.json"

// quizSchema pins the structure of a reply: field names and types. Counts
// and index bounds are checked by Quiz.Validate so every violation is
// reported together.
const quizSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "options", "correct"],
				"properties": {
					"question": {"type": "string"},
					"options": {
						"type": "array",
						"items": {"type": "string"}
					},
					"correct": {"type": "integer"}
				}
			}
		}
	}
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(quizSchema))
	if err != nil {
		return nil, fmt.Errorf("parse quiz schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add quiz schema: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	return sch, nil
})
