package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/studybuddy/internal/quiz"
)

func sampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{Questions: []quiz.Question{
		{Text: "2+2?", Options: []string{"3", "4", "5", "6"}, Correct: 1},
		{Text: "Capital of France?", Options: []string{"Paris", "Rome", "Berlin", "Madrid"}, Correct: 0},
		{Text: "Largest planet?", Options: []string{"Mars", "Venus", "Jupiter", "Earth"}, Correct: 2},
	}}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"a", 0, true},
		{"D", 3, true},
		{"5", 0, false},
		{"e", 0, false},
		{"0", 0, false},
		{"12", 0, false},
		{"?", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.in, 4)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestPlayQuizGrades(t *testing.T) {
	in := strings.NewReader("2\nb\nC\n")
	var out bytes.Buffer

	correct, total := playQuiz(in, &out, sampleQuiz())

	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, total)
	assert.Contains(t, out.String(), "Score: 2 / 3")
	assert.Contains(t, out.String(), "(answer: Paris)")
}

func TestPlayQuizRepromptsOnBadInput(t *testing.T) {
	in := strings.NewReader("x\n9\n2\n1\n3\n")
	var out bytes.Buffer

	correct, _ := playQuiz(in, &out, sampleQuiz())

	assert.Equal(t, 3, correct)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter 1-4 or A-D."))
}

func TestPlayQuizSkipAndEOF(t *testing.T) {
	in := strings.NewReader("\n1\n")
	var out bytes.Buffer

	correct, total := playQuiz(in, &out, sampleQuiz())

	assert.Equal(t, 1, correct)
	assert.Equal(t, 3, total)
	assert.Contains(t, out.String(), "(skipped)")
	assert.Contains(t, out.String(), "(input closed)")
}
