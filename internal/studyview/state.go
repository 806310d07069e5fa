// Package studyview holds the study session state machine. Reduce is a
// pure function of (State, Event); all I/O is requested through the
// returned Effect and its result fed back as another Event.
package studyview

import (
	"strings"

	"github.com/abhisek/studybuddy/internal/quiz"
)

// Mode is the active view.
type Mode int

const (
	ModeHome Mode = iota
	ModeExplain
	ModeQuiz
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeExplain:
		return "explain"
	case ModeQuiz:
		return "quiz"
	}
	return "unknown"
}

// State is the whole session. The zero value is the initial state: Home,
// empty topic, nothing loading.
type State struct {
	Mode    Mode
	Topic   string
	Loading bool

	// Explanation holds the explain result, or the error message for a
	// failed quiz request.
	Explanation string

	Quiz        *quiz.Quiz
	UserAnswers map[int]int
	ShowResults bool

	// Generation identifies the current request lifecycle. Results tagged
	// with any other generation are stale.
	Generation uint64
}

// CanSubmit reports whether Simplify and Generate Quiz are enabled.
func (s State) CanSubmit() bool {
	return s.Mode == ModeHome && !s.Loading && strings.TrimSpace(s.Topic) != ""
}

// CanCheck reports whether Check Answers is enabled: a quiz is showing,
// not yet graded, and every question has an answer.
func (s State) CanCheck() bool {
	return s.Mode == ModeQuiz && !s.Loading && !s.ShowResults && s.Quiz.Complete(s.UserAnswers)
}

// Answer returns the selected option for question i.
func (s State) Answer(i int) (int, bool) {
	a, ok := s.UserAnswers[i]
	return a, ok
}

// IsCorrect reports whether question i was answered correctly.
func (s State) IsCorrect(i int) bool {
	return s.Quiz.IsCorrect(s.UserAnswers, i)
}

// Score returns the number of correct answers and the question count.
func (s State) Score() (correct, total int) {
	return s.Quiz.Score(s.UserAnswers), s.Quiz.Len()
}
