package studyview

import "github.com/abhisek/studybuddy/internal/quiz"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// SetTopic replaces the topic text. Only honoured on Home.
type SetTopic struct{ Topic string }

// Simplify requests an explanation of the topic.
type Simplify struct{}

// GenerateQuiz requests a quiz on the topic.
type GenerateQuiz struct{}

// Back returns to Home from Explain or Quiz.
type Back struct{}

// ExplainResolved delivers the explain result for Generation.
type ExplainResolved struct {
	Generation uint64
	Text       string
}

// QuizResolved delivers the quiz result for Generation. On failure Quiz
// is nil and Message holds the text to show.
type QuizResolved struct {
	Generation uint64
	Quiz       *quiz.Quiz
	Message    string
}

// SelectAnswer records Option as the answer to Question.
type SelectAnswer struct {
	Question int
	Option   int
}

// CheckAnswers grades the quiz.
type CheckAnswers struct{}

// TryAgain clears answers and grading, keeping the quiz.
type TryAgain struct{}

// NewQuiz discards the graded quiz and returns to Home.
type NewQuiz struct{}

func (SetTopic) isEvent()        {}
func (Simplify) isEvent()        {}
func (GenerateQuiz) isEvent()    {}
func (Back) isEvent()            {}
func (ExplainResolved) isEvent() {}
func (QuizResolved) isEvent()    {}
func (SelectAnswer) isEvent()    {}
func (CheckAnswers) isEvent()    {}
func (TryAgain) isEvent()        {}
func (NewQuiz) isEvent()         {}

// Effect is work the caller must perform after a transition. Nil means
// nothing to do.
type Effect interface {
	isEffect()
}

// RequestExplain asks the caller to run an explain request and feed the
// result back as ExplainResolved{Generation: Generation}.
type RequestExplain struct {
	Topic      string
	Generation uint64
}

// RequestQuiz asks the caller to run a quiz request and feed the result
// back as QuizResolved{Generation: Generation}.
type RequestQuiz struct {
	Topic      string
	Generation uint64
}

// CancelPending tells the caller the outstanding request, if any, is no
// longer wanted.
type CancelPending struct{}

func (RequestExplain) isEffect() {}
func (RequestQuiz) isEffect()    {}
func (CancelPending) isEffect()  {}
