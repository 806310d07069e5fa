// Package study is the single interactive screen: topic entry, the
// explanation view and the quiz view. Screen state lives in a
// studyview.State; this package translates keys into events and
// effects into commands.
package study

import (
	"context"
	"log"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/studybuddy/internal/llm"
	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/screen"
	"github.com/abhisek/studybuddy/internal/studyview"
	"github.com/abhisek/studybuddy/internal/ui/components"
	"github.com/abhisek/studybuddy/internal/ui/layout"
)

// Tutor answers study requests with display-ready results. It never
// returns an error: failures arrive as fallback text.
type Tutor interface {
	ExplainRequest(ctx context.Context, topic string) string
	QuizRequest(ctx context.Context, topic string) (*quiz.Quiz, string)
}

const (
	spinnerInterval = 100 * time.Millisecond
	topicCharLimit  = 200
)

// Home focus targets, cycled with Tab.
const (
	focusInput = iota
	focusSimplify
	focusQuiz
	focusCount
)

// StudyScreen implements screen.Screen for the study session.
type StudyScreen struct {
	tutor Tutor
	state studyview.State

	input components.TextInput
	focus int

	// Quiz navigation.
	question int
	option   int

	// Explain scroll offset in lines.
	scroll int

	spinnerFrame int
	cancel       context.CancelFunc
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen on Home with an empty topic.
func New(tutor Tutor) *StudyScreen {
	return &StudyScreen{
		tutor: tutor,
		input: components.NewTextInput("e.g., Photosynthesis, Pythagorean theorem, World War 2...", topicCharLimit),
	}
}

// State returns the current session state.
func (s *StudyScreen) State() studyview.State {
	return s.state
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StudyScreen) Title() string {
	switch s.state.Mode {
	case studyview.ModeExplain:
		return "Explanation"
	case studyview.ModeQuiz:
		return "Quiz"
	}
	return "Home"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.state.Mode {
	case studyview.ModeExplain:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case studyview.ModeQuiz:
		if s.state.ShowResults {
			return []layout.KeyHint{
				{Key: "R", Description: "Try Again"},
				{Key: "N", Description: "New Quiz"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "←→/1-4", Description: "Answer"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "Ctrl+E", Description: "Simplify"},
		{Key: "Ctrl+G", Description: "Quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainDoneMsg:
		s.release(msg.Generation)
		return s, s.dispatch(studyview.ExplainResolved{Generation: msg.Generation, Text: msg.Text})

	case quizDoneMsg:
		s.release(msg.Generation)
		if msg.Generation == s.state.Generation {
			s.question, s.option = 0, 0
		}
		return s, s.dispatch(studyview.QuizResolved{Generation: msg.Generation, Quiz: msg.Quiz, Message: msg.Message})

	case spinnerTickMsg:
		if !s.state.Loading || msg.Generation != s.state.Generation {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick(msg.Generation)

	case tea.KeyPressMsg:
		switch s.state.Mode {
		case studyview.ModeExplain:
			return s, s.handleExplainKey(msg)
		case studyview.ModeQuiz:
			return s, s.handleQuizKey(msg)
		default:
			return s, s.handleHomeKey(msg)
		}
	}

	if s.state.Mode == studyview.ModeHome && s.focus == focusInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleHomeKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "ctrl+e":
		return s.dispatch(studyview.Simplify{})
	case "ctrl+g":
		return s.dispatch(studyview.GenerateQuiz{})
	case "enter":
		if s.focus == focusQuiz {
			return s.dispatch(studyview.GenerateQuiz{})
		}
		return s.dispatch(studyview.Simplify{})
	}

	if s.focus != focusInput {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.state, _ = studyview.Reduce(s.state, studyview.SetTopic{Topic: s.input.Value()})
	return cmd
}

func (s *StudyScreen) handleExplainKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "b":
		return s.back()
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "home", "g":
		s.scroll = 0
	}
	return nil
}

func (s *StudyScreen) handleQuizKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		return s.back()
	}

	q := s.state.Quiz
	if q == nil {
		if key == "b" {
			return s.back()
		}
		return nil
	}

	if s.state.ShowResults {
		switch key {
		case "r":
			s.question, s.option = 0, 0
			return s.dispatch(studyview.TryAgain{})
		case "n":
			return s.dispatch(studyview.NewQuiz{})
		case "up", "k":
			s.moveQuestion(-1)
		case "down", "j":
			s.moveQuestion(1)
		}
		return nil
	}

	switch key {
	case "up", "k":
		s.moveQuestion(-1)
	case "down", "j":
		s.moveQuestion(1)
	case "left", "h":
		if s.option > 0 {
			s.option--
		}
		return s.dispatch(studyview.SelectAnswer{Question: s.question, Option: s.option})
	case "right", "l":
		if s.option < len(q.Questions[s.question].Options)-1 {
			s.option++
		}
		return s.dispatch(studyview.SelectAnswer{Question: s.question, Option: s.option})
	case "1", "2", "3", "4":
		opt := int(key[0] - '1')
		if opt >= len(q.Questions[s.question].Options) {
			return nil
		}
		s.option = opt
		cmd := s.dispatch(studyview.SelectAnswer{Question: s.question, Option: opt})
		s.moveQuestion(1)
		return cmd
	case "enter", "c":
		return s.dispatch(studyview.CheckAnswers{})
	}
	return nil
}

// moveQuestion moves the question cursor by delta, placing the option
// cursor on the recorded answer if there is one.
func (s *StudyScreen) moveQuestion(delta int) {
	n := s.state.Quiz.Len()
	if n == 0 {
		return
	}
	s.question = min(max(s.question+delta, 0), n-1)
	if a, ok := s.state.Answer(s.question); ok {
		s.option = a
	} else {
		s.option = 0
	}
}

func (s *StudyScreen) back() tea.Cmd {
	cmd := s.dispatch(studyview.Back{})
	s.scroll = 0
	s.question, s.option = 0, 0
	return tea.Batch(cmd, s.setFocus(focusInput))
}

func (s *StudyScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	if f == focusInput {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// dispatch runs ev through the reducer and turns the resulting effect
// into a command.
func (s *StudyScreen) dispatch(ev studyview.Event) tea.Cmd {
	var eff studyview.Effect
	s.state, eff = studyview.Reduce(s.state, ev)

	switch eff := eff.(type) {
	case studyview.RequestExplain:
		ctx := s.begin()
		log.Printf("explain request gen=%d id=%s topic=%q", eff.Generation, llm.RequestIDFrom(ctx), eff.Topic)
		s.scroll = 0
		tutor := s.tutor
		return tea.Batch(
			func() tea.Msg {
				return explainDoneMsg{Generation: eff.Generation, Text: tutor.ExplainRequest(ctx, eff.Topic)}
			},
			spinnerTick(eff.Generation),
		)

	case studyview.RequestQuiz:
		ctx := s.begin()
		log.Printf("quiz request gen=%d id=%s topic=%q", eff.Generation, llm.RequestIDFrom(ctx), eff.Topic)
		tutor := s.tutor
		return tea.Batch(
			func() tea.Msg {
				q, msg := tutor.QuizRequest(ctx, eff.Topic)
				return quizDoneMsg{Generation: eff.Generation, Quiz: q, Message: msg}
			},
			spinnerTick(eff.Generation),
		)

	case studyview.CancelPending:
		log.Printf("cancel pending, now gen=%d", s.state.Generation)
		s.cancelPending()
	}
	return nil
}

// begin cancels any outstanding request and returns the context for a
// new one.
func (s *StudyScreen) begin() context.Context {
	s.cancelPending()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.spinnerFrame = 0
	return llm.WithRequestID(ctx, uuid.NewString())
}

// release frees the request context once the current generation resolves.
func (s *StudyScreen) release(gen uint64) {
	if gen == s.state.Generation {
		s.cancelPending()
	}
}

func (s *StudyScreen) cancelPending() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func spinnerTick(gen uint64) tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{Generation: gen}
	})
}

// topic returns the trimmed topic for headers.
func (s *StudyScreen) topic() string {
	return strings.TrimSpace(s.state.Topic)
}
