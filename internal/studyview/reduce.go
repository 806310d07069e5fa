package studyview

import (
	"maps"
	"strings"
)

// Reduce applies ev to s. Events whose guard fails, and resolved events
// from a stale generation, return s unchanged with a nil Effect.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case SetTopic:
		if s.Mode != ModeHome {
			return s, nil
		}
		s.Topic = ev.Topic
		return s, nil

	case Simplify:
		if !s.CanSubmit() {
			return s, nil
		}
		s.Mode = ModeExplain
		s.Loading = true
		s.Explanation = ""
		s.Generation++
		return s, RequestExplain{Topic: strings.TrimSpace(s.Topic), Generation: s.Generation}

	case GenerateQuiz:
		if !s.CanSubmit() {
			return s, nil
		}
		s.Mode = ModeQuiz
		s.Loading = true
		s.Explanation = ""
		s = clearQuiz(s)
		s.Generation++
		return s, RequestQuiz{Topic: strings.TrimSpace(s.Topic), Generation: s.Generation}

	case Back:
		switch s.Mode {
		case ModeExplain:
			s.Explanation = ""
		case ModeQuiz:
			s.Explanation = ""
			s = clearQuiz(s)
		default:
			return s, nil
		}
		return home(s), CancelPending{}

	case ExplainResolved:
		if s.Mode != ModeExplain || !s.Loading || ev.Generation != s.Generation {
			return s, nil
		}
		s.Loading = false
		s.Explanation = ev.Text
		return s, nil

	case QuizResolved:
		if s.Mode != ModeQuiz || !s.Loading || ev.Generation != s.Generation {
			return s, nil
		}
		s.Loading = false
		if ev.Quiz == nil {
			s.Quiz = nil
			s.Explanation = ev.Message
			return s, nil
		}
		s.Quiz = ev.Quiz
		s.Explanation = ""
		return s, nil

	case SelectAnswer:
		if s.Mode != ModeQuiz || s.Loading || s.ShowResults || s.Quiz == nil {
			return s, nil
		}
		if ev.Question < 0 || ev.Question >= s.Quiz.Len() {
			return s, nil
		}
		if ev.Option < 0 || ev.Option >= len(s.Quiz.Questions[ev.Question].Options) {
			return s, nil
		}
		answers := make(map[int]int, len(s.UserAnswers)+1)
		maps.Copy(answers, s.UserAnswers)
		answers[ev.Question] = ev.Option
		s.UserAnswers = answers
		return s, nil

	case CheckAnswers:
		if !s.CanCheck() {
			return s, nil
		}
		s.ShowResults = true
		return s, nil

	case TryAgain:
		if s.Mode != ModeQuiz || !s.ShowResults {
			return s, nil
		}
		s.UserAnswers = nil
		s.ShowResults = false
		return s, nil

	case NewQuiz:
		if s.Mode != ModeQuiz || !s.ShowResults {
			return s, nil
		}
		s = clearQuiz(s)
		return home(s), nil
	}
	return s, nil
}

// Dispatch folds events over s in order and returns the final state with
// every non-nil Effect produced along the way.
func Dispatch(s State, events ...Event) (State, []Effect) {
	var effects []Effect
	for _, ev := range events {
		var eff Effect
		s, eff = Reduce(s, ev)
		if eff != nil {
			effects = append(effects, eff)
		}
	}
	return s, effects
}

func clearQuiz(s State) State {
	s.Quiz = nil
	s.UserAnswers = nil
	s.ShowResults = false
	return s
}

func home(s State) State {
	s.Mode = ModeHome
	s.Loading = false
	s.Generation++
	return s
}
