package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studybuddy/internal/studyview"
	"github.com/abhisek/studybuddy/internal/ui/components"
	"github.com/abhisek/studybuddy/internal/ui/layout"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

const (
	subtitle   = "Simplify topics and test your knowledge"
	inputLabel = "What would you like to study?"

	loadingExplain = "Simplifying topic..."
	loadingQuiz    = "Generating quiz..."

	maxContentWidth = 90
)

func (s *StudyScreen) View(width, height int) string {
	cw := contentWidth(width)

	var body string
	switch s.state.Mode {
	case studyview.ModeExplain:
		body = s.renderExplain(cw, height)
	case studyview.ModeQuiz:
		body = s.renderQuiz(cw, height)
	default:
		body = s.renderHome(cw, height)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func contentWidth(width int) int {
	return max(min(width-4, maxContentWidth), 20)
}

func (s *StudyScreen) renderHome(width, height int) string {
	var b strings.Builder

	if !layout.IsCompactHeight(height) {
		b.WriteString("\n")
	}
	b.WriteString(theme.Subtitle.Width(width).Render(subtitle))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(inputLabel))
	b.WriteString("\n")

	border := theme.Border
	if s.focus == focusInput {
		border = theme.Primary
	}
	b.WriteString(theme.Panel.
		BorderForeground(border).
		Width(width).
		Render(s.input.View()))
	b.WriteString("\n\n")

	disabled := !s.state.CanSubmit()
	b.WriteString(components.ButtonRow(2,
		components.NewButton("Simplify", s.focus == focusSimplify, disabled),
		components.NewButton("Generate Quiz", s.focus == focusQuiz, disabled),
	))
	b.WriteString("\n")

	return b.String()
}

func (s *StudyScreen) renderExplain(width, height int) string {
	var b strings.Builder
	b.WriteString(s.renderTopicHeader(s.topic(), width))

	if s.state.Loading {
		b.WriteString(s.renderLoading(loadingExplain))
		return b.String()
	}

	text := theme.Body.Width(width).Render(s.state.Explanation)
	lines := strings.Split(text, "\n")

	avail := max(height-lipgloss.Height(b.String())-1, 1)
	maxScroll := max(len(lines)-avail, 0)
	// Key handlers scroll without knowing the height.
	s.scroll = min(s.scroll, maxScroll)
	end := min(s.scroll+avail, len(lines))
	b.WriteString(strings.Join(lines[s.scroll:end], "\n"))

	if maxScroll > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(scrollHint(s.scroll, maxScroll)))
	}
	return b.String()
}

func scrollHint(pos, maxPos int) string {
	switch {
	case pos == 0:
		return "↓ more"
	case pos >= maxPos:
		return "↑ more"
	}
	return "↑↓ more"
}

func (s *StudyScreen) renderQuiz(width, height int) string {
	var b strings.Builder
	b.WriteString(s.renderTopicHeader("Quiz: "+s.topic(), width))

	if s.state.Loading {
		b.WriteString(s.renderLoading(loadingQuiz))
		return b.String()
	}

	q := s.state.Quiz
	if q == nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Width(width).Render(s.state.Explanation))
		return b.String()
	}

	footer := s.renderQuizFooter(width)

	var lines []string
	focusStart, focusEnd := 0, 0
	for i, question := range q.Questions {
		chosen := -1
		if a, ok := s.state.Answer(i); ok {
			chosen = a
		}
		block := components.MultiChoice{
			Number:   i + 1,
			Question: question.Text,
			Options:  question.Options,
			Correct:  question.Correct,
			Chosen:   chosen,
			Cursor:   s.option,
			Focused:  i == s.question,
			Revealed: s.state.ShowResults,
			Width:    width - 2,
		}.View()

		if i == s.question {
			focusStart = len(lines)
		}
		lines = append(lines, strings.Split(strings.TrimRight(block, "\n"), "\n")...)
		if i == s.question {
			focusEnd = len(lines)
		}
		lines = append(lines, "")
	}

	avail := max(height-lipgloss.Height(b.String())-lipgloss.Height(footer)-1, 1)
	b.WriteString(strings.Join(window(lines, focusStart, focusEnd, avail), "\n"))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (s *StudyScreen) renderQuizFooter(width int) string {
	if s.state.ShowResults {
		correct, total := s.state.Score()
		bar := components.NewScoreBar(correct, total, min(width, 50)).View()
		buttons := components.ButtonRow(2,
			components.NewButton("Try Again (r)", false, false),
			components.NewButton("New Quiz (n)", false, false),
		)
		return bar + "\n\n" + buttons
	}

	progress := theme.Hint.Render(fmt.Sprintf("Answered %d of %d", len(s.state.UserAnswers), s.state.Quiz.Len()))
	check := components.NewButton("Check Answers", s.state.CanCheck(), !s.state.CanCheck())
	return progress + "\n" + check.View()
}

func (s *StudyScreen) renderTopicHeader(text string, width int) string {
	return theme.Title.Width(width).Render(text) + "\n\n"
}

func (s *StudyScreen) renderLoading(label string) string {
	frame := theme.SpinnerFrames[s.spinnerFrame%len(theme.SpinnerFrames)]
	return theme.Spinner.Render(frame) + " " + theme.Hint.Render(label)
}

// window returns at most height lines from lines, keeping the range
// [focusStart, focusEnd) visible where it fits.
func window(lines []string, focusStart, focusEnd, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if focusEnd > height {
		start = focusEnd - height
	}
	if focusStart < start {
		start = focusStart
	}
	end := min(start+height, len(lines))
	return lines[start:end]
}
