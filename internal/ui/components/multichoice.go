package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studybuddy/internal/ui/theme"
)

// MultiChoice renders one multiple-choice question. It holds no
// selection state of its own; the caller passes in what was chosen.
type MultiChoice struct {
	Number   int
	Question string
	Options  []string
	Correct  int

	// Chosen is the selected option, or -1.
	Chosen int
	// Cursor is the highlighted option when Focused, or -1.
	Cursor  int
	Focused bool
	// Revealed shows correctness instead of the selection.
	Revealed bool
	Width    int
}

var optionLabels = []string{"A", "B", "C", "D"}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder

	qStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if m.Width > 0 {
		qStyle = qStyle.Width(m.Width)
	}
	marker := "  "
	if m.Focused {
		marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("▌ ")
	}
	b.WriteString(marker + qStyle.Render(fmt.Sprintf("%d. %s", m.Number, m.Question)))
	b.WriteString("\n")

	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "   "
		if m.Focused && i == m.Cursor && !m.Revealed {
			prefix = " ▸ "
		}
		line := fmt.Sprintf("%s%s) %s", prefix, label, opt)
		b.WriteString("  " + m.optionStyle(i).Render(line+m.suffix(i)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	switch {
	case m.Revealed && i == m.Correct:
		return theme.Correct
	case m.Revealed && i == m.Chosen:
		return theme.Incorrect
	case m.Revealed:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	case i == m.Chosen:
		return theme.Selected
	default:
		return theme.Unselected
	}
}

func (m MultiChoice) suffix(i int) string {
	if !m.Revealed {
		return ""
	}
	switch {
	case i == m.Correct:
		return "  ✓"
	case i == m.Chosen:
		return "  ✗"
	}
	return ""
}

// IsCorrect returns true once revealed if the chosen option is correct.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Chosen == m.Correct
}
