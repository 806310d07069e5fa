package components

import (
	"strings"

	"github.com/abhisek/studybuddy/internal/ui/theme"
)

// Button is a styled button. Key handling belongs to the owning screen;
// the button only knows how to draw its focus and enabled states.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string, focused, disabled bool) Button {
	return Button{
		Label:    label,
		Focused:  focused,
		Disabled: disabled,
	}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render("  " + b.Label + " ")
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label + " ")
	default:
		return theme.ButtonInactive.Render("  " + b.Label + " ")
	}
}

// ButtonRow renders buttons side by side separated by gap spaces.
func ButtonRow(gap int, buttons ...Button) string {
	views := make([]string, len(buttons))
	for i, b := range buttons {
		views[i] = b.View()
	}
	return strings.Join(views, strings.Repeat(" ", gap))
}
