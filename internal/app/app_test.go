package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/router"
	"github.com/abhisek/studybuddy/internal/screens/study"
	"github.com/abhisek/studybuddy/internal/screens/welcome"
)

type nopTutor struct{}

func (nopTutor) ExplainRequest(context.Context, string) string { return "" }
func (nopTutor) QuizRequest(context.Context, string) (*quiz.Quiz, string) {
	return nil, "Error generating quiz. Please try again."
}

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestStartsOnStudyWithoutSplash(t *testing.T) {
	m := newAppModel(Options{Tutor: nopTutor{}, ModelID: "claude-sonnet-4-20250514"})
	if _, ok := m.router.Active().(*study.StudyScreen); !ok {
		t.Fatalf("active screen = %T, want study screen", m.router.Active())
	}

	m = sized(m, 100, 30)
	content := m.render()
	for _, want := range []string{"AI Study Buddy", "claude-sonnet-4-20250514", "What would you like to study?"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSplashHandsOverToStudy(t *testing.T) {
	m := newAppModel(Options{Tutor: nopTutor{}, ShowSplash: true})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active screen = %T, want welcome", m.router.Active())
	}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)

	if _, ok := m.router.Active().(*study.StudyScreen); !ok {
		t.Fatalf("active screen = %T, want study screen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestTooSmall(t *testing.T) {
	m := sized(newAppModel(Options{Tutor: nopTutor{}}), 30, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Tutor: nopTutor{}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEscPopsAboveRoot(t *testing.T) {
	m := newAppModel(Options{Tutor: nopTutor{}})
	m.router.Update(router.PushScreenMsg{Screen: study.New(nopTutor{})})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command above the root")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
