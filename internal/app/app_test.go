package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/screens/home"
	"github.com/abhisek/quizsys/internal/screens/welcome"
)

type stubScreen struct {
	title      string
	escHandled bool
	updates    int
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesEscape() bool  { return s.escHandled }

func esc() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func TestStartScreen(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}

	m = newAppModel(Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestEscapePopsByDefault(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	m.router.Push(&stubScreen{title: "child"})

	_, cmd := m.Update(esc())
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscapeForwardedToHandlingScreen(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	child := &stubScreen{title: "child", escHandled: true}
	m.router.Push(child)

	_, cmd := m.Update(esc())
	if cmd != nil {
		t.Errorf("expected no app command, got %T", cmd())
	}
	if child.updates != 1 {
		t.Errorf("expected Esc forwarded to screen, got %d updates", child.updates)
	}
}

func TestEscapeAtRootIsNoop(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	if _, cmd := m.Update(esc()); cmd != nil {
		t.Error("Esc on the root screen should do nothing")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}
