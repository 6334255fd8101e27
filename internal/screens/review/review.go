package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rev "github.com/abhisek/quizsys/internal/review"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

// linesPerItem is the rendered height of one review item including spacing.
const linesPerItem = 4

// ReviewScreen lists the questions the player missed.
type ReviewScreen struct {
	items  []rev.Item
	offset int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.EscapeHandler = (*ReviewScreen)(nil)

// New creates a new ReviewScreen.
func New(missed []session.Miss) *ReviewScreen {
	return &ReviewScreen{items: rev.Items(missed)}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

// HandlesEscape reports true: leaving the review returns to the home screen.
func (s *ReviewScreen) HandlesEscape() bool {
	return true
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.items)-1 {
			s.offset++
		}
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.items) == 0 {
		return layout.Centered("\n\n"+rev.NoMissesMessage, width, theme.Correct)
	}

	var b strings.Builder
	b.WriteString(layout.Centered(fmt.Sprintf("%d wrong answer(s)", len(s.items)), width, theme.Subtitle))
	b.WriteString("\n\n")

	visible := max(1, (height-2)/linesPerItem)
	end := min(len(s.items), s.offset+visible)
	for i := s.offset; i < end; i++ {
		it := s.items[i]
		b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("  %d. %s", i+1, it.Question)))
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("     Your answer: %d) %s", it.Chosen, it.ChosenText)))
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render(fmt.Sprintf("     Correct option: %d) %s", it.Correct, it.AnswerText)))
		b.WriteString("\n\n")
	}
	if end < len(s.items) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  ↓ %d more", len(s.items)-end)))
	}
	return b.String()
}
