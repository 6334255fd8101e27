package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/screens/leaderboard"
	"github.com/abhisek/quizsys/internal/screens/review"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/ui/components"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

const maxNameLen = 20

// SummaryScreen shows the final tally, records the player's name and offers
// a review of missed questions.
type SummaryScreen struct {
	svc      *quiz.Service
	category questionbank.Category
	result   session.Result
	input    components.TextInput

	saved   bool
	outcome quiz.Outcome
	saveErr string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a completed session.
func New(svc *quiz.Service, c questionbank.Category, res session.Result) *SummaryScreen {
	return &SummaryScreen{
		svc:      svc,
		category: c,
		result:   res,
		input:    components.NewTextInput("Your name", maxNameLen),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

// HandlesEscape reports true: a finished session is recorded before the
// player can leave.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if !s.saved {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save score"},
		}
	}
	return []layout.KeyHint{
		{Key: "Y", Description: "Review wrong answers"},
		{Key: "N", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if !s.saved {
		if isKey && kmsg.String() == "enter" {
			return s.save()
		}
		if isKey && kmsg.String() == "esc" {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if !isKey {
		return s, nil
	}
	switch kmsg.String() {
	case "y", "Y":
		next := review.New(s.result.Missed)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "n", "N", "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) save() (screen.Screen, tea.Cmd) {
	name := s.input.Value()
	if name == "" {
		s.input.SetError("Please enter your name.")
		return s, nil
	}

	out, err := s.svc.Finish(name, s.category, s.result)
	if err != nil {
		s.saveErr = err.Error()
	}
	s.outcome = out
	s.saved = true
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(layout.Centered("QUIZ COMPLETE", width, theme.Title))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%s    %s    %s",
		theme.Correct.Render(fmt.Sprintf("Correct: %d", s.result.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("Incorrect: %d", s.result.Incorrect)),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("Final Score: %d", s.result.Score)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stats))
	b.WriteString("\n\n")

	if !s.saved {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Enter your name: "+s.input.View()))
		return b.String()
	}

	if s.saveErr != "" {
		b.WriteString(layout.Centered("Could not save leaderboard: "+s.saveErr, width,
			lipgloss.NewStyle().Foreground(theme.Error)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			leaderboard.RenderTable(s.outcome.Leaderboard, s.outcome.Rank)))
		if s.outcome.Rank == 0 {
			b.WriteString(layout.Centered("Not quite enough for the top five this time.", width, theme.Hint))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(layout.Centered("Review wrong answers? (Y/N)", width, theme.Body))
	return b.String()
}
