package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/screens/summary"
	sess "github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/ui/components"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

// QuestionScreen asks the planned questions one at a time.
type QuestionScreen struct {
	svc      *quiz.Service
	category questionbank.Category
	state    *sess.State
	choice   components.MultiChoice

	showingFeedback    bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)
var _ screen.EscapeHandler = (*QuestionScreen)(nil)

// New creates a QuestionScreen over a freshly planned session.
func New(svc *quiz.Service, c questionbank.Category, state *sess.State) *QuestionScreen {
	s := &QuestionScreen{svc: svc, category: c, state: state}
	s.loadQuestion()
	return s
}

func (s *QuestionScreen) loadQuestion() {
	q, ok := s.state.Current()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options[:], q.Correct-1)
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return fmt.Sprintf("%s · %s", s.category, s.state.Difficulty())
}

func (s *QuestionScreen) Status() string {
	return fmt.Sprintf("Q %d/%d  Score %d  ", s.number(), s.state.Total(), s.state.Result().Score)
}

// number is the 1-based position of the question on screen. While feedback
// is shown the state has already moved past it.
func (s *QuestionScreen) number() int {
	if s.showingFeedback {
		return s.state.Number() - 1
	}
	return s.state.Number()
}

// HandlesEscape reports true: Esc asks for confirmation before abandoning
// the session.
func (s *QuestionScreen) HandlesEscape() bool {
	return true
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			// An abandoned session is not recorded.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.next()
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, nil
	}

	if _, err := s.state.Answer(s.choice.Choice()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.showingFeedback = true
	return s, nil
}

// next moves past the feedback to the following question or the summary.
func (s *QuestionScreen) next() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.state.Done() {
		result := summary.New(s.svc, s.category, s.state.Result())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} }
	}
	s.loadQuestion()
	return s, nil
}

func (s *QuestionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render("Abandon this quiz?\n\nYour score will not be recorded.\n\n(Y)es / (N)o"))
	}

	var b strings.Builder

	number := s.number()
	progress := float64(s.state.Result().Answered()) / float64(s.state.Total())
	bar := components.NewProgressBar(fmt.Sprintf("Question %d of %d", number, s.state.Total()), progress, false, min(width-4, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.showingFeedback {
		b.WriteString("\n")
		if s.state.LastCorrect {
			b.WriteString(layout.Centered("Correct.", width, theme.Correct))
		} else {
			q := s.choice
			b.WriteString(layout.Centered(
				fmt.Sprintf("Wrong. The answer is %d) %s", q.CorrectIndex+1, q.Options[q.CorrectIndex]),
				width, theme.Incorrect))
		}
		b.WriteString("\n\n")
		b.WriteString(layout.Centered("press any key to continue", width, theme.Hint))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(s.errMsg, width, lipgloss.NewStyle().Foreground(theme.Error)))
	}

	return b.String()
}
