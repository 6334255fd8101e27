package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/screens/play"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/ui/components"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

type step int

const (
	stepCategory step = iota
	stepDifficulty
)

type categoryChosenMsg struct {
	Category questionbank.Category
}

type difficultyChosenMsg struct {
	Difficulty questionbank.Difficulty
}

// SetupScreen asks for a category and then a difficulty, and starts the quiz.
type SetupScreen struct {
	svc      *quiz.Service
	step     step
	category questionbank.Category
	menu     components.Menu
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscapeHandler = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(svc *quiz.Service) *SetupScreen {
	return &SetupScreen{
		svc:  svc,
		menu: categoryMenu(),
	}
}

func categoryMenu() components.Menu {
	var items []components.MenuItem
	for _, c := range questionbank.AllCategories() {
		items = append(items, components.MenuItem{Label: c.String(), Action: func() tea.Cmd {
			return func() tea.Msg { return categoryChosenMsg{Category: c} }
		}})
	}
	return components.NewMenu(items)
}

func difficultyMenu() components.Menu {
	var items []components.MenuItem
	for _, d := range questionbank.AllDifficulties() {
		items = append(items, components.MenuItem{Label: d.String(), Action: func() tea.Cmd {
			return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
		}})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.step == stepDifficulty {
		return s.category.String() + " · Difficulty"
	}
	return "Select Category"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	n := len(questionbank.AllCategories())
	if s.step == stepDifficulty {
		n = len(questionbank.AllDifficulties())
	}
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", n), Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEscape reports true on the difficulty step, where Esc returns to
// the category list.
func (s *SetupScreen) HandlesEscape() bool {
	return s.step == stepDifficulty
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoryChosenMsg:
		s.category = msg.Category
		s.step = stepDifficulty
		s.menu = difficultyMenu()
		s.errMsg = ""
		return s, nil

	case difficultyChosenMsg:
		return s.start(msg.Difficulty)

	case tea.KeyMsg:
		if msg.String() == "esc" && s.step == stepDifficulty {
			s.step = stepCategory
			s.menu = categoryMenu()
			s.errMsg = ""
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// start plans a session. Data problems are shown on this screen so the
// player can pick another combination.
func (s *SetupScreen) start(d questionbank.Difficulty) (screen.Screen, tea.Cmd) {
	state, err := s.svc.Start(s.category, d)
	if err != nil {
		s.errMsg = describeStartError(err)
		return s, nil
	}
	next := play.New(s.svc, s.category, state)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func describeStartError(err error) string {
	var insufficient *session.InsufficientDataError
	var dataErr *questionbank.DataError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough %s questions: have %d, need %d.",
			strings.ToLower(insufficient.Difficulty.String()), insufficient.Have, insufficient.Need)
	case errors.As(err, &dataErr):
		return "Could not load questions: " + dataErr.Error()
	default:
		return "Could not start quiz: " + err.Error()
	}
}

func (s *SetupScreen) View(width, height int) string {
	prompt := "Select Category"
	if s.step == stepDifficulty {
		prompt = "Difficulty for " + s.category.String()
	}

	sections := []string{
		theme.Title.Render(prompt),
		"",
		theme.Card.Render(strings.TrimRight(s.menu.View(), "\n")),
	}
	if s.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
