package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/screens/leaderboard"
	"github.com/abhisek/quizsys/internal/screens/setup"
	"github.com/abhisek/quizsys/internal/ui/components"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *quiz.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start New Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(svc)}
			}
		}},
		{Label: "View Leaderboard", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(svc)}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-3", Description: "Choose"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("QUIZ SYSTEM")
	subtitle := theme.Subtitle.Render("Science · Computer · Sports · IQ")

	var sections []string
	sections = append(sections, title)
	if !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) && !layout.IsCompactWidth(width) {
		sections = append(sections, subtitle)
	}
	sections = append(sections, "", theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
