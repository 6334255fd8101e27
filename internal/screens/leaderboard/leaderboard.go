package leaderboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	lb "github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screen"
	"github.com/abhisek/quizsys/internal/ui/layout"
	"github.com/abhisek/quizsys/internal/ui/theme"
)

type loadedMsg struct {
	Entries []lb.Entry
	Err     error
}

// LeaderboardScreen shows the stored top scores.
type LeaderboardScreen struct {
	svc     *quiz.Service
	entries []lb.Entry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(svc *quiz.Service) *LeaderboardScreen {
	return &LeaderboardScreen{svc: svc}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.svc.Leaderboard()
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(fmt.Sprintf("\n\nCould not read leaderboard: %s", s.errMsg),
			width, lipgloss.NewStyle().Foreground(theme.Error))
	}
	if !s.loaded {
		return layout.Centered("\n\n  Loading leaderboard...", width, lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	if len(s.entries) == 0 {
		return layout.Centered("\n\n  No leaderboard entries yet.", width, theme.Hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, RenderTable(s.entries, 0))
}

// RenderTable renders entries as a ranked table. The entry at rank (1-based)
// is drawn in the accent color; 0 highlights nothing.
func RenderTable(entries []lb.Entry, rank int) string {
	var b strings.Builder
	head := fmt.Sprintf("%-4s %-20s %-11s %6s  %-6s", "#", "Name", "Date", "Score", "Diff")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(head))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(head))))
	b.WriteString("\n")

	for i, e := range entries {
		line := fmt.Sprintf("%-4d %-20s %-11s %6d  %-6s", i+1, e.Name, e.Date, e.Score, e.Difficulty)
		style := theme.Unselected
		if i+1 == rank {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
