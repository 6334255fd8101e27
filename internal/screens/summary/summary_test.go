package summary

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/router"
	"github.com/abhisek/quizsys/internal/screens/review"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/sessionlog"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(s *SummaryScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func enter(s *SummaryScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func testResult() session.Result {
	q := questionbank.Question{
		Difficulty: questionbank.Hard,
		Text:       "Largest planet?",
		Options:    [4]string{"Mars", "Jupiter", "Venus", "Earth"},
		Correct:    2,
	}
	return session.Result{
		Difficulty: questionbank.Hard,
		Correct:    8,
		Incorrect:  2,
		Score:      70,
		Missed:     []session.Miss{{Question: q, Chosen: 1}, {Question: q, Chosen: 3}},
	}
}

func newSummary(t *testing.T) (*SummaryScreen, string) {
	t.Helper()
	dir := t.TempDir()
	svc := quiz.NewService(quiz.Options{
		Bank:  questionbank.New(fstest.MapFS{}, 0),
		Board: leaderboard.NewStore(filepath.Join(dir, "high_scores.txt")),
		Log:   sessionlog.New(filepath.Join(dir, "quiz_logs.txt")),
		Rand:  rand.New(rand.NewPCG(1, 1)),
	})
	return New(svc, questionbank.Science, testResult()), dir
}

func TestEmptyNameIsRejected(t *testing.T) {
	s, dir := newSummary(t)

	typeText(s, "   ")
	enter(s)
	if s.saved {
		t.Fatal("blank name should not be saved")
	}
	if !strings.Contains(s.View(80, 20), "Please enter your name.") {
		t.Error("expected name prompt error")
	}
	if _, err := os.Stat(filepath.Join(dir, "high_scores.txt")); !os.IsNotExist(err) {
		t.Error("leaderboard should not be written")
	}
}

func TestSaveRecordsLeaderboardAndLog(t *testing.T) {
	s, dir := newSummary(t)

	typeText(s, "Ada L")
	enter(s)
	if !s.saved {
		t.Fatal("expected score saved")
	}
	if s.outcome.Rank != 1 {
		t.Errorf("expected rank 1, got %d", s.outcome.Rank)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Ada_L") || !strings.Contains(view, "Review wrong answers? (Y/N)") {
		t.Errorf("unexpected view after save:\n%s", view)
	}

	board, err := os.ReadFile(filepath.Join(dir, "high_scores.txt"))
	if err != nil {
		t.Fatalf("read leaderboard: %v", err)
	}
	if !strings.HasPrefix(string(board), "Ada_L ") || !strings.HasSuffix(string(board), " 70 3\n") {
		t.Errorf("unexpected leaderboard file %q", board)
	}

	logData, err := os.ReadFile(filepath.Join(dir, "quiz_logs.txt"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "Player: Ada_L") {
		t.Errorf("unexpected log %q", logData)
	}
}

func TestEscapeIgnoredBeforeSave(t *testing.T) {
	s, _ := newSummary(t)
	if !s.HandlesEscape() {
		t.Fatal("summary should handle Esc")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("Esc before saving should do nothing")
	}
}

func TestReviewChoice(t *testing.T) {
	s, _ := newSummary(t)
	typeText(s, "ada")
	enter(s)

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected navigation to review")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*review.ReviewScreen); !ok {
		t.Errorf("expected ReviewScreen, got %T", replace.Screen)
	}
}

func TestDeclineReviewGoesHome(t *testing.T) {
	s, _ := newSummary(t)
	typeText(s, "ada")
	enter(s)

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected navigation home")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}
