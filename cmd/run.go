package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/quizsys/internal/config"
	"github.com/abhisek/quizsys/internal/console"
	"github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/sessionlog"
	"github.com/spf13/cobra"
)

// newService builds the quiz service from resolved configuration.
func newService(cfg *config.Config) *quiz.Service {
	bank := questionbank.NewFromDir(cfg.QuestionsDir, cfg.MaxQuestions)
	return quiz.NewService(quiz.Options{
		Bank:   bank,
		Board:  leaderboard.NewStore(cfg.LeaderboardPath()),
		Log:    sessionlog.New(cfg.LogPath()),
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
}

// serviceFromFlags resolves configuration and builds the quiz service.
// Commands that record sessions pass writable so the data dir exists up front.
func serviceFromFlags(cmd *cobra.Command, writable bool) (*quiz.Service, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	if writable {
		if err := cfg.EnsureDataDir(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not create data dir %s: %v\n", cfg.DataDir, err)
		}
	}
	return newService(cfg), nil
}

// runConsole runs the line-oriented quiz on stdin and stdout.
func runConsole(cmd *cobra.Command) error {
	svc, err := serviceFromFlags(cmd, true)
	if err != nil {
		return err
	}
	return console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
