package cmd

import (
	"fmt"

	"github.com/abhisek/quizsys/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizsys",
	Short: "Console quiz with a persistent leaderboard",
	Long: "quizsys — ten-question multiple-choice quizzes in four categories and three difficulty tiers,\n" +
		"with a top-five leaderboard and a session log.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the leaderboard and session log (overrides "+config.EnvDataDir+")")
	rootCmd.PersistentFlags().String("questions", "", "Directory of question files (overrides "+config.EnvQuestionsDir+"; default bundled questions)")
	rootCmd.PersistentFlags().Int("max-questions", 0, "Maximum questions loaded per category and difficulty (overrides "+config.EnvMaxQuestions+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration from the environment and applies the
// persistent flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("questions") {
		cfg.QuestionsDir, _ = flags.GetString("questions")
	}
	if flags.Changed("max-questions") {
		n, _ := flags.GetInt("max-questions")
		if n <= 0 {
			return nil, fmt.Errorf("--max-questions must be positive, got %d", n)
		}
		cfg.MaxQuestions = n
	}
	return cfg, nil
}
