package cmd

import (
	"fmt"

	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Check the questions loaded for a category and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		catFlag, _ := cmd.Flags().GetString("category")
		diffFlag, _ := cmd.Flags().GetString("difficulty")

		c, err := questionbank.ParseCategory(catFlag)
		if err != nil {
			return err
		}
		d, err := questionbank.ParseDifficulty(diffFlag)
		if err != nil {
			return err
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		bank := questionbank.NewFromDir(cfg.QuestionsDir, cfg.MaxQuestions)
		pool, err := bank.Load(c, d)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, q := range pool {
			fmt.Fprintf(out, "%3d. %s  [%d) %s]\n", i+1, truncate(q.Text, 70), q.Correct, q.Option(q.Correct))
		}

		fmt.Fprintf(out, "\n%d %s %s questions", len(pool), d, c)
		if len(pool) < session.QuestionsPerSession {
			fmt.Fprintf(out, " (need %d to play)", session.QuestionsPerSession)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Category: science, computer, sports, iq (or 1-4)")
	questionsCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium, hard (or 1-3)")
	_ = questionsCmd.MarkFlagRequired("category")
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
