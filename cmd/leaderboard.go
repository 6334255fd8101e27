package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the top scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := serviceFromFlags(cmd, false)
		if err != nil {
			return err
		}
		entries, err := svc.Leaderboard()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No leaderboard entries yet.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-20s  %-11s  %5s  %s\n", "#", "Name", "Date", "Score", "Diff")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for i, e := range entries {
			fmt.Fprintf(out, "%-4d  %-20s  %-11s  %5d  %s\n", i+1, e.Name, e.Date, e.Score, e.Difficulty)
		}
		return nil
	},
}
