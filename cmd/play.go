package cmd

import (
	"github.com/abhisek/quizsys/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := serviceFromFlags(cmd, true)
		if err != nil {
			return err
		}
		skip, _ := cmd.Flags().GetBool("no-splash")
		return app.Run(app.Options{Service: svc, SkipWelcome: skip})
	},
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}
