package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/arithmo/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz (same as running arithmo with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}
