package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/arithmo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "arithmo",
	Short: "Arithmetic quiz trainer for the terminal",
	Long:  "Arithmo — a terminal quiz that generates non-repeating arithmetic practice questions with adjustable difficulty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
