package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick a class, browse timetables and exams, and export them interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		return d.tuiApp().Run()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
