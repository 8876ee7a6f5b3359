package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EaseCHAOS/easechaos/pkg/logger"
)

var (
	verbose  bool
	logLevel string
	logJSON  bool
	apiURL   string

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "easechaos",
	Short: "A CLI and TUI for EaseCHAOS timetables",
	Long: `easechaos shows your class and exam timetables in the terminal,
serves them over HTTP and exports them to calendars, images and charts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if verbose {
			level = "debug"
		}
		l, err := logger.New(logger.Options{Level: level, JSON: logJSON})
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log JSON lines instead of console text")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the timetable API URL")
}
