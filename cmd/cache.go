package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached timetables",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		if d.cache == nil {
			fmt.Println("Caching is disabled, nothing to clear.")
			return nil
		}
		if err := d.cache.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}

		fmt.Println("✅ Cache cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
