package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage easechaos configuration",
	Long:  "View or edit your local configuration settings (default class, theme, drafts and API URL).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		show, _ := cmd.Flags().GetBool("show")
		if show {
			fmt.Print(tui.Describe(cfg))
			return nil
		}

		changed := false
		if cmd.Flags().Changed("set-dept") {
			dept, _ := cmd.Flags().GetString("set-dept")
			d, ok := timetable.FindDepartment(dept)
			if !ok {
				return fmt.Errorf("unknown department %q", dept)
			}
			cfg.Department = d.ID
			changed = true
		}
		if cmd.Flags().Changed("set-year") {
			cfg.Year, _ = cmd.Flags().GetInt("set-year")
			changed = true
		}
		if cmd.Flags().Changed("set-theme") {
			name, _ := cmd.Flags().GetString("set-theme")
			theme, err := palette.ParseTheme(name)
			if err != nil {
				return err
			}
			cfg.Theme = string(theme)
			changed = true
		}
		for flag, dst := range map[string]*string{
			"set-view":    &cfg.View,
			"set-draft":   &cfg.Draft,
			"set-exam":    &cfg.ExamDraft,
			"set-api":     &cfg.APIURL,
			"set-palette": &cfg.PaletteFile,
			"set-cache":   &cfg.CacheBackend,
			"set-redis":   &cfg.RedisAddr,
		} {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
				changed = true
			}
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			fmt.Print(tui.Describe(cfg))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Print the current configuration")
	configCmd.Flags().String("set-dept", "", "Default department code, e.g. CE")
	configCmd.Flags().Int("set-year", 0, "Default year of study, 1-4")
	configCmd.Flags().String("set-theme", "", "Timetable colours: system, light or dark")
	configCmd.Flags().String("set-view", "", "Default view: week or day")
	configCmd.Flags().String("set-draft", "", "Class timetable draft, e.g. Draft_2")
	configCmd.Flags().String("set-exam", "", "Exam timetable draft, e.g. Draft_3")
	configCmd.Flags().String("set-api", "", "Timetable API URL")
	configCmd.Flags().String("set-palette", "", "YAML palette file mapping course codes to colours")
	configCmd.Flags().String("set-cache", "", "Cache backend: file, redis or none")
	configCmd.Flags().String("set-redis", "", "Redis address for the redis cache, host:port")
}
