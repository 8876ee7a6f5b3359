package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/exporter"
	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a class timetable to a calendar, image or chart",
	Long: `Export a class timetable without using the interactive TUI.

  ics    one calendar event per class for every week between --from and --to
  svg    the week (or --view day) grid as an image
  chart  a stacked bar chart of contact hours per course and day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dept, _ := cmd.Flags().GetString("dept")
		year, _ := cmd.Flags().GetInt("year")
		formatFlag, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		weeks, _ := cmd.Flags().GetInt("weeks")
		viewFlag, _ := cmd.Flags().GetString("view")
		day, _ := cmd.Flags().GetString("day")
		themeFlag, _ := cmd.Flags().GetString("theme")

		format, err := exporter.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		req, err := d.classRequest(dept, year, d.cfg.DraftName())
		if err != nil {
			return err
		}

		from, to := exporter.TermRange(d.now(), weeks)
		if fromFlag != "" {
			if from, err = time.ParseInLocation("2006-01-02", fromFlag, d.loc); err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to = from.AddDate(0, 0, 7*weeks-1)
		}
		if toFlag != "" {
			if to, err = time.ParseInLocation("2006-01-02", toFlag, d.loc); err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
		}

		view, err := layout.ParseView(viewFlag)
		if err != nil {
			return err
		}
		theme, err := d.theme(themeFlag)
		if err != nil {
			return err
		}
		if day == "" {
			day = layout.Today(d.now())
		}

		if output == "" {
			output = strings.ReplaceAll(req.ClassPattern, " ", "") + format.Ext()
		}

		res, err := tui.WithSpinner(fmt.Sprintf("Exporting the %s timetable to %s...", req.ClassPattern, output), func() (*timetable.Result, error) {
			return d.client.FetchWeek(cmd.Context(), req)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch timetable: %w", err)
		}
		warnIfStale(res.Stale)

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		job := exporter.Job{
			Format: format,
			Week:   res.Week,
			Title:  req.ClassPattern + " timetable",
			From:   from,
			To:     to,
			Engine: d.engine,
			Layout: layout.Options{View: view, Theme: theme, Day: day},
		}
		n, err := job.Run(file)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}

		fmt.Printf("Successfully exported %d items to %s\n", n, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("dept", "", "Department code, e.g. CE (defaults to the saved one)")
	exportCmd.Flags().Int("year", 0, "Year of study, 1-4 (defaults to the saved one)")
	exportCmd.Flags().StringP("format", "f", "ics", "ics, svg or chart")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (defaults to the class name)")
	exportCmd.Flags().String("from", "", "First calendar day, YYYY-MM-DD (defaults to this Monday)")
	exportCmd.Flags().String("to", "", "Last calendar day, YYYY-MM-DD")
	exportCmd.Flags().Int("weeks", exporter.DefaultWeeks, "Weeks to cover when --to is not given")
	exportCmd.Flags().String("view", "week", "Grid for svg: week or day")
	exportCmd.Flags().String("day", "", "Day for the svg day view (defaults to today)")
	exportCmd.Flags().String("theme", "", "Colours for svg: system, light or dark")
}
