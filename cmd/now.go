package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/agenda"
	"github.com/EaseCHAOS/easechaos/pkg/render"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the classes running now and coming up today",
	RunE: func(cmd *cobra.Command, args []string) error {
		dept, _ := cmd.Flags().GetString("dept")
		year, _ := cmd.Flags().GetInt("year")
		perCourse, _ := cmd.Flags().GetInt("per-course")

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		req, err := d.classRequest(dept, year, d.cfg.DraftName())
		if err != nil {
			return err
		}

		res, err := tui.WithSpinner(fmt.Sprintf("Fetching the %s timetable...", req.ClassPattern), func() (*timetable.Result, error) {
			return d.client.FetchWeek(cmd.Context(), req)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch timetable: %w", err)
		}
		warnIfStale(res.Stale)

		now := d.now()
		day, _ := res.Week.Day(now.Weekday().String())
		fmt.Print(render.Agenda(agenda.Build(day, now, perCourse)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().String("dept", "", "Department code, e.g. CE (defaults to the saved one)")
	nowCmd.Flags().Int("year", 0, "Year of study, 1-4 (defaults to the saved one)")
	nowCmd.Flags().Int("per-course", agenda.DefaultPerCourse, "Upcoming meetings to list per course")
}
