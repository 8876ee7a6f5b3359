package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/render"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

// watchInterval is how often --watch moves the now indicator
const watchInterval = time.Minute

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your class timetable as a week or day grid",
	Long: `Fetch a class timetable and draw it in the terminal. Overlapping classes
are split side by side and every course keeps its own colour.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dept, _ := cmd.Flags().GetString("dept")
		year, _ := cmd.Flags().GetInt("year")
		viewFlag, _ := cmd.Flags().GetString("view")
		day, _ := cmd.Flags().GetString("day")
		themeFlag, _ := cmd.Flags().GetString("theme")
		watch, _ := cmd.Flags().GetBool("watch")
		width, _ := cmd.Flags().GetInt("width")

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		if viewFlag == "" {
			viewFlag = d.cfg.View
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

		l := d.engine.Build(res.Week, layout.Options{
			View:  view,
			Theme: theme,
			Day:   day,
			Now:   d.now(),
		})
		draw := func() {
			warnIfStale(res.Stale)
			fmt.Println(render.Layout(l, render.Options{Width: width}))
		}
		draw()

		if !watch {
			return nil
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.RecomputeNow(d.now())
				fmt.Print("\033[H\033[2J")
				draw()
			case <-interrupt:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().String("dept", "", "Department code, e.g. CE (defaults to the saved one)")
	showCmd.Flags().Int("year", 0, "Year of study, 1-4 (defaults to the saved one)")
	showCmd.Flags().String("view", "", "week or day (defaults to the saved view, else week)")
	showCmd.Flags().String("day", "", "Day for the day view (defaults to today)")
	showCmd.Flags().String("theme", "", "system, light or dark (defaults to the saved theme)")
	showCmd.Flags().BoolP("watch", "w", false, "Keep running and move the now marker every minute")
	showCmd.Flags().Int("width", 0, "Width of the time grid in columns")
}
