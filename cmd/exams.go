package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/exporter"
	"github.com/EaseCHAOS/easechaos/pkg/render"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Show the exam timetable grouped by day and paper",
	RunE: func(cmd *cobra.Command, args []string) error {
		dept, _ := cmd.Flags().GetString("dept")
		year, _ := cmd.Flags().GetInt("year")
		class, _ := cmd.Flags().GetString("class")
		rangeFlag, _ := cmd.Flags().GetString("range")
		icsPath, _ := cmd.Flags().GetString("ics")
		listClasses, _ := cmd.Flags().GetBool("list-classes")

		rng, err := timetable.ParseExamRange(rangeFlag)
		if err != nil {
			return err
		}

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		req, err := d.classRequest(dept, year, d.cfg.ExamDraftName())
		if err != nil {
			return err
		}

		res, err := tui.WithSpinner(fmt.Sprintf("Fetching the %s exam timetable...", req.ClassPattern), func() (*timetable.ExamResult, error) {
			return d.client.FetchExams(cmd.Context(), req)
		})
		if err != nil {
			return fmt.Errorf("failed to fetch exams: %w", err)
		}
		warnIfStale(res.Stale)

		if listClasses {
			for _, c := range timetable.Classes(res.Days) {
				fmt.Println(c)
			}
			return nil
		}

		groups := timetable.GroupExams(res.Days, d.loc)
		groups = timetable.FilterByClass(groups, class)
		groups = timetable.InRange(groups, rng, d.now())

		if icsPath != "" {
			file, err := os.Create(icsPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()

			n, err := exporter.GenerateExamICS(groups, file)
			if err != nil {
				return fmt.Errorf("failed to generate ICS: %w", err)
			}
			fmt.Printf("Successfully exported %d exams to %s\n", n, icsPath)
			return nil
		}

		fmt.Print(render.Exams(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examsCmd)

	examsCmd.Flags().String("dept", "", "Department code, e.g. CE (defaults to the saved one)")
	examsCmd.Flags().Int("year", 0, "Year of study, 1-4 (defaults to the saved one)")
	examsCmd.Flags().StringP("class", "c", "all", "Only show one class, e.g. \"CE 3A\"")
	examsCmd.Flags().StringP("range", "r", "all", "today, week, next, last or all")
	examsCmd.Flags().String("ics", "", "Write the selected exams to this .ics file instead of printing them")
	examsCmd.Flags().Bool("list-classes", false, "List the classes that sit exams and exit")
}
