package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/render"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// RunExamsTUI fetches the exam timetable and lists it for one class and range
func (a *App) RunExamsTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pattern, err := pickClass(cfg)
	if err != nil {
		return err
	}

	res, err := WithSpinner(fmt.Sprintf("Fetching the %s exam timetable...", pattern), func() (*timetable.ExamResult, error) {
		return a.Client.FetchExams(context.Background(), timetable.Request{
			Filename:     cfg.ExamDraftName(),
			ClassPattern: pattern,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to fetch exams: %w", err)
	}
	if res.Stale {
		fmt.Println(warnStyle.Render("⚠️  Could not reach the timetable service, showing a cached copy."))
	}

	classOptions := []huh.Option[string]{huh.NewOption("All classes", "all")}
	for _, c := range timetable.Classes(res.Days) {
		classOptions = append(classOptions, huh.NewOption(c, c))
	}

	class := "all"
	rng := string(timetable.RangeAll)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which class?").
				Options(classOptions...).
				Value(&class),
			huh.NewSelect[string]().
				Title("Which exams?").
				Options(
					huh.NewOption("All", string(timetable.RangeAll)),
					huh.NewOption("Today", string(timetable.RangeToday)),
					huh.NewOption("Rest of this week", string(timetable.RangeThisWeek)),
					huh.NewOption("Next week", string(timetable.RangeNextWeek)),
					huh.NewOption("Last week", string(timetable.RangeLastWeek)),
				).
				Value(&rng),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	now := a.now()
	groups := timetable.GroupExams(res.Days, now.Location())
	groups = timetable.FilterByClass(groups, class)
	groups = timetable.InRange(groups, timetable.ExamRange(rng), now)

	fmt.Println()
	fmt.Println(accentStyle.Render(pattern + " exams"))
	fmt.Println(render.Exams(groups))
	return nil
}
