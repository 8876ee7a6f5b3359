package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/EaseCHAOS/easechaos/pkg/agenda"
	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/render"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// pickClass asks for the department and year, preselecting the saved ones
func pickClass(cfg *config.AppConfig) (string, error) {
	dept := cfg.Department
	year := strconv.Itoa(cfg.Year)

	var deptOptions []huh.Option[string]
	for _, d := range timetable.Departments {
		deptOptions = append(deptOptions, huh.NewOption(fmt.Sprintf("%s (%s)", d.Name, d.ID), d.ID))
	}
	var yearOptions []huh.Option[string]
	for _, y := range timetable.Years {
		yearOptions = append(yearOptions, huh.NewOption(y.Name, strconv.Itoa(y.ID)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your department").
				Description("Start typing to filter.").
				Options(deptOptions...).
				Value(&dept).
				Filtering(true).
				Height(10),
			huh.NewSelect[string]().
				Title("Select your year").
				Options(yearOptions...).
				Value(&year),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return "", fmt.Errorf("invalid year %q", year)
	}
	return timetable.ClassPattern(dept, y)
}

// fetchWeek loads the class timetable behind a spinner
func (a *App) fetchWeek(cfg *config.AppConfig, pattern string) (*timetable.Result, error) {
	res, err := WithSpinner(fmt.Sprintf("Fetching the %s timetable...", pattern), func() (*timetable.Result, error) {
		return a.Client.FetchWeek(context.Background(), timetable.Request{
			Filename:     cfg.DraftName(),
			ClassPattern: pattern,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable: %w", err)
	}
	if res.Stale {
		fmt.Println(warnStyle.Render("⚠️  Could not reach the timetable service, showing a cached copy."))
	}
	return res, nil
}

// RunScheduleTUI shows the week grid or steps through the days one by one
func (a *App) RunScheduleTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pattern, err := pickClass(cfg)
	if err != nil {
		return err
	}

	view := cfg.View
	if view == "" {
		view = string(layout.ViewWeek)
	}
	viewForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How would you like to see it?").
				Options(
					huh.NewOption("Whole week", string(layout.ViewWeek)),
					huh.NewOption("One day at a time", string(layout.ViewDay)),
				).
				Value(&view),
		),
	).WithTheme(GetTheme())

	if err := viewForm.Run(); err != nil {
		return err
	}

	res, err := a.fetchWeek(cfg, pattern)
	if err != nil {
		return err
	}

	opts := layout.Options{
		View:  layout.View(view),
		Theme: a.themeContext(cfg),
		Day:   layout.Today(a.now()),
		Now:   a.now(),
	}

	for {
		fmt.Println()
		fmt.Println(accentStyle.Render(pattern + " timetable"))
		fmt.Println(render.Layout(a.Engine.Build(res.Week, opts), render.Options{}))

		if opts.View != layout.ViewDay {
			return nil
		}

		var step string
		navForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(opts.Day).
					Options(
						huh.NewOption("Next day →", "next"),
						huh.NewOption("← Previous day", "prev"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&step),
			),
		).WithTheme(GetTheme())

		if err := navForm.Run(); err != nil {
			return err
		}

		switch step {
		case "next":
			opts.Day = layout.NextDay(opts.Day)
		case "prev":
			opts.Day = layout.PrevDay(opts.Day)
		default:
			return nil
		}
		opts.Now = a.now()
	}
}

// RunNowTUI shows the running and upcoming sessions for today
func (a *App) RunNowTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pattern, err := pickClass(cfg)
	if err != nil {
		return err
	}

	res, err := a.fetchWeek(cfg, pattern)
	if err != nil {
		return err
	}

	now := a.now()
	day, _ := res.Week.Day(now.Weekday().String())
	fmt.Println()
	fmt.Println(render.Agenda(agenda.Build(day, now, agenda.DefaultPerCourse)))
	return nil
}
