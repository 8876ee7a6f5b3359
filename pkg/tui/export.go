package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/exporter"
	"github.com/EaseCHAOS/easechaos/pkg/layout"
)

// RunExportTUI runs the interactive flow for exporting a class timetable
func (a *App) RunExportTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the EaseCHAOS Exporter!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pattern, err := pickClass(cfg)
	if err != nil {
		return err
	}

	var format string
	formatForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export as").
				Options(
					huh.NewOption("📆 Calendar (.ics)", string(exporter.FormatICS)),
					huh.NewOption("🖼️ Timetable image (.svg)", string(exporter.FormatSVG)),
					huh.NewOption("📊 Weekly workload chart (.html)", string(exporter.FormatChart)),
				).
				Value(&format),
		),
	).WithTheme(GetTheme())

	if err := formatForm.Run(); err != nil {
		return err
	}
	f := exporter.Format(format)

	// Defaults
	outputFile := strings.ReplaceAll(pattern, " ", "") + f.Ext()
	weeks := fmt.Sprint(exporter.DefaultWeeks)

	fields := []huh.Field{
		huh.NewInput().
			Title("Output file name").
			Value(&outputFile).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("file name cannot be empty")
				}
				return nil
			}),
	}
	if f == exporter.FormatICS {
		fields = append(fields, huh.NewInput().
			Title("How many weeks from this Monday?").
			Value(&weeks).
			Validate(func(s string) error {
				var n int
				if _, err := fmt.Sscan(s, &n); err != nil || n < 1 {
					return fmt.Errorf("enter a whole number of weeks")
				}
				return nil
			}))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(GetTheme()).Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, f.Ext()) {
		outputFile += f.Ext()
	}

	res, err := a.fetchWeek(cfg, pattern)
	if err != nil {
		return err
	}

	var n int
	_, _ = fmt.Sscan(weeks, &n)
	from, to := exporter.TermRange(a.now(), n)

	job := exporter.Job{
		Format: f,
		Week:   res.Week,
		Title:  pattern + " timetable",
		From:   from,
		To:     to,
		Engine: a.Engine,
		Layout: layout.Options{View: layout.ViewWeek, Theme: a.themeContext(cfg)},
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	count, err := job.Run(file)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", f, err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d items to %s", count, outputFile)))
	return nil
}
