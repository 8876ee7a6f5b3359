package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Default Class", "class"),
						huh.NewOption("Set Timetable Theme (Light/Dark)", "theme"),
						huh.NewOption("Set Accent Color", "accent"),
						huh.NewOption("Set Timetable Drafts", "draft"),
						huh.NewOption("Set API URL", "api"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "class":
			err = runSetClassTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "accent":
			err = runSetAccentTUI(cfg)
		case "draft":
			err = runSetDraftTUI(cfg)
		case "api":
			err = runSetAPITUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.easechaos.json) ---"))
			fmt.Print(Describe(cfg))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

// Describe formats the settings for display
func Describe(cfg *config.AppConfig) string {
	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	var b strings.Builder
	if cfg.Department == "" || cfg.Year == 0 {
		b.WriteString("Class: Not set\n")
	} else if pattern, err := timetable.ClassPattern(cfg.Department, cfg.Year); err == nil {
		fmt.Fprintf(&b, "Class: %s\n", pattern)
	}
	fmt.Fprintf(&b, "Draft: %s\n", orDefault(cfg.Draft, config.DefaultDraft))
	fmt.Fprintf(&b, "Exam Draft: %s\n", orDefault(cfg.ExamDraft, config.DefaultExamDraft))
	fmt.Fprintf(&b, "Theme: %s\n", orDefault(cfg.Theme, string(palette.ThemeSystem)))
	fmt.Fprintf(&b, "View: %s\n", orDefault(cfg.View, "week"))
	fmt.Fprintf(&b, "API URL: %s\n", orDefault(cfg.APIURL, timetable.DefaultBaseURL))
	fmt.Fprintf(&b, "Cache: %s\n", orDefault(cfg.CacheBackend, "file"))
	if cfg.PaletteFile != "" {
		fmt.Fprintf(&b, "Palette File: %s\n", cfg.PaletteFile)
	}
	fmt.Fprintf(&b, "Accent Color: %s\n", orDefault(cfg.AccentColor, DefaultAccent))
	return b.String()
}

func runSetClassTUI(cfg *config.AppConfig) error {
	pattern, err := pickClass(cfg)
	if err != nil {
		return err
	}

	// pattern is "CE 3"
	parts := strings.Fields(pattern)
	year, _ := strconv.Atoi(parts[1])
	cfg.Department, cfg.Year = parts[0], year

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default class changed to: %s\n", pattern)))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	selected := cfg.Theme
	if selected == "" {
		selected = string(palette.ThemeSystem)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Timetable colours").
				Description("System follows your terminal's background.").
				Options(
					huh.NewOption("🖥️ System", string(palette.ThemeSystem)),
					huh.NewOption("☀️ Light", string(palette.ThemeLight)),
					huh.NewOption("🌙 Dark", string(palette.ThemeDark)),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Theme = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timetable theme changed to: %s\n", selected)))
	return nil
}

func runSetDraftTUI(cfg *config.AppConfig) error {
	draft := cfg.DraftName()
	examDraft := cfg.ExamDraftName()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Class timetable draft").
				Description("The spreadsheet the timetable is read from.").
				Value(&draft),
			huh.NewInput().
				Title("Exam timetable draft").
				Value(&examDraft),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Draft = strings.TrimSpace(draft)
	cfg.ExamDraft = strings.TrimSpace(examDraft)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Drafts saved.\n"))
	return nil
}

func runSetAPITUI(cfg *config.AppConfig) error {
	input := cfg.APIURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timetable API URL").
				Description("Leave empty to use the public EaseCHAOS service.").
				Placeholder(timetable.DefaultBaseURL).
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					u, err := url.Parse(s)
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("must be a full URL such as https://example.com")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.APIURL = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ API URL saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetAccentTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for easechaos").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Chaos Blue", colorBlock(DefaultAccent)), DefaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Teal", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The accent color is now saved.\n"))
	return nil
}
