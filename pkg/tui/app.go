package tui

import (
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// DefaultAccent is the EaseCHAOS blue
const DefaultAccent = "33"

var (
	// These act as fallbacks initially, but should ideally be dynamically instantiated by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// App carries what the interactive flows need to fetch and draw timetables
type App struct {
	Client *timetable.Client
	Engine *layout.Engine
	// PrefersDark is the terminal's background, used when the theme is system
	PrefersDark bool
	// Location is the campus timezone for "now"
	Location *time.Location
}

func (a *App) now() time.Time {
	if a.Location == nil {
		return time.Now()
	}
	return time.Now().In(a.Location)
}

// GetTheme loads the user's saved Accent Color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := DefaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so manual CLI print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// themeContext combines the saved theme with the terminal background
func (a *App) themeContext(cfg *config.AppConfig) palette.ThemeContext {
	theme, err := palette.ParseTheme(cfg.Theme)
	if err != nil {
		theme = palette.ThemeSystem
	}
	return palette.ThemeContext{Theme: theme, PrefersDark: a.PrefersDark}
}

// Run launches the main menu interactive form experience
func (a *App) Run() error {
	for {
		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📅 View Timetable", "schedule"),
						huh.NewOption("🕐 What's On Now", "now"),
						huh.NewOption("📝 Exam Timetable", "exams"),
						huh.NewOption("📤 Export Timetable", "export"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("👋 Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "schedule":
			err = a.RunScheduleTUI()
		case "now":
			err = a.RunNowTUI()
		case "exams":
			err = a.RunExamsTUI()
		case "export":
			err = a.RunExportTUI()
		case "config":
			err = RunConfigTUI()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}
