package palette

import (
	"fmt"
	"strings"
)

// Theme is the user's colour preference
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ParseTheme validates a theme name; "" means system.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return t, nil
	case "":
		return ThemeSystem, nil
	}
	return "", fmt.Errorf("unknown theme %q (want system, light or dark)", s)
}

// ThemeContext pairs the chosen theme with the host's dark preference
type ThemeContext struct {
	Theme       Theme
	PrefersDark bool
}

// Dark reports whether dark colours should be used
func (c ThemeContext) Dark() bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return c.PrefersDark
	}
}
