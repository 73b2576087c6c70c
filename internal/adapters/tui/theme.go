package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
)

const minRingRadius = 2

// resolveTheme fills empty colors and a missing ring size with defaults.
// A nil theme resolves to the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	if resolved.RingRadius < minRingRadius {
		resolved.RingRadius = defaults.RingRadius
	}
	return resolved
}

// phaseColor is the ring and digit color for the given phase and status.
func phaseColor(theme config.ThemeConfig, phase domain.Phase, status domain.Status) lipgloss.Color {
	if status == domain.StatusPaused {
		return lipgloss.Color(theme.ColorPaused)
	}
	if phase == domain.PhaseRest {
		return lipgloss.Color(theme.ColorRest)
	}
	return lipgloss.Color(theme.ColorWork)
}
