package config

import "sort"

var themePresets = map[string]ThemeConfig{
	"tomato": DefaultThemeConfig(),
	"ocean": {
		ColorWork:   "#3A86FF",
		ColorRest:   "#8AC926",
		ColorPaused: "#6B7280",
		ColorTitle:  "#6B7280",
		ColorHelp:   "#95A5A6",
	},
	"mono": {
		ColorWork:   "#F5F5F5",
		ColorRest:   "#A3A3A3",
		ColorPaused: "#525252",
		ColorTitle:  "#737373",
		ColorHelp:   "#737373",
	},
}

// ThemePresetNames lists the built-in color schemes.
func ThemePresetNames() []string {
	names := make([]string, 0, len(themePresets))
	for name := range themePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyThemePreset replaces the theme colors with the named preset and keeps
// the ring size. It reports false for unknown names.
func (c *Config) ApplyThemePreset(name string) bool {
	preset, ok := themePresets[name]
	if !ok {
		return false
	}
	radius := c.Theme.RingRadius
	c.Theme = preset
	c.Theme.RingRadius = radius
	return true
}
