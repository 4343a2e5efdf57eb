package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Cell: CellConfig{
			Width:  8,
			Height: 3,
			Gap:    1,
		},
		Colors: ColorConfig{
			Red:    "1",
			Green:  "2",
			Blue:   "4",
			Yellow: "11",
			White:  "15",
			Accent: "212",
			Muted:  "245",
		},
		Labels: LabelsConfig{
			Title: "Color Mixing Game",
			Start: "[ Start Game ]",
		},
	}
}

// DefaultYAML returns the embedded default theme file.
func DefaultYAML() []byte {
	return defaultThemeYAML
}
