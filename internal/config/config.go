// Package config provides YAML-based theme loading for the colormix
// surface: cell geometry and the terminal colors used for each paint color.
package config

import (
	"fmt"
	"strings"
)

// Theme is the complete presentation configuration.
type Theme struct {
	Cell   CellConfig   `yaml:"cell"`
	Colors ColorConfig  `yaml:"colors"`
	Labels LabelsConfig `yaml:"labels"`
}

// CellConfig defines how large one grid cell is drawn, in terminal cells.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Gap    int `yaml:"gap"` // Blank columns/rows between cells
}

// ColorConfig maps each paint color and UI role to a terminal color.
// Values are ANSI codes ("1", "208") or hex ("#ff0000"), as lipgloss accepts.
type ColorConfig struct {
	Red    string `yaml:"red"`
	Green  string `yaml:"green"`
	Blue   string `yaml:"blue"`
	Yellow string `yaml:"yellow"`
	White  string `yaml:"white"`
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
}

// LabelsConfig holds the user-visible strings of the surface.
type LabelsConfig struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
}

// Validate reports the first problem that would make the theme unusable.
func (t Theme) Validate() error {
	if t.Cell.Width < 1 || t.Cell.Height < 1 {
		return fmt.Errorf("config: cell size must be positive, got %dx%d", t.Cell.Width, t.Cell.Height)
	}
	if t.Cell.Gap < 0 {
		return fmt.Errorf("config: cell gap must not be negative, got %d", t.Cell.Gap)
	}

	colors := map[string]string{
		"red":    t.Colors.Red,
		"green":  t.Colors.Green,
		"blue":   t.Colors.Blue,
		"yellow": t.Colors.Yellow,
		"white":  t.Colors.White,
	}
	for name, value := range colors {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("config: color %q is empty", name)
		}
	}
	return nil
}

// withDefaults fills zero fields from DefaultTheme so partial files work.
func (t Theme) withDefaults() Theme {
	d := DefaultTheme()

	if t.Cell.Width == 0 {
		t.Cell.Width = d.Cell.Width
	}
	if t.Cell.Height == 0 {
		t.Cell.Height = d.Cell.Height
	}

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&t.Colors.Red, d.Colors.Red)
	fill(&t.Colors.Green, d.Colors.Green)
	fill(&t.Colors.Blue, d.Colors.Blue)
	fill(&t.Colors.Yellow, d.Colors.Yellow)
	fill(&t.Colors.White, d.Colors.White)
	fill(&t.Colors.Accent, d.Colors.Accent)
	fill(&t.Colors.Muted, d.Colors.Muted)
	fill(&t.Labels.Title, d.Labels.Title)
	fill(&t.Labels.Start, d.Labels.Start)

	return t
}
