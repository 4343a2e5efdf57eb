package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTheme loads the surface theme.
// Search order: customPath -> ~/.colormix/theme.yaml -> ./configs/theme.yaml -> embedded default
func LoadTheme(customPath string) (Theme, error) {
	// Try custom path first; errors here are the caller's to see
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Theme{}, fmt.Errorf("config: failed to read theme %s: %w", customPath, err)
		}
		theme, err := ParseTheme(data)
		if err != nil {
			return Theme{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return theme, nil
	}

	// Try user config directory
	if userPath := userConfigPath("theme.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if theme, err := ParseTheme(data); err == nil {
				return theme, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "theme.yaml")); err == nil {
		if theme, err := ParseTheme(data); err == nil {
			return theme, nil
		}
	}

	// Use embedded default YAML
	theme, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed is broken
	}
	return theme, nil
}

// ParseTheme decodes a YAML theme, fills omitted fields from the defaults
// and validates the result.
func ParseTheme(data []byte) (Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme = theme.withDefaults()
	if err := theme.Validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colormix", filename)
}
