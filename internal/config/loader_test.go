package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	theme, err := ParseTheme(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseTheme(embedded) failed: %v", err)
	}
	if theme != DefaultTheme() {
		t.Errorf("embedded theme = %+v\nwant %+v", theme, DefaultTheme())
	}
}

func TestParseThemePartial(t *testing.T) {
	data := []byte(`
cell:
  width: 10
colors:
  red: "#ff0000"
`)
	theme, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}

	if theme.Cell.Width != 10 {
		t.Errorf("Cell.Width = %d, want 10", theme.Cell.Width)
	}
	if theme.Cell.Height != DefaultTheme().Cell.Height {
		t.Errorf("Cell.Height = %d, want default", theme.Cell.Height)
	}
	if theme.Colors.Red != "#ff0000" {
		t.Errorf("Colors.Red = %q", theme.Colors.Red)
	}
	if theme.Colors.Blue != DefaultTheme().Colors.Blue {
		t.Errorf("Colors.Blue = %q, want default", theme.Colors.Blue)
	}
}

func TestParseThemeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "cell: [1, 2"},
		{"negative width", "cell:\n  width: -1\n"},
		{"negative gap", "cell:\n  gap: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadThemeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("labels:\n  title: Mixer\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if theme.Labels.Title != "Mixer" {
		t.Errorf("Labels.Title = %q, want Mixer", theme.Labels.Title)
	}
}

func TestLoadThemeMissingCustomPath(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom theme")
	}
}

func TestLoadThemeFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if theme != DefaultTheme() {
		t.Errorf("theme = %+v, want default", theme)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore Chdir: %v", err)
		}
	})
}
