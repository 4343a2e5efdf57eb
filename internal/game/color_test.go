package game

import "testing"

func TestMixColors(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Color
		expected Color
	}{
		{"red and green", ColorRed, ColorGreen, ColorYellow},
		{"green and red", ColorGreen, ColorRed, ColorYellow},
		{"red and blue", ColorRed, ColorBlue, ColorWhite},
		{"green and blue", ColorGreen, ColorBlue, ColorWhite},
		{"yellow and white", ColorYellow, ColorWhite, ColorWhite},
		{"red and red", ColorRed, ColorRed, ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MixColors(tt.a, tt.b); got != tt.expected {
				t.Errorf("MixColors(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMixColorsSymmetricAndTotal(t *testing.T) {
	for _, a := range Palette() {
		for _, b := range Palette() {
			ab := MixColors(a, b)
			if ab != MixColors(b, a) {
				t.Errorf("MixColors not symmetric for %v, %v", a, b)
			}

			redGreen := (a == ColorRed && b == ColorGreen) || (a == ColorGreen && b == ColorRed)
			if redGreen && ab != ColorYellow {
				t.Errorf("MixColors(%v, %v) = %v, want yellow", a, b, ab)
			}
			if !redGreen && ab != ColorWhite {
				t.Errorf("MixColors(%v, %v) = %v, want white", a, b, ab)
			}
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Palette() {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, ok)
		}
		got, ok = ParseColor(string(c.Char()))
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", string(c.Char()), got, ok)
		}
	}

	if _, ok := ParseColor("purple"); ok {
		t.Error("purple should not parse")
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range Palette() {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
	if Color(42).Valid() {
		t.Error("Color(42) should not be valid")
	}
	if Color(42).String() != "unknown" {
		t.Errorf("Color(42).String() = %q", Color(42).String())
	}
}
