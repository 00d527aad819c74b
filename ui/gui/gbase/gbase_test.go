package gbase

import "testing"

func TestPaletteFromString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Palette
	}{
		{"light", LightPalette},
		{"dark", DarkPalette},
		{"pink", LightPalette},
	}
	for _, tt := range tests {
		if got := PaletteFromString(tt.in); got != tt.want {
			t.Errorf("PaletteFromString(%q) = %v", tt.in, got)
		}
	}
	if DarkPalette.String() != "dark" || LightPalette.String() != "light" {
		t.Errorf("palette names: %q %q", LightPalette.String(), DarkPalette.String())
	}
}
