package internal

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeFile(t, "theme.toml", `
name = "night"
font_path = "/usr/share/fonts/night.ttf"
font_size = 32
align = "center"
text_color = "#C0C0C0"
highlight_color = "#10203040"

[padding]
top = 4
bottom = 4
`)

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}

	if theme.Name != "night" || theme.FontSize != 32 {
		t.Errorf("theme = %+v", theme)
	}
	if theme.TextAlign() != constants.TextAlignCenter {
		t.Errorf("TextAlign() = %v, want center", theme.TextAlign())
	}
	if want := (color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}); theme.TextColor.ToRGBA() != want {
		t.Errorf("TextColor = %v, want %v", theme.TextColor, want)
	}
	if want := (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}); theme.HighlightColor.ToRGBA() != want {
		t.Errorf("HighlightColor = %v, want %v", theme.HighlightColor, want)
	}
	if theme.Padding.Vertical() != 8 {
		t.Errorf("Padding.Vertical() = %d, want 8", theme.Padding.Vertical())
	}
	if theme.Padding.Left != DefaultTheme().Padding.Left {
		t.Errorf("Padding.Left = %d, want the default", theme.Padding.Left)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad color", `text_color = "#12"`},
		{"zero font size", `font_size = 0`},
		{"not toml", `font_size = = 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTheme(writeFile(t, "theme.toml", tt.body)); err == nil {
				t.Error("LoadTheme() did not fail")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("LoadTheme() did not fail")
		}
	})
}

func TestColorText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#FF8000")); err != nil {
		t.Fatal(err)
	}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "#FF8000FF" {
		t.Errorf("MarshalText() = %s, want #FF8000FF", text)
	}
}

func TestResolveTheme(t *testing.T) {
	previous := GetTheme()
	t.Cleanup(func() { SetTheme(previous) })

	active := DefaultTheme()
	active.Name = "active"
	active.BackgroundColor = Color(HexToColor(0x102030))
	SetTheme(active)

	if got := ResolveTheme(Theme{}); got != active {
		t.Errorf("ResolveTheme(zero) = %+v, want the active theme", got)
	}

	explicit := DefaultTheme()
	explicit.Name = "explicit"
	if got := ResolveTheme(explicit); got != explicit {
		t.Errorf("ResolveTheme(explicit) = %+v, want it unchanged", got)
	}
}
