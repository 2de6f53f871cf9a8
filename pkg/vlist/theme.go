package vlist

import "github.com/BrandonKowalski/vlist/pkg/vlist/internal"

// Theme describes how backends render rows. See LoadTheme for the file format.
type Theme = internal.Theme

// Padding is the space around a row's label.
type Padding = internal.Padding

// LoadTheme reads a TOML theme file, applying it on top of DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	return internal.LoadTheme(path)
}

// DefaultTheme returns the theme used when none is set.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// SetTheme sets the active theme. Backends created with a zero Theme use it.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return internal.GetTheme()
}
