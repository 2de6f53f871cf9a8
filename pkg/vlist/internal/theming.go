package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BurntSushi/toml"
)

// Theme defines how a list row renders its text. Backends read it when they
// create row visuals; the widget itself only sees the measured row height.
type Theme struct {
	Name                 string  `toml:"name"`
	FontPath             string  `toml:"font_path"`       // Path to the row font (SDL backend)
	FontSize             int     `toml:"font_size"`       // Point size of the row font
	RowHeight            int32   `toml:"row_height"`      // Explicit row height, 0 = measured from the font
	Align                string  `toml:"align"`           // left, center or right
	Padding              Padding `toml:"padding"`         // Space around the label
	TextColor            Color   `toml:"text_color"`      // Default text color
	HighlightColor       Color   `toml:"highlight_color"` // Selected row background
	HighlightedTextColor Color   `toml:"highlighted_text_color"`
	BackgroundColor      Color   `toml:"background_color"` // Screen background color
	IndicatorColor       Color   `toml:"indicator_color"`  // Arrow indicator tint
	BackgroundImagePath  string  `toml:"background_image"` // Optional background image
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ResolveTheme returns theme, or the active theme when theme is the zero value.
func ResolveTheme(theme Theme) Theme {
	if theme == (Theme{}) {
		return GetTheme()
	}
	return theme
}

// DefaultTheme is used when no theme file is given.
func DefaultTheme() Theme {
	return Theme{
		Name:                 "default",
		FontSize:             28,
		Align:                "left",
		Padding:              Padding{Top: 6, Right: 20, Bottom: 6, Left: 20},
		TextColor:            Color(HexToColor(0xFFFFFF)),
		HighlightColor:       Color(HexToColor(0xFFFFFF)),
		HighlightedTextColor: Color(HexToColor(0x000000)),
		BackgroundColor:      Color(HexToColor(0x000000)),
		IndicatorColor:       Color(HexToColor(0xFFFFFF)),
	}
}

// LoadTheme decodes a TOML theme file on top of the default theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	md, err := toml.DecodeFile(path, &theme)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		GetInternalLogger().Warn("Unknown theme keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}

	if theme.FontSize <= 0 {
		return Theme{}, fmt.Errorf("load theme %q: font_size must be positive, got %d", path, theme.FontSize)
	}

	return theme, nil
}

// TextAlign returns the theme alignment as a constant.
func (t Theme) TextAlign() constants.TextAlign {
	switch strings.ToLower(t.Align) {
	case "center":
		return constants.TextAlignCenter
	case "right":
		return constants.TextAlignRight
	default:
		return constants.TextAlignLeft
	}
}

// Color is an RGBA color decoded from "#RRGGBB" or "#RRGGBBAA" strings.
type Color color.RGBA

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")

	switch len(s) {
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", text, err)
		}
		*c = Color(HexToColor(uint32(v)))
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", text, err)
		}
		*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	default:
		return fmt.Errorf("invalid color %q", text)
	}

	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)), nil
}

// ToRGBA returns the color as an image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
