// Package cannoli provides a list theme matching the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
)

// DefaultFontPath is where Cannoli installs its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a row theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		Name:                 "cannoli",
		FontPath:             fontPath,
		FontSize:             30,
		Align:                "left",
		Padding:              internal.Padding{Top: 8, Right: 24, Bottom: 8, Left: 24},
		TextColor:            internal.Color(internal.HexToColor(0xFFFFFF)),
		HighlightColor:       internal.Color(internal.HexToColor(0x008080)),
		HighlightedTextColor: internal.Color(internal.HexToColor(0xFFFFFF)),
		BackgroundColor:      internal.Color(internal.HexToColor(0x000000)),
		IndicatorColor:       internal.Color(internal.HexToColor(0x008080)),
	}
}
