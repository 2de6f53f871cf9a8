// Package constants defines shared constants, types, and configuration values
// used throughout the vlist widget and its platform backends.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the backends and the demo.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LanguageEnvVar     = "VLIST_LANG"
	ThemePathEnvVar    = "VLIST_THEME"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Invariant violations panic in development mode instead of being repaired.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// SelectedItemOffset is the pool position of the selected row. Position 0 is
// the hidden margin above the viewport, so the selection sits on the first
// visible row.
const SelectedItemOffset = 1

// SpareItems is the number of pool slots kept outside the viewport, one
// before and one after it.
const SpareItems = 2

// Scroll kinematics defaults. Speeds are in pixels per millisecond and
// accelerations in pixels per square millisecond.
const (
	DefaultScrollSpeed = 0.2
	DefaultScrollAccel = 0.0001
	FloatPrecision     = 0.00001
)

// DefaultFrameInterval is the animator period used by the platform backends.
const DefaultFrameInterval = 16 * time.Millisecond

// DefaultKeyReleaseDelay filters the release/press pairs emitted by keyboard
// autorepeat so a held key keeps scrolling.
const DefaultKeyReleaseDelay = 40 * time.Millisecond

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonA
	VirtualButtonB
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment inside a row.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)
