package sdlcanvas

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Title      string // Window title displayed in windowed mode
	Width      int32  // Window width, 0 for the display width
	Height     int32  // Window height, 0 for the display height
	Borderless bool   // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool   // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool   // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
}

func (wo WindowOptions) flags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
