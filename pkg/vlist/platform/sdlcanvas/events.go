package sdlcanvas

import (
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
	"github.com/veandco/go-sdl2/sdl"
)

// Pump delivers the pending SDL events as button events. Pressing the mouse
// on an indicator holds the matching direction until the button is released.
// It returns true when the window is closed.
func (c *Canvas) Pump(emit func(input.ButtonEvent)) (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		now := time.Now()

		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			button := keyButton(e.Keysym.Sym)
			if button == constants.VirtualButtonUnassigned {
				continue
			}
			emit(input.ButtonEvent{Button: button, Pressed: e.State == sdl.PRESSED, Time: now})

		case *sdl.ControllerButtonEvent:
			button := controllerButton(e.Button)
			if button == constants.VirtualButtonUnassigned {
				continue
			}
			emit(input.ButtonEvent{Button: button, Pressed: e.State == sdl.PRESSED, Time: now})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.State == sdl.PRESSED {
				c.mouseButton = c.indicatorAt(e.X, e.Y)
				if c.mouseButton != constants.VirtualButtonUnassigned {
					emit(input.ButtonEvent{Button: c.mouseButton, Pressed: true, Time: now})
				}
			} else if c.mouseButton != constants.VirtualButtonUnassigned {
				emit(input.ButtonEvent{Button: c.mouseButton, Pressed: false, Time: now})
				c.mouseButton = constants.VirtualButtonUnassigned
			}
		}
	}
	return false
}

func (c *Canvas) indicatorAt(x, y int32) constants.VirtualButton {
	p := sdl.Point{X: x, Y: y}
	switch {
	case c.up != nil && p.InRect(&c.up.rect):
		return constants.VirtualButtonUp
	case c.down != nil && p.InRect(&c.down.rect):
		return constants.VirtualButtonDown
	default:
		return constants.VirtualButtonUnassigned
	}
}

func keyButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_RETURN, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_m:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func controllerButton(button uint8) constants.VirtualButton {
	switch button {
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case uint8(sdl.CONTROLLER_BUTTON_A):
		return constants.VirtualButtonA
	case uint8(sdl.CONTROLLER_BUTTON_B):
		return constants.VirtualButtonB
	case uint8(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
