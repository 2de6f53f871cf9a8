package sdlcanvas

import (
	"fmt"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init starts SDL, opens the window and loads the theme font. A zero theme
// selects the active theme. A font that
// cannot be loaded is not fatal here: it surfaces as an error from NewRow,
// which vlist.New reports as a theme failure.
func Init(opts WindowOptions, theme internal.Theme) (*Canvas, error) {
	theme = internal.ResolveTheme(theme)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("init ttf: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	if opts.Title == "" {
		opts.Title = "vlist"
	}
	if constants.IsDevMode() {
		opts.Resizable = true
	}

	window, err := initWindow(opts, theme.BackgroundImagePath)
	if err != nil {
		img.Quit()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	c := newCanvas(window, theme)
	c.openControllers()

	return c, nil
}

// Cleanup releases every SDL resource held by the canvas and shuts SDL down.
func (c *Canvas) Cleanup() {
	c.text.destroy()
	c.up.destroy()
	c.down.destroy()
	if c.font != nil {
		c.font.Close()
	}
	for _, gc := range c.controllers {
		gc.Close()
	}
	c.window.closeWindow()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

func (c *Canvas) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if gc := sdl.GameControllerOpen(i); gc != nil {
			c.log.Debug("Opened game controller", "index", i, "name", gc.Name())
			c.controllers = append(c.controllers, gc)
		}
	}
}
