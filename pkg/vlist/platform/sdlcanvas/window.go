package sdlcanvas

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the canvas draws with.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(opts WindowOptions, backgroundPath string) (*Window, error) {
	width, height := opts.Width, opts.Height

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			displayMode.W, displayMode.H = 640, 480
		}
		width, height = displayMode.W, displayMode.H
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
	}

	win.loadBackground(backgroundPath)

	return win, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground(path string) {
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// Size returns the window size in pixels.
func (window *Window) Size() (w, h int32) {
	return window.Window.GetSize()
}

func (window *Window) renderBackground() {
	if window.Background != nil {
		w, h := window.Size()
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w, H: h})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.DefaultFrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
