package main

import (
	"fmt"

	"github.com/BrandonKowalski/vlist/internal/config"
	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
	"github.com/BrandonKowalski/vlist/pkg/vlist/platform/cannoli"
	"github.com/BrandonKowalski/vlist/pkg/vlist/platform/sdlcanvas"
	"github.com/BrandonKowalski/vlist/pkg/vlist/platform/termcanvas"
)

// backend is what the demo needs from a platform canvas on top of what the
// list itself uses.
type backend interface {
	vlist.Canvas
	Size() (w, h int)
	SetHighlight(x, y, w, h int)
	SetIndicators(index, count int)
	Frame()
	Render()
	Pump(emit func(input.ButtonEvent)) (quit bool)
}

var (
	_ backend = (*sdlcanvas.Canvas)(nil)
	_ backend = (*termcanvas.Canvas)(nil)
)

func loadTheme(cfg config.Config) (vlist.Theme, error) {
	switch {
	case cfg.ThemePath != "":
		return vlist.LoadTheme(cfg.ThemePath)
	case cfg.Preset == "cannoli":
		return cannoli.InitCannoliTheme(cannoli.DefaultFontPath), nil
	default:
		return vlist.DefaultTheme(), nil
	}
}

// openBackend starts the configured canvas with the active theme. The
// returned function releases it.
func openBackend(cfg config.Config, title string) (backend, func(), error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		c, err := termcanvas.Open(vlist.Theme{}, termcanvas.Options{Padding: 1})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case config.BackendSDL:
		c, err := sdlcanvas.Init(sdlcanvas.WindowOptions{
			Title:      title,
			Fullscreen: cfg.Fullscreen,
			Borderless: cfg.Fullscreen,
		}, vlist.Theme{})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
