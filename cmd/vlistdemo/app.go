package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/vlist/internal/config"
	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
)

type app struct {
	canvas backend
	list   *vlist.List
	keys   *input.DirectionalInput
	events <-chan input.ButtonEvent
	log    *slog.Logger

	w, h   int
	quit   bool
	chosen *vlist.Selection
}

func newApp(canvas backend, items []string, cfg config.Config, log *slog.Logger) (*app, error) {
	list, err := vlist.New(canvas, vlist.Options{
		ScrollSpeed: cfg.Scroll.Speed,
		ScrollAccel: cfg.Scroll.Accel,
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	a := &app{canvas: canvas, list: list, log: log}
	a.keys = input.NewDirectionalInputWithDelay(cfg.ReleaseDelay(), a.scrollStart, a.scrollStop)

	list.OnSelectionChanged(func(sel vlist.Selection) {
		canvas.SetIndicators(sel.Index, list.Count())
	})

	thaw := list.Freeze()
	for i, item := range items {
		list.Append(item, i, vlist.AppendShare)
	}
	thaw()

	list.Show()
	a.fit()

	return a, nil
}

// run drives the list one frame at a time until the user quits, picks an
// item or ctx ends.
func (a *app) run(ctx context.Context) *vlist.Selection {
	ticker := time.NewTicker(constants.DefaultFrameInterval)
	defer ticker.Stop()

	for a.step() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return a.chosen
}

// step handles pending input, advances the animations and renders. It
// reports whether the app should keep going.
func (a *app) step() bool {
	if a.canvas.Pump(a.handle) {
		a.quit = true
	}

drain:
	for {
		select {
		case ev := <-a.events:
			a.handle(ev)
		default:
			break drain
		}
	}

	a.keys.Update(a.canvas.Now())
	a.canvas.Frame()
	a.fit()
	a.canvas.Render()

	return !a.quit && a.chosen == nil
}

func (a *app) handle(ev input.ButtonEvent) {
	if a.keys.Handle(ev) || !ev.Pressed {
		return
	}

	switch ev.Button {
	case constants.VirtualButtonA:
		if a.list.Count() == 0 {
			return
		}
		sel := a.list.Selected()
		a.chosen = &sel
	case constants.VirtualButtonB:
		a.quit = true
	}
}

// fit sizes the list to the canvas, and pins the highlight to the first
// visible row, where the selection sits.
func (a *app) fit() {
	w, h := a.canvas.Size()
	if w == a.w && h == a.h {
		return
	}
	a.w, a.h = w, h

	a.log.Debug("Fitting list", "width", w, "height", h)
	a.list.Move(0, 0)
	a.list.Resize(w, h)
	a.canvas.SetHighlight(0, 0, w, a.list.ItemHeight())
}

func (a *app) scrollStart(dir input.Direction) {
	a.list.ScrollStart(scrollDirection(dir))
}

func (a *app) scrollStop(dir input.Direction) {
	a.list.ScrollStop(scrollDirection(dir))
}

func (a *app) close() {
	a.list.Destroy()
}

func scrollDirection(dir input.Direction) vlist.Direction {
	switch dir {
	case input.DirectionUp:
		return vlist.Up
	case input.DirectionDown:
		return vlist.Down
	default:
		return vlist.None
	}
}
