package vlist

import (
	"errors"
	"image/color"
	"time"
)

type fakeObject struct {
	x, y, w, h int
	shown      bool
	color      color.RGBA
	clip       Clip
	destroyed  bool
}

func (o *fakeObject) Move(x, y int)         { o.x, o.y = x, y }
func (o *fakeObject) Resize(w, h int)       { o.w, o.h = w, h }
func (o *fakeObject) Show()                 { o.shown = true }
func (o *fakeObject) Hide()                 { o.shown = false }
func (o *fakeObject) SetColor(c color.RGBA) { o.color = c }
func (o *fakeObject) SetClip(clip Clip)     { o.clip = clip }
func (o *fakeObject) UnsetClip()            { o.clip = nil }
func (o *fakeObject) Destroy()              { o.destroyed = true }

type fakeRow struct {
	fakeObject
	text   string
	height int
}

func (r *fakeRow) SetText(text string) { r.text = text }
func (r *fakeRow) MinSize() (int, int) { return 100, r.height }

type fakeClip struct {
	fakeObject
}

type fakeAnimation struct {
	fn        func() bool
	cancelled bool
	done      bool
}

func (a *fakeAnimation) Cancel() { a.cancelled = true }

// fakeCanvas is a canvas with a manual clock. Animations only run when the
// test calls step.
type fakeCanvas struct {
	now        time.Time
	itemHeight int
	rowErr     error

	rows  []*fakeRow
	clips []*fakeClip
	anims []*fakeAnimation
}

func newFakeCanvas(itemHeight int) *fakeCanvas {
	return &fakeCanvas{
		now:        time.Unix(1000, 0),
		itemHeight: itemHeight,
	}
}

func (c *fakeCanvas) NewRow() (Row, error) {
	if c.rowErr != nil {
		return nil, c.rowErr
	}
	r := &fakeRow{height: c.itemHeight}
	c.rows = append(c.rows, r)
	return r, nil
}

func (c *fakeCanvas) NewClip() Clip {
	clip := &fakeClip{}
	c.clips = append(c.clips, clip)
	return clip
}

func (c *fakeCanvas) Animate(fn func() bool) Animation {
	a := &fakeAnimation{fn: fn}
	c.anims = append(c.anims, a)
	return a
}

func (c *fakeCanvas) Now() time.Time {
	return c.now
}

// step advances the clock by d and runs every live animation once. It
// returns how many animations are still live afterwards.
func (c *fakeCanvas) step(d time.Duration) int {
	c.now = c.now.Add(d)

	live := 0
	for _, a := range c.anims {
		if a.cancelled || a.done {
			continue
		}
		if !a.fn() {
			a.done = true
			continue
		}
		live++
	}
	return live
}

// run steps at the frame interval until no animation is live, giving up
// after limit frames. It returns the number of frames stepped.
func (c *fakeCanvas) run(frame time.Duration, limit int) (int, error) {
	for i := 1; i <= limit; i++ {
		if c.step(frame) == 0 {
			return i, nil
		}
	}
	return limit, errors.New("animation still running")
}

func (c *fakeCanvas) liveAnimations() int {
	live := 0
	for _, a := range c.anims {
		if !a.cancelled && !a.done {
			live++
		}
	}
	return live
}

func (c *fakeCanvas) liveRows() []*fakeRow {
	var out []*fakeRow
	for _, r := range c.rows {
		if !r.destroyed {
			out = append(out, r)
		}
	}
	return out
}
