package termcanvas

import (
	"image/color"

	"github.com/BrandonKowalski/vlist/pkg/vlist"
)

var opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type object struct {
	x, y, w, h int
	shown      bool
	color      color.RGBA
	clip       *Clip
	destroyed  bool
}

func (o *object) Move(x, y int)         { o.x, o.y = x, y }
func (o *object) Resize(w, h int)       { o.w, o.h = w, h }
func (o *object) Show()                 { o.shown = true }
func (o *object) Hide()                 { o.shown = false }
func (o *object) SetColor(c color.RGBA) { o.color = c }
func (o *object) UnsetClip()            { o.clip = nil }
func (o *object) Destroy()              { o.destroyed = true }

// SetClip clips the object to a clip created by the same canvas. Other clips
// are ignored.
func (o *object) SetClip(clip vlist.Clip) {
	c, ok := clip.(*Clip)
	if !ok {
		o.clip = nil
		return
	}
	o.clip = c
}

// visible reports whether the object and every clip above it are shown.
func (o *object) visible() bool {
	if o.destroyed || !o.shown {
		return false
	}
	for c := o.clip; c != nil; c = c.clip {
		if c.destroyed || !c.shown {
			return false
		}
	}
	return true
}

// tint multiplies the object's color with the colors of its clips.
func (o *object) tint() color.RGBA {
	out := o.color
	for c := o.clip; c != nil; c = c.clip {
		out = multiply(out, c.color)
	}
	return out
}

// bounds returns the rectangle the object may draw into after clipping.
func (o *object) bounds() (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = o.x, o.y, o.x+o.w, o.y+o.h
	for c := o.clip; c != nil; c = c.clip {
		x0, y0 = max(x0, c.x), max(y0, c.y)
		x1, y1 = min(x1, c.x+c.w), min(y1, c.y+c.h)
	}
	return x0, y0, x1, y1
}

func multiply(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(a.R) * uint16(b.R) / 255),
		G: uint8(uint16(a.G) * uint16(b.G) / 255),
		B: uint8(uint16(a.B) * uint16(b.B) / 255),
		A: uint8(uint16(a.A) * uint16(b.A) / 255),
	}
}

// Row is a single line of text.
type Row struct {
	object
	text   string
	height int
}

func (r *Row) SetText(text string) { r.text = text }

// MinSize reports one line.
func (r *Row) MinSize() (int, int) { return 0, r.height }

// Text returns the text the row shows.
func (r *Row) Text() string { return r.text }

// Clip is a clipping rectangle.
type Clip struct {
	object
}

type animation struct {
	fn        func() bool
	cancelled bool
}

func (a *animation) Cancel() { a.cancelled = true }
