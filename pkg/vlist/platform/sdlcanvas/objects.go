package sdlcanvas

import (
	"image/color"

	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/veandco/go-sdl2/sdl"
)

var opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type object struct {
	rect      sdl.Rect
	shown     bool
	color     color.RGBA
	clip      *Clip
	destroyed bool
}

func (o *object) Move(x, y int)         { o.rect.X, o.rect.Y = int32(x), int32(y) }
func (o *object) Resize(w, h int)       { o.rect.W, o.rect.H = int32(w), int32(h) }
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
		out = color.RGBA{
			R: uint8(uint16(out.R) * uint16(c.color.R) / 255),
			G: uint8(uint16(out.G) * uint16(c.color.G) / 255),
			B: uint8(uint16(out.B) * uint16(c.color.B) / 255),
			A: uint8(uint16(out.A) * uint16(c.color.A) / 255),
		}
	}
	return out
}

// bounds returns the visible part of the object, false if nothing shows.
func (o *object) bounds() (sdl.Rect, bool) {
	r := o.rect
	for c := o.clip; c != nil; c = c.clip {
		var ok bool
		if r, ok = r.Intersect(&c.rect); !ok {
			return sdl.Rect{}, false
		}
	}
	return r, !r.Empty()
}

// Row is a text label rendered with the theme font.
type Row struct {
	object
	text   string
	height int
}

func (r *Row) SetText(text string) { r.text = text }

// MinSize reports the theme row height and no minimum width.
func (r *Row) MinSize() (int, int) { return 0, r.height }

// Clip is a clipping rectangle.
type Clip struct {
	object
}

type animation struct {
	fn        func() bool
	cancelled bool
}

func (a *animation) Cancel() { a.cancelled = true }
