package vlist

import (
	"image/color"
	"time"
)

// Object is the capability set shared by every visual the list drives: its
// rows, its clip rectangle and the list itself.
type Object interface {
	Move(x, y int)
	Resize(w, h int)
	Show()
	Hide()
	SetColor(c color.RGBA)
	SetClip(clip Clip)
	UnsetClip()
	Destroy()
}

// Row is one pool visual rendered from the theme's row template.
type Row interface {
	Object
	SetText(text string)
	// MinSize reports the rendered minimum size of the row template.
	MinSize() (w, h int)
}

// Clip is a clipping rectangle. Objects clipped to it inherit its
// visibility and color.
type Clip interface {
	Object
}

// Animation is a scheduled per-frame callback.
type Animation interface {
	Cancel()
}

// Canvas is the rendering toolkit the list is built on. All calls happen on
// the goroutine that owns the canvas.
type Canvas interface {
	// NewRow creates a row bound to the themed template. It fails when the
	// theme cannot be loaded.
	NewRow() (Row, error)
	NewClip() Clip
	// Animate calls fn once per frame until fn returns false or the
	// animation is cancelled.
	Animate(fn func() bool) Animation
	// Now returns the time of the clock driving Animate.
	Now() time.Time
}
