package vlist

import (
	"image/color"
	"math"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

var _ Object = (*List)(nil)

// Move places the top-left corner of the list at x, y.
func (l *List) Move(x, y int) {
	if !l.alive() {
		return
	}

	thaw := l.Freeze()
	defer thaw()

	l.geometry.x, l.geometry.y = x, y
	l.clip.Move(x, y)
}

// Resize sets the size of the list. The pool holds one row per whole item
// that fits in h, at least one, plus a spare row above and below.
func (l *List) Resize(w, h int) {
	if !l.alive() {
		return
	}

	thaw := l.Freeze()
	defer thaw()

	rows := max(h/l.itemH, constants.SelectedItemOffset)
	want := rows + constants.SpareItems

	if l.geometry.w == w && l.geometry.h == h && l.pool.len() == want {
		return
	}
	l.geometry.w, l.geometry.h = w, h
	l.clip.Resize(w, rows*l.itemH)

	if l.pool.len() == want {
		return
	}

	l.pool.linearize(func(content, slot int) {
		l.contents.at(content).slot = slot
	})

	for l.pool.len() > want {
		s := l.pool.pop()
		if s.content != blank {
			l.contents.at(s.content).slot = noSlot
			l.bound--
		}
		s.row.Hide()
		s.row.UnsetClip()
		s.row.Destroy()
	}
	if l.lastUsed >= want {
		l.lastUsed = want - 1
	}

	for l.pool.len() < want {
		row, err := l.canvas.NewRow()
		if err != nil {
			l.log.Error("Failed to create row", "error", err)
			break
		}
		row.SetText("")
		row.Resize(w, l.itemH)
		row.SetClip(l.clip)
		row.Show()
		l.pool.push(row)
	}

	l.log.Debug("Pool resized", "rows", rows, "slots", l.pool.len())

	l.requestRecompute()
}

// Geometry returns the position and size last given to Move and Resize.
func (l *List) Geometry() (x, y, w, h int) {
	if !l.alive() {
		return 0, 0, 0, 0
	}
	g := l.geometry
	return g.x, g.y, g.w, g.h
}

// Show, Hide, SetColor, SetClip and UnsetClip act on the clip every row is
// clipped to.

func (l *List) Show() {
	if !l.alive() {
		return
	}
	l.visible = true
	l.clip.Show()
}

func (l *List) Hide() {
	if !l.alive() {
		return
	}
	l.visible = false
	l.clip.Hide()
}

// Visible reports whether the list is shown.
func (l *List) Visible() bool {
	return l.alive() && l.visible
}

func (l *List) SetColor(c color.RGBA) {
	if !l.alive() {
		return
	}
	l.clip.SetColor(c)
}

func (l *List) SetClip(clip Clip) {
	if !l.alive() {
		return
	}
	l.clip.SetClip(clip)
}

func (l *List) UnsetClip() {
	if !l.alive() {
		return
	}
	l.clip.UnsetClip()
}

// layout pushes every row's position to the canvas. Position 0 sits one item
// above the viewport.
func (l *List) layout() {
	g := l.geometry
	shift := int(math.Round(l.offset))

	for pos := 0; pos < l.pool.len(); pos++ {
		row := l.pool.at(pos).row
		row.Move(g.x, g.y+(pos-constants.SelectedItemOffset)*l.itemH-shift)
		row.Resize(g.w, l.itemH)
	}
}
