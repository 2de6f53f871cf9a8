// Package sdlcanvas renders a vlist.List with SDL2: rows are TTF labels,
// clips are renderer clip rectangles and animations run once per frame of
// the host loop.
package sdlcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Canvas is a vlist.Canvas drawing into an SDL window.
type Canvas struct {
	window  *Window
	theme   internal.Theme
	font    *ttf.Font
	fontErr error
	rowH    int
	log     *slog.Logger

	rows  []*Row
	clips []*Clip
	anims []*animation
	text  *textCache

	highlight   sdl.Rect
	up, down    *arrow
	mouseButton constants.VirtualButton
	controllers []*sdl.GameController
}

var _ vlist.Canvas = (*Canvas)(nil)

func newCanvas(window *Window, theme internal.Theme) *Canvas {
	c := &Canvas{
		window: window,
		theme:  theme,
		text:   newTextCache(defaultTextCacheSize),
		log:    internal.GetInternalLogger().With("backend", "sdl"),
	}

	c.font, c.fontErr = openFont(theme)
	if c.fontErr != nil {
		c.log.Error("Failed to load theme font", "path", theme.FontPath, "error", c.fontErr)
	} else {
		c.rowH = int(theme.RowHeight)
		if c.rowH <= 0 {
			c.rowH = c.font.Height() + int(theme.Padding.Vertical())
		}
	}

	size := max(theme.FontSize, 16)
	var err error
	if c.up, err = newArrow(window.Renderer, constants.ArrowUpSVG, size); err != nil {
		c.log.Warn("Failed to create up indicator", "error", err)
	}
	if c.down, err = newArrow(window.Renderer, constants.ArrowDownSVG, size); err != nil {
		c.log.Warn("Failed to create down indicator", "error", err)
	}

	return c
}

func openFont(theme internal.Theme) (*ttf.Font, error) {
	if theme.FontPath == "" {
		return nil, errors.New("theme has no font_path")
	}
	font, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}
	return font, nil
}

func (c *Canvas) NewRow() (vlist.Row, error) {
	if c.fontErr != nil {
		return nil, c.fontErr
	}
	r := &Row{object: object{color: opaque}, height: c.rowH}
	c.rows = append(c.rows, r)
	return r, nil
}

func (c *Canvas) NewClip() vlist.Clip {
	clip := &Clip{object: object{color: opaque}}
	c.clips = append(c.clips, clip)
	return clip
}

func (c *Canvas) Animate(fn func() bool) vlist.Animation {
	a := &animation{fn: fn}
	c.anims = append(c.anims, a)
	return a
}

func (c *Canvas) Now() time.Time {
	return time.Now()
}

// Size returns the window size in pixels.
func (c *Canvas) Size() (w, h int) {
	ww, wh := c.window.Size()
	return int(ww), int(wh)
}

// SetHighlight marks the area drawn with the theme's highlight colors.
func (c *Canvas) SetHighlight(x, y, w, h int) {
	c.highlight = sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
}

// SetIndicators shows the scroll arrows in the right margin, dimmed for the
// item at index of count.
func (c *Canvas) SetIndicators(index, count int) {
	upAlpha, downAlpha := internal.IndicatorAlpha(index, count)
	w, h := c.window.Size()

	if c.up != nil {
		c.up.alpha = upAlpha
		c.up.rect.X, c.up.rect.Y = w-c.up.rect.W-8, 8
	}
	if c.down != nil {
		c.down.alpha = downAlpha
		c.down.rect.X, c.down.rect.Y = w-c.down.rect.W-8, h-c.down.rect.H-8
	}
}

// Frame runs every live animation once.
func (c *Canvas) Frame() {
	for _, a := range c.anims {
		if a.cancelled {
			continue
		}
		if !a.fn() {
			a.cancelled = true
		}
	}

	live := c.anims[:0]
	for _, a := range c.anims {
		if !a.cancelled {
			live = append(live, a)
		}
	}
	c.anims = live
}

// Render draws the background, the highlight, every visible row and the
// indicators, then presents the frame.
func (c *Canvas) Render() {
	c.compact()

	renderer := c.window.Renderer
	theme := c.theme

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()
	c.window.renderBackground()

	if !c.highlight.Empty() {
		hl := theme.HighlightColor
		renderer.SetDrawColor(hl.R, hl.G, hl.B, hl.A)
		renderer.FillRect(&c.highlight)
	}

	for _, r := range c.rows {
		if r.visible() && r.text != "" {
			c.drawRow(r)
		}
	}
	renderer.SetClipRect(nil)

	ind := theme.IndicatorColor
	tint := sdl.Color{R: ind.R, G: ind.G, B: ind.B, A: ind.A}
	c.up.draw(renderer, tint)
	c.down.draw(renderer, tint)

	c.window.Present()
}

func (c *Canvas) drawRow(r *Row) {
	area, ok := r.bounds()
	if !ok {
		return
	}

	texture, err := c.label(r.text)
	if err != nil {
		c.log.Error("Failed to render row text", "text", r.text, "error", err)
		return
	}

	_, _, tw, th, err := texture.Query()
	if err != nil {
		return
	}

	pad := c.theme.Padding
	avail := r.rect.W - pad.Horizontal()
	if avail <= 0 {
		return
	}
	w := min(tw, avail)

	x := r.rect.X + pad.Left
	switch c.theme.TextAlign() {
	case constants.TextAlignCenter:
		x += (avail - w) / 2
	case constants.TextAlignRight:
		x += avail - w
	}
	y := r.rect.Y + (r.rect.H-th)/2

	fg := c.theme.TextColor.ToRGBA()
	center := sdl.Point{X: r.rect.X + r.rect.W/2, Y: r.rect.Y + r.rect.H/2}
	if center.InRect(&c.highlight) {
		fg = c.theme.HighlightedTextColor.ToRGBA()
	}
	fg = modulate(fg, r.tint())

	texture.SetColorMod(fg.R, fg.G, fg.B)
	texture.SetAlphaMod(fg.A)

	renderer := c.window.Renderer
	renderer.SetClipRect(&area)
	renderer.Copy(texture, &sdl.Rect{W: w, H: th}, &sdl.Rect{X: x, Y: y, W: w, H: th})
}

// label returns the white texture for text, rendering it on a cache miss.
func (c *Canvas) label(text string) (*sdl.Texture, error) {
	if texture := c.text.get(text); texture != nil {
		return texture, nil
	}

	surface, err := c.font.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := c.window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	c.text.put(text, texture)
	return texture, nil
}

func (c *Canvas) compact() {
	rows := c.rows[:0]
	for _, r := range c.rows {
		if !r.destroyed {
			rows = append(rows, r)
		}
	}
	c.rows = rows

	clips := c.clips[:0]
	for _, cl := range c.clips {
		if !cl.destroyed {
			clips = append(clips, cl)
		}
	}
	c.clips = clips
}

func modulate(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(a.R) * uint16(b.R) / 255),
		G: uint8(uint16(a.G) * uint16(b.G) / 255),
		B: uint8(uint16(a.B) * uint16(b.B) / 255),
		A: uint8(uint16(a.A) * uint16(b.A) / 255),
	}
}
