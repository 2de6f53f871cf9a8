// Package termcanvas renders a vlist.List on a terminal through tcell.
//
// Horizontal coordinates are terminal columns. Vertical coordinates are
// sub-line units, CellHeight of them per terminal line, so the list's
// fractional scroll offsets animate over time instead of jumping a whole
// line per frame.
package termcanvas

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/gdamore/tcell/v2"
)

// DefaultCellHeight is the number of vertical units per terminal line.
const DefaultCellHeight = 16

// Options configures a Canvas. Zero fields take the defaults.
type Options struct {
	CellHeight int              // Vertical units per terminal line
	Padding    int              // Columns left blank on each side of a row
	Clock      func() time.Time // Time source for animations, time.Now by default
}

type rect struct {
	x, y, w, h int
	set        bool
}

// Canvas is a vlist.Canvas drawing on a tcell screen.
type Canvas struct {
	screen tcell.Screen
	theme  internal.Theme
	cellH  int
	pad    int
	clock  func() time.Time
	log    *slog.Logger

	rows  []*Row
	clips []*Clip
	anims []*animation

	highlight        rect
	upAlpha, dnAlpha uint8
	indicators       bool
}

var _ vlist.Canvas = (*Canvas)(nil)

// Open initializes the terminal and returns a canvas on it. A zero theme
// selects the active theme.
func Open(theme internal.Theme, opts Options) (*Canvas, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return New(screen, theme, opts), nil
}

// New returns a canvas on an initialized screen. A zero theme selects the
// active theme.
func New(screen tcell.Screen, theme internal.Theme, opts Options) *Canvas {
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Canvas{
		screen: screen,
		theme:  internal.ResolveTheme(theme),
		cellH:  opts.CellHeight,
		pad:    opts.Padding,
		clock:  opts.Clock,
		log:    internal.GetInternalLogger().With("backend", "term"),
	}
}

func (c *Canvas) NewRow() (vlist.Row, error) {
	r := &Row{object: object{color: opaque}, height: c.cellH}
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
	return c.clock()
}

// Size returns the screen size in canvas units.
func (c *Canvas) Size() (w, h int) {
	cols, lines := c.screen.Size()
	return cols, lines * c.cellH
}

// CellHeight returns the number of vertical units per terminal line.
func (c *Canvas) CellHeight() int {
	return c.cellH
}

// SetHighlight marks the area drawn with the theme's highlight colors.
func (c *Canvas) SetHighlight(x, y, w, h int) {
	c.highlight = rect{x: x, y: y, w: w, h: h, set: true}
}

// SetIndicators shows the scroll arrows, dimmed for the item at index of count.
func (c *Canvas) SetIndicators(index, count int) {
	c.upAlpha, c.dnAlpha = internal.IndicatorAlpha(index, count)
	c.indicators = true
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

// Animating reports whether any animation is live.
func (c *Canvas) Animating() bool {
	return len(c.anims) > 0
}

// Render draws every visible row and shows the result.
func (c *Canvas) Render() {
	c.compact()

	theme := c.theme
	base := tcell.StyleDefault.
		Background(rgb(theme.BackgroundColor.ToRGBA())).
		Foreground(rgb(theme.TextColor.ToRGBA()))
	c.screen.Fill(' ', base)

	hl0, hl1 := -1, -1
	if c.highlight.set {
		hl0, hl1 = c.line(c.highlight.y), c.line(c.highlight.y+c.highlight.h)
		hlStyle := base.Background(rgb(theme.HighlightColor.ToRGBA()))
		for y := hl0; y < hl1; y++ {
			for x := c.highlight.x; x < c.highlight.x+c.highlight.w; x++ {
				c.screen.SetContent(x, y, ' ', nil, hlStyle)
			}
		}
	}

	align := theme.TextAlign()
	for _, r := range c.rows {
		if !r.visible() || r.text == "" {
			continue
		}

		x0, y0, x1, y1 := r.bounds()
		center := r.y + r.h/2
		if center < y0 || center >= y1 {
			continue
		}
		y := c.line(center)

		fg := multiply(theme.TextColor.ToRGBA(), r.tint())
		style := base.Foreground(rgb(fg))
		if y >= hl0 && y < hl1 {
			fg = multiply(theme.HighlightedTextColor.ToRGBA(), r.tint())
			style = base.Background(rgb(theme.HighlightColor.ToRGBA())).Foreground(rgb(fg))
		}

		printLine(c.screen, r.text, r.x+c.pad, r.w-2*c.pad, y, x0, x1, align, style)
	}

	if c.indicators {
		cols, lines := c.screen.Size()
		ind := theme.IndicatorColor.ToRGBA()
		c.screen.SetContent(cols-1, 0, '▲', nil, base.Foreground(rgb(scale(ind, c.upAlpha))))
		c.screen.SetContent(cols-1, lines-1, '▼', nil, base.Foreground(rgb(scale(ind, c.dnAlpha))))
	}

	c.screen.Show()
}

// Pump delivers the pending terminal events. Terminals report key presses
// only, so each press is followed by a release and held keys rely on
// autorepeat. It returns true once the screen has been closed.
func (c *Canvas) Pump(emit func(input.ButtonEvent)) (closed bool) {
	for c.screen.HasPendingEvent() {
		ev := c.screen.PollEvent()
		if ev == nil {
			return true
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			button := keyButton(ev)
			if button == constants.VirtualButtonUnassigned {
				continue
			}
			now := c.Now()
			emit(input.ButtonEvent{Button: button, Pressed: true, Time: now})
			emit(input.ButtonEvent{Button: button, Pressed: false, Time: now})
		}
	}
	return false
}

// Close restores the terminal.
func (c *Canvas) Close() {
	c.screen.Fini()
}

func keyButton(ev *tcell.EventKey) constants.VirtualButton {
	switch ev.Key() {
	case tcell.KeyUp:
		return constants.VirtualButtonUp
	case tcell.KeyDown:
		return constants.VirtualButtonDown
	case tcell.KeyEnter:
		return constants.VirtualButtonA
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return constants.VirtualButtonB
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return constants.VirtualButtonUp
		case 'j':
			return constants.VirtualButtonDown
		case 'q':
			return constants.VirtualButtonB
		case 'm':
			return constants.VirtualButtonMenu
		}
	}
	return constants.VirtualButtonUnassigned
}

// line converts a vertical coordinate to a terminal line.
func (c *Canvas) line(y int) int {
	if y < 0 {
		return -((-y + c.cellH - 1) / c.cellH)
	}
	return y / c.cellH
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

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func scale(c color.RGBA, alpha uint8) color.RGBA {
	return multiply(c, color.RGBA{R: alpha, G: alpha, B: alpha, A: 255})
}
