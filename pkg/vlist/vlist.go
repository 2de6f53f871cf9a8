// Package vlist provides a virtualized text list for embedded Linux devices.
//
// A List renders an arbitrarily long sequence of text items with a small,
// fixed pool of row visuals: one row per visible line plus a spare row above
// and below the viewport. Scrolling is inertial. ScrollStart accelerates the
// content in a direction, ScrollStop decelerates it so it comes to rest
// exactly on an item boundary, and on every animation frame the rows that
// left the viewport are relabelled with the items that entered it instead of
// being recreated.
//
// The rendering toolkit is supplied by the host through the Canvas interface.
// The platform/sdlcanvas and platform/termcanvas packages provide SDL2 and
// terminal implementations.
//
// A List is not safe for concurrent use; every call must come from the
// goroutine that drives its Canvas.
package vlist

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
)

// Options configures a List. Zero fields take the defaults.
type Options struct {
	ScrollSpeed      float64      // Initial scroll speed in pixels per millisecond
	ScrollAccel      float64      // Scroll acceleration in pixels per square millisecond
	StrictInvariants bool         // Panic on bookkeeping violations instead of re-anchoring
	Logger           *slog.Logger // Diagnostics sink, defaults to the internal logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ScrollSpeed:      constants.DefaultScrollSpeed,
		ScrollAccel:      constants.DefaultScrollAccel,
		StrictInvariants: constants.IsDevMode(),
		Logger:           internal.GetInternalLogger(),
	}
}

// Selection describes the selected item. Index is -1 and Text and Data are
// zero when the list is empty.
type Selection struct {
	Text  string
	Data  any
	Index int
}

// Binding is a snapshot of one pool slot, in display order.
type Binding struct {
	Index int    // content index, -1 for a blank slot
	Text  string // text shown by the slot
}

type geometry struct {
	x, y, w, h int
}

// List is the virtualized list widget.
type List struct {
	canvas Canvas
	clip   Clip
	itemH  int
	log    *slog.Logger
	strict bool

	contents contentStore
	pool     objectPool
	bound    int // items whose slot back-reference is set

	firstUsed int // pool position of the first bound slot, -1 without a window
	lastUsed  int // pool position of the last bound slot, -1 without a window

	selected int // content index of the selection, -1 if none
	notified int // last index handed to the selection handlers
	handlers []func(Selection)

	geometry geometry
	visible  bool

	offset   float64
	scroll   scrollState
	anim     Animation
	settings scrollSettings

	frozen    int
	dirty     bool
	destroyed bool
}

// New creates a list on canvas. The row template is measured once to learn the
// item height; on failure New returns a *ConstructionError wrapping
// ErrNoTheme or ErrNoItemSize and a nil list.
func New(canvas Canvas, options Options) (*List, error) {
	defaults := DefaultOptions()
	if options.ScrollSpeed <= 0 {
		options.ScrollSpeed = defaults.ScrollSpeed
	}
	if options.ScrollAccel <= 0 {
		options.ScrollAccel = defaults.ScrollAccel
	}
	if options.Logger == nil {
		options.Logger = defaults.Logger
	}
	options.StrictInvariants = options.StrictInvariants || defaults.StrictInvariants

	if canvas == nil {
		return nil, &ConstructionError{Op: "load_theme", Err: fmt.Errorf("%w: no canvas", ErrNoTheme)}
	}

	itemH, err := measureItem(canvas)
	if err != nil {
		options.Logger.Error("Failed to create list", "error", err)
		return nil, err
	}

	clip := canvas.NewClip()
	clip.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	l := &List{
		canvas:    canvas,
		clip:      clip,
		itemH:     itemH,
		log:       options.Logger,
		strict:    options.StrictInvariants,
		firstUsed: -1,
		lastUsed:  -1,
		selected:  -1,
		notified:  -1,
		settings: scrollSettings{
			speed: options.ScrollSpeed,
			accel: options.ScrollAccel,
		},
	}

	l.log.Debug("List created", "item_height", itemH)

	return l, nil
}

func measureItem(canvas Canvas) (int, error) {
	sample, err := canvas.NewRow()
	if err != nil {
		return 0, &ConstructionError{Op: "load_theme", Err: fmt.Errorf("%w: %w", ErrNoTheme, err)}
	}
	if sample == nil {
		return 0, &ConstructionError{Op: "load_theme", Err: ErrNoTheme}
	}

	_, h := sample.MinSize()
	sample.Destroy()

	if h < 1 {
		return 0, &ConstructionError{Op: "measure_item", Err: fmt.Errorf("%w: measured %d", ErrNoItemSize, h)}
	}

	return h, nil
}

func (l *List) alive() bool {
	return l != nil && !l.destroyed
}

// Append adds an item at the end of the list. Appending to a nil or
// destroyed list does nothing.
func (l *List) Append(text string, data any, flags AppendFlags) {
	if !l.alive() {
		return
	}

	thaw := l.Freeze()
	defer thaw()

	l.contents.append(text, data, flags)
	l.requestRecompute()
}

// Count returns the number of items.
func (l *List) Count() int {
	if !l.alive() {
		return 0
	}
	return l.contents.len()
}

// Selected returns the selected item.
func (l *List) Selected() Selection {
	if !l.alive() || !l.contents.valid(l.selected) {
		return Selection{Index: -1}
	}
	item := l.contents.at(l.selected)
	return Selection{Text: item.text, Data: item.data, Index: l.selected}
}

// SelectedIndex returns the index of the selected item, -1 if none.
func (l *List) SelectedIndex() int {
	return l.Selected().Index
}

// OnSelectionChanged registers fn to be called whenever the selected index
// changes. Handlers run synchronously on the canvas goroutine, at most once
// per call into the list or animation frame.
func (l *List) OnSelectionChanged(fn func(Selection)) {
	if !l.alive() || fn == nil {
		return
	}
	l.handlers = append(l.handlers, fn)
}

// ItemHeight returns the row height measured from the theme.
func (l *List) ItemHeight() int {
	if !l.alive() {
		return 0
	}
	return l.itemH
}

// Offset returns the fractional scroll offset of the rows, within one item
// height of rest.
func (l *List) Offset() float64 {
	if !l.alive() {
		return 0
	}
	return l.offset
}

// Bindings returns what each pool slot displays, in display order.
func (l *List) Bindings() []Binding {
	if !l.alive() {
		return nil
	}

	out := make([]Binding, l.pool.len())
	for pos := range out {
		s := l.pool.at(pos)
		out[pos] = Binding{Index: s.content}
		if s.content != blank {
			out[pos].Text = l.contents.at(s.content).text
		}
	}
	return out
}

// Freeze defers window recomputation until the returned thaw is called.
// Freezes nest; the work requested while frozen runs once, when the
// outermost thaw returns. Calling thaw more than once has no effect.
func (l *List) Freeze() (thaw func()) {
	if !l.alive() {
		return func() {}
	}

	l.frozen++
	done := false

	return func() {
		if done {
			return
		}
		done = true
		l.frozen--

		if l.frozen > 0 || l.destroyed {
			return
		}

		if l.dirty {
			l.dirty = false
			l.recompute()
		}
		l.verify()
		l.layout()
		l.notifySelection()
	}
}

func (l *List) requestRecompute() {
	if l.frozen > 0 {
		l.dirty = true
		return
	}
	l.recompute()
}

func (l *List) notifySelection() {
	if l.selected == l.notified {
		return
	}
	l.notified = l.selected

	sel := l.Selected()
	l.log.Debug("Selection changed", "index", sel.Index)

	for _, fn := range l.handlers {
		fn(sel)
	}
}

// Destroy stops any scroll in progress and releases every visual. The list
// must not be used afterwards; further calls are no-ops.
func (l *List) Destroy() {
	if !l.alive() {
		return
	}

	l.frozen++

	if l.anim != nil {
		l.anim.Cancel()
		l.anim = nil
	}
	l.scroll = scrollState{}

	for pos := 0; pos < l.pool.len(); pos++ {
		l.pool.at(pos).content = blank
	}
	l.contents.clear()
	l.bound = 0

	for _, s := range l.pool.slots {
		s.row.Hide()
		s.row.UnsetClip()
		s.row.Destroy()
	}
	l.pool.clear()
	l.firstUsed, l.lastUsed = -1, -1
	l.selected = -1

	l.clip.Destroy()
	l.handlers = nil
	l.destroyed = true

	l.log.Debug("List destroyed")
}

// SetLogPath sets the full path for the log file, including filename.
// Call before the first list is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for list diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ParseLogLevel converts "debug", "info", "warn" or "error" to a slog level.
func ParseLogLevel(level string) slog.Level {
	return internal.ParseLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
