//go:build linux

package evdev

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
	"github.com/BrandonKowalski/vlist/pkg/vlist/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Key values reported by EV_KEY events.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// DefaultKeymap maps keyboard and gamepad codes to virtual buttons.
var DefaultKeymap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:        constants.VirtualButtonUp,
	evdev.KEY_DOWN:      constants.VirtualButtonDown,
	evdev.BTN_DPAD_UP:   constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN: constants.VirtualButtonDown,
	evdev.KEY_ENTER:     constants.VirtualButtonA,
	evdev.BTN_SOUTH:     constants.VirtualButtonA,
	evdev.KEY_ESC:       constants.VirtualButtonB,
	evdev.BTN_EAST:      constants.VirtualButtonB,
	evdev.KEY_MENU:      constants.VirtualButtonMenu,
	evdev.BTN_MODE:      constants.VirtualButtonMenu,
}

// device is the part of *evdev.InputDevice the reader uses.
type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader delivers button events from one input device.
type Reader struct {
	path   string
	keymap map[evdev.EvCode]constants.VirtualButton
	dev    device

	running *atomic.Bool
	closed  *atomic.Bool
}

// Open opens the input device at path, e.g. /dev/input/event1.
func Open(path string) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)

	return newReader(path, dev), nil
}

func newReader(path string, dev device) *Reader {
	return &Reader{
		path:    path,
		keymap:  DefaultKeymap,
		dev:     dev,
		running: atomic.NewBool(false),
		closed:  atomic.NewBool(false),
	}
}

// SetKeymap replaces the code to button mapping. Call before Run.
func (r *Reader) SetKeymap(keymap map[evdev.EvCode]constants.VirtualButton) {
	r.keymap = keymap
}

// Run forwards button events to events until ctx is cancelled or the device
// fails. Closing the reader also ends Run. The device is closed when Run
// returns.
func (r *Reader) Run(ctx context.Context, events chan<- input.ButtonEvent) error {
	if !r.running.CompareAndSwap(false, true) {
		return errors.New("evdev reader already running")
	}
	defer r.running.Store(false)
	defer func() { _ = r.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = r.Close() })
	defer stop()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.closed.Load() {
				return ctx.Err()
			}
			return fmt.Errorf("read input device %s: %w", r.path, err)
		}

		bev, ok := Translate(ev, r.keymap, time.Now())
		if !ok {
			continue
		}

		select {
		case events <- bev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases the device. It is safe to call more than once.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.dev.Close()
}

// Translate converts a raw key event to a button event. Autorepeat becomes
// another press. Non-key events and unmapped codes report false.
func Translate(ev *evdev.InputEvent, keymap map[evdev.EvCode]constants.VirtualButton, now time.Time) (input.ButtonEvent, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return input.ButtonEvent{}, false
	}

	button, ok := keymap[ev.Code]
	if !ok {
		return input.ButtonEvent{}, false
	}

	switch ev.Value {
	case keyPressed, keyRepeated:
		return input.ButtonEvent{Button: button, Pressed: true, Time: now}, true
	case keyReleased:
		return input.ButtonEvent{Button: button, Pressed: false, Time: now}, true
	default:
		return input.ButtonEvent{}, false
	}
}
