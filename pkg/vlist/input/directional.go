// Package input turns raw button press and release events into the
// start/stop signals the list's scroll kinematics expect.
package input

import (
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

// Direction represents a vertical scroll direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// VirtualButton returns the VirtualButton constant for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	default:
		return constants.VirtualButtonUnassigned
	}
}

// DirectionFor maps a virtual button to a direction, DirectionNone for
// anything that is not up or down.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	default:
		return DirectionNone
	}
}

type heldState struct {
	active     bool
	released   bool
	releasedAt time.Time
}

// DirectionalInput tracks held up/down buttons and reports a single start when
// a button goes down and a single stop once it has stayed up for the release
// delay. Keyboard autorepeat delivers release/press pairs while a key is held;
// the delay swallows them so the list keeps scrolling.
type DirectionalInput struct {
	held         map[Direction]*heldState
	releaseDelay time.Duration

	onStart func(Direction)
	onStop  func(Direction)
}

// NewDirectionalInput creates a DirectionalInput with the default release delay.
func NewDirectionalInput(onStart, onStop func(Direction)) *DirectionalInput {
	return NewDirectionalInputWithDelay(constants.DefaultKeyReleaseDelay, onStart, onStop)
}

// NewDirectionalInputWithDelay creates a DirectionalInput with a custom
// release delay. A zero delay stops on the release itself.
func NewDirectionalInputWithDelay(delay time.Duration, onStart, onStop func(Direction)) *DirectionalInput {
	return &DirectionalInput{
		held: map[Direction]*heldState{
			DirectionUp:   {},
			DirectionDown: {},
		},
		releaseDelay: delay,
		onStart:      onStart,
		onStop:       onStop,
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}

	state := d.held[dir]

	if held {
		if state.active {
			state.released = false
			return true
		}
		state.active = true
		state.released = false
		if d.onStart != nil {
			d.onStart(dir)
		}
		return true
	}

	if !state.active {
		return true
	}

	state.released = true
	state.releasedAt = now
	if d.releaseDelay <= 0 {
		d.stop(dir, state)
	}

	return true
}

// Update fires the stops whose release delay has elapsed. Call this every frame.
func (d *DirectionalInput) Update(now time.Time) {
	for _, dir := range []Direction{DirectionUp, DirectionDown} {
		state := d.held[dir]
		if state.active && state.released && now.Sub(state.releasedAt) >= d.releaseDelay {
			d.stop(dir, state)
		}
	}
}

// IsHeld returns true if the direction is active, including a pending release.
func (d *DirectionalInput) IsHeld(dir Direction) bool {
	state, ok := d.held[dir]
	return ok && state.active
}

// Reset clears all held directions without firing stops.
func (d *DirectionalInput) Reset() {
	for _, state := range d.held {
		*state = heldState{}
	}
}

func (d *DirectionalInput) stop(dir Direction, state *heldState) {
	state.active = false
	state.released = false
	if d.onStop != nil {
		d.onStop(dir)
	}
}
