package input

import (
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

// ButtonEvent is a press or release of a virtual button, as delivered by a
// backend or an input device reader. Autorepeat arrives as repeated presses.
type ButtonEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Time    time.Time
}

// Handle feeds a button event into the tracker. It returns false for
// buttons that are not directional.
func (d *DirectionalInput) Handle(ev ButtonEvent) bool {
	return d.SetHeld(ev.Button, ev.Pressed, ev.Time)
}
