package vlist

import (
	"math"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

// Direction is a scroll direction. Down moves the selection towards later
// items, Up towards earlier ones.
type Direction int

const (
	None Direction = 0
	Up   Direction = -1
	Down Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

func normalize(d Direction) Direction {
	switch {
	case d > 0:
		return Down
	case d < 0:
		return Up
	default:
		return None
	}
}

type stopPhase int

const (
	stopNone stopPhase = iota
	stopChecking
)

// scrollState holds the kinematic parameters of the motion in progress.
// Position and velocity are in pixels and pixels per millisecond, measured
// from t0.
type scrollState struct {
	dir   Direction
	t0    time.Time
	y0    float64
	y1    float64 // rest position while stopping
	v0    float64
	accel float64
	stop  stopPhase
}

type scrollSettings struct {
	speed float64
	accel float64
}

// position evaluates the motion at now.
func (s *scrollState) position(now time.Time) (y, v float64) {
	t := float64(now.Sub(s.t0)) / float64(time.Millisecond)
	y = s.y0 + s.v0*t + s.accel*t*t/2
	v = s.v0 + s.accel*t
	return y, v
}

func (s *scrollState) idle() bool {
	return s.dir == None
}

// Scrolling reports whether the list is in motion.
func (l *List) Scrolling() bool {
	return l.alive() && !l.scroll.idle()
}

// canMove reports whether the selection has a neighbour in dir.
func (l *List) canMove(dir Direction) bool {
	if dir == Down {
		return l.contents.next(l.selected) >= 0
	}
	return l.contents.prev(l.selected) >= 0
}

// ScrollStart accelerates the list in dir. It does nothing if the list is
// already accelerating that way or the selection has no neighbour in dir.
func (l *List) ScrollStart(dir Direction) {
	if !l.alive() {
		return
	}

	dir = normalize(dir)
	if dir == None {
		return
	}
	if l.scroll.dir == dir && l.scroll.stop == stopNone {
		return
	}
	if l.selected < 0 || !l.canMove(dir) {
		return
	}

	thaw := l.Freeze()
	defer thaw()

	now := l.canvas.Now()
	y := l.offset
	if !l.scroll.idle() {
		y, _ = l.scroll.position(now)
	}

	y, ok := l.fixPosition(y)
	if !ok {
		l.endScroll(true)
		return
	}

	l.scroll = scrollState{
		dir:   dir,
		t0:    now,
		y0:    y,
		v0:    float64(dir) * l.settings.speed,
		accel: float64(dir) * l.settings.accel,
	}
	l.offset = y

	l.log.Debug("Scroll started", "direction", dir.String(), "offset", y)

	l.ensureAnimation()
}

// ScrollStop decelerates a scroll in dir so it comes to rest on the next
// item boundary. It does nothing unless the list is accelerating in dir.
func (l *List) ScrollStop(dir Direction) {
	if !l.alive() {
		return
	}

	dir = normalize(dir)
	if dir == None || l.scroll.dir != dir || l.scroll.stop != stopNone {
		return
	}

	thaw := l.Freeze()
	defer thaw()

	if l.selected < 0 {
		l.endScroll(true)
		return
	}

	now := l.canvas.Now()
	y, v := l.scroll.position(now)

	y, ok := l.fixPosition(y)
	if !ok || !l.canMove(dir) {
		l.log.Debug("Scroll stopped at boundary", "direction", dir.String(), "selected", l.selected)
		l.endScroll(true)
		return
	}

	target := float64(dir) * float64(l.itemH)
	if float64(dir)*v <= constants.FloatPrecision {
		v = float64(dir) * l.settings.speed
	}

	l.scroll = scrollState{
		dir:   dir,
		t0:    now,
		y0:    y,
		y1:    target,
		v0:    v,
		accel: -v * v / (2 * (target - y)),
		stop:  stopChecking,
	}
	l.offset = y

	l.log.Debug("Scroll stopping", "direction", dir.String(), "offset", y, "target", target, "accel", l.scroll.accel)
}

// tick advances the motion by one frame. It returns false once the list has
// come to rest.
func (l *List) tick() bool {
	if !l.alive() {
		return false
	}

	thaw := l.Freeze()
	defer thaw()

	if l.scroll.idle() {
		l.anim = nil
		return false
	}

	now := l.canvas.Now()
	y, v := l.scroll.position(now)
	s := &l.scroll

	if math.Abs(v) < constants.FloatPrecision && math.Abs(s.accel) < constants.FloatPrecision {
		l.endScroll(false)
		return false
	}

	if s.stop == stopChecking && float64(s.dir)*v < constants.FloatPrecision {
		l.fixPosition(s.y1)
		l.endScroll(false)
		return false
	}

	if math.Abs(y) >= float64(l.itemH) {
		rest, ok := l.fixPosition(y)
		if !ok {
			l.log.Debug("Scroll exhausted", "direction", s.dir.String(), "selected", l.selected)
			l.endScroll(false)
			return false
		}
		if s.stop == stopChecking {
			s.y1 -= y - rest
		}
		s.t0, s.y0, s.v0 = now, rest, v
		y = rest
	}

	l.offset = y
	return true
}

// fixPosition shifts the window by the whole items contained in y and
// returns the remaining fraction of an item. It reports false if the list
// ran out of items before the full shift.
func (l *List) fixPosition(y float64) (float64, bool) {
	h := float64(l.itemH)
	items := int(math.Abs(y) / h)
	if items == 0 {
		return y, true
	}

	dir := Down
	if y < 0 {
		dir = Up
	}
	rest := y - float64(dir)*float64(items)*h

	var moved int
	if items > l.pool.len() {
		moved = l.jump(dir, items)
	} else {
		moved = l.rotate(dir, items)
	}

	if moved < items {
		return 0, false
	}
	return rest, true
}

// endScroll brings the list to rest on the current item. cancel also
// cancels the scheduled animation; a tick ending the motion leaves that to
// its own return value.
func (l *List) endScroll(cancel bool) {
	if cancel && l.anim != nil {
		l.anim.Cancel()
	}
	l.anim = nil
	l.scroll = scrollState{}
	l.offset = 0
}

func (l *List) ensureAnimation() {
	if l.anim != nil {
		return
	}
	l.anim = l.canvas.Animate(l.tick)
}
