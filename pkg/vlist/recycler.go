package vlist

import (
	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

// bind points the slot at pool position pos to content (or blank), keeping
// the item's back-reference in step.
func (l *List) bind(pos, content int) {
	s := l.pool.at(pos)
	if s.content == content {
		return
	}

	if s.content != blank {
		l.contents.at(s.content).slot = noSlot
		l.bound--
	}

	s.content = content

	if content == blank {
		s.row.SetText("")
		return
	}

	item := l.contents.at(content)
	item.slot = l.pool.physical(pos)
	l.bound++
	s.row.SetText(item.text)
}

func (l *List) unbindAll() {
	for pos := 0; pos < l.pool.len(); pos++ {
		l.bind(pos, blank)
	}
	l.firstUsed, l.lastUsed = -1, -1
}

// fill binds slots from pool position pos and content index c onwards, in
// lock-step, until either runs out.
func (l *List) fill(pos, c int) {
	for ; pos < l.pool.len() && l.contents.valid(c); pos, c = pos+1, c+1 {
		l.bind(pos, c)
		l.lastUsed = pos
	}
}

// recompute extends the window over newly available slots and content or,
// without a window, establishes one around the selection. Slots left outside
// the window are blanked.
func (l *List) recompute() {
	if l.contents.len() == 0 {
		l.unbindAll()
		l.selected = -1
		return
	}

	if l.selected < 0 {
		l.selected = 0
	}

	if l.pool.len() == 0 {
		return
	}

	if l.lastUsed >= 0 {
		last := l.pool.at(l.lastUsed).content
		l.fill(l.lastUsed+1, last+1)
	} else {
		back := min(l.selected, constants.SelectedItemOffset)
		l.firstUsed = constants.SelectedItemOffset - back
		l.fill(l.firstUsed, l.selected-back)
		l.log.Debug("Window established", "selected", l.selected, "first_used", l.firstUsed, "last_used", l.lastUsed)
	}

	for pos := 0; pos < l.firstUsed; pos++ {
		l.bind(pos, blank)
	}
	for pos := l.lastUsed + 1; pos < l.pool.len(); pos++ {
		l.bind(pos, blank)
	}
}

// rotateUp advances the window by one item: the first slot is relabelled
// with the item after the window and moved to the tail.
func (l *List) rotateUp() bool {
	next := l.contents.next(l.selected)
	if l.selected < 0 || next < 0 {
		return false
	}

	n := l.pool.len()
	if n == 0 || l.lastUsed < 0 {
		l.selected = next
		return true
	}

	after := l.pool.at(l.lastUsed).content + 1
	if l.lastUsed == n-1 && l.contents.valid(after) {
		l.bind(0, after)
	} else {
		l.bind(0, blank)
		l.lastUsed--
	}
	l.pool.demoteHead()

	l.firstUsed = 0
	l.selected = next

	return true
}

// rotateDown moves the window back by one item: the last slot is relabelled
// with the item before the window and promoted to the head.
func (l *List) rotateDown() bool {
	prev := l.contents.prev(l.selected)
	if l.selected < 0 || prev < 0 {
		return false
	}

	n := l.pool.len()
	if n == 0 || l.firstUsed < 0 {
		l.selected = prev
		return true
	}

	before := l.contents.prev(l.pool.at(l.firstUsed).content)
	if l.lastUsed < n-1 {
		l.lastUsed++
	}
	l.bind(n-1, before)
	l.pool.promoteTail()

	if before < 0 {
		l.firstUsed = 1
	} else {
		l.firstUsed = 0
	}
	l.selected = prev

	return true
}

// rotate shifts the window count items in dir, one item at a time. It
// returns how many items it actually moved.
func (l *List) rotate(dir Direction, count int) int {
	moved := 0
	for ; moved < count; moved++ {
		var ok bool
		if dir == Down {
			ok = l.rotateUp()
		} else {
			ok = l.rotateDown()
		}
		if !ok {
			break
		}
	}

	l.log.Debug("Rotated window", "direction", dir.String(), "requested", count, "moved", moved, "selected", l.selected)

	return moved
}

// jump moves the selection count items in dir and rebuilds the window around
// it, clamping at the ends of the list. It returns how many items it moved.
func (l *List) jump(dir Direction, count int) int {
	if l.selected < 0 {
		return 0
	}

	target := l.selected + int(dir)*count
	target = max(0, min(target, l.contents.len()-1))

	moved := target - l.selected
	if moved < 0 {
		moved = -moved
	}

	l.unbindAll()
	l.selected = target
	l.recompute()

	l.log.Debug("Jumped window", "direction", dir.String(), "requested", count, "moved", moved, "selected", l.selected)

	return moved
}
