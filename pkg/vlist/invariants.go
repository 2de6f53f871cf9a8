package vlist

import (
	"fmt"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

// checkInvariants reports the first bookkeeping inconsistency between the
// pool, the content store, the window cursors and the selection.
func (l *List) checkInvariants() error {
	n := l.pool.len()
	count := l.contents.len()

	boundSlots := 0
	for phys, s := range l.pool.slots {
		if s.content == blank {
			continue
		}
		boundSlots++
		if !l.contents.valid(s.content) {
			return fmt.Errorf("slot %d bound to missing item %d", phys, s.content)
		}
		if got := l.contents.at(s.content).slot; got != phys {
			return fmt.Errorf("slot %d shows item %d but the item points at slot %d", phys, s.content, got)
		}
	}
	if boundSlots != l.bound {
		return fmt.Errorf("%d slots bound but %d items hold a slot", boundSlots, l.bound)
	}

	if count == 0 {
		if l.selected != -1 {
			return fmt.Errorf("empty list has selection %d", l.selected)
		}
		if boundSlots != 0 || l.firstUsed != -1 || l.lastUsed != -1 {
			return fmt.Errorf("empty list has a window [%d, %d]", l.firstUsed, l.lastUsed)
		}
		return nil
	}

	if !l.contents.valid(l.selected) {
		return fmt.Errorf("selection %d out of range [0, %d)", l.selected, count)
	}

	if n == 0 {
		if l.firstUsed != -1 || l.lastUsed != -1 {
			return fmt.Errorf("window [%d, %d] without a pool", l.firstUsed, l.lastUsed)
		}
		return nil
	}

	if l.firstUsed < 0 || l.lastUsed < l.firstUsed || l.lastUsed >= n {
		return fmt.Errorf("window [%d, %d] invalid for pool of %d", l.firstUsed, l.lastUsed, n)
	}

	for pos := 0; pos < n; pos++ {
		c := l.pool.at(pos).content
		inside := pos >= l.firstUsed && pos <= l.lastUsed
		if !inside && c != blank {
			return fmt.Errorf("slot at position %d outside window [%d, %d] shows item %d", pos, l.firstUsed, l.lastUsed, c)
		}
		if inside && c == blank {
			return fmt.Errorf("slot at position %d inside window [%d, %d] is blank", pos, l.firstUsed, l.lastUsed)
		}
		if inside && pos > l.firstUsed {
			if prev := l.pool.at(pos - 1).content; c != prev+1 {
				return fmt.Errorf("slot at position %d shows item %d after item %d", pos, c, prev)
			}
		}
	}

	if got := l.pool.at(constants.SelectedItemOffset).content; got != l.selected {
		return fmt.Errorf("selected item %d not at position %d (found %d)", l.selected, constants.SelectedItemOffset, got)
	}
	if want := constants.SelectedItemOffset - min(l.selected, constants.SelectedItemOffset); l.firstUsed != want {
		return fmt.Errorf("first used slot at %d, want %d for selection %d", l.firstUsed, want, l.selected)
	}
	if l.lastUsed < n-1 && l.contents.valid(l.pool.at(l.lastUsed).content+1) {
		return fmt.Errorf("window ends at position %d with items left to show", l.lastUsed)
	}

	return nil
}

// verify checks the invariants after a batch of work. In strict mode a
// violation panics; otherwise it is logged and the window is rebuilt around
// the selection.
func (l *List) verify() {
	err := l.checkInvariants()
	if err == nil {
		return
	}

	if l.strict {
		panic(fmt.Sprintf("vlist: invariant violated: %v", err))
	}

	l.log.Error("List invariant violated, re-anchoring window", "error", err)

	if !l.contents.valid(l.selected) {
		l.selected = -1
	}
	for i := range l.contents.items {
		l.contents.items[i].slot = noSlot
	}
	for i := range l.pool.slots {
		l.pool.slots[i].content = blank
		l.pool.slots[i].row.SetText("")
	}
	l.bound = 0
	l.firstUsed, l.lastUsed = -1, -1
	l.recompute()
}
