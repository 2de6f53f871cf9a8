package vlist

import "slices"

const blank = -1

type poolSlot struct {
	row     Row
	content int // content index, blank if none
}

// objectPool is a ring of row visuals. Positions are in display order,
// head is the physical index of position 0, so moving the first slot to
// the tail or the last slot to the head only moves head.
type objectPool struct {
	slots []poolSlot
	head  int
}

func (p *objectPool) len() int {
	return len(p.slots)
}

func (p *objectPool) physical(pos int) int {
	return (p.head + pos) % len(p.slots)
}

func (p *objectPool) at(pos int) *poolSlot {
	return &p.slots[p.physical(pos)]
}

// promoteTail makes the last slot the first one.
func (p *objectPool) promoteTail() {
	n := len(p.slots)
	p.head = (p.head - 1 + n) % n
}

// demoteHead makes the first slot the last one.
func (p *objectPool) demoteHead() {
	p.head = (p.head + 1) % len(p.slots)
}

// linearize rotates the backing slice so head is 0. moved is called for
// every bound slot whose physical index changed.
func (p *objectPool) linearize(moved func(content, slot int)) {
	if p.head == 0 {
		return
	}
	p.slots = slices.Concat(p.slots[p.head:], p.slots[:p.head])
	p.head = 0
	for i, s := range p.slots {
		if s.content != blank {
			moved(s.content, i)
		}
	}
}

// push appends a blank slot at the tail. The pool must be linear.
func (p *objectPool) push(row Row) {
	p.slots = append(p.slots, poolSlot{row: row, content: blank})
}

// pop removes the tail slot. The pool must be linear.
func (p *objectPool) pop() poolSlot {
	last := p.slots[len(p.slots)-1]
	p.slots = p.slots[:len(p.slots)-1]
	return last
}

func (p *objectPool) clear() {
	p.slots = nil
	p.head = 0
}
