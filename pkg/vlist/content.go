package vlist

import "strings"

// AppendFlags control how Append stores the item text.
type AppendFlags int

const (
	// AppendNone copies the text so the list never pins the caller's buffer.
	AppendNone AppendFlags = 0
	// AppendShare keeps the caller's string as is.
	AppendShare AppendFlags = 1
)

const noSlot = -1

type contentItem struct {
	text  string
	data  any
	flags AppendFlags
	slot  int // physical pool slot displaying the item, noSlot if none
}

// contentStore is append-only, so an item's arena index is also its ordinal.
type contentStore struct {
	items []contentItem
}

func (s *contentStore) append(text string, data any, flags AppendFlags) int {
	if flags&AppendShare == 0 {
		text = strings.Clone(text)
	}
	s.items = append(s.items, contentItem{
		text:  text,
		data:  data,
		flags: flags,
		slot:  noSlot,
	})
	return len(s.items) - 1
}

func (s *contentStore) len() int {
	return len(s.items)
}

func (s *contentStore) valid(i int) bool {
	return i >= 0 && i < len(s.items)
}

func (s *contentStore) next(i int) int {
	if !s.valid(i + 1) {
		return -1
	}
	return i + 1
}

func (s *contentStore) prev(i int) int {
	if !s.valid(i - 1) {
		return -1
	}
	return i - 1
}

func (s *contentStore) at(i int) *contentItem {
	return &s.items[i]
}

func (s *contentStore) clear() {
	for i := range s.items {
		s.items[i].slot = noSlot
		s.items[i].data = nil
	}
	s.items = nil
}
