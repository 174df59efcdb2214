// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package collection provides the keyed list behind every editable view.
package collection

// List is an ordered collection of items addressed by a string key.
// Operations are synchronous and never fail: an unknown key is a no-op.
type List[T any] struct {
	items []T
	key   func(T) string
}

// New creates a list over a copy of items.
func New[T any](key func(T) string, items ...T) *List[T] {
	l := &List[T]{key: key, items: make([]T, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// Update replaces the item whose key is id with patch(item).
// It reports false, leaving the list untouched, when no item matches.
func (l *List[T]) Update(id string, patch func(T) T) bool {
	for i, it := range l.items {
		if l.key(it) == id {
			l.items[i] = patch(it)
			return true
		}
	}
	return false
}

// Append adds item to the end of the list.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Items returns a copy of the items in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Find returns the item with key id.
func (l *List[T]) Find(id string) (T, bool) {
	for _, it := range l.items {
		if l.key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Index returns the position of id, or -1.
func (l *List[T]) Index(id string) int {
	for i, it := range l.items {
		if l.key(it) == id {
			return i
		}
	}
	return -1
}

// At returns the item at position i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}
