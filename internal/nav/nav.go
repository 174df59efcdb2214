// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav tracks which top-level view is active.
package nav

// View ids.
const (
	Agent    = "agent"
	Hive     = "hive"
	Nexus    = "nexus"
	Vault    = "vault"
	Profile  = "profile"
	Settings = "settings"
)

// Item is a registered view in dock order.
type Item struct {
	ID    string
	Label string
	Key   string // single-key shortcut shown in the dock
}

// DefaultItems is the dock in display order.
var DefaultItems = []Item{
	{ID: Agent, Label: "Agent", Key: "1"},
	{ID: Hive, Label: "Hive", Key: "2"},
	{ID: Nexus, Label: "Nexus", Key: "3"},
	{ID: Vault, Label: "Vault", Key: "4"},
	{ID: Profile, Label: "Profile", Key: "5"},
	{ID: Settings, Label: "Settings", Key: "6"},
}

// Switcher holds exactly one active view id. The set of views is flat:
// any id can be selected from any other, including ids with no registered
// view.
type Switcher struct {
	items  []Item
	active string
}

// NewSwitcher creates a switcher over items with initial active.
func NewSwitcher(items []Item, initial string) *Switcher {
	return &Switcher{items: append([]Item(nil), items...), active: initial}
}

// Select makes id the active view and reports whether it changed.
func (s *Switcher) Select(id string) bool {
	if id == s.active {
		return false
	}
	s.active = id
	return true
}

// Active returns the active view id.
func (s *Switcher) Active() string {
	return s.active
}

// Items returns the registered views in order.
func (s *Switcher) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Registered reports whether id has a registered view.
func (s *Switcher) Registered(id string) bool {
	return s.index(id) >= 0
}

// ByKey returns the view whose shortcut is key.
func (s *Switcher) ByKey(key string) (Item, bool) {
	for _, it := range s.items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// Next selects the view after the active one, wrapping around. From an
// unregistered id it selects the first view.
func (s *Switcher) Next() string {
	return s.step(1)
}

// Prev selects the view before the active one, wrapping around. From an
// unregistered id it selects the last view.
func (s *Switcher) Prev() string {
	return s.step(-1)
}

func (s *Switcher) step(delta int) string {
	n := len(s.items)
	if n == 0 {
		return s.active
	}
	i := s.index(s.active)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = ((i+delta)%n + n) % n
	}
	s.active = s.items[i].ID
	return s.active
}

func (s *Switcher) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
