// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nexus holds the integration list shown in the Nexus view.
package nexus

import (
	"github.com/jeranaias/agentdeck/internal/collection"
	"github.com/jeranaias/agentdeck/internal/model"
)

// Mask replaces a hidden secret value.
const Mask = "••••••••••••"

// Nexus is the editable integration list plus per-integration secret
// visibility.
type Nexus struct {
	list     *collection.List[model.Integration]
	revealed map[string]bool
}

// New creates a Nexus over deep copies of integrations.
func New(integrations []model.Integration) *Nexus {
	cloned := make([]model.Integration, len(integrations))
	for i, in := range integrations {
		cloned[i] = in.Clone()
	}
	return &Nexus{
		list:     collection.New(model.Integration.Key, cloned...),
		revealed: make(map[string]bool),
	}
}

// Integrations returns deep copies of the integrations in order.
func (n *Nexus) Integrations() []model.Integration {
	items := n.list.Items()
	for i := range items {
		items[i] = items[i].Clone()
	}
	return items
}

// Find returns the integration with the given id.
func (n *Nexus) Find(id string) (model.Integration, bool) {
	in, ok := n.list.Find(id)
	return in.Clone(), ok
}

// Toggle flips the connected flag. Toggling twice restores the original.
func (n *Nexus) Toggle(id string) bool {
	return n.list.Update(id, func(in model.Integration) model.Integration {
		in.Connected = !in.Connected
		return in
	})
}

// ToggleSecret reveals or hides secret attributes of the integration.
// It reports false for an unknown id or one with no secrets.
func (n *Nexus) ToggleSecret(id string) bool {
	in, ok := n.list.Find(id)
	if !ok || !in.HasSecret() {
		return false
	}
	n.revealed[id] = !n.revealed[id]
	return true
}

// Revealed reports whether secrets of id are shown.
func (n *Nexus) Revealed(id string) bool {
	return n.revealed[id]
}

// Connected returns the number of connected integrations.
func (n *Nexus) Connected() int {
	count := 0
	for _, in := range n.list.Items() {
		if in.Connected {
			count++
		}
	}
	return count
}

// Display returns the text shown for attr of integration id.
func (n *Nexus) Display(id string, attr model.Attribute) string {
	if attr.Kind == model.AttrSecret && !n.revealed[id] {
		return Mask
	}
	return attr.Value
}
