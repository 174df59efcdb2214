// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// DOCK
// =============================================================================

// Dock is the navigation bar listing every registered view with its
// shortcut key. The active view is highlighted.
type Dock struct {
	Items  []nav.Item
	Active string
	Width  int
	theme  *styles.Theme
}

// NewDock creates a dock for the given items.
func NewDock(theme *styles.Theme, items []nav.Item) *Dock {
	return &Dock{Items: items, theme: theme}
}

// SetTheme swaps the theme after a skin change.
func (d *Dock) SetTheme(theme *styles.Theme) {
	d.theme = theme
}

// View renders the dock. Narrow layouts drop the key hints.
func (d *Dock) View() string {
	if d.theme == nil || len(d.Items) == 0 {
		return ""
	}

	showKeys := d.Width == 0 || d.Width >= 60
	parts := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		label := strings.ToUpper(item.Label)
		style := d.theme.DockItem
		if item.ID == d.Active {
			style = d.theme.DockItemActive
		}
		cell := style.Render(label)
		if showKeys && item.Key != "" {
			cell = d.theme.DockKey.Render(item.Key) + cell
		}
		parts = append(parts, cell)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if d.Width > 0 {
		return lipgloss.PlaceHorizontal(d.Width, lipgloss.Center, row)
	}
	return row
}
