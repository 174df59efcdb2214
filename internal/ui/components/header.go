// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the single-line title bar: brand and view on the left, meta
// text (engine, session) on the right.
type Header struct {
	Title   string // Brand text (default: "AGENTDECK")
	Section string // Active view label
	Meta    string // Right-aligned status text
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "AGENTDECK",
		Width: 80,
		theme: theme,
	}
}

// SetWidth sets the available width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTheme swaps the theme after a skin change.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// View renders the header.
func (h *Header) View() string {
	if h.theme == nil {
		return ""
	}

	left := h.theme.HeaderBrand.Render(h.Title)
	if h.Section != "" {
		left += h.theme.HeaderMeta.Render(" :: " + strings.ToUpper(h.Section))
	}
	right := h.theme.HeaderMeta.Render(h.Meta)

	// Header has 1 column of padding on each side.
	inner := h.Width - 2
	if inner <= 0 {
		return h.theme.Header.Render(left)
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the meta text before squeezing the brand.
		return h.theme.Header.Width(h.Width).Render(h.theme.HeaderBrand.Render(util.TruncateWidth(h.Title, inner)))
	}

	return h.theme.Header.Width(h.Width).Render(left + strings.Repeat(" ", gap) + right)
}
