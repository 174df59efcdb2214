// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the agentdeck TUI.

# Skins (colors.go)

Two palettes are available, selected by the interface skin setting:

	Neon     - bright cyan/violet accents on a near-black surface
	LowLight - desaturated red-brown accents for dark rooms

PaletteFor maps a skin name to its palette; unknown names fall back to Neon.

# Theme (theme.go)

	theme := styles.NewTheme(cfg.UI.Skin)
	theme.SetSize(msg.Width, msg.Height)
	fmt.Println(theme.DockItemActive.Render("AGENT"))

The theme detects the terminal color profile through termenv and builds
every lipgloss style from the palette. Switching skins builds a new Theme.

# Animation Helpers (animations.go)

Spinner frame sets for the typing indicator, a plain progress bar for
line-mode output, and OpacityBand, which buckets a grid cell opacity into
one of the palette's glyph bands.
*/
package styles
