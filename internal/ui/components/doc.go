// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable pieces of the agentdeck screen.

# Components

	Header    (header.go)    - brand, active view, right-aligned meta text
	Dock      (dock.go)      - navigation bar with shortcut keys
	StatusBar (statusbar.go) - footer: status message or bubbles/help key hints
	Typing    (spinner.go)   - "<label> is typing..." indicator on bubbles/spinner
	UsageBar  (progress.go)  - profile metric on a static bubbles/progress bar
	RenderGrid (grid.go)     - decorative glyph backdrop, banded by opacity

Every component takes a *styles.Theme. When the skin changes the app builds
a new theme and hands it to each component through SetTheme.
*/
package components
