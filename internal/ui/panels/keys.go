// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import "github.com/charmbracelet/bubbles/key"

// =============================================================================
// SHARED BINDINGS
// =============================================================================

var (
	keyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "previous"),
	)
	keyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "next"),
	)
	keyLeft = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left/h", "previous"),
	)
	keyRight = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("right/l", "next"),
	)
	keyConfirm = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	)
	keyCancel = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	)
)

// moveCursor steps i by delta within [0, n). It does not wrap.
func moveCursor(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i += delta
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// bindingList adapts a flat binding list to help.KeyMap.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
