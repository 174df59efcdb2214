// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/session"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// UpdateMsg reports that a simulator appended to its store. It carries the
// source so a message from a torn-down panel is ignored by its successor.
type UpdateMsg struct {
	source *session.Simulator
}

// ExportCompleteMsg reports the result of an asynchronous /export.
type ExportCompleteMsg struct {
	Path string
	Err  error
}

// =============================================================================
// COMMANDS
// =============================================================================

// waitForUpdate blocks on the simulator's update channel. When the channel
// is closed the command returns nil, which bubbletea drops, so the wait
// never outlives the panel.
func waitForUpdate(sim *session.Simulator) tea.Cmd {
	ch := sim.Updates()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return UpdateMsg{source: sim}
	}
}
