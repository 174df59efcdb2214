// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/export"
)

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// handleExportCommand handles "/export [md|json] [path]". The transcript is
// snapshotted now and written on a command goroutine.
func handleExportCommand(m *Model, args []string) tea.Cmd {
	format, path := "", ""
	if len(args) > 0 {
		format = args[0]
	}
	if len(args) > 1 {
		path = args[1]
	}

	opts := export.DefaultOptions()
	opts.OutputDir = m.cfg.ExportDir

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		m.setNotice("[FAIL] "+err.Error(), true)
		return nil
	}

	transcript := m.Transcript()
	if len(transcript.Messages) == 0 {
		m.setNotice("[FAIL] "+export.ErrEmptyTranscript.Error(), true)
		return nil
	}

	m.setNotice("Exporting transcript...", false)
	return func() tea.Msg {
		written, err := export.ExportToFile(transcript, exporter, path, opts)
		return ExportCompleteMsg{Path: written, Err: err}
	}
}
