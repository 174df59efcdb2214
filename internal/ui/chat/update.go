// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Init starts waiting on the simulator and blinks the cursor.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.sim), textinput.Blink)
}

// Update handles messages for the chat panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateMsg:
		if msg.source != m.sim {
			return m, nil
		}
		m.sync()
		if m.sim.Pending() == 0 {
			m.typing.Stop()
		}
		if m.sim.Scanning() == 0 {
			m.scanning.Stop()
		}
		return m, waitForUpdate(m.sim)

	case ExportCompleteMsg:
		if msg.Err != nil {
			m.log.Warn("export failed", zap.Error(msg.Err))
			m.setNotice("[FAIL] Export failed: "+msg.Err.Error(), true)
		} else {
			m.log.Info("transcript exported", zap.String("path", msg.Path))
			m.setNotice("[OK] Exported to: "+msg.Path, false)
		}
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		cmds = append(cmds, cmd)
		m.scanning, cmd = m.scanning.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes scrolling keys to the viewport, submit and attach to the
// simulator, and everything else to the input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Attach):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.setNotice("Type a file name, then press ctrl+o to upload it.", false)
			return m, nil
		}
		m.input.Reset()
		return m, m.attach(name)

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line. Slash lines run as commands; blank input
// is a no-op that leaves the input untouched.
func (m Model) submit() (Model, tea.Cmd) {
	raw := m.input.Value()
	text := strings.TrimSpace(raw)
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		m.input.Reset()
		cmd := m.handleCommand(text)
		return m, cmd
	}

	if _, ok := m.sim.Submit(raw); !ok {
		return m, nil
	}
	m.input.Reset()
	m.setNotice("", false)
	m.sync()

	if m.sim.Pending() > 0 {
		return m, m.typing.Start()
	}
	return m, nil
}

// attach schedules a simulated upload and starts the scan indicator.
func (m *Model) attach(name string) tea.Cmd {
	if !m.sim.Attach(name) {
		return nil
	}
	m.setNotice("", false)
	return m.scanning.Start()
}
