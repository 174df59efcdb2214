// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/ui/panels"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case FrameMsg:
		return m, m.backdrop.apply(msg)

	case panels.SkinChangedMsg:
		m.applySkin(msg.Skin)
		return m, nil

	case panels.EngineChangedMsg:
		return m, m.applyEngine(msg.Engine)

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg)
	}

	return m, m.forward(msg)
}

// handleKeyPress runs global bindings, then hands the key to the panel.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	capturing := m.panel != nil && m.panel.CapturesInput()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		m.switcher.Next()
		return m, m.remount()

	case key.Matches(msg, m.keys.PrevView):
		m.switcher.Prev()
		return m, m.remount()

	case msg.String() == "f1", !capturing && key.Matches(msg, m.keys.Help):
		m.status.ToggleFull()
		m.layout()
		return m, nil
	}

	if k, ok := shortcut(msg, capturing); ok {
		if item, ok := m.switcher.ByKey(k); ok {
			return m, m.selectView(item.ID)
		}
	}

	return m, m.forward(msg)
}

// remount rebuilds the panel after Next or Prev moved the switcher.
func (m *Model) remount() tea.Cmd {
	m.status.ClearMessage()
	cmd := m.mount(m.switcher.Active())
	m.refreshChrome()
	return cmd
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.panel == nil {
		return nil
	}
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return cmd
}
