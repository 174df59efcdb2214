// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/ui/components"
)

// minGridRows is the least free space worth filling with the backdrop.
const minGridRows = 2

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.header.View()
	dock := m.dock.View()
	footer := m.status.View(m.helpKeys())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderBody(m.bodyHeight(header, dock, footer)),
		dock,
		footer,
	)
}

func (m *Model) helpKeys() footerKeys {
	k := footerKeys{app: m.keys}
	if m.panel != nil {
		k.panel = m.panel.Keys()
	}
	return k
}

// layout sizes the chrome and the panel to the window.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.dock.Width = m.width
	m.status.SetWidth(m.width)

	if m.panel == nil {
		return
	}
	height := m.bodyHeight(m.header.View(), m.dock.View(), m.status.View(m.helpKeys()))
	m.panel.SetSize(m.bodyWidth(), height)
}

// bodyWidth is the panel width inside the body padding.
func (m *Model) bodyWidth() int {
	w := m.width - m.theme.Body.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) bodyHeight(chrome ...string) int {
	h := m.height
	for _, c := range chrome {
		h -= lipgloss.Height(c)
	}
	if h < 1 {
		return 1
	}
	return h
}

// renderBody draws the panel and fills the rows below it with the grid
// when the engine shows one. A view without a panel is blank.
func (m *Model) renderBody(height int) string {
	content := ""
	if m.panel != nil {
		content = m.panel.View()
	}

	lines := strings.Split(content, "\n")
	if content == "" {
		lines = nil
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	if free := height - len(lines); free >= minGridRows && len(m.backdrop.cells) > 0 {
		backdrop := components.RenderGrid(m.theme, m.backdrop.cells, m.bodyWidth(), free-1)
		if backdrop != "" {
			lines = append(lines, "")
			lines = append(lines, strings.Split(backdrop, "\n")...)
		}
	}

	return m.theme.Body.
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
