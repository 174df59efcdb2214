// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/model"
)

// View renders the transcript, indicator, notice, and input.
func (m Model) View() string {
	indicator := m.typing.View()
	if s := m.scanning.View(); s != "" {
		if indicator != "" {
			indicator += "  "
		}
		indicator += s
	}

	notice := ""
	if m.notice != "" {
		style := m.theme.Notice
		if m.noticeErr {
			style = m.theme.ErrorNotice
		}
		notice = style.Render(truncateToWidth(m.notice, m.width))
	}

	input := m.theme.InputBox.Width(m.width).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		indicator,
		notice,
		input,
	)
}

// sync rebuilds the viewport from the store, following the tail when the
// view was already at the bottom.
func (m *Model) sync() {
	follow := m.viewport.AtBottom() || m.viewport.TotalLineCount() <= m.viewport.Height
	m.viewport.SetContent(m.renderMessages(m.sim.Store().List()))
	if follow {
		m.viewport.GotoBottom()
	}
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

func (m *Model) renderMessages(msgs []model.Message) string {
	if len(msgs) == 0 {
		return m.theme.Label.Render("No messages yet.")
	}

	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n")
}

// renderMessage draws one bubble with a label line. User messages sit on
// the right, everything else on the left.
func (m *Model) renderMessage(msg model.Message) string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	maxWidth := width * 3 / 4
	if maxWidth < 16 {
		maxWidth = width
	}
	// Border plus one column of padding per side.
	wrapWidth := calculateContentWidth(maxWidth, 4)

	bubble := m.theme.OtherBubble
	switch msg.Sender {
	case model.SenderUser:
		bubble = m.theme.UserBubble
	case model.SenderAgent:
		bubble = m.theme.AgentBubble
	}

	label := m.theme.SenderLabel.Render(msg.SenderLabel) + " " + m.theme.Timestamp.Render(msg.Clock())
	body := bubble.Render(m.renderBody(msg.Content, wrapWidth))
	block := lipgloss.JoinVertical(lipgloss.Left, label, body)

	if msg.IsUser() {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return block
}

// renderBody wraps content, through glamour when markdown is enabled.
func (m *Model) renderBody(content string, width int) string {
	if r := m.markdown(width); r != nil {
		if out, err := r.Render(content); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wrapText(content, width)
}
