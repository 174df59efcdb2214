// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar is the footer: a transient status message, or the key help for
// the focused panel when there is none.
type StatusBar struct {
	help    help.Model
	message string
	isError bool
	width   int
	theme   *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	s := &StatusBar{help: help.New()}
	s.SetTheme(theme)
	return s
}

// SetTheme swaps the theme and restyles the help view.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
	if theme == nil {
		return
	}
	s.help.Styles.ShortKey = theme.InputPrompt
	s.help.Styles.ShortDesc = theme.Footer.UnsetPadding()
	s.help.Styles.ShortSeparator = theme.Label
	s.help.Styles.FullKey = theme.InputPrompt
	s.help.Styles.FullDesc = theme.Footer.UnsetPadding()
	s.help.Styles.FullSeparator = theme.Label
	s.SetWidth(s.width)
}

// SetWidth sets the available width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
	s.help.Width = width
	if s.theme != nil {
		s.help.Width -= s.theme.Footer.GetHorizontalFrameSize()
	}
	if s.help.Width < 0 {
		s.help.Width = 0
	}
}

// SetMessage shows a status message until ClearMessage.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError shows an error message until ClearMessage.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// ClearMessage returns the bar to key help.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.isError = false
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// ToggleFull switches between short and full help.
func (s *StatusBar) ToggleFull() {
	s.help.ShowAll = !s.help.ShowAll
}

// View renders the footer with the given key map.
func (s *StatusBar) View(keys help.KeyMap) string {
	if s.theme == nil {
		return ""
	}

	if s.message != "" {
		style := s.theme.Notice
		if s.isError {
			style = s.theme.ErrorNotice
		}
		return s.theme.Footer.Render(style.Render(s.message))
	}

	if keys == nil {
		return ""
	}
	return s.theme.Footer.Render(s.help.View(keys))
}

// Bindings adapts a flat binding list to help.KeyMap.
type Bindings []key.Binding

// ShortHelp implements help.KeyMap.
func (b Bindings) ShortHelp() []key.Binding { return b }

// FullHelp implements help.KeyMap.
func (b Bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
