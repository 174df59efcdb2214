// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings that work in every view.
type KeyMap struct {
	NextView key.Binding
	PrevView key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Jump: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6"),
			key.WithHelp("alt+1..6", "jump"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// shortcut returns the dock key a press selects, if any. Bare digits only
// count when the panel is not taking text; alt+digit always does.
func shortcut(msg tea.KeyMsg, capturing bool) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	if msg.Alt {
		return strings.TrimPrefix(msg.String(), "alt+"), true
	}
	if capturing {
		return "", false
	}
	return string(msg.Runes), true
}

// footerKeys lists the panel's bindings first, then the global ones.
type footerKeys struct {
	app   KeyMap
	panel help.KeyMap
}

func (k footerKeys) ShortHelp() []key.Binding {
	var out []key.Binding
	if k.panel != nil {
		out = append(out, k.panel.ShortHelp()...)
	}
	return append(out, k.app.NextView, k.app.Help, k.app.Quit)
}

func (k footerKeys) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	if k.panel != nil {
		out = append(out, k.panel.FullHelp()...)
	}
	return append(out, []key.Binding{k.app.NextView, k.app.PrevView, k.app.Jump, k.app.Help, k.app.Quit})
}
