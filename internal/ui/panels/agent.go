// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/chat"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// Agent is the single-assistant terminal. Every submission gets one canned
// reply after the reply delay.
type Agent struct {
	chat chat.Model
}

// NewAgent builds the terminal over a store seeded with the greeting.
func NewAgent(deps Deps, data *seed.Data) *Agent {
	cfg := deps.config()

	opts := []session.Option{
		session.WithUserLabel(cfg.UI.UserLabel),
		session.WithLogger(deps.logger()),
	}
	if deps.Rand != nil {
		opts = append(opts, session.WithRand(deps.Rand))
	}
	sim := session.NewSimulator(
		session.NewStore(data.AgentMessages()...),
		session.CannedResponder{Label: cfg.Agent.Name},
		opts...,
	)

	return &Agent{
		chat: chat.New(deps.Theme, sim, chat.Config{
			View:        nav.Agent,
			Title:       cfg.Agent.Name,
			TypingLabel: cfg.Agent.Name,
			Placeholder: "ENTER COMMAND...",
			ExportDir:   deps.ExportDir,
			SessionID:   deps.Session.ID,
			Logger:      deps.logger(),
		}),
	}
}

func (a *Agent) Init() tea.Cmd { return a.chat.Init() }

func (a *Agent) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a *Agent) View() string                 { return a.chat.View() }
func (a *Agent) SetSize(width, height int)    { a.chat.SetSize(width, height) }
func (a *Agent) SetTheme(theme *styles.Theme) { a.chat.SetTheme(theme) }
func (a *Agent) Keys() help.KeyMap            { return a.chat.Keys() }
func (a *Agent) CapturesInput() bool          { return true }
func (a *Agent) Close()                       { a.chat.Close() }

// Chat exposes the underlying chat model.
func (a *Agent) Chat() *chat.Model { return &a.chat }
