// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// CommandHandler handles one slash command. It may update the model and
// return a command to run.
type CommandHandler func(m *Model, args []string) tea.Cmd

// commandHandlers maps command names to their handler functions.
var commandHandlers = map[string]CommandHandler{
	"help":   handleHelpCommand,
	"h":      handleHelpCommand,
	"?":      handleHelpCommand,
	"export": handleExportCommand,
	"e":      handleExportCommand,
	"attach": handleAttachCommand,
	"upload": handleAttachCommand,
	"top":    handleTopCommand,
}

// commandUsage is listed by /help, in display order.
var commandUsage = []string{
	"/export [md|json] [path]",
	"/attach <file>",
	"/top",
	"/help",
}

// handleCommand parses a slash line and dispatches it.
func (m *Model) handleCommand(content string) tea.Cmd {
	fields := strings.Fields(strings.TrimPrefix(content, "/"))
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(fields[0])
	handler, ok := commandHandlers[name]
	if !ok {
		m.setNotice("Unknown command: /"+name+" (try /help)", true)
		return nil
	}
	return handler(m, fields[1:])
}

// =============================================================================
// HANDLERS
// =============================================================================

func handleHelpCommand(m *Model, _ []string) tea.Cmd {
	usage := make([]string, 0, len(commandUsage))
	for _, u := range commandUsage {
		if strings.HasPrefix(u, "/attach") && !m.cfg.AllowAttach {
			continue
		}
		usage = append(usage, u)
	}
	m.setNotice("Commands: "+strings.Join(usage, "  "), false)
	return nil
}

func handleAttachCommand(m *Model, args []string) tea.Cmd {
	if !m.cfg.AllowAttach {
		m.setNotice("Uploads are not available here.", true)
		return nil
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		m.setNotice("Usage: /attach <file>", true)
		return nil
	}
	return m.attach(name)
}

func handleTopCommand(m *Model, _ []string) tea.Cmd {
	m.viewport.GotoTop()
	return nil
}
