// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat surface shared by the Agent and Hive views.

A Model is a viewport over a session.Simulator's store plus a single input
line. The two views differ only in their Config and in the Responder behind
the simulator.

# Data Flow

	enter -> Simulator.Submit -> store append (user)
	      -> reply timer -> store append (reply) -> Updates() signal
	      -> UpdateMsg -> sync viewport from store

The panel never copies messages into its own state. Each UpdateMsg rebuilds
the transcript from the store, so whatever the timers appended is what the
user sees. waitForUpdate returns nil once the simulator is closed, so the
waiting command ends with the panel.

# Slash Commands

	/export [md|json] [path]  write the transcript (default md, generated name)
	/attach <file>            simulate an upload (Hive only)
	/top                      scroll to the oldest message
	/help                     list commands

Commands are dispatched through the commandHandlers registry in
commands.go.
*/
package chat
