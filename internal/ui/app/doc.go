// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app provides the root bubbletea model of agentdeck.

# Screen

	+------------------------------------------+
	| AGENTDECK :: HIVE        DATA STREAM · id | header
	|                                          |
	| active panel                             | body
	| grid backdrop in the rows left over      |
	|                                          |
	|  1AGENT 2HIVE 3NEXUS 4VAULT ...          | dock
	| keys / status message                    | footer
	+------------------------------------------+

# Keys

	tab / shift+tab   next / previous view
	alt+1 .. alt+6    jump to a view
	1 .. 6            jump, when the panel is not taking text
	? / f1            toggle full help (? only outside text input)
	ctrl+c            quit

Switching views closes the mounted panel and builds a fresh one, so a chat
view's pending replies are cancelled on the way out. The backdrop follows
the visual engine; only data-stream runs a ticker, and changing engine
cancels it.

ConfigReloadedMsg is sent by the CLI's config watcher through
tea.Program.Send.
*/
package app
