// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package panels provides the body of each agentdeck view.

	Agent    (agent.go)    - one-to-one chat with canned replies
	Hive     (hive.go)     - group chat with a channel sidebar
	Nexus    (nexus.go)    - integration cards, connect toggle, secret reveal
	Vault    (vault.go)    - file cards: star, color tag, rename, upload
	Profile  (profile.go)  - account card, usage bars, inert actions
	Settings (settings.go) - skin toggle, visual engine, system info

Build is the only constructor the app uses. Every call loads a fresh copy
of the seed, so leaving a view and coming back discards its edits. The app
must Close the old panel before building the next one; for the chat views
that cancels any pending reply timers.

Settings does not touch the theme itself. It returns SkinChangedMsg and
EngineChangedMsg and the app applies them.
*/
package panels
