// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across agentdeck.
//
// # Key Functions
//
// String Utilities (terminal-cell aware, via go-runewidth):
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth: truncation by display width
//   - PadWidth: fixed-width cell padding for grid glyphs
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync, used by config
//     saves and transcript exports
//
// # Usage
//
//	label := util.TruncateWidth(file.Name, 18)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
