// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to files.
//
// Exports are one-way: agentdeck never reads them back, and the in-memory
// session is unaffected.
//
// # Supported Formats
//
//   - Markdown: YAML front matter, one heading per message
//   - JSON: the Transcript structure, indented
//
// # Usage
//
//	exp, _ := export.ForFormat("md", nil)
//	path, err := export.ExportToFile(&export.Transcript{
//	    Title:    "Hive general",
//	    View:     "hive",
//	    Messages: store.List(),
//	}, exp, "", nil)
package export
