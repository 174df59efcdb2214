// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the agentdeck command line.
//
// The root command starts the interface. Subcommands:
//
//	chat [agent|hive]   line-mode chat on the same simulator
//	config ...          show, init, get, set, keys, env
//	version             build information
//
// PersistentPreRunE loads the config, applies flag overrides, and opens the
// log before any subcommand runs.
package cli
