// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads, validates, and saves agentdeck settings.
//
// Settings live in ~/.agentdeck/config.toml. A config.json in the same
// directory is read when no TOML file exists. Either one may be partial;
// missing keys keep their defaults and unknown keys are rejected.
//
// # Sections
//
//   - ui: start view, skin, visual engine, alternate screen, mouse, and
//     the label on your own messages in every chat view
//   - agent: the label on terminal agent replies
//   - hive: the mention token and the helper label
//   - log: debug log file ("-" turns it off) and level
//
// # Precedence
//
// An AGENTDECK_* variable beats the file, which beats the built-in value.
// EnvHelp lists the variables.
//
// # Editing
//
// Get and Set take dotted keys such as "hive.mention". Set converts string
// input to the field's type, so the CLI can pass arguments through as-is.
//
//	cfg := config.Default()
//	if err := cfg.Set("ui.engine", "static-grid"); err != nil {
//	    return err
//	}
//	return config.Save(cfg)
//
// Watch reloads a file on change and reports each result, good or bad, to
// a callback. The interface forwards those into its update loop.
package config
