// agentdeck - a terminal deck for an agent, a hive, and their tools.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/agentdeck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
