// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.Neon.TextMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Config key style
	keyStyle = lipgloss.NewStyle().
			Foreground(styles.Neon.TextSecondary).
			Width(20)
)
