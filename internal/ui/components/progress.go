// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/profile"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// USAGE BAR
// =============================================================================

// UsageBar renders one profile usage metric: label and formatted value on
// the first line, a static bar and the value/max detail below.
type UsageBar struct {
	bar   progress.Model
	theme *styles.Theme
}

// NewUsageBar creates a usage bar of the given width.
func NewUsageBar(theme *styles.Theme, width int) UsageBar {
	fill := theme.Palette.Primary.Dark
	if !theme.IsDark {
		fill = theme.Palette.Primary.Light
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithoutPercentage(),
		progress.WithColorProfile(theme.ColorProfile),
		progress.WithWidth(clamp(width, 10, 80)),
	)
	return UsageBar{bar: bar, theme: theme}
}

// View renders the metric. The bar is static, so ViewAs is used rather
// than the animated spring.
func (u UsageBar) View(m model.UsageMetric) string {
	head := u.theme.Label.Render(m.Label)
	value := u.theme.Value.Bold(true).Render(profile.FormatValue(m))
	gap := u.bar.Width - lipgloss.Width(head) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	top := head + strings.Repeat(" ", gap) + value

	bar := u.bar.ViewAs(profile.Ratio(m))
	detail := u.theme.Label.Render(profile.Detail(m))

	return lipgloss.JoinVertical(lipgloss.Left, top, bar, detail)
}
