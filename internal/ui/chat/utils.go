// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/agentdeck/internal/util"
)

// =============================================================================
// TEXT UTILITIES
// =============================================================================

// calculateContentWidth calculates the safe content width for message
// rendering. Returns a minimum of 3 for extremely narrow widths.
func calculateContentWidth(totalWidth, margin int) int {
	contentWidth := totalWidth - margin
	if contentWidth < 3 {
		contentWidth = 3
	}
	return contentWidth
}

// wrapText wraps text to a maximum display width. Existing line breaks are
// kept and long lines break at the last space that fits, or mid-word when
// there is none.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}

		runes := []rune(line)
		for runewidth.StringWidth(string(runes)) > maxWidth {
			fit := fitRunes(runes, maxWidth)
			breakPoint := fit
			for j := fit; j > 0; j-- {
				if runes[j] == ' ' {
					breakPoint = j
					break
				}
			}

			result.WriteString(string(runes[:breakPoint]))
			result.WriteString("\n")
			runes = []rune(strings.TrimLeft(string(runes[breakPoint:]), " "))
		}
		result.WriteString(string(runes))
	}

	return result.String()
}

// fitRunes returns how many leading runes fit in width cells, at least 1.
func fitRunes(runes []rune, width int) int {
	w := 0
	for i, r := range runes {
		w += runewidth.RuneWidth(r)
		if w > width {
			if i == 0 {
				return 1
			}
			return i
		}
	}
	return len(runes)
}

// truncateToWidth shortens a notice to the panel width.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return util.TruncateWidth(s, width)
}
