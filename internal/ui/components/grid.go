// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// =============================================================================
// GRID BACKDROP
// =============================================================================

// GridCellWidth is the number of columns each glyph occupies, wide enough
// for the four-character hex glyphs plus a gap.
const GridCellWidth = 5

// RenderGrid lays cells out row-major in a width x height area. Cells that
// do not fit are skipped; a short slice leaves the rest of the area blank.
func RenderGrid(theme *styles.Theme, cells []grid.Cell, width, height int) string {
	if theme == nil || width < GridCellWidth || height <= 0 {
		return ""
	}

	cols := width / GridCellWidth
	var sb strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		used := 0
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(cells) {
				break
			}
			c := cells[i]
			sb.WriteString(theme.GridStyle(c.Opacity).Render(util.PadWidth(c.Glyph, GridCellWidth)))
			used += GridCellWidth
		}
		if used < width {
			sb.WriteString(strings.Repeat(" ", width-used))
		}
	}
	return sb.String()
}
