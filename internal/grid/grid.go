// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"math/rand/v2"
)

const (
	// DefaultCells is the number of cells in the background grid.
	DefaultCells = 1200

	// FlipFraction is the share of cells replaced on every tick.
	FlipFraction = 0.05

	minOpacity  = 0.2
	opacitySpan = 0.5
)

// Alphabet is the fixed set of glyphs a cell can show.
var Alphabet = []string{"0x4F", "∆", "∑", "0xA1", "◊", "∞", "0x7B", "⌘", "∂", "0xFF", "∇", "⊕"}

// Cell is one glyph of the grid. Opacity is in [0.2, 0.7).
type Cell struct {
	Glyph   string
	Opacity float64
}

// Grid is a fixed-size set of cells. It is not safe for concurrent use;
// the Animator owns its grid and hands out copies.
type Grid struct {
	cells []Cell
}

// New builds a grid of count random cells. A non-positive count yields an
// empty grid.
func New(count int, rng *rand.Rand) *Grid {
	if count < 0 {
		count = 0
	}
	g := &Grid{cells: make([]Cell, count)}
	for i := range g.cells {
		g.cells[i] = randomCell(rng)
	}
	return g
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// FlipCount returns how many cells one Flip replaces: floor(len*5%).
func (g *Grid) FlipCount() int {
	return int(float64(len(g.cells)) * FlipFraction)
}

// Flip replaces FlipCount randomly chosen cells, with replacement, and
// returns the indices it touched.
func (g *Grid) Flip(rng *rand.Rand) []int {
	n := g.FlipCount()
	if n == 0 {
		return nil
	}
	touched := make([]int, n)
	for i := range touched {
		idx := rng.IntN(len(g.cells))
		g.cells[idx] = randomCell(rng)
		touched[i] = idx
	}
	return touched
}

// Cells returns a copy of the cells.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func randomCell(rng *rand.Rand) Cell {
	return Cell{
		Glyph:   Alphabet[rng.IntN(len(Alphabet))],
		Opacity: rng.Float64()*opacitySpan + minOpacity,
	}
}
