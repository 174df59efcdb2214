// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"context"
	"math/rand/v2"
	"time"
)

// Interval is the time between animation ticks.
const Interval = 100 * time.Millisecond

// Frame is a snapshot of the grid after a tick.
type Frame struct {
	Seq   uint64
	Cells []Cell
}

// Animator flips cells of a grid on a ticker and publishes frames.
type Animator struct {
	grid     *Grid
	rng      *rand.Rand
	interval time.Duration
}

// NewAnimator creates an animator that owns g.
func NewAnimator(g *Grid, rng *rand.Rand) *Animator {
	return &Animator{grid: g, rng: rng, interval: Interval}
}

// Start runs the ticker until ctx is cancelled. Each tick flips the grid and
// sends a frame; a frame is dropped when the previous one has not been
// read. The returned channel is closed once the ticker has stopped.
func (a *Animator) Start(ctx context.Context) <-chan Frame {
	frames := make(chan Frame, 1)

	go func() {
		defer close(frames)

		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		var seq uint64
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.grid.Flip(a.rng)
				seq++
				select {
				case frames <- Frame{Seq: seq, Cells: a.grid.Cells()}:
				default:
				}
			}
		}
	}()

	return frames
}
