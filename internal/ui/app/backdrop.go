// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/grid"
)

// FrameMsg carries a grid snapshot from the running animator.
type FrameMsg struct {
	grid.Frame
	source <-chan grid.Frame
}

// waitForFrame blocks until the animator publishes. It returns nil once the
// channel closes, which ends the wait after the engine changes.
func waitForFrame(frames <-chan grid.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return nil
		}
		return FrameMsg{Frame: f, source: frames}
	}
}

// backdrop owns the decorative grid for the selected engine.
type backdrop struct {
	engine grid.Engine
	cells  []grid.Cell
	frames <-chan grid.Frame
	cancel context.CancelFunc
}

// set switches engines. Data stream starts a ticker and returns the command
// that waits on it; static grid draws one fixed snapshot; deep void draws
// nothing.
func (b *backdrop) set(engine grid.Engine) tea.Cmd {
	b.stop()
	b.engine = engine
	b.cells = nil

	if !engine.Visible() {
		return nil
	}

	// The animator goroutine owns its rng.
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	g := grid.New(grid.DefaultCells, rng)
	b.cells = g.Cells()
	if !engine.Animated() {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.frames = grid.NewAnimator(g, rng).Start(ctx)
	return waitForFrame(b.frames)
}

// apply takes a frame from the current animator. Frames from an animator
// that has since been replaced are dropped.
func (b *backdrop) apply(msg FrameMsg) tea.Cmd {
	if b.frames == nil || msg.source != b.frames {
		return nil
	}
	b.cells = msg.Cells
	return waitForFrame(b.frames)
}

func (b *backdrop) stop() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.frames = nil
}
