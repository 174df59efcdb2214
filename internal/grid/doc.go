// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grid generates the decorative glyph field drawn behind every view.
//
// A Grid holds DefaultCells cells. An Animator flips five percent of them
// every Interval and publishes a Frame; cancelling the context passed to
// Start stops the ticker and closes the frame channel:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	frames := grid.NewAnimator(grid.New(grid.DefaultCells, rng), rng).Start(ctx)
//	defer cancel()
//
// The Engine chosen on the settings sheet decides whether the grid is
// animated, drawn once, or hidden.
package grid
