// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// TypingSpinner is the three-dot "agent is typing" animation.
var TypingSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// ScanSpinner runs while an upload is being scanned.
var ScanSpinner = SpinnerConfig{
	Frames: []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[====]", "[ ===]", "[  ==]", "[   =]"},
	FPS:    8,
}

// =============================================================================
// GRID BANDS
// =============================================================================

// Grid cell opacities fall in [GridMinOpacity, GridMaxOpacity).
const (
	GridMinOpacity = 0.2
	GridMaxOpacity = 0.7
)

// OpacityBand maps an opacity onto one of n color bands, 0 being dimmest.
// Values outside the grid range clamp to the first or last band.
func OpacityBand(opacity float64, n int) int {
	if n <= 1 {
		return 0
	}
	frac := (opacity - GridMinOpacity) / (GridMaxOpacity - GridMinOpacity)
	band := int(frac * float64(n))
	if band < 0 {
		return 0
	}
	if band >= n {
		return n - 1
	}
	return band
}
