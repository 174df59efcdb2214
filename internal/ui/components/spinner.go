// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// Typing shows "<label> is typing" with an animated ellipsis while a reply
// is pending.
type Typing struct {
	spinner   spinner.Model
	text      string
	startTime time.Time
	isActive  bool
	theme     *styles.Theme
}

// NewTyping creates an inactive typing indicator for the given speaker.
func NewTyping(theme *styles.Theme, label string) Typing {
	return Typing{
		spinner: newSpinner(styles.TypingSpinner),
		text:    label + " is typing",
		theme:   theme,
	}
}

// NewScanning creates an indicator for uploads under scan.
func NewScanning(theme *styles.Theme) Typing {
	return Typing{
		spinner: newSpinner(styles.ScanSpinner),
		text:    "SCANNING UPLOAD ",
		theme:   theme,
	}
}

func newSpinner(cfg styles.SpinnerConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Duration(),
	}
	return s
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Start activates the indicator. The returned Cmd drives the animation and
// is nil when the indicator was already running.
func (t *Typing) Start() tea.Cmd {
	if t.isActive {
		return nil
	}
	t.isActive = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator. Pending ticks are ignored afterwards.
func (t *Typing) Stop() {
	t.isActive = false
}

// IsActive returns whether the indicator is running.
func (t *Typing) IsActive() bool {
	return t.isActive
}

// GetElapsed returns the duration since the indicator started.
func (t *Typing) GetElapsed() time.Duration {
	if t.startTime.IsZero() {
		return 0
	}
	return time.Since(t.startTime)
}

// SetTheme swaps the theme after a skin change.
func (t *Typing) SetTheme(theme *styles.Theme) {
	t.theme = theme
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update advances the animation. Ticks for a stopped indicator are dropped
// so the tick loop ends.
func (t Typing) Update(msg tea.Msg) (Typing, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}

	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, or "" when inactive.
func (t Typing) View() string {
	if !t.isActive || t.theme == nil {
		return ""
	}
	return t.theme.Typing.Render(t.text + t.spinner.View())
}
