// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the agentdeck TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// SKINS
// =============================================================================

// Skin names accepted by PaletteFor. They match the config values.
const (
	SkinNeon     = "neon"
	SkinLowLight = "low-light"
)

// Palette is the set of colors one skin paints with.
type Palette struct {
	Name string

	// Accents
	Primary   lipgloss.AdaptiveColor // brand, active dock item, user bubbles
	Secondary lipgloss.AdaptiveColor // agent bubbles, selections
	Success   lipgloss.AdaptiveColor // connected, online
	Danger    lipgloss.AdaptiveColor // disconnected, errors
	Warning   lipgloss.AdaptiveColor // stars, unread badges

	// Surfaces
	Surface       lipgloss.AdaptiveColor
	SurfaceDim    lipgloss.AdaptiveColor
	SurfaceBright lipgloss.AdaptiveColor
	Overlay       lipgloss.AdaptiveColor

	// Text
	TextPrimary   lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextInverse   lipgloss.AdaptiveColor

	// Grid glyphs, dimmest first.
	GridBands []lipgloss.AdaptiveColor
}

// =============================================================================
// NEON (default)
// =============================================================================

// Cyan - Brand color, user highlights
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Purple - Agent messages, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Emerald - Connected and online states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Disconnected and error states
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Stars and unread badges
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Neon is the bright default skin.
var Neon = Palette{
	Name:          SkinNeon,
	Primary:       Cyan,
	Secondary:     Purple,
	Success:       Emerald,
	Danger:        Rose,
	Warning:       Amber,
	Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0B14"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#07070D"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#1C1C2E"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2A2A40"},
	TextPrimary:   lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E0F7FF"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0B14"},
	GridBands: []lipgloss.AdaptiveColor{
		{Light: "#CFFAFE", Dark: "#0E3A44"},
		{Light: "#A5F3FC", Dark: "#155E75"},
		{Light: "#67E8F9", Dark: "#0E7490"},
		{Light: "#22D3EE", Dark: "#22D3EE"},
	},
}

// =============================================================================
// LOW LIGHT
// =============================================================================

// LowLight is the dimmed skin for dark rooms. Accents are desaturated and
// the grid stays close to the background.
var LowLight = Palette{
	Name:          SkinLowLight,
	Primary:       lipgloss.AdaptiveColor{Light: "#7F1D1D", Dark: "#B45454"},
	Secondary:     lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#8C7B70"},
	Success:       lipgloss.AdaptiveColor{Light: "#3F6212", Dark: "#6B8E4E"},
	Danger:        lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#C25B5B"},
	Warning:       lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#B08A4A"},
	Surface:       lipgloss.AdaptiveColor{Light: "#F5F5F4", Dark: "#0A0606"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#050303"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FAFAF9", Dark: "#1A1010"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#D6D3D1", Dark: "#2B1A1A"},
	TextPrimary:   lipgloss.AdaptiveColor{Light: "#292524", Dark: "#D6C7C0"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#9A8A82"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#5C4E48"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FAFAF9", Dark: "#0A0606"},
	GridBands: []lipgloss.AdaptiveColor{
		{Light: "#E7E5E4", Dark: "#1A0E0E"},
		{Light: "#D6D3D1", Dark: "#2B1616"},
		{Light: "#A8A29E", Dark: "#3F1F1F"},
		{Light: "#78716C", Dark: "#5A2A2A"},
	},
}

// PaletteFor returns the palette for a skin name. Unknown names get Neon.
func PaletteFor(skin string) Palette {
	if skin == SkinLowLight {
		return LowLight
	}
	return Neon
}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Connected    string
	Disconnected string
	Starred      string
	Unstarred    string
	Active       string
}

// StatusIndicators are ASCII-only so they survive any terminal.
var StatusIndicators = StatusIndicatorSet{
	Connected:    "[ON]",
	Disconnected: "[OFF]",
	Starred:      "[*]",
	Unstarred:    "[ ]",
	Active:       ">",
}
