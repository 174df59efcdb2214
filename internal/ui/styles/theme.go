// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	Palette Palette

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// SHELL
	// ==========================================================================

	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderMeta  lipgloss.Style
	Body        lipgloss.Style
	Footer      lipgloss.Style

	DockItem       lipgloss.Style
	DockItemActive lipgloss.Style
	DockKey        lipgloss.Style

	// ==========================================================================
	// CHAT
	// ==========================================================================

	UserBubble   lipgloss.Style
	AgentBubble  lipgloss.Style
	OtherBubble  lipgloss.Style
	SenderLabel  lipgloss.Style
	Timestamp    lipgloss.Style
	Typing       lipgloss.Style
	InputBox     lipgloss.Style
	InputPrompt  lipgloss.Style
	Notice       lipgloss.Style
	ErrorNotice  lipgloss.Style
	Sidebar      lipgloss.Style
	ChannelItem  lipgloss.Style
	ChannelFocus lipgloss.Style
	Badge        lipgloss.Style

	// ==========================================================================
	// CARDS
	// ==========================================================================

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Secret       lipgloss.Style
	On           lipgloss.Style
	Off          lipgloss.Style
	Star         lipgloss.Style
	PlanBadge    lipgloss.Style
	Button       lipgloss.Style

	// GridBands are glyph styles ordered dimmest first.
	GridBands []lipgloss.Style
}

// NewTheme creates a theme for the given skin with all styles configured.
func NewTheme(skin string) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Palette:      PaletteFor(skin),
	}

	t.initStyles()
	return t
}

// WithSkin returns a copy of the theme restyled for skin. Terminal
// detection is not repeated, so it is safe to call while a program owns
// the terminal.
func (t *Theme) WithSkin(skin string) *Theme {
	nt := &Theme{
		IsDark:       t.IsDark,
		HasTrueColor: t.HasTrueColor,
		ColorProfile: t.ColorProfile,
		Palette:      PaletteFor(skin),
		Width:        t.Width,
		Height:       t.Height,
	}
	nt.initStyles()
	return nt
}

// Skin returns the name of the active palette.
func (t *Theme) Skin() string {
	return t.Palette.Name
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	t.App = lipgloss.NewStyle().Foreground(p.TextPrimary)

	t.Header = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Body = lipgloss.NewStyle().Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Padding(0, 1)

	// Dock
	t.DockItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.DockItemActive = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)

	t.DockKey = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Chat
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	t.AgentBubble = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(0, 1)

	t.OtherBubble = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.SenderLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Typing = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.Notice = lipgloss.NewStyle().
		Foreground(p.Success)

	t.ErrorNotice = lipgloss.NewStyle().
		Foreground(p.Danger)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Overlay).
		PaddingRight(1)

	t.ChannelItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	t.ChannelFocus = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Warning).
		Padding(0, 1)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.CardSelected = t.Card.
		BorderForeground(p.Primary)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	t.Label = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Value = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.Secret = lipgloss.NewStyle().
		Foreground(p.Warning)

	t.On = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	t.Off = lipgloss.NewStyle().
		Foreground(p.Danger)

	t.Star = lipgloss.NewStyle().
		Foreground(p.Warning)

	t.PlanBadge = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Secondary).
		Bold(true).
		Padding(0, 1)

	t.Button = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.GridBands = make([]lipgloss.Style, len(p.GridBands))
	for i, c := range p.GridBands {
		t.GridBands[i] = lipgloss.NewStyle().Foreground(c)
	}
}

// GridStyle returns the glyph style for a cell opacity.
func (t *Theme) GridStyle(opacity float64) lipgloss.Style {
	if len(t.GridBands) == 0 {
		return lipgloss.NewStyle()
	}
	return t.GridBands[OpacityBand(opacity, len(t.GridBands))]
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
