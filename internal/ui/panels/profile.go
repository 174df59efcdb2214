// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/profile"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/ui/components"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// Profile is the read-only account page. The action buttons can be
// focused but do nothing.
type Profile struct {
	account model.Account
	usage   []model.UsageMetric
	action  int
	theme   *styles.Theme
	width   int
	height  int
}

// NewProfile builds the page from the seeded account and usage.
func NewProfile(deps Deps, data *seed.Data) *Profile {
	return &Profile{
		account: data.Profile.Account,
		usage:   data.Profile.Usage,
		theme:   deps.Theme,
	}
}

// Action returns the focused button index.
func (p *Profile) Action() int { return p.action }

func (p *Profile) Init() tea.Cmd { return nil }

func (p *Profile) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keyLeft), key.Matches(km, keyUp):
			p.action = moveCursor(p.action, -1, len(profile.Actions))
		case key.Matches(km, keyRight), key.Matches(km, keyDown):
			p.action = moveCursor(p.action, 1, len(profile.Actions))
		}
	}
	return p, nil
}

func (p *Profile) View() string {
	barWidth := p.width - 4
	if barWidth > 60 {
		barWidth = 60
	}

	identity := p.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.theme.CardTitle.Render(p.account.Name)+"  "+p.theme.PlanBadge.Render(p.account.Plan),
		p.theme.Label.Render(p.account.Handle),
	))

	bar := components.NewUsageBar(p.theme, barWidth)
	usage := make([]string, 0, len(p.usage)+1)
	usage = append(usage, p.theme.Label.Render("USAGE"))
	for _, m := range p.usage {
		usage = append(usage, bar.View(m))
	}

	rows := []string{p.theme.Label.Render("ACCOUNT")}
	for _, r := range profile.AccountRows(p.account) {
		rows = append(rows, p.theme.Label.Render(util.PadWidth(r.Label, 16))+p.theme.Value.Render(r.Value))
	}

	buttons := make([]string, 0, len(profile.Actions))
	for i, a := range profile.Actions {
		style := p.theme.Button
		if i == p.action {
			style = style.BorderForeground(p.theme.Palette.Primary)
		}
		buttons = append(buttons, style.Render(a))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		identity,
		"",
		strings.Join(usage, "\n\n"),
		p.theme.Label.Render(components.Divider(barWidth)),
		strings.Join(rows, "\n"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
}

func (p *Profile) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *Profile) SetTheme(theme *styles.Theme) { p.theme = theme }

func (p *Profile) Keys() help.KeyMap {
	return bindingList{keyLeft, keyRight}
}

func (p *Profile) CapturesInput() bool { return false }
func (p *Profile) Close()              {}
