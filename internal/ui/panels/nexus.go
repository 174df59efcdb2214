// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/nexus"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

var (
	keyToggleLink = key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "connect/disconnect"),
	)
	keyReveal = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reveal key"),
	)
)

// Nexus lists integrations as cards. The focused card can be connected,
// disconnected, and have its secrets revealed.
type Nexus struct {
	nexus  *nexus.Nexus
	cursor int
	theme  *styles.Theme
	log    *zap.Logger
	width  int
	height int
}

// NewNexus builds the panel from the seeded integrations.
func NewNexus(deps Deps, data *seed.Data) *Nexus {
	return &Nexus{
		nexus: nexus.New(data.Nexus),
		theme: deps.Theme,
		log:   deps.logger().Named("nexus"),
	}
}

// Model exposes the integration list.
func (n *Nexus) Model() *nexus.Nexus { return n.nexus }

// Cursor returns the focused card index.
func (n *Nexus) Cursor() int { return n.cursor }

func (n *Nexus) focused() (model.Integration, bool) {
	items := n.nexus.Integrations()
	if n.cursor < 0 || n.cursor >= len(items) {
		return model.Integration{}, false
	}
	return items[n.cursor], true
}

func (n *Nexus) Init() tea.Cmd { return nil }

func (n *Nexus) Update(msg tea.Msg) (Panel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil
	}

	count := len(n.nexus.Integrations())
	switch {
	case key.Matches(km, keyUp), key.Matches(km, keyLeft):
		n.cursor = moveCursor(n.cursor, -1, count)
	case key.Matches(km, keyDown), key.Matches(km, keyRight):
		n.cursor = moveCursor(n.cursor, 1, count)
	case key.Matches(km, keyToggleLink):
		if in, ok := n.focused(); ok {
			n.nexus.Toggle(in.ID)
			n.log.Debug("integration toggled", zap.String("id", in.ID), zap.Bool("connected", !in.Connected))
		}
	case key.Matches(km, keyReveal):
		if in, ok := n.focused(); ok {
			n.nexus.ToggleSecret(in.ID)
		}
	}
	return n, nil
}

func (n *Nexus) View() string {
	items := n.nexus.Integrations()
	summary := n.theme.Label.Render(fmt.Sprintf("%d/%d NODES CONNECTED", n.nexus.Connected(), len(items)))

	cardWidth := n.width - 2
	horizontal := n.width >= 90 && len(items) > 0
	if horizontal {
		cardWidth = n.width/len(items) - 2
	}

	cards := make([]string, 0, len(items))
	for i, in := range items {
		cards = append(cards, n.renderCard(in, i == n.cursor, cardWidth))
	}

	var body string
	if horizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", body)
}

func (n *Nexus) renderCard(in model.Integration, focused bool, width int) string {
	status := n.theme.Off.Render(styles.StatusIndicators.Disconnected)
	if in.Connected {
		status = n.theme.On.Render(styles.StatusIndicators.Connected)
	}

	lines := []string{n.theme.CardTitle.Render(strings.ToUpper(in.Name)) + " " + status}
	for _, attr := range in.Attributes {
		valueStyle := n.theme.Value
		if attr.Kind == model.AttrSecret {
			valueStyle = n.theme.Secret
		}
		lines = append(lines, n.theme.Label.Render(attr.Label+": ")+valueStyle.Render(n.nexus.Display(in.ID, attr)))
	}

	style := n.theme.Card
	if focused {
		style = n.theme.CardSelected
	}
	if width > 4 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (n *Nexus) SetSize(width, height int) {
	n.width = width
	n.height = height
}

func (n *Nexus) SetTheme(theme *styles.Theme) { n.theme = theme }

func (n *Nexus) Keys() help.KeyMap {
	return bindingList{keyUp, keyDown, keyToggleLink, keyReveal}
}

func (n *Nexus) CapturesInput() bool { return false }
func (n *Nexus) Close()              {}
