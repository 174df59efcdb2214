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

	"github.com/jeranaias/agentdeck/internal/hive"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/chat"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// sidebarWidth is the channel column width, border included.
const sidebarWidth = 22

// Hive is the group chat: a channel sidebar beside the shared transcript.
// The helper answers only when mentioned.
type Hive struct {
	chat     chat.Model
	channels *hive.Channels
	theme    *styles.Theme
	keys     hiveKeys

	width  int
	height int
}

type hiveKeys struct {
	chat.KeyMap
	NextChannel key.Binding
	PrevChannel key.Binding
}

func (k hiveKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.NextChannel}, k.KeyMap.ShortHelp()...)
}

func (k hiveKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.NextChannel, k.PrevChannel}}, k.KeyMap.FullHelp()...)
}

// NewHive builds the group chat from the seeded channels and transcript.
func NewHive(deps Deps, data *seed.Data) *Hive {
	cfg := deps.config()

	sim := session.NewSimulator(
		session.NewStore(data.HiveMessages(deps.now())...),
		session.MentionResponder{Mention: cfg.Hive.Mention, Label: cfg.Hive.Assistant},
		session.WithUserLabel(cfg.UI.UserLabel),
		session.WithLogger(deps.logger()),
	)

	c := chat.New(deps.Theme, sim, chat.Config{
		View:        nav.Hive,
		Title:       "Hive",
		TypingLabel: cfg.Hive.Assistant,
		Placeholder: fmt.Sprintf("Message the hive (%s to ask the assistant)...", cfg.Hive.Mention),
		AllowAttach: true,
		Markdown:    true,
		ExportDir:   deps.ExportDir,
		SessionID:   deps.Session.ID,
		Logger:      deps.logger(),
	})

	return &Hive{
		chat:     c,
		channels: hive.NewChannels(data.Hive.Channels),
		theme:    deps.Theme,
		keys: hiveKeys{
			KeyMap: c.Keys(),
			NextChannel: key.NewBinding(
				key.WithKeys("ctrl+n"),
				key.WithHelp("C-n/C-p", "channel"),
			),
			PrevChannel: key.NewBinding(
				key.WithKeys("ctrl+p"),
				key.WithHelp("C-p", "previous channel"),
			),
		},
	}
}

// Channels exposes the sidebar.
func (h *Hive) Channels() *hive.Channels { return h.channels }

// Chat exposes the underlying chat model.
func (h *Hive) Chat() *chat.Model { return &h.chat }

func (h *Hive) Init() tea.Cmd { return h.chat.Init() }

func (h *Hive) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, h.keys.NextChannel):
			h.channels.Next()
			return h, nil
		case key.Matches(msg, h.keys.PrevChannel):
			h.channels.Prev()
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.chat, cmd = h.chat.Update(msg)
	return h, cmd
}

func (h *Hive) View() string {
	title := ""
	if ch, ok := h.channels.ActiveChannel(); ok {
		title = h.theme.CardTitle.Render(ch.Glyph() + " " + ch.Name)
	}
	main := lipgloss.JoinVertical(lipgloss.Left, title, h.chat.View())

	if h.width < 60 {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, h.renderSidebar(), main)
}

func (h *Hive) renderSidebar() string {
	// Right border and one column of padding.
	inner := sidebarWidth - 2
	lines := []string{h.theme.Label.Render("CHANNELS"), ""}

	for _, ch := range h.channels.Items() {
		style := h.theme.ChannelItem
		marker := "  "
		if ch.ID == h.channels.Active() {
			style = h.theme.ChannelFocus
			marker = styles.StatusIndicators.Active + " "
		}

		badge := ""
		if ch.Unread > 0 {
			badge = h.theme.Badge.Render(fmt.Sprint(ch.Unread))
		}
		nameWidth := inner - len(marker) - 2 - lipgloss.Width(badge)
		name := util.PadWidth(util.TruncateWidth(ch.Name, nameWidth), nameWidth)
		lines = append(lines, style.Render(marker+ch.Glyph()+" "+name)+badge)
	}

	body := strings.Join(lines, "\n")
	return h.theme.Sidebar.Width(sidebarWidth - 1).Height(h.height).Render(body)
}

func (h *Hive) SetSize(width, height int) {
	h.width = width
	h.height = height

	chatWidth := width
	if width >= 60 {
		chatWidth = width - sidebarWidth
	}
	// One row for the channel title.
	h.chat.SetSize(chatWidth, height-1)
}

func (h *Hive) SetTheme(theme *styles.Theme) {
	h.theme = theme
	h.chat.SetTheme(theme)
}

func (h *Hive) Keys() help.KeyMap   { return h.keys }
func (h *Hive) CapturesInput() bool { return true }
func (h *Hive) Close()              { h.chat.Close() }
