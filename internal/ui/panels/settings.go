// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// SkinChangedMsg asks the app to rebuild the theme.
type SkinChangedMsg struct {
	Skin string
}

// EngineChangedMsg asks the app to switch the background grid.
type EngineChangedMsg struct {
	Engine grid.Engine
}

const (
	rowSkin = iota
	rowEngine
	settingsRows
)

var keyToggle = key.NewBinding(
	key.WithKeys(" ", "enter"),
	key.WithHelp("space", "change"),
)

// Settings is the sheet with the interface skin toggle, the visual engine
// selector, and read-only system info.
type Settings struct {
	skin    string
	engine  grid.Engine
	row     int
	info    session.Info
	version string
	theme   *styles.Theme
	width   int
	height  int
}

// NewSettings builds the sheet from the current config.
func NewSettings(deps Deps) *Settings {
	cfg := deps.config()
	engine, err := grid.ParseEngine(cfg.UI.Engine)
	if err != nil {
		engine = grid.DataStream
	}
	return &Settings{
		skin:    cfg.UI.Skin,
		engine:  engine,
		info:    deps.Session,
		version: deps.Version,
		theme:   deps.Theme,
	}
}

// Skin returns the selected skin.
func (s *Settings) Skin() string { return s.skin }

// Engine returns the selected engine.
func (s *Settings) Engine() grid.Engine { return s.engine }

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Update(msg tea.Msg) (Panel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(km, keyUp):
		s.row = moveCursor(s.row, -1, settingsRows)
	case key.Matches(km, keyDown):
		s.row = moveCursor(s.row, 1, settingsRows)
	case key.Matches(km, keyToggle), key.Matches(km, keyRight):
		return s, s.change(1)
	case key.Matches(km, keyLeft):
		return s, s.change(-1)
	}
	return s, nil
}

// change applies the focused row and returns the message for the app.
func (s *Settings) change(delta int) tea.Cmd {
	switch s.row {
	case rowSkin:
		if s.skin == config.SkinLowLight {
			s.skin = config.SkinNeon
		} else {
			s.skin = config.SkinLowLight
		}
		skin := s.skin
		return func() tea.Msg { return SkinChangedMsg{Skin: skin} }

	case rowEngine:
		i := 0
		for j, e := range grid.Engines {
			if e.ID == s.engine {
				i = j
			}
		}
		n := len(grid.Engines)
		s.engine = grid.Engines[((i+delta)%n+n)%n].ID
		engine := s.engine
		return func() tea.Msg { return EngineChangedMsg{Engine: engine} }
	}
	return nil
}

func (s *Settings) View() string {
	focus := func(row int, body string) string {
		marker := "  "
		if row == s.row {
			marker = s.theme.InputPrompt.Render(styles.StatusIndicators.Active) + " "
		}
		return marker + body
	}

	low := s.theme.Label.Render("LOW_LIGHT_OPS")
	neon := s.theme.Label.Render("NEON")
	if s.skin == config.SkinLowLight {
		low = s.theme.On.Render("LOW_LIGHT_OPS")
	} else {
		neon = s.theme.On.Render("NEON")
	}
	skinRow := focus(rowSkin, s.theme.CardTitle.Render(util.PadWidth("Interface Skin", 18))+low+" :: "+neon)

	engines := []string{focus(rowEngine, s.theme.CardTitle.Render("Visual Engine"))}
	for _, e := range grid.Engines {
		mark := styles.StatusIndicators.Unstarred
		style := s.theme.Label
		if e.ID == s.engine {
			mark = "[x]"
			style = s.theme.Value
		}
		engines = append(engines, "    "+style.Render(mark+" "+util.PadWidth(e.Name, 12))+s.theme.Label.Render(e.Description))
	}

	info := []string{
		s.theme.CardTitle.Render("System"),
		s.theme.Label.Render(util.PadWidth("Version", 12)) + s.theme.Value.Render(s.version),
		s.theme.Label.Render(util.PadWidth("Session", 12)) + s.theme.Value.Render(s.info.ID),
		s.theme.Label.Render(util.PadWidth("Started", 12)) + s.theme.Value.Render(humanize.Time(s.info.StartTime)),
		s.theme.Label.Render(util.PadWidth("Uptime", 12)) + s.theme.Value.Render(s.info.Uptime().String()),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		skinRow,
		"",
		lipgloss.JoinVertical(lipgloss.Left, engines...),
		"",
		s.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, info...)),
	)
}

func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Settings) SetTheme(theme *styles.Theme) { s.theme = theme }

func (s *Settings) Keys() help.KeyMap {
	return bindingList{keyUp, keyDown, keyToggle}
}

func (s *Settings) CapturesInput() bool { return false }
func (s *Settings) Close()              {}
