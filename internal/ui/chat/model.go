// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/export"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/components"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config describes one chat surface. Agent and Hive share the model and
// differ only here.
type Config struct {
	// View is the view id recorded in exports ("agent", "hive").
	View string

	// Title names the transcript in exports.
	Title string

	// TypingLabel is shown as "<label> is typing" while a reply is pending.
	TypingLabel string

	Placeholder string

	// AllowAttach enables the upload key and /attach.
	AllowAttach bool

	// Markdown renders message bodies through glamour.
	Markdown bool

	// ExportDir is where generated export filenames are placed.
	ExportDir string

	SessionID string
	Logger    *zap.Logger
}

// chrome is the number of rows around the transcript: indicator, notice,
// and the two-row input box.
const chrome = 4

// lenPrompt is the width of the "> " input prompt.
const lenPrompt = 2

// =============================================================================
// MODEL
// =============================================================================

// Model is a transcript viewport over a session.Simulator plus an input
// line. The simulator's store is the source of truth; the viewport is
// rebuilt from it whenever the simulator signals.
type Model struct {
	cfg   Config
	theme *styles.Theme
	sim   *session.Simulator
	log   *zap.Logger

	viewport viewport.Model
	input    textinput.Model
	typing   components.Typing
	scanning components.Typing
	keys     KeyMap

	md      *glamour.TermRenderer
	mdWidth int

	notice    string
	noticeErr bool

	width  int
	height int
}

// New creates a chat model over sim. The model owns sim: Close closes it.
func New(theme *styles.Theme, sim *session.Simulator, cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Type a message..."
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 4096
	ti.PromptStyle = theme.InputPrompt
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		cfg:      cfg,
		theme:    theme,
		sim:      sim,
		log:      cfg.Logger.Named("chat").With(zap.String("view", cfg.View)),
		viewport: vp,
		input:    ti,
		typing:   components.NewTyping(theme, cfg.TypingLabel),
		scanning: components.NewScanning(theme),
		keys:     DefaultKeyMap(cfg.AllowAttach),
	}
	m.sync()
	return m
}

// =============================================================================
// GETTERS AND SETTERS
// =============================================================================

// Simulator returns the simulator behind the transcript.
func (m Model) Simulator() *session.Simulator {
	return m.sim
}

// Keys returns the key map for the footer help.
func (m Model) Keys() KeyMap {
	return m.keys
}

// Input returns the current input text.
func (m Model) Input() string {
	return m.input.Value()
}

// Notice returns the current notice line and whether it is an error.
func (m Model) Notice() (string, bool) {
	return m.notice, m.noticeErr
}

// Typing reports whether the typing indicator is showing.
func (m Model) Typing() bool {
	return m.typing.IsActive()
}

// SetTheme swaps the theme after a skin change and re-renders.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.input.PromptStyle = theme.InputPrompt
	m.typing.SetTheme(theme)
	m.scanning.SetTheme(theme)
	m.md = nil
	m.sync()
}

// SetSize resizes the transcript and input.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	vh := height - chrome
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vh

	m.input.Width = width - lenPrompt - 2
	if m.input.Width < 1 {
		m.input.Width = 1
	}
	m.sync()
}

// Transcript snapshots the current messages for export.
func (m Model) Transcript() *export.Transcript {
	return &export.Transcript{
		Title:     m.cfg.Title,
		View:      m.cfg.View,
		SessionID: m.cfg.SessionID,
		CreatedAt: time.Now(),
		Messages:  m.sim.Store().List(),
	}
}

// Close tears the panel down: pending replies and uploads are cancelled
// and the update channel is closed, which ends the wait command.
func (m *Model) Close() {
	m.typing.Stop()
	m.scanning.Stop()
	m.sim.Close()
	m.log.Debug("chat closed")
}

// setNotice shows text on the notice line.
func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// markdown returns a glamour renderer for the current width, or nil when
// markdown is off or the renderer cannot be built.
func (m *Model) markdown(width int) *glamour.TermRenderer {
	if !m.cfg.Markdown || width <= 0 {
		return nil
	}
	if m.md != nil && m.mdWidth == width {
		return m.md
	}

	style := "dark"
	if !m.theme.IsDark {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Warn("markdown renderer unavailable", zap.Error(err))
		m.cfg.Markdown = false
		return nil
	}
	m.md = r
	m.mdWidth = width
	return r
}
