// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/grid"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/components"
	"github.com/jeranaias/agentdeck/internal/ui/panels"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// Options configures the root model.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Version string
	Session session.Info

	// View overrides the configured default view.
	View string

	// ExportDir is where chat exports with generated names land.
	ExportDir string

	// Theme is reused when set; otherwise one is detected for the
	// configured skin.
	Theme *styles.Theme

	// Rand seeds the agent's reply picker.
	Rand *rand.Rand
}

// ConfigReloadedMsg delivers the result of a config file reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Model is the root bubbletea model: header, the active panel over the
// grid backdrop, the dock, and the footer.
type Model struct {
	opts  Options
	cfg   *config.Config
	log   *zap.Logger
	theme *styles.Theme
	keys  KeyMap

	switcher *nav.Switcher
	header   *components.Header
	dock     *components.Dock
	status   *components.StatusBar
	panel    panels.Panel
	backdrop backdrop

	initCmds []tea.Cmd
	width    int
	height   int
	quitting bool
}

// New builds the root model and mounts the initial view. Call Close when
// the program exits to stop the grid ticker and any pending replies.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg = cfg.Clone()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg.UI.Skin)
	} else if theme.Skin() != cfg.UI.Skin {
		theme = theme.WithSkin(cfg.UI.Skin)
	}

	initial := opts.View
	if initial == "" {
		initial = cfg.UI.DefaultView
	}

	m := &Model{
		opts:     opts,
		cfg:      cfg,
		log:      opts.Logger.Named("app"),
		theme:    theme,
		keys:     DefaultKeyMap(),
		switcher: nav.NewSwitcher(nav.DefaultItems, initial),
		header:   components.NewHeader(theme),
		dock:     components.NewDock(theme, nav.DefaultItems),
		status:   components.NewStatusBar(theme),
		width:    80,
		height:   24,
	}

	engine, err := grid.ParseEngine(cfg.UI.Engine)
	if err != nil {
		m.log.Warn("unknown engine, using default", zap.String("engine", cfg.UI.Engine))
		engine = grid.DataStream
	}

	m.initCmds = append(m.initCmds, m.mount(initial), m.backdrop.set(engine))
	m.refreshChrome()
	return m
}

// Init starts the panel and the grid.
func (m *Model) Init() tea.Cmd {
	cmds := m.initCmds
	m.initCmds = nil
	return tea.Batch(cmds...)
}

// Close tears down the panel and stops the grid. It is idempotent.
func (m *Model) Close() {
	if m.panel != nil {
		m.panel.Close()
	}
	m.backdrop.stop()
}

// Active returns the active view id.
func (m *Model) Active() string { return m.switcher.Active() }

// Panel returns the mounted panel, nil for a view with none.
func (m *Model) Panel() panels.Panel { return m.panel }

// Engine returns the visual engine in use.
func (m *Model) Engine() grid.Engine { return m.backdrop.engine }

// Theme returns the current theme.
func (m *Model) Theme() *styles.Theme { return m.theme }

// Config returns the model's copy of the configuration.
func (m *Model) Config() *config.Config { return m.cfg }

// Status returns the footer message, if any.
func (m *Model) Status() string { return m.status.Message() }

// =============================================================================
// VIEW SWITCHING
// =============================================================================

// selectView activates id, replacing the mounted panel.
func (m *Model) selectView(id string) tea.Cmd {
	if !m.switcher.Select(id) {
		return nil
	}
	m.status.ClearMessage()
	cmd := m.mount(id)
	m.refreshChrome()
	return cmd
}

// mount closes the current panel and builds a fresh one for id. An id with
// no panel leaves the body empty.
func (m *Model) mount(id string) tea.Cmd {
	if m.panel != nil {
		m.panel.Close()
		m.panel = nil
	}

	p, ok := panels.Build(id, panels.Deps{
		Theme:     m.theme,
		Config:    m.cfg,
		Logger:    m.opts.Logger,
		Session:   m.opts.Session,
		Version:   m.opts.Version,
		ExportDir: m.opts.ExportDir,
		Rand:      m.opts.Rand,
	})
	if !ok {
		m.log.Debug("no panel for view", zap.String("view", id))
		return nil
	}

	m.log.Debug("view mounted", zap.String("view", id))
	m.panel = p
	m.layout()
	return p.Init()
}

// =============================================================================
// SETTINGS
// =============================================================================

func (m *Model) applySkin(skin string) {
	if skin == m.theme.Skin() {
		return
	}
	m.cfg.UI.Skin = skin
	m.theme = m.theme.WithSkin(skin)
	m.header.SetTheme(m.theme)
	m.dock.SetTheme(m.theme)
	m.status.SetTheme(m.theme)
	if m.panel != nil {
		m.panel.SetTheme(m.theme)
	}
	m.log.Info("skin changed", zap.String("skin", skin))
}

func (m *Model) applyEngine(engine grid.Engine) tea.Cmd {
	if engine == m.backdrop.engine {
		return nil
	}
	m.cfg.UI.Engine = string(engine)
	cmd := m.backdrop.set(engine)
	m.refreshChrome()
	m.log.Info("engine changed", zap.String("engine", string(engine)))
	return cmd
}

// applyConfig takes a reloaded config. Skin and engine apply at once; the
// rest is picked up by the next panel that mounts.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("config reload failed", zap.Error(msg.Err))
		m.status.SetError("[FAIL] Config reload: " + msg.Err.Error())
		return nil
	}
	if msg.Config == nil {
		return nil
	}

	cfg := msg.Config.Clone()
	skin, engineName := cfg.UI.Skin, cfg.UI.Engine
	cfg.UI.Skin, cfg.UI.Engine = m.cfg.UI.Skin, m.cfg.UI.Engine
	m.cfg = cfg

	m.applySkin(skin)
	var cmd tea.Cmd
	if engine, err := grid.ParseEngine(engineName); err == nil {
		cmd = m.applyEngine(engine)
	}
	m.status.SetMessage("[OK] Config reloaded")
	return cmd
}

// refreshChrome updates the header and dock for the active view.
func (m *Model) refreshChrome() {
	active := m.switcher.Active()
	m.dock.Active = active

	section := active
	for _, it := range m.switcher.Items() {
		if it.ID == active {
			section = it.Label
		}
	}
	m.header.Section = section

	engineName := string(m.backdrop.engine)
	for _, e := range grid.Engines {
		if e.ID == m.backdrop.engine {
			engineName = e.Name
		}
	}
	meta := strings.ToUpper(engineName)
	if id := m.opts.Session.ID; id != "" {
		meta += " · " + id
	}
	m.header.Meta = meta
}
