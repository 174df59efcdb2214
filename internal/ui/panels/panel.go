// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// PANEL INTERFACE
// =============================================================================

// Panel is the body of one view. The app owns exactly one panel at a time;
// switching views closes the old panel and builds a fresh one.
type Panel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Panel, tea.Cmd)
	View() string

	SetSize(width, height int)
	SetTheme(theme *styles.Theme)

	// Keys returns the bindings listed in the footer.
	Keys() help.KeyMap

	// CapturesInput reports whether printable keys belong to the panel,
	// in which case the app does not treat digits as view shortcuts.
	CapturesInput() bool

	// Close releases timers and goroutines. It is idempotent.
	Close()
}

// Deps carries what a panel needs to build itself.
type Deps struct {
	Theme   *styles.Theme
	Config  *config.Config
	Logger  *zap.Logger
	Session session.Info
	Version string

	// ExportDir is where /export writes generated filenames.
	ExportDir string

	// Rand seeds the agent's reply picker. Nil means a random seed.
	Rand *rand.Rand

	// Now stamps relative seed times. Nil means time.Now.
	Now func() time.Time
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) config() *config.Config {
	if d.Config == nil {
		return config.Default()
	}
	return d.Config
}

// =============================================================================
// FACTORY
// =============================================================================

// Build creates the panel registered for a view id from a fresh copy of
// the seed. It returns false for ids with no panel.
func Build(id string, deps Deps) (Panel, bool) {
	data, err := seed.Load()
	if err != nil {
		deps.logger().Error("seed data unavailable", zap.Error(err))
		return nil, false
	}

	switch id {
	case nav.Agent:
		return NewAgent(deps, data), true
	case nav.Hive:
		return NewHive(deps, data), true
	case nav.Nexus:
		return NewNexus(deps, data), true
	case nav.Vault:
		return NewVault(deps, data), true
	case nav.Profile:
		return NewProfile(deps, data), true
	case nav.Settings:
		return NewSettings(deps), true
	default:
		return nil, false
	}
}
