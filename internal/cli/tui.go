// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/ui/app"
)

// ErrNoTerminal is returned when the interface is started without a tty.
var ErrNoTerminal = errors.New("the interface needs a terminal (try 'agentdeck chat' for line mode)")

// runTUI starts the interface and blocks until it exits.
func runTUI(ctx context.Context, o *rootOptions) error {
	if !IsTTY() || !IsStdoutTTY() {
		return ErrNoTerminal
	}

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	m := app.New(app.Options{
		Config:    o.cfg,
		Logger:    o.logger,
		Version:   Version,
		Session:   o.info,
		View:      o.view,
		ExportDir: exportDir,
	})
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if o.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	if o.cfgPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := config.Watch(watchCtx, o.cfgPath, func(cfg *config.Config, err error) {
			p.Send(app.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			o.logger.Warn("config watch unavailable", zap.Error(err))
		}
	}

	o.logger.Info("interface started",
		zap.String("view", m.Active()),
		zap.String("engine", string(m.Engine())),
		zap.String("skin", o.cfg.UI.Skin),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running agentdeck: %w", err)
	}
	return nil
}
