// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/logging"
	"github.com/jeranaias/agentdeck/internal/session"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// IOStreams are the standard streams a command writes to.
type IOStreams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() IOStreams {
	return IOStreams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// rootOptions holds the persistent flags and what PersistentPreRunE builds
// from them.
type rootOptions struct {
	streams IOStreams

	configPath  string
	view        string
	engine      string
	skin        string
	noAltScreen bool
	verbose     bool

	cfg        *config.Config
	cfgPath    string
	logger     *zap.Logger
	info       session.Info
	loadFailed error
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	streams := StdStreams()
	cmd := NewRootCmd(streams)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the agentdeck command tree.
func NewRootCmd(streams IOStreams) *cobra.Command {
	o := &rootOptions{streams: streams}

	root := &cobra.Command{
		Use:   "agentdeck",
		Short: "AGENTDECK - terminal deck for an agent, a hive, and their tools",
		Long: `agentdeck is an interactive terminal mock-up of an agent console.

Views:
  Agent     one-to-one terminal with a canned assistant
  Hive      group chat; mention the helper to get an answer
  Nexus     integration cards
  Vault     file cards
  Profile   account and usage
  Settings  skin, visual engine, system info

Everything shown is seeded mock data held in memory. Restarting resets it.

Run without arguments to start the interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), o)
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default ~/.agentdeck/config.toml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")

	local := root.Flags()
	local.StringVar(&o.view, "view", "", "initial view: agent, hive, nexus, vault, profile, settings")
	local.StringVar(&o.engine, "engine", "", "visual engine: data-stream, static-grid, deep-void")
	local.StringVar(&o.skin, "skin", "", "interface skin: neon, low-light")
	local.BoolVar(&o.noAltScreen, "no-alt-screen", false, "render inline instead of on the alternate screen")

	root.AddCommand(
		newChatCmd(o),
		newConfigCmd(o),
		newVersionCmd(o),
	)
	return root
}

// setup loads the config, applies flag overrides, and opens the log.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, path, err := loadConfig(o.configPath)
	if err != nil {
		if cfg == nil {
			return err
		}
		// A broken default file still lets the program start on defaults.
		o.loadFailed = err
	}

	if o.skin != "" {
		cfg.UI.Skin = o.skin
	}
	if o.engine != "" {
		cfg.UI.Engine = o.engine
	}
	if o.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	o.cfg = cfg
	o.cfgPath = path
	o.info = session.NewInfo()

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	o.logger, err = logging.New(logging.Options{
		Path:    logPath,
		Level:   cfg.Log.Level,
		Verbose: o.verbose,
	})
	if err != nil {
		return err
	}
	o.logger = o.logger.With(zap.String("session", o.info.ID))

	if o.loadFailed != nil {
		o.logger.Warn("config file ignored", zap.Error(o.loadFailed))
		fmt.Fprintf(o.streams.Err, "%s %v\n", warnStyle.Render("[WARN]"), o.loadFailed)
	}
	o.logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("config", path))
	return nil
}

// loadConfig reads an explicit path or the default locations. It returns
// the file it used, or "" when running on defaults.
func loadConfig(explicit string) (*config.Config, string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); errors.Is(err, fs.ErrNotExist) {
			// Not written yet: run on defaults and let 'config init' create it.
			return envDefaults(), explicit, nil
		}
		cfg, err := config.LoadFromPath(explicit)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", explicit, err)
		}
		return cfg, explicit, nil
	}

	cfg, err := config.Load()
	path := ""
	for _, candidate := range []func() (string, error){config.ConfigPathTOML, config.ConfigPathJSON} {
		p, perr := candidate()
		if perr != nil {
			continue
		}
		if _, serr := os.Stat(p); serr == nil {
			path = p
			break
		}
	}
	if err != nil && errors.Is(err, config.ErrUnknownKey) {
		err = fmt.Errorf("%w (run 'agentdeck config init --force' to regenerate)", err)
	}
	return cfg, path, err
}

// envDefaults is the built-in config with AGENTDECK_* overrides applied.
// Bad overrides are caught by the Validate call in setup.
func envDefaults() *config.Config {
	cfg := config.Default()
	_ = cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	return cfg
}
