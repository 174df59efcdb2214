// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit the configuration",
		Long: `Reads and writes ~/.agentdeck/config.toml (or the file given with --config).

Keys are dotted, e.g. ui.skin or hive.mention. Run 'agentdeck config keys'
to list them. AGENTDECK_* environment variables override the file.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(o),
		newConfigPathCmd(o),
		newConfigInitCmd(o),
		newConfigGetCmd(o),
		newConfigSetCmd(o),
		newConfigKeysCmd(),
		newConfigEnvCmd(),
	)
	return cmd
}

func newConfigShowCmd(o *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, o.cfg.String())
				return nil
			}
			return toml.NewEncoder(out).Encode(o.cfg)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newConfigPathCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.writePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd(o *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.writePath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if o.configPath == "" {
				err = config.Save(config.Default())
			} else {
				err = config.SaveTOML(config.Default(), path)
			}
			if err != nil {
				return err
			}
			o.logger.Info("config written", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("[OK] Wrote "+path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigGetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one effective setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newConfigSetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting in the config file",
		Long: `Changes one setting in the config file. Environment overrides are not
written back; the file keeps only what it held plus the new value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			path, err := o.writePath()
			if err != nil {
				return err
			}

			cfg, err := readFileOnly(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			cfg.SetDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveTOML(cfg, path); err != nil {
				return err
			}

			o.logger.Info("config updated", zap.String("key", key), zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), keyStyle.Render(key)+" = "+value)
			return nil
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every settable key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.AllKeys(), "\n"))
			return nil
		},
	}
}

func newConfigEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the AGENTDECK_* environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			help, err := config.EnvHelp()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), help)
			return nil
		},
	}
}

// writePath is the file config commands write: --config when given, else
// the default TOML path.
func (o *rootOptions) writePath() (string, error) {
	if o.configPath == "" {
		return config.ConfigPathTOML()
	}
	if strings.EqualFold(filepath.Ext(o.configPath), ".json") {
		return "", fmt.Errorf("%s: only TOML config files can be written", o.configPath)
	}
	return o.configPath, nil
}

// readFileOnly returns the defaults overlaid with path, without env
// overrides. A missing file is not an error.
func readFileOnly(path string) (*config.Config, error) {
	cfg := config.Default()
	err := config.LoadTOML(cfg, path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return cfg, nil
}
