// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"

	"funtree/internal/config"
	"funtree/internal/logger"

	"github.com/spf13/cobra"
)

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage funtree configuration",
		Long: `Provides subcommands to inspect and edit the funtree configuration file.
This includes the viewer's starting size, the size bound and the server port.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	configCmd.AddCommand(newConfigSetIntCmd(a, "set-port <port>", "Set the port used by `funtree serve`",
		func(cfg *config.Config, v int) error {
			if v < 1 || v > 65535 {
				return fmt.Errorf("port must be between 1 and 65535, got %d", v)
			}
			cfg.Server.Port = v
			return nil
		}))

	configCmd.AddCommand(newConfigSetIntCmd(a, "set-max-size <size>", "Set the largest size the CLI and viewer accept (0 means unbounded)",
		func(cfg *config.Config, v int) error {
			if v < 0 {
				return fmt.Errorf("max size must not be negative, got %d", v)
			}
			cfg.MaxSize = v
			return nil
		}))

	configCmd.AddCommand(newConfigSetIntCmd(a, "set-default-size <size>", "Set the starting size of `funtree view`",
		func(cfg *config.Config, v int) error {
			if v < 1 {
				return fmt.Errorf("default size must be positive, got %d", v)
			}
			cfg.DefaultSize = v
			return nil
		}))

	return configCmd
}

// newConfigSetIntCmd builds a setter that parses one integer, applies it and
// saves the configuration.
func newConfigSetIntCmd(a *app, use, short string, apply func(*config.Config, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an integer", args[0])
			}

			cfg := a.cfg
			if err := apply(&cfg, v); err != nil {
				return err
			}
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("error saving configuration: %w", err)
			}
			a.cfg = cfg

			logger.Info("configuration updated", "command", cmd.Name(), "value", v)
			successColor.Fprintf(cmd.OutOrStdout(), "Configuration saved (%s %d).\n", cmd.Name(), v)
			dimColor.Fprintln(cmd.OutOrStdout(), "Run 'funtree config show' to review all settings.")
			return nil
		},
	}
}
