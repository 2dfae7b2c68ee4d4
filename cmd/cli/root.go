// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"os"

	"funtree/internal/config"
	"funtree/internal/logger"
	"funtree/internal/tree"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// app carries state shared by the commands of one invocation.
type app struct {
	cfg     config.Config
	verbose bool
	format  string
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "funtree <size>",
		Short: "Print an ASCII-art tree",
		Long: `Prints an ASCII-art tree: an apex line of <size> spaces and '*',
followed by <size> rows of widening '0' leaves right-aligned under the apex.

Settings are read from ~/.config/funtree/config.yaml.`,
		Example:           "  funtree 3\n  funtree 5 --format yaml",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sizeCompletionFunc,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printTree(cmd.OutOrStdout(), args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "also write logs to stderr")
	rootCmd.Flags().StringVarP(&a.format, "format", "f", formatText, "output format: text, yaml or json")
	_ = rootCmd.RegisterFlagCompletionFunc("format", formatCompletionFunc)

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newViewCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup loads the configuration and initializes the logger. The bare print
// command only touches stdout: its arguments are checked before the config,
// a broken config falls back to the defaults and no log file is opened.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	printing := !cmd.HasParent()
	if printing {
		if _, err := tree.ParseArgs(args); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		if !printing {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		errorColor.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring configuration: %v\n", err)
		cfg = config.Default()
	}
	a.cfg = cfg

	logToFile := cfg.LogToFile() && !printing
	logPath := ""
	if logToFile && cfg.Log.Path != "" {
		logPath, err = config.ResolvePath(cfg.Log.Path)
		if err != nil {
			return err
		}
	}
	logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		File:         logToFile,
		FilePath:     logPath,
		Stderr:       a.verbose && cmd.Name() != "view", // the viewer owns the terminal
		StderrWriter: cmd.ErrOrStderr(),
	})
	logger.Debug("command started", "command", cmd.CommandPath(), "args", args)
	return nil
}

// printTree validates everything before writing, so a failure never leaves
// a partial tree on out.
func (a *app) printTree(out io.Writer, args []string) error {
	size, err := tree.ParseArgs(args)
	if err != nil {
		return err
	}
	if err := tree.CheckMax(size, a.cfg.MaxSize); err != nil {
		return err
	}

	logger.Info("printing tree", "size", int(size), "format", a.format)

	switch a.format {
	case formatText, "":
		return tree.Render(out, size)
	case formatYAML:
		doc, err := tree.NewDocument(size).YAML()
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, doc)
		return err
	case formatJSON:
		return writeJSON(out, tree.NewDocument(size))
	default:
		return fmt.Errorf("%w: unknown format %q", tree.ErrInvalidArgument, a.format)
	}
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		errorColor.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func RunCLI() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
