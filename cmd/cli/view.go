// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"funtree/cmd/tui"
	"funtree/internal/tree"

	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "view [size]",
		Short:             "Grow and shrink a tree interactively",
		Long:              `Opens a full-screen viewer. Without a size it starts from default_size in the config.`,
		Example:           "  funtree view\n  funtree view 7",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sizeCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.viewSize(args)
			if err != nil {
				return err
			}
			return tui.RunTUI(size, a.cfg.MaxSize)
		},
	}
}

func (a *app) viewSize(args []string) (tree.Size, error) {
	size := tree.Size(a.cfg.DefaultSize)
	if len(args) > 0 {
		var err error
		size, err = tree.ParseSize(args[0])
		if err != nil {
			return 0, err
		}
	}
	if err := tree.CheckMax(size, a.cfg.MaxSize); err != nil {
		return 0, err
	}
	return size, nil
}
