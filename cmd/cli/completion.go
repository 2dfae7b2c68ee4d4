// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"slices"
	"strconv"
	"strings"

	"funtree/internal/config"

	"github.com/spf13/cobra"
)

// sizeCompletionFunc suggests a few sizes matching the typed prefix.
func sizeCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	suggestions := []string{}
	for _, n := range []int{1, 3, 5, 8, config.DefaultSize * 2} {
		s := strconv.Itoa(n)
		if strings.HasPrefix(s, toComplete) && !slices.Contains(suggestions, s) {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

func formatCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	finalSuggestions := []string{}
	for _, s := range []string{formatText, formatYAML, formatJSON} {
		if strings.HasPrefix(s, toComplete) {
			finalSuggestions = append(finalSuggestions, s)
		}
	}
	return finalSuggestions, cobra.ShellCompDirectiveNoFileComp
}

