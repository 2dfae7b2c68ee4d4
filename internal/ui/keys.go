// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the tree viewer.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the viewer.
type KeyMap struct {
	Grow   key.Binding // Add a row
	Shrink key.Binding // Remove a row
	Reset  key.Binding // Back to the starting size
	Help   key.Binding // Toggle the full help
	Quit   key.Binding // Exit the viewer
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Grow: key.NewBinding(
		key.WithKeys("+", "=", "up", "k"),
		key.WithHelp("+/↑", "grow"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-", "_", "down", "j"),
		key.WithHelp("-/↓", "shrink"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grow, k.Shrink, k.Reset},
		{k.Help, k.Quit},
	}
}
