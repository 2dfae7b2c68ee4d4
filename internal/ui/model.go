// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive tree viewer behind `funtree view`.
package ui

import (
	"fmt"
	"strings"

	"funtree/internal/logger"
	"funtree/internal/tree"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model of the viewer.
type Model struct {
	size    tree.Size
	initial tree.Size
	maxSize int // 0 means unbounded
	atLimit bool

	keys KeyMap
	help help.Model

	width  int
	height int
}

// InitialModel returns a viewer starting at size, never growing past maxSize.
func InitialModel(size tree.Size, maxSize int) Model {
	return Model{
		size:    size,
		initial: size,
		maxSize: maxSize,
		keys:    DefaultKeyMap,
		help:    help.New(),
	}
}

// Size returns the size currently displayed.
func (m Model) Size() tree.Size {
	return m.size
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.atLimit = false
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Grow):
			if err := tree.CheckMax(m.size+1, m.maxSize); err != nil {
				m.atLimit = true
				logger.Debug("viewer at max size", "size", int(m.size))
				break
			}
			m.size++
		case key.Matches(msg, m.keys.Shrink):
			if m.size > 0 {
				m.size--
			}
		case key.Matches(msg, m.keys.Reset):
			m.size = m.initial
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// renderTree styles the apex and leaves separately so spacing stays intact.
func (m Model) renderTree() string {
	lines := tree.Lines(m.size)
	var b strings.Builder
	for i, line := range lines {
		leaves := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(leaves)]
		b.WriteString(indent)
		if i == 0 {
			b.WriteString(apexStyle.Render(leaves))
		} else {
			b.WriteString(leafStyle.Render(leaves))
		}
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("funtree"))
	b.WriteString(" ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("size %d", m.size)))
	b.WriteString("\n\n")
	b.WriteString(mainContentBorderStyle.Render(m.renderTree()))
	b.WriteString("\n")
	if m.atLimit {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Maximum size %d reached", m.maxSize)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
