// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the structured form of a rendered tree.
type Document struct {
	Size Size     `json:"size" yaml:"size"`
	Apex string   `json:"apex" yaml:"apex"`
	Rows []string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// NewDocument splits the tree of size n into its apex and rows.
func NewDocument(n Size) Document {
	lines := Lines(n)
	return Document{
		Size: n,
		Apex: lines[0],
		Rows: lines[1:],
	}
}

// YAML marshals the document.
func (d Document) YAML() (string, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tree to YAML: %w", err)
	}
	return string(data), nil
}
