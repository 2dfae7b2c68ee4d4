// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package tree renders the funtree shape: an apex line followed by rows of
// widening odd-length leaf strings, right-aligned under the apex.
package tree

import (
	"io"
	"strings"
)

const (
	// Apex is the character printed on the first line.
	Apex = "*"
	// Leaf is the character repeated on every row.
	Leaf = "0"
)

// Size is the tree size. It is both the indentation of the apex and the
// number of rows below it.
type Size int

// Lines returns the n+1 lines of the tree without line terminators.
func Lines(n Size) []string {
	if n < 0 {
		n = 0
	}

	lines := make([]string, 0, int(n)+1)
	lines = append(lines, strings.Repeat(" ", int(n))+Apex)
	for i := 0; i < int(n); i++ {
		lines = append(lines, row(n, i))
	}
	return lines
}

func row(n Size, i int) string {
	return strings.Repeat(" ", int(n)-i) + strings.Repeat(Leaf, 2*i+1)
}

// String returns the whole tree, every line newline-terminated.
func String(n Size) string {
	var b strings.Builder
	for _, line := range Lines(n) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes the tree to w in a single write.
func Render(w io.Writer, n Size) error {
	_, err := io.WriteString(w, String(n))
	return err
}
