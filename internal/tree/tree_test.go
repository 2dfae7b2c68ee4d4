// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tree

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRenderSizeThree(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, 3); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "   *\n   0\n  000\n 00000\n"
	if got := buf.String(); got != want {
		t.Errorf("Render(3) = %q, want %q", got, want)
	}
}

func TestRenderSizeZero(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, 0); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := buf.String(); got != "*\n" {
		t.Errorf("Render(0) = %q, want %q", got, "*\n")
	}
}

func TestLinesShape(t *testing.T) {
	for n := Size(0); n <= 12; n++ {
		lines := Lines(n)
		if len(lines) != int(n)+1 {
			t.Fatalf("Lines(%d) has %d lines, want %d", n, len(lines), n+1)
		}

		if want := strings.Repeat(" ", int(n)) + "*"; lines[0] != want {
			t.Errorf("Lines(%d) apex = %q, want %q", n, lines[0], want)
		}

		for i, line := range lines[1:] {
			leaves := strings.TrimLeft(line, " ")
			indent := len(line) - len(leaves)
			if indent != int(n)-i {
				t.Errorf("Lines(%d) row %d indent = %d, want %d", n, i, indent, int(n)-i)
			}
			if leaves != strings.Repeat("0", 2*i+1) {
				t.Errorf("Lines(%d) row %d leaves = %q", n, i, leaves)
			}
		}
	}
}

func TestLinesNegativeClamps(t *testing.T) {
	lines := Lines(-4)
	if len(lines) != 1 || lines[0] != "*" {
		t.Errorf("Lines(-4) = %q, want [\"*\"]", lines)
	}
}

func TestRenderDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := Render(&a, 7); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := Render(&b, 7); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Render(7) output differs between calls")
	}
}

func TestDocumentYAML(t *testing.T) {
	doc := NewDocument(2)
	if doc.Apex != "  *" {
		t.Errorf("Apex = %q, want %q", doc.Apex, "  *")
	}
	if len(doc.Rows) != 2 || doc.Rows[1] != " 000" {
		t.Errorf("Rows = %q", doc.Rows)
	}

	out, err := doc.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if !strings.Contains(out, "size: 2") {
		t.Errorf("YAML() missing size: %s", out)
	}

	var back Document
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if back.Apex != doc.Apex {
		t.Errorf("apex did not survive YAML: got %q, want %q", back.Apex, doc.Apex)
	}
}

func TestDocumentYAMLSizeZeroOmitsRows(t *testing.T) {
	out, err := NewDocument(0).YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if strings.Contains(out, "rows") {
		t.Errorf("YAML() for size 0 should omit rows: %s", out)
	}
}
