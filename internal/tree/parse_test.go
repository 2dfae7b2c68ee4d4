// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tree

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr error
	}{
		{name: "zero", input: "0", want: 0},
		{name: "positive", input: "3", want: 3},
		{name: "surrounding whitespace", input: " 12\n", want: 12},
		{name: "explicit plus", input: "+4", want: 4},
		{name: "empty", input: "", wantErr: ErrInvalidArgument},
		{name: "blank", input: "   ", wantErr: ErrInvalidArgument},
		{name: "letters", input: "abc", wantErr: ErrInvalidArgument},
		{name: "trailing garbage", input: "3x", wantErr: ErrInvalidArgument},
		{name: "float", input: "2.5", wantErr: ErrInvalidArgument},
		{name: "hex", input: "0x10", wantErr: ErrInvalidArgument},
		{name: "negative", input: "-1", wantErr: ErrInvalidArgument},
		{name: "overflow", input: "99999999999999999999999", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	if _, err := ParseArgs(nil); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("ParseArgs(nil) error = %v, want ErrMissingArgument", err)
	}
	if _, err := ParseArgs([]string{}); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("ParseArgs([]) error = %v, want ErrMissingArgument", err)
	}
	if _, err := ParseArgs([]string{"nope"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseArgs([nope]) error = %v, want ErrInvalidArgument", err)
	}

	n, err := ParseArgs([]string{"5", "ignored"})
	if err != nil || n != 5 {
		t.Errorf("ParseArgs([5 ignored]) = %d, %v; want 5, nil", n, err)
	}
}

func TestCheckMax(t *testing.T) {
	if err := CheckMax(10, 10); err != nil {
		t.Errorf("CheckMax(10, 10) = %v, want nil", err)
	}
	if err := CheckMax(11, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CheckMax(11, 10) = %v, want ErrInvalidArgument", err)
	}
	if err := CheckMax(1000000, 0); err != nil {
		t.Errorf("CheckMax with max 0 = %v, want nil", err)
	}
}
