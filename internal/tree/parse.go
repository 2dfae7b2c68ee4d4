// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingArgument is returned when no size was supplied.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument is returned when the supplied size is not a
	// non-negative base-10 integer, or exceeds the configured bound.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseArgs reads the size from the first positional argument.
func ParseArgs(args []string) (Size, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: size is required", ErrMissingArgument)
	}
	return ParseSize(args[0])
}

// ParseSize parses a base-10, non-negative size.
func ParseSize(s string) (Size, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: size is empty", ErrInvalidArgument)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a base-10 integer", ErrInvalidArgument, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: size must not be negative, got %d", ErrInvalidArgument, n)
	}
	return Size(n), nil
}

// CheckMax rejects sizes above max. A max of zero or less disables the check.
func CheckMax(n Size, max int) error {
	if max > 0 && int(n) > max {
		return fmt.Errorf("%w: size %d exceeds the maximum of %d", ErrInvalidArgument, n, max)
	}
	return nil
}
