// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import "errors"

// Sentinel errors returned by the loaders. Drawing itself never fails.
var (
	// ErrUnknownEnum is returned when a style name does not match any value.
	ErrUnknownEnum = errors.New("timeline: unknown enum value")

	// ErrInvalidColor is returned when a color string is not a hex color.
	ErrInvalidColor = errors.New("timeline: invalid color")

	// ErrEmptyGlyph is returned when glyph data is empty or has no area.
	ErrEmptyGlyph = errors.New("timeline: empty glyph")
)
