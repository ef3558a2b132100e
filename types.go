// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"fmt"
	"strings"
)

// RowPosition classifies a row within the timeline sequence.
type RowPosition uint8

const (
	// First has no line above the indicator.
	First RowPosition = iota
	// Middle has lines above and below the indicator.
	Middle
	// Last has no line below the indicator.
	Last
	// Spacer has no indicator; the line passes straight through.
	Spacer
)

var rowPositionNames = [...]string{
	First:  "first",
	Middle: "middle",
	Last:   "last",
	Spacer: "spacer",
}

// Classify returns the position of the row at index in a list of count rows.
// Index 0 is always First, so a single-row list is First rather than Last.
// Spacer is never derived; adapters supply it explicitly.
func Classify(index, count int) RowPosition {
	switch index {
	case 0:
		return First
	case count - 1:
		return Last
	default:
		return Middle
	}
}

// String returns the lower-case name of the position.
func (p RowPosition) String() string {
	if int(p) < len(rowPositionNames) {
		return rowPositionNames[p]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (p RowPosition) MarshalText() ([]byte, error) {
	if int(p) >= len(rowPositionNames) {
		return nil, fmt.Errorf("%w: row position %d", ErrUnknownEnum, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *RowPosition) UnmarshalText(text []byte) error {
	i, err := parseEnum("row position", rowPositionNames[:], text)
	if err != nil {
		return err
	}
	*p = RowPosition(i)
	return nil
}

// IndicatorStyle selects how the indicator is painted.
type IndicatorStyle uint8

const (
	// IndicatorFilled is a solid disc.
	IndicatorFilled IndicatorStyle = iota
	// IndicatorEmpty is a stroked ring.
	IndicatorEmpty
	// IndicatorChecked is a stroked ring with a smaller solid disc inside.
	IndicatorChecked
)

var indicatorStyleNames = [...]string{
	IndicatorFilled:  "filled",
	IndicatorEmpty:   "empty",
	IndicatorChecked: "checked",
}

// String returns the lower-case name of the style.
func (s IndicatorStyle) String() string {
	if int(s) < len(indicatorStyleNames) {
		return indicatorStyleNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s IndicatorStyle) MarshalText() ([]byte, error) {
	if int(s) >= len(indicatorStyleNames) {
		return nil, fmt.Errorf("%w: indicator style %d", ErrUnknownEnum, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *IndicatorStyle) UnmarshalText(text []byte) error {
	i, err := parseEnum("indicator style", indicatorStyleNames[:], text)
	if err != nil {
		return err
	}
	*s = IndicatorStyle(i)
	return nil
}

// LineStyle selects how connecting lines are stroked.
type LineStyle uint8

const (
	// LineNormal is a solid line.
	LineNormal LineStyle = iota
	// LineDashed repeats LineDashLength on, LineDashGap off.
	LineDashed
)

var lineStyleNames = [...]string{
	LineNormal: "normal",
	LineDashed: "dashed",
}

// String returns the lower-case name of the style.
func (s LineStyle) String() string {
	if int(s) < len(lineStyleNames) {
		return lineStyleNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s LineStyle) MarshalText() ([]byte, error) {
	if int(s) >= len(lineStyleNames) {
		return nil, fmt.Errorf("%w: line style %d", ErrUnknownEnum, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LineStyle) UnmarshalText(text []byte) error {
	i, err := parseEnum("line style", lineStyleNames[:], text)
	if err != nil {
		return err
	}
	*s = LineStyle(i)
	return nil
}

func parseEnum(kind string, names []string, text []byte) (int, error) {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownEnum, kind, text)
}
