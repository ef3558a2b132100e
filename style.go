// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"math"

	"github.com/gogpu/gg"
)

// Built-in style defaults, in pixels.
const (
	DefaultIndicatorSize               = 12.0
	DefaultIndicatorYPosition          = 0.5
	DefaultCheckedIndicatorSize        = 6.0
	DefaultCheckedIndicatorStrokeWidth = 4.0
	DefaultLineWidth                   = 8.0
	DefaultLinePadding                 = 0.0
	DefaultLineDashLength              = 18.0
	DefaultLineDashGap                 = 12.0
)

// RowStyle is the complete set of drawing parameters for one row.
// A RowStyle is a value; the engine never modifies it.
type RowStyle struct {
	IndicatorStyle IndicatorStyle
	// IndicatorSize is the indicator radius.
	IndicatorSize  float64
	IndicatorColor gg.RGBA
	// IndicatorYPosition places the indicator center as a fraction of the
	// row height, clamped to [0, 1].
	IndicatorYPosition float64

	// CheckedIndicatorSize is the radius of the inner disc of a checked indicator.
	CheckedIndicatorSize float64
	// CheckedIndicatorStrokeWidth is the ring stroke of empty and checked indicators.
	CheckedIndicatorStrokeWidth float64

	LineStyle LineStyle
	LineColor gg.RGBA
	LineWidth float64
	// LinePadding is the gap between the indicator edge and the line end.
	LinePadding    float64
	LineDashLength float64
	LineDashGap    float64

	// Glyph replaces the drawn disc or ring when it has an image.
	Glyph Glyph
}

// DefaultRowStyle returns the built-in style.
func DefaultRowStyle() RowStyle {
	return RowStyle{
		IndicatorStyle:              IndicatorFilled,
		IndicatorSize:               DefaultIndicatorSize,
		IndicatorColor:              DefaultColor,
		IndicatorYPosition:          DefaultIndicatorYPosition,
		CheckedIndicatorSize:        DefaultCheckedIndicatorSize,
		CheckedIndicatorStrokeWidth: DefaultCheckedIndicatorStrokeWidth,
		LineStyle:                   LineNormal,
		LineColor:                   DefaultColor,
		LineWidth:                   DefaultLineWidth,
		LinePadding:                 DefaultLinePadding,
		LineDashLength:              DefaultLineDashLength,
		LineDashGap:                 DefaultLineDashGap,
	}
}

// Normalized returns s with out-of-range values clamped: the vertical
// position into [0, 1] (NaN becomes the default) and negative or NaN
// lengths to zero.
func (s RowStyle) Normalized() RowStyle {
	s.IndicatorYPosition = ClampFraction(s.IndicatorYPosition)
	s.IndicatorSize = nonNegative(s.IndicatorSize)
	s.CheckedIndicatorSize = nonNegative(s.CheckedIndicatorSize)
	s.CheckedIndicatorStrokeWidth = nonNegative(s.CheckedIndicatorStrokeWidth)
	s.LineWidth = nonNegative(s.LineWidth)
	s.LinePadding = nonNegative(s.LinePadding)
	s.LineDashLength = nonNegative(s.LineDashLength)
	s.LineDashGap = nonNegative(s.LineDashGap)
	return s
}

// Footprint returns the side of the square the indicator needs. Rings grow
// by their stroke width, which extends past the nominal radius.
func Footprint(s RowStyle) float64 {
	s = s.Normalized()
	size := 2 * s.IndicatorSize
	if s.IndicatorStyle == IndicatorEmpty || s.IndicatorStyle == IndicatorChecked {
		size += s.CheckedIndicatorStrokeWidth
	}
	return size
}

// ClampFraction clamps f into [0, 1]. NaN maps to DefaultIndicatorYPosition.
func ClampFraction(f float64) float64 {
	if math.IsNaN(f) {
		return DefaultIndicatorYPosition
	}
	return math.Min(math.Max(f, 0), 1)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// StyleOverride is a partial RowStyle. Absent fields defer to whatever
// the override is layered over.
type StyleOverride struct {
	IndicatorStyle              Optional[IndicatorStyle]
	IndicatorSize               Optional[float64]
	IndicatorColor              Optional[gg.RGBA]
	IndicatorYPosition          Optional[float64]
	CheckedIndicatorSize        Optional[float64]
	CheckedIndicatorStrokeWidth Optional[float64]
	LineStyle                   Optional[LineStyle]
	LineColor                   Optional[gg.RGBA]
	LineWidth                   Optional[float64]
	LinePadding                 Optional[float64]
	LineDashLength              Optional[float64]
	LineDashGap                 Optional[float64]
	Glyph                       Optional[Glyph]
}

// Over layers o on top of base: every field present in o wins.
func (o StyleOverride) Over(base StyleOverride) StyleOverride {
	return StyleOverride{
		IndicatorStyle:              o.IndicatorStyle.Over(base.IndicatorStyle),
		IndicatorSize:               o.IndicatorSize.Over(base.IndicatorSize),
		IndicatorColor:              o.IndicatorColor.Over(base.IndicatorColor),
		IndicatorYPosition:          o.IndicatorYPosition.Over(base.IndicatorYPosition),
		CheckedIndicatorSize:        o.CheckedIndicatorSize.Over(base.CheckedIndicatorSize),
		CheckedIndicatorStrokeWidth: o.CheckedIndicatorStrokeWidth.Over(base.CheckedIndicatorStrokeWidth),
		LineStyle:                   o.LineStyle.Over(base.LineStyle),
		LineColor:                   o.LineColor.Over(base.LineColor),
		LineWidth:                   o.LineWidth.Over(base.LineWidth),
		LinePadding:                 o.LinePadding.Over(base.LinePadding),
		LineDashLength:              o.LineDashLength.Over(base.LineDashLength),
		LineDashGap:                 o.LineDashGap.Over(base.LineDashGap),
		Glyph:                       o.Glyph.Over(base.Glyph),
	}
}

// Resolve fills the absent fields of o from defaults and normalizes the result.
func (o StyleOverride) Resolve(defaults RowStyle) RowStyle {
	return RowStyle{
		IndicatorStyle:              o.IndicatorStyle.Or(defaults.IndicatorStyle),
		IndicatorSize:               o.IndicatorSize.Or(defaults.IndicatorSize),
		IndicatorColor:              o.IndicatorColor.Or(defaults.IndicatorColor),
		IndicatorYPosition:          o.IndicatorYPosition.Or(defaults.IndicatorYPosition),
		CheckedIndicatorSize:        o.CheckedIndicatorSize.Or(defaults.CheckedIndicatorSize),
		CheckedIndicatorStrokeWidth: o.CheckedIndicatorStrokeWidth.Or(defaults.CheckedIndicatorStrokeWidth),
		LineStyle:                   o.LineStyle.Or(defaults.LineStyle),
		LineColor:                   o.LineColor.Or(defaults.LineColor),
		LineWidth:                   o.LineWidth.Or(defaults.LineWidth),
		LinePadding:                 o.LinePadding.Or(defaults.LinePadding),
		LineDashLength:              o.LineDashLength.Or(defaults.LineDashLength),
		LineDashGap:                 o.LineDashGap.Or(defaults.LineDashGap),
		Glyph:                       o.Glyph.Or(defaults.Glyph),
	}.Normalized()
}
