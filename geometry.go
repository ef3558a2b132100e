// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Top returns the minimum Y.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum Y.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Left returns the minimum X.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum X.
func (r Rect) Right() float64 { return r.X + r.W }

// Center returns the center point.
func (r Rect) Center() gg.Point {
	return gg.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Segment is a vertical line segment. From and To keep the stroke direction,
// which determines where a dash pattern starts.
type Segment struct {
	Draw     bool
	From, To gg.Point
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Geometry is the laid-out timeline of one row, in the row's local
// coordinates.
type Geometry struct {
	// DrawIndicator is false for spacer rows.
	DrawIndicator bool
	// Center is the indicator center.
	Center gg.Point
	// Indicator is the area the indicator occupies: the circle's bounding
	// square or the glyph's own bounds.
	Indicator Rect
	// LineX is the x-coordinate of both line segments.
	LineX float64

	Top    Segment
	Bottom Segment
}

// Layout computes the geometry of one row drawn into rect.
// The rect origin is ignored; geometry is local to (0, 0).
func Layout(rect Rect, style RowStyle, pos RowPosition) Geometry {
	s := style.Normalized()
	w, h := rect.W, rect.H

	cx := w / 2
	cy := h * s.IndicatorYPosition
	if h >= 2*s.IndicatorSize {
		cy = math.Min(math.Max(cy, s.IndicatorSize), h-s.IndicatorSize)
	} else {
		cy = h / 2
	}

	g := Geometry{
		DrawIndicator: pos != Spacer,
		Center:        gg.Pt(cx, cy),
		LineX:         cx,
	}

	square := Rect{X: cx - s.IndicatorSize, Y: cy - s.IndicatorSize, W: 2 * s.IndicatorSize, H: 2 * s.IndicatorSize}
	g.Indicator = square
	if hasPixels(s.Glyph) {
		g.Indicator = s.Glyph.Bounds(square)
		g.LineX = g.Indicator.X + g.Indicator.W/2
	}

	// A dashed top line starts with a gap so the pattern lines up with the
	// bottom line of the row above.
	topStart := 0.0
	if s.LineStyle == LineDashed && cy-s.IndicatorSize > s.LineDashGap {
		topStart = s.LineDashGap
	}
	bottomStart := h

	var topEnd, bottomEnd float64
	if g.DrawIndicator {
		topEnd = math.Max(g.Indicator.Top()-s.LinePadding, topStart)
		bottomEnd = math.Min(g.Indicator.Bottom()+s.LinePadding, bottomStart)
	} else {
		topEnd = cy
		bottomEnd = cy
	}

	g.Top = Segment{
		Draw: pos != First,
		From: gg.Pt(g.LineX, topStart),
		To:   gg.Pt(g.LineX, topEnd),
	}
	g.Bottom = Segment{
		Draw: pos != Last,
		From: gg.Pt(g.LineX, bottomStart),
		To:   gg.Pt(g.LineX, bottomEnd),
	}
	return g
}
