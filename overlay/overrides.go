// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/timeline"
)

// Overrides lets a list adapter style individual rows. Every method
// returns ok == false for "no opinion", which defers to the decorator
// configuration and then to the built-in defaults.
//
// Embed NoOverrides to implement only the methods you need:
//
//	type stepsAdapter struct {
//	    overlay.NoOverrides
//	    done int
//	}
//
//	func (a stepsAdapter) IndicatorStyle(i int) (timeline.IndicatorStyle, bool) {
//	    if i < a.done {
//	        return timeline.IndicatorChecked, true
//	    }
//	    return timeline.IndicatorEmpty, true
//	}
type Overrides interface {
	// ViewType replaces the index-based row classification entirely.
	ViewType(index int) (timeline.RowPosition, bool)
	IndicatorStyle(index int) (timeline.IndicatorStyle, bool)
	IndicatorColor(index int) (gg.RGBA, bool)
	LineColor(index int) (gg.RGBA, bool)
	LineStyle(index int) (timeline.LineStyle, bool)
	LinePadding(index int) (float64, bool)
	IndicatorGlyph(index int) (timeline.Glyph, bool)
}

// RowStyleProvider is optionally implemented by adapters that override
// fields not covered by Overrides. The per-field Overrides methods take
// precedence over the returned override.
type RowStyleProvider interface {
	RowStyleOverride(index int) timeline.StyleOverride
}

// NoOverrides has no opinion on any row.
type NoOverrides struct{}

var _ Overrides = NoOverrides{}

func (NoOverrides) ViewType(int) (timeline.RowPosition, bool)          { return 0, false }
func (NoOverrides) IndicatorStyle(int) (timeline.IndicatorStyle, bool) { return 0, false }
func (NoOverrides) IndicatorColor(int) (gg.RGBA, bool)                 { return gg.RGBA{}, false }
func (NoOverrides) LineColor(int) (gg.RGBA, bool)                      { return gg.RGBA{}, false }
func (NoOverrides) LineStyle(int) (timeline.LineStyle, bool)           { return 0, false }
func (NoOverrides) LinePadding(int) (float64, bool)                    { return 0, false }
func (NoOverrides) IndicatorGlyph(int) (timeline.Glyph, bool)          { return nil, false }

// rowOverride collects everything an adapter says about row index.
func rowOverride(a Overrides, index int) timeline.StyleOverride {
	var o timeline.StyleOverride
	if v, ok := a.IndicatorStyle(index); ok {
		o.IndicatorStyle = timeline.Some(v)
	}
	if v, ok := a.IndicatorColor(index); ok {
		o.IndicatorColor = timeline.Some(v)
	}
	if v, ok := a.LineColor(index); ok {
		o.LineColor = timeline.Some(v)
	}
	if v, ok := a.LineStyle(index); ok {
		o.LineStyle = timeline.Some(v)
	}
	if v, ok := a.LinePadding(index); ok {
		o.LinePadding = timeline.Some(v)
	}
	if v, ok := a.IndicatorGlyph(index); ok {
		o.Glyph = timeline.Some(v)
	}

	if p, ok := a.(RowStyleProvider); ok {
		o = o.Over(p.RowStyleOverride(index))
	}
	return o
}
