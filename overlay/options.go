// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/timeline"
)

// Option configures a Decorator during creation.
// Every option is optional; absent values fall back to the theme and then
// to the built-in defaults of package timeline.
//
// Example:
//
//	d := overlay.New(
//	    overlay.WithIndicatorStyle(timeline.IndicatorChecked),
//	    overlay.WithLineStyle(timeline.LineDashed),
//	    overlay.WithSide(overlay.End),
//	)
type Option func(*config)

// config holds the decorator-level defaults.
type config struct {
	style   timeline.StyleOverride
	padding timeline.Optional[float64]
	side    Side
	theme   *Theme
}

func defaultConfig() config {
	return config{side: Start}
}

// Theme supplies ambient colors. The accent replaces the built-in default
// color for indicators and lines that no row or decorator option colors.
type Theme struct {
	Accent gg.RGBA
}

// WithTheme sets the ambient theme.
func WithTheme(t Theme) Option {
	return func(c *config) {
		c.theme = &t
	}
}

// WithStyle layers a partial style over the options applied so far.
// Fields present in o win.
func WithStyle(o timeline.StyleOverride) Option {
	return func(c *config) {
		c.style = o.Over(c.style)
	}
}

// WithIndicatorStyle sets the default indicator style.
func WithIndicatorStyle(s timeline.IndicatorStyle) Option {
	return func(c *config) {
		c.style.IndicatorStyle = timeline.Some(s)
	}
}

// WithIndicatorSize sets the default indicator radius.
func WithIndicatorSize(r float64) Option {
	return func(c *config) {
		c.style.IndicatorSize = timeline.Some(r)
	}
}

// WithIndicatorYPosition sets the indicator center as a fraction of the row
// height. Values outside [0, 1] are clamped.
func WithIndicatorYPosition(f float64) Option {
	return func(c *config) {
		c.style.IndicatorYPosition = timeline.Some(f)
	}
}

// WithCheckedIndicatorSize sets the inner disc radius of checked indicators.
func WithCheckedIndicatorSize(r float64) Option {
	return func(c *config) {
		c.style.CheckedIndicatorSize = timeline.Some(r)
	}
}

// WithCheckedIndicatorStrokeWidth sets the ring stroke of empty and checked
// indicators.
func WithCheckedIndicatorStrokeWidth(w float64) Option {
	return func(c *config) {
		c.style.CheckedIndicatorStrokeWidth = timeline.Some(w)
	}
}

// WithIndicatorColor sets the default indicator color.
func WithIndicatorColor(col gg.RGBA) Option {
	return func(c *config) {
		c.style.IndicatorColor = timeline.Some(col)
	}
}

// WithIndicatorGlyph draws g instead of a disc or ring on every row.
func WithIndicatorGlyph(g timeline.Glyph) Option {
	return func(c *config) {
		c.style.Glyph = timeline.Some(g)
	}
}

// WithLineStyle sets the default line style.
func WithLineStyle(s timeline.LineStyle) Option {
	return func(c *config) {
		c.style.LineStyle = timeline.Some(s)
	}
}

// WithLineColor sets the default line color.
func WithLineColor(col gg.RGBA) Option {
	return func(c *config) {
		c.style.LineColor = timeline.Some(col)
	}
}

// WithLineWidth sets the default line stroke width.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.style.LineWidth = timeline.Some(w)
	}
}

// WithLinePadding sets the gap between the indicator and line ends.
func WithLinePadding(p float64) Option {
	return func(c *config) {
		c.style.LinePadding = timeline.Some(p)
	}
}

// WithLineDashLength sets the dash length of dashed lines.
func WithLineDashLength(l float64) Option {
	return func(c *config) {
		c.style.LineDashLength = timeline.Some(l)
	}
}

// WithLineDashGap sets the gap length of dashed lines.
func WithLineDashGap(g float64) Option {
	return func(c *config) {
		c.style.LineDashGap = timeline.Some(g)
	}
}

// WithPadding sets the space on both sides of the indicator column.
// Defaults to twice the indicator size.
func WithPadding(p float64) Option {
	return func(c *config) {
		c.padding = timeline.Some(p)
	}
}

// WithSide places the overlay at the start or the end of each row.
func WithSide(s Side) Option {
	return func(c *config) {
		c.side = s
	}
}
