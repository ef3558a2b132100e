// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"fmt"
	"strings"

	"github.com/gogpu/timeline"
)

// Side selects which edge of the rows the overlay occupies.
type Side uint8

const (
	// Start reserves space on the left of every row.
	Start Side = iota
	// End reserves space on the right of every row.
	End
)

// String returns "start" or "end".
func (s Side) String() string {
	if s == End {
		return "end"
	}
	return "start"
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "start",
// "end" and the aliases "left" and "right".
func (s *Side) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "start", "left":
		*s = Start
	case "end", "right":
		*s = End
	default:
		return fmt.Errorf("%w: side %q", timeline.ErrUnknownEnum, text)
	}
	return nil
}

// Decorator draws a timeline next to the visible rows of a host list.
//
// A Decorator is immutable after New and may be shared between lists.
// DrawOverlay must be called from the host's paint pass and ReserveInset
// from its layout pass.
type Decorator struct {
	cfg     config
	builtin timeline.RowStyle
	base    timeline.RowStyle
	padding float64
	width   float64
}

// New creates a Decorator.
func New(opts ...Option) *Decorator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	builtin := timeline.DefaultRowStyle()
	if cfg.theme != nil {
		builtin.IndicatorColor = cfg.theme.Accent
		builtin.LineColor = cfg.theme.Accent
	}
	base := cfg.style.Resolve(builtin)

	padding := cfg.padding.Or(2 * base.IndicatorSize)
	if !(padding > 0) {
		padding = 0
	}

	return &Decorator{
		cfg:     cfg,
		builtin: builtin,
		base:    base,
		padding: padding,
		width:   timeline.Footprint(base) + 2*padding,
	}
}

// Side returns the side the overlay is drawn on.
func (d *Decorator) Side() Side {
	return d.cfg.side
}

// Padding returns the space on each side of the indicator column.
func (d *Decorator) Padding() float64 {
	return d.padding
}

// Width returns the width reserved for the overlay: the indicator footprint
// plus padding on both sides.
func (d *Decorator) Width() float64 {
	return d.width
}

// DefaultStyle returns the decorator-level style rows start from.
func (d *Decorator) DefaultStyle() timeline.RowStyle {
	return d.base
}

// ReserveInset returns the inset the host must apply to row. It is the
// same for every row and every call.
func (d *Decorator) ReserveInset(Row) Insets {
	if d.cfg.side == End {
		return Insets{Right: d.width}
	}
	return Insets{Left: d.width}
}

// StyleFor resolves the style and position of the row at index in a list of
// count items. a may be nil.
//
// Precedence is strict: adapter override, then decorator option, then
// theme and built-in default. A ViewType from the adapter replaces the
// index-based classification.
func (d *Decorator) StyleFor(a Overrides, index, count int) (timeline.RowStyle, timeline.RowPosition) {
	pos := timeline.Classify(index, count)
	if a == nil {
		return d.base, pos
	}
	if p, ok := a.ViewType(index); ok {
		pos = p
	}
	return rowOverride(a, index).Over(d.cfg.style).Resolve(d.builtin), pos
}

// DrawOverlay draws the timeline of every visible row of host onto c and
// returns the number of rows drawn. Rows without an adapter position are
// skipped for this frame. DrawOverlay does not modify host or its rows.
func (d *Decorator) DrawOverlay(c timeline.Canvas, host Host) int {
	var adapter Overrides
	if ah, ok := host.(AdapterHost); ok {
		adapter = ah.Adapter()
	}
	count := host.ItemCount()
	column := timeline.Footprint(d.base)
	log := timeline.LoggerFor("overlay")

	drawn := 0
	for row := range host.VisibleRows() {
		index, ok := host.PositionOf(row)
		if !ok {
			log.Debug("row has no adapter position, skipped", "top", row.Bounds().Top())
			continue
		}

		style, pos := d.StyleFor(adapter, index, count)
		b := row.Bounds()

		x := b.Left() - d.width + d.padding
		if d.cfg.side == End {
			x = b.Right() + d.padding
		}

		c.Save()
		c.Translate(x, b.Top())
		timeline.Render(c, timeline.Rect{W: column, H: b.H}, style, pos)
		c.Restore()
		drawn++
	}
	return drawn
}
