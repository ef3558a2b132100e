// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import "github.com/gogpu/gg"

// Plan returns the draw commands for one row drawn into rect, in the order
// indicator, top line, bottom line. Commands are in rect-local coordinates;
// callers translate the canvas to the rect origin first.
//
// An empty rect yields no commands.
func Plan(rect Rect, style RowStyle, pos RowPosition) []Command {
	if rect.Empty() {
		return nil
	}
	s := style.Normalized()
	g := Layout(rect, s, pos)

	cmds := make([]Command, 0, 4)
	if g.DrawIndicator {
		cmds = appendIndicator(cmds, g, s)
	}

	var dash *gg.Dash
	if s.LineStyle == LineDashed {
		// nil when both lengths are zero, which strokes a solid line.
		dash = gg.NewDash(s.LineDashLength, s.LineDashGap)
	}
	for _, seg := range [...]Segment{g.Top, g.Bottom} {
		if !seg.Draw || s.LineWidth == 0 {
			continue
		}
		cmds = append(cmds, StrokeLineCommand{
			From:  seg.From,
			To:    seg.To,
			Width: s.LineWidth,
			Color: s.LineColor,
			Dash:  dash,
		})
	}
	return cmds
}

func appendIndicator(cmds []Command, g Geometry, s RowStyle) []Command {
	if hasPixels(s.Glyph) {
		return append(cmds, DrawGlyphCommand{Glyph: s.Glyph, Dst: g.Indicator})
	}

	switch s.IndicatorStyle {
	case IndicatorEmpty:
		cmds = append(cmds, StrokeCircleCommand{
			Center: g.Center,
			Radius: s.IndicatorSize,
			Width:  s.CheckedIndicatorStrokeWidth,
			Color:  s.IndicatorColor,
		})
	case IndicatorChecked:
		cmds = append(cmds,
			StrokeCircleCommand{
				Center: g.Center,
				Radius: s.IndicatorSize,
				Width:  s.CheckedIndicatorStrokeWidth,
				Color:  s.IndicatorColor,
			},
			FillCircleCommand{
				Center: g.Center,
				Radius: s.CheckedIndicatorSize,
				Color:  s.IndicatorColor,
			},
		)
	default:
		cmds = append(cmds, FillCircleCommand{
			Center: g.Center,
			Radius: s.IndicatorSize,
			Color:  s.IndicatorColor,
		})
	}
	return cmds
}

// Render draws one row onto c. It is Playback(Plan(rect, style, pos), c).
func Render(c Canvas, rect Rect, style RowStyle, pos RowPosition) {
	Playback(Plan(rect, style, pos), c)
}
