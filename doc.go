// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package timeline draws a vertical timeline next to the rows of a
// scrolling list.
//
// # Overview
//
// Every row gets an indicator (a disc, ring, checked ring or custom glyph)
// and line segments connecting it to the previous and the next row, so the
// rows read as one continuous thread, as in steppers and progress lists.
//
// The package is the geometry and paint engine. It takes a target
// rectangle, a resolved [RowStyle] and the row's [RowPosition] and produces
// draw commands:
//
//	style := timeline.DefaultRowStyle()
//	style.IndicatorStyle = timeline.IndicatorChecked
//
//	cmds := timeline.Plan(timeline.Rect{W: 40, H: 96}, style, timeline.Middle)
//	timeline.Playback(cmds, canvas)
//
// [Plan] is a pure function: the same inputs always give the same commands
// and no paint state is shared between rows.
//
// # Canvases
//
// Commands are replayed onto a [Canvas]. The raster sub-package renders onto
// a gg.Context; [Recorder] keeps the commands for inspection.
//
// # List overlay
//
// The overlay sub-package iterates the visible rows of a host list,
// resolves each row's style (adapter override, then decorator default, then
// built-in default) and renders the engine output next to the row.
//
// # Coordinate System
//
// Same as gg: origin at the top-left, X grows right, Y grows down.
package timeline
