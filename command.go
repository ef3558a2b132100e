// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"github.com/gogpu/gg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current transform
	CmdRestore                      // Restore previous transform
	CmdTranslate                    // Translate the origin

	// Drawing commands
	CmdFillCircle   // Fill a disc
	CmdStrokeCircle // Stroke a ring
	CmdStrokeLine   // Stroke a straight line
	CmdDrawGlyph    // Draw a glyph image
)

var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdTranslate:    "Translate",
	CmdFillCircle:   "FillCircle",
	CmdStrokeCircle: "StrokeCircle",
	CmdStrokeLine:   "StrokeLine",
	CmdDrawGlyph:    "DrawGlyph",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one drawing operation. Commands carry every parameter they
// need, so replaying one never depends on the previous command.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand saves the current transform.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the last saved transform.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// FillCircleCommand fills a disc.
type FillCircleCommand struct {
	Center gg.Point
	Radius float64
	Color  gg.RGBA
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// StrokeCircleCommand strokes a ring centered on Radius.
type StrokeCircleCommand struct {
	Center gg.Point
	Radius float64
	Width  float64
	Color  gg.RGBA
}

// Type implements Command.
func (StrokeCircleCommand) Type() CommandType { return CmdStrokeCircle }

// StrokeLineCommand strokes a line from From to To with butt caps.
type StrokeLineCommand struct {
	From, To gg.Point
	Width    float64
	Color    gg.RGBA
	// Dash is nil for solid lines. The pattern starts at From.
	Dash *gg.Dash
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// DrawGlyphCommand draws a glyph scaled into Dst.
type DrawGlyphCommand struct {
	Glyph Glyph
	Dst   Rect
}

// Type implements Command.
func (DrawGlyphCommand) Type() CommandType { return CmdDrawGlyph }
