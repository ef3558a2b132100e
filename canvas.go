// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"image"

	"github.com/gogpu/gg"
)

// Canvas is the drawing surface commands are replayed onto.
//
// A Canvas manages its own transform stack for Save/Restore. Restore on an
// empty stack is a no-op.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)

	FillCircle(center gg.Point, radius float64, color gg.RGBA)
	StrokeCircle(center gg.Point, radius, width float64, color gg.RGBA)
	StrokeLine(from, to gg.Point, width float64, color gg.RGBA, dash *gg.Dash)
	DrawImage(img image.Image, dst Rect)
}

// Playback replays cmds onto c in order. Unknown commands are ignored.
func Playback(cmds []Command, c Canvas) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
		case RestoreCommand:
			c.Restore()
		case TranslateCommand:
			c.Translate(cmd.DX, cmd.DY)
		case FillCircleCommand:
			c.FillCircle(cmd.Center, cmd.Radius, cmd.Color)
		case StrokeCircleCommand:
			c.StrokeCircle(cmd.Center, cmd.Radius, cmd.Width, cmd.Color)
		case StrokeLineCommand:
			c.StrokeLine(cmd.From, cmd.To, cmd.Width, cmd.Color, cmd.Dash)
		case DrawGlyphCommand:
			if img := cmd.Glyph.Image(); img != nil {
				c.DrawImage(img, cmd.Dst)
			}
		}
	}
}

// Recorder is a Canvas that keeps every call as a Command.
//
// Recorder is NOT safe for concurrent use.
type Recorder struct {
	cmds []Command
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{cmds: make([]Command, 0, 16)}
}

// Commands returns the recorded commands. The slice is owned by the
// Recorder until Reset.
func (r *Recorder) Commands() []Command {
	return r.cmds
}

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.cmds {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
}

func (r *Recorder) Save()                    { r.cmds = append(r.cmds, SaveCommand{}) }
func (r *Recorder) Restore()                 { r.cmds = append(r.cmds, RestoreCommand{}) }
func (r *Recorder) Translate(dx, dy float64) { r.cmds = append(r.cmds, TranslateCommand{DX: dx, DY: dy}) }

func (r *Recorder) FillCircle(center gg.Point, radius float64, color gg.RGBA) {
	r.cmds = append(r.cmds, FillCircleCommand{Center: center, Radius: radius, Color: color})
}

func (r *Recorder) StrokeCircle(center gg.Point, radius, width float64, color gg.RGBA) {
	r.cmds = append(r.cmds, StrokeCircleCommand{Center: center, Radius: radius, Width: width, Color: color})
}

func (r *Recorder) StrokeLine(from, to gg.Point, width float64, color gg.RGBA, dash *gg.Dash) {
	r.cmds = append(r.cmds, StrokeLineCommand{From: from, To: to, Width: width, Color: color, Dash: dash})
}

func (r *Recorder) DrawImage(img image.Image, dst Rect) {
	r.cmds = append(r.cmds, DrawGlyphCommand{Glyph: &ImageGlyph{Img: img}, Dst: dst})
}

var _ Canvas = (*Recorder)(nil)
