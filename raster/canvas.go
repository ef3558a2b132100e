// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster renders timeline commands to pixels using gg.Context.
//
// # Example
//
//	c := raster.New(320, 480)
//	timeline.Render(c, timeline.Rect{W: 28, H: 96}, style, timeline.Middle)
//	_ = c.SavePNG("row.png")
package raster

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/timeline"
)

// Canvas is a timeline.Canvas backed by a gg.Context.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dc *gg.Context
}

var _ timeline.Canvas = (*Canvas)(nil)

// New creates a Canvas with a fresh transparent context.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// NewForContext wraps an existing context, for instance one the host list
// already draws its rows into. Paint state of dc is overwritten per command.
func NewForContext(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying drawing context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.dc.Push()
}

// Restore pops the last pushed transform. No-op on an empty stack.
func (c *Canvas) Restore() {
	c.dc.Pop()
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(center gg.Point, radius float64, color gg.RGBA) {
	if radius <= 0 {
		return
	}
	c.setColor(color)
	c.dc.ClearPath()
	c.dc.DrawCircle(center.X, center.Y, radius)
	_ = c.dc.Fill()
}

// StrokeCircle strokes a ring.
func (c *Canvas) StrokeCircle(center gg.Point, radius, width float64, color gg.RGBA) {
	if radius <= 0 || width <= 0 {
		return
	}
	c.setColor(color)
	c.dc.SetLineWidth(width)
	c.dc.ClearDash()
	c.dc.ClearPath()
	c.dc.DrawCircle(center.X, center.Y, radius)
	_ = c.dc.Stroke()
}

// StrokeLine strokes a line with butt caps, dashed when dash is non-nil.
func (c *Canvas) StrokeLine(from, to gg.Point, width float64, color gg.RGBA, dash *gg.Dash) {
	if width <= 0 || from == to {
		return
	}
	c.setColor(color)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapButt)
	if dash != nil {
		c.dc.SetDash(dash.Array...)
		c.dc.SetDashOffset(dash.Offset)
	} else {
		c.dc.ClearDash()
	}
	c.dc.ClearPath()
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	_ = c.dc.Stroke()
	c.dc.ClearDash()
}

// DrawImage draws img scaled into dst.
func (c *Canvas) DrawImage(img image.Image, dst timeline.Rect) {
	if img == nil || dst.Empty() {
		return
	}
	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             dst.X,
		Y:             dst.Y,
		DstWidth:      dst.W,
		DstHeight:     dst.H,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func (c *Canvas) setColor(col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}
