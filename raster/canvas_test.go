// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/timeline"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func isRed(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a > 0xf000 && r > 0xf000 && g < 0x1000 && b < 0x1000
}

func TestCanvasCheckedRow(t *testing.T) {
	c := New(40, 100)
	style := timeline.DefaultRowStyle()
	style.IndicatorStyle = timeline.IndicatorChecked

	timeline.Render(c, timeline.Rect{W: 40, H: 100}, style, timeline.Middle)
	img := c.Image()

	tests := []struct {
		name    string
		x, y    int
		colored bool
	}{
		{"inner disc", 20, 50, true},
		{"gap between disc and ring", 28, 50, false},
		{"ring", 32, 50, true},
		{"top line", 20, 5, true},
		{"bottom line", 20, 95, true},
		{"beside line", 2, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alphaAt(img, tt.x, tt.y)
			if tt.colored && !isRed(img.At(tt.x, tt.y)) {
				t.Errorf("pixel (%d,%d) = %v, want red", tt.x, tt.y, img.At(tt.x, tt.y))
			}
			if !tt.colored && a > 0x1000 {
				t.Errorf("pixel (%d,%d) alpha = %#x, want transparent", tt.x, tt.y, a)
			}
		})
	}
}

func TestCanvasFirstRowHasNoTopLine(t *testing.T) {
	c := New(40, 100)
	timeline.Render(c, timeline.Rect{W: 40, H: 100}, timeline.DefaultRowStyle(), timeline.First)
	img := c.Image()

	if a := alphaAt(img, 20, 5); a > 0x1000 {
		t.Errorf("first row draws above the indicator (alpha %#x)", a)
	}
	if !isRed(img.At(20, 95)) {
		t.Error("first row is missing its bottom line")
	}
}

func TestCanvasTranslateIsRestored(t *testing.T) {
	c := New(100, 100)
	c.Save()
	c.Translate(50, 0)
	c.FillCircle(gg.Pt(10, 10), 5, gg.RGB(1, 0, 0))
	c.Restore()
	c.FillCircle(gg.Pt(10, 60), 5, gg.RGB(1, 0, 0))

	img := c.Image()
	if !isRed(img.At(60, 10)) {
		t.Error("translated disc missing at (60,10)")
	}
	if !isRed(img.At(10, 60)) {
		t.Error("restored transform not applied at (10,60)")
	}
	if a := alphaAt(img, 60, 60); a > 0x1000 {
		t.Error("translation leaked past Restore")
	}

	// Extra Restore is harmless.
	c.Restore()
}

func TestCanvasSkipsDegenerateShapes(t *testing.T) {
	c := New(20, 20)
	c.FillCircle(gg.Pt(10, 10), 0, gg.RGB(1, 0, 0))
	c.StrokeCircle(gg.Pt(10, 10), 5, 0, gg.RGB(1, 0, 0))
	c.StrokeLine(gg.Pt(10, 0), gg.Pt(10, 0), 4, gg.RGB(1, 0, 0), nil)
	c.DrawImage(nil, timeline.Rect{W: 5, H: 5})

	img := c.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if a := alphaAt(img, x, y); a != 0 {
				t.Fatalf("pixel (%d,%d) drawn, alpha %#x", x, y, a)
			}
		}
	}
}

func TestCanvasDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	c := New(40, 40)
	c.DrawImage(src, timeline.Rect{X: 10, Y: 10, W: 20, H: 20})

	img := c.Image()
	if !isRed(img.At(20, 20)) {
		t.Errorf("glyph center = %v, want red", img.At(20, 20))
	}
	if a := alphaAt(img, 2, 2); a != 0 {
		t.Errorf("outside glyph alpha = %#x, want 0", a)
	}
}
