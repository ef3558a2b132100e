// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import "image"

// Glyph is a custom indicator drawn instead of the disc or ring.
type Glyph interface {
	// Image returns the pixels to draw.
	Image() image.Image

	// Bounds returns the rectangle the glyph occupies when placed in the
	// given square. Glyphs need not fill the square or be centered in it;
	// the engine attaches lines to these bounds.
	Bounds(square Rect) Rect
}

// GlyphAlign positions a glyph horizontally inside its square when the
// glyph keeps its aspect ratio and is narrower than the square.
type GlyphAlign uint8

const (
	AlignCenter GlyphAlign = iota
	AlignStart
	AlignEnd
)

// ImageGlyph is a Glyph backed by an image.
//
// By default the image is stretched to the full square. With KeepAspect the
// image is fitted inside the square, vertically centered and horizontally
// placed according to Align.
type ImageGlyph struct {
	Img        image.Image
	KeepAspect bool
	Align      GlyphAlign
}

// NewImageGlyph returns a glyph that stretches img to the indicator square.
func NewImageGlyph(img image.Image) *ImageGlyph {
	return &ImageGlyph{Img: img}
}

// Image implements Glyph. A nil *ImageGlyph has no image.
func (g *ImageGlyph) Image() image.Image {
	if g == nil {
		return nil
	}
	return g.Img
}

// Bounds implements Glyph.
func (g *ImageGlyph) Bounds(square Rect) Rect {
	if g == nil || !g.KeepAspect || g.Img == nil {
		return square
	}
	b := g.Img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return square
	}

	scale := min(square.W/float64(b.Dx()), square.H/float64(b.Dy()))
	w := float64(b.Dx()) * scale
	h := float64(b.Dy()) * scale

	r := Rect{Y: square.Y + (square.H-h)/2, W: w, H: h}
	switch g.Align {
	case AlignStart:
		r.X = square.X
	case AlignEnd:
		r.X = square.X + square.W - w
	default:
		r.X = square.X + (square.W-w)/2
	}
	return r
}

// hasPixels reports whether g can be drawn. Rows whose glyph has no image
// fall back to the disc or ring of their indicator style.
func hasPixels(g Glyph) bool {
	return g != nil && g.Image() != nil
}
