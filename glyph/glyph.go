// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph loads custom timeline indicators from SVG and bitmap files.
//
// Loaded glyphs are rasterized once, at the requested pixel size, and keep
// their aspect ratio inside the indicator square.
//
//	g, err := glyph.Load("icons/done.svg", 24)
//	if err != nil {
//	    return err
//	}
//	d := overlay.New(overlay.WithIndicatorGlyph(g))
package glyph

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/timeline"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Load reads a glyph file. Files ending in ".svg" are rasterized; anything
// else is decoded as a bitmap (PNG, JPEG or WebP). size is the side of the
// square the glyph is rendered into, usually twice the indicator size.
func Load(path string, size int) (*timeline.ImageGlyph, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(path, size)
	}
	return LoadImage(path, size)
}

// LoadSVG reads and rasterizes an SVG file.
func LoadSVG(path string, size int) (*timeline.ImageGlyph, error) {
	return load(path, size, ParseSVG)
}

// LoadImage reads and scales a PNG, JPEG or WebP file.
func LoadImage(path string, size int) (*timeline.ImageGlyph, error) {
	return load(path, size, DecodeImage)
}

func load(path string, size int, parse func(io.Reader, int) (*timeline.ImageGlyph, error)) (*timeline.ImageGlyph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	g, err := parse(bytes.NewReader(data), size)
	if err != nil {
		return nil, fmt.Errorf("glyph %s: %w", path, err)
	}

	b := g.Img.Bounds()
	timeline.LoggerFor("glyph").Info("glyph loaded", "path", path, "width", b.Dx(), "height", b.Dy())
	return g, nil
}

// ParseSVG rasterizes an SVG icon so that it fits a size x size square.
func ParseSVG(r io.Reader, size int) (*timeline.ImageGlyph, error) {
	if size <= 0 {
		return nil, timeline.ErrEmptyGlyph
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, timeline.ErrEmptyGlyph
	}

	w, h := fit(vw, vh, size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return &timeline.ImageGlyph{Img: img, KeepAspect: true}, nil
}

// DecodeImage decodes a bitmap and scales it to fit a size x size square.
// A non-positive size keeps the original pixels.
func DecodeImage(r io.Reader, size int) (*timeline.ImageGlyph, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, timeline.ErrEmptyGlyph
	}
	if size <= 0 {
		return &timeline.ImageGlyph{Img: src, KeepAspect: true}, nil
	}

	w, h := fit(float64(b.Dx()), float64(b.Dy()), size)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	return &timeline.ImageGlyph{Img: dst, KeepAspect: true}, nil
}

// fit returns the integer size of a w x h box scaled into a size x size square.
func fit(w, h float64, size int) (int, int) {
	scale := math.Min(float64(size)/w, float64(size)/h)
	fw := max(1, int(math.Round(w*scale)))
	fh := max(1, int(math.Round(h*scale)))
	return fw, fh
}
