// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/timeline"
)

const checkSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48" width="48" height="48">
  <circle cx="24" cy="24" r="20" fill="#0000ff"/>
</svg>`

const wideSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20">
  <rect x="0" y="0" width="40" height="20" fill="#00ff00"/>
</svg>`

func TestParseSVG(t *testing.T) {
	g, err := ParseSVG(strings.NewReader(checkSVG), 24)
	if err != nil {
		t.Fatalf("ParseSVG() error = %v", err)
	}
	b := g.Image().Bounds()
	if b.Dx() != 24 || b.Dy() != 24 {
		t.Errorf("bounds = %v, want 24x24", b)
	}
	_, _, blue, a := g.Image().At(12, 12).RGBA()
	if a < 0xf000 || blue < 0xf000 {
		t.Errorf("center pixel = %v, want opaque blue", g.Image().At(12, 12))
	}
	if _, _, _, a := g.Image().At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %#x, want 0", a)
	}
	if !g.KeepAspect {
		t.Error("SVG glyphs should keep their aspect ratio")
	}
}

func TestParseSVGKeepsAspect(t *testing.T) {
	g, err := ParseSVG(strings.NewReader(wideSVG), 20)
	if err != nil {
		t.Fatal(err)
	}
	b := g.Image().Bounds()
	if b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("bounds = %v, want 20x10", b)
	}
}

func TestParseSVGErrors(t *testing.T) {
	if _, err := ParseSVG(strings.NewReader(checkSVG), 0); !errors.Is(err, timeline.ErrEmptyGlyph) {
		t.Errorf("size 0: err = %v, want ErrEmptyGlyph", err)
	}
	empty := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`
	if _, err := ParseSVG(strings.NewReader(empty), 24); err == nil {
		t.Error("empty view box: want error")
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImageScales(t *testing.T) {
	g, err := DecodeImage(bytes.NewReader(encodePNG(t, 64, 32)), 16)
	if err != nil {
		t.Fatal(err)
	}
	b := g.Image().Bounds()
	if b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 16x8", b)
	}
	if r, _, _, _ := g.Image().At(8, 4).RGBA(); r < 0xf000 {
		t.Errorf("scaled pixel = %v, want red", g.Image().At(8, 4))
	}
}

func TestDecodeImageOriginalSize(t *testing.T) {
	g, err := DecodeImage(bytes.NewReader(encodePNG(t, 5, 7)), 0)
	if err != nil {
		t.Fatal(err)
	}
	if b := g.Image().Bounds(); b.Dx() != 5 || b.Dy() != 7 {
		t.Errorf("bounds = %v, want 5x7", b)
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	if _, err := DecodeImage(strings.NewReader("not an image"), 16); err == nil {
		t.Error("want error for garbage input")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "dot.SVG")
	pngPath := filepath.Join(dir, "dot.png")
	if err := os.WriteFile(svgPath, []byte(checkSVG), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pngPath, encodePNG(t, 10, 10), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{svgPath, pngPath} {
		g, err := Load(p, 20)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", p, err)
		}
		if b := g.Image().Bounds(); b.Dx() != 20 || b.Dy() != 20 {
			t.Errorf("Load(%s) bounds = %v, want 20x20", p, b)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.png"), 20); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
}

func TestLoadExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "icon.bin")
	if err := os.WriteFile(p, []byte(checkSVG), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadImage(p, 20); err == nil {
		t.Error("LoadImage decoded SVG source as a bitmap")
	}
	g, err := LoadSVG(p, 20)
	if err != nil {
		t.Fatalf("LoadSVG error = %v", err)
	}
	if b := g.Image().Bounds(); b.Dx() != 20 {
		t.Errorf("LoadSVG width = %d, want 20", b.Dx())
	}
}
