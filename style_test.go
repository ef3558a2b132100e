// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestClampFraction(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), DefaultIndicatorYPosition},
	}
	for _, tt := range tests {
		if got := ClampFraction(tt.in); got != tt.want {
			t.Errorf("ClampFraction(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalized(t *testing.T) {
	s := DefaultRowStyle()
	s.IndicatorYPosition = 3
	s.IndicatorSize = -4
	s.CheckedIndicatorStrokeWidth = -1
	s.LineWidth = math.NaN()
	s.LineDashGap = -2

	n := s.Normalized()
	if n.IndicatorYPosition != 1 {
		t.Errorf("IndicatorYPosition = %v, want 1", n.IndicatorYPosition)
	}
	if n.IndicatorSize != 0 || n.CheckedIndicatorStrokeWidth != 0 || n.LineWidth != 0 || n.LineDashGap != 0 {
		t.Errorf("negative lengths not clamped: %+v", n)
	}
	if n.LineDashLength != DefaultLineDashLength {
		t.Errorf("valid field changed: LineDashLength = %v", n.LineDashLength)
	}
}

func TestFootprint(t *testing.T) {
	s := DefaultRowStyle()
	s.IndicatorSize = 10
	s.CheckedIndicatorStrokeWidth = 3

	tests := []struct {
		style IndicatorStyle
		want  float64
	}{
		{IndicatorFilled, 20},
		{IndicatorEmpty, 23},
		{IndicatorChecked, 23},
	}
	for _, tt := range tests {
		s.IndicatorStyle = tt.style
		if got := Footprint(s); got != tt.want {
			t.Errorf("Footprint(%v) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

// TestStylePrecedence checks all eight presence combinations of row
// override, decorator default and built-in default for one field.
func TestStylePrecedence(t *testing.T) {
	rowColor := gg.RGB(0, 1, 0)
	decoColor := gg.RGB(0, 0, 1)
	builtin := gg.RGB(0.5, 0.5, 0.5)

	for mask := 0; mask < 8; mask++ {
		hasRow := mask&1 != 0
		hasDeco := mask&2 != 0
		hasBuiltin := mask&4 != 0

		var row, deco StyleOverride
		if hasRow {
			row.IndicatorColor = Some(rowColor)
		}
		if hasDeco {
			deco.IndicatorColor = Some(decoColor)
		}
		defaults := DefaultRowStyle()
		if hasBuiltin {
			defaults.IndicatorColor = builtin
		}

		want := DefaultColor
		switch {
		case hasRow:
			want = rowColor
		case hasDeco:
			want = decoColor
		case hasBuiltin:
			want = builtin
		}

		got := row.Over(deco).Resolve(defaults).IndicatorColor
		if got != want {
			t.Errorf("row=%v deco=%v builtin=%v: got %v, want %v", hasRow, hasDeco, hasBuiltin, got, want)
		}
	}
}

func TestResolveClampsOverride(t *testing.T) {
	o := StyleOverride{IndicatorYPosition: Some(1.7), LinePadding: Some(-3.0)}
	s := o.Resolve(DefaultRowStyle())
	if s.IndicatorYPosition != 1 {
		t.Errorf("IndicatorYPosition = %v, want 1", s.IndicatorYPosition)
	}
	if s.LinePadding != 0 {
		t.Errorf("LinePadding = %v, want 0", s.LinePadding)
	}
}

func TestOptional(t *testing.T) {
	var none Optional[int]
	if none.IsSet() {
		t.Error("zero Optional should be absent")
	}
	if got := none.Or(7); got != 7 {
		t.Errorf("Or() = %d, want 7", got)
	}
	some := Some(3)
	if v, ok := some.Get(); !ok || v != 3 {
		t.Errorf("Get() = %d, %v", v, ok)
	}
	if got := none.Over(some); got != some {
		t.Errorf("absent.Over(some) = %+v", got)
	}
	if got := Some(5).Over(some).Or(0); got != 5 {
		t.Errorf("Some(5).Over(Some(3)) = %d", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    gg.RGBA
		wantErr bool
	}{
		{in: "#ff0000", want: gg.RGB(1, 0, 0)},
		{in: "00ff00", want: gg.RGB(0, 1, 0)},
		{in: "#00f", want: gg.RGB(0, 0, 1)},
		{in: "#00000000", want: gg.RGBA{}},
		{in: "#12345", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
