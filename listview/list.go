// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package listview is a minimal in-memory scrolling list that hosts
// timeline overlays.
//
// A List knows its item heights, its viewport and a scroll offset. It lays
// out the rows intersecting the viewport, applies the insets its
// decorations reserve, and hands itself to each decoration at paint time:
//
//	l := listview.New(320, 480)
//	l.SetItemCount(20, 64)
//	l.AddDecoration(overlay.New())
//	l.ScrollTo(100)
//	l.Draw(canvas)
package listview

import (
	"iter"
	"math"

	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/overlay"
)

// Decoration draws over the rows of a list and may reserve space beside them.
type Decoration interface {
	ReserveInset(row overlay.Row) overlay.Insets
	DrawOverlay(c timeline.Canvas, host overlay.Host) int
}

// Row is a laid-out list row.
type Row struct {
	index  int
	bounds timeline.Rect
}

// Index returns the item index the row shows.
func (r *Row) Index() int { return r.index }

// Bounds returns the row's content rectangle in viewport coordinates,
// after decoration insets.
func (r *Row) Bounds() timeline.Rect { return r.bounds }

// List is a vertically scrolling list of fixed-height items.
//
// List is NOT safe for concurrent use.
type List struct {
	width    float64
	viewport float64
	scroll   float64

	heights     []float64
	detached    map[int]bool
	adapter     overlay.Overrides
	decorations []Decoration
}

var _ overlay.AdapterHost = (*List)(nil)

// New creates an empty list width pixels wide showing viewport pixels of
// content.
func New(width, viewport float64) *List {
	return &List{
		width:    math.Max(width, 0),
		viewport: math.Max(viewport, 0),
		detached: make(map[int]bool),
	}
}

// SetItems replaces the items with one entry per height. The scroll offset
// is clamped to the new content.
func (l *List) SetItems(heights []float64) {
	l.heights = make([]float64, len(heights))
	for i, h := range heights {
		l.heights[i] = math.Max(h, 0)
	}
	clear(l.detached)
	l.ScrollTo(l.scroll)
}

// SetItemCount replaces the items with n items of height h.
func (l *List) SetItemCount(n int, h float64) {
	heights := make([]float64, max(n, 0))
	for i := range heights {
		heights[i] = h
	}
	l.SetItems(heights)
}

// SetAdapter sets the per-row style overrides. a may be nil.
func (l *List) SetAdapter(a overlay.Overrides) {
	l.adapter = a
}

// AddDecoration appends d. Decorations draw in the order they were added.
func (l *List) AddDecoration(d Decoration) {
	l.decorations = append(l.decorations, d)
}

// Detach marks the row showing index as having no adapter position, the
// way a row looks while it animates out.
func (l *List) Detach(index int) {
	l.detached[index] = true
}

// Attach undoes Detach.
func (l *List) Attach(index int) {
	delete(l.detached, index)
}

// ContentHeight returns the sum of all item heights.
func (l *List) ContentHeight() float64 {
	var sum float64
	for _, h := range l.heights {
		sum += h
	}
	return sum
}

// Scroll returns the current scroll offset.
func (l *List) Scroll() float64 {
	return l.scroll
}

// ScrollTo sets the scroll offset, clamped so the viewport stays inside
// the content.
func (l *List) ScrollTo(offset float64) {
	maxScroll := math.Max(l.ContentHeight()-l.viewport, 0)
	if math.IsNaN(offset) || offset < 0 {
		offset = 0
	}
	l.scroll = math.Min(offset, maxScroll)
}

// ScrollToIndex scrolls so that item index is visible with about a quarter
// of the viewport of context above it. Out of range indices are ignored.
func (l *List) ScrollToIndex(index int) {
	if index < 0 || index >= len(l.heights) {
		return
	}
	var top float64
	for _, h := range l.heights[:index] {
		top += h
	}
	l.ScrollTo(top - l.viewport/4)
}

// ItemCount implements overlay.Host.
func (l *List) ItemCount() int {
	return len(l.heights)
}

// Adapter implements overlay.AdapterHost.
func (l *List) Adapter() overlay.Overrides {
	return l.adapter
}

// PositionOf implements overlay.Host.
func (l *List) PositionOf(row overlay.Row) (int, bool) {
	r, ok := row.(*Row)
	if !ok || r.index < 0 || r.index >= len(l.heights) || l.detached[r.index] {
		return 0, false
	}
	return r.index, true
}

// VisibleRows implements overlay.Host. It yields every row that
// intersects the viewport, top to bottom.
func (l *List) VisibleRows() iter.Seq[overlay.Row] {
	return func(yield func(overlay.Row) bool) {
		for r := range l.Rows() {
			if !yield(r) {
				return
			}
		}
	}
}

// Rows yields the laid-out visible rows.
func (l *List) Rows() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		var top float64
		for i, h := range l.heights {
			y := top - l.scroll
			top += h
			if h <= 0 || y+h <= 0 {
				continue
			}
			if y >= l.viewport {
				return
			}
			if !yield(l.layout(i, y, h)) {
				return
			}
		}
	}
}

func (l *List) layout(index int, y, h float64) *Row {
	r := &Row{index: index, bounds: timeline.Rect{Y: y, W: l.width, H: h}}
	var in overlay.Insets
	for _, d := range l.decorations {
		di := d.ReserveInset(r)
		in.Left += di.Left
		in.Right += di.Right
	}
	r.bounds.X = in.Left
	r.bounds.W = math.Max(l.width-in.Left-in.Right, 0)
	return r
}

// Draw lets every decoration draw onto c and returns the total number of
// rows they drew.
func (l *List) Draw(c timeline.Canvas) int {
	n := 0
	for _, d := range l.decorations {
		n += d.DrawOverlay(c, l)
	}
	return n
}
