// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"iter"

	"github.com/gogpu/timeline"
)

// Row is one child view currently attached to the host list.
type Row interface {
	// Bounds returns the row's content rectangle in list coordinates, after
	// the host applied the insets from ReserveInset. H is the row's
	// measured height.
	Bounds() timeline.Rect
}

// Host is the scrolling list the overlay is drawn onto. The overlay only
// reads from it.
type Host interface {
	// VisibleRows yields the attached rows in the host's child order.
	VisibleRows() iter.Seq[Row]

	// PositionOf returns the adapter index of row. ok is false while the
	// row is detached or mid-animation.
	PositionOf(row Row) (index int, ok bool)

	// ItemCount returns the adapter's total item count.
	ItemCount() int
}

// AdapterHost is a Host whose data adapter may override styles per row.
type AdapterHost interface {
	Host

	// Adapter returns the adapter's overrides, or nil.
	Adapter() Overrides
}

// Insets is the space a row must leave free on each side.
type Insets struct {
	Left, Right float64
}
