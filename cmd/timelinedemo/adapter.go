// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/overlay"
)

// progressAdapter styles a list of steps: finished steps are checked and
// joined by solid lines, pending ones are empty rings on a dashed line.
type progressAdapter struct {
	overlay.NoOverrides
	done int
}

func (a progressAdapter) IndicatorStyle(i int) (timeline.IndicatorStyle, bool) {
	if i < a.done {
		return timeline.IndicatorChecked, true
	}
	return timeline.IndicatorEmpty, true
}

func (a progressAdapter) LineStyle(i int) (timeline.LineStyle, bool) {
	if i < a.done {
		return 0, false
	}
	return timeline.LineDashed, true
}

func (a progressAdapter) LinePadding(i int) (float64, bool) {
	if i < a.done {
		return 0, false
	}
	return 16, true
}
