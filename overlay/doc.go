// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package overlay draws a vertical timeline alongside the rows of a
// scrolling list.
//
// A [Decorator] is attached to a list host. During layout the host asks
// [Decorator.ReserveInset] how much space to keep free on one side of every
// row; during paint it calls [Decorator.DrawOverlay] with a canvas and
// itself. The decorator then classifies each visible row, resolves its
// style and renders it into the reserved column through package timeline.
//
// Styles resolve per field, highest priority first:
//
//  1. the list adapter, through [Overrides] (and optionally [RowStyleProvider])
//  2. decorator options given to [New]
//  3. the [Theme] accent color, for indicator and line colors
//  4. the built-in defaults of package timeline
//
// Decorator options can also be read from a TOML file with [LoadConfigFile].
package overlay
