// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is returned while no logger is installed. Its handler reports
// every level as disabled.
var discard = slog.New(slog.DiscardHandler)

// active holds the logger installed with SetLogger, or nil.
var active atomic.Pointer[slog.Logger]

// SetLogger installs the logger shared by timeline and its sub-packages.
// Timeline is silent until a logger is set; nil makes it silent again.
//
// Levels:
//   - [slog.LevelDebug]: per-frame details, such as rows skipped while the
//     list animates
//   - [slog.LevelInfo]: config files and glyphs loaded
//
// Example:
//
//	timeline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the installed logger, or a discarding one.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return discard
}

// LoggerFor returns Logger tagged with component=name. Sub-packages call
// it once per operation, not per record. When the installed logger drops
// every level the untagged logger is returned as is.
func LoggerFor(name string) *slog.Logger {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelError) {
		return l
	}
	return l.With(slog.String("component", name))
}
