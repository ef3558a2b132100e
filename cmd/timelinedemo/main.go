// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command timelinedemo renders a scrolled list with a timeline overlay to
// a PNG file.
//
// Usage:
//
//	timelinedemo render --items 12 --scroll 40 --out timeline.png
//	timelinedemo render --side end --config timeline.toml
package main

func main() {
	execute()
}
