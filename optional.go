// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package timeline

// Optional holds a value that may be absent.
// The zero value is absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value if present, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Over returns o if present, otherwise base.
func (o Optional[T]) Over(base Optional[T]) Optional[T] {
	if o.set {
		return o
	}
	return base
}
