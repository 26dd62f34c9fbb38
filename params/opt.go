// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

// Opt is an optional explicit value for a generated field.
// The zero Opt is absent, meaning the generated value is used.
// Presence alone decides: Some(false), Some(0) and Some("") are all honored.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns a present [Opt] holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSet returns whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns the explicit value if present, and otherwise drawn.
// Callers always compute drawn first, so that an explicit value
// never changes how much of the random stream is consumed.
func (o Opt[T]) Or(drawn T) T {
	if o.ok {
		return o.v
	}
	return drawn
}
