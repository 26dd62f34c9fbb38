// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"github.com/papersynth/papersynth/base/errors"
)

var (
	// ErrUnknownField is matched by every [UnknownFieldError].
	ErrUnknownField = errors.New("unknown field")

	// ErrShapeMismatch is matched by every [ShapeMismatchError].
	ErrShapeMismatch = errors.New("shape mismatch")
)

// UnknownFieldError is returned for a document key that the schema does not have.
type UnknownFieldError struct {
	// Key is the offending key.
	Key string

	// Path is the full path of the offending key, such as "lights[1].visibel".
	Path string

	// Suggestion is the closest schema key at the same level, if any is close enough.
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	s := fmt.Sprintf("unknown field %q at %s", e.Key, e.Path)
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return s
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// ShapeMismatchError is returned when a document value does not have the
// nesting the schema requires, or has the wrong type for its binding.
type ShapeMismatchError struct {
	Path   string
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	if e.Path == "" {
		return "shape mismatch: " + e.Reason
	}
	return fmt.Sprintf("shape mismatch at %s: %s", e.Path, e.Reason)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// Mismatch returns a new [ShapeMismatchError] with a formatted reason.
func Mismatch(path, format string, args ...any) error {
	return &ShapeMismatchError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
