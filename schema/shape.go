// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema describes the static key shape of a scene document
// and validates user override documents against it.
package schema

import (
	"fmt"
	"strings"

	"github.com/papersynth/papersynth/base/keylist"
	"github.com/papersynth/papersynth/document"
)

// Kind is the kind of a [Shape] node.
type Kind int

const (
	// Scalar is a leaf value.
	Scalar Kind = iota

	// Record is an ordered set of named children.
	Record

	// Sequence is a fixed-length list of positional children.
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Record:
		return "record"
	case Sequence:
		return "sequence"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is a node in the static shape tree of a document.
// Only keys and nesting are described, not types or ranges.
type Shape struct {
	Kind Kind

	// Fields are the children of a [Record] shape, in canonical order.
	Fields keylist.List[string, *Shape]

	// Elems are the children of a [Sequence] shape.
	Elems []*Shape
}

// NewScalar returns a new [Scalar] shape.
func NewScalar() *Shape {
	return &Shape{Kind: Scalar}
}

// NewRecord returns a new empty [Record] shape.
func NewRecord() *Shape {
	return &Shape{Kind: Record}
}

// NewSequence returns a new [Sequence] shape with the given elements.
func NewSequence(elems ...*Shape) *Shape {
	return &Shape{Kind: Sequence, Elems: elems}
}

// Add adds a named child to a record shape, returning the receiver.
func (s *Shape) Add(key string, child *Shape) *Shape {
	s.Fields.Set(key, child)
	return s
}

// Field returns the named child of a record shape.
func (s *Shape) Field(key string) (*Shape, bool) {
	return s.Fields.AtTry(key)
}

// FromDocument returns the shape of the given document value.
func FromDocument(v any) *Shape {
	switch x := v.(type) {
	case *document.Record:
		s := NewRecord()
		for _, k := range x.Keys() {
			c, _ := x.Get(k)
			s.Add(k, FromDocument(c))
		}
		return s
	case []any:
		s := NewSequence()
		for _, e := range x {
			s.Elems = append(s.Elems, FromDocument(e))
		}
		return s
	}
	return NewScalar()
}

// Equal reports whether two shapes have the same keys in the same
// order and the same nesting.
func Equal(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Record:
		if a.Fields.Len() != b.Fields.Len() {
			return false
		}
		for i, k := range a.Fields.Keys {
			if b.Fields.Keys[i] != k || !Equal(a.Fields.Values[i], b.Fields.Values[i]) {
				return false
			}
		}
	case Sequence:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
	}
	return true
}

// Keys returns the paths of every node below s, in canonical order,
// using the same path syntax as validation errors.
func Keys(s *Shape) []string {
	var keys []string
	s.walk("", func(path string, _ *Shape) {
		keys = append(keys, path)
	})
	return keys
}

func (s *Shape) walk(path string, fun func(path string, s *Shape)) {
	switch s.Kind {
	case Record:
		for i, k := range s.Fields.Keys {
			cp := join(path, k)
			fun(cp, s.Fields.Values[i])
			s.Fields.Values[i].walk(cp, fun)
		}
	case Sequence:
		for i, e := range s.Elems {
			cp := index(path, i)
			fun(cp, e)
			e.walk(cp, fun)
		}
	}
}

// String returns an indented outline of the shape, one key per line.
func (s *Shape) String() string {
	var sb strings.Builder
	s.walk("", func(path string, c *Shape) {
		depth := strings.Count(path, ".") + strings.Count(path, "[")
		name := path[strings.LastIndex(path, ".")+1:]
		if strings.HasSuffix(path, "]") {
			name = path[strings.LastIndex(path, "["):]
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(name)
		if c.Kind == Sequence {
			fmt.Fprintf(&sb, " (%d)", len(c.Elems))
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
