// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serial converts parameter groups to and from persisted
// documents with a single recursive walker over [params.Field] bindings.
package serial

import (
	"fmt"

	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/schema"
)

// Serialize returns the document record for g, with keys in field order.
func Serialize(g params.Group) *document.Record {
	rec := document.NewRecord()
	for _, f := range g.Fields() {
		rec.Set(f.Name, encode(f.Value))
	}
	return rec
}

// SerializeSeq returns the document sequence for s.
func SerializeSeq(s params.GroupSeq) []any {
	seq := make([]any, len(s))
	for i, g := range s {
		seq[i] = Serialize(g)
	}
	return seq
}

func encode(b any) any {
	switch x := b.(type) {
	case *int:
		return *x
	case *float64:
		return *x
	case *bool:
		return *x
	case *string:
		return *x
	case *[2]int:
		return []any{x[0], x[1]}
	case *[2]float64:
		return []any{x[0], x[1]}
	case *[3]float64:
		return []any{x[0], x[1], x[2]}
	case params.Group:
		return Serialize(x)
	case params.GroupSeq:
		return SerializeSeq(x)
	}
	panic(fmt.Sprintf("serial: unsupported binding %T", b))
}

// Deserialize fills template from doc, which must have exactly the
// keys and nesting of template. Scalars are converted to the kind of
// their binding; an int is accepted for a float, but not the reverse.
func Deserialize(template params.Group, doc *document.Record) error {
	return decodeGroup("", template, doc, true)
}

// Overlay sets the fields of dst named in override, leaving the others
// unchanged. Nested records may be partial, but sequences must have
// exactly the length of the bound sequence.
func Overlay(dst params.Group, override *document.Record) error {
	return decodeGroup("", dst, override, false)
}

func decodeGroup(path string, g params.Group, rec *document.Record, full bool) error {
	fields := g.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	for _, k := range rec.Keys() {
		if !hasName(names, k) {
			return &schema.UnknownFieldError{Key: k, Path: schema.Path(path, k)}
		}
	}
	for _, f := range fields {
		fp := schema.Path(path, f.Name)
		v, ok := rec.Get(f.Name)
		if !ok {
			if full {
				return schema.Mismatch(fp, "missing key")
			}
			continue
		}
		if err := decode(fp, f.Value, v, full); err != nil {
			return err
		}
	}
	return nil
}

func hasName(names []string, k string) bool {
	for _, n := range names {
		if n == k {
			return true
		}
	}
	return false
}

func decode(path string, b any, v any, full bool) error {
	switch x := b.(type) {
	case *int:
		i, ok := v.(int)
		if !ok {
			return wrongKind(path, "int", v)
		}
		*x = i
	case *float64:
		f, ok := toFloat(v)
		if !ok {
			return wrongKind(path, "float", v)
		}
		*x = f
	case *bool:
		bv, ok := v.(bool)
		if !ok {
			return wrongKind(path, "bool", v)
		}
		*x = bv
	case *string:
		s, ok := v.(string)
		if !ok {
			return wrongKind(path, "string", v)
		}
		*x = s
	case *[2]int:
		return decodeTuple(path, x[:], v)
	case *[2]float64:
		return decodeTuple(path, x[:], v)
	case *[3]float64:
		return decodeTuple(path, x[:], v)
	case params.Group:
		rec, ok := v.(*document.Record)
		if !ok {
			return wrongKind(path, "record", v)
		}
		return decodeGroup(path, x, rec, full)
	case params.GroupSeq:
		seq, ok := v.([]any)
		if !ok {
			return wrongKind(path, "sequence", v)
		}
		if len(seq) != len(x) {
			return schema.Mismatch(path, "expected %d elements, found %d", len(x), len(seq))
		}
		for i, e := range seq {
			ep := schema.IndexPath(path, i)
			rec, ok := e.(*document.Record)
			if !ok {
				return wrongKind(ep, "record", e)
			}
			if err := decodeGroup(ep, x[i], rec, full); err != nil {
				return err
			}
		}
	default:
		panic(fmt.Sprintf("serial: unsupported binding %T", b))
	}
	return nil
}

// decodeTuple decodes a tuple of scalars into dst. The destination is
// only written once every element has converted.
func decodeTuple[T int | float64](path string, dst []T, v any) error {
	seq, ok := v.([]any)
	if !ok {
		return wrongKind(path, fmt.Sprintf("sequence of %d", len(dst)), v)
	}
	if len(seq) != len(dst) {
		return schema.Mismatch(path, "expected %d elements, found %d", len(dst), len(seq))
	}
	vals := make([]T, len(dst))
	for i, e := range seq {
		var zero T
		switch any(zero).(type) {
		case int:
			n, ok := e.(int)
			if !ok {
				return wrongKind(schema.IndexPath(path, i), "int", e)
			}
			vals[i] = T(n)
		default:
			f, ok := toFloat(e)
			if !ok {
				return wrongKind(schema.IndexPath(path, i), "float", e)
			}
			vals[i] = T(f)
		}
	}
	copy(dst, vals)
	return nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

func wrongKind(path, want string, v any) error {
	return schema.Mismatch(path, "expected %s, found %s", want, document.KindOf(v))
}

// ShapeOf returns the static shape of g. It only reads bindings,
// so a zero-valued group gives the canonical shape.
func ShapeOf(g params.Group) *schema.Shape {
	s := schema.NewRecord()
	for _, f := range g.Fields() {
		s.Add(f.Name, shapeOf(f.Value))
	}
	return s
}

func shapeOf(b any) *schema.Shape {
	switch x := b.(type) {
	case *int, *float64, *bool, *string:
		return schema.NewScalar()
	case *[2]int, *[2]float64:
		return schema.NewSequence(schema.NewScalar(), schema.NewScalar())
	case *[3]float64:
		return schema.NewSequence(schema.NewScalar(), schema.NewScalar(), schema.NewScalar())
	case params.Group:
		return ShapeOf(x)
	case params.GroupSeq:
		s := schema.NewSequence()
		for _, g := range x {
			s.Elems = append(s.Elems, ShapeOf(g))
		}
		return s
	}
	panic(fmt.Sprintf("serial: unsupported binding %T", b))
}
