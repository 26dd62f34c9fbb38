// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document provides the persisted form of a scene configuration:
// an ordered tree of records, sequences and scalars, with JSON and YAML
// codecs that keep key order.
//
// The value kinds are closed:
//   - *[Record] for groups
//   - []any for fixed-size group sequences and tuples
//   - bool, int, float64 and string for scalars
package document

import (
	"fmt"
	"strings"

	"github.com/papersynth/papersynth/base/keylist"
)

// Record is an ordered mapping from keys to values.
// The zero value is an empty record ready to use.
type Record struct {
	list keylist.List[string, any]
}

// NewRecord returns a new empty [Record].
func NewRecord() *Record {
	return &Record{}
}

// Set sets the value for key, appending the key if it is new.
func (r *Record) Set(key string, v any) *Record {
	r.list.Set(key, v)
	return r
}

// Add appends key with value v, returning an error if key is already present.
func (r *Record) Add(key string, v any) error {
	return r.list.Add(key, v)
}

// Get returns the value for key and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	return r.list.AtTry(key)
}

// Has returns whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the keys in document order.
// The returned slice must not be modified.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return r.list.Keys
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return r.list.Len()
}

// Record returns the child record at key, if present and a record.
func (r *Record) Record(key string) (*Record, bool) {
	v, ok := r.Get(key)
	if !ok {
		return nil, false
	}
	c, ok := v.(*Record)
	return c, ok
}

// Delete removes key, reporting whether it was present.
func (r *Record) Delete(key string) bool {
	return r.list.DeleteByKey(key)
}

// String returns a compact single-line representation of the record.
func (r *Record) String() string {
	var sb strings.Builder
	writeString(&sb, r)
	return sb.String()
}

func writeString(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case *Record:
		sb.WriteByte('{')
		for i, k := range x.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			writeString(sb, x.list.Values[i])
		}
		sb.WriteByte('}')
	case []any:
		sb.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeString(sb, e)
		}
		sb.WriteByte(']')
	case string:
		fmt.Fprintf(sb, "%q", x)
	default:
		fmt.Fprint(sb, x)
	}
}

// Equal reports whether a and b are the same document value,
// including key order. Ints and floats are distinct kinds.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *Record:
		y, ok := b.(*Record)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, k := range x.Keys() {
			if y.Keys()[i] != k || !Equal(x.list.Values[i], y.list.Values[i]) {
				return false
			}
		}
		return true
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case bool, int, float64, string:
		return a == b
	}
	return false
}

// KindOf returns a short name for the kind of document value v,
// used in error messages.
func KindOf(v any) string {
	switch v.(type) {
	case *Record:
		return "record"
	case []any:
		return "sequence"
	case bool:
		return "bool"
	case int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
