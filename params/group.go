// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params defines the parameter groups of a scene: flat records
// of typed fields, each with a generation rule that draws from a seeded
// random stream unless an explicit value is supplied.
//
// Each group exposes its fields through [Group.Fields] as an ordered list
// of named bindings, so that a single walker can persist and load every
// group without knowing any group by name.
package params

// Field is a named binding to one field of a group.
//
// Value is one of the following, and nothing else:
//   - *int, *float64, *bool or *string for scalars
//   - *[2]int, *[2]float64 or *[3]float64 for tuples
//   - a [Group] for a nested record
//   - a [GroupSeq] for a fixed-length sequence of records
type Field struct {
	// Name is the persisted key.
	Name string

	// Value points at the bound storage.
	Value any
}

// Group is a record of fields.
type Group interface {
	// Fields returns bindings to the fields of the group, in persisted order.
	// The bindings point into the receiver, so it must be a pointer.
	Fields() []Field
}

// GroupSeq is a fixed-length sequence of groups whose positions are significant.
type GroupSeq []Group
