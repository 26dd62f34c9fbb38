// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/papersynth/papersynth/document"
)

// SuggestThreshold is the minimum Levenshtein similarity for a schema key
// to be offered as a suggestion for an unknown key.
const SuggestThreshold = 0.5

// Validate checks that every key in candidate exists in canonical, at
// every level. Keys may be missing. At each record level the candidate's
// own keys are checked first, in document order, and then child records
// are recursed in canonical order. Sequences must have exactly the schema
// length. The first problem found is returned.
func Validate(canonical *Shape, candidate *document.Record) error {
	return validateRecord("", canonical, candidate)
}

// Path joins a parent path and a child key the way error paths are written.
func Path(parent, key string) string { return join(parent, key) }

// IndexPath joins a parent path and a sequence index the way error paths are written.
func IndexPath(parent string, i int) string { return index(parent, i) }

func validateRecord(path string, canon *Shape, rec *document.Record) error {
	for _, k := range rec.Keys() {
		if !canon.Fields.Has(k) {
			return &UnknownFieldError{Key: k, Path: join(path, k), Suggestion: suggest(k, canon.Fields.Keys)}
		}
	}
	for i, k := range canon.Fields.Keys {
		v, ok := rec.Get(k)
		if !ok {
			continue
		}
		if err := validateValue(join(path, k), canon.Fields.Values[i], v); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(path string, canon *Shape, v any) error {
	switch canon.Kind {
	case Record:
		rec, ok := v.(*document.Record)
		if !ok {
			return Mismatch(path, "expected a record, found %s", document.KindOf(v))
		}
		return validateRecord(path, canon, rec)
	case Sequence:
		seq, ok := v.([]any)
		if !ok {
			return Mismatch(path, "expected a sequence of %d, found %s", len(canon.Elems), document.KindOf(v))
		}
		if len(seq) != len(canon.Elems) {
			return Mismatch(path, "expected %d elements, found %d", len(canon.Elems), len(seq))
		}
		for i, e := range seq {
			if err := validateValue(index(path, i), canon.Elems[i], e); err != nil {
				return err
			}
		}
	default:
		switch v.(type) {
		case *document.Record, []any:
			return Mismatch(path, "expected a scalar, found %s", document.KindOf(v))
		}
	}
	return nil
}

// suggest returns the key in keys most similar to key,
// or "" if none reaches [SuggestThreshold].
func suggest(key string, keys []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, k := range keys {
		sim := strutil.Similarity(key, k, lev)
		if sim >= SuggestThreshold && sim > bestSim {
			best, bestSim = k, sim
		}
	}
	return best
}
