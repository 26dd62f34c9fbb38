// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordT struct {
	errs []any
}

func (r *recordT) Error(args ...any) {
	r.errs = append(r.errs, args...)
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	a, b := Log2(1, "x", err)
	assert.Equal(t, 1, a)
	assert.Equal(t, "x", b)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 5, Must1(5, nil))
	assert.Panics(t, func() { Must1(5, New("boom")) })
}

func TestTest(t *testing.T) {
	rt := &recordT{}
	assert.NoError(t, Test(rt, nil))
	assert.Empty(t, rt.errs)
	assert.Equal(t, 7, Test1(rt, 7, New("bad")))
	assert.Len(t, rt.errs, 1)
}

func TestAliases(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("wrap: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
	assert.Equal(t, 9, Ignore1(9, base))
}
