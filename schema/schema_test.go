// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"testing"

	"github.com/papersynth/papersynth/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func light() *Shape {
	return NewRecord().
		Add("visible", NewScalar()).
		Add("orbit", NewSequence(NewScalar(), NewScalar()))
}

func canonical() *Shape {
	return NewRecord().
		Add("render", NewRecord().Add("cycles_samples", NewScalar())).
		Add("paper", NewRecord().Add("size", NewSequence(NewScalar(), NewScalar()))).
		Add("lights", NewSequence(light(), light()))
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(canonical(), document.NewRecord()))
	doc := document.NewRecord().
		Set("lights", []any{document.NewRecord(), document.NewRecord().Set("visible", true)}).
		Set("render", document.NewRecord().Set("cycles_samples", 4))
	assert.NoError(t, Validate(canonical(), doc))
}

func TestUnknownTopLevel(t *testing.T) {
	doc := document.NewRecord().Set("rendr", document.NewRecord())
	err := Validate(canonical(), doc)
	var ue *UnknownFieldError
	require.ErrorAs(t, err, &ue)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, "rendr", ue.Key)
	assert.Equal(t, "rendr", ue.Path)
	assert.Equal(t, "render", ue.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "render"`)
}

func TestUnknownNestedSequence(t *testing.T) {
	doc := document.NewRecord().Set("lights", []any{
		document.NewRecord(),
		document.NewRecord().Set("visibel", true),
	})
	err := Validate(canonical(), doc)
	var ue *UnknownFieldError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "lights[1].visibel", ue.Path)
	assert.Equal(t, "visible", ue.Suggestion)

	doc = document.NewRecord().Set("paper", document.NewRecord().Set("zzzzzzzz", 1))
	require.ErrorAs(t, Validate(canonical(), doc), &ue)
	assert.Equal(t, "", ue.Suggestion)
}

func TestCandidateOrder(t *testing.T) {
	// unknown keys at the top level are found before problems inside known children
	doc := document.NewRecord().
		Set("paper", document.NewRecord().Set("bogus", 1)).
		Set("extra", 1)
	var ue *UnknownFieldError
	require.ErrorAs(t, Validate(canonical(), doc), &ue)
	assert.Equal(t, "extra", ue.Path)

	// first unknown key in document order wins
	doc = document.NewRecord().Set("zeta", 1).Set("alpha", 1)
	require.ErrorAs(t, Validate(canonical(), doc), &ue)
	assert.Equal(t, "zeta", ue.Key)
}

func TestShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  *document.Record
		path string
	}{
		{"short sequence", document.NewRecord().Set("lights", []any{document.NewRecord()}), "lights"},
		{"map for sequence", document.NewRecord().Set("lights", document.NewRecord()), "lights"},
		{"sequence for map", document.NewRecord().Set("render", []any{}), "render"},
		{"scalar for map", document.NewRecord().Set("render", 3), "render"},
		{"long tuple", document.NewRecord().Set("paper", document.NewRecord().Set("size", []any{1.0, 2.0, 3.0})), "paper.size"},
		{"map for scalar", document.NewRecord().Set("render", document.NewRecord().Set("cycles_samples", document.NewRecord())), "render.cycles_samples"},
	}
	for _, tt := range tests {
		err := Validate(canonical(), tt.doc)
		var se *ShapeMismatchError
		require.ErrorAs(t, err, &se, tt.name)
		assert.True(t, errors.Is(err, ErrShapeMismatch), tt.name)
		assert.Equal(t, tt.path, se.Path, tt.name)
	}
}

func TestShapeHelpers(t *testing.T) {
	c := canonical()
	assert.True(t, Equal(c, canonical()))
	assert.False(t, Equal(c, NewRecord()))
	assert.Equal(t, []string{
		"render", "render.cycles_samples",
		"paper", "paper.size", "paper.size[0]", "paper.size[1]",
		"lights",
		"lights[0]", "lights[0].visible", "lights[0].orbit", "lights[0].orbit[0]", "lights[0].orbit[1]",
		"lights[1]", "lights[1].visible", "lights[1].orbit", "lights[1].orbit[0]", "lights[1].orbit[1]",
	}, Keys(c))

	doc := document.NewRecord().
		Set("render", document.NewRecord().Set("cycles_samples", 8)).
		Set("paper", document.NewRecord().Set("size", []any{21.0, 29.7})).
		Set("lights", []any{
			document.NewRecord().Set("visible", true).Set("orbit", []any{1.0, 2.0}),
			document.NewRecord().Set("visible", false).Set("orbit", []any{1.0, 2.0}),
		})
	assert.True(t, Equal(c, FromDocument(doc)))
	assert.Contains(t, c.String(), "  size (2)\n")
	assert.Equal(t, "sequence", Sequence.String())
}
