// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"testing"

	"github.com/papersynth/papersynth/base/randx"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rig is a small composite group used to exercise nesting.
type rig struct {
	Name   string
	Camera params.Camera
	Lights [2]params.Light
}

func (r *rig) Fields() []params.Field {
	return []params.Field{
		{Name: "name", Value: &r.Name},
		{Name: "camera", Value: &r.Camera},
		{Name: "lights", Value: params.GroupSeq{&r.Lights[0], &r.Lights[1]}},
	}
}

func newRig(seed int64) *rig {
	rnd := randx.NewSysRand(seed)
	return &rig{
		Name:   "rig",
		Camera: *params.NewCamera(rnd, params.CameraOptions{}),
		Lights: [2]params.Light{
			*params.NewLight(rnd, 0, params.LightOptions{}),
			*params.NewLight(rnd, 1, params.LightOptions{}),
		},
	}
}

func TestSerialize(t *testing.T) {
	r := newRig(1)
	doc := Serialize(r)
	assert.Equal(t, []string{"name", "camera", "lights"}, doc.Keys())
	cam, ok := doc.Record("camera")
	require.True(t, ok)
	assert.Equal(t, []string{"focal_length", "relative_camera_distance", "orbit", "look_at_2d"}, cam.Keys())
	fl, _ := cam.Get("focal_length")
	assert.IsType(t, 0, fl)
	orbit, _ := cam.Get("orbit")
	assert.Equal(t, []any{r.Camera.Orbit[0], r.Camera.Orbit[1]}, orbit)
	lights, _ := doc.Get("lights")
	assert.Len(t, lights, 2)

	res := Serialize(params.NewRender(nil, params.RenderOptions{}))
	v, _ := res.Get("resolution")
	assert.Equal(t, []any{512, 512}, v)
	v, _ = res.Get("cycles_device")
	assert.Equal(t, "optix", v)
}

func TestRoundTrip(t *testing.T) {
	r := newRig(2)
	got := &rig{}
	require.NoError(t, Deserialize(got, Serialize(r)))
	assert.Equal(t, r, got)
	assert.True(t, document.Equal(Serialize(r), Serialize(got)))
}

func TestDeserializeErrors(t *testing.T) {
	doc := Serialize(newRig(3))
	cam, _ := doc.Record("camera")
	cam.Delete("orbit")
	err := Deserialize(&rig{}, doc)
	var se *schema.ShapeMismatchError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "camera.orbit", se.Path)

	doc = Serialize(newRig(3))
	cam, _ = doc.Record("camera")
	cam.Set("focal_length", 50.5)
	require.ErrorAs(t, Deserialize(&rig{}, doc), &se)
	assert.Equal(t, "camera.focal_length", se.Path)
	assert.Contains(t, se.Reason, "expected int")

	doc = Serialize(newRig(3))
	doc.Set("lights", []any{Serialize(&params.Light{})})
	require.ErrorAs(t, Deserialize(&rig{}, doc), &se)
	assert.Equal(t, "lights", se.Path)

	doc = Serialize(newRig(3))
	doc.Set("extra", 1)
	var ue *schema.UnknownFieldError
	require.ErrorAs(t, Deserialize(&rig{}, doc), &ue)
	assert.Equal(t, "extra", ue.Path)
}

func TestIntAcceptedForFloat(t *testing.T) {
	doc := Serialize(newRig(4))
	cam, _ := doc.Record("camera")
	cam.Set("relative_camera_distance", 2)
	cam.Set("look_at_2d", []any{1, 0.5})
	got := &rig{}
	require.NoError(t, Deserialize(got, doc))
	assert.Equal(t, 2.0, got.Camera.RelativeCameraDistance)
	assert.Equal(t, [2]float64{1, 0.5}, got.Camera.LookAt2D)
}

func TestOverlay(t *testing.T) {
	r := newRig(5)
	before := *r
	override := document.NewRecord().
		Set("camera", document.NewRecord().Set("focal_length", 50)).
		Set("lights", []any{
			document.NewRecord(),
			document.NewRecord().Set("visible", false).Set("color", []any{1.0, 0.0, 0.0}),
		})
	require.NoError(t, Overlay(r, override))
	assert.Equal(t, 50, r.Camera.FocalLength)
	assert.Equal(t, before.Camera.Orbit, r.Camera.Orbit)
	assert.Equal(t, before.Lights[0], r.Lights[0])
	assert.False(t, r.Lights[1].Visible)
	assert.Equal(t, [3]float64{1, 0, 0}, r.Lights[1].Color)
	assert.Equal(t, before.Lights[1].Power, r.Lights[1].Power)

	bad := document.NewRecord().Set("lights", []any{document.NewRecord()})
	var se *schema.ShapeMismatchError
	assert.ErrorAs(t, Overlay(r, bad), &se)

	bad = document.NewRecord().Set("camera", document.NewRecord().Set("orbit", []any{1.0}))
	require.ErrorAs(t, Overlay(r, bad), &se)
	assert.Equal(t, "camera.orbit", se.Path)
}

func TestShapeOf(t *testing.T) {
	s := ShapeOf(&rig{})
	assert.True(t, schema.Equal(s, schema.FromDocument(Serialize(newRig(6)))))
	orbit, ok := s.Fields.At("lights").Elems[1].Field("orbit")
	require.True(t, ok)
	assert.Len(t, orbit.Elems, 2)
}
