// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strconv"

	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/scene"
)

// FoldAngleStep is the angle in degrees added to each successive fold
// at resolution time, so that fold N is based at N*FoldAngleStep.
const FoldAngleStep = 90.0

// Property is one named value pushed to the rendering host.
// Values are document values: tuples are []any.
type Property struct {
	Name  string
	Value any
}

// Properties is an ordered list of host properties.
type Properties []Property

// Get returns the value of the named property.
func (ps Properties) Get(name string) (any, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Replace sets the value of the named property in place,
// reporting whether it was found.
func (ps Properties) Replace(name string, v any) bool {
	for i := range ps {
		if ps[i].Name == name {
			ps[i].Value = v
			return true
		}
	}
	return false
}

// Document returns the properties as an ordered document record.
func (ps Properties) Document() *document.Record {
	rec := document.NewRecord()
	for _, p := range ps {
		rec.Set(p.Name, p.Value)
	}
	return rec
}

// Property names of the host settings that the orchestrator inspects.
const (
	PropOutputPath = "output.path"
	PropEngine     = "render.engine"
	PropDevice     = "render.device"
)

// Resolve returns the host properties for cfg, rendering into outputPath.
// Values that only matter for a visible ground or light are skipped when
// it is hidden. Fold N is pushed at its persisted angle plus N*[FoldAngleStep].
// It fails with an [params.InvalidEnumError] for an unknown engine or device
// and does not modify cfg.
func Resolve(cfg *scene.Config, outputPath string) (Properties, error) {
	engine, err := params.ParseEngine(string(cfg.Render.RenderEngine))
	if err != nil {
		return nil, err
	}
	device, err := params.ParseDevice(string(cfg.Render.CyclesDevice))
	if err != nil {
		return nil, err
	}
	var ps Properties
	add := func(name string, v any) {
		ps = append(ps, Property{name, v})
	}

	g := &cfg.Ground
	add("ground.visible", g.Visible)
	if g.Visible {
		add("ground.offset", g.Offset)
		add("ground.texture_rotation", g.TextureRotation)
		add("ground.displacement_strength", g.DisplacementStrength)
		add("ground.subdivisions", g.Subdivisions)
		add("ground.uv_scale", g.UVScale)
		add("ground.texture_seed", g.TextureSeed)
	}
	add("ground.albedo_tex", g.AlbedoTex)
	add("ground.roughness_tex", g.RoughnessTex)
	add("ground.displacement_tex", g.DisplacementTex)

	add("shadows.visible", cfg.Shadows.Visible)
	add("shadows.seed", cfg.Shadows.Seed)

	p := &cfg.Paper
	add("paper.document_image_path", p.DocumentImagePath)
	add("paper.size", pair(p.Size))
	add("paper.subdivisions", p.Subdivisions)
	add("paper.crumpling_strength", p.CrumplingStrength)
	add("paper.fold_messiness", p.FoldMessiness)
	add("paper.fold_smoothness", p.FoldSmoothness)
	add("paper.texture_rotation", p.TextureRotation)
	add("paper.offset", p.Offset)
	for i, f := range cfg.Folds {
		add(indexed("fold", i, "strength"), f.Strength)
		add(indexed("fold", i, "angle"), f.Angle+float64(i)*FoldAngleStep)
	}

	c := &cfg.Camera
	add("camera.focal_length", c.FocalLength)
	add("camera.relative_camera_distance", c.RelativeCameraDistance)
	add("camera.orbit", pair(c.Orbit))
	add("camera.look_at_2d", pair(c.LookAt2D))

	for i, l := range cfg.Lights {
		add(indexed("light", i, "visible"), l.Visible)
		if !l.Visible {
			continue
		}
		add(indexed("light", i, "distance"), l.Distance)
		add(indexed("light", i, "orbit"), pair(l.Orbit))
		add(indexed("light", i, "look_at_2d"), pair(l.LookAt2D))
		add(indexed("light", i, "power"), l.Power)
		add(indexed("light", i, "shadow_softness_radius"), l.ShadowSoftnessRadius)
		add(indexed("light", i, "light_cone_angle"), l.LightConeAngle)
		add(indexed("light", i, "color"), []any{l.Color[0], l.Color[1], l.Color[2]})
	}

	h := &cfg.HDRI
	add("hdri.texture_path", h.TexturePath)
	add("hdri.light_strength", h.LightStrength)
	add("hdri.backdrop_strength", h.BackdropStrength)
	add("hdri.seed", h.Seed)

	add("frame", 1)

	r := &cfg.Render
	add(PropOutputPath, outputPath)
	add("output.compression", r.CompressionRatio)
	add("output.resolution", []any{r.Resolution[0], r.Resolution[1]})

	add(PropEngine, string(engine))
	add(PropDevice, string(device))
	add("render.samples", r.CyclesSamples)
	add("render.denoise", r.CyclesDenoise)
	return ps, nil
}

func pair(v [2]float64) []any {
	return []any{v[0], v[1]}
}

func indexed(group string, i int, field string) string {
	return group + "." + strconv.Itoa(i) + "." + field
}
