// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"path/filepath"

	"github.com/papersynth/papersynth/base/randx"
)

// HDRI is the environment map lighting the scene.
// The host derives the environment rotation from Seed.
type HDRI struct {
	TexturePath      string
	LightStrength    float64
	BackdropStrength float64
	Seed             int
}

// HDRIOptions are explicit values for [NewHDRI].
type HDRIOptions struct {
	TexturePath      Opt[string]
	LightStrength    Opt[float64]
	BackdropStrength Opt[float64]
	Seed             Opt[int]
}

// NewHDRI returns environment settings with randomized defaults.
func NewHDRI(rnd randx.Rand, root string, opts HDRIOptions) *HDRI {
	h := &HDRI{}
	h.TexturePath = opts.TexturePath.Or(filepath.Join(root, "assets", "hdri", "environment.hdr"))
	h.LightStrength = opts.LightStrength.Or(randx.Uniform(rnd, 0.02, 0.3))
	h.BackdropStrength = opts.BackdropStrength.Or(1.0)
	h.Seed = opts.Seed.Or(randx.IntRange(rnd, 0, 10000))
	return h
}

func (h *HDRI) Fields() []Field {
	return []Field{
		{"texture_path", &h.TexturePath},
		{"light_strength", &h.LightStrength},
		{"backdrop_strength", &h.BackdropStrength},
		{"seed", &h.Seed},
	}
}

// Light is a spot light orbiting the paper center.
// Orbit is (attitude, azimuth) in degrees, LookAt2D is the target on
// the paper plane, and Color is normalized to sum to 1.
type Light struct {
	Visible              bool
	Distance             float64
	Orbit                [2]float64
	LookAt2D             [2]float64
	Power                float64
	ShadowSoftnessRadius float64
	LightConeAngle       float64
	Color                [3]float64
}

// LightOptions are explicit values for [NewLight].
type LightOptions struct {
	Visible              Opt[bool]
	Distance             Opt[float64]
	Orbit                Opt[[2]float64]
	LookAt2D             Opt[[2]float64]
	Power                Opt[float64]
	ShadowSoftnessRadius Opt[float64]
	LightConeAngle       Opt[float64]
	Color                Opt[[3]float64]
}

// NewLight returns a light with randomized defaults. The light at
// index 0 is the primary light and is always visible; any other
// light is visible with probability 0.3.
func NewLight(rnd randx.Rand, index int, opts LightOptions) *Light {
	l := &Light{}
	visible := true
	if index > 0 {
		visible = randx.Bernoulli(rnd, 0.3)
	}
	l.Visible = opts.Visible.Or(visible)
	l.Distance = opts.Distance.Or(randx.Uniform(rnd, 2, 4.0))
	orbit := [2]float64{randx.Uniform(rnd, 0, 45.0), randx.Uniform(rnd, 0, 360.0)}
	l.Orbit = opts.Orbit.Or(orbit)
	look := [2]float64{randx.Uniform(rnd, -0.4, 0.4), randx.Uniform(rnd, -0.4, 0.4)}
	l.LookAt2D = opts.LookAt2D.Or(look)
	l.Power = opts.Power.Or(randx.Uniform(rnd, 500, 900.0))
	l.ShadowSoftnessRadius = opts.ShadowSoftnessRadius.Or(randx.Uniform(rnd, 0.05, 0.5))
	l.LightConeAngle = opts.LightConeAngle.Or(randx.Uniform(rnd, 30, 90.0))
	c := randx.Normalized(randx.Uniform(rnd, 0.7, 1.0), randx.Uniform(rnd, 0.7, 1.0), randx.Uniform(rnd, 0.7, 1.0))
	l.Color = opts.Color.Or([3]float64(c))
	return l
}

func (l *Light) Fields() []Field {
	return []Field{
		{"visible", &l.Visible},
		{"distance", &l.Distance},
		{"orbit", &l.Orbit},
		{"look_at_2d", &l.LookAt2D},
		{"power", &l.Power},
		{"shadow_softness_radius", &l.ShadowSoftnessRadius},
		{"light_cone_angle", &l.LightConeAngle},
		{"color", &l.Color},
	}
}
