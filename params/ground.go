// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"path/filepath"

	"github.com/papersynth/papersynth/base/randx"
)

// Ground is the textured surface the paper rests on.
type Ground struct {
	Visible              bool
	Offset               float64
	TextureRotation      float64
	DisplacementStrength float64
	Subdivisions         int
	UVScale              float64
	TextureSeed          int
	AlbedoTex            string
	RoughnessTex         string
	DisplacementTex      string
}

// GroundOptions are explicit values for [NewGround].
type GroundOptions struct {
	Visible              Opt[bool]
	Offset               Opt[float64]
	TextureRotation      Opt[float64]
	DisplacementStrength Opt[float64]
	Subdivisions         Opt[int]
	UVScale              Opt[float64]
	TextureSeed          Opt[int]
	AlbedoTex            Opt[string]
	RoughnessTex         Opt[string]
	DisplacementTex      Opt[string]
}

// NewGround returns a ground with randomized defaults. Texture paths
// default to files under root/assets/ground.
func NewGround(rnd randx.Rand, root string, opts GroundOptions) *Ground {
	g := &Ground{}
	g.Visible = opts.Visible.Or(randx.Bernoulli(rnd, 0.7))
	g.Offset = opts.Offset.Or(randx.Uniform(rnd, 0, 1.0))
	g.TextureRotation = opts.TextureRotation.Or(randx.Uniform(rnd, 0, 360.0))
	g.DisplacementStrength = opts.DisplacementStrength.Or(randx.Uniform(rnd, 0.05, 0.3))
	g.Subdivisions = opts.Subdivisions.Or(6)
	g.UVScale = opts.UVScale.Or(randx.Uniform(rnd, 0.5, 2.0))
	g.TextureSeed = opts.TextureSeed.Or(randx.IntRange(rnd, 0, 10000))
	dir := filepath.Join(root, "assets", "ground")
	g.AlbedoTex = opts.AlbedoTex.Or(filepath.Join(dir, "albedo.jpg"))
	g.RoughnessTex = opts.RoughnessTex.Or(filepath.Join(dir, "roughness.jpg"))
	g.DisplacementTex = opts.DisplacementTex.Or(filepath.Join(dir, "displacement.jpg"))
	return g
}

func (g *Ground) Fields() []Field {
	return []Field{
		{"visible", &g.Visible},
		{"offset", &g.Offset},
		{"texture_rotation", &g.TextureRotation},
		{"displacement_strength", &g.DisplacementStrength},
		{"subdivisions", &g.Subdivisions},
		{"uv_scale", &g.UVScale},
		{"texture_seed", &g.TextureSeed},
		{"albedo_tex", &g.AlbedoTex},
		{"roughness_tex", &g.RoughnessTex},
		{"displacement_tex", &g.DisplacementTex},
	}
}

// Textures returns the ground texture paths.
func (g *Ground) Textures() []string {
	return []string{g.AlbedoTex, g.RoughnessTex, g.DisplacementTex}
}

// Shadows controls the procedural shadow casters around the paper.
type Shadows struct {
	Visible bool
	Seed    int
}

// ShadowsOptions are explicit values for [NewShadows].
type ShadowsOptions struct {
	Visible Opt[bool]
	Seed    Opt[int]
}

// NewShadows returns shadow settings with randomized defaults.
func NewShadows(rnd randx.Rand, opts ShadowsOptions) *Shadows {
	s := &Shadows{}
	s.Visible = opts.Visible.Or(randx.Bernoulli(rnd, 0.6))
	s.Seed = opts.Seed.Or(randx.IntRange(rnd, 0, 10000))
	return s
}

func (s *Shadows) Fields() []Field {
	return []Field{
		{"visible", &s.Visible},
		{"seed", &s.Seed},
	}
}
