// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"path/filepath"

	"github.com/papersynth/papersynth/base/randx"
)

// Paper is the sheet carrying the document image.
// Size is in centimeters and defaults to A4.
type Paper struct {
	DocumentImagePath string
	Size              [2]float64
	Subdivisions      int
	CrumplingStrength float64
	FoldMessiness     float64
	FoldSmoothness    float64
	TextureRotation   float64
	Offset            float64
}

// PaperOptions are explicit values for [NewPaper].
type PaperOptions struct {
	DocumentImagePath Opt[string]
	Size              Opt[[2]float64]
	Subdivisions      Opt[int]
	CrumplingStrength Opt[float64]
	FoldMessiness     Opt[float64]
	FoldSmoothness    Opt[float64]
	TextureRotation   Opt[float64]
	Offset            Opt[float64]
}

// NewPaper returns paper settings with randomized defaults.
func NewPaper(rnd randx.Rand, root string, opts PaperOptions) *Paper {
	p := &Paper{}
	p.DocumentImagePath = opts.DocumentImagePath.Or(filepath.Join(root, "assets", "paper", "document.png"))
	p.Size = opts.Size.Or([2]float64{21.0, 29.7})
	p.Subdivisions = opts.Subdivisions.Or(6)
	p.CrumplingStrength = opts.CrumplingStrength.Or(randx.Uniform(rnd, 0, 0.5))
	p.FoldMessiness = opts.FoldMessiness.Or(randx.Uniform(rnd, 0, 1.0))
	p.FoldSmoothness = opts.FoldSmoothness.Or(randx.Uniform(rnd, 0, 1.0))
	p.TextureRotation = opts.TextureRotation.Or(randx.Uniform(rnd, 0, 360.0))
	p.Offset = opts.Offset.Or(randx.Uniform(rnd, 0, 1.0))
	return p
}

func (p *Paper) Fields() []Field {
	return []Field{
		{"document_image_path", &p.DocumentImagePath},
		{"size", &p.Size},
		{"subdivisions", &p.Subdivisions},
		{"crumpling_strength", &p.CrumplingStrength},
		{"fold_messiness", &p.FoldMessiness},
		{"fold_smoothness", &p.FoldSmoothness},
		{"texture_rotation", &p.TextureRotation},
		{"offset", &p.Offset},
	}
}

// Fold is one crease across the paper. A strength of 0 means no fold.
// Angle is in degrees relative to the fold's base orientation.
type Fold struct {
	Strength float64
	Angle    float64
}

// FoldOptions are explicit values for [NewFold].
type FoldOptions struct {
	Strength Opt[float64]
	Angle    Opt[float64]
}

// NewFold returns a fold with randomized defaults. A fold is present
// with probability 0.7; an absent fold has a strength of exactly 0.
func NewFold(rnd randx.Rand, opts FoldOptions) *Fold {
	f := &Fold{}
	strength := 0.0
	if randx.Bernoulli(rnd, 0.7) {
		strength = randx.Uniform(rnd, 0.1, 0.8)
	}
	f.Strength = opts.Strength.Or(strength)
	f.Angle = opts.Angle.Or(randx.Uniform(rnd, -15, 15.0))
	return f
}

func (f *Fold) Fields() []Field {
	return []Field{
		{"strength", &f.Strength},
		{"angle", &f.Angle},
	}
}
