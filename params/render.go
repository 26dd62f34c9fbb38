// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "github.com/papersynth/papersynth/base/randx"

// Render holds the output and sampling settings of the render.
// It has no random fields.
type Render struct {
	Resolution       [2]int
	CompressionRatio int
	RenderEngine     Engine
	CyclesDevice     Device
	CyclesSamples    int
	CyclesDenoise    bool
}

// RenderOptions are explicit values for [NewRender].
type RenderOptions struct {
	Resolution       Opt[[2]int]
	CompressionRatio Opt[int]
	RenderEngine     Opt[Engine]
	CyclesDevice     Opt[Device]
	CyclesSamples    Opt[int]
	CyclesDenoise    Opt[bool]
}

// NewRender returns render settings with the given explicit values.
func NewRender(rnd randx.Rand, opts RenderOptions) *Render {
	return &Render{
		Resolution:       opts.Resolution.Or([2]int{512, 512}),
		CompressionRatio: opts.CompressionRatio.Or(15),
		RenderEngine:     opts.RenderEngine.Or(Cycles),
		CyclesDevice:     opts.CyclesDevice.Or(OptiX),
		CyclesSamples:    opts.CyclesSamples.Or(8),
		CyclesDenoise:    opts.CyclesDenoise.Or(true),
	}
}

func (r *Render) Fields() []Field {
	return []Field{
		{"resolution", &r.Resolution},
		{"compression_ratio", &r.CompressionRatio},
		{"render_engine", (*string)(&r.RenderEngine)},
		{"cycles_device", (*string)(&r.CyclesDevice)},
		{"cycles_samples", &r.CyclesSamples},
		{"cycles_denoise", &r.CyclesDenoise},
	}
}
