// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"log/slog"

	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/scene"
)

// Host is an external rendering host that accepts properties one at a
// time and then renders the scene they describe.
type Host interface {
	// Set sets one property of the scene.
	Set(ctx context.Context, name string, value any) error

	// Render renders the scene with the properties set so far.
	Render(ctx context.Context) error

	// Supports reports whether the host can render on the given device.
	Supports(d params.Device) bool
}

// fallback is the device tried after each device that cannot be enabled.
var fallback = map[params.Device]params.Device{
	params.OptiX: params.CUDA,
	params.CUDA:  params.CPU,
}

// SelectDevice returns the first device supported by h, starting from
// requested and falling back from optix to cuda to cpu. Each skipped
// device is logged as a warning. The cpu is always used as a last resort.
func SelectDevice(h Host, requested params.Device) params.Device {
	d := requested
	for d != params.CPU && !h.Supports(d) {
		next, ok := fallback[d]
		if !ok {
			next = params.CPU
		}
		slog.Warn("failed to enable device, falling back", "device", d, "fallback", next)
		d = next
	}
	return d
}

// Apply pushes props to h in order and then renders. The first host
// error is returned unchanged.
func Apply(ctx context.Context, h Host, props Properties) error {
	for _, p := range props {
		if err := h.Set(ctx, p.Name, p.Value); err != nil {
			return err
		}
	}
	return h.Render(ctx)
}

// Sample resolves cfg, selects a device the host supports for the cycles
// engine, and renders into outputPath. cfg is not modified.
func Sample(ctx context.Context, h Host, cfg *scene.Config, outputPath string) error {
	props, err := Resolve(cfg, outputPath)
	if err != nil {
		return err
	}
	if cfg.Render.RenderEngine == params.Cycles {
		props.Replace(PropDevice, string(SelectDevice(h, cfg.Render.CyclesDevice)))
	}
	return Apply(ctx, h, props)
}
