// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "github.com/papersynth/papersynth/base/randx"

// Camera is the camera pose, orbiting the paper center.
// Orbit is (attitude, azimuth) in degrees. RelativeCameraDistance is
// relative to the distance at which the paper fills the frame.
type Camera struct {
	FocalLength            int
	RelativeCameraDistance float64
	Orbit                  [2]float64
	LookAt2D               [2]float64
}

// CameraOptions are explicit values for [NewCamera].
type CameraOptions struct {
	FocalLength            Opt[int]
	RelativeCameraDistance Opt[float64]
	Orbit                  Opt[[2]float64]
	LookAt2D               Opt[[2]float64]
}

// NewCamera returns a camera with randomized defaults.
func NewCamera(rnd randx.Rand, opts CameraOptions) *Camera {
	c := &Camera{}
	c.FocalLength = opts.FocalLength.Or(randx.IntRange(rnd, 24, 135))
	c.RelativeCameraDistance = opts.RelativeCameraDistance.Or(1.3)
	orbit := [2]float64{randx.Uniform(rnd, 0, 25.0), randx.Uniform(rnd, 0, 360.0)}
	c.Orbit = opts.Orbit.Or(orbit)
	c.LookAt2D = opts.LookAt2D.Or([2]float64{0, 0})
	return c
}

func (c *Camera) Fields() []Field {
	return []Field{
		{"focal_length", &c.FocalLength},
		{"relative_camera_distance", &c.RelativeCameraDistance},
		{"orbit", &c.Orbit},
		{"look_at_2d", &c.LookAt2D},
	}
}
