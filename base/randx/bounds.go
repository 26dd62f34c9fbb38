// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "golang.org/x/exp/constraints"

// Uniform returns a value uniformly distributed in the
// half-open interval [lo, hi). It always consumes exactly
// one Float64 draw from rnd.
func Uniform[T constraints.Float](rnd Rand, lo, hi T) T {
	return lo + T(rnd.Float64())*(hi-lo)
}

// IntRange returns an integer uniformly distributed in the
// closed interval [lo, hi]. It always consumes exactly one
// Intn draw from rnd. It panics if hi < lo.
func IntRange[T constraints.Integer](rnd Rand, lo, hi T) T {
	return lo + T(rnd.Intn(int(hi-lo)+1))
}

// Bernoulli returns true with probability p. It always
// consumes exactly one Float64 draw from rnd.
func Bernoulli(rnd Rand, p float64) bool {
	return rnd.Float64() < p
}

// Normalized returns a copy of ws scaled so that its elements sum to 1.
// If the elements sum to 0, an even split is returned.
func Normalized[T constraints.Float](ws ...T) []T {
	var sum T
	for _, w := range ws {
		sum += w
	}
	out := make([]T, len(ws))
	for i, w := range ws {
		if sum == 0 {
			out[i] = 1 / T(len(ws))
			continue
		}
		out[i] = w / sum
	}
	return out
}
