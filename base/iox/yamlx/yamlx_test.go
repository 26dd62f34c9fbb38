// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fold struct {
	Strength float64 `yaml:"strength"`
	Angle    float64 `yaml:"angle"`
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "folds.yaml")
	in := []fold{{Strength: 0.5, Angle: -3}, {Strength: 0, Angle: 12.5}}
	require.NoError(t, Save(in, fn))

	var out []fold
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(map[string]int{"focal_length": 50})
	require.NoError(t, err)
	assert.Equal(t, "focal_length: 50\n", string(b))

	var out map[string]int
	require.NoError(t, ReadBytes(&out, b))
	assert.Equal(t, 50, out["focal_length"])
}
