// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/papersynth/papersynth/base/exec"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	r := &Recorder{Save: true}
	require.NoError(t, r.Set(ctx, "frame", 1))
	require.NoError(t, r.Set(ctx, OutputProperty, dir))
	require.NoError(t, r.Set(ctx, "camera.orbit", []any{10.0, 20.0}))
	require.NoError(t, r.Render(ctx))
	assert.Equal(t, 1, r.Renders)
	assert.Equal(t, Call{"frame", 1}, r.Calls[0])
	assert.Equal(t, 1, r.Values()["frame"])

	doc, err := document.Open(filepath.Join(dir, PropertiesFile))
	require.NoError(t, err)
	assert.Equal(t, []string{"frame", OutputProperty, "camera.orbit"}, doc.Keys())

	// nothing pending and no output directory
	assert.Error(t, r.Render(ctx))

	assert.True(t, r.Supports(params.OptiX))
	r.Devices = []params.Device{params.CPU}
	assert.False(t, r.Supports(params.CUDA))

	r.Err = errors.New("broken")
	assert.Equal(t, r.Err, r.Set(ctx, "x", 1))
}

func TestCommandRender(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	ctx := context.Background()
	dir := t.TempDir()
	c := &Command{
		Line: `cp $PROPERTIES $OUTPUT/copied.json`,
		Exec: &exec.Config{},
	}
	require.NoError(t, c.Set(ctx, OutputProperty, dir))
	require.NoError(t, c.Set(ctx, "render.samples", 8))
	require.NoError(t, c.Render(ctx))

	b, err := os.ReadFile(filepath.Join(dir, "copied.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"render.samples": 8`)
	assert.Empty(t, c.Exec.Env)

	assert.Error(t, c.Render(ctx))

	c.Line = "sh -c 'exit 2'"
	require.NoError(t, c.Set(ctx, OutputProperty, dir))
	assert.Error(t, c.Render(ctx))
}

func TestCommandSupports(t *testing.T) {
	c := &Command{Devices: []params.Device{params.CUDA}}
	assert.True(t, c.Supports(params.CPU))
	assert.True(t, c.Supports(params.CUDA))
	assert.False(t, c.Supports(params.OptiX))
}

func TestCommandVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses echo")
	}
	ctx := context.Background()
	c := &Command{VersionLine: `echo "Blender 4.1.2 (hash 1234abcd)"`}
	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4.1.2", v.String())
	assert.NoError(t, c.CheckVersion(ctx, ">= 3.6"))
	assert.Error(t, c.CheckVersion(ctx, "< 4"))
	assert.Error(t, c.CheckVersion(ctx, "not a constraint"))

	c.VersionLine = "echo no version here"
	_, err = c.Version(ctx)
	assert.Error(t, err)
}
