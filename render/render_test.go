// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/papersynth/papersynth/base/iox/imagex"
	"github.com/papersynth/papersynth/base/randx"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/host"
	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/preview"
	"github.com/papersynth/papersynth/scene"
	"github.com/papersynth/papersynth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(seed int64, opts scene.Options) *scene.Config {
	return scene.New(randx.NewSysRand(seed), "/project", opts)
}

func TestResolveFoldOffset(t *testing.T) {
	c := newConfig(1, scene.Options{Folds: [scene.NumFolds]params.FoldOptions{
		{Angle: params.Some(5.0)}, {Angle: params.Some(-7.5)},
	}})
	props, err := Resolve(c, "/out/000001")
	require.NoError(t, err)
	a0, _ := props.Get("fold.0.angle")
	a1, _ := props.Get("fold.1.angle")
	assert.Equal(t, 5.0, a0)
	assert.Equal(t, 82.5, a1)
	// the configuration keeps the persisted angle
	assert.Equal(t, -7.5, c.Folds[1].Angle)
}

func TestResolveOrderAndVisibility(t *testing.T) {
	c := newConfig(2, scene.Options{
		Ground: params.GroundOptions{Visible: params.Some(false)},
		Lights: [scene.NumLights]params.LightOptions{{}, {Visible: params.Some(false)}},
	})
	props, err := Resolve(c, "/out/x")
	require.NoError(t, err)
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	assert.Equal(t, "ground.visible", names[0])
	assert.Equal(t, "ground.albedo_tex", names[1])
	assert.NotContains(t, names, "ground.offset")
	assert.NotContains(t, names, "light.1.power")
	assert.Contains(t, names, "light.0.power")
	assert.Contains(t, names, "light.1.visible")
	assert.Equal(t, []string{"render.engine", "render.device", "render.samples", "render.denoise"}, names[len(names)-4:])

	idx := func(n string) int {
		for i, m := range names {
			if m == n {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("shadows.seed"), idx("paper.size"))
	assert.Less(t, idx("fold.1.angle"), idx("camera.focal_length"))
	assert.Less(t, idx("light.1.visible"), idx("hdri.texture_path"))
	assert.Less(t, idx("hdri.seed"), idx("frame"))
	assert.Less(t, idx("frame"), idx(PropOutputPath))

	v, _ := props.Get("output.resolution")
	assert.Equal(t, []any{512, 512}, v)
	v, _ = props.Get("frame")
	assert.Equal(t, 1, v)
	assert.True(t, document.Equal(v, 1))
	assert.Equal(t, len(props), props.Document().Len())
}

func TestResolveInvalidEnum(t *testing.T) {
	c := newConfig(3, scene.Options{Render: params.RenderOptions{CyclesDevice: params.Some(params.Device("metal"))}})
	rec := &host.Recorder{}
	err := Sample(context.Background(), rec, c, "/out")
	var ie *params.InvalidEnumError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "metal", ie.Value)
	assert.Empty(t, rec.Calls)

	c = newConfig(3, scene.Options{Render: params.RenderOptions{RenderEngine: params.Some(params.Engine("luxcore"))}})
	_, err = Resolve(c, "/out")
	assert.True(t, errors.Is(err, params.ErrInvalidEnumValue))
}

func TestSelectDevice(t *testing.T) {
	all := &host.Recorder{}
	assert.Equal(t, params.OptiX, SelectDevice(all, params.OptiX))

	cuda := &host.Recorder{Devices: []params.Device{params.CUDA}}
	assert.Equal(t, params.CUDA, SelectDevice(cuda, params.OptiX))
	assert.Equal(t, params.CUDA, SelectDevice(cuda, params.CUDA))

	none := &host.Recorder{Devices: []params.Device{}}
	assert.Equal(t, params.CPU, SelectDevice(none, params.OptiX))
	assert.Equal(t, params.CPU, SelectDevice(none, params.CPU))
}

func TestSampleAppliesFallback(t *testing.T) {
	c := newConfig(4, scene.Options{})
	rec := &host.Recorder{Devices: []params.Device{params.CPU}}
	require.NoError(t, Sample(context.Background(), rec, c, "/out/000004"))
	assert.Equal(t, 1, rec.Renders)
	assert.Equal(t, "cpu", rec.Values()[PropDevice])
	assert.Equal(t, params.OptiX, c.Render.CyclesDevice)

	props, err := Resolve(c, "/out/000004")
	require.NoError(t, err)
	require.Len(t, rec.Calls, len(props))
	for i, p := range props {
		if p.Name == PropDevice {
			continue
		}
		assert.Equal(t, p.Name, rec.Calls[i].Name)
		assert.Equal(t, p.Value, rec.Calls[i].Value)
	}
}

func TestApplyStopsOnHostError(t *testing.T) {
	rec := &host.Recorder{Err: errors.New("host down")}
	err := Apply(context.Background(), rec, Properties{{"frame", 1}})
	assert.Equal(t, rec.Err, err)
	assert.Equal(t, 0, rec.Renders)
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	rec := &host.Recorder{Save: true}
	b := &Batch{
		Root:      dir,
		ConfigDir: filepath.Join(dir, "config"),
		OutputDir: filepath.Join(dir, "renders"),
		Host:      rec,
	}
	files, err := b.Generate(7, 1, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "000001.json", filepath.Base(files[0]))
	assert.Equal(t, "000003.json", filepath.Base(files[2]))

	// a stale file in an output directory is removed by the reset
	stale := filepath.Join(dir, "renders", "000002", "stale.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))

	// a bad sample does not stop the batch
	bad := document.NewRecord().Set("rendr", document.NewRecord())
	require.NoError(t, document.Save(bad, filepath.Join(b.ConfigDir, "000002a.json")))

	err = b.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnknownField))
	assert.Contains(t, err.Error(), "000002a.json")
	assert.Equal(t, 3, rec.Renders)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dir, "renders", "000003", host.PropertiesFile))
	assert.NoDirExists(t, filepath.Join(dir, "renders", "000002a"))

	// render order follows file names
	var outs []any
	for _, c := range rec.Calls {
		if c.Name == PropOutputPath {
			outs = append(outs, filepath.Base(c.Value.(string)))
		}
	}
	assert.Equal(t, []any{"000001", "000002", "000003"}, outs)
}

func TestGenerateSeedsOnce(t *testing.T) {
	dir := t.TempDir()
	b := &Batch{ConfigDir: dir, Format: document.YAML}
	files, err := b.Generate(9, 0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "000000.yaml", filepath.Base(files[0]))

	rnd := randx.NewSysRand(9)
	first := scene.New(rnd, "", scene.Options{})
	second := scene.New(rnd, "", scene.Options{})
	got, err := scene.Open(files[1])
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.NotEqual(t, first, got)

	override := document.NewRecord().Set("render", document.NewRecord().Set("cycles_samples", 64))
	files, err = b.Generate(9, 10, 1, override)
	require.NoError(t, err)
	got, err = scene.Open(files[0])
	require.NoError(t, err)
	assert.Equal(t, 64, got.Render.CyclesSamples)

	_, err = b.Generate(9, 20, 1, document.NewRecord().Set("bogus", 1))
	assert.Error(t, err)
}

func TestBatchThumbnail(t *testing.T) {
	dir := t.TempDir()
	b := &Batch{
		ConfigDir: filepath.Join(dir, "config"),
		OutputDir: filepath.Join(dir, "renders"),
		Host:      &imageHost{},
		Thumbnail: 16,
	}
	_, err := b.Generate(1, 1, 1, nil)
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))
	assert.FileExists(t, filepath.Join(dir, "renders", "000001", preview.Filename))
}

// imageHost writes a small image into the output directory on render.
type imageHost struct {
	host.Recorder
}

func (h *imageHost) Render(ctx context.Context) error {
	out := h.Values()[PropOutputPath].(string)
	return imagex.Save(image.NewRGBA(image.Rect(0, 0, 32, 24)), filepath.Join(out, "image.png"))
}

func TestCheckAssets(t *testing.T) {
	dir := t.TempDir()
	c := scene.New(randx.NewSysRand(1), dir, scene.Options{})
	assert.Equal(t, 5, CheckAssets(c))

	for _, fn := range c.Assets() {
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
		require.NoError(t, imagex.Save(image.NewRGBA(image.Rect(0, 0, 2, 2)), fn+".png"))
		require.NoError(t, os.Rename(fn+".png", fn))
	}
	assert.Equal(t, 0, CheckAssets(c))

	// a zip archive is recognized and is not an image
	require.NoError(t, os.WriteFile(c.Ground.AlbedoTex, []byte("PK\x03\x04rest of archive"), 0644))
	assert.Equal(t, 1, CheckAssets(c))
}
