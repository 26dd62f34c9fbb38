// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/papersynth/papersynth/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, fn string, w, h int) {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	require.NoError(t, imagex.Save(im, fn))
}

func TestThumbnail(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_properties.json"), []byte("{}"), 0644))
	// an image with a misleading extension is still found by content
	writeImage(t, filepath.Join(dir, "b_render.png"), 200, 100)
	require.NoError(t, os.Rename(filepath.Join(dir, "b_render.png"), filepath.Join(dir, "b_render.data")))
	writeImage(t, filepath.Join(dir, "c_other.png"), 50, 50)

	src, _, err := FindImage(dir)
	require.NoError(t, err)
	assert.Equal(t, "b_render.data", filepath.Base(src))

	out, err := Thumbnail(dir, 64)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Filename), out)
	img, f, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	// the thumbnail itself is never used as a source
	src, _, err = FindImage(dir)
	require.NoError(t, err)
	assert.NotEqual(t, Filename, filepath.Base(src))
}

func TestThumbnailErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	_, err := Thumbnail(dir, 64)
	assert.True(t, errors.Is(err, ErrNoImage))
	_, err = Thumbnail(dir, 0)
	assert.Error(t, err)
	_, err = Thumbnail(filepath.Join(dir, "missing"), 64)
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "x.bmp")
	writeImage(t, fn, 4, 4)
	assert.True(t, IsImage(fn))
	assert.False(t, IsImage(filepath.Join(dir, "missing.png")))
}
