// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview makes small thumbnails of rendered sample outputs.
package preview

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/papersynth/papersynth/base/errors"
	"github.com/papersynth/papersynth/base/fsx"
	"github.com/papersynth/papersynth/base/iox/imagex"
)

// Filename is the name of the thumbnail written into a sample directory.
const Filename = "thumbnail.png"

// ErrNoImage is returned when a directory has no decodable image.
var ErrNoImage = errors.New("preview: no image found")

// IsImage reports whether the file content sniffs as an image.
// Unreadable files are not images.
func IsImage(filename string) bool {
	kind, err := filetype.MatchFile(filename)
	if err != nil {
		return false
	}
	return kind.MIME.Type == "image"
}

// FindImage returns the first file in dir, in name order, whose content is
// an image that can be decoded, along with the decoded image. Previous
// thumbnails are skipped.
func FindImage(dir string) (string, image.Image, error) {
	names, err := fsx.Filenames(dir)
	if err != nil {
		return "", nil, err
	}
	for _, name := range names {
		if name == Filename {
			continue
		}
		fn := filepath.Join(dir, name)
		if !IsImage(fn) {
			continue
		}
		img, _, err := imagex.Open(fn)
		if err != nil {
			slog.Debug("preview: skipping undecodable image", "file", fn, "err", err)
			continue
		}
		return fn, img, nil
	}
	return "", nil, fmt.Errorf("%w in %s", ErrNoImage, dir)
}

// Resize returns img scaled to the given width, keeping its aspect ratio.
func Resize(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := max(1, width*b.Dy()/max(1, b.Dx()))
	return transform.Resize(img, width, height, transform.Linear)
}

// Thumbnail writes a thumbnail of the given width for the first image in
// dir to [Filename] in dir, and returns its path.
func Thumbnail(dir string, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("preview: invalid thumbnail width %d", width)
	}
	src, img, err := FindImage(dir)
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, Filename)
	if err := imagex.Save(Resize(img, width), out); err != nil {
		return "", err
	}
	slog.Debug("wrote thumbnail", "source", src, "thumbnail", out)
	return out, nil
}
