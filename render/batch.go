// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/papersynth/papersynth/base/errors"
	"github.com/papersynth/papersynth/base/fsx"
	"github.com/papersynth/papersynth/base/randx"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/preview"
	"github.com/papersynth/papersynth/scene"
)

// Batch renders a directory of sample documents, one output
// directory per sample, and generates such directories.
type Batch struct {
	// Root is the project root that default asset paths are under.
	Root string

	// ConfigDir holds the sample documents.
	ConfigDir string

	// OutputDir receives one directory per sample, named after
	// the document without its extension.
	OutputDir string

	// Host renders the samples.
	Host Host

	// Format is the document format written by [Batch.Generate].
	Format document.Format

	// Thumbnail is the width of the preview written into each sample
	// directory after rendering. No preview is written if it is 0.
	Thumbnail int
}

// Samples returns the sample documents in the config directory, sorted by name.
func (b *Batch) Samples() ([]string, error) {
	names, err := fsx.Filenames(b.ConfigDir, document.Extensions...)
	if err != nil {
		return nil, err
	}
	for i, n := range names {
		names[i] = filepath.Join(b.ConfigDir, n)
	}
	return names, nil
}

// Run renders every sample in order. A failed sample is logged and
// skipped; all failures are returned joined. Run stops early only
// when ctx is done.
func (b *Batch) Run(ctx context.Context) error {
	files, err := b.Samples()
	if err != nil {
		return err
	}
	slog.Info("rendering samples", "count", len(files), "config", b.ConfigDir)
	var errs []error
	for i, fn := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		slog.Info("rendering sample", "n", i+1, "of", len(files), "file", fn)
		if err := b.RenderFile(ctx, fn); err != nil {
			slog.Error("sample failed", "file", fn, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(fn), err))
		}
	}
	return errors.Join(errs...)
}

// OutputPath returns the output directory for the given sample document.
func (b *Batch) OutputPath(filename string) string {
	base := filepath.Base(filename)
	return filepath.Join(b.OutputDir, strings.TrimSuffix(base, filepath.Ext(base)))
}

// RenderFile loads, validates and renders one sample document.
// The output directory is reset once the document has loaded,
// before anything is sent to the host.
func (b *Batch) RenderFile(ctx context.Context, filename string) error {
	cfg, err := scene.Open(filename)
	if err != nil {
		return err
	}
	out := b.OutputPath(filename)
	if err := fsx.ResetDir(out); err != nil {
		return err
	}
	CheckAssets(cfg)
	if err := Sample(ctx, b.Host, cfg.Clone(), out); err != nil {
		return err
	}
	if b.Thumbnail > 0 {
		if _, err := preview.Thumbnail(out, b.Thumbnail); err != nil {
			slog.Warn("no thumbnail written", "dir", out, "err", err)
		}
	}
	return nil
}

// CheckAssets logs a warning for each asset of cfg that is missing, or
// that is recognized by content as something other than an image.
// It returns the number of warnings.
func CheckAssets(cfg *scene.Config) int {
	n := 0
	for _, fn := range cfg.Assets() {
		kind, err := filetype.MatchFile(fn)
		switch {
		case err != nil:
			slog.Warn("asset cannot be read", "file", fn, "err", err)
			n++
		case kind == filetype.Unknown:
			slog.Debug("asset type not recognized", "file", fn)
		case kind.MIME.Type != "image":
			slog.Warn("asset is not an image", "file", fn, "type", kind.MIME.Value)
			n++
		}
	}
	return n
}

// Generate writes n new sample documents to the config directory, named
// by a zero-padded index starting at start. Every sample draws from one
// stream seeded once with seed. If override is non-nil, it is laid over
// every sample. It returns the written files.
func (b *Batch) Generate(seed int64, start, n int, override *document.Record) ([]string, error) {
	format := b.Format
	if format == "" {
		format = document.JSON
	}
	if err := os.MkdirAll(b.ConfigDir, 0755); err != nil {
		return nil, err
	}
	rnd := randx.NewSysRand(seed)
	var files []string
	for i := 0; i < n; i++ {
		var cfg *scene.Config
		if override != nil {
			var err error
			if cfg, err = scene.FromOverride(rnd, b.Root, override); err != nil {
				return files, err
			}
		} else {
			cfg = scene.New(rnd, b.Root, scene.Options{})
		}
		fn := filepath.Join(b.ConfigDir, fmt.Sprintf("%06d%s", start+i, format.Ext()))
		if err := cfg.Save(fn); err != nil {
			return files, err
		}
		files = append(files, fn)
	}
	slog.Info("generated samples", "count", len(files), "seed", seed, "dir", b.ConfigDir)
	return files, nil
}
