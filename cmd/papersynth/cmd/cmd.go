// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the papersynth tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/papersynth/papersynth/base/errors"
	"github.com/papersynth/papersynth/base/randx"
	"github.com/papersynth/papersynth/cmd/papersynth/config"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/host"
	"github.com/papersynth/papersynth/render"
	"github.com/papersynth/papersynth/scene"
)

// Batch returns the render batch described by c, without a host.
func Batch(c *config.Config) (*render.Batch, error) {
	if err := c.Expand(); err != nil {
		return nil, err
	}
	format := document.Format(c.Format)
	if _, err := document.FormatOf("x" + format.Ext()); err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", c.Format, err)
	}
	return &render.Batch{
		Root:      c.Root,
		ConfigDir: c.ConfigDir,
		OutputDir: c.OutputDir,
		Format:    format,
		Thumbnail: c.Thumbnail,
	}, nil
}

// Generate writes randomized sample documents to the config directory.
func Generate(c *config.Config) ([]string, error) {
	b, err := Batch(c)
	if err != nil {
		return nil, err
	}
	seed := c.Generate.Seed
	if seed == 0 {
		seed = randx.TimeSeed()
		slog.Warn("no seed given, using a time-based seed", "seed", seed)
	}
	var override *document.Record
	if c.Generate.Override != "" {
		if override, err = document.Open(c.Generate.Override); err != nil {
			return nil, err
		}
	}
	return b.Generate(seed, c.Generate.Start, c.Generate.Count, override)
}

// Render renders every sample document in the config directory.
func Render(ctx context.Context, c *config.Config) error {
	b, err := Batch(c)
	if err != nil {
		return err
	}
	if c.DryRun {
		b.Host = &host.Recorder{Save: true}
	} else {
		cmd := &host.Command{
			Line:        c.Host.Command,
			VersionLine: c.Host.VersionCommand,
			Devices:     c.Host.Devices,
		}
		if c.Host.Version != "" {
			if err := cmd.CheckVersion(ctx, c.Host.Version); err != nil {
				return err
			}
		}
		b.Host = cmd
	}
	return b.Run(ctx)
}

// Validate checks the given sample documents, or every document in the
// config directory if none are given, writing one line per document to w.
func Validate(w io.Writer, c *config.Config, files ...string) error {
	if len(files) == 0 {
		b, err := Batch(c)
		if err != nil {
			return err
		}
		if files, err = b.Samples(); err != nil {
			return err
		}
	}
	var errs []error
	for _, fn := range files {
		if _, err := scene.Open(fn); err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", filepath.Base(fn), err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", filepath.Base(fn))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d documents are invalid: %w", len(errs), len(files), errors.Join(errs...))
	}
	return nil
}

// Schema writes an outline of the persisted document keys to w.
func Schema(w io.Writer) error {
	_, err := io.WriteString(w, scene.Schema().String())
	return err
}
