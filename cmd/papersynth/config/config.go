// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the papersynth tool.
package config

import (
	"os"
	"path/filepath"

	"github.com/papersynth/papersynth/base/errors"
	"github.com/papersynth/papersynth/base/fsx"
	"github.com/papersynth/papersynth/base/iox/tomlx"
	"github.com/papersynth/papersynth/base/reflectx"
	"github.com/papersynth/papersynth/params"
)

// Filename is the name of the tool configuration file.
const Filename = "papersynth.toml"

// EnvFile is the environment variable that names an extra configuration file.
const EnvFile = "PAPERSYNTH_CONFIG"

// Config is the configuration of the papersynth tool.
type Config struct {

	// Root is the project root that default asset paths are under.
	Root string `toml:"root" default:"."`

	// ConfigDir is the directory of sample documents.
	ConfigDir string `toml:"config_dir" default:"config"`

	// OutputDir is the directory that receives one directory per sample.
	OutputDir string `toml:"output_dir" default:"renders"`

	// Format is the format of generated documents: json or yaml.
	Format string `toml:"format" default:"json"`

	// Thumbnail is the width of the preview written for each rendered
	// sample; 0 disables previews.
	Thumbnail int `toml:"thumbnail" default:"256"`

	// DryRun records the properties of each sample to properties.json
	// instead of running the host.
	DryRun bool `toml:"dry_run"`

	// Generate configures sample generation.
	Generate GenerateConfig `toml:"generate"`

	// Host configures the rendering host.
	Host HostConfig `toml:"host"`
}

// GenerateConfig configures sample generation.
type GenerateConfig struct {

	// Count is the number of samples to generate.
	Count int `toml:"count" default:"10"`

	// Start is the index of the first generated sample.
	Start int `toml:"start" default:"1"`

	// Seed seeds the random stream; 0 means a time-based seed.
	Seed int64 `toml:"seed"`

	// Override is an optional document laid over every generated sample.
	Override string `toml:"override"`
}

// HostConfig configures the rendering host command.
type HostConfig struct {

	// Command renders one sample. $PROPERTIES names the pushed properties
	// file and $OUTPUT the sample output directory.
	Command string `toml:"command" default:"blender --background scene/scene.blend --python src/render.py -- $PROPERTIES"`

	// VersionCommand prints the host version.
	VersionCommand string `toml:"version_command" default:"blender --version"`

	// Version is a constraint the host version must satisfy, such as ">= 3.6".
	// No check is made if it is empty.
	Version string `toml:"version"`

	// Devices are the compute devices the host can use.
	Devices []params.Device `toml:"devices" default:"optix,cuda,cpu"`
}

// Paths returns the directories searched for [Filename], in increasing
// order of precedence.
func Paths() []string {
	paths := []string{}
	if home, err := fsx.ExpandHome("~"); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "papersynth"))
	}
	return append(paths, ".")
}

// Load returns a configuration with default values, overlaid by each
// [Filename] found on [Paths] and then by the file named in [EnvFile].
func Load() (*Config, error) {
	c := &Config{}
	if err := reflectx.SetFromDefaultTags(c); err != nil {
		return nil, err
	}
	files := fsx.FindFilesOnPaths(Paths(), Filename)
	if ef := os.Getenv(EnvFile); ef != "" {
		files = append(files, fsx.AbsPath(ef))
	}
	if err := tomlx.OpenFiles(c, files...); err != nil {
		return nil, errors.Log(err)
	}
	return c, nil
}

// Expand expands a leading ~ in the configured paths.
func (c *Config) Expand() error {
	for _, p := range []*string{&c.Root, &c.ConfigDir, &c.OutputDir, &c.Generate.Override} {
		if *p == "" {
			continue
		}
		ep, err := fsx.ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = ep
	}
	return nil
}
