// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene composes the parameter groups into the configuration of
// one rendered sample, and applies the adjustments that depend on more
// than one group.
package scene

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/papersynth/papersynth/base/errors"
	"github.com/papersynth/papersynth/base/randx"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
	"github.com/papersynth/papersynth/schema"
	"github.com/papersynth/papersynth/serial"
)

// NumFolds is the number of folds in every configuration.
const NumFolds = 2

// NumLights is the number of lights in every configuration.
// Light 0 is the primary light.
const NumLights = 2

// Config is the full configuration of one sample.
type Config struct {
	Render  params.Render
	Ground  params.Ground
	Shadows params.Shadows
	Paper   params.Paper
	Folds   [NumFolds]params.Fold
	Camera  params.Camera
	HDRI    params.HDRI
	Lights  [NumLights]params.Light
}

// Options are explicit values for [New], by group.
type Options struct {
	Render  params.RenderOptions
	Ground  params.GroundOptions
	Shadows params.ShadowsOptions
	Paper   params.PaperOptions
	Folds   [NumFolds]params.FoldOptions
	Camera  params.CameraOptions
	HDRI    params.HDRIOptions
	Lights  [NumLights]params.LightOptions
}

// New returns a configuration with every field drawn from rnd unless
// given in opts. Default asset paths are under root. Groups draw in
// persisted order, so the same seed and options reproduce the same
// configuration.
func New(rnd randx.Rand, root string, opts Options) *Config {
	c := generate(rnd, root, opts)
	c.derive()
	return c
}

func generate(rnd randx.Rand, root string, opts Options) *Config {
	c := &Config{}
	c.Render = *params.NewRender(rnd, opts.Render)
	c.Ground = *params.NewGround(rnd, root, opts.Ground)
	c.Shadows = *params.NewShadows(rnd, opts.Shadows)
	c.Paper = *params.NewPaper(rnd, root, opts.Paper)
	for i := range c.Folds {
		c.Folds[i] = *params.NewFold(rnd, opts.Folds[i])
	}
	c.Camera = *params.NewCamera(rnd, opts.Camera)
	c.HDRI = *params.NewHDRI(rnd, root, opts.HDRI)
	for i := range c.Lights {
		c.Lights[i] = *params.NewLight(rnd, i, opts.Lights[i])
	}
	return c
}

// derive applies the cross-group adjustments to resolved values.
// It must run exactly once per configuration.
func (c *Config) derive() {
	if c.Lights[1].Visible {
		c.Lights[0].Power /= 2
	}
}

// FromOverride returns a configuration drawn from rnd with the values in
// override laid over it. The override is validated against [Schema]
// before anything is drawn, and may name any subset of fields, but
// sequences must be given in full length.
func FromOverride(rnd randx.Rand, root string, override *document.Record) (*Config, error) {
	if err := schema.Validate(Schema(), override); err != nil {
		return nil, err
	}
	c := generate(rnd, root, Options{})
	if err := serial.Overlay(c, override); err != nil {
		return nil, err
	}
	c.derive()
	return c, nil
}

// Fields returns the groups of the configuration in persisted order.
func (c *Config) Fields() []params.Field {
	return []params.Field{
		{Name: "render", Value: &c.Render},
		{Name: "ground", Value: &c.Ground},
		{Name: "shadows", Value: &c.Shadows},
		{Name: "paper", Value: &c.Paper},
		{Name: "folds", Value: params.GroupSeq{&c.Folds[0], &c.Folds[1]}},
		{Name: "camera", Value: &c.Camera},
		{Name: "hdri", Value: &c.HDRI},
		{Name: "lights", Value: params.GroupSeq{&c.Lights[0], &c.Lights[1]}},
	}
}

// Schema returns the static shape of a persisted configuration.
// The returned shape must not be modified.
var Schema = sync.OnceValue(func() *schema.Shape {
	return serial.ShapeOf(&Config{})
})

// Document returns the persisted form of the configuration.
func (c *Config) Document() *document.Record {
	return serial.Serialize(c)
}

// FromDocument returns the configuration persisted in doc, which must
// have exactly the keys of [Schema]. Adjustments are not reapplied.
func FromDocument(doc *document.Record) (*Config, error) {
	if err := schema.Validate(Schema(), doc); err != nil {
		return nil, err
	}
	c := &Config{}
	if err := serial.Deserialize(c, doc); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads a configuration from a JSON or YAML file.
func Open(filename string) (*Config, error) {
	doc, err := document.Open(filename)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// Save writes the configuration to a JSON or YAML file.
func (c *Config) Save(filename string) error {
	return document.Save(c.Document(), filename)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := &Config{}
	errors.Must(copier.CopyWithOption(cp, c, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return cp
}

// Assets returns the paths of the asset files the configuration uses,
// in persisted order.
func (c *Config) Assets() []string {
	as := c.Ground.Textures()
	return append(as, c.Paper.DocumentImagePath, c.HDRI.TexturePath)
}
