// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides rendering hosts: an external command that reads
// the pushed properties from a file, and a recorder used for dry runs.
package host

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
)

// PropertiesFile is the name of the file that the pushed properties of
// a sample are written to, in the sample output directory.
const PropertiesFile = "properties.json"

// OutputProperty is the property naming the sample output directory.
const OutputProperty = "output.path"

// Call is one recorded property push.
type Call struct {
	Name  string
	Value any
}

// Recorder is a host that records every property push and render
// without rendering anything.
type Recorder struct {
	// Calls are the property pushes, in order, across all renders.
	Calls []Call

	// Renders is the number of render calls.
	Renders int

	// Devices are the supported devices. If nil, every device is supported.
	Devices []params.Device

	// Save writes the properties pushed since the last render to
	// [PropertiesFile] in the output directory on each render.
	Save bool

	// Err, if set, is returned from every Set.
	Err error

	pending *document.Record
}

func (r *Recorder) Set(ctx context.Context, name string, value any) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{name, value})
	if r.pending == nil {
		r.pending = document.NewRecord()
	}
	r.pending.Set(name, value)
	return nil
}

func (r *Recorder) Render(ctx context.Context) error {
	r.Renders++
	props := r.pending
	r.pending = nil
	if !r.Save {
		return nil
	}
	_, err := writeProperties(props)
	return err
}

func (r *Recorder) Supports(d params.Device) bool {
	return r.Devices == nil || slices.Contains(r.Devices, d)
}

// Values returns the recorded value of each property name, keeping the last.
func (r *Recorder) Values() map[string]any {
	m := make(map[string]any, len(r.Calls))
	for _, c := range r.Calls {
		m[c.Name] = c.Value
	}
	return m
}

// writeProperties writes props to [PropertiesFile] in the directory named
// by their [OutputProperty], and returns the file path.
func writeProperties(props *document.Record) (string, error) {
	v, ok := props.Get(OutputProperty)
	out, isString := v.(string)
	if !ok || !isString || out == "" {
		return "", fmt.Errorf("host: no %s property was set before rendering", OutputProperty)
	}
	fn := filepath.Join(out, PropertiesFile)
	if err := document.Save(props, fn); err != nil {
		return "", err
	}
	return fn, nil
}
