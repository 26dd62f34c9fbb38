// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/papersynth/papersynth/base/iox/jsonx"
	"github.com/papersynth/papersynth/base/iox/yamlx"
)

// Format is a persisted document encoding.
type Format string

const (
	// JSON is the default encoding, indented with [jsonx.Indent].
	JSON Format = "json"

	// YAML is selected by the .yaml and .yml extensions.
	YAML Format = "yaml"
)

// Extensions are the recognized document filename extensions.
var Extensions = []string{".json", ".yaml", ".yml"}

// FormatOf returns the format for the given filename, based on its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("document: unrecognized extension for %q", filename)
}

// Ext returns the canonical filename extension for the format.
func (f Format) Ext() string {
	return "." + string(f)
}

// Open reads a document record from the given file, using the
// format implied by its extension.
func Open(filename string) (*Record, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	r := NewRecord()
	switch f {
	case YAML:
		err = yamlx.Open(r, filename)
	default:
		err = jsonx.Open(r, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", filename, err)
	}
	return r, nil
}

// Save writes the record to the given file, using the format
// implied by its extension.
func Save(r *Record, filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		return yamlx.Save(r, filename)
	default:
		return jsonx.Save(r, filename)
	}
}

// Read reads a record in the given format from reader.
func Read(reader io.Reader, f Format) (*Record, error) {
	r := NewRecord()
	var err error
	switch f {
	case YAML:
		err = yamlx.Read(r, reader)
	default:
		err = jsonx.Read(r, reader)
	}
	return r, err
}

// Write writes the record in the given format to writer.
func Write(r *Record, writer io.Writer, f Format) error {
	switch f {
	case YAML:
		return yamlx.Write(r, writer)
	default:
		return jsonx.Write(r, writer)
	}
}
