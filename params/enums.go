// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"slices"
	"strings"

	"github.com/papersynth/papersynth/base/errors"
)

// ErrInvalidEnumValue is matched by every [InvalidEnumError].
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumError is returned when a string field holds a value outside
// its closed set.
type InvalidEnumError struct {
	Field string
	Value string
	Valid []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %q for %s (valid: %s)", e.Value, e.Field, strings.Join(e.Valid, ", "))
}

func (e *InvalidEnumError) Unwrap() error { return ErrInvalidEnumValue }

// Engine is a render engine of the rendering host.
type Engine string

const (
	Cycles    Engine = "cycles"
	Eevee     Engine = "eevee"
	Workbench Engine = "workbench"
)

// EngineValues returns all valid [Engine] values.
func EngineValues() []Engine { return []Engine{Cycles, Eevee, Workbench} }

// ParseEngine returns the [Engine] named s, or an [InvalidEnumError].
func ParseEngine(s string) (Engine, error) {
	return parseEnum("render_engine", s, EngineValues())
}

// Device is a compute device for the cycles engine.
type Device string

const (
	CPU   Device = "cpu"
	CUDA  Device = "cuda"
	OptiX Device = "optix"
)

// DeviceValues returns all valid [Device] values.
func DeviceValues() []Device { return []Device{CPU, CUDA, OptiX} }

// ParseDevice returns the [Device] named s, or an [InvalidEnumError].
func ParseDevice(s string) (Device, error) {
	return parseEnum("cycles_device", s, DeviceValues())
}

// UnmarshalText sets the device from text, validating it.
func (d *Device) UnmarshalText(text []byte) error {
	v, err := ParseDevice(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText returns the device name.
func (d Device) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

func parseEnum[T ~string](field, s string, valid []T) (T, error) {
	if slices.Contains(valid, T(s)) {
		return T(s), nil
	}
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	var zero T
	return zero, &InvalidEnumError{Field: field, Value: s, Valid: names}
}
