// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/papersynth/papersynth/base/exec"
	"github.com/papersynth/papersynth/document"
	"github.com/papersynth/papersynth/params"
)

// Command is a host that runs an external command for each render.
// The pushed properties are written to [PropertiesFile] in the sample
// output directory, and the command line can refer to that file as
// $PROPERTIES and to the directory as $OUTPUT.
type Command struct {
	// Line is the command line, split with shell quoting rules.
	Line string

	// VersionLine is the command line that prints the host version.
	VersionLine string

	// Devices are the devices the host can render on.
	// The cpu is always supported.
	Devices []params.Device

	// Exec is the configuration commands are run with.
	// If nil, [exec.Major] is used.
	Exec *exec.Config

	pending *document.Record
}

func (c *Command) Set(ctx context.Context, name string, value any) error {
	if c.pending == nil {
		c.pending = document.NewRecord()
	}
	c.pending.Set(name, value)
	return nil
}

func (c *Command) Supports(d params.Device) bool {
	return d == params.CPU || slices.Contains(c.Devices, d)
}

// Render writes the pending properties and runs the command.
func (c *Command) Render(ctx context.Context) error {
	props := c.pending
	c.pending = nil
	if props == nil {
		return fmt.Errorf("host: render called with no properties")
	}
	fn, err := writeProperties(props)
	if err != nil {
		return err
	}
	args, err := exec.Args(c.Line)
	if err != nil {
		return err
	}
	out, _ := props.Get(OutputProperty)
	cfg := c.config()
	cfg.SetEnv("PROPERTIES", fn).SetEnv("OUTPUT", out.(string))
	return cfg.Run(ctx, args[0], args[1:]...)
}

func (c *Command) config() *exec.Config {
	if c.Exec != nil {
		cp := *c.Exec
		cp.Env = map[string]string{}
		for k, v := range c.Exec.Env {
			cp.Env[k] = v
		}
		return &cp
	}
	return exec.Major()
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Version runs [Command.VersionLine] and returns the first version
// number in its output.
func (c *Command) Version(ctx context.Context) (*semver.Version, error) {
	args, err := exec.Args(c.VersionLine)
	if err != nil {
		return nil, err
	}
	cfg := exec.Minor()
	if c.Exec != nil {
		cfg.Dir = c.Exec.Dir
	}
	cfg.Stdout = nil
	out, err := cfg.Output(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, err
	}
	vs := versionPattern.FindString(out)
	if vs == "" {
		return nil, fmt.Errorf("host: no version number in output of %q", c.VersionLine)
	}
	return semver.NewVersion(vs)
}

// CheckVersion returns an error if the host version does not satisfy
// the given constraint, such as ">= 3.6".
func (c *Command) CheckVersion(ctx context.Context, constraint string) error {
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return err
	}
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if !cons.Check(v) {
		return fmt.Errorf("host: version %s does not satisfy %s", v, constraint)
	}
	slog.Debug("host version", "version", v, "constraint", constraint)
	return nil
}
