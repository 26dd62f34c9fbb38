// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external commands, such as the rendering host,
// with output routing that follows the user's log verbosity.
package exec

import (
	"io"
	"log/slog"
	"os"

	"github.com/papersynth/papersynth/base/logx"
)

// Config contains the configuration information that
// controls how commands are run. A default version of it
// can be easily constructed using [Major] or [Minor].
type Config struct {
	// Stdout is the writer to write the standard output of called commands to.
	// It can be set to nil to disable the writing of the standard output.
	Stdout io.Writer

	// Stderr is the writer to write the standard error of called commands to.
	// It can be set to nil to disable the writing of the standard error.
	Stderr io.Writer

	// Stdin is the reader to use as the standard input.
	Stdin io.Reader

	// Commands is the writer to write the string representation of the called commands to.
	// It can be set to nil to disable the writing of the string representations of the called commands.
	Commands io.Writer

	// The directory to execute commands in. If it is unset,
	// commands are run in the current directory.
	Dir string

	// Env contains any additional environment variables specified.
	// They are also used when expanding $VARS in command arguments.
	Env map[string]string
}

// Major returns the default [Config] object for a major command,
// such as a render, based on [logx.UserLevel]. Output is shown
// at Info verbosity and above.
func Major() *Config {
	if logx.UserLevel > slog.LevelInfo {
		return &Config{
			Stderr: os.Stderr,
			Env:    map[string]string{},
		}
	}
	return &Config{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Commands: os.Stdout,
		Env:      map[string]string{},
	}
}

// Minor returns the default [Config] object for a minor command,
// such as a version probe, based on [logx.UserLevel]. Output is
// shown only at Debug verbosity.
func Minor() *Config {
	if logx.UserLevel > slog.LevelDebug {
		return &Config{
			Stderr: os.Stderr,
			Env:    map[string]string{},
		}
	}
	return &Config{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Commands: os.Stdout,
		Env:      map[string]string{},
	}
}

// SetEnv sets the given environment variable, returning the
// config for chaining.
func (c *Config) SetEnv(key, value string) *Config {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[key] = value
	return c
}

// getenv looks up key in [Config.Env] and then the process environment.
func (c *Config) getenv(key string) string {
	if v, ok := c.Env[key]; ok {
		return v
	}
	return os.Getenv(key)
}
