// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

package exec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/papersynth/papersynth/base/logx"
)

// Exec executes the command, piping its stdout and stderr to the
// writers in the config. If the command fails, it returns an error
// naming the command. cmd and args may include references to
// environment variables in $FOO format, which are expanded from
// [Config.Env] and then the process environment before the command is run.
//
// Ran reports if the command ran (rather than was not found or not executable).
func (c *Config) Exec(ctx context.Context, cmd string, args ...string) (ran bool, err error) {
	cmd = os.Expand(cmd, c.getenv)
	for i := range args {
		args[i] = os.Expand(args[i], c.getenv)
	}
	ran, code, err := c.run(ctx, cmd, args...)
	if err == nil {
		return true, nil
	}
	return ran, fmt.Errorf("failed to run %q (exit status %d): %w", cmd+" "+strings.Join(args, " "), code, err)
}

func (c *Config) run(ctx context.Context, cmd string, args ...string) (ran bool, code int, err error) {
	ec := exec.CommandContext(ctx, cmd, args...)
	ec.Env = os.Environ()
	for k, v := range c.Env {
		ec.Env = append(ec.Env, k+"="+v)
	}
	ec.Stderr = c.Stderr
	ec.Stdout = c.Stdout
	ec.Stdin = c.Stdin
	ec.Dir = c.Dir

	if c.Commands != nil {
		if ec.Dir != "" {
			c.Commands.Write([]byte(logx.ApplyLevelColor(slog.LevelInfo, ec.Dir) + ": "))
		}
		c.Commands.Write([]byte(logx.ApplyLevelColor(slog.LevelInfo, cmd+" "+strings.Join(args, " ")) + "\n"))
	}
	err = ec.Run()
	return CmdRan(err), ExitStatus(err), err
}

// Run runs the given command using the given configuration information and arguments.
func (c *Config) Run(ctx context.Context, cmd string, args ...string) error {
	_, err := c.Exec(ctx, cmd, args...)
	return err
}

// Output runs the command and returns the text from stdout.
func (c *Config) Output(ctx context.Context, cmd string, args ...string) (string, error) {
	oldStdout := c.Stdout
	buf := &bytes.Buffer{}
	c.Stdout = buf
	_, err := c.Exec(ctx, cmd, args...)
	c.Stdout = oldStdout
	if c.Stdout != nil {
		c.Stdout.Write(buf.Bytes())
	}
	return strings.TrimSuffix(buf.String(), "\n"), err
}

// RunSh runs the given full command string, with args split
// as in a standard shell command.
func (c *Config) RunSh(ctx context.Context, cstr string) error {
	args, err := Args(cstr)
	if err != nil {
		return err
	}
	return c.Run(ctx, args[0], args[1:]...)
}

// Args returns a string parsed into separate args
// that can be passed into run commands. Quoting follows shell rules;
// $VARS are left in place for [Config.Exec] to expand.
func Args(cstr string) ([]string, error) {
	args, err := shellwords.Parse(cstr)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("command %q was not parsed correctly into content", cstr)
	}
	return args, nil
}

// CmdRan examines the error to determine if it was generated as a result of a
// command running via os/exec.Command.  If the error is nil, or the command ran
// (even if it exited with a non-zero exit code), CmdRan reports true.  If the
// error is an unrecognized type, or it is an error from exec.Command that says
// the command failed to run (usually due to the command not existing or not
// being executable), it reports false.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	ee, ok := err.(*exec.ExitError)
	if ok {
		return ee.Exited()
	}
	return false
}

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit status of the error if it is an exec.ExitError
// or if it implements ExitStatus() int.
// 0 if it is nil or 1 if it is a different error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(exitStatus); ok {
		return e.ExitStatus()
	}
	if e, ok := err.(*exec.ExitError); ok {
		if ex, ok := e.Sys().(exitStatus); ok {
			return ex.ExitStatus()
		}
	}
	return 1
}
