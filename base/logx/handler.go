// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// output is the terminal output used for color detection.
// Colors are dropped automatically when stderr is not a terminal.
var output = termenv.NewOutput(os.Stderr)

// NewHandler returns a text [slog.Handler] writing to w that
// shows records at or above [UserLevel], with colored level labels
// and no timestamps.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(ApplyLevelColor(lvl, lvl.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one that
// writes to stderr at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// ApplyLevelColor applies the color associated with the given level to the
// given string and returns the resulting string.
func ApplyLevelColor(level slog.Level, str string) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return output.String(str).Foreground(c).String()
}
