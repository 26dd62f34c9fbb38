// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating
// configuration files, listing sample documents, and
// managing per-sample output directories.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/papersynth/papersynth/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// DirExists checks whether given directory exists, returning true if so,
// false if not, and error if there is an error in accessing the directory.
func DirExists(dirPath string) (bool, error) {
	fileInfo, err := os.Stat(dirPath)
	if err == nil {
		return fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if abs, err := filepath.Abs(fp); err == nil {
				fp = abs
			}
			res = append(res, fp)
		}
	}
	return res
}

// Filenames returns the sorted names of the regular files directly
// inside dir whose extension (including the dot, case insensitive)
// is one of exts. All files are returned if exts is empty.
func Filenames(dir string, exts ...string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		if len(exts) > 0 && !slices.Contains(exts, strings.ToLower(filepath.Ext(ent.Name()))) {
			continue
		}
		res = append(res, ent.Name())
	}
	slices.Sort(res)
	return res, nil
}

// ResetDir removes dir and everything in it, if present,
// and then recreates it empty.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ExpandHome expands a leading ~ in path to the user's home
// directory. Paths without a leading ~ are returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// AbsPath expands a leading ~ in path and makes it absolute,
// logging and returning the original path on error.
func AbsPath(path string) string {
	ep, err := ExpandHome(path)
	if errors.Log(err) != nil {
		return path
	}
	return errors.Log1(filepath.Abs(ep))
}
