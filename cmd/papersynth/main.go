// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command papersynth generates randomized scene documents for synthetic
// document photos and renders them through an external rendering host.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/papersynth/papersynth/base/logx"
	"github.com/papersynth/papersynth/cmd/papersynth/cmd"
	"github.com/papersynth/papersynth/cmd/papersynth/config"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	c, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRoot(c).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRoot returns the root command. Flag defaults come from c, so that
// flags override the configuration files.
func newRoot(c *config.Config) *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "papersynth",
		Short:         "Generate and render synthetic document photos",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show progress messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	pf.StringVar(&c.Root, "root", c.Root, "project root that default asset paths are under")
	pf.StringVar(&c.ConfigDir, "config", c.ConfigDir, "directory of sample documents")

	gen := &cobra.Command{
		Use:   "generate",
		Short: "Write randomized sample documents",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := cmd.Generate(c)
			return err
		},
	}
	gf := gen.Flags()
	gf.IntVarP(&c.Generate.Count, "count", "n", c.Generate.Count, "number of samples")
	gf.IntVar(&c.Generate.Start, "start", c.Generate.Start, "index of the first sample")
	gf.Int64Var(&c.Generate.Seed, "seed", c.Generate.Seed, "random seed; 0 for a time-based seed")
	gf.StringVar(&c.Generate.Override, "override", c.Generate.Override, "document laid over every sample")
	gf.StringVar(&c.Format, "format", c.Format, "document format: json or yaml")

	rend := &cobra.Command{
		Use:   "render",
		Short: "Render every sample document",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return cmd.Render(cc.Context(), c)
		},
	}
	rf := rend.Flags()
	rf.StringVarP(&c.OutputDir, "output", "o", c.OutputDir, "directory receiving one directory per sample")
	rf.BoolVar(&c.DryRun, "dry-run", c.DryRun, "write properties.json without running the host")
	rf.IntVar(&c.Thumbnail, "thumbnail", c.Thumbnail, "preview width; 0 disables previews")
	rf.StringVar(&c.Host.Command, "host", c.Host.Command, "host command line")
	rf.StringVar(&c.Host.Version, "host-version", c.Host.Version, "required host version, such as \">= 3.6\"")

	val := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check sample documents against the schema",
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Validate(cc.OutOrStdout(), c, args...)
		},
	}

	sch := &cobra.Command{
		Use:   "schema",
		Short: "Print the keys of a sample document",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return cmd.Schema(cc.OutOrStdout())
		},
	}

	root.AddCommand(gen, rend, val, sch)
	return root
}
