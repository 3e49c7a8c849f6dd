// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/geom3/base/logx"
	"cogentcore.org/geom3/scene"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the root planes command, configured through c.
func NewRootCmd(c *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "planes",
		Short:         "Build, transform and classify plane scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	c.AddFlags(root.PersistentFlags())

	run := func(f func(c *Config, w io.Writer, file string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return f(c, cmd.OutOrStdout(), args[0])
		}
	}

	show := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the planes of a scene, without transforms",
		Args:  cobra.ExactArgs(1),
		RunE:  run(Show),
	}
	transform := &cobra.Command{
		Use:   "transform <file>",
		Short: "Apply the transforms of a scene and show the resulting planes",
		Args:  cobra.ExactArgs(1),
		RunE:  run(Transform),
	}
	transform.Flags().StringVarP(&c.Output, "output", "o", "", "save the transformed scene to this file")
	classify := &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify the points of a scene against its transformed planes",
		Args:  cobra.ExactArgs(1),
		RunE:  run(Classify),
	}
	classify.Flags().StringVarP(&c.Output, "output", "o", "", "save the classifications to this file")

	root.AddCommand(show, transform, classify)
	return root
}

// Show writes the planes of the given scene file, as built
// before any transforms are applied.
func Show(c *Config, w io.Writer, file string) error {
	s, err := scene.OpenOnPaths(c.Paths, file)
	if err != nil {
		return err
	}
	planes, err := s.BuildPlanes()
	if err != nil {
		return fmt.Errorf("show %s: %w", file, err)
	}
	return scene.NewReport(w, c.LanguageTag(), c.Format).Planes(s.Names(), planes)
}

// Transform writes the planes of the given scene file after
// all of its transforms are applied, and saves them to
// [Config.Output] if it is set.
func Transform(c *Config, w io.Writer, file string) error {
	s, err := scene.OpenOnPaths(c.Paths, file)
	if err != nil {
		return err
	}
	planes, err := s.Build()
	if err != nil {
		return fmt.Errorf("transform %s: %w", file, err)
	}
	if c.Output != "" {
		if err := s.WithPlanes(planes).Save(c.Output); err != nil {
			return err
		}
		slog.Info("saved transformed scene", "file", c.Output)
	}
	return scene.NewReport(w, c.LanguageTag(), c.Format).Planes(s.Names(), planes)
}

// Classify writes the classification of every point of the given
// scene file against each of its transformed planes, and saves
// the results to [Config.Output] if it is set.
func Classify(c *Config, w io.Writer, file string) error {
	s, err := scene.OpenOnPaths(c.Paths, file)
	if err != nil {
		return err
	}
	planes, err := s.Build()
	if err != nil {
		return fmt.Errorf("classify %s: %w", file, err)
	}
	cs, err := s.Classify(planes, c.Tol)
	if err != nil {
		return fmt.Errorf("classify %s: %w", file, err)
	}
	if c.Output != "" {
		res := &scene.Results{Scene: s.Name, Tolerance: c.Tol, Classifications: cs}
		if err := res.Save(c.Output); err != nil {
			return err
		}
		slog.Info("saved classifications", "file", c.Output)
	}
	return scene.NewReport(w, c.LanguageTag(), c.Format).Classifications(cs)
}
