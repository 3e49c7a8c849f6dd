// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/geom3/base/errors"
	"github.com/jeandeaual/go-locale"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// Config is the configuration of the planes command,
// set from command line flags.
type Config struct {

	// Locale is the BCP 47 language tag used to format numbers.
	// If empty, the system locale is used.
	Locale string

	// Format is the fmt verb used to format each number.
	Format string

	// Tol is the distance within which a point is on a plane.
	Tol float32

	// Paths are the directories searched for scene files.
	Paths []string

	// Output is an optional .toml, .yaml or .yml file
	// to save the result to.
	Output string

	// Debug, Verbose and Quiet select the log level; see [logx.LevelFromFlags].
	Debug   bool
	Verbose bool
	Quiet   bool
}

// AddFlags adds the persistent flags of the command to the given flag set.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Locale, "locale", "", "BCP 47 locale for number formatting (default: system locale)")
	fs.StringVar(&c.Format, "format", "%g", "fmt verb for each number, for example %.3f")
	fs.Float32Var(&c.Tol, "tol", 1e-5, "distance within which a point is on a plane")
	fs.StringSliceVarP(&c.Paths, "path", "p", []string{"."}, "directories to search for scene files")
	fs.BoolVar(&c.Debug, "vv", false, "show debug log messages")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "show info log messages")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only show error log messages")
}

// LanguageTag returns the language tag for [Config.Locale], falling back
// on the system locale and then on English.
func (c *Config) LanguageTag() language.Tag {
	loc := c.Locale
	if loc == "" {
		sys, err := locale.GetLocale()
		if err != nil || sys == "" {
			slog.Debug("no system locale, using en", "err", err)
			return language.English
		}
		loc = sys
	}
	tag, err := language.Parse(loc)
	if err != nil {
		errors.Log(fmt.Errorf("invalid locale %q, using en: %w", loc, err))
		return language.English
	}
	return tag
}
