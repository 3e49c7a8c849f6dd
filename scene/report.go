// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"

	"cogentcore.org/geom3/math32"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report writes human readable listings of planes and
// classifications, with numbers formatted for a locale.
type Report struct {
	w    io.Writer
	tag  language.Tag
	verb string
	pr   *message.Printer
}

// NewReport returns a new [Report] writing to w, formatting each
// number with the given fmt verb (for example "%g" or "%.3f")
// under the given locale.
func NewReport(w io.Writer, tag language.Tag, verb string) *Report {
	return &Report{w: w, tag: tag, verb: verb, pr: message.NewPrinter(tag)}
}

// Planes writes one line per plane, with its name.
func (r *Report) Planes(names []string, planes []math32.Plane) error {
	for i, p := range planes {
		name := fmt.Sprintf("plane%d", i)
		if i < len(names) {
			name = names[i]
		}
		if _, err := fmt.Fprintf(r.w, "%s\t%s\n", name, p.FormatLocale(r.verb, r.tag)); err != nil {
			return err
		}
	}
	return nil
}

// Classifications writes one line per classification.
func (r *Report) Classifications(cs []Classification) error {
	for _, c := range cs {
		if _, err := fmt.Fprintf(r.w, "%s\t%s\t%s\t%v\n", c.Plane, c.Point, r.pr.Sprintf(r.verb, c.Distance), c.Side); err != nil {
			return err
		}
	}
	return nil
}
