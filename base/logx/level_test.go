// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	type test struct {
		debug   bool
		verbose bool
		quiet   bool
		want    slog.Level
	}
	tests := []test{
		{true, false, false, slog.LevelDebug},
		{true, true, true, slog.LevelDebug},
		{false, true, false, slog.LevelInfo},
		{false, true, true, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, false, false, slog.LevelWarn},
	}
	for _, test := range tests {
		have := LevelFromFlags(test.debug, test.verbose, test.quiet)
		assert.Equal(t, test.want, have, "LevelFromFlags(%v, %v, %v)", test.debug, test.verbose, test.quiet)
	}
}
