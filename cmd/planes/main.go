// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planes builds, transforms and classifies plane scenes
// stored in TOML or YAML files.
package main

import (
	"os"

	"cogentcore.org/geom3/base/errors"
)

func main() {
	if errors.Log(NewRootCmd(&Config{}).Execute()) != nil {
		os.Exit(1)
	}
}
