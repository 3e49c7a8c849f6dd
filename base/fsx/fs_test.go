// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "room.toml")
	require.NoError(t, os.WriteFile(fn, []byte("name = \"room\"\n"), 0666))

	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	dfs, name, err := DirFS(fn)
	require.NoError(t, err)
	assert.Equal(t, "room.toml", name)
	ok, err = FileExistsFS(dfs, name)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(dfs, "missing.toml")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFilesOnPaths(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(b, "walls.yaml"), nil, 0666))
	require.NoError(t, os.WriteFile(filepath.Join(a, "floor.toml"), nil, 0666))
	require.NoError(t, os.WriteFile(filepath.Join(b, "floor.toml"), nil, 0666))

	assert.Equal(t, []string{filepath.Join(b, "walls.yaml")}, FindFilesOnPaths([]string{a, b}, "walls.yaml"))
	assert.Equal(t, []string{filepath.Join(a, "floor.toml"), filepath.Join(b, "floor.toml")},
		FindFilesOnPaths([]string{a, b}, "floor.toml"))
	assert.Nil(t, FindFilesOnPaths([]string{a, b}, "ceiling.toml"))

	abs := filepath.Join(a, "floor.toml")
	assert.Equal(t, []string{abs}, FindFilesOnPaths(nil, abs))
}
