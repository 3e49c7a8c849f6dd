// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides plane scene documents: a list of planes,
// a sequence of transforms to apply to them, and sample points
// to classify against the transformed planes. Scenes are stored
// as TOML or YAML files.
package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/geom3/base/fsx"
	"cogentcore.org/geom3/base/iox/tomlx"
	"cogentcore.org/geom3/base/iox/yamlx"
	"cogentcore.org/geom3/math32"
)

// Scene is a plane scene document.
type Scene struct {

	// Name is an optional descriptive name for the scene.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Planes are the planes of the scene, in order.
	Planes []PlaneSpec `toml:"planes" yaml:"planes"`

	// Transforms are applied in order to every plane by [Scene.Transform].
	Transforms []Transform `toml:"transforms,omitempty" yaml:"transforms,omitempty"`

	// Points are the sample points classified by [Scene.Classify].
	Points []Point `toml:"points,omitempty" yaml:"points,omitempty"`
}

// Point is a named sample point.
type Point struct {
	Name string    `toml:"name" yaml:"name"`
	At   []float32 `toml:"at" yaml:"at"`
}

// Vector3 returns the location of the point.
func (p *Point) Vector3() (math32.Vector3, error) {
	v, err := vec3(p.At)
	if err != nil {
		return v, fmt.Errorf("point %q: at: %w", p.Name, err)
	}
	return v, nil
}

// Open reads a scene from the given file, which must have
// a .toml, .yaml or .yml extension.
func Open(filename string) (*Scene, error) {
	s := &Scene{}
	if err := openFile(s, filename); err != nil {
		return nil, fmt.Errorf("scene.Open: %w", err)
	}
	slog.Debug("opened scene", "file", filename, "planes", len(s.Planes), "transforms", len(s.Transforms), "points", len(s.Points))
	return s, nil
}

// OpenOnPaths reads a scene from the first file with the given name
// found on the given paths; see [fsx.FindFilesOnPaths].
func OpenOnPaths(paths []string, filename string) (*Scene, error) {
	files := fsx.FindFilesOnPaths(paths, filename)
	if len(files) == 0 {
		return nil, fmt.Errorf("scene.OpenOnPaths: no files found for %q on paths %v", filename, paths)
	}
	return Open(files[0])
}

// Save writes the scene to the given file, encoded according
// to its .toml, .yaml or .yml extension.
func (s *Scene) Save(filename string) error {
	if err := saveFile(s, filename); err != nil {
		return fmt.Errorf("scene.Save: %w", err)
	}
	return nil
}

// Names returns the names of the planes, using "plane<i>"
// for planes without a name.
func (s *Scene) Names() []string {
	names := make([]string, len(s.Planes))
	for i := range s.Planes {
		names[i] = s.Planes[i].Label(i)
	}
	return names
}

// Build builds the planes of the scene and applies all of its transforms.
func (s *Scene) Build() ([]math32.Plane, error) {
	planes, err := s.BuildPlanes()
	if err != nil {
		return nil, err
	}
	if err := s.Transform(planes); err != nil {
		return nil, err
	}
	return planes, nil
}

// BuildPlanes returns the planes of the scene, without transforms applied.
func (s *Scene) BuildPlanes() ([]math32.Plane, error) {
	planes := make([]math32.Plane, len(s.Planes))
	for i := range s.Planes {
		p, err := s.Planes[i].Plane()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Planes[i].Label(i), err)
		}
		planes[i] = p
	}
	return planes, nil
}

// Transform applies the transforms of the scene, in order, to the given
// planes in place. Processing stops at the first transform that fails,
// leaving the planes as they were after the previous transform.
func (s *Scene) Transform(planes []math32.Plane) error {
	for i := range s.Transforms {
		tr := &s.Transforms[i]
		if err := tr.Apply(planes); err != nil {
			return fmt.Errorf("transform %d (%v): %w", i, tr.Kind, err)
		}
		slog.Debug("applied transform", "index", i, "kind", tr.Kind, "planes", len(planes))
	}
	return nil
}

// WithPlanes returns a copy of the scene whose planes are the given planes,
// stored as coefficients under the existing names, and with no transforms.
// It is used to save the result of [Scene.Build].
func (s *Scene) WithPlanes(planes []math32.Plane) *Scene {
	ns := &Scene{Name: s.Name, Points: s.Points}
	ns.Planes = make([]PlaneSpec, len(planes))
	for i, p := range planes {
		a := p.Array()
		ps := PlaneSpec{Coeffs: a[:]}
		if i < len(s.Planes) {
			ps.Name = s.Planes[i].Name
		}
		ns.Planes[i] = ps
	}
	return ns
}

// vec3 returns a vector from a slice of exactly three values.
func vec3(s []float32) (math32.Vector3, error) {
	if len(s) != 3 {
		return math32.Vector3{}, fmt.Errorf("%w: need 3 values, have %d", math32.ErrInvalidArgument, len(s))
	}
	return math32.Vec3(s[0], s[1], s[2]), nil
}

// openFile decodes v from the given file according to its extension.
func openFile(v any, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Open(v, filename)
	case ".yaml", ".yml":
		return yamlx.Open(v, filename)
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}
}

// saveFile encodes v to the given file according to its extension.
func saveFile(v any, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(v, filename)
	case ".yaml", ".yml":
		return yamlx.Save(v, filename)
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}
}
