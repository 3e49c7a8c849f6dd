// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/geom3/math32"
)

// Classification is the position of one sample point relative to one plane.
type Classification struct {
	Plane string `toml:"plane" yaml:"plane"`
	Point string `toml:"point" yaml:"point"`

	// Distance is the signed distance of the point from the plane,
	// scaled by the length of the plane normal; see [math32.Plane.DotCoordinate].
	Distance float32 `toml:"distance" yaml:"distance"`

	Side math32.PlaneSides `toml:"side" yaml:"side"`
}

// Classify classifies every sample point of the scene against each of the
// given planes, which must correspond to the planes of the scene.
// Points within tol of a plane are [math32.OnPlane].
// The results are ordered by plane, then by point.
func (s *Scene) Classify(planes []math32.Plane, tol float32) ([]Classification, error) {
	if len(planes) != len(s.Planes) {
		return nil, fmt.Errorf("%w: scene has %d planes, have %d", math32.ErrInvalidArgument, len(s.Planes), len(planes))
	}
	pts := make([]math32.Vector3, len(s.Points))
	for i := range s.Points {
		v, err := s.Points[i].Vector3()
		if err != nil {
			return nil, err
		}
		pts[i] = v
	}
	names := s.Names()
	res := make([]Classification, 0, len(planes)*len(pts))
	for i, p := range planes {
		for j, pt := range pts {
			res = append(res, Classification{
				Plane:    names[i],
				Point:    s.Points[j].Name,
				Distance: p.DotCoordinate(pt),
				Side:     p.Side(pt, tol),
			})
		}
	}
	return res, nil
}

// Results is a document holding the classifications of a scene.
type Results struct {
	Scene           string           `toml:"scene,omitempty" yaml:"scene,omitempty"`
	Tolerance       float32          `toml:"tolerance" yaml:"tolerance"`
	Classifications []Classification `toml:"classifications" yaml:"classifications"`
}

// OpenResults reads results from the given .toml, .yaml or .yml file.
func OpenResults(filename string) (*Results, error) {
	r := &Results{}
	if err := openFile(r, filename); err != nil {
		return nil, fmt.Errorf("scene.OpenResults: %w", err)
	}
	return r, nil
}

// Save writes the results to the given .toml, .yaml or .yml file.
func (r *Results) Save(filename string) error {
	if err := saveFile(r, filename); err != nil {
		return fmt.Errorf("scene.Results.Save: %w", err)
	}
	return nil
}
