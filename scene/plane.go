// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/geom3/math32"
)

// PlaneSpec describes one plane of a scene, in exactly one of three ways:
// raw coefficients, a normal and distance, or three points.
type PlaneSpec struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Coeffs are the four coefficients a, b, c, d of ax + by + cz + d = 0.
	Coeffs []float32 `toml:"coeffs,omitempty" yaml:"coeffs,omitempty"`

	// Normal is the plane normal, used with D.
	Normal []float32 `toml:"normal,omitempty" yaml:"normal,omitempty"`

	// D is the distance term used with Normal.
	D float32 `toml:"d,omitempty" yaml:"d,omitempty"`

	// Points are three points on the plane, wound counter-clockwise
	// when seen from the front.
	Points [][]float32 `toml:"points,omitempty" yaml:"points,omitempty"`

	// Normalize normalizes the plane after it is built.
	Normalize bool `toml:"normalize,omitempty" yaml:"normalize,omitempty"`
}

// Label returns the name of the plane, or "plane<index>" if it has none.
func (ps *PlaneSpec) Label(index int) string {
	if ps.Name != "" {
		return ps.Name
	}
	return fmt.Sprintf("plane%d", index)
}

// Plane builds the plane. It is an error to set
// none or more than one of Coeffs, Normal and Points.
func (ps *PlaneSpec) Plane() (math32.Plane, error) {
	n := 0
	for _, set := range []bool{ps.Coeffs != nil, ps.Normal != nil, ps.Points != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return math32.Plane{}, fmt.Errorf("%w: exactly one of coeffs, normal or points is required, have %d", math32.ErrInvalidArgument, n)
	}

	var p math32.Plane
	switch {
	case ps.Coeffs != nil:
		if err := p.SetFromSlice(ps.Coeffs); err != nil {
			return p, fmt.Errorf("coeffs: %w", err)
		}
	case ps.Normal != nil:
		nv, err := vec3(ps.Normal)
		if err != nil {
			return p, fmt.Errorf("normal: %w", err)
		}
		p.SetFromNormalDist(nv, ps.D)
	default:
		if len(ps.Points) != 3 {
			return p, fmt.Errorf("points: %w: need 3 points, have %d", math32.ErrInvalidArgument, len(ps.Points))
		}
		var pts [3]math32.Vector3
		for i, s := range ps.Points {
			v, err := vec3(s)
			if err != nil {
				return p, fmt.Errorf("points[%d]: %w", i, err)
			}
			pts[i] = v
		}
		tri := math32.NewTriangle(pts[0], pts[1], pts[2])
		if tri.IsDegenerate() {
			return p, fmt.Errorf("points: %w: points are collinear", math32.ErrInvalidArgument)
		}
		p = tri.Plane()
	}
	if ps.Normalize {
		p.SetNormalized()
	}
	return p, nil
}
