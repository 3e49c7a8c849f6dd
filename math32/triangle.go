// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Triangle represents a triangle made of three vertices,
// used here as a source of supporting planes.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c, oriented by the
// right-hand rule, or the zero vector for a degenerate triangle.
func Normal(a, b, c Vector3) Vector3 {
	nv := b.Sub(a).Cross(c.Sub(a))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Vector3) {
	t.A = a
	t.B = b
	t.C = c
}

// IsDegenerate returns whether the triangle's vertices are collinear,
// in which case [Triangle.Plane] is undefined.
func (t *Triangle) IsDegenerate() bool {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).LengthSquared() == 0
}

// Midpoint returns the triangle's midpoint.
func (t *Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's normal.
func (t *Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Plane returns the normalized [Plane] containing the triangle,
// with the same orientation as [Triangle.Normal].
func (t *Triangle) Plane() Plane {
	return NewPlaneFromPoints(t.A, t.B, t.C)
}
