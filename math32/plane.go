// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plane represents a plane in 3D space in normal form:
// every point P on the plane satisfies Normal·P + D = 0.
//
// Most operations that interpret D as a distance (transforms, and
// [Plane.DotCoordinate] as a signed distance) assume a normalized plane,
// where Normal has unit length. Only [NewPlaneFromPoints] produces a
// normalized plane automatically; otherwise call [Plane.SetNormalized].
//
// Component index order is Normal.X, Normal.Y, Normal.Z, D.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane returns a new [Plane] with normal (a, b, c) and distance d.
// The normal is not required to be of unit length.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{Normal: Vec3(a, b, c), D: d}
}

// NewPlaneNormalDist returns a new [Plane] from the given normal and distance.
func NewPlaneNormalDist(normal Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneNormalPoint returns a new [Plane] with the given normal
// that passes through the given point.
func NewPlaneNormalPoint(normal, point Vector3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// NewPlaneFromPoints returns a new normalized [Plane] containing the
// three given points, with the normal oriented by the right-hand rule
// (p2-p1)×(p3-p1). See [Plane.SetFromPoints].
func NewPlaneFromPoints(p1, p2, p3 Vector3) Plane {
	p := Plane{}
	p.SetFromPoints(p1, p2, p3)
	return p
}

// NewPlaneFromSlice returns a new [Plane] from a slice of exactly
// four coefficients: Normal.X, Normal.Y, Normal.Z, D.
// See [Plane.SetFromSlice].
func NewPlaneFromSlice(s []float32) (Plane, error) {
	p := Plane{}
	err := p.SetFromSlice(s)
	return p, err
}

// Set sets this plane's normal to (a, b, c) and its distance to d.
func (p *Plane) Set(a, b, c, d float32) {
	p.Normal.Set(a, b, c)
	p.D = d
}

// SetFromNormalDist sets this plane from the given normal and distance.
func (p *Plane) SetFromNormalDist(normal Vector3, d float32) {
	p.Normal = normal
	p.D = d
}

// SetFromPoints sets this plane to contain the three given points, which
// must not be collinear. The normal is always unit length, and D is chosen
// so that p1 lies on the plane. Collinear points yield a NaN or Inf normal;
// this is not checked.
func (p *Plane) SetFromPoints(p1, p2, p3 Vector3) {
	x1 := p2.X - p1.X
	y1 := p2.Y - p1.Y
	z1 := p2.Z - p1.Z
	x2 := p3.X - p1.X
	y2 := p3.Y - p1.Y
	z2 := p3.Z - p1.Z
	yz := y1*z2 - z1*y2
	xz := z1*x2 - x1*z2
	xy := x1*y2 - y1*x2
	invLen := 1 / Sqrt(yz*yz+xz*xz+xy*xy)

	p.Normal.X = yz * invLen
	p.Normal.Y = xz * invLen
	p.Normal.Z = xy * invLen
	p.D = -(p.Normal.X*p1.X + p.Normal.Y*p1.Y + p.Normal.Z*p1.Z)
}

// SetFromSlice sets this plane from a slice of exactly four coefficients:
// Normal.X, Normal.Y, Normal.Z, D. It returns [ErrNilInput] for a nil
// slice and [ErrInvalidArgument] if the length is not 4; the plane is
// unchanged in either case.
func (p *Plane) SetFromSlice(s []float32) error {
	if s == nil {
		return ErrNilInput
	}
	if len(s) != 4 {
		return fmt.Errorf("%w: plane needs 4 coefficients, got %d", ErrInvalidArgument, len(s))
	}
	p.Set(s[0], s[1], s[2], s[3])
	return nil
}

// Normalization:

// SetNormalized normalizes this plane so that its normal is of unit length.
// All four coefficients are scaled by 1/‖Normal‖, so the plane still
// contains the same points. A zero normal yields NaN or Inf components.
func (p *Plane) SetNormalized() {
	mag := 1 / Sqrt(p.Normal.X*p.Normal.X+p.Normal.Y*p.Normal.Y+p.Normal.Z*p.Normal.Z)
	p.Normal.X *= mag
	p.Normal.Y *= mag
	p.Normal.Z *= mag
	p.D *= mag
}

// Normalized returns a normalized copy of this plane. See [Plane.SetNormalized].
func (p Plane) Normalized() Plane {
	p.SetNormalized()
	return p
}

// Dot products:

// Dot returns the 4D dot product of this plane's coefficients with the
// given homogeneous vector: Normal.X*v.X + Normal.Y*v.Y + Normal.Z*v.Z + D*v.W.
func (p Plane) Dot(v Vector4) float32 {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// DotCoordinate returns Normal·point + D. For a normalized plane this is the
// signed distance from the plane to the point: positive in front of the plane
// (the side the normal points to), negative behind it and zero on it.
// For other planes it is that distance scaled by ‖Normal‖.
func (p Plane) DotCoordinate(point Vector3) float32 {
	return p.Normal.X*point.X + p.Normal.Y*point.Y + p.Normal.Z*point.Z + p.D
}

// DotNormal returns Normal·dir, ignoring D. It is positive when dir points
// the same way as the normal.
func (p Plane) DotNormal(dir Vector3) float32 {
	return p.Normal.X*dir.X + p.Normal.Y*dir.Y + p.Normal.Z*dir.Z
}

// Side returns which side of this plane the given point is on, treating
// points within tol of the plane (as measured by [Plane.DotCoordinate])
// as on the plane.
func (p Plane) Side(point Vector3, tol float32) PlaneSides {
	d := p.DotCoordinate(point)
	switch {
	case d > tol:
		return Front
	case d < -tol:
		return Back
	}
	return OnPlane
}

// Scaling:

// MulScalar returns this plane with all four coefficients multiplied by s.
// The result contains the same points but is not normalized.
func (p Plane) MulScalar(s float32) Plane {
	return Plane{Normal: p.Normal.MulScalar(s), D: p.D * s}
}

// SetMulScalar multiplies all four coefficients of this plane by s.
func (p *Plane) SetMulScalar(s float32) {
	p.Normal.SetMulScalar(s)
	p.D *= s
}

// MulScalarPlane returns p with all four coefficients multiplied by s.
// It is the same as p.MulScalar(s), for call sites that read scalar first.
func MulScalarPlane(s float32, p Plane) Plane {
	return p.MulScalar(s)
}

// Transforms:

// quatBasis is the 3x3 rotation basis of a unit quaternion, stored row by row.
type quatBasis [9]float32

func newQuatBasis(q Quat) quatBasis {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2
	xx := q.X * x2
	xy := q.X * y2
	xz := q.X * z2
	yy := q.Y * y2
	yz := q.Y * z2
	zz := q.Z * z2
	return quatBasis{
		1 - yy - zz, xy - wz, xz + wy,
		xy + wz, 1 - xx - zz, yz - wx,
		xz - wy, yz + wx, 1 - xx - yy,
	}
}

func (b *quatBasis) apply(p *Plane) {
	x := p.Normal.X
	y := p.Normal.Y
	z := p.Normal.Z
	p.Normal.X = x*b[0] + y*b[1] + z*b[2]
	p.Normal.Y = x*b[3] + y*b[4] + z*b[5]
	p.Normal.Z = x*b[6] + y*b[7] + z*b[8]
}

// SetMulQuat rotates this plane by the given unit quaternion.
// The plane must be normalized and q must be a pure rotation about the
// origin, so D is left unchanged.
func (p *Plane) SetMulQuat(q Quat) {
	b := newQuatBasis(q)
	b.apply(p)
}

// MulQuat returns this plane rotated by the given unit quaternion.
// See [Plane.SetMulQuat].
func (p Plane) MulQuat(q Quat) Plane {
	p.SetMulQuat(q)
	return p
}

// MulQuatPlanes rotates every plane in the slice, in place, by the given
// unit quaternion, with the same result as calling [Plane.SetMulQuat] on
// each. It returns [ErrNilInput] for a nil slice.
func MulQuatPlanes(planes []Plane, q Quat) error {
	if planes == nil {
		return ErrNilInput
	}
	b := newQuatBasis(q)
	for i := range planes {
		b.apply(&planes[i])
	}
	return nil
}

// mulInverse sets p to the plane transformed by the matrix whose inverse
// is inv. Planes are covectors, so they transform by the inverse-transpose:
// each new coefficient is the dot product of the old coefficients with one
// column of inv (four contiguous elements in the column-major layout).
func (p *Plane) mulInverse(inv *Matrix4) {
	x := p.Normal.X
	y := p.Normal.Y
	z := p.Normal.Z
	d := p.D
	p.Normal.X = x*inv[0] + y*inv[1] + z*inv[2] + d*inv[3]
	p.Normal.Y = x*inv[4] + y*inv[5] + z*inv[6] + d*inv[7]
	p.Normal.Z = x*inv[8] + y*inv[9] + z*inv[10] + d*inv[11]
	p.D = x*inv[12] + y*inv[13] + z*inv[14] + d*inv[15]
}

// SetMulMatrix4 transforms this plane by the given point transformation
// matrix, so that a point q on the plane maps to a point m*q on the result.
// The plane should be normalized. It returns [ErrNilInput] for a nil m and
// [ErrSingularMatrix] if m cannot be inverted, in which case the plane is
// unchanged.
func (p *Plane) SetMulMatrix4(m *Matrix4) error {
	if m == nil {
		return ErrNilInput
	}
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	p.mulInverse(inv)
	return nil
}

// MulMatrix4 returns this plane transformed by the given point
// transformation matrix. See [Plane.SetMulMatrix4].
func (p Plane) MulMatrix4(m *Matrix4) (Plane, error) {
	err := p.SetMulMatrix4(m)
	return p, err
}

// MulMatrix4Planes transforms every plane in the slice, in place, by the
// given point transformation matrix, inverting it only once. The result for
// each plane is the same as [Plane.SetMulMatrix4]. It returns [ErrNilInput]
// for a nil slice or matrix and [ErrSingularMatrix] if m cannot be inverted;
// no plane is modified on error.
func MulMatrix4Planes(planes []Plane, m *Matrix4) error {
	if planes == nil || m == nil {
		return ErrNilInput
	}
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	for i := range planes {
		planes[i].mulInverse(inv)
	}
	return nil
}

// Equality:

// IsEqual returns whether all four coefficients of this plane are exactly
// equal to those of other. It is the same as p == other.
func (p Plane) IsEqual(other Plane) bool {
	return p.Normal.IsEqual(other.Normal) && p.D == other.D
}

// Hash returns a hash of this plane consistent with [Plane.IsEqual],
// combining the hash of the normal with that of D.
func (p Plane) Hash() uint64 {
	return hashCombine(p.Normal.Hash(), hashFloat32(p.D))
}

// Components:

// Component returns the coefficient at the given index in the order
// Normal.X, Normal.Y, Normal.Z, D, or [ErrIndexOutOfRange].
func (p Plane) Component(i int) (float32, error) {
	switch i {
	case 0:
		return p.Normal.X, nil
	case 1:
		return p.Normal.Y, nil
	case 2:
		return p.Normal.Z, nil
	case 3:
		return p.D, nil
	}
	return 0, fmt.Errorf("%w: plane component %d", ErrIndexOutOfRange, i)
}

// SetComponent sets the coefficient at the given index in the order
// Normal.X, Normal.Y, Normal.Z, D, or returns [ErrIndexOutOfRange].
func (p *Plane) SetComponent(i int, value float32) error {
	switch i {
	case 0:
		p.Normal.X = value
	case 1:
		p.Normal.Y = value
	case 2:
		p.Normal.Z = value
	case 3:
		p.D = value
	default:
		return fmt.Errorf("%w: plane component %d", ErrIndexOutOfRange, i)
	}
	return nil
}

// Array returns the four coefficients Normal.X, Normal.Y, Normal.Z, D.
func (p Plane) Array() [4]float32 {
	return [4]float32{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}
}

// Vector4 returns the four coefficients as a [Vector4] with D in W.
func (p Plane) Vector4() Vector4 {
	return Vector4{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}
}

// FromSlice sets this plane's coefficients from the given slice, starting at offset.
func (p *Plane) FromSlice(array []float32, offset int) {
	p.Set(array[offset], array[offset+1], array[offset+2], array[offset+3])
}

// ToSlice copies this plane's coefficients to the given slice, starting at offset.
func (p Plane) ToSlice(array []float32, offset int) {
	array[offset] = p.Normal.X
	array[offset+1] = p.Normal.Y
	array[offset+2] = p.Normal.Z
	array[offset+3] = p.D
}

// Formatting:

func (p Plane) String() string {
	return fmt.Sprintf("(Normal:%v D:%v)", p.Normal, p.D)
}

// FormatLocale returns the coefficients formatted with the given numeric
// fmt verb (for example "%.3f" or "%g") under the number conventions of
// the given locale, in the same layout as [Plane.String].
func (p Plane) FormatLocale(verb string, tag language.Tag) string {
	pr := message.NewPrinter(tag)
	return "(Normal:(" + pr.Sprintf(verb, p.Normal.X) + ", " + pr.Sprintf(verb, p.Normal.Y) + ", " +
		pr.Sprintf(verb, p.Normal.Z) + ") D:" + pr.Sprintf(verb, p.D) + ")"
}
