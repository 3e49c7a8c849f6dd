// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"

	"cogentcore.org/geom3/math32"
)

// TransformKinds are the kinds of [Transform].
type TransformKinds int32

const (
	// NoTransform is the zero kind, left when a transform omits its kind.
	// It is not a valid transform.
	NoTransform TransformKinds = iota

	// Rotate rotates planes about the origin, by Angle degrees about Axis,
	// or by the XYZ Euler angles in degrees.
	Rotate

	// Translate moves planes by Offset.
	Translate

	// Scale scales planes by the per-axis Factor.
	Scale

	// Matrix transforms planes by an arbitrary 4x4 matrix.
	Matrix

	// Normalize normalizes planes.
	Normalize
)

var transformKindsNames = [...]string{"none", "rotate", "translate", "scale", "matrix", "normalize"}

func (k TransformKinds) String() string {
	if k < 0 || int(k) >= len(transformKindsNames) {
		return fmt.Sprintf("TransformKinds(%d)", int32(k))
	}
	return transformKindsNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k TransformKinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// [NoTransform] is not accepted.
func (k *TransformKinds) UnmarshalText(text []byte) error {
	for i, nm := range transformKindsNames {
		if i > 0 && strings.EqualFold(nm, string(text)) {
			*k = TransformKinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type TransformKinds", string(text))
}

// Transform is one step of the transform sequence of a scene.
// Only the fields used by its Kind are read.
type Transform struct {
	Kind TransformKinds `toml:"kind" yaml:"kind"`

	// Axis is the rotation axis; it need not be normalized.
	Axis []float32 `toml:"axis,omitempty" yaml:"axis,omitempty"`

	// Angle is the rotation angle about Axis, in degrees.
	Angle float32 `toml:"angle,omitempty" yaml:"angle,omitempty"`

	// Euler are XYZ Euler rotation angles in degrees, used instead of Axis.
	Euler []float32 `toml:"euler,omitempty" yaml:"euler,omitempty"`

	// Offset is the translation.
	Offset []float32 `toml:"offset,omitempty" yaml:"offset,omitempty"`

	// Factor is the scale along each axis.
	Factor []float32 `toml:"factor,omitempty" yaml:"factor,omitempty"`

	// Rows are the 16 elements of the matrix, row by row.
	Rows []float32 `toml:"rows,omitempty" yaml:"rows,omitempty"`
}

// Quat returns the rotation of a [Rotate] transform.
func (tr *Transform) Quat() (math32.Quat, error) {
	if tr.Euler != nil {
		e, err := vec3(tr.Euler)
		if err != nil {
			return math32.Quat{}, fmt.Errorf("euler: %w", err)
		}
		return math32.NewQuatEuler(math32.Vec3(math32.DegToRad(e.X), math32.DegToRad(e.Y), math32.DegToRad(e.Z))), nil
	}
	axis, err := vec3(tr.Axis)
	if err != nil {
		return math32.Quat{}, fmt.Errorf("axis: %w", err)
	}
	if axis.LengthSquared() == 0 {
		return math32.Quat{}, fmt.Errorf("axis: %w: zero axis", math32.ErrInvalidArgument)
	}
	return math32.NewQuatAxisAngle(axis.Normal(), math32.DegToRad(tr.Angle)), nil
}

// errNoKind is returned for a transform without a kind.
var errNoKind = fmt.Errorf("kind: %w: missing transform kind", math32.ErrInvalidArgument)

// Matrix4 returns the matrix of the transform. [Normalize] has no matrix.
func (tr *Transform) Matrix4() (*math32.Matrix4, error) {
	switch tr.Kind {
	case NoTransform:
		return nil, errNoKind
	case Rotate:
		q, err := tr.Quat()
		if err != nil {
			return nil, err
		}
		return math32.Matrix4FromQuat(q), nil
	case Translate:
		o, err := vec3(tr.Offset)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		return math32.Matrix4Translation(o.X, o.Y, o.Z), nil
	case Scale:
		f, err := vec3(tr.Factor)
		if err != nil {
			return nil, fmt.Errorf("factor: %w", err)
		}
		return math32.Matrix4Scale(f.X, f.Y, f.Z), nil
	case Matrix:
		if len(tr.Rows) != 16 {
			return nil, fmt.Errorf("rows: %w: need 16 values, have %d", math32.ErrInvalidArgument, len(tr.Rows))
		}
		m := &math32.Matrix4{}
		r := tr.Rows
		m.Set(r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8], r[9], r[10], r[11], r[12], r[13], r[14], r[15])
		return m, nil
	}
	return nil, fmt.Errorf("%w: %v transform has no matrix", math32.ErrInvalidArgument, tr.Kind)
}

// Apply applies the transform to the given planes in place.
// Rotations use [math32.MulQuatPlanes]; translations, scales and
// matrices use [math32.MulMatrix4Planes], so a singular matrix
// returns [math32.ErrSingularMatrix] and leaves the planes unchanged.
func (tr *Transform) Apply(planes []math32.Plane) error {
	switch tr.Kind {
	case NoTransform:
		return errNoKind
	case Normalize:
		for i := range planes {
			planes[i].SetNormalized()
		}
		return nil
	case Rotate:
		q, err := tr.Quat()
		if err != nil {
			return err
		}
		return math32.MulQuatPlanes(planes, q)
	}
	m, err := tr.Matrix4()
	if err != nil {
		return err
	}
	return math32.MulMatrix4Planes(planes, m)
}
