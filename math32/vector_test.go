// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/geom3/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vec3(5, 7, 9), v.Add(Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(-3, -3, -3), v.Sub(Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), v.DivScalar(2))
	assert.Equal(t, Vector3{}, v.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())
	assert.Equal(t, float32(32), v.Dot(Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, float32(14), v.LengthSquared())
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	tolAssertEqualVector3(t, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.Equal(t, float32(5), Vec3(1, 1, 1).DistanceTo(Vec3(4, 5, 1)))
	assert.Equal(t, "(1, 2, 3)", v.String())

	vs := v
	vs.SetAdd(Vec3(1, 1, 1))
	vs.SetSub(Vec3(0, 1, 2))
	vs.SetMulScalar(2)
	assert.Equal(t, Vec3(4, 4, 4), vs)
	vs.SetDivScalar(4)
	assert.Equal(t, Vector3Scalar(1), vs)
	vs.SetDim(Z, 7)
	assert.Equal(t, float32(7), vs.Dim(Z))
	assert.Panics(t, func() { vs.Dim(W) })
	vs.SetNormal()
	tolassert.EqualTol(t, 1, vs.Length(), standardTol)
	vs.SetZero()
	assert.Equal(t, Vector3{}, vs)
}

func TestVector3Hash(t *testing.T) {
	var zero float32
	a := Vec3(zero, 1, 2)
	b := Vec3(-zero, 1, 2)
	assert.True(t, a.IsEqual(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), Vec3(1, 0, 2).Hash())

	n := Vec3(NaN(), 1, 2)
	assert.False(t, n.IsEqual(n))
	assert.Equal(t, n.Hash(), Vec3(NaN(), 1, 2).Hash())
}

func TestVector4(t *testing.T) {
	v := Vector4FromVector3(Vec3(1, 2, 3), 4)
	assert.Equal(t, Vec4(1, 2, 3, 4), v)
	assert.Equal(t, Vec3(1, 2, 3), v.Vector3())
	assert.Equal(t, float32(30), v.Dot(v))
	assert.Equal(t, Vec4(2, 4, 6, 8), v.Add(v))
	assert.Equal(t, Vector4{}, v.Sub(v))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), v.MulScalar(0.5))
	assert.Equal(t, Vec3(0.25, 0.5, 0.75), v.PerspDiv())
	assert.Equal(t, float32(4), v.Dim(W))

	m := Matrix4Translation(1, 2, 3)
	assert.Equal(t, Vec4(5, 10, 15, 4), v.MulMatrix4(m))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulMatrix4(m))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulMatrix4AsVector4(m, 0))
}

func TestQuat(t *testing.T) {
	id := NewQuatIdentity()
	assert.True(t, id.IsIdentity())
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(id))

	q := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	tolassert.EqualTol(t, 1, q.Length(), standardTol)
	tolAssertEqualVector3(t, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(q))

	// composition: q2 after q1
	q1 := NewQuatAxisAngle(Vec3(1, 0, 0), 0.4)
	q2 := NewQuatAxisAngle(Vec3(0, 0, 1), -1.1)
	v := Vec3(2, -1, 0.5)
	tolAssertEqualVector3(t, v.MulQuat(q1).MulQuat(q2), v.MulQuat(q2.Mul(q1)), 1e-5)

	// inverse undoes rotation
	tolAssertEqualVector3(t, v, v.MulQuat(q1).MulQuat(q1.Inverse()), 1e-5)
	assert.Equal(t, NewQuat(-q1.X, -q1.Y, -q1.Z, q1.W), q1.Conjugate())

	z := Quat{}
	z.Normalize()
	assert.True(t, z.IsIdentity())

	qs := NewQuat(0, 0, 0, 2)
	qs.Normalize()
	assert.True(t, qs.IsEqual(id))
	assert.Equal(t, "(0, 0, 0, 1)", qs.String())
}
