// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/geom3/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolAssertEqualMatrix4(t *testing.T, mt, ma *Matrix4, tol float32) {
	t.Helper()
	tolassert.EqualTolSlice(t, mt[:], ma[:], tol)
}

func testTransform() *Matrix4 {
	m := &Matrix4{}
	q := NewQuatEuler(Vec3(DegToRad(20), DegToRad(45), DegToRad(-10)))
	m.SetTransform(Vec3(1, -2, 3), q, Vec3(2, 0.5, 3))
	return m
}

func TestMatrix4Set(t *testing.T) {
	m := &Matrix4{}
	m.Set(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	// column major
	assert.Equal(t, Matrix4{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, *m)

	mt := m.Transpose()
	assert.Equal(t, Matrix4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, *mt)
	mt.SetTranspose()
	assert.True(t, mt.IsEqual(m))

	s := make([]float32, 18)
	m.ToSlice(s, 2)
	var mf Matrix4
	mf.FromSlice(s, 2)
	assert.Equal(t, *m, mf)

	assert.Equal(t, "[1 0 0 5; 0 1 0 6; 0 0 1 7; 0 0 0 1]", Matrix4Translation(5, 6, 7).String())
}

func TestMatrix4Mul(t *testing.T) {
	tr := Matrix4Translation(1, 2, 3)
	sc := Matrix4Scale(2, 2, 2)

	// scale then translate
	m := tr.Mul(sc)
	assert.Equal(t, Vec3(3, 4, 5), Vec3(1, 1, 1).MulMatrix4(m))

	// translate then scale
	m = sc.Mul(tr)
	assert.Equal(t, Vec3(4, 6, 8), Vec3(1, 1, 1).MulMatrix4(m))

	// aliasing
	a := *tr
	a.SetMul(sc)
	assert.Equal(t, *tr.Mul(sc), a)
	a = *sc
	a.MulMatrices(tr, &a)
	assert.Equal(t, *tr.Mul(sc), a)

	assert.Equal(t, *tr, *tr.Mul(Identity4()))
	assert.Equal(t, *tr, *Identity4().Mul(tr))
}

func TestMatrix4Determinant(t *testing.T) {
	assert.Equal(t, float32(1), Identity4().Determinant())
	assert.Equal(t, float32(24), Matrix4Scale(2, 3, 4).Determinant())
	assert.Equal(t, float32(1), Matrix4Translation(4, -5, 6).Determinant())
	assert.Equal(t, float32(0), Matrix4Scale(1, 0, 1).Determinant())
	tolassert.EqualTol(t, 1, Matrix4FromQuat(NewQuatAxisAngle(Vec3(0, 1, 0), 1.2)).Determinant(), standardTol)
	tolassert.EqualTol(t, 3, testTransform().Determinant(), 1e-5)
}

func TestMatrix4Inverse(t *testing.T) {
	inv, err := Identity4().Inverse()
	require.NoError(t, err)
	assert.Equal(t, *Identity4(), *inv)

	inv, err = Matrix4Translation(1, 2, 3).Inverse()
	require.NoError(t, err)
	assert.Equal(t, *Matrix4Translation(-1, -2, -3), *inv)

	inv, err = Matrix4Scale(2, 4, 0.5).Inverse()
	require.NoError(t, err)
	assert.Equal(t, *Matrix4Scale(0.5, 0.25, 2), *inv)

	m := testTransform()
	inv, err = m.Inverse()
	require.NoError(t, err)
	tolAssertEqualMatrix4(t, Identity4(), m.Mul(inv), 1e-5)
	tolAssertEqualMatrix4(t, Identity4(), inv.Mul(m), 1e-5)

	p := Vec3(3, -1, 7)
	tolAssertEqualVector3(t, p, p.MulMatrix4(m).MulMatrix4(inv), 1e-5)

	// in place
	mi := *m
	require.NoError(t, mi.SetInverse(&mi))
	assert.Equal(t, *inv, mi)
}

func TestMatrix4InverseSingular(t *testing.T) {
	m := Matrix4Scale(1, 0, 1)
	inv, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)
	assert.Equal(t, *Identity4(), *inv)

	var z Matrix4
	assert.ErrorIs(t, z.SetInverse(&z), ErrSingularMatrix)
	assert.Equal(t, *Identity4(), z)
}

func TestMatrix4Rotation(t *testing.T) {
	q := NewQuatEuler(Vec3(DegToRad(30), DegToRad(-50), DegToRad(75)))
	m := Matrix4FromQuat(q)
	for _, v := range []Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {3, -2, 5}} {
		tolAssertEqualVector3(t, v.MulQuat(q), v.MulMatrix4(m), 1e-5)
	}

	var ma Matrix4
	ma.SetRotationAxis(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector3(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulMatrix4(&ma))

	var rq Quat
	rq.SetFromRotationMatrix(m)
	if rq.Dot(q) < 0 {
		rq = NewQuat(-rq.X, -rq.Y, -rq.Z, -rq.W)
	}
	tolassert.EqualTol(t, q.X, rq.X, 1e-5)
	tolassert.EqualTol(t, q.Y, rq.Y, 1e-5)
	tolassert.EqualTol(t, q.Z, rq.Z, 1e-5)
	tolassert.EqualTol(t, q.W, rq.W, 1e-5)
}
