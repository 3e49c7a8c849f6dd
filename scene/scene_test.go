// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"path/filepath"
	"testing"

	"cogentcore.org/geom3/base/tolassert"
	"cogentcore.org/geom3/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPlane(t *testing.T, want, have math32.Plane) {
	t.Helper()
	wa, ha := want.Array(), have.Array()
	tolassert.EqualTolSlice(t, wa[:], ha[:], 1e-5)
}

func TestOpen(t *testing.T) {
	for _, fn := range []string{"testdata/room.toml", "testdata/room.yaml"} {
		s, err := Open(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, "room", s.Name)
		require.Len(t, s.Planes, 3, fn)
		assert.Equal(t, []string{"floor", "wall", "ramp"}, s.Names())
		assert.Equal(t, []float32{0, 1, 0, 0}, s.Planes[0].Coeffs)
		assert.Equal(t, float32(-4), s.Planes[1].D)
		assert.True(t, s.Planes[2].Normalize)
		require.Len(t, s.Transforms, 1)
		assert.Equal(t, Translate, s.Transforms[0].Kind)
		assert.Equal(t, []float32{0, 2, 0}, s.Transforms[0].Offset)
		require.Len(t, s.Points, 2)
		assert.Equal(t, Point{Name: "corner", At: []float32{4, 2, 0}}, s.Points[1])
	}

	_, err := Open("testdata/room.json")
	assert.ErrorContains(t, err, "unsupported file extension")

	_, err = Open("testdata/missing.toml")
	assert.Error(t, err)

	s, err := OpenOnPaths([]string{"nowhere", "testdata"}, "spin.yml")
	require.NoError(t, err)
	assert.Equal(t, "spin", s.Name)
	_, err = OpenOnPaths([]string{"testdata"}, "missing.toml")
	assert.ErrorContains(t, err, "no files found")
}

func TestBuild(t *testing.T) {
	s, err := Open("testdata/room.toml")
	require.NoError(t, err)

	planes, err := s.BuildPlanes()
	require.NoError(t, err)
	require.Len(t, planes, 3)
	assert.Equal(t, math32.NewPlane(0, 1, 0, 0), planes[0])
	assert.Equal(t, math32.NewPlane(1, 0, 0, -4), planes[1])
	h := math32.Sqrt(0.5)
	assertPlane(t, math32.NewPlane(0, h, h, 0), planes[2])

	planes, err = s.Build()
	require.NoError(t, err)
	assertPlane(t, math32.NewPlane(0, 1, 0, -2), planes[0])
	assertPlane(t, math32.NewPlane(1, 0, 0, -4), planes[1])
	assertPlane(t, math32.NewPlane(0, h, h, -2*h), planes[2])
}

func TestBuildRotateScale(t *testing.T) {
	s, err := Open("testdata/spin.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"plane0"}, s.Names())
	planes, err := s.Build()
	require.NoError(t, err)
	assertPlane(t, math32.NewPlane(-1, 0, 0, -2), planes[0])
}

func TestPlaneSpecErrors(t *testing.T) {
	specs := []PlaneSpec{
		{},
		{Coeffs: []float32{0, 1, 0, 0}, Normal: []float32{0, 1, 0}},
		{Coeffs: []float32{0, 1, 0}},
		{Normal: []float32{0, 1}},
		{Points: [][]float32{{0, 0, 0}, {1, 0, 0}}},
		{Points: [][]float32{{0, 0, 0}, {1, 0, 0}, {0, 1}}},
		{Points: [][]float32{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}},
	}
	for i, ps := range specs {
		_, err := ps.Plane()
		assert.ErrorIs(t, err, math32.ErrInvalidArgument, "spec %d", i)
	}

	s := &Scene{Planes: []PlaneSpec{{Name: "ok", Coeffs: []float32{0, 0, 1, 0}}, {Name: "bad"}}}
	_, err := s.BuildPlanes()
	assert.ErrorContains(t, err, "bad:")
}

func TestTransform(t *testing.T) {
	planes := []math32.Plane{math32.NewPlane(0, 1, 0, -1), math32.NewPlane(1, 0, 0, 0)}

	tr := Transform{Kind: Rotate, Axis: []float32{0, 0, 1}, Angle: 90}
	want := make([]math32.Plane, len(planes))
	q, err := tr.Quat()
	require.NoError(t, err)
	for i, p := range planes {
		want[i] = p.MulQuat(q)
	}
	have := append([]math32.Plane(nil), planes...)
	require.NoError(t, tr.Apply(have))
	assert.Equal(t, want, have)
	assertPlane(t, math32.NewPlane(-1, 0, 0, -1), have[0])

	// rotation through the matrix path agrees with the quaternion path
	m, err := tr.Matrix4()
	require.NoError(t, err)
	for i, p := range planes {
		mp, err := p.MulMatrix4(m)
		require.NoError(t, err)
		assertPlane(t, want[i], mp)
	}

	tr = Transform{Kind: Rotate, Euler: []float32{0, 0, 90}}
	have = append([]math32.Plane(nil), planes...)
	require.NoError(t, tr.Apply(have))
	assertPlane(t, want[0], have[0])

	tr = Transform{Kind: Matrix, Rows: []float32{
		1, 0, 0, 0,
		0, 1, 0, 3,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
	have = append([]math32.Plane(nil), planes...)
	require.NoError(t, tr.Apply(have))
	assertPlane(t, math32.NewPlane(0, 1, 0, -4), have[0])
	assertPlane(t, planes[1], have[1])
}

func TestTransformErrors(t *testing.T) {
	planes := []math32.Plane{math32.NewPlane(0, 1, 0, -1)}
	orig := append([]math32.Plane(nil), planes...)

	err := (&Transform{Kind: Scale, Factor: []float32{1, 0, 1}}).Apply(planes)
	assert.ErrorIs(t, err, math32.ErrSingularMatrix)
	assert.Equal(t, orig, planes)

	for _, tr := range []Transform{
		{Kind: Rotate, Axis: []float32{0, 0, 0}, Angle: 10},
		{Kind: Rotate, Axis: []float32{0, 1}},
		{Kind: Rotate, Euler: []float32{1, 2}},
		{Kind: Translate},
		{Kind: Scale, Factor: []float32{1, 2}},
		{Kind: Matrix, Rows: []float32{1, 0, 0, 1}},
	} {
		assert.ErrorIs(t, tr.Apply(planes), math32.ErrInvalidArgument, "%v", tr.Kind)
	}
	assert.Equal(t, orig, planes)

	_, err = (&Transform{Kind: Normalize}).Matrix4()
	assert.Error(t, err)

	// a transform without a kind is rejected, whatever else it sets
	err = (&Transform{Axis: []float32{0, 0, 1}, Angle: 90}).Apply(planes)
	assert.ErrorIs(t, err, math32.ErrInvalidArgument)
	assert.ErrorContains(t, err, "missing transform kind")
	assert.Equal(t, orig, planes)
	_, err = (&Transform{}).Matrix4()
	assert.ErrorIs(t, err, math32.ErrInvalidArgument)
	err = (&Scene{Transforms: []Transform{{Offset: []float32{0, 1, 0}}}}).Transform(planes)
	assert.ErrorContains(t, err, "transform 0 (none)")
	assert.Equal(t, orig, planes)

	s := &Scene{Transforms: []Transform{
		{Kind: Translate, Offset: []float32{0, 1, 0}},
		{Kind: Scale, Factor: []float32{0, 0, 0}},
	}}
	err = s.Transform(planes)
	assert.ErrorIs(t, err, math32.ErrSingularMatrix)
	assert.ErrorContains(t, err, "transform 1 (scale)")
	assertPlane(t, math32.NewPlane(0, 1, 0, -2), planes[0])

	assert.ErrorIs(t, s.Transform(nil), math32.ErrNilInput)
}

func TestTransformKinds(t *testing.T) {
	var k TransformKinds
	require.NoError(t, k.UnmarshalText([]byte("Normalize")))
	assert.Equal(t, Normalize, k)
	assert.Error(t, k.UnmarshalText([]byte("shear")))
	assert.Error(t, k.UnmarshalText([]byte("none")))
	assert.Equal(t, NoTransform, TransformKinds(0))
	assert.Equal(t, "none", NoTransform.String())
	assert.Equal(t, "TransformKinds(9)", TransformKinds(9).String())
	b, err := Matrix.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "matrix", string(b))
}

func TestSaveRoundTrip(t *testing.T) {
	s, err := Open("testdata/room.toml")
	require.NoError(t, err)
	planes, err := s.Build()
	require.NoError(t, err)
	out := s.WithPlanes(planes)
	assert.Empty(t, out.Transforms)

	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "result"+ext)
		require.NoError(t, out.Save(fn))
		rs, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, out.Names(), rs.Names())
		assert.Equal(t, out.Points, rs.Points)
		rp, err := rs.Build()
		require.NoError(t, err, ext)
		assert.Equal(t, planes, rp, ext)
	}

	assert.ErrorContains(t, out.Save(filepath.Join(t.TempDir(), "result.txt")), "unsupported file extension")
}
