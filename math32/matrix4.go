// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Points are treated as column vectors: p' = M p.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Matrix4Translation returns a new translation matrix.
func Matrix4Translation(x, y, z float32) *Matrix4 {
	m := &Matrix4{}
	m.SetTranslation(x, y, z)
	return m
}

// Matrix4Scale returns a new scale matrix.
func Matrix4Scale(x, y, z float32) *Matrix4 {
	m := &Matrix4{}
	m.SetScale(x, y, z)
	return m
}

// Matrix4FromQuat returns a new rotation matrix from the given
// unit quaternion.
func Matrix4FromQuat(q Quat) *Matrix4 {
	m := &Matrix4{}
	m.SetRotationFromQuat(q)
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// FromSlice sets this matrix elements from the given slice of 16 values,
// starting at offset, in column-major order.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToSlice copies this matrix elements to the given slice, starting at offset,
// in column-major order.
func (m *Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix using the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetRotationAxis sets this matrix to a rotation matrix of the specified angle (radians)
// around the specified axis, which must be normalized.
func (m *Matrix4) SetRotationAxis(axis Vector3, angle float32) {
	m.SetRotationFromQuat(NewQuatAxisAngle(axis, angle))
}

// SetRotationFromQuat sets this matrix as a rotation matrix from the specified quaternion.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	x := q.X
	y := q.Y
	z := q.Z
	w := q.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m[0] = 1 - (yy + zz)
	m[4] = xy - wz
	m[8] = xz + wy

	m[1] = xy + wz
	m[5] = 1 - (xx + zz)
	m[9] = yz - wx

	m[2] = xz - wy
	m[6] = yz + wx
	m[10] = 1 - (xx + yy)

	// bottom row
	m[3] = 0
	m[7] = 0
	m[11] = 0

	// last column
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	m.SetRotationFromQuat(quat)
	m[0] *= scale.X
	m[1] *= scale.X
	m[2] *= scale.X
	m[4] *= scale.Y
	m[5] *= scale.Y
	m[6] *= scale.Y
	m[8] *= scale.Z
	m[9] *= scale.Z
	m[10] *= scale.Z
	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
// Either argument may alias m.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	*m = r
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// minors returns the 2x2 sub-determinants used by both
// [Matrix4.Determinant] and [Matrix4.SetInverse]. The matrix is read
// as a[i][j] = m[i*4+j]; since the inverse of the transpose is the
// transpose of the inverse, the result has the same layout as m.
func (m *Matrix4) minors() (s, c [6]float32) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[5] = m[10]*m[15] - m[14]*m[11]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[0] = m[8]*m[13] - m[12]*m[9]
	return
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted, it returns [ErrSingularMatrix]
// and this matrix is set to the identity.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	s, c := src.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		m.SetIdentity()
		return ErrSingularMatrix
	}
	id := 1 / det
	a := *src // src may alias m

	m[0] = (a[5]*c[5] - a[6]*c[4] + a[7]*c[3]) * id
	m[1] = (-a[1]*c[5] + a[2]*c[4] - a[3]*c[3]) * id
	m[2] = (a[13]*s[5] - a[14]*s[4] + a[15]*s[3]) * id
	m[3] = (-a[9]*s[5] + a[10]*s[4] - a[11]*s[3]) * id

	m[4] = (-a[4]*c[5] + a[6]*c[2] - a[7]*c[1]) * id
	m[5] = (a[0]*c[5] - a[2]*c[2] + a[3]*c[1]) * id
	m[6] = (-a[12]*s[5] + a[14]*s[2] - a[15]*s[1]) * id
	m[7] = (a[8]*s[5] - a[10]*s[2] + a[11]*s[1]) * id

	m[8] = (a[4]*c[4] - a[5]*c[2] + a[7]*c[0]) * id
	m[9] = (-a[0]*c[4] + a[1]*c[2] - a[3]*c[0]) * id
	m[10] = (a[12]*s[4] - a[13]*s[2] + a[15]*s[0]) * id
	m[11] = (-a[8]*s[4] + a[9]*s[2] - a[11]*s[0]) * id

	m[12] = (-a[4]*c[3] + a[5]*c[1] - a[6]*c[0]) * id
	m[13] = (a[0]*c[3] - a[1]*c[1] + a[2]*c[0]) * id
	m[14] = (-a[12]*s[3] + a[13]*s[1] - a[14]*s[0]) * id
	m[15] = (a[8]*s[3] - a[9]*s[1] + a[10]*s[0]) * id
	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, it returns [ErrSingularMatrix]
// along with the identity matrix.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// SetTranspose transposes this matrix.
func (m *Matrix4) SetTranspose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[6], m[9] = m[9], m[6]
	m[3], m[12] = m[12], m[3]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := *m
	nm.SetTranspose()
	return &nm
}

// IsEqual returns whether this matrix is exactly equal to other.
func (m *Matrix4) IsEqual(other *Matrix4) bool {
	return *m == *other
}

func (m *Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15])
}
