// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/geom3/base/errors"
)

var (
	// ErrNilInput is returned when a required slice or matrix argument is nil.
	ErrNilInput = errors.New("math32: nil input")

	// ErrInvalidArgument is returned for arguments of the wrong shape,
	// such as a coefficient slice that does not have exactly 4 elements.
	ErrInvalidArgument = errors.New("math32: invalid argument")

	// ErrIndexOutOfRange is returned for a component index outside [0, 3].
	// It matches [ErrInvalidArgument] under errors.Is.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrSingularMatrix is returned when a matrix cannot be inverted
	// because its determinant is 0.
	ErrSingularMatrix = errors.New("math32: cannot invert matrix, determinant is 0")
)
