// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// PlaneSides classifies a point relative to a [Plane]; see [Plane.Side].
type PlaneSides int32

const (
	// OnPlane means the point lies on the plane, within tolerance.
	OnPlane PlaneSides = iota

	// Front means the point is on the side the plane normal points to.
	Front

	// Back means the point is on the opposite side from the normal.
	Back
)

var planeSidesNames = [...]string{"OnPlane", "Front", "Back"}

func (s PlaneSides) String() string {
	if s < 0 || int(s) >= len(planeSidesNames) {
		return fmt.Sprintf("PlaneSides(%d)", int32(s))
	}
	return planeSidesNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s PlaneSides) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// matching names case-insensitively.
func (s *PlaneSides) UnmarshalText(text []byte) error {
	for i, nm := range planeSidesNames {
		if strings.EqualFold(nm, string(text)) {
			*s = PlaneSides(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type PlaneSides", string(text))
}
