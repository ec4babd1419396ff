// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "github.com/gazed/polyfit/math/lin"

// ToV3 converts an exact point to its float64 approximation. This is the
// single documented exact→inexact conversion boundary: callers
// outside this package must go through here (or Vector.ToV3/Plane.ToV3)
// rather than reaching into a Point's big.Rat fields directly, so every
// crossing of the exact/inexact boundary is a single, grep-able call site.
func (p Point) ToV3() *lin.V3 {
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	z, _ := p.Z.Float64()
	return &lin.V3{X: x, Y: y, Z: z}
}

// ToV3 converts an exact vector to its float64 approximation.
func (v Vector) ToV3() *lin.V3 {
	x, _ := v.X.Float64()
	y, _ := v.Y.Float64()
	z, _ := v.Z.Float64()
	return &lin.V3{X: x, Y: y, Z: z}
}

// ToPlane converts an exact plane to its inexact, unit-normal form.
// The normal is renormalized to unit length in float64 since exact planes
// are not required to carry a unit normal (see Plane's doc comment).
func (p Plane) ToPlane() lin.Plane {
	n := p.Normal().ToV3()
	d, _ := p.D.Float64()
	length := n.Len()
	if length == 0 {
		return lin.Plane{Normal: lin.V3{}, Offset: 0}
	}
	inv := 1 / length
	return lin.Plane{
		Normal: lin.V3{X: n.X * inv, Y: n.Y * inv, Z: n.Z * inv},
		Offset: d * inv,
	}
}
