// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "math/big"

// Plane is an exact plane in implicit form: ax + by + cz + d = 0.
// Unlike lin.Plane, the normal (a, b, c) here is not required to be unit
// length: exactness over rationals would force normalization to carry a
// square root, which has no exact rational representation in general.
// Side tests (Side, below) only need the sign of the implicit form, which
// is invariant under positive scaling of (a, b, c, d).
type Plane struct {
	A, B, C, D *big.Rat
}

// NewPlane returns the exact plane ax + by + cz + d = 0.
func NewPlane(a, b, c, d *big.Rat) Plane { return Plane{A: a, B: b, C: c, D: d} }

// PlaneFromFloat converts a float-form plane (unit normal nx,ny,nz and
// signed offset d, as supplied by a segment's supporting plane) into an
// exact plane. This is the one place input planes cross into the exact
// kernel; every plane-plane-plane intersection downstream operates purely
// on the resulting rationals.
func PlaneFromFloat(nx, ny, nz, d float64) Plane {
	return Plane{
		A: new(big.Rat).SetFloat64(nx),
		B: new(big.Rat).SetFloat64(ny),
		C: new(big.Rat).SetFloat64(nz),
		D: new(big.Rat).SetFloat64(d),
	}
}

// Normal returns the plane's (not necessarily unit) normal vector.
func (p Plane) Normal() Vector { return Vector{X: p.A, Y: p.B, Z: p.C} }

// Eval returns a*x + b*y + c*z + d for point q, exactly. Its sign gives
// which half-space q falls in; it is zero iff q lies on the plane.
func (p Plane) Eval(q Point) *big.Rat {
	sum := new(big.Rat).Mul(p.A, q.X)
	sum.Add(sum, new(big.Rat).Mul(p.B, q.Y))
	sum.Add(sum, new(big.Rat).Mul(p.C, q.Z))
	sum.Add(sum, p.D)
	return sum
}

// Side reports the sign of Eval(q): +1 in front of the plane (in the
// direction of the normal), -1 behind, 0 exactly on it.
func (p Plane) Side(q Point) int { return p.Eval(q).Sign() }

// Contains reports whether q lies exactly on plane p.
func (p Plane) Contains(q Point) bool { return p.Side(q) == 0 }
