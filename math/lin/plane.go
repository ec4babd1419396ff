// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import "math"

// Plane is an inexact plane: a unit normal and a signed offset such that
// for a point p on the plane, Normal.Dot(p) + Offset ≈ 0. This is the
// float64 counterpart of geo.Plane, used for scoring, residual checks,
// and alpha-shape frame construction, anywhere an exact rational plane
// would be needlessly precise and slow.
type Plane struct {
	Normal V3
	Offset float64
}

// NewPlane returns the plane with the given unit normal components and
// signed offset. The caller is responsible for normal being unit length;
// PolyFit's input contract (segments carry a, b, c, d with unit (a,b,c))
// guarantees this at the boundary.
func NewPlane(nx, ny, nz, offset float64) Plane {
	return Plane{Normal: V3{X: nx, Y: ny, Z: nz}, Offset: offset}
}

// Eval returns Normal.Dot(p) + Offset: the signed distance from p to the
// plane when Normal is unit length.
func (pl Plane) Eval(p *V3) float64 { return pl.Normal.Dot(p) + pl.Offset }

// Dist returns the unsigned distance from p to the plane.
func (pl Plane) Dist(p *V3) float64 { return math.Abs(pl.Eval(p)) }

// Side reports which side of the plane p falls on: +1 in front (in the
// direction of Normal), -1 behind, 0 within Epsilon of the plane.
func (pl Plane) Side(p *V3) int {
	d := pl.Eval(p)
	switch {
	case d > Epsilon:
		return 1
	case d < -Epsilon:
		return -1
	default:
		return 0
	}
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane) Project(p *V3) *V3 {
	d := pl.Eval(p)
	offset := NewV3().Scale(&pl.Normal, d)
	return NewV3().Sub(p, offset)
}

// Frame builds a local 2D frame on the plane: a transform whose location
// is origin (expected to lie on the plane) and whose rotation carries the
// Z axis onto the plane's normal. App then lifts a local (x, y, 0)
// coordinate onto the plane, and Inv flattens an on-plane world point to
// (x, y, 0) in the plane's own 2D coordinates.
func (pl Plane) Frame(origin *V3) *T {
	z := V3{X: 0, Y: 0, Z: 1}
	n := pl.Normal
	axis := NewV3().Cross(&z, &n)
	if axis.AeqZ() {
		// normal already parallel to Z; no rotation needed (or a 180
		// degree flip when it points the opposite way).
		t := NewT().SetLoc(origin.X, origin.Y, origin.Z)
		if n.Z < 0 {
			t.SetAa(1, 0, 0, PI)
		}
		return t
	}
	cosAng := z.Dot(&n)
	ang := math.Acos(Clamp(cosAng, -1, 1))
	return NewT().SetLoc(origin.X, origin.Y, origin.Z).SetAa(axis.X, axis.Y, axis.Z, ang)
}
