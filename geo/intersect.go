// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "math/big"

// Line is an exact 3D line given as a point and a direction vector.
// It is the exact analogue of a lin.T frame's origin/axis, used only
// transiently while computing the chord a plane-plane intersection cuts
// through a candidate face.
type Line struct {
	Point Point
	Dir   Vector
}

// IntersectPlanes3 computes the exact point where three planes meet, using
// Cramer's rule over a 3x3 rational system (the exact-kernel counterpart of
// lin.M3.Inv, which solves the same system approximately in float64). It
// reports ok=false when the planes' normals are linearly dependent (any two
// parallel, or all three sharing a common line); there is then no unique
// intersection point.
func IntersectPlanes3(p1, p2, p3 Plane) (pt Point, ok bool) {
	det := det3(
		p1.A, p1.B, p1.C,
		p2.A, p2.B, p2.C,
		p3.A, p3.B, p3.C,
	)
	if det.Sign() == 0 {
		return Point{}, false
	}

	negD1, negD2, negD3 := new(big.Rat).Neg(p1.D), new(big.Rat).Neg(p2.D), new(big.Rat).Neg(p3.D)

	dx := det3(negD1, p1.B, p1.C, negD2, p2.B, p2.C, negD3, p3.B, p3.C)
	dy := det3(p1.A, negD1, p1.C, p2.A, negD2, p2.C, p3.A, negD3, p3.C)
	dz := det3(p1.A, p1.B, negD1, p2.A, p2.B, negD2, p3.A, p3.B, negD3)

	x := new(big.Rat).Quo(dx, det)
	y := new(big.Rat).Quo(dy, det)
	z := new(big.Rat).Quo(dz, det)
	return Point{X: x, Y: y, Z: z}, true
}

// IntersectPlanePlane computes the exact line where two planes meet. It
// reports ok=false when the planes are parallel (normals collinear,
// whether or not the planes are coincident); the hypothesis generator
// treats that as "ℓᵢⱼ empty" and contributes no chord.
func IntersectPlanePlane(p1, p2 Plane) (line Line, ok bool) {
	dir := p1.Normal().Cross(p2.Normal())
	if dir.IsZero() {
		return Line{}, false
	}

	// Pick whichever axis-aligned plane (x=0, y=0, or z=0) is least
	// parallel to the intersection line, and solve the 2x2 system for
	// the other two coordinates there, matching the standard
	// two-planes-meet-a-third-axis-plane construction.
	ax, ay, az := abs(dir.X), abs(dir.Y), abs(dir.Z)
	var base Plane
	switch {
	case az.Cmp(ax) >= 0 && az.Cmp(ay) >= 0:
		base = Plane{A: big.NewRat(0, 1), B: big.NewRat(0, 1), C: big.NewRat(1, 1), D: big.NewRat(0, 1)}
	case ay.Cmp(ax) >= 0:
		base = Plane{A: big.NewRat(0, 1), B: big.NewRat(1, 1), C: big.NewRat(0, 1), D: big.NewRat(0, 1)}
	default:
		base = Plane{A: big.NewRat(1, 1), B: big.NewRat(0, 1), C: big.NewRat(0, 1), D: big.NewRat(0, 1)}
	}
	pt, ok := IntersectPlanes3(p1, p2, base)
	if !ok {
		return Line{}, false
	}
	return Line{Point: pt, Dir: dir}, true
}

// IntersectLineHalfspaceBoundary computes where line ln crosses the
// boundary plane of half-space pl, parameterized as ln.Point + t*ln.Dir.
// It reports ok=false if the line is parallel to the plane (including
// lying within it, which the caller handles as "no new chord endpoint").
func IntersectLineHalfspaceBoundary(ln Line, pl Plane) (pt Point, ok bool) {
	denom := pl.Normal().Dot(ln.Dir)
	if denom.Sign() == 0 {
		return Point{}, false
	}
	num := new(big.Rat).Neg(pl.Eval(ln.Point))
	t := new(big.Rat).Quo(num, denom)
	return ln.Point.Add(ln.Dir.Scale(t)), true
}

func abs(r *big.Rat) *big.Rat {
	if r.Sign() < 0 {
		return new(big.Rat).Neg(r)
	}
	return r
}

// det3 returns the determinant of the 3x3 matrix given in row-major order.
func det3(a, b, c, d, e, f, g, h, i *big.Rat) *big.Rat {
	t1 := new(big.Rat).Mul(a, new(big.Rat).Sub(new(big.Rat).Mul(e, i), new(big.Rat).Mul(f, h)))
	t2 := new(big.Rat).Mul(b, new(big.Rat).Sub(new(big.Rat).Mul(d, i), new(big.Rat).Mul(f, g)))
	t3 := new(big.Rat).Mul(c, new(big.Rat).Sub(new(big.Rat).Mul(d, h), new(big.Rat).Mul(e, g)))
	return new(big.Rat).Add(new(big.Rat).Sub(t1, t2), t3)
}
