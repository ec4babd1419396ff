// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package hypothesis

import (
	"math/big"

	"github.com/gazed/polyfit/geo"
)

// arrangeOnPlane builds the planar arrangement on thisPlane induced by
// every plane in chordSources, clipped to the bounding box. It returns
// the arrangement's 2-cells, each a simple convex exact polygon lying
// entirely on thisPlane.
//
// Construction: seed a single cell covering the whole plane within the
// box (a large quad on the plane, clipped to the box's 6 half-spaces),
// then for every chord source, compute the chord ℓᵢⱼ = thisPlane ∩ source
// and split every current cell that chord crosses into the two
// half-polygons on either side. This is the standard incremental
// construction of a line arrangement inside a convex region: each new
// line can only ever split cells it passes through, never merge or
// otherwise perturb the rest.
//
// chordSources is every OTHER supporting plane when thisPlane is itself
// a supporting plane, or every supporting plane when thisPlane is one of
// the 6 bounding-box closing planes; box planes never chord each other
// or a supporting plane; the box's own 6 half-spaces already bound
// every seed via seedFace.
func arrangeOnPlane(thisPlane geo.Plane, chordSources []geo.Plane, boxPlanes []geo.Plane) []polygon {
	seed := seedFace(thisPlane, boxPlanes)
	if len(seed) < 3 {
		return nil
	}
	cells := []polygon{seed}

	for _, src := range chordSources {
		line, ok := geo.IntersectPlanePlane(thisPlane, src)
		if !ok {
			continue // parallel planes contribute no chord.
		}
		split := splittingPlane(thisPlane, line)
		cells = subdivide(cells, split)
	}
	return cells
}

// polygon is an ordered, exact boundary loop on a single supporting plane.
type polygon []geo.Point

// seedFace builds the initial cell Pᵢ = πᵢ ∩ B: a quadrilateral large
// enough to contain the entire box, lying on plane pl, clipped to the
// box's 6 half-spaces.
func seedFace(pl geo.Plane, boxPlanes []geo.Plane) polygon {
	origin, u, v, ok := planeBasis(pl, boxPlanes)
	if !ok {
		return nil
	}
	quad := []geo.Point{
		origin.Add(u).Add(v),
		origin.Add(u.Scale(big.NewRat(-1, 1))).Add(v),
		origin.Add(u.Scale(big.NewRat(-1, 1))).Add(v.Scale(big.NewRat(-1, 1))),
		origin.Add(v.Scale(big.NewRat(-1, 1))).Add(u),
	}
	return geo.ClipPolygonConvex(quad, boxPlanes)
}

// planeBasis returns a point on pl and two large, independent, exact
// vectors spanning pl, scaled to comfortably exceed the extent of the box
// the boxPlanes describe, so that clipping the resulting quad against
// boxPlanes always yields the true πᵢ ∩ B region and never an artifact of
// an undersized seed.
func planeBasis(pl geo.Plane, boxPlanes []geo.Plane) (origin geo.Point, u, v geo.Vector, ok bool) {
	n := pl.Normal()
	if n.IsZero() {
		return geo.Point{}, geo.Vector{}, geo.Vector{}, false
	}

	// A point on the plane nearest the origin: for ax+by+cz+d=0 with
	// normal n, p0 = -d/(n.n) * n.
	nn := n.Dot(n)
	if nn.Sign() == 0 {
		return geo.Point{}, geo.Vector{}, geo.Vector{}, false
	}
	t := new(big.Rat).Quo(new(big.Rat).Neg(pl.D), nn)
	zero := geo.NewPoint(big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1))
	origin = zero.Add(n.Scale(t))

	ref := geo.Vector{X: big.NewRat(1, 1), Y: big.NewRat(0, 1), Z: big.NewRat(0, 1)}
	if n.Cross(ref).IsZero() {
		ref = geo.Vector{X: big.NewRat(0, 1), Y: big.NewRat(1, 1), Z: big.NewRat(0, 1)}
	}
	u = n.Cross(ref)
	v = n.Cross(u)

	scale := boxScale(boxPlanes)
	u = u.Scale(scale)
	v = v.Scale(scale)
	return origin, u, v, true
}

// boxScale returns a rational comfortably larger than the box's extent in
// every axis, used to size the seed quad in planeBasis.
func boxScale(boxPlanes []geo.Plane) *big.Rat {
	maxAbs := big.NewRat(1, 1)
	for _, pl := range boxPlanes {
		d := new(big.Rat).Abs(pl.D)
		if d.Cmp(maxAbs) > 0 {
			maxAbs = d
		}
	}
	return new(big.Rat).Mul(maxAbs, big.NewRat(10, 1))
}

// splittingPlane returns the exact half-space whose boundary is the chord
// line within plane pi: a plane containing line and perpendicular to pi,
// so that it intersects pi exactly along line and clipping a cell of pi's
// arrangement against it (and its negation) produces the two halves the
// chord splits that cell into.
func splittingPlane(pi geo.Plane, line geo.Line) geo.Plane {
	n := pi.Normal().Cross(line.Dir)
	zero := geo.NewPoint(big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1))
	d := new(big.Rat).Neg(n.Dot(line.Point.Sub(zero)))
	return geo.NewPlane(n.X, n.Y, n.Z, d)
}

// subdivide splits every polygon in cells that the chord defined by split
// actually crosses, replacing it with its two non-empty halves; cells
// entirely on one side of split are passed through unchanged.
func subdivide(cells []polygon, split geo.Plane) []polygon {
	negated := geo.NewPlane(
		new(big.Rat).Neg(split.A), new(big.Rat).Neg(split.B),
		new(big.Rat).Neg(split.C), new(big.Rat).Neg(split.D),
	)
	var out []polygon
	for _, cell := range cells {
		front := geo.ClipPolygonConvex([]geo.Point(cell), []geo.Plane{split})
		back := geo.ClipPolygonConvex([]geo.Point(cell), []geo.Plane{negated})
		switch {
		case len(front) >= 3 && len(back) >= 3:
			out = append(out, polygon(front), polygon(back))
		default:
			out = append(out, cell)
		}
	}
	return out
}
