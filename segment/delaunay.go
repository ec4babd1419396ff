// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package segment

import (
	"sort"

	"github.com/gazed/polyfit/math/lin"
)

// Triangle2D is a triangle over indices into the point slice given to
// Delaunay2D, following the same index-into-a-flat-slice discipline the
// rest of the hypothesis graph uses.
type Triangle2D struct {
	A, B, C int
}

// Delaunay2D computes the 2D Delaunay triangulation of pts using
// incremental Bowyer-Watson insertion against a super-triangle cover,
// seeding a bounding cover, inserting points one at a time while
// retriangulating the cavity of bad triangles, then discarding any
// triangle touching a cover vertex. Segments carry no constrained edges
// or holes, so no PSLG normalization or edge legalization is needed;
// this is the plain unconstrained case of the algorithm.
//
// Returns an empty triangulation for fewer than 3 points or for points
// that are all collinear.
func Delaunay2D(pts []lin.V2) []Triangle2D {
	n := len(pts)
	if n < 3 || collinear(pts) {
		return nil
	}

	cover, coverPts := superTriangle(pts)
	all := append(append([]lin.V2(nil), pts...), coverPts...)
	tris := []Triangle2D{cover}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Deterministic insertion order: lexicographic by (x, y), so
	// repeated runs feed identical triangulations into the hypothesis
	// graph downstream.
	sort.Slice(order, func(i, j int) bool {
		a, b := pts[order[i]], pts[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	for _, idx := range order {
		tris = insertPoint(tris, all, idx)
	}

	out := tris[:0]
	coverStart := n
	for _, t := range tris {
		if t.A >= coverStart || t.B >= coverStart || t.C >= coverStart {
			continue
		}
		out = append(out, t)
	}
	return out
}

// insertPoint retriangulates the cavity of every triangle whose
// circumcircle contains all[p] (the Bowyer-Watson step), replacing them
// with new triangles fanned from p over the cavity's boundary edges.
func insertPoint(tris []Triangle2D, all []lin.V2, p int) []Triangle2D {
	type edge struct{ a, b int }

	var bad []Triangle2D
	var kept []Triangle2D
	for _, t := range tris {
		if inCircumcircle(all[t.A], all[t.B], all[t.C], all[p]) {
			bad = append(bad, t)
		} else {
			kept = append(kept, t)
		}
	}

	edgeCount := map[edge]int{}
	canon := func(a, b int) edge {
		if a > b {
			a, b = b, a
		}
		return edge{a, b}
	}
	for _, t := range bad {
		edgeCount[canon(t.A, t.B)]++
		edgeCount[canon(t.B, t.C)]++
		edgeCount[canon(t.C, t.A)]++
	}
	// Boundary edges of the cavity are exactly those shared by only one
	// bad triangle; the rest are interior to the cavity and discarded.
	for _, t := range bad {
		for _, e := range [][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			if edgeCount[canon(e[0], e[1])] == 1 {
				kept = append(kept, Triangle2D{A: e[0], B: e[1], C: p})
			}
		}
	}
	return kept
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of triangle (a, b, c).
func inCircumcircle(a, b, c, d lin.V2) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	// Orientation of (a,b,c) flips the sign convention of the standard
	// in-circle determinant; normalize against it so the test works
	// regardless of input winding.
	if orient2D(a, b, c) < 0 {
		return det < 0
	}
	return det > 0
}

func orient2D(a, b, c lin.V2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// superTriangle returns a triangle guaranteed to enclose every point in
// pts, far enough out that its vertices never end up inside the final
// triangulation's circumcircles for "real" points near the input's scale.
func superTriangle(pts []lin.V2) (Triangle2D, []lin.V2) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	dx, dy := maxX-minX, maxY-minY
	delta := dx
	if dy > delta {
		delta = dy
	}
	if delta == 0 {
		delta = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	p0 := lin.V2{X: midX - 20*delta, Y: midY - delta}
	p1 := lin.V2{X: midX, Y: midY + 20*delta}
	p2 := lin.V2{X: midX + 20*delta, Y: midY - delta}

	n := len(pts)
	return Triangle2D{A: n, B: n + 1, C: n + 2}, []lin.V2{p0, p1, p2}
}

// collinear reports whether every point in pts lies on a common line,
// in which case no triangulation exists.
func collinear(pts []lin.V2) bool {
	if len(pts) < 3 {
		return true
	}
	a, b := pts[0], pts[1]
	for _, c := range pts[2:] {
		if orient2D(a, b, c) != 0 {
			return false
		}
	}
	return true
}
