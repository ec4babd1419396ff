// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package segment

import (
	"log/slog"
	"math"

	"github.com/gazed/polyfit/math/lin"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Triangle is one triangle of an alpha-shape mesh: its 2D parametrization
// (used for coverage clipping against a candidate face) and its
// lift into world space (used nowhere downstream today but kept alongside
// so a future renderer can draw the boundary without recomputing the
// frame transform).
type Triangle struct {
	A2, B2, C2 lin.V2
	A3, B3, C3 lin.V3
}

// Mesh is the alpha-shape boundary Aₛ of a segment: 2D triangles on the
// supporting plane approximating the region covered by its points.
type Mesh struct {
	Triangles []Triangle
}

// Empty reports whether the mesh has no triangles. The hypothesis
// generator treats an empty mesh as zero coverage everywhere on the
// supporting plane.
func (m Mesh) Empty() bool { return len(m.Triangles) == 0 }

// Area returns the total 2D area of the alpha-shape's triangles, used as
// the area_total term in the selection objective.
func (m Mesh) Area() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += triangleArea(t.A2, t.B2, t.C2)
	}
	return total
}

func triangleArea(a, b, c lin.V2) float64 {
	return math.Abs(orient2D(a, b, c)) / 2
}

// AutoAlpha derives α from the mean nearest-neighbor spacing of the
// segment's projected points: α = c·d̄ with c a configuration constant
// (default 5). Nearest-neighbor spacing is found with a gonum kdtree
// rather than the brute-force scan MeanSpacing uses. FitAlpha calls it
// when given α <= 0; hypothesis generation passes an α derived from
// MeanSpacing instead.
func AutoAlpha(pts []lin.V2, scale float64) float64 {
	if len(pts) < 2 {
		return 0
	}
	points := make(kdtree.Points, len(pts))
	for i, p := range pts {
		points[i] = kdtree.Point{p.X, p.Y}
	}
	tree := kdtree.New(points, false)

	sum := 0.0
	for _, p := range points {
		keeper := kdtree.NewNKeeper(2)
		tree.NearestSet(keeper, p)
		if len(keeper.Heap) == 0 {
			continue
		}
		// NearestSet leaves the 2 closest points in ascending distance
		// order; the first is the query point itself at distance 0, so
		// the last is the nearest distinct neighbor.
		sum += math.Sqrt(keeper.Heap[len(keeper.Heap)-1].Dist)
	}
	dBar := sum / float64(len(points))
	return scale * dBar
}

// FitAlpha runs the alpha-shape boundary extractor over the
// segment's member points and stores the result on s.Alpha. alpha <= 0
// triggers the auto-α policy.
func (s *Segment) FitAlpha(alpha float64) {
	if len(s.Points) < 3 {
		slog.Warn("segment.FitAlpha: fewer than 3 points, empty alpha shape", "points", len(s.Points))
		s.Alpha = Mesh{}
		return
	}
	pts := s.projected()
	if alpha <= 0 {
		alpha = AutoAlpha(pts, 5.0)
	}
	if alpha <= 0 {
		slog.Warn("segment.FitAlpha: degenerate alpha, empty alpha shape")
		s.Alpha = Mesh{}
		return
	}

	tris := Delaunay2D(pts)
	if len(tris) == 0 {
		s.Alpha = Mesh{}
		return
	}

	var out []Triangle
	for _, t := range tris {
		a, b, c := pts[t.A], pts[t.B], pts[t.C]
		r, ok := circumradius(a, b, c)
		if !ok || r > alpha {
			continue // exterior: circumradius exceeds alpha.
		}
		out = append(out, Triangle{
			A2: a, B2: b, C2: c,
			A3: s.Lift3D(a), B3: s.Lift3D(b), C3: s.Lift3D(c),
		})
	}
	s.Alpha = Mesh{Triangles: out}
}

// circumradius returns the circumradius of triangle (a, b, c), the
// quantity the alpha-shape filter compares against α to classify
// a simplex as interior/regular (kept) or exterior (discarded).
func circumradius(a, b, c lin.V2) (float64, bool) {
	ab := a.Dist(&b)
	bc := b.Dist(&c)
	ca := c.Dist(&a)
	area2 := math.Abs(orient2D(a, b, c))
	if area2 == 0 {
		return 0, false
	}
	return (ab * bc * ca) / (2 * area2), true
}
