// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package hypothesis

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// segmentView is the minimal surface score.go needs from a planar
// segment, kept narrow so this package doesn't need to import the whole
// segment API surface into its scoring hot loop.
type segmentView interface {
	// PairedPoints returns each member point in world space alongside
	// its projection into the segment's local 2D frame, index-aligned.
	PairedPoints() (world []lin.V3, frame []lin.V2)
	// PlaneDist returns the unsigned distance from a world-space point
	// to the segment's supporting plane.
	PlaneDist(lin.V3) float64
	AlphaMesh() segment.Mesh
}

// score fills in Support, Confidence, Coverage and Area for every face
// on plane i, using segments[i] as the face's evidence. eps is the
// residual tolerance ε. Bounding-box faces have no segment to score
// against and keep their zero scores.
func score(g *Graph, faceVerts2D func(Face) []lin.V2, segs []segmentView, eps float64) {
	indexes := make([]*alphaIndex, len(segs))
	for i, s := range segs {
		indexes[i] = indexAlpha(s.AlphaMesh())
	}
	for i := range g.Faces {
		f := &g.Faces[i]
		if f.IsBBox {
			continue
		}
		s := segs[f.PlaneIdx]
		poly := faceVerts2D(*f)
		f.Area = polygonArea2D(poly)

		f.Support = supportTerm(poly, s, eps)
		f.Confidence = confidenceTerm(poly, f.Area, indexes[f.PlaneIdx])
		f.Coverage = f.Confidence * f.Area
	}
}

// supportTerm computes supp(f):
//
//	Σ over points p ∈ Sf whose projection onto πf falls inside f of
//	(1 − d(p, πf)²/ε²), clamped >= 0
func supportTerm(faceVerts []lin.V2, s segmentView, eps float64) float64 {
	if eps <= 0 {
		return 0
	}
	total := 0.0
	pts3, pts2 := s.PairedPoints()
	for i, p3 := range pts3 {
		if !pointInConvexPolygon(faceVerts, pts2[i]) {
			continue
		}
		d := s.PlaneDist(p3)
		term := 1 - (d*d)/(eps*eps)
		if term > 0 {
			total += term
		}
	}
	return total
}

// alphaIndex is an rtree over a segment's alpha-shape triangles in the
// segment's 2D frame. An arrangement on a busy plane clips every one of
// its cells against that plane's alpha triangles; the index narrows each
// cell's clip loop to the triangles whose bounds actually overlap it.
type alphaIndex struct {
	tree *rtreego.Rtree
}

type indexedTri struct {
	bounds *rtreego.Rect
	tri    segment.Triangle
}

func (t *indexedTri) Bounds() *rtreego.Rect { return t.bounds }

// pad keeps degenerate (axis-aligned sliver) triangle rects valid, since
// rtreego rejects non-positive extents.
const pad = 1e-12

func indexAlpha(m segment.Mesh) *alphaIndex {
	if m.Empty() {
		return nil
	}
	tree := rtreego.NewTree(2, 2, 8)
	for _, tri := range m.Triangles {
		minX := math.Min(tri.A2.X, math.Min(tri.B2.X, tri.C2.X))
		maxX := math.Max(tri.A2.X, math.Max(tri.B2.X, tri.C2.X))
		minY := math.Min(tri.A2.Y, math.Min(tri.B2.Y, tri.C2.Y))
		maxY := math.Max(tri.A2.Y, math.Max(tri.B2.Y, tri.C2.Y))
		r, err := rtreego.NewRect(
			rtreego.Point{minX - pad, minY - pad},
			[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad})
		if err != nil {
			continue
		}
		tree.Insert(&indexedTri{bounds: r, tri: tri})
	}
	return &alphaIndex{tree: tree}
}

// overlapping returns the triangles whose bounding rects intersect the
// rect spanned by poly.
func (ai *alphaIndex) overlapping(poly []lin.V2) []segment.Triangle {
	if ai == nil || len(poly) == 0 {
		return nil
	}
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	r, err := rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad})
	if err != nil {
		return nil
	}
	hits := ai.tree.SearchIntersect(r)
	out := make([]segment.Triangle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexedTri).tri)
	}
	return out
}

// confidenceTerm computes conf(f): the area fraction of f covered by the
// alpha-shape triangles of its segment, by clipping each
// nearby alpha-shape triangle against the convex face polygon and summing
// clipped area.
func confidenceTerm(faceVerts []lin.V2, faceArea float64, idx *alphaIndex) float64 {
	if faceArea <= 0 || idx == nil {
		return 0
	}
	covered := 0.0
	for _, tri := range idx.overlapping(faceVerts) {
		tp := []lin.V2{tri.A2, tri.B2, tri.C2}
		clipped := clipConvexPolygon2D(tp, faceVerts)
		covered += polygonArea2D(clipped)
	}
	frac := covered / faceArea
	return math.Min(frac, 1)
}

// polygonArea2D returns the unsigned area of a simple polygon via the
// shoelace formula.
func polygonArea2D(poly []lin.V2) float64 {
	if len(poly) < 3 {
		return 0
	}
	return math.Abs(signedArea2D(poly))
}

// signedArea2D returns the signed shoelace area: positive for CCW,
// negative for CW winding.
func signedArea2D(poly []lin.V2) float64 {
	sum := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// pointInConvexPolygon reports whether p lies within the convex polygon
// poly, regardless of poly's winding direction.
func pointInConvexPolygon(poly []lin.V2, p lin.V2) bool {
	if len(poly) < 3 {
		return false
	}
	ccw := signedArea2D(poly) >= 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if ccw && cross < 0 {
			return false
		}
		if !ccw && cross > 0 {
			return false
		}
	}
	return true
}

// clipConvexPolygon2D clips subject against the convex polygon clip using
// Sutherland-Hodgman, generalizing geo.ClipPolygonHalfspace (the exact,
// 3D half-space version used to build the arrangement) to the inexact 2D
// case confidenceTerm needs for alpha-shape/face overlap area.
func clipConvexPolygon2D(subject, clip []lin.V2) []lin.V2 {
	if len(subject) == 0 || len(clip) < 3 {
		return nil
	}
	ccw := signedArea2D(clip) >= 0
	out := subject
	n := len(clip)
	for i := 0; i < n && len(out) > 0; i++ {
		a, b := clip[i], clip[(i+1)%n]
		out = clipEdge(out, a, b, ccw)
	}
	return out
}

func clipEdge(poly []lin.V2, a, b lin.V2, ccw bool) []lin.V2 {
	inside := func(p lin.V2) bool {
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if ccw {
			return cross >= 0
		}
		return cross <= 0
	}
	intersect := func(p, q lin.V2) lin.V2 {
		dpx, dpy := b.X-a.X, b.Y-a.Y
		d1 := dpx*(p.Y-a.Y) - dpy*(p.X-a.X)
		d2 := dpx*(q.Y-a.Y) - dpy*(q.X-a.X)
		t := d1 / (d1 - d2)
		return lin.V2{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
	}

	var out []lin.V2
	start := poly[len(poly)-1]
	startIn := inside(start)
	for _, end := range poly {
		endIn := inside(end)
		switch {
		case startIn && endIn:
			out = append(out, end)
		case startIn && !endIn:
			out = append(out, intersect(start, end))
		case !startIn && endIn:
			out = append(out, intersect(start, end), end)
		}
		start, startIn = end, endIn
	}
	return out
}
