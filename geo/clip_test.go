// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "testing"

func pt(x, y, z int64) Point { return Point{X: r(x), Y: r(y), Z: r(z)} }

// Clipping a unit square (in the z=0 plane) against the half-space x >= 0
// with the square straddling the origin should return a rectangle from
// x=0 to x=1.
func TestClipPolygonHalfspace(t *testing.T) {
	square := []Point{pt(-1, -1, 0), pt(1, -1, 0), pt(1, 1, 0), pt(-1, 1, 0)}
	pl := unitPlane(1, 0, 0, 0) // x >= 0 is "inside"
	clipped := ClipPolygonHalfspace(square, pl)
	if len(clipped) == 0 {
		t.Fatal("expected a non-empty clipped polygon")
	}
	for _, p := range clipped {
		if p.X.Sign() < 0 {
			t.Errorf("clipped vertex %s has negative x", p.X.RatString())
		}
	}
}

// Clipping a polygon entirely behind the plane yields an empty result.
func TestClipPolygonHalfspaceAllBehind(t *testing.T) {
	square := []Point{pt(-3, -1, 0), pt(-2, -1, 0), pt(-2, 1, 0), pt(-3, 1, 0)}
	pl := unitPlane(1, 0, 0, 0)
	clipped := ClipPolygonHalfspace(square, pl)
	if len(clipped) != 0 {
		t.Errorf("expected empty result, got %d vertices", len(clipped))
	}
}

// Clipping a polygon entirely in front of the plane returns it unchanged
// (vertex-for-vertex, since no edge crosses the boundary).
func TestClipPolygonHalfspaceAllInFront(t *testing.T) {
	square := []Point{pt(1, -1, 0), pt(2, -1, 0), pt(2, 1, 0), pt(1, 1, 0)}
	pl := unitPlane(1, 0, 0, 0)
	clipped := ClipPolygonHalfspace(square, pl)
	if len(clipped) != len(square) {
		t.Fatalf("expected %d vertices, got %d", len(square), len(clipped))
	}
	for i, p := range clipped {
		if !p.Eq(square[i]) {
			t.Errorf("vertex %d: got (%s,%s,%s) want (%s,%s,%s)", i,
				p.X.RatString(), p.Y.RatString(), p.Z.RatString(),
				square[i].X.RatString(), square[i].Y.RatString(), square[i].Z.RatString())
		}
	}
}

// Clipping a square to a box (four half-spaces) leaves exactly the
// overlapping region.
func TestClipPolygonConvexBox(t *testing.T) {
	square := []Point{pt(-2, -2, 0), pt(2, -2, 0), pt(2, 2, 0), pt(-2, 2, 0)}
	bounds := []Plane{
		unitPlane(1, 0, 0, 1),  // x >= -1
		unitPlane(-1, 0, 0, 1), // x <= 1
		unitPlane(0, 1, 0, 1),  // y >= -1
		unitPlane(0, -1, 0, 1), // y <= 1
	}
	clipped := ClipPolygonConvex(square, bounds)
	if len(clipped) != 4 {
		t.Fatalf("expected a 4-vertex box, got %d vertices", len(clipped))
	}
	for _, p := range clipped {
		if abs(p.X).Cmp(r(1)) > 0 || abs(p.Y).Cmp(r(1)) > 0 {
			t.Errorf("vertex (%s,%s) outside expected box", p.X.RatString(), p.Y.RatString())
		}
	}
}
