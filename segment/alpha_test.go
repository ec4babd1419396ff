// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package segment

import (
	"testing"

	"github.com/gazed/polyfit/math/lin"
)

func TestDelaunay2DTriangle(t *testing.T) {
	pts := []lin.V2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tris := Delaunay2D(pts)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles want 1", len(tris))
	}
}

func TestDelaunay2DCollinear(t *testing.T) {
	pts := []lin.V2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if tris := Delaunay2D(pts); len(tris) != 0 {
		t.Errorf("collinear points got %d triangles want 0", len(tris))
	}
}

// A triangulation of n points with a convex boundary of h points has
// 2n - h - 2 triangles; total triangulated area must equal the convex
// hull's area when the input is a filled square.
func TestDelaunay2DSquareGrid(t *testing.T) {
	var pts []lin.V2
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pts = append(pts, lin.V2{X: float64(i), Y: float64(j)})
		}
	}
	tris := Delaunay2D(pts)
	want := 2*16 - 12 - 2 // n=16, hull=12
	if len(tris) != want {
		t.Fatalf("got %d triangles want %d", len(tris), want)
	}
	area := 0.0
	for _, tr := range tris {
		a, b, c := pts[tr.A], pts[tr.B], pts[tr.C]
		area += triangleArea(a, b, c)
	}
	if !lin.Aeq(area, 9) {
		t.Errorf("triangulated area got %g want 9", area)
	}
}

func TestAutoAlphaScalesWithSpacing(t *testing.T) {
	var pts []lin.V2
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			pts = append(pts, lin.V2{X: float64(i) * 2, Y: float64(j) * 2})
		}
	}
	// Every point's nearest neighbor is 2 apart, so alpha = scale * 2.
	if got := AutoAlpha(pts, 5); !lin.Aeq(got, 10) {
		t.Errorf("auto alpha got %g want 10", got)
	}
}

// The alpha shape of a dense grid must cover the grid's area; a far-away
// outlier must not pull in huge sliver triangles.
func TestFitAlphaGrid(t *testing.T) {
	s, err := New(gridSamples(10, 0.45, 0), lin.NewPlane(0, 0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	s.FitAlpha(0) // auto-alpha
	if s.Alpha.Empty() {
		t.Fatal("expected a non-empty alpha shape")
	}
	area := s.Alpha.Area()
	if area < 0.7 || area > 0.9 {
		t.Errorf("alpha area got %g want about 0.81", area)
	}
}

func TestFitAlphaTooFewPoints(t *testing.T) {
	s := &Segment{Points: []Sample{{}, {}}}
	s.FitAlpha(1)
	if !s.Alpha.Empty() {
		t.Error("expected an empty alpha shape for fewer than 3 points")
	}
}
