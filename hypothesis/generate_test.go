// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package hypothesis

import (
	"reflect"
	"testing"

	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// faceGrid returns an n x n grid of samples covering [-half, half]^2 on
// the cube face whose outward normal is (nx, ny, nz) at distance 0.5
// from the origin.
func faceGrid(n int, half float64, nx, ny, nz float64) []segment.Sample {
	var out []segment.Sample
	step := 2 * half / float64(n-1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u := -half + float64(i)*step
			v := -half + float64(j)*step
			var p lin.V3
			switch {
			case nx != 0:
				p = lin.V3{X: 0.5 * nx, Y: u, Z: v}
			case ny != 0:
				p = lin.V3{X: u, Y: 0.5 * ny, Z: v}
			default:
				p = lin.V3{X: u, Y: v, Z: 0.5 * nz}
			}
			out = append(out, segment.Sample{Pos: p})
		}
	}
	return out
}

// cubeSegments builds the six faces of the unit cube centered at the
// origin, each sampled with an n x n grid.
func cubeSegments(t *testing.T, n int) []*segment.Segment {
	t.Helper()
	normals := [][3]float64{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	var segs []*segment.Segment
	for _, nm := range normals {
		pts := faceGrid(n, 0.45, nm[0], nm[1], nm[2])
		s, err := segment.New(pts, lin.NewPlane(nm[0], nm[1], nm[2], -0.5))
		if err != nil {
			t.Fatal(err)
		}
		segs = append(segs, s)
	}
	return segs
}

func defaultOptions() Options {
	return Options{BBoxMargin: 0.05, AlphaScale: 5, ResidualTolerance: 0}
}

func TestGenerateTooFewSegments(t *testing.T) {
	segs := cubeSegments(t, 4)[:1]
	if g := Generate(segs, defaultOptions()); !g.IsEmpty() {
		t.Error("expected an empty graph for a single segment")
	}
}

func TestGenerateAllParallel(t *testing.T) {
	a, err := segment.New(faceGrid(4, 0.45, 0, 0, 1), lin.NewPlane(0, 0, 1, -0.5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := segment.New(faceGrid(4, 0.45, 0, 0, -1), lin.NewPlane(0, 0, -1, -0.5))
	if err != nil {
		t.Fatal(err)
	}
	if g := Generate([]*segment.Segment{a, b}, defaultOptions()); !g.IsEmpty() {
		t.Error("expected an empty graph for parallel planes")
	}
}

// Six cube planes: each plane is chorded by the four perpendicular
// planes into a 3x3 arrangement, so 9 candidate faces per supporting
// plane plus 9 per bounding-box plane.
func TestGenerateCubeArrangement(t *testing.T) {
	g := Generate(cubeSegments(t, 6), defaultOptions())
	if g.IsEmpty() {
		t.Fatal("expected a non-empty graph")
	}

	perPlane := map[int]int{}
	bbox := 0
	for _, f := range g.Faces {
		if f.IsBBox {
			bbox++
			continue
		}
		perPlane[f.PlaneIdx]++
	}
	for plane, count := range perPlane {
		if count != 9 {
			t.Errorf("plane %d has %d candidate faces want 9", plane, count)
		}
	}
	if len(perPlane) != 6 {
		t.Errorf("got faces on %d planes want 6", len(perPlane))
	}
	if bbox != 6*9 {
		t.Errorf("got %d bounding-box faces want 54", bbox)
	}
}

// The unit-square cell on each cube plane must carry the plane's full
// point support; the outer cells must carry none.
func TestGenerateCubeScores(t *testing.T) {
	g := Generate(cubeSegments(t, 6), defaultOptions())
	supported := 0
	for _, f := range g.Faces {
		if f.IsBBox {
			continue
		}
		if f.Support > 0 {
			supported++
			if f.Support < 30 { // 36 points per face, all on-plane
				t.Errorf("central cell support got %g want about 36", f.Support)
			}
			if f.Confidence <= 0 || f.Confidence > 1 {
				t.Errorf("confidence got %g want (0, 1]", f.Confidence)
			}
		}
	}
	if supported != 6 {
		t.Errorf("got %d supported faces want 6 (one central cell per plane)", supported)
	}
}

// Every face boundary must be a cycle in E and every edge must list the
// faces that carry it.
func TestGenerateGraphIncidence(t *testing.T) {
	g := Generate(cubeSegments(t, 4), defaultOptions())

	type key struct{ a, b int }
	edgeIdx := map[key]int{}
	for i, e := range g.Edges {
		edgeIdx[key{e.V0, e.V1}] = i
	}
	for fi, f := range g.Faces {
		n := len(f.Vertices)
		if n < 3 {
			t.Fatalf("face %d has %d vertices", fi, n)
		}
		for i := 0; i < n; i++ {
			a, b := f.Vertices[i], f.Vertices[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			ei, ok := edgeIdx[key{a, b}]
			if !ok {
				t.Fatalf("face %d boundary edge (%d, %d) not in E", fi, a, b)
			}
			found := false
			for _, inc := range g.Edges[ei].Faces {
				if inc == fi {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("edge (%d, %d) does not list incident face %d", a, b, fi)
			}
		}
	}
}

// A cube edge is shared between two supporting planes and must be marked
// as a sharp candidate; box-boundary edges must not be.
func TestGenerateSharpEdges(t *testing.T) {
	g := Generate(cubeSegments(t, 4), defaultOptions())
	sharp := 0
	for _, e := range g.Edges {
		if e.Sharp {
			sharp++
			planes := map[int]bool{}
			for _, f := range e.Faces {
				if !g.Faces[f].IsBBox {
					planes[g.Faces[f].PlaneIdx] = true
				}
			}
			if len(planes) < 2 {
				t.Errorf("sharp edge (%d, %d) spans %d planes", e.V0, e.V1, len(planes))
			}
		}
	}
	if sharp == 0 {
		t.Fatal("expected sharp candidate edges on a cube arrangement")
	}
}

// Two runs over the same input must produce identical graphs.
func TestGenerateDeterministic(t *testing.T) {
	a := Generate(cubeSegments(t, 5), defaultOptions())
	b := Generate(cubeSegments(t, 5), defaultOptions())
	if !reflect.DeepEqual(a.Edges, b.Edges) {
		t.Error("edges differ between identical runs")
	}
	if !reflect.DeepEqual(a.Faces, b.Faces) {
		t.Error("faces differ between identical runs")
	}
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Vertices), len(b.Vertices))
	}
	for i := range a.Vertices {
		if !a.Vertices[i].Eq(b.Vertices[i]) {
			t.Errorf("vertex %d differs between identical runs", i)
		}
	}
}

func TestBoundingBoxMargin(t *testing.T) {
	pts := []lin.V3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}
	b := BoundingBox(pts, 0)
	if b.Min.X != 0 || b.Max.X != 1 {
		t.Errorf("unpadded box got [%g, %g] want [0, 1]", b.Min.X, b.Max.X)
	}
	padded := BoundingBox(pts, 0.05)
	if padded.Min.X >= 0 || padded.Max.X <= 1 {
		t.Error("expected the margin to inflate the box")
	}
}
