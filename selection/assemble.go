// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package selection

import (
	"sort"

	"github.com/gazed/polyfit/hypothesis"
	"github.com/gazed/polyfit/mesh"
)

// assemble materializes the chosen faces as the output polyhedral mesh:
// exact vertices convert to float64
// through geo's documented boundary, mesh edges are the candidate edges
// with exactly two selected incident faces, and face windings are made
// consistent per connected component (outward for closed components).
func assemble(g *hypothesis.Graph, selected []bool) *mesh.Mesh {
	out := &mesh.Mesh{}

	// Vertex remap: only vertices referenced by a selected face appear
	// in the output, in graph vertex order so identical selections
	// always produce identical vertex lists.
	used := map[int]bool{}
	var faceIdxs []int
	for i, sel := range selected {
		if !sel {
			continue
		}
		faceIdxs = append(faceIdxs, i)
		for _, v := range g.Faces[i].Vertices {
			used[v] = true
		}
	}
	if len(faceIdxs) == 0 {
		return out
	}
	usedSorted := make([]int, 0, len(used))
	for v := range used {
		usedSorted = append(usedSorted, v)
	}
	sort.Ints(usedSorted)
	remap := make(map[int]int, len(usedSorted))
	for newIdx, oldIdx := range usedSorted {
		remap[oldIdx] = newIdx
		out.Vertices = append(out.Vertices, mesh.Vertex{Pos: *g.Vertices[oldIdx].ToV3()})
	}

	meshFaceOf := make(map[int]int, len(faceIdxs)) // graph face -> output face
	for _, fi := range faceIdxs {
		gf := g.Faces[fi]
		verts := make([]int, len(gf.Vertices))
		for j, v := range gf.Vertices {
			verts[j] = remap[v]
		}
		meshFaceOf[fi] = len(out.Faces)
		out.Faces = append(out.Faces, mesh.Face{Vertices: verts, PlaneIdx: gf.PlaneIdx})
	}

	// Edges of the output mesh: candidate edges with exactly two
	// selected incident faces (z_e = 1). Sharp when those two faces lie
	// on different supporting planes.
	edgePairs := map[int]facePair{} // graph edge -> its selected face pair
	for ei, e := range g.Edges {
		var inc []int
		for _, f := range e.Faces {
			if selected[f] {
				inc = append(inc, f)
			}
		}
		if len(inc) != 2 {
			continue
		}
		edgePairs[ei] = facePair{a: inc[0], b: inc[1]}
		sharp := g.Faces[inc[0]].PlaneIdx != g.Faces[inc[1]].PlaneIdx
		out.Edges = append(out.Edges, mesh.Edge{V0: remap[e.V0], V1: remap[e.V1], Sharp: sharp})
	}

	orient(out, meshFaceOf, edgePairs)
	return out
}

// facePair is the two selected graph faces incident to an output edge.
type facePair struct{ a, b int }

// orient makes windings consistent within each connected component of
// the selected surface, flipping whole closed components outward when
// their signed volume comes out negative. Open components keep an
// arbitrary-but-consistent orientation.
func orient(m *mesh.Mesh, meshFaceOf map[int]int, edgePairs map[int]facePair) {
	// Adjacency between output faces through 2-selected edges.
	adj := make(map[int][]int, len(m.Faces))
	for _, p := range edgePairs {
		fa, fb := meshFaceOf[p.a], meshFaceOf[p.b]
		adj[fa] = append(adj[fa], fb)
		adj[fb] = append(adj[fb], fa)
	}
	for f := range adj {
		sort.Ints(adj[f])
	}

	visited := make([]bool, len(m.Faces))
	for root := 0; root < len(m.Faces); root++ {
		if visited[root] {
			continue
		}
		component := []int{root}
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for _, n := range adj[f] {
				if visited[n] {
					continue
				}
				if sameDirection(m.Faces[f], m.Faces[n]) {
					reverse(&m.Faces[n])
				}
				visited[n] = true
				component = append(component, n)
				queue = append(queue, n)
			}
		}
		if closed(m, component) && volume(m, component) < 0 {
			for _, f := range component {
				reverse(&m.Faces[f])
			}
		}
	}
}

// sameDirection reports whether two faces sharing an edge traverse it in
// the same direction, the inconsistent case, since a consistently wound
// surface traverses a shared edge once in each direction.
func sameDirection(a, b mesh.Face) bool {
	dir := func(f mesh.Face) map[[2]int]bool {
		out := map[[2]int]bool{}
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			out[[2]int{f.Vertices[i], f.Vertices[(i+1)%n]}] = true
		}
		return out
	}
	da := dir(a)
	n := len(b.Vertices)
	for i := 0; i < n; i++ {
		if da[[2]int{b.Vertices[i], b.Vertices[(i+1)%n]}] {
			return true
		}
	}
	return false
}

func reverse(f *mesh.Face) {
	for i, j := 0, len(f.Vertices)-1; i < j; i, j = i+1, j-1 {
		f.Vertices[i], f.Vertices[j] = f.Vertices[j], f.Vertices[i]
	}
}

// closed reports whether every boundary edge within the component is
// traversed exactly twice, i.e. the component is watertight.
func closed(m *mesh.Mesh, component []int) bool {
	count := map[[2]int]int{}
	for _, fi := range component {
		f := m.Faces[fi]
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			a, b := f.Vertices[i], f.Vertices[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			count[[2]int{a, b}]++
		}
	}
	for _, c := range count {
		if c != 2 {
			return false
		}
	}
	return true
}

// volume returns the signed volume enclosed by the component's faces via
// the divergence theorem over fan-triangulated polygons; positive when
// windings face outward.
func volume(m *mesh.Mesh, component []int) float64 {
	total := 0.0
	for _, fi := range component {
		f := m.Faces[fi]
		if len(f.Vertices) < 3 {
			continue
		}
		p0 := m.Vertices[f.Vertices[0]].Pos
		for i := 1; i < len(f.Vertices)-1; i++ {
			p1 := m.Vertices[f.Vertices[i]].Pos
			p2 := m.Vertices[f.Vertices[i+1]].Pos
			total += (p0.X*(p1.Y*p2.Z-p1.Z*p2.Y) -
				p0.Y*(p1.X*p2.Z-p1.Z*p2.X) +
				p0.Z*(p1.X*p2.Y-p1.Y*p2.X)) / 6
		}
	}
	return total
}
