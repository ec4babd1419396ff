// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package hypothesis

import (
	"sort"

	"github.com/gazed/polyfit/geo"
)

// Face is a candidate face f: a convex polygon on exactly one
// supporting plane, as an ordered loop of vertex indices into
// Graph.Vertices, together with its data-fit scores. Scoring
// (Support/Confidence/Coverage) is filled in after graph construction;
// building the graph and scoring it are separate passes.
type Face struct {
	PlaneIdx   int
	Vertices   []int
	Support    float64
	Confidence float64
	Coverage   float64
	Area       float64
	// IsBBox marks a face lying on one of the 6 bounding-box closing
	// planes rather than an input supporting plane. Such a face has no
	// segment to score against, so its scores are always 0.
	IsBBox bool
}

// Edge is a candidate edge e: an unordered pair of vertex indices
// together with every face incident to it. Sharp
// reports whether those incident faces already span >= 2 distinct
// supporting planes, the graph-level necessary condition for an edge to
// be a sharp edge in the output.
type Edge struct {
	V0, V1 int
	Faces  []int
	Sharp  bool
}

// Graph is the hypothesis graph H = (V, E, F), built once by Generate
// and never mutated afterward.
type Graph struct {
	Vertices []geo.Point
	Edges    []Edge
	Faces    []Face
}

// IsEmpty reports whether the graph has no candidate faces: no
// arrangement was possible (fewer than two planes, or all parallel).
func (g *Graph) IsEmpty() bool { return g == nil || len(g.Faces) == 0 }

type rawFace struct {
	planeIdx int
	poly     polygon
	isBBox   bool
}

// buildGraph assembles (V, E, F) from the per-plane arrangements,
// dedupes vertices and edges by exact-coordinate identity, and reorders
// everything into a deterministic index assignment. supportingPlanes are
// the input segments' supporting planes (in segment order); boxPlanes
// are the 6 bounding-box closing planes, each arranged as an optional
// candidate face of its own.
func buildGraph(supportingPlanes []geo.Plane, boxPlanes []geo.Plane) *Graph {
	var raw []rawFace
	for i, pl := range supportingPlanes {
		others := make([]geo.Plane, 0, len(supportingPlanes)-1)
		for j, pj := range supportingPlanes {
			if j != i {
				others = append(others, pj)
			}
		}
		for _, cell := range arrangeOnPlane(pl, others, boxPlanes) {
			if len(cell) >= 3 {
				raw = append(raw, rawFace{planeIdx: i, poly: cell})
			}
		}
	}
	for bi, pl := range boxPlanes {
		for _, cell := range arrangeOnPlane(pl, supportingPlanes, boxPlanes) {
			if len(cell) >= 3 {
				raw = append(raw, rawFace{planeIdx: len(supportingPlanes) + bi, poly: cell, isBBox: true})
			}
		}
	}

	vertIndex := map[string]int{}
	var vertices []geo.Point
	vertexOf := func(p geo.Point) int {
		k := p.Key()
		if idx, ok := vertIndex[k]; ok {
			return idx
		}
		idx := len(vertices)
		vertIndex[k] = idx
		vertices = append(vertices, p)
		return idx
	}

	type edgeKey struct{ a, b int }
	edgeIndex := map[edgeKey]int{}
	var edges []Edge
	edgeOf := func(a, b int) int {
		k := edgeKey{a, b}
		if k.a > k.b {
			k.a, k.b = k.b, k.a
		}
		if idx, ok := edgeIndex[k]; ok {
			return idx
		}
		idx := len(edges)
		edgeIndex[k] = idx
		edges = append(edges, Edge{V0: k.a, V1: k.b})
		return idx
	}

	var faces []Face
	for _, rf := range raw {
		idxs := dedupeLoop(vertexLoop(rf.poly, vertexOf))
		if len(idxs) < 3 {
			continue
		}
		faceIdx := len(faces)
		faces = append(faces, Face{PlaneIdx: rf.planeIdx, Vertices: idxs, IsBBox: rf.isBBox})
		n := len(idxs)
		for i := 0; i < n; i++ {
			e := edgeOf(idxs[i], idxs[(i+1)%n])
			edges[e].Faces = append(edges[e].Faces, faceIdx)
		}
	}

	for i := range edges {
		seen := map[int]bool{}
		for _, f := range edges[i].Faces {
			if faces[f].IsBBox {
				continue // sharp requires >=2 distinct supporting planes.
			}
			seen[faces[f].PlaneIdx] = true
		}
		edges[i].Sharp = len(seen) >= 2
	}

	return reorder(&Graph{Vertices: vertices, Edges: edges, Faces: faces})
}

func vertexLoop(poly polygon, vertexOf func(geo.Point) int) []int {
	idxs := make([]int, len(poly))
	for i, p := range poly {
		idxs[i] = vertexOf(p)
	}
	return idxs
}

// dedupeLoop drops consecutive (cyclically) repeated vertex indices,
// collapsing the micro-degeneracies that an exact clip can leave behind
// when a chord passes exactly through an existing vertex.
func dedupeLoop(idxs []int) []int {
	if len(idxs) < 2 {
		return idxs
	}
	out := idxs[:1]
	for _, v := range idxs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// reorder renumbers vertices, edges and faces by a deterministic sort
// key: vertices lexicographically by exact coordinate, edges
// by their (renumbered) endpoint pair, faces by (plane index, smallest
// renumbered index among their boundary vertices).
func reorder(g *Graph) *Graph {
	vOrder := make([]int, len(g.Vertices))
	for i := range vOrder {
		vOrder[i] = i
	}
	sort.Slice(vOrder, func(i, j int) bool {
		return comparePoints(g.Vertices[vOrder[i]], g.Vertices[vOrder[j]]) < 0
	})
	vNew := make([]int, len(g.Vertices)) // old index -> new index
	newVerts := make([]geo.Point, len(g.Vertices))
	for newIdx, oldIdx := range vOrder {
		vNew[oldIdx] = newIdx
		newVerts[newIdx] = g.Vertices[oldIdx]
	}

	newFaces := make([]Face, len(g.Faces))
	faceOrder := make([]int, len(g.Faces))
	for i, f := range g.Faces {
		verts := make([]int, len(f.Vertices))
		for j, v := range f.Vertices {
			verts[j] = vNew[v]
		}
		newFaces[i] = Face{PlaneIdx: f.PlaneIdx, Vertices: verts, IsBBox: f.IsBBox}
		faceOrder[i] = i
	}
	sort.Slice(faceOrder, func(i, j int) bool {
		fi, fj := newFaces[faceOrder[i]], newFaces[faceOrder[j]]
		if fi.PlaneIdx != fj.PlaneIdx {
			return fi.PlaneIdx < fj.PlaneIdx
		}
		return minVertex(fi.Vertices) < minVertex(fj.Vertices)
	})
	fNew := make([]int, len(g.Faces)) // old face index -> new face index
	reorderedFaces := make([]Face, len(g.Faces))
	for newIdx, oldIdx := range faceOrder {
		fNew[oldIdx] = newIdx
		reorderedFaces[newIdx] = newFaces[oldIdx]
	}

	newEdges := make([]Edge, len(g.Edges))
	edgeOrder := make([]int, len(g.Edges))
	for i, e := range g.Edges {
		facesRemapped := make([]int, len(e.Faces))
		for j, f := range e.Faces {
			facesRemapped[j] = fNew[f]
		}
		sort.Ints(facesRemapped)
		newEdges[i] = Edge{V0: vNew[e.V0], V1: vNew[e.V1], Faces: facesRemapped, Sharp: e.Sharp}
		if newEdges[i].V0 > newEdges[i].V1 {
			newEdges[i].V0, newEdges[i].V1 = newEdges[i].V1, newEdges[i].V0
		}
		edgeOrder[i] = i
	}
	sort.Slice(edgeOrder, func(i, j int) bool {
		ei, ej := newEdges[edgeOrder[i]], newEdges[edgeOrder[j]]
		if ei.V0 != ej.V0 {
			return ei.V0 < ej.V0
		}
		return ei.V1 < ej.V1
	})
	reorderedEdges := make([]Edge, len(g.Edges))
	for newIdx, oldIdx := range edgeOrder {
		reorderedEdges[newIdx] = newEdges[oldIdx]
	}

	return &Graph{Vertices: newVerts, Edges: reorderedEdges, Faces: reorderedFaces}
}

func minVertex(verts []int) int {
	m := verts[0]
	for _, v := range verts[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func comparePoints(a, b geo.Point) int {
	if c := a.X.Cmp(b.X); c != 0 {
		return c
	}
	if c := a.Y.Cmp(b.Y); c != 0 {
		return c
	}
	return a.Z.Cmp(b.Z)
}
