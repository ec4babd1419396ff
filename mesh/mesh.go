// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package mesh holds the output data model that package selection
// assembles from the chosen candidate faces and that package polyfit
// returns. Package hypothesis keeps its own Face and Edge types and does
// not use this package. Entities are kept in flat arrays that refer to
// each other by index.
package mesh

import "github.com/gazed/polyfit/math/lin"

// Vertex is a point in the output mesh's vertex list, already converted
// to float64 via the exact kernel's documented conversion boundary.
type Vertex struct {
	Pos lin.V3
}

// Face is a polygon in the output mesh: an ordered loop of indices into
// the mesh's vertex list, consistently wound.
type Face struct {
	Vertices []int
	PlaneIdx int // index of the supporting plane this face lies on.
}

// Edge is a boundary segment of the output mesh between two vertices,
// annotated with whether it is a sharp edge (its two incident selected
// faces lie on different supporting planes).
type Edge struct {
	V0, V1 int
	Sharp  bool
}

// Mesh is the polyhedral output: a flat vertex list and a flat face list,
// plus the edges materialized at selection time.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
	Edges    []Edge
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumEdges returns the number of edges in the mesh.
func (m *Mesh) NumEdges() int { return len(m.Edges) }

// IsEmpty reports whether the mesh has no faces. An empty mesh is a valid
// (if uninteresting) result.
func (m *Mesh) IsEmpty() bool { return len(m.Faces) == 0 }
