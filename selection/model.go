// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package selection

import (
	"time"

	"github.com/gazed/polyfit/hypothesis"
)

// Weights are the three objective weights of the selection program.
// They must sum
// to 1; the root package validates this before a model is ever built.
type Weights struct {
	Fit        float64
	Coverage   float64
	Complexity float64
}

// Model is the BIP encoding of a hypothesis graph: the Problem handed to
// the solver plus the variable layout needed to decode its answer.
//
// Variable layout: one x_f per candidate face first, then one z_e
// (manifold-equality auxiliary) and one y_e (sharp indicator) per
// sharp-candidate edge. ZVar and YVar map an edge index to its column,
// -1 for bounding-box edges.
//
// The manifold equality Σ x_f − 2 z_e = 0 is emitted for sharp-candidate
// edges, those whose incident faces span at least two distinct
// supporting planes. Bounding-box edges (faces on one supporting plane
// only) are left unconstrained: they are where
// an open surface legitimately ends, and constraining them would make
// every open reconstruction infeasible rather than merely unclosed.
type Model struct {
	Problem  *Problem
	NumFaces int
	ZVar     []int
	YVar     []int

	// SuppTotal and AreaTotal are the objective normalizers:
	// Σ supp(f) over all faces, and the total alpha-shape area across
	// segments. SharpCount is |sharp edge candidates|.
	SuppTotal  float64
	AreaTotal  float64
	SharpCount int
}

// Build encodes graph g with weights w as a binary program.
// areaTotal is the total area of the alpha-shape meshes across all
// segments, the coverage normalizer. includeBBox false forces every
// bounding-box face variable to 0, producing an open
// surface when the input doesn't close on its own.
func Build(g *hypothesis.Graph, w Weights, areaTotal float64, includeBBox bool, timeLimit time.Duration, gap float64) *Model {
	nf := len(g.Faces)
	ne := len(g.Edges)

	suppTotal := 0.0
	for _, f := range g.Faces {
		suppTotal += f.Support
	}
	sharpCount := 0
	zVar := make([]int, ne)
	yVar := make([]int, ne)
	for i, e := range g.Edges {
		zVar[i], yVar[i] = -1, -1
		if e.Sharp {
			zVar[i] = nf + 2*sharpCount
			yVar[i] = nf + 2*sharpCount + 1
			sharpCount++
		}
	}
	nv := nf + 2*sharpCount

	obj := make([]float64, nv)
	kinds := make([]VarKind, nv)
	for i := range kinds {
		kinds[i] = Binary
	}
	for i, f := range g.Faces {
		if suppTotal > 0 {
			obj[i] -= w.Fit * f.Support / suppTotal
		}
		if areaTotal > 0 {
			obj[i] -= w.Coverage * f.Coverage / areaTotal
		}
	}
	for _, y := range yVar {
		if y >= 0 {
			obj[y] = w.Complexity / float64(sharpCount)
		}
	}

	var cons []Constraint

	// Hard manifold equality per sharp-candidate edge:
	// Σ x_f − 2 z_e = 0, so each such edge sees 0 or exactly 2 selected
	// faces.
	for i, e := range g.Edges {
		if zVar[i] < 0 {
			continue
		}
		cols := make([]int, 0, len(e.Faces)+1)
		coefs := make([]float64, 0, len(e.Faces)+1)
		for _, f := range e.Faces {
			cols = append(cols, f)
			coefs = append(coefs, 1)
		}
		cols = append(cols, zVar[i])
		coefs = append(coefs, -2)
		cons = append(cons, Constraint{Cols: cols, Coefs: coefs, Sense: EQ, RHS: 0})
	}

	// Sharp-edge linearization: for every pair of
	// incident faces on distinct supporting planes, x_i + x_j − y_e <= 1.
	// Minimization keeps y_e at 0 unless such a pair is selected, so
	// y_e = 1 iff the edge's two selected faces lie on different planes.
	for i, e := range g.Edges {
		y := yVar[i]
		if y < 0 {
			continue
		}
		for a := 0; a < len(e.Faces); a++ {
			for b := a + 1; b < len(e.Faces); b++ {
				fa, fb := g.Faces[e.Faces[a]], g.Faces[e.Faces[b]]
				if fa.IsBBox || fb.IsBBox || fa.PlaneIdx == fb.PlaneIdx {
					continue
				}
				cons = append(cons, Constraint{
					Cols:  []int{e.Faces[a], e.Faces[b], y},
					Coefs: []float64{1, 1, -1},
					Sense: LE,
					RHS:   1,
				})
			}
		}
	}

	// Forbid bounding-box faces unless the caller opted in.
	if !includeBBox {
		for i, f := range g.Faces {
			if f.IsBBox {
				cons = append(cons, Constraint{Cols: []int{i}, Coefs: []float64{1}, Sense: EQ, RHS: 0})
			}
		}
	}

	return &Model{
		Problem: &Problem{
			Objective:   obj,
			Constant:    w.Fit + w.Coverage,
			Constraints: cons,
			Kinds:       kinds,
			TimeLimit:   timeLimit,
			Gap:         gap,
		},
		NumFaces:   nf,
		ZVar:       zVar,
		YVar:       yVar,
		SuppTotal:  suppTotal,
		AreaTotal:  areaTotal,
		SharpCount: sharpCount,
	}
}

// Selected decodes a solver assignment into the chosen face set.
func (m *Model) Selected(x []float64) []bool {
	out := make([]bool, m.NumFaces)
	for i := range out {
		out[i] = x[i] > 0.5
	}
	return out
}
