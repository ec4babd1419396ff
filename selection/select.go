// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package selection

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gazed/polyfit/hypothesis"
	"github.com/gazed/polyfit/mesh"
)

// Stats reports how a selection went: the optimized objective and its
// three component terms, the size of the chosen face set, and the
// solver's termination status.
type Stats struct {
	Status         Status
	Objective      float64
	FitTerm        float64
	CoverageTerm   float64
	ComplexityTerm float64
	SelectedFaces  int
	SharpEdges     int
}

// Select chooses the subset of g's candidate faces that minimizes the
// weighted objective subject to per-edge manifold equality,
// then assembles the chosen subset into the output mesh. areaTotal is the
// total alpha-shape area across segments (the coverage normalizer);
// solver is any Solver backend, typically BranchBound{}.
//
// An empty graph or an all-zero answer yields an empty mesh and no
// error; an empty result is non-fatal. A solver that
// reports infeasibility (impossible in principle, since x ≡ 0 satisfies
// every constraint) is logged and likewise yields the empty mesh.
func Select(g *hypothesis.Graph, w Weights, areaTotal float64, includeBBox bool,
	solver Solver, timeLimit time.Duration, gap float64) (*mesh.Mesh, Stats, error) {

	if g.IsEmpty() {
		return &mesh.Mesh{}, Stats{Status: StatusOptimal}, nil
	}
	m := Build(g, w, areaTotal, includeBBox, timeLimit, gap)

	res, err := solver.SolveBIP(m.Problem)
	if err != nil {
		return nil, Stats{Status: StatusSolverError}, fmt.Errorf("selection: %w", err)
	}
	if res.Status == StatusSolverError {
		return nil, Stats{Status: res.Status}, fmt.Errorf("selection: solver failed")
	}
	if res.Status == StatusInfeasible {
		slog.Error("selection: solver reported infeasible, returning empty mesh",
			"vars", m.Problem.NumVars(), "constraints", len(m.Problem.Constraints))
		return &mesh.Mesh{}, Stats{Status: res.Status}, nil
	}

	selected := m.Selected(res.X)
	out := assemble(g, selected)

	stats := Stats{
		Status:        res.Status,
		Objective:     res.Objective,
		SelectedFaces: out.NumFaces(),
	}
	fitSum, covSum := 0.0, 0.0
	for i, sel := range selected {
		if !sel {
			continue
		}
		fitSum += g.Faces[i].Support
		covSum += g.Faces[i].Coverage
	}
	stats.FitTerm = 1.0
	if m.SuppTotal > 0 {
		stats.FitTerm = 1 - fitSum/m.SuppTotal
	}
	stats.CoverageTerm = 1.0
	if m.AreaTotal > 0 {
		stats.CoverageTerm = 1 - covSum/m.AreaTotal
	}
	for _, e := range out.Edges {
		if e.Sharp {
			stats.SharpEdges++
		}
	}
	if m.SharpCount > 0 {
		stats.ComplexityTerm = float64(stats.SharpEdges) / float64(m.SharpCount)
	}
	return out, stats, nil
}
