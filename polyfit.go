// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package polyfit reconstructs lightweight, watertight, piecewise-planar
// polygonal surfaces from point clouds whose planar primitives have
// already been detected. The input is a set of planar segments, each a
// point subset with its supporting plane; the output is a polyhedral
// mesh whose faces are chosen from the arrangement of those planes by a
// binary linear program balancing data fit, model complexity, and point
// coverage.
//
// The pipeline runs in two stages. Hypothesis generation (package
// hypothesis) intersects every supporting plane with every other and
// with a bounding box, producing a finite set of candidate faces with
// per-face evidence scores. Face selection (package selection) encodes
// those candidates as a 0/1 program with per-edge manifold constraints
// and hands it to a pluggable MIP solver. Reconstruct sequences the two
// and returns the mesh plus diagnostics.
package polyfit

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gazed/polyfit/hypothesis"
	"github.com/gazed/polyfit/mesh"
	"github.com/gazed/polyfit/segment"
	"github.com/gazed/polyfit/selection"
)

// Diagnostics reports what a reconstruction did: the optimized objective
// and its component terms, the size of the selected face set, the
// solver's termination status, and elapsed wall-clock time.
type Diagnostics struct {
	Objective      float64
	FitTerm        float64
	CoverageTerm   float64
	ComplexityTerm float64
	SelectedFaces  int
	SolverStatus   string
	Elapsed        time.Duration

	// Note is non-empty for the non-fatal empty-result condition: the
	// hypothesis graph was empty or the solver selected no
	// faces. The returned mesh is then empty but valid.
	Note string
}

// Reconstruct runs the full pipeline over the input segments with the
// reference branch-and-bound solver. It is the single synchronous entry
// point: validate input → per-segment alpha-shape →
// hypothesis generation → scoring → program solve → mesh assembly.
//
// The call is transactional: the caller's segments are never mutated
// (duplicate-plane merging and alpha-shape fitting operate on internal
// copies), and on error no partial result is returned.
func Reconstruct(segs []*segment.Segment, cfg Config) (*mesh.Mesh, Diagnostics, error) {
	return ReconstructWith(segs, cfg, selection.BranchBound{})
}

// ReconstructWith is Reconstruct with a caller-supplied solver
// backend in place of the built-in branch-and-bound.
func ReconstructWith(segs []*segment.Segment, cfg Config, solver selection.Solver) (*mesh.Mesh, Diagnostics, error) {
	start := time.Now()
	if solver == nil {
		return nil, Diagnostics{}, fmt.Errorf("nil solver backend: %w", ErrSolverUnavailable)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Diagnostics{}, err
	}
	if len(segs) < 1 {
		return nil, Diagnostics{}, fmt.Errorf("no input segments: %w", ErrInvalidInput)
	}

	// Duplicate supporting planes are merged at entry so the arrangement
	// treats each plane once. Merge rebuilds every segment, so alpha
	// fitting downstream never touches the caller's data.
	merged, err := segment.Merge(segs)
	if err != nil {
		if errors.Is(err, segment.ErrInvalidSegment) {
			return nil, Diagnostics{}, fmt.Errorf("%v: %w", err, ErrInvalidInput)
		}
		return nil, Diagnostics{}, err
	}

	if degenerateExtent(merged) {
		return nil, Diagnostics{}, fmt.Errorf("input points span no volume: %w", ErrGeometryFailure)
	}

	graph := hypothesis.Generate(merged, hypothesis.Options{
		BBoxMargin:        cfg.BBoxMargin,
		AlphaScale:        cfg.AlphaScale,
		ResidualTolerance: cfg.ResidualTolerance,
	})
	if graph.IsEmpty() {
		return &mesh.Mesh{}, Diagnostics{
			SolverStatus: selection.StatusOptimal.String(),
			Elapsed:      time.Since(start),
			Note:         "hypothesis graph is empty: fewer than two non-parallel supporting planes",
		}, nil
	}

	areaTotal := 0.0
	for _, s := range merged {
		areaTotal += s.Alpha.Area()
	}

	weights := selection.Weights{
		Fit:        cfg.FitWeight,
		Coverage:   cfg.CoverageWeight,
		Complexity: cfg.ComplexityWeight,
	}
	timeLimit := time.Duration(cfg.SolverTimeLimitSeconds * float64(time.Second))
	out, stats, err := selection.Select(graph, weights, areaTotal,
		cfg.IncludeBBoxFaces, solver, timeLimit, cfg.SolverGap)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("%v: %w", err, ErrSolverError)
	}

	diag := Diagnostics{
		Objective:      stats.Objective,
		FitTerm:        stats.FitTerm,
		CoverageTerm:   stats.CoverageTerm,
		ComplexityTerm: stats.ComplexityTerm,
		SelectedFaces:  stats.SelectedFaces,
		SolverStatus:   stats.Status.String(),
		Elapsed:        time.Since(start),
	}
	if out.IsEmpty() {
		diag.Note = "solver selected no faces"
		slog.Info("polyfit.Reconstruct produced an empty mesh",
			"faces", len(graph.Faces), "status", diag.SolverStatus)
	}
	return out, diag, nil
}

// degenerateExtent reports whether the input points collapse to a single
// location, in which case no bounding region or arrangement exists and
// the geometry kernel cannot proceed.
func degenerateExtent(segs []*segment.Segment) bool {
	var pts int
	box := hypothesis.Box{}
	first := true
	for _, s := range segs {
		for _, p := range s.Points {
			pts++
			if first {
				box.Min, box.Max = p.Pos, p.Pos
				first = false
				continue
			}
			if p.Pos.X < box.Min.X {
				box.Min.X = p.Pos.X
			}
			if p.Pos.Y < box.Min.Y {
				box.Min.Y = p.Pos.Y
			}
			if p.Pos.Z < box.Min.Z {
				box.Min.Z = p.Pos.Z
			}
			if p.Pos.X > box.Max.X {
				box.Max.X = p.Pos.X
			}
			if p.Pos.Y > box.Max.Y {
				box.Max.Y = p.Pos.Y
			}
			if p.Pos.Z > box.Max.Z {
				box.Max.Z = p.Pos.Z
			}
		}
	}
	return pts == 0 || box.Diagonal() == 0
}
