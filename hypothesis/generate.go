// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package hypothesis

import (
	"log/slog"

	"github.com/gazed/polyfit/geo"
	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// Options configures Generate; it is the hypothesis-generator slice of
// the root package's Config, passed through unmodified.
type Options struct {
	BBoxMargin        float64
	AlphaScale        float64
	ResidualTolerance float64
}

// Generate builds the hypothesis graph from a set of merged planar
// segments. Callers are expected to have already merged duplicate
// supporting planes (segment.Merge); if a segment doesn't carry a
// pre-fit alpha-shape, Generate fits one before scoring.
func Generate(segs []*segment.Segment, opts Options) *Graph {
	if len(segs) < 2 {
		slog.Warn("hypothesis.Generate: fewer than 2 supporting planes, empty graph", "segments", len(segs))
		return &Graph{}
	}

	var allPoints []lin.V3
	planes := make([]geo.Plane, len(segs))
	for i, s := range segs {
		for _, p := range s.Points {
			allPoints = append(allPoints, p.Pos)
		}
		planes[i] = geo.PlaneFromFloat(s.Plane.Normal.X, s.Plane.Normal.Y, s.Plane.Normal.Z, s.Plane.Offset)
		if s.Alpha.Empty() {
			s.FitAlpha(autoAlphaFor(s, opts.AlphaScale))
		}
	}

	// All planes pairwise parallel means no arrangement is possible.
	intersecting := false
	for i := 0; i < len(planes) && !intersecting; i++ {
		for j := i + 1; j < len(planes); j++ {
			if _, ok := geo.IntersectPlanePlane(planes[i], planes[j]); ok {
				intersecting = true
				break
			}
		}
	}
	if !intersecting {
		slog.Warn("hypothesis.Generate: all supporting planes parallel, empty graph")
		return &Graph{}
	}

	box := BoundingBox(allPoints, opts.BBoxMargin)
	boxPlanes := box.Planes()

	graph := buildGraph(planes, boxPlanes)
	if graph.IsEmpty() {
		slog.Warn("hypothesis.Generate: arrangement produced zero candidate faces")
		return graph
	}

	eps := opts.ResidualTolerance
	if eps <= 0 {
		eps = 3 * meanSpacing(segs)
	}

	views := make([]segmentView, len(segs))
	for i, s := range segs {
		views[i] = s
	}
	faceVerts2D := func(f Face) []lin.V2 {
		s := segs[f.PlaneIdx]
		out := make([]lin.V2, len(f.Vertices))
		for i, v := range f.Vertices {
			out[i] = s.Project2D(*graph.Vertices[v].ToV3())
		}
		return out
	}
	score(graph, faceVerts2D, views, eps)
	return graph
}

func autoAlphaFor(s *segment.Segment, scale float64) float64 {
	if scale <= 0 {
		scale = 5.0
	}
	return scale * s.MeanSpacing()
}

func meanSpacing(segs []*segment.Segment) float64 {
	if len(segs) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range segs {
		sum += s.MeanSpacing()
	}
	avg := sum / float64(len(segs))
	if avg == 0 {
		return 1 // degenerate fallback so eps never collapses to 0.
	}
	return avg
}
