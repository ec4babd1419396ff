// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "log/slog"

// Polygon clipping generalizes physics/clipping.go's sutherland_hodgman:
// the same ping-pong-between-two-slices algorithm, the same per-edge
// in/out classification, but against exact half-spaces instead of float
// planes, since every candidate face boundary must be built without
// rounding.

// ClipPolygonHalfspace clips the convex polygon poly (given as an ordered
// boundary loop) to the half-space in front of plane pl (Side(q) >= 0),
// returning the clipped polygon. An empty result means poly lies entirely
// behind pl.
func ClipPolygonHalfspace(poly []Point, pl Plane) []Point {
	if len(poly) == 0 {
		slog.Warn("geo.ClipPolygonHalfspace called with empty polygon")
		return nil
	}

	var out []Point
	start := poly[len(poly)-1]
	startIn := pl.Side(start) >= 0
	for _, end := range poly {
		endIn := pl.Side(end) >= 0
		switch {
		case startIn && endIn:
			out = append(out, end)
		case startIn && !endIn:
			if x, ok := edgePlaneIntersection(start, end, pl); ok {
				out = append(out, x)
			}
		case !startIn && endIn:
			if x, ok := edgePlaneIntersection(start, end, pl); ok {
				out = append(out, x)
			}
			out = append(out, end)
		}
		start, startIn = end, endIn
	}
	return out
}

// ClipPolygonConvex clips poly against every plane in bounds, each
// interpreted as a half-space boundary (Side(q) >= 0 is "inside"). This is
// how a supporting plane's initial bounding-box face Pᵢ is built: start
// from the box's own boundary loop (or an unbounded placeholder) and clip
// against each of the box's six faces in turn.
func ClipPolygonConvex(poly []Point, bounds []Plane) []Point {
	for _, pl := range bounds {
		if len(poly) == 0 {
			break
		}
		poly = ClipPolygonHalfspace(poly, pl)
	}
	return poly
}

// edgePlaneIntersection returns the exact point where segment [start, end]
// crosses the boundary of half-space pl, given that the two endpoints lie
// on opposite sides of it.
func edgePlaneIntersection(start, end Point, pl Plane) (Point, bool) {
	ln := Line{Point: start, Dir: end.Sub(start)}
	return IntersectLineHalfspaceBoundary(ln, pl)
}
