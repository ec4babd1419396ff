// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package hypothesis is the hypothesis generator: it intersects every
// supporting plane with every other and with a bounding
// convex region, subdivides each plane into a planar arrangement of
// candidate faces, assembles face/edge/vertex adjacency, and scores each
// face's data-fit and coverage. Its output, a Graph, is handed unmutated
// to package selection.
package hypothesis

import (
	"math/big"

	"github.com/gazed/polyfit/geo"
	"github.com/gazed/polyfit/math/lin"
)

// Box is the axis-aligned bounding region B of the arrangement: it
// encloses every input point, inflated by a configurable margin.
type Box struct {
	Min, Max lin.V3
}

// BoundingBox computes Box from a set of world-space points, inflated by
// margin given as a fraction of the box diagonal (default 5%).
func BoundingBox(points []lin.V3, margin float64) Box {
	if len(points) == 0 {
		return Box{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	diag := max.Dist(&min)
	pad := diag * margin
	min = lin.V3{X: min.X - pad, Y: min.Y - pad, Z: min.Z - pad}
	max = lin.V3{X: max.X + pad, Y: max.Y + pad, Z: max.Z + pad}
	return Box{Min: min, Max: max}
}

// Diagonal returns the Euclidean length of the box's diagonal.
func (b Box) Diagonal() float64 { return b.Max.Dist(&b.Min) }

// Planes returns the box's 6 faces as exact half-spaces whose interior
// (Side(q) >= 0) is the inside of the box, in the orientation
// geo.ClipPolygonConvex expects.
func (b Box) Planes() []geo.Plane {
	one := big.NewRat(1, 1)
	negOne := big.NewRat(-1, 1)
	zero := big.NewRat(0, 1)
	minX, maxX := big.NewRat(0, 1).SetFloat64(b.Min.X), big.NewRat(0, 1).SetFloat64(b.Max.X)
	minY, maxY := big.NewRat(0, 1).SetFloat64(b.Min.Y), big.NewRat(0, 1).SetFloat64(b.Max.Y)
	minZ, maxZ := big.NewRat(0, 1).SetFloat64(b.Min.Z), big.NewRat(0, 1).SetFloat64(b.Max.Z)
	return []geo.Plane{
		// x >= minX  <=>  x - minX >= 0
		geo.NewPlane(one, zero, zero, new(big.Rat).Neg(minX)),
		// maxX - x >= 0
		geo.NewPlane(negOne, zero, zero, new(big.Rat).Set(maxX)),
		geo.NewPlane(zero, one, zero, new(big.Rat).Neg(minY)),
		geo.NewPlane(zero, negOne, zero, new(big.Rat).Set(maxY)),
		geo.NewPlane(zero, zero, one, new(big.Rat).Neg(minZ)),
		geo.NewPlane(zero, zero, negOne, new(big.Rat).Set(maxZ)),
	}
}

// Corners returns the 8 exact corners of the box. The arrangement does
// not call it: bounding-box vertices come from clipping against Planes.
func (b Box) Corners() []geo.Point {
	xs := [2]float64{b.Min.X, b.Max.X}
	ys := [2]float64{b.Min.Y, b.Max.Y}
	zs := [2]float64{b.Min.Z, b.Max.Z}
	var out []geo.Point
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out = append(out, geo.PointFromFloat(x, y, z))
			}
		}
	}
	return out
}
