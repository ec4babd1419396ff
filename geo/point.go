// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package geo is the exact half of PolyFit's geometry kernel: rational
// points and planes, plane-plane-plane intersection, and half-space
// polygon clipping, all carried out over math/big.Rat so that arrangement
// construction never accumulates floating point error. Package lin is the
// inexact half, used once the hypothesis graph is built and scoring,
// alpha-shapes, and rendering take over. Converting a geo value to lin is
// always explicit (the V3/Plane "To..." methods here); nothing in this
// package silently truncates to float64.
package geo

import "math/big"

// Point is an exact point in ℝ³. Every candidate-face vertex in the
// hypothesis graph is a Point: either the intersection of three supporting
// planes or a point on the bounding box, both computed without rounding.
type Point struct {
	X, Y, Z *big.Rat
}

// NewPoint returns the exact point (x, y, z).
func NewPoint(x, y, z *big.Rat) Point { return Point{X: x, Y: y, Z: z} }

// PointFromFloat converts float64 coordinates into an exact point. Used at
// the boundary of the hypothesis generator only, where the bounding box is
// derived from float input point coordinates; everything past that boundary
// stays exact until a face is scored.
func PointFromFloat(x, y, z float64) Point {
	return Point{
		X: new(big.Rat).SetFloat64(x),
		Y: new(big.Rat).SetFloat64(y),
		Z: new(big.Rat).SetFloat64(z),
	}
}

// Eq reports whether p and q denote the same exact point.
func (p Point) Eq(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 && p.Z.Cmp(q.Z) == 0
}

// Key returns a canonical, comparable string identifying p. Two points
// that are exactly equal always produce the same key, and only such
// points do. This is the hash/equality over exact rationals that the
// hypothesis graph's edge and vertex deduplication relies on.
func (p Point) Key() string {
	return p.X.RatString() + "|" + p.Y.RatString() + "|" + p.Z.RatString()
}

// Sub returns the exact vector p - q.
func (p Point) Sub(q Point) Vector {
	return Vector{
		X: new(big.Rat).Sub(p.X, q.X),
		Y: new(big.Rat).Sub(p.Y, q.Y),
		Z: new(big.Rat).Sub(p.Z, q.Z),
	}
}

// Add returns the exact point p + v.
func (p Point) Add(v Vector) Point {
	return Point{
		X: new(big.Rat).Add(p.X, v.X),
		Y: new(big.Rat).Add(p.Y, v.Y),
		Z: new(big.Rat).Add(p.Z, v.Z),
	}
}

// Vector is an exact direction/displacement in ℝ³.
type Vector struct {
	X, Y, Z *big.Rat
}

// Scale returns v scaled by the exact rational s.
func (v Vector) Scale(s *big.Rat) Vector {
	return Vector{
		X: new(big.Rat).Mul(v.X, s),
		Y: new(big.Rat).Mul(v.Y, s),
		Z: new(big.Rat).Mul(v.Z, s),
	}
}

// Dot returns the exact dot product of v and w.
func (v Vector) Dot(w Vector) *big.Rat {
	sum := new(big.Rat).Mul(v.X, w.X)
	sum.Add(sum, new(big.Rat).Mul(v.Y, w.Y))
	sum.Add(sum, new(big.Rat).Mul(v.Z, w.Z))
	return sum
}

// Cross returns the exact cross product v × w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: new(big.Rat).Sub(new(big.Rat).Mul(v.Y, w.Z), new(big.Rat).Mul(v.Z, w.Y)),
		Y: new(big.Rat).Sub(new(big.Rat).Mul(v.Z, w.X), new(big.Rat).Mul(v.X, w.Z)),
		Z: new(big.Rat).Sub(new(big.Rat).Mul(v.X, w.Y), new(big.Rat).Mul(v.Y, w.X)),
	}
}

// IsZero reports whether v is the exact zero vector.
func (v Vector) IsZero() bool {
	return v.X.Sign() == 0 && v.Y.Sign() == 0 && v.Z.Sign() == 0
}
