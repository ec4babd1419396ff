// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// V2 is a 2 element vector. PolyFit uses it for points and directions
// inside a planar segment's local 2D frame: once a segment's 3D inlier
// points are projected through a T/Q frame onto their supporting plane,
// everything downstream (Delaunay triangulation, alpha-shape boundary
// extraction) stays in this 2D space until the result is lifted back to
// 3D with T.App. Modelled on V3's method set, trimmed to what 2D work
// needs.
type V2 struct {
	X float64
	Y float64
}

// Eq (==) returns true if each element in v has the same value as the
// corresponding element in a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if each element in v is close
// enough to the corresponding element in a that the difference doesn't matter.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// Set (=, copy, clone) sets the elements of v to the elements of a.
// The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Add (+) adds vectors a and b storing the result in v.
// The updated vector v is returned.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Sub (-) subtracts vector b from a storing the result in v.
// The updated vector v is returned.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Scale (*=) updates v to be a scaled by the given scalar s.
// The updated vector v is returned.
func (v *V2) Scale(a *V2, s float64) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Dot returns the dot product of v and a. Both are unchanged.
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Len returns the length of v. v is unchanged.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v. v is unchanged.
func (v *V2) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between points v and a. Both are unchanged.
func (v *V2) Dist(a *V2) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the squared distance between points v and a.
func (v *V2) DistSqr(a *V2) float64 {
	dx, dy := a.X-v.X, a.Y-v.Y
	return dx*dx + dy*dy
}

// Unit updates v so its length is 1. v is unchanged if its length is zero.
// The updated vector v is returned.
func (v *V2) Unit() *V2 {
	length := v.Len()
	if length != 0 {
		inv := 1 / length
		v.X, v.Y = v.X*inv, v.Y*inv
	}
	return v
}

// Cross returns the scalar (2D, z-component-only) cross product of v and a.
// A positive result means a is counter-clockwise from v; used throughout
// the alpha-shape code for orientation and in-circle style tests.
func (v *V2) Cross(a *V2) float64 { return v.X*a.Y - v.Y*a.X }

// Lerp updates v to be the linear interpolation between a and b at the
// given fraction. The updated vector v is returned.
func (v *V2) Lerp(a, b *V2, fraction float64) *V2 {
	v.X = (b.X-a.X)*fraction + a.X
	v.Y = (b.Y-a.Y)*fraction + a.Y
	return v
}

// NewV2 creates a new, all zero, 2D vector.
func NewV2() *V2 { return &V2{} }

// NewV2S creates a new 2D vector using the given scalars.
func NewV2S(x, y float64) *V2 { return &V2{x, y} }
