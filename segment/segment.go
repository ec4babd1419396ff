// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package segment is the planar segment model: a set of point samples,
// a supporting plane, a 2D frame embedding the members as planar
// coordinates, and the alpha-shape boundary extractor built on top of
// that frame. It is the first stage of
// PolyFit's data flow, and the only package that touches raw input
// points.
package segment

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gazed/polyfit/math/lin"
)

// Color is an optional per-point or per-segment color. It is never
// consulted by the reconstruction math and is not carried into the
// output mesh or its diagnostics.
type Color struct{ R, G, B float64 }

// Sample is a point in the input cloud: a position, an optional
// normal, and an optional color. Membership in a
// Segment is implicit: a Sample only exists inside the Segment.Points
// slice of the segment it belongs to; an unassigned point is simply one
// that never made it into any Segment.
type Sample struct {
	Pos    lin.V3
	Normal *lin.V3
	Color  *Color
}

// Segment is a planar subset of the input cloud together with its
// supporting plane and the local frame used to embed members in 2D.
type Segment struct {
	Points []Sample
	Plane  lin.Plane

	frame *lin.T // origin on the plane, rotation carries Z onto Plane.Normal.
	Alpha Mesh   // alpha-shape boundary, built by FitAlpha.
}

// New validates and constructs a segment from its member points and
// supporting plane. It enforces the two segment input invariants:
// at least 3 points, and a unit plane normal.
func New(points []Sample, plane lin.Plane) (*Segment, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("segment has %d points, need >= 3: %w", len(points), ErrInvalidSegment)
	}
	n := &plane.Normal
	length := n.Len()
	if !lin.Aeq(length, 1) {
		return nil, fmt.Errorf("plane normal has length %v, want unit: %w", length, ErrInvalidSegment)
	}
	s := &Segment{Points: append([]Sample(nil), points...), Plane: plane}
	s.frame = plane.Frame(s.origin())
	return s, nil
}

// origin picks an arbitrary point on the plane to anchor the 2D frame:
// the centroid of the member points, projected exactly onto the plane so
// Frame's App/Inv round-trip is well-behaved even if input points carry
// small numeric residue off the plane.
func (s *Segment) origin() *lin.V3 {
	var sum lin.V3
	for _, p := range s.Points {
		sum.X += p.Pos.X
		sum.Y += p.Pos.Y
		sum.Z += p.Pos.Z
	}
	n := float64(len(s.Points))
	centroid := lin.V3{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
	return s.Plane.Project(&centroid)
}

// Project2D maps a world-space point into this segment's local 2D frame.
// The point need not lie exactly on the plane (small residue is expected
// on real input); only x, y of the transformed result are kept, giving the
// segment's planar parametrization.
func (s *Segment) Project2D(p lin.V3) lin.V2 {
	v := p // Inv mutates its argument, so pass a copy.
	s.frame.Inv(&v)
	return lin.V2{X: v.X, Y: v.Y}
}

// Lift3D maps a local 2D frame coordinate back into world space, placing
// it exactly on the supporting plane (z=0 in the local frame).
func (s *Segment) Lift3D(p lin.V2) lin.V3 {
	v := lin.V3{X: p.X, Y: p.Y, Z: 0}
	s.frame.App(&v)
	return v
}

// PairedPoints returns each member point's world-space position
// alongside its projection into the segment's local 2D frame,
// index-aligned, for use by package hypothesis's per-face scoring.
func (s *Segment) PairedPoints() (world []lin.V3, frame []lin.V2) {
	world = make([]lin.V3, len(s.Points))
	frame = make([]lin.V2, len(s.Points))
	for i, p := range s.Points {
		world[i] = p.Pos
		frame[i] = s.Project2D(p.Pos)
	}
	return world, frame
}

// PlaneDist returns the unsigned distance from p to the segment's
// supporting plane.
func (s *Segment) PlaneDist(p lin.V3) float64 { return s.Plane.Dist(&p) }

// AlphaMesh returns the segment's alpha-shape boundary, previously
// computed by FitAlpha.
func (s *Segment) AlphaMesh() Mesh { return s.Alpha }

// MeanSpacing returns the mean nearest-neighbor distance among the
// segment's projected 2D points: the d̄ term in the auto-alpha
// policy (α = c·d̄) and in the default residual tolerance (3·spacing).
// It degrades to 0 for fewer than 2 points.
func (s *Segment) MeanSpacing() float64 {
	pts := s.projected()
	if len(pts) < 2 {
		return 0
	}
	sum := 0.0
	for i, p := range pts {
		best := math.Inf(1)
		for j, q := range pts {
			if i == j {
				continue
			}
			d := p.DistSqr(&q)
			if d < best {
				best = d
			}
		}
		sum += math.Sqrt(best)
	}
	return sum / float64(len(pts))
}

func (s *Segment) projected() []lin.V2 {
	out := make([]lin.V2, len(s.Points))
	for i, p := range s.Points {
		out[i] = s.Project2D(p.Pos)
	}
	return out
}

// Merge unions the member points of segments that share the same
// supporting plane (within tolerance): the arrangement treats each
// plane once, so duplicates must coalesce before hypothesis generation
// ever sees them. Segments whose planes differ
// are passed through unchanged. The returned slice is newly constructed;
// the frame of a merged segment is rebuilt from the union's centroid.
func Merge(segs []*Segment) ([]*Segment, error) {
	type bucket struct {
		plane  lin.Plane
		points []Sample
	}
	var buckets []*bucket
	for _, s := range segs {
		found := false
		for _, b := range buckets {
			if sameSupportingPlane(b.plane, s.Plane) {
				b.points = append(b.points, s.Points...)
				found = true
				break
			}
		}
		if !found {
			buckets = append(buckets, &bucket{plane: s.Plane, points: append([]Sample(nil), s.Points...)})
		}
	}
	out := make([]*Segment, 0, len(buckets))
	for _, b := range buckets {
		merged, err := New(b.points, b.plane)
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
	}
	if len(out) < len(segs) {
		slog.Info("segment.Merge coalesced duplicate supporting planes", "before", len(segs), "after", len(out))
	}
	return out, nil
}

func sameSupportingPlane(a, b lin.Plane) bool {
	return a.Normal.Aeq(&b.Normal) && lin.Aeq(a.Offset, b.Offset)
}
