// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log"
	"math"

	"github.com/gazed/polyfit"
	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// th reconstructs a tetrahedron from four triangular planar samples,
// exercising non-axis-aligned planes and a closed non-box topology.
func th() {
	inv := 1 / math.Sqrt(3)
	corners := [4]lin.V3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	faces := []struct {
		plane   lin.Plane
		a, b, c lin.V3
	}{
		{lin.NewPlane(0, 0, -1, 0), corners[0], corners[1], corners[2]},
		{lin.NewPlane(0, -1, 0, 0), corners[0], corners[1], corners[3]},
		{lin.NewPlane(-1, 0, 0, 0), corners[0], corners[2], corners[3]},
		{lin.NewPlane(inv, inv, inv, -inv), corners[1], corners[2], corners[3]},
	}

	var segs []*segment.Segment
	const steps = 14
	for _, f := range faces {
		var pts []segment.Sample
		for i := 1; i < steps; i++ {
			for j := 1; j < steps-i; j++ {
				wa := float64(i) / steps
				wb := float64(j) / steps
				wc := 1 - wa - wb
				pts = append(pts, segment.Sample{Pos: lin.V3{
					X: wa*f.a.X + wb*f.b.X + wc*f.c.X,
					Y: wa*f.a.Y + wb*f.b.Y + wc*f.c.Y,
					Z: wa*f.a.Z + wb*f.b.Z + wc*f.c.Z,
				}})
			}
		}
		s, err := segment.New(pts, f.plane)
		if err != nil {
			log.Fatalf("th: %s", err)
		}
		segs = append(segs, s)
	}

	m, diag, err := polyfit.Reconstruct(segs, polyfit.DefaultConfig())
	if err != nil {
		log.Fatalf("th: %s", err)
	}
	dump(m, diag)
}
