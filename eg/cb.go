// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log"
	"math/rand"

	"github.com/gazed/polyfit"
	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// cb reconstructs a closed unit cube from six planar point grids, the
// canonical polyfit smoke test: the answer should be exactly 6 faces,
// 12 sharp edges and 8 corner vertices.
func cb() {
	segs := cubeFaces(10, 0, nil)
	m, diag, err := polyfit.Reconstruct(segs, polyfit.DefaultConfig())
	if err != nil {
		log.Fatalf("cb: %s", err)
	}
	dump(m, diag)
}

// cubeNormals are the outward face normals of a unit cube at the origin.
var cubeNormals = [][3]float64{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// cubeFaces samples each face of the unit cube with an n x n point
// grid. skip drops faces by normal index; rng, when non-nil, perturbs
// every coordinate with gaussian noise sigma.
func cubeFaces(n int, sigma float64, rng *rand.Rand, skip ...int) []*segment.Segment {
	var segs []*segment.Segment
	for fi, nm := range cubeNormals {
		dropped := false
		for _, s := range skip {
			if s == fi {
				dropped = true
			}
		}
		if dropped {
			continue
		}

		var pts []segment.Sample
		step := 0.9 / float64(n-1)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				u := -0.45 + float64(i)*step
				v := -0.45 + float64(j)*step
				var p lin.V3
				switch {
				case nm[0] != 0:
					p = lin.V3{X: 0.5 * nm[0], Y: u, Z: v}
				case nm[1] != 0:
					p = lin.V3{X: u, Y: 0.5 * nm[1], Z: v}
				default:
					p = lin.V3{X: u, Y: v, Z: 0.5 * nm[2]}
				}
				if rng != nil {
					p.X += rng.NormFloat64() * sigma
					p.Y += rng.NormFloat64() * sigma
					p.Z += rng.NormFloat64() * sigma
				}
				pts = append(pts, segment.Sample{Pos: p})
			}
		}
		s, err := segment.New(pts, lin.NewPlane(nm[0], nm[1], nm[2], -0.5))
		if err != nil {
			log.Fatalf("cube face: %s", err)
		}
		segs = append(segs, s)
	}
	return segs
}
