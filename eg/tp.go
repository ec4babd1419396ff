// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log"

	"github.com/gazed/polyfit"
	"github.com/gazed/polyfit/math/lin"
	"github.com/gazed/polyfit/segment"
)

// tp reconstructs the simplest non-trivial case: two perpendicular
// planes with square point support, expected to join along one sharp
// crease.
func tp() {
	grid := func(vertical bool) []segment.Sample {
		var pts []segment.Sample
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				u := 0.1 + 0.8*float64(i)/7
				v := 0.1 + 0.8*float64(j)/7
				if vertical {
					pts = append(pts, segment.Sample{Pos: lin.V3{X: 0, Y: u, Z: v}})
				} else {
					pts = append(pts, segment.Sample{Pos: lin.V3{X: u, Y: v, Z: 0}})
				}
			}
		}
		return pts
	}

	floor, err := segment.New(grid(false), lin.NewPlane(0, 0, 1, 0))
	if err != nil {
		log.Fatalf("tp: %s", err)
	}
	wall, err := segment.New(grid(true), lin.NewPlane(1, 0, 0, 0))
	if err != nil {
		log.Fatalf("tp: %s", err)
	}

	m, diag, err := polyfit.Reconstruct([]*segment.Segment{floor, wall}, polyfit.DefaultConfig())
	if err != nil {
		log.Fatalf("tp: %s", err)
	}
	dump(m, diag)
}
