// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log"

	"github.com/gazed/polyfit"
)

// ob reconstructs the unit cube with its top face unsampled. With
// bounding-box faces forbidden (the default) the result is a 5-face
// open box; flipping IncludeBBoxFaces lets the optimizer decide whether
// closing the lid with a bounding-box face is worth the extra edges.
func ob() {
	segs := cubeFaces(10, 0, nil, 4) // skip the +z face
	cfg := polyfit.DefaultConfig()
	m, diag, err := polyfit.Reconstruct(segs, cfg)
	if err != nil {
		log.Fatalf("ob: %s", err)
	}
	dump(m, diag)

	cfg.IncludeBBoxFaces = true
	m, diag, err = polyfit.Reconstruct(segs, cfg)
	if err != nil {
		log.Fatalf("ob: %s", err)
	}
	dump(m, diag)
}
