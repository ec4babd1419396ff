// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log"
	"math/rand"

	"github.com/gazed/polyfit"
)

// nb reconstructs a unit box from noisy samples (gaussian sigma 0.01),
// showing the residual-tolerance scoring absorbing measurement noise.
func nb() {
	rng := rand.New(rand.NewSource(7))
	segs := cubeFaces(10, 0.01, rng)
	m, diag, err := polyfit.Reconstruct(segs, polyfit.DefaultConfig())
	if err != nil {
		log.Fatalf("nb: %s", err)
	}
	dump(m, diag)
}
