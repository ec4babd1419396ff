// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package eg is used to test and demonstrate different aspects of the
// polyfit surface reconstruction library. Examples are used both to
// showcase a particular capability and to act as high level test cases.
// The examples are run using:
//
//	eg [example name]
//
// Invoking eg without parameters will list the examples that can be run.
// Each example builds a synthetic planar point cloud, reconstructs a
// surface from it, and dumps the resulting mesh and diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/gazed/polyfit"
	"github.com/gazed/polyfit/mesh"
)

// example combines example code with descriptions.
type example struct {
	tag         string // Example identifier.
	description string // Short description of the example.
	function    func() // Function to run the example.
}

// Launch the requested example or list available examples.
// Examples are roughly ordered from simple/basic at the top of the list
// to more complex/interesting at the bottom of the list.
func main() {
	examples := []example{
		{"tp", "tp: Two Planes, One Crease", tp},
		{"cb", "cb: Closed Cube", cb},
		{"ob", "ob: Open Box", ob},
		{"th", "th: Tetrahedron", th},
		{"nb", "nb: Noisy Box", nb},
	}

	// run the first matching example.
	for _, arg := range os.Args {
		for _, eg := range examples {
			if arg == eg.tag {
				eg.function()
				os.Exit(0)
			}
		}
	}

	// print usage if nothing was run.
	fmt.Printf("Usage: eg [example]\n")
	fmt.Printf("Examples are:\n")
	for _, example := range examples {
		fmt.Printf("   %s \n", example.description)
	}
}

// dump prints a reconstructed mesh and its diagnostics in a form all
// the examples share.
func dump(m *mesh.Mesh, diag polyfit.Diagnostics) {
	fmt.Printf("faces:%d edges:%d vertices:%d\n",
		m.NumFaces(), m.NumEdges(), m.NumVertices())
	fmt.Printf("objective:%.4f fit:%.4f coverage:%.4f complexity:%.4f\n",
		diag.Objective, diag.FitTerm, diag.CoverageTerm, diag.ComplexityTerm)
	fmt.Printf("solver:%s elapsed:%s\n", diag.SolverStatus, diag.Elapsed)
	if diag.Note != "" {
		fmt.Printf("note: %s\n", diag.Note)
	}
	for i, f := range m.Faces {
		fmt.Printf("  face %d plane %d:", i, f.PlaneIdx)
		for _, v := range f.Vertices {
			p := m.Vertices[v].Pos
			fmt.Printf(" (%.2f %.2f %.2f)", p.X, p.Y, p.Z)
		}
		fmt.Println()
	}
}
