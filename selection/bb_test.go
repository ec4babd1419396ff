// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package selection

import (
	"math"
	"testing"
)

func binaryKinds(n int) []VarKind {
	out := make([]VarKind, n)
	for i := range out {
		out[i] = Binary
	}
	return out
}

// With no constraints the solver must set exactly the variables with
// negative objective coefficients.
func TestBranchBoundUnconstrained(t *testing.T) {
	p := &Problem{
		Objective: []float64{-1, 0.5, -0.25},
		Kinds:     binaryKinds(3),
	}
	res, err := BranchBound{}.SolveBIP(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusOptimal {
		t.Fatalf("status got %v want optimal", res.Status)
	}
	want := []float64{1, 0, 1}
	for i, v := range want {
		if res.X[i] != v {
			t.Errorf("x[%d] got %g want %g", i, res.X[i], v)
		}
	}
	if math.Abs(res.Objective-(-1.25)) > 1e-9 {
		t.Errorf("objective got %g want -1.25", res.Objective)
	}
}

// The manifold pairing constraint x0 + x1 - 2z = 0 must force the two
// profitable faces to be taken together or not at all.
func TestBranchBoundPairing(t *testing.T) {
	p := &Problem{
		Objective: []float64{-1, -0.5, 0},
		Kinds:     binaryKinds(3),
		Constraints: []Constraint{
			{Cols: []int{0, 1, 2}, Coefs: []float64{1, 1, -2}, Sense: EQ, RHS: 0},
		},
	}
	res, err := BranchBound{}.SolveBIP(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.X[0] != 1 || res.X[1] != 1 || res.X[2] != 1 {
		t.Errorf("got x=%v want [1 1 1]", res.X)
	}
}

// When one of a pair is unprofitable enough, the equality must force
// both to zero rather than selecting the profitable one alone.
func TestBranchBoundPairingDeclined(t *testing.T) {
	p := &Problem{
		Objective: []float64{-1, 3, 0},
		Kinds:     binaryKinds(3),
		Constraints: []Constraint{
			{Cols: []int{0, 1, 2}, Coefs: []float64{1, 1, -2}, Sense: EQ, RHS: 0},
		},
	}
	res, err := BranchBound{}.SolveBIP(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.X[0] != 0 || res.X[1] != 0 {
		t.Errorf("got x=%v want the zero assignment", res.X)
	}
	if res.Objective != 0 {
		t.Errorf("objective got %g want 0", res.Objective)
	}
}

// The sharp-edge linearization x0 + x1 - y <= 1 must force y up only
// when both faces are chosen.
func TestBranchBoundSharpLink(t *testing.T) {
	p := &Problem{
		Objective: []float64{-1, -1, 0.5},
		Kinds:     binaryKinds(3),
		Constraints: []Constraint{
			{Cols: []int{0, 1, 2}, Coefs: []float64{1, 1, -1}, Sense: LE, RHS: 1},
		},
	}
	res, err := BranchBound{}.SolveBIP(p)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 1, 1}
	for i, v := range want {
		if res.X[i] != v {
			t.Errorf("x[%d] got %g want %g", i, res.X[i], v)
		}
	}
	if math.Abs(res.Objective-(-1.5)) > 1e-9 {
		t.Errorf("objective got %g want -1.5", res.Objective)
	}
}

func TestBranchBoundConstantCarried(t *testing.T) {
	p := &Problem{
		Objective: []float64{1},
		Constant:  0.7,
		Kinds:     binaryKinds(1),
	}
	res, err := BranchBound{}.SolveBIP(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.X[0] != 0 || math.Abs(res.Objective-0.7) > 1e-9 {
		t.Errorf("got x=%v obj=%g want x=[0] obj=0.7", res.X, res.Objective)
	}
}

func TestBranchBoundRejectsIntegerKinds(t *testing.T) {
	p := &Problem{Objective: []float64{1}, Kinds: []VarKind{Integer}}
	if _, err := (BranchBound{}).SolveBIP(p); err == nil {
		t.Error("expected an error for non-binary variable kinds")
	}
}

// Identical problems must produce identical assignments (deterministic
// branching).
func TestBranchBoundDeterministic(t *testing.T) {
	build := func() *Problem {
		return &Problem{
			Objective: []float64{-1, -1, -1, -1, 0.25, 0.25},
			Kinds:     binaryKinds(6),
			Constraints: []Constraint{
				{Cols: []int{0, 1, 4}, Coefs: []float64{1, 1, -2}, Sense: EQ, RHS: 0},
				{Cols: []int{2, 3, 5}, Coefs: []float64{1, 1, -2}, Sense: EQ, RHS: 0},
			},
		}
	}
	a, err := BranchBound{}.SolveBIP(build())
	if err != nil {
		t.Fatal(err)
	}
	b, err := BranchBound{}.SolveBIP(build())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.X {
		if a.X[i] != b.X[i] {
			t.Errorf("x[%d] differs between identical runs: %g vs %g", i, a.X[i], b.X[i])
		}
	}
}
