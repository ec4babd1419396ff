// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package selection

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// BranchBound is the reference Solver backend: a depth-first
// branch-and-bound search over the binary variables with LP-relaxation
// lower bounds, deterministic branching, and sparse deadline checks.
//
// Each node's lower bound comes from the continuous relaxation solved
// with gonum's simplex (optimize/convex/lp); when the relaxation solver
// declines an instance (degenerate bases), the search falls back to the
// weaker-but-admissible bound of summing every free variable's negative
// objective coefficient. A node is pruned when its bound cannot beat the
// incumbent; a relaxation that comes back integral and feasible is the
// node's optimum and becomes the incumbent directly.
//
// Determinism: branching always picks the lowest-index fractional (or
// free) variable and explores value 1 before 0, so two runs on the same
// Problem visit nodes in the same order and return the same assignment.
type BranchBound struct{}

// SolveBIP implements Solver.
func (BranchBound) SolveBIP(p *Problem) (Result, error) {
	for _, k := range p.Kinds {
		if k != Binary {
			return Result{Status: StatusSolverError},
				fmt.Errorf("selection: branch-and-bound backend supports binary variables only")
		}
	}
	e := &bipEngine{p: p, nv: p.NumVars()}
	return e.run(), nil
}

// bipEngine holds all search data and policies. A dedicated engine
// struct, rather than closures, keeps hot-path state predictable and the
// search testable in isolation.
type bipEngine struct {
	p  *Problem
	nv int

	// Time budget: rare deadline tests so the per-node overhead of a
	// clock read never dominates the bound computation.
	useDeadline bool
	deadline    time.Time
	steps       int
	timedOut    bool

	// Search state: fixed[v] is -1 while v is free, else its branch value.
	fixed []int8

	// Incumbent (upper bound). Seeded with the all-zero assignment,
	// which satisfies every constraint the face-selection model emits,
	// so the search always has a feasible answer to fall back on.
	bestX   []float64
	bestObj float64

	// rootLB is the root relaxation bound: a global lower bound used
	// for the optimality-gap early exit.
	rootLB float64
	gapMet bool
}

func (e *bipEngine) run() Result {
	e.fixed = make([]int8, e.nv)
	for i := range e.fixed {
		e.fixed[i] = -1
	}
	e.bestX = make([]float64, e.nv)
	e.bestObj = e.objOf(e.bestX)
	if e.p.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(e.p.TimeLimit)
	}

	if lb, _, ok := e.relaxBound(); ok {
		e.rootLB = lb
	} else {
		e.rootLB = math.Inf(-1)
	}

	e.search()

	status := StatusOptimal
	switch {
	case e.timedOut:
		status = StatusTimeLimit
	case e.gapMet:
		status = StatusFeasibleGapReached
	}
	return Result{Status: status, X: e.bestX, Objective: e.bestObj}
}

// deadlineCheck performs a rare deadline test (every 256 node events).
func (e *bipEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&255) != 0 {
		return false
	}
	return time.Now().After(e.deadline)
}

const (
	pruneTol    = 1e-9
	integralTol = 1e-6
)

func (e *bipEngine) search() {
	if e.timedOut || e.gapMet {
		return
	}
	if e.deadlineCheck() {
		e.timedOut = true
		return
	}

	lb, relax, ok := e.relaxBound()
	if !ok {
		return // node infeasible
	}
	if lb >= e.bestObj-pruneTol {
		return // cannot beat the incumbent
	}
	if relax != nil && e.integral(relax) && e.feasible(relax) {
		e.accept(relax)
		return
	}

	v := e.branchVar(relax)
	if v < 0 {
		// Every variable fixed: the node is a leaf.
		x := e.fixedVector()
		if e.feasible(x) {
			e.accept(x)
		}
		return
	}
	for _, val := range [2]int8{1, 0} {
		e.fixed[v] = val
		e.search()
		e.fixed[v] = -1
		if e.timedOut || e.gapMet {
			return
		}
	}
}

// accept installs x as the incumbent if it improves on the current one,
// then tests the configured optimality gap against the root bound.
func (e *bipEngine) accept(x []float64) {
	obj := e.objOf(x)
	if obj >= e.bestObj-pruneTol {
		return
	}
	e.bestX = e.rounded(x)
	e.bestObj = e.objOf(e.bestX)
	if e.p.Gap > 0 && !math.IsInf(e.rootLB, -1) {
		if e.bestObj-e.rootLB <= e.p.Gap*math.Max(math.Abs(e.bestObj), 1e-9) {
			e.gapMet = true
		}
	}
}

func (e *bipEngine) rounded(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Round(v)
	}
	return out
}

// branchVar picks the branching variable: the lowest-index free variable
// whose relaxation value is fractional, else the lowest-index free
// variable, else -1 when everything is fixed.
func (e *bipEngine) branchVar(relax []float64) int {
	firstFree := -1
	for i := 0; i < e.nv; i++ {
		if e.fixed[i] >= 0 {
			continue
		}
		if firstFree < 0 {
			firstFree = i
		}
		if relax != nil && math.Abs(relax[i]-math.Round(relax[i])) > integralTol {
			return i
		}
	}
	return firstFree
}

func (e *bipEngine) fixedVector() []float64 {
	x := make([]float64, e.nv)
	for i, f := range e.fixed {
		if f > 0 {
			x[i] = 1
		}
	}
	return x
}

func (e *bipEngine) objOf(x []float64) float64 {
	sum := e.p.Constant
	for i, c := range e.p.Objective {
		sum += c * x[i]
	}
	return sum
}

func (e *bipEngine) integral(x []float64) bool {
	for _, v := range x {
		if math.Abs(v-math.Round(v)) > integralTol {
			return false
		}
	}
	return true
}

// feasible checks every constraint row against x with a small tolerance.
func (e *bipEngine) feasible(x []float64) bool {
	const tol = 1e-6
	for _, c := range e.p.Constraints {
		sum := 0.0
		for i, col := range c.Cols {
			sum += c.Coefs[i] * x[col]
		}
		switch c.Sense {
		case LE:
			if sum > c.RHS+tol {
				return false
			}
		case GE:
			if sum < c.RHS-tol {
				return false
			}
		default:
			if math.Abs(sum-c.RHS) > tol {
				return false
			}
		}
	}
	return true
}

// relaxBound computes a lower bound for the current node. It returns the
// bound, the relaxation's variable assignment (nil when only the
// fallback bound was available), and ok=false when the node is provably
// infeasible.
//
// The continuous relaxation is posed to gonum's lp.Simplex in standard
// form (min c·x s.t. Ax = b, x >= 0): free binaries become columns with
// an explicit x + s = 1 upper-bound row each, inequality rows gain a
// slack column, and fixed variables are substituted into the right-hand
// sides.
func (e *bipEngine) relaxBound() (float64, []float64, bool) {
	fixedContrib := e.p.Constant
	var free []int
	colOf := make([]int, e.nv)
	for i := range colOf {
		colOf[i] = -1
	}
	for i := 0; i < e.nv; i++ {
		if e.fixed[i] >= 0 {
			fixedContrib += e.p.Objective[i] * float64(e.fixed[i])
			continue
		}
		colOf[i] = len(free)
		free = append(free, i)
	}

	if len(free) == 0 {
		x := e.fixedVector()
		if !e.feasible(x) {
			return 0, nil, false
		}
		return fixedContrib, x, true
	}

	nfree := len(free)
	slacks := 0
	for _, c := range e.p.Constraints {
		if c.Sense != EQ {
			slacks++
		}
	}
	rows := len(e.p.Constraints) + nfree
	cols := nfree + slacks + nfree // vars, constraint slacks, upper-bound slacks

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	for j, v := range free {
		c[j] = e.p.Objective[v]
	}

	slack := nfree
	for r, con := range e.p.Constraints {
		rhs := con.RHS
		for i, col := range con.Cols {
			if cf := colOf[col]; cf >= 0 {
				a.Set(r, cf, con.Coefs[i])
			} else {
				rhs -= con.Coefs[i] * float64(e.fixed[col])
			}
		}
		switch con.Sense {
		case LE:
			a.Set(r, slack, 1)
			slack++
		case GE:
			a.Set(r, slack, -1)
			slack++
		}
		b[r] = rhs
	}
	for j := range free {
		r := len(e.p.Constraints) + j
		a.Set(r, j, 1)
		a.Set(r, nfree+slacks+j, 1)
		b[r] = 1
	}

	optF, optX, err := lp.Simplex(c, a, b, 1e-10, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return 0, nil, false
		}
		// Fallback admissible bound: every free variable takes whichever
		// of {0, 1} minimizes its own objective term, ignoring coupling.
		lb := fixedContrib
		for _, v := range free {
			lb += math.Min(0, e.p.Objective[v])
		}
		return lb, nil, true
	}

	x := e.fixedVector()
	for j, v := range free {
		x[v] = optX[j]
	}
	return fixedContrib + optF, x, true
}
