// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package polyfit

import "errors"

// Error kinds surfaced by Reconstruct. Callers distinguish them
// with errors.Is against the sentinels below; wrapped detail is added with
// fmt.Errorf("...: %w", sentinel) at the point of failure.
var (
	// ErrInvalidInput covers malformed segments: fewer than one segment, a
	// segment with fewer than three points, a non-unit plane normal, or
	// configuration weights that don't sum to 1.
	ErrInvalidInput = errors.New("polyfit: invalid input")

	// ErrGeometryFailure covers an unrecoverable geometric condition: the
	// input points span no volume (all of them collapse to one location).
	ErrGeometryFailure = errors.New("polyfit: geometry failure")

	// ErrSolverUnavailable covers a binding failure reaching the external
	// MIP solver.
	ErrSolverUnavailable = errors.New("polyfit: solver unavailable")

	// ErrSolverError covers the solver reporting solver_error. An
	// infeasible status is not an error: it yields an empty mesh with a
	// Diagnostics.Note (x ≡ 0 always satisfies every constraint).
	ErrSolverError = errors.New("polyfit: solver error")
)

// An empty result is not an error: it is a non-fatal diagnostic
// condition. Reconstruct returns an empty mesh with a descriptive
// Diagnostics.Note rather than failing.
