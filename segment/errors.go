// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package segment

import "errors"

// ErrInvalidSegment is returned by New when a segment violates one of
// the segment input invariants. The root package
// wraps this into its own ErrInvalidInput via errors.Is, so callers only
// need to know about polyfit.ErrInvalidInput; this sentinel exists so
// package segment doesn't need to import the root package (which would
// create an import cycle, since the root package imports segment).
var ErrInvalidSegment = errors.New("segment: invalid input")
