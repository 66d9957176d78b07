// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateRectangular checks that rows is non-empty, that the first row is
// non-empty and that every row has the same length.
// Complexity: O(r).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidDimensions
	}
	c := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != c {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// ValidateFinite reports ErrNaNInf if any element of vals is NaN or ±Inf.
// Complexity: O(n).
func ValidateFinite(vals []float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
