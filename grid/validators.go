// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// validateMatrix checks that m is non-empty and rectangular and returns its shape.
// Complexity: O(rows).
func validateMatrix(name string, m [][]float64) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, gridErrorf(name, ErrEmptyGrid)
	}
	rows, cols = len(m), len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, gridErrorf(fmt.Sprintf("%s: row %d has %d columns, want %d", name, i, len(row), cols), ErrShapeMismatch)
		}
	}

	return rows, cols, nil
}

// validateSameShape checks that m is exactly rows×cols.
func validateSameShape(name string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return gridErrorf(fmt.Sprintf("%s: %d rows, want %d", name, len(m), rows), ErrShapeMismatch)
	}
	for i, row := range m {
		if len(row) != cols {
			return gridErrorf(fmt.Sprintf("%s: row %d has %d columns, want %d", name, i, len(row), cols), ErrShapeMismatch)
		}
	}

	return nil
}

// validateAxis checks an axis of length n: all finite and strictly increasing.
// Non-finite entries match both ErrNonFiniteCoordinate and ErrNonMonotonicGrid.
func validateAxis(name string, axis []float64, n int) error {
	if len(axis) != n {
		return gridErrorf(fmt.Sprintf("%s: length %d, want %d", name, len(axis), n), ErrShapeMismatch)
	}
	for k, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// A non-finite axis entry also breaks strict ordering.
			return gridErrorf(fmt.Sprintf("%s[%d]=%g", name, k, v), fmt.Errorf("%w: %w", ErrNonFiniteCoordinate, ErrNonMonotonicGrid))
		}
	}
	for k := 1; k < len(axis); k++ {
		if !(axis[k] > axis[k-1]) {
			return gridErrorf(fmt.Sprintf("%s[%d]=%g after %g", name, k, axis[k], axis[k-1]), ErrNonMonotonicGrid)
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf entries of a coordinate matrix.
func validateFinite(name string, m [][]float64) error {
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return gridErrorf(fmt.Sprintf("%s[%d][%d]", name, i, j), ErrNonFiniteCoordinate)
			}
		}
	}

	return nil
}
