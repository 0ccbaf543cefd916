// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the value matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrShapeMismatch indicates ragged rows or disagreeing x, y and z dimensions.
	ErrShapeMismatch = errors.New("grid: shape mismatch between x, y and z")

	// ErrNonMonotonicGrid indicates a rectilinear axis that is not strictly increasing.
	ErrNonMonotonicGrid = errors.New("grid: axis must be strictly increasing")

	// ErrNonFiniteCoordinate indicates a NaN or ±Inf node coordinate.
	ErrNonFiniteCoordinate = errors.New("grid: coordinate must be finite")

	// ErrOutOfRange indicates node or cell indices outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// gridErrorf tags err with the failing check and, when useful, its position.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
