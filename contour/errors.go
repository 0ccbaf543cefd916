package contour

import (
	"errors"

	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/levels"
	"github.com/katalvlaran/isoline/march"
	"github.com/katalvlaran/isoline/stitch"
)

// ErrNilGrid indicates a nil *grid.Grid argument.
var ErrNilGrid = errors.New("contour: grid is nil")

// The full error taxonomy, re-exported so callers can match every failure
// from this package alone. They are the same values as in the subpackages.
var (
	ErrShapeMismatch       = grid.ErrShapeMismatch
	ErrNonMonotonicGrid    = grid.ErrNonMonotonicGrid
	ErrEmptyGrid           = grid.ErrEmptyGrid
	ErrNonFiniteCoordinate = grid.ErrNonFiniteCoordinate
	ErrOutOfRange          = grid.ErrOutOfRange
	ErrInvalidLevelCount   = levels.ErrInvalidLevelCount
	ErrEmptyRange          = levels.ErrEmptyRange
	ErrInvalidLevel        = march.ErrInvalidLevel
	ErrDegenerateCrossing  = stitch.ErrDegenerateCrossing
)
