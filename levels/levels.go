package levels

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultCount is the number of levels chosen when the caller names none.
const DefaultCount = 10

var (
	// ErrInvalidLevelCount indicates a requested level count n ≤ 0.
	ErrInvalidLevelCount = errors.New("levels: level count must be > 0")

	// ErrEmptyRange indicates there is no open value interval to place levels in.
	ErrEmptyRange = errors.New("levels: no finite value range")
)

// finite returns the finite entries of values, skipping NaN and ±Inf.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}

	return out
}

// Range returns the minimum and maximum finite value.
// Errors: ErrEmptyRange when values holds no finite entry.
// Complexity: O(len(values)).
func Range(values []float64) (lo, hi float64, err error) {
	vals := finite(values)
	if len(vals) == 0 {
		return 0, 0, ErrEmptyRange
	}

	return floats.Min(vals), floats.Max(vals), nil
}

// Even returns n strictly increasing levels strictly inside (min, max) of the
// finite values.
//
// Errors:
//   - ErrInvalidLevelCount if n ≤ 0 (checked first).
//   - ErrEmptyRange if there are no finite values or the range cannot hold n
//     distinct interior levels.
//
// Complexity: O(len(values) + n).
func Even(values []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Even(n=%d): %w", n, ErrInvalidLevelCount)
	}
	lo, hi, err := Range(values)
	if err != nil {
		return nil, fmt.Errorf("Even: %w", err)
	}

	span := hi - lo
	out := make([]float64, n)
	prev := lo
	for k := 1; k <= n; k++ {
		lvl := lo + span*float64(k)/float64(n+1)
		if math.IsInf(span, 0) {
			// hi - lo overflows when the range is wider than MaxFloat64.
			t := float64(k) / float64(n+1)
			lvl = lo*(1-t) + hi*t
		}
		if !(lvl > prev) || !(lvl < hi) {
			return nil, fmt.Errorf("Even: range [%g, %g] too narrow for %d levels: %w", lo, hi, n, ErrEmptyRange)
		}
		out[k-1] = lvl
		prev = lvl
	}

	return out, nil
}

// EvenMatrix is Even over every entry of a (possibly ragged) matrix.
func EvenMatrix(z [][]float64, n int) ([]float64, error) {
	size := 0
	for _, row := range z {
		size += len(row)
	}
	flat := make([]float64, 0, size)
	for _, row := range z {
		flat = append(flat, row...)
	}

	return Even(flat, n)
}
