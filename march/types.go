package march

import (
	"errors"

	"github.com/katalvlaran/isoline/grid"
)

// ErrInvalidLevel indicates a NaN trace level.
var ErrInvalidLevel = errors.New("march: level must not be NaN")

// Decider selects how the centre value of a saddle cell is estimated.
type Decider int

const (
	// DeciderMean uses the mean of the four corners, which is also the value of
	// the bilinear surface at the cell centre.
	DeciderMean Decider = iota

	// DeciderSaddle uses the value of the bilinear surface at its saddle point,
	// (v_sw·v_ne − v_se·v_nw)/(v_sw + v_ne − v_se − v_nw).
	DeciderSaddle
)

// String returns the decider name as accepted by ParseDecider.
func (d Decider) String() string {
	switch d {
	case DeciderMean:
		return "mean"
	case DeciderSaddle:
		return "saddle"
	default:
		return "unknown"
	}
}

// ParseDecider maps "mean" or "saddle" to a Decider.
func ParseDecider(s string) (Decider, bool) {
	switch s {
	case "mean":
		return DeciderMean, true
	case "saddle":
		return DeciderSaddle, true
	default:
		return DeciderMean, false
	}
}

// Options configures a trace.
//
// Fields:
//   - Decider    - saddle resolution rule.
//   - Partitions - number of x bands traced concurrently; values < 1 mean 1.
type Options struct {
	Decider    Decider
	Partitions int
}

// DefaultOptions returns Options{Decider: DeciderMean, Partitions: 1}.
func DefaultOptions() Options {
	return Options{
		Decider:    DeciderMean,
		Partitions: 1,
	}
}

// Crossing is the point where the isoline crosses one grid edge.
type Crossing struct {
	Edge grid.EdgeID
	X, Y float64
}

// Segment joins two crossings of the same cell.
type Segment struct {
	From, To Crossing
	I, J     int // cell that produced the segment
}
