package march

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoline/grid"
)

// Trace scans every cell of g at level and returns the segment set in raster
// order: cells by i, then j; segments of one cell in case-table order.
//
// Errors: ErrInvalidLevel for a NaN level.
// Complexity: O(Nx×Ny) time, O(segments) memory.
func Trace(g *grid.Grid, level float64, opts Options) ([]Segment, error) {
	if math.IsNaN(level) {
		return nil, ErrInvalidLevel
	}
	cellsX := g.Nx() - 1
	if cellsX < 1 || g.Ny() < 2 {
		return nil, nil
	}

	parts := opts.Partitions
	if parts < 1 {
		parts = 1
	}
	if parts > cellsX {
		parts = cellsX
	}
	if parts == 1 {
		return traceBand(g, level, opts.Decider, 0, cellsX, nil)
	}

	// Each band owns its buffer; concatenating in band order keeps raster order.
	bufs := make([][]Segment, parts)
	var eg errgroup.Group
	for p := 0; p < parts; p++ {
		lo := p * cellsX / parts
		hi := (p + 1) * cellsX / parts
		eg.Go(func() error {
			segs, err := traceBand(g, level, opts.Decider, lo, hi, nil)
			if err != nil {
				return fmt.Errorf("band [%d,%d): %w", lo, hi, err)
			}
			bufs[p] = segs

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make([]Segment, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}

	return out, nil
}

// traceBand traces cells with lo ≤ i < hi, appending to dst.
func traceBand(g *grid.Grid, level float64, d Decider, lo, hi int, dst []Segment) ([]Segment, error) {
	cellsY := g.Ny() - 1
	for i := lo; i < hi; i++ {
		for j := 0; j < cellsY; j++ {
			c, err := g.Cell(i, j)
			if err != nil {
				return nil, err
			}
			dst = CellSegments(dst, c, level, d)
		}
	}

	return dst, nil
}
