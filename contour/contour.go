package contour

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/levels"
	"github.com/katalvlaran/isoline/march"
	"github.com/katalvlaran/isoline/stitch"
)

// Contour traces the isolines of g at a single level.
//
// Errors: ErrNilGrid, ErrInvalidLevel (NaN level), ErrDegenerateCrossing.
// Complexity: O(Nx×Ny + crossings).
func Contour(g *grid.Grid, level float64, opts ...Option) (ContourLevel, error) {
	if g == nil {
		return ContourLevel{}, ErrNilGrid
	}
	o := gatherOptions(opts...)

	return traceLevel(g, level, o)
}

// Contours traces levels.DefaultCount (10) levels chosen by ContourLevels.
//
// Errors: ErrNilGrid, ErrEmptyRange, ErrDegenerateCrossing.
func Contours(g *grid.Grid, opts ...Option) (Collection, error) {
	return ContoursN(g, levels.DefaultCount, opts...)
}

// ContoursN traces n evenly spaced levels strictly inside the finite range of
// g's values, in ascending order.
//
// Errors: ErrNilGrid, ErrInvalidLevelCount, ErrEmptyRange, ErrDegenerateCrossing.
func ContoursN(g *grid.Grid, n int, opts ...Option) (Collection, error) {
	if g == nil {
		return Collection{}, ErrNilGrid
	}
	lv, err := levels.Even(g.Values(), n)
	if err != nil {
		return Collection{}, fmt.Errorf("ContoursN: %w", err)
	}

	return ContoursAt(g, lv, opts...)
}

// ContoursAt traces every level in lv. The result holds one ContourLevel per
// entry of lv, in the same order. Levels are traced concurrently (see
// WithWorkers); the first failure aborts the call and no partial result is
// returned.
//
// Errors: ErrNilGrid, ErrInvalidLevel, ErrDegenerateCrossing.
func ContoursAt(g *grid.Grid, lv []float64, opts ...Option) (Collection, error) {
	if g == nil {
		return Collection{}, ErrNilGrid
	}
	for k, l := range lv {
		if math.IsNaN(l) {
			return Collection{}, fmt.Errorf("ContoursAt: level %d: %w", k, ErrInvalidLevel)
		}
	}
	o := gatherOptions(opts...)

	out := make([]ContourLevel, len(lv))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(o.workers)
	for k, l := range lv {
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			cl, err := traceLevel(g, l, o)
			if err != nil {
				return fmt.Errorf("ContoursAt: level %d (%g): %w", k, l, err)
			}
			out[k] = cl

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Collection{}, err
	}

	return Collection{levels: out}, nil
}

// ContourLevels returns n evenly spaced levels strictly inside the finite
// range of z, without tracing anything.
//
// Errors: ErrInvalidLevelCount, ErrEmptyRange.
func ContourLevels(z [][]float64, n int) ([]float64, error) {
	return levels.EvenMatrix(z, n)
}

// traceLevel runs the tracer and the stitcher for one level.
func traceLevel(g *grid.Grid, level float64, o Options) (ContourLevel, error) {
	log := Logger()
	segs, err := march.Trace(g, level, o.marchOptions())
	if err != nil {
		log.Warn("contour: trace failed", slog.Float64("level", level), slog.Any("err", err))

		return ContourLevel{}, err
	}
	polys, err := stitch.Stitch(segs)
	if err != nil {
		log.Warn("contour: stitch failed", slog.Float64("level", level), slog.Any("err", err))

		return ContourLevel{}, err
	}

	lines, closed := toLines(polys)
	log.Debug("contour: level traced",
		slog.Float64("level", level),
		slog.Int("segments", len(segs)),
		slog.Int("lines", len(lines)),
		slog.Int("closed", closed),
	)

	return ContourLevel{level: level, lines: lines}, nil
}

// toLines converts stitched polylines into Lines, open lines first.
//
// A field that touches the level only at nodes yields polylines whose
// vertices all coincide; those carry no length and are dropped. An open
// walk that leaves and re-enters the boundary through the same node ends
// where it starts, so it is reported as closed.
func toLines(polys []stitch.Polyline) (lines []Line, closed int) {
	var open, loops []Line
	for _, p := range polys {
		if isPoint(p) {
			continue
		}
		n := len(p.X) - 1
		l := Line{x: p.X, y: p.Y, closed: p.Closed || (p.X[0] == p.X[n] && p.Y[0] == p.Y[n])}
		if l.closed {
			loops = append(loops, l)
		} else {
			open = append(open, l)
		}
	}

	return append(open, loops...), len(loops)
}

// isPoint reports whether every vertex of p equals the first.
func isPoint(p stitch.Polyline) bool {
	for k := 1; k < len(p.X); k++ {
		if p.X[k] != p.X[0] || p.Y[k] != p.Y[0] {
			return false
		}
	}

	return true
}
