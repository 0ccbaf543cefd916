// Package contour extracts isolines ("contours") from a scalar field sampled
// on a 2D grid, ready to hand to plotting code.
//
// 🚀 What is marching squares?
//
//	Each grid cell is classified by which corners lie above the target level;
//	crossing points are interpolated along the cell sides and the per-cell
//	segments are stitched into continuous polylines. Lines either close on
//	themselves or start and end on the grid boundary.
//
// ✨ Key features:
//   - rectilinear grids (sorted, non-uniform axes) and curvilinear grids
//   - NaN samples excluded from tracing without failing the call
//   - consistent tie-breaking and saddle resolution across the grid
//   - concurrent tracing across levels and across cell bands, deterministic output
//   - restartable, read-only result views
//
// ⚙️ Usage:
//
//	g, err := grid.NewRectilinear(x, y, z)
//	if err != nil {
//	    return err
//	}
//	c, err := contour.Contours(g) // 10 automatically chosen levels
//	if err != nil {
//	    return err
//	}
//	for _, cl := range c.Levels() {
//	    lvl := cl.Level()
//	    for _, line := range cl.Lines() {
//	        xs, ys := line.Coordinates()
//	        plot(xs, ys, lvl)
//	    }
//	}
//
// Entry points:
//
//   - Contour(g, level)        - one explicit level.
//   - Contours(g)              - 10 automatically chosen levels.
//   - ContoursAt(g, levels)    - explicit levels, in the given order.
//   - ContoursN(g, n)          - n automatically chosen levels, ascending.
//   - ContourLevels(z, n)      - the level heuristic on its own.
//
// Options: WithWorkers, WithPartitions, WithDecider.
//
// Errors: see errors.go; every sentinel is matched with errors.Is.
//
// Performance:
//
//   - Time:   O(L·(Nx·Ny + C)) for L levels and C crossings per level.
//   - Memory: O(C) per level in flight.
package contour
