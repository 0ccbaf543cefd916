// Package march is the marching-squares cell tracer.
//
// For a fixed level L every cell of a grid.Grid is classified by which of its
// corners lie "above" (value ≥ L; ties go above) and which lie below. The four
// bits form a case code:
//
//	bit 0: SW   bit 1: SE   bit 2: NE   bit 3: NW
//
// Codes 0 and 15 carry no crossing. Every other code names the cell sides the
// isoline passes through; each crossing point is found by linear interpolation
// along its side,
//
//	t = (L − v_a)/(v_b − v_a),  p = p_a + t·(p_b − p_a)
//
// always taken from the lower-indexed node a to the higher-indexed node b, so
// two cells sharing a side compute bit-identical crossings.
//
// Saddles (codes 5 and 10, diagonal corners on the same side) are resolved by a
// Decider that estimates the field at the cell centre: when the centre is above
// L the two "above" corners are joined through the cell, otherwise the two
// "below" corners are. The decision reads only the cell's own corners.
//
// Cells with a NaN or ±Inf corner are skipped.
//
// Complexity: O(Nx×Ny) per level. With Options.Partitions > 1 the x range is
// split into contiguous bands traced concurrently; the merged output is
// identical to a single-band trace.
package march
