// Package levels chooses the values at which contours are traced.
//
// The heuristic is deliberately simple: scan the finite values of the field
// for its range [min, max] and place n levels evenly inside the open interval,
//
//	level_k = min + (max − min)·k/(n+1),  k = 1..n
//
// so no level ever coincides with the extreme values of the field.
//
// Errors:
//
//   - ErrInvalidLevelCount: n ≤ 0.
//   - ErrEmptyRange: no finite values, or a range too narrow to hold n
//     distinct levels strictly inside it (e.g. a constant field).
package levels
