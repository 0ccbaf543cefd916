// Package isoline is an in-memory toolkit for tracing isolines (contour
// lines) of scalar fields sampled on 2D grids.
//
// What is in the box:
//
//	grid/    - immutable rectilinear and curvilinear grids, node and cell access
//	levels/  - automatic level selection over the finite value range
//	march/   - marching-squares cell classification, interpolation, saddle deciders
//	stitch/  - joins per-cell segments into open and closed polylines
//	contour/ - the public entry points: Contour, Contours, ContoursN, ContoursAt
//	cmd/contour - command-line front end reading YAML/JSON grid documents
//
// Quick ASCII example (one cell, level 2):
//
//	0 ───── 4
//	│    ╲  │
//	│     ╲ │
//	0 ───── 0
//
// The isoline cuts the two edges meeting at the corner valued 4, halfway
// along each. Every line either closes on itself or ends on the grid
// boundary (or on the rim of a region of missing samples).
//
//	go get github.com/katalvlaran/isoline/contour
package isoline
