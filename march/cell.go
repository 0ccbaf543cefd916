package march

import (
	"math"

	"github.com/katalvlaran/isoline/grid"
)

// side is one of the four sides of a cell.
type side uint8

const (
	bottom side = iota // SW–SE
	right              // SE–NE
	top                // NW–NE
	left               // SW–NW
)

// sideCorners lists the two corners bounding each side.
var sideCorners = [4][2]grid.Corner{
	bottom: {grid.SW, grid.SE},
	right:  {grid.SE, grid.NE},
	top:    {grid.NW, grid.NE},
	left:   {grid.SW, grid.NW},
}

// caseTable maps a non-saddle case code to the side pairs its segments join.
// A code and its complement cross the same sides.
var caseTable = [16][][2]side{
	0x0: nil,
	0x1: {{left, bottom}},
	0x2: {{bottom, right}},
	0x3: {{left, right}},
	0x4: {{right, top}},
	0x5: nil, // saddle
	0x6: {{bottom, top}},
	0x7: {{left, top}},
	0x8: {{left, top}},
	0x9: {{bottom, top}},
	0xA: nil, // saddle
	0xB: {{right, top}},
	0xC: {{left, right}},
	0xD: {{bottom, right}},
	0xE: {{left, bottom}},
	0xF: nil,
}

// Side pairings for saddle cells: cutSENW isolates the SE and NW corners,
// cutSWNE isolates the SW and NE corners.
var (
	cutSENW = [][2]side{{bottom, right}, {left, top}}
	cutSWNE = [][2]side{{left, bottom}, {right, top}}
)

// Classify returns the case code of cell c at level, and false when a corner
// is not finite.
func Classify(c grid.Cell, level float64) (code uint8, ok bool) {
	if !c.Finite() {
		return 0, false
	}
	for k, n := range c.Corners {
		if n.Z >= level {
			code |= 1 << k
		}
	}

	return code, true
}

// IsSaddle reports whether code is one of the two ambiguous cases.
func IsSaddle(code uint8) bool {
	return code == 0x5 || code == 0xA
}

// Centre estimates the field at the centre of c with rule d.
func (d Decider) Centre(c grid.Cell) float64 {
	sw, se := c.Corners[grid.SW].Z, c.Corners[grid.SE].Z
	ne, nw := c.Corners[grid.NE].Z, c.Corners[grid.NW].Z
	if d == DeciderSaddle {
		den := sw + ne - se - nw
		if den != 0 {
			return (sw*ne - se*nw) / den
		}
	}

	return (sw + se + ne + nw) / 4
}

// pairs returns the side pairs crossed by cell c with case code.
func pairs(c grid.Cell, code uint8, level float64, d Decider) [][2]side {
	if !IsSaddle(code) {
		return caseTable[code]
	}
	above := d.Centre(c) >= level
	// Code 5 has SW and NE above: joining them cuts off SE and NW.
	// Code 10 has SE and NW above: joining them cuts off SW and NE.
	if (code == 0x5) == above {
		return cutSENW
	}

	return cutSWNE
}

// Interpolate returns the crossing of level on the edge between adjacent
// nodes a and b. The result does not depend on argument order.
func Interpolate(a, b grid.Node, level float64) Crossing {
	if a.Index > b.Index {
		a, b = b, a
	}
	e := grid.EdgeID{A: a.Index, B: b.Index}
	t := (level - a.Z) / (b.Z - a.Z)
	if math.IsInf(b.Z-a.Z, 0) {
		// Halve both terms so the difference of two large finite values stays finite.
		t = (level/2 - a.Z/2) / (b.Z/2 - a.Z/2)
	}
	// Crossings on a node take the node's coordinates exactly.
	switch t {
	case 0:
		return Crossing{Edge: e, X: a.X, Y: a.Y}
	case 1:
		return Crossing{Edge: e, X: b.X, Y: b.Y}
	}

	return Crossing{
		Edge: e,
		X:    a.X + t*(b.X-a.X),
		Y:    a.Y + t*(b.Y-a.Y),
	}
}

// crossing interpolates level on side s of c.
func crossing(c grid.Cell, s side, level float64) Crossing {
	k := sideCorners[s]

	return Interpolate(c.Corners[k[0]], c.Corners[k[1]], level)
}

// CellSegments appends the segments of cell c at level to dst and returns it.
// Cells with a non-finite corner or a uniform classification add nothing.
func CellSegments(dst []Segment, c grid.Cell, level float64, d Decider) []Segment {
	code, ok := Classify(c, level)
	if !ok || code == 0x0 || code == 0xF {
		return dst
	}
	for _, p := range pairs(c, code, level, d) {
		dst = append(dst, Segment{
			From: crossing(c, p[0], level),
			To:   crossing(c, p[1], level),
			I:    c.I,
			J:    c.J,
		})
	}

	return dst
}
