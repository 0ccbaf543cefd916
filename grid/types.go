package grid

import "math"

// Kind distinguishes axis-aligned grids from per-node coordinate grids.
type Kind int

const (
	// Rectilinear grids have independent 1D x and y axes.
	Rectilinear Kind = iota
	// Curvilinear grids give x and y per node.
	Curvilinear
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Rectilinear:
		return "rectilinear"
	case Curvilinear:
		return "curvilinear"
	default:
		return "unknown"
	}
}

// Node is one grid sample: its lattice position, flat index, coordinates and value.
type Node struct {
	I, J  int     // lattice position
	Index int     // I*Ny + J
	X, Y  float64 // node coordinates
	Z     float64 // field value, may be NaN
}

// Corner names one of the four corners of a cell.
type Corner int

const (
	SW Corner = iota // (i, j)
	SE               // (i+1, j)
	NE               // (i+1, j+1)
	NW               // (i, j+1)
)

// Cell is the quadrilateral spanned by nodes (i..i+1, j..j+1).
// Corners is ordered SW, SE, NE, NW (counter-clockwise on a rectilinear grid).
type Cell struct {
	I, J    int
	Corners [4]Node
}

// Corner returns the node at corner c.
func (c Cell) Corner(k Corner) Node {
	return c.Corners[k]
}

// Finite reports whether all four corner values are finite.
func (c Cell) Finite() bool {
	for _, n := range c.Corners {
		if math.IsNaN(n.Z) || math.IsInf(n.Z, 0) {
			return false
		}
	}

	return true
}

// EdgeID identifies the grid edge between two adjacent nodes by their flat
// indices, smaller index first. Two cells sharing an edge compute the same EdgeID.
type EdgeID struct {
	A, B int
}

// NewEdgeID orders a and b so that A < B.
func NewEdgeID(a, b int) EdgeID {
	if a > b {
		a, b = b, a
	}

	return EdgeID{A: a, B: b}
}

// Bounds is the axis-aligned bounding box of all node coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}
