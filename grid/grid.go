package grid

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Grid is an immutable Nx×Ny lattice of sample nodes.
// Coordinates are stored either as two axes (Rectilinear) or per node
// (Curvilinear); values are stored flat in row-major order, z[i*Ny+j].
// A Grid is safe for concurrent readers.
type Grid struct {
	kind   Kind
	nx, ny int
	xAxis  []float64 // Rectilinear: len nx
	yAxis  []float64 // Rectilinear: len ny
	xs, ys []float64 // Curvilinear: len nx*ny
	z      []float64 // len nx*ny
}

// NewRectilinear builds a grid from strictly increasing axes x (len Nx) and
// y (len Ny) and an Nx×Ny value matrix, z[i][j] at (x[i], y[j]).
// Inputs are deep-copied.
//
// Errors: ErrEmptyGrid, ErrShapeMismatch, ErrNonFiniteCoordinate, ErrNonMonotonicGrid.
// Complexity: O(Nx×Ny).
func NewRectilinear(x, y []float64, z [][]float64) (*Grid, error) {
	nx, ny, err := validateMatrix("z", z)
	if err != nil {
		return nil, gridErrorf("NewRectilinear", err)
	}
	if err = validateAxis("x", x, nx); err != nil {
		return nil, gridErrorf("NewRectilinear", err)
	}
	if err = validateAxis("y", y, ny); err != nil {
		return nil, gridErrorf("NewRectilinear", err)
	}

	return &Grid{
		kind:  Rectilinear,
		nx:    nx,
		ny:    ny,
		xAxis: slices.Clone(x),
		yAxis: slices.Clone(y),
		z:     flatten(z, nx, ny),
	}, nil
}

// NewCurvilinear builds a grid whose node (i, j) lies at (x[i][j], y[i][j])
// with value z[i][j]. All three matrices must be Nx×Ny and coordinates finite.
// Inputs are deep-copied.
//
// Errors: ErrEmptyGrid, ErrShapeMismatch, ErrNonFiniteCoordinate.
// Complexity: O(Nx×Ny).
func NewCurvilinear(x, y, z [][]float64) (*Grid, error) {
	nx, ny, err := validateMatrix("z", z)
	if err != nil {
		return nil, gridErrorf("NewCurvilinear", err)
	}
	if err = validateSameShape("x", x, nx, ny); err != nil {
		return nil, gridErrorf("NewCurvilinear", err)
	}
	if err = validateSameShape("y", y, nx, ny); err != nil {
		return nil, gridErrorf("NewCurvilinear", err)
	}
	if err = validateFinite("x", x); err != nil {
		return nil, gridErrorf("NewCurvilinear", err)
	}
	if err = validateFinite("y", y); err != nil {
		return nil, gridErrorf("NewCurvilinear", err)
	}

	return &Grid{
		kind: Curvilinear,
		nx:   nx,
		ny:   ny,
		xs:   flatten(x, nx, ny),
		ys:   flatten(y, nx, ny),
		z:    flatten(z, nx, ny),
	}, nil
}

// FromDense builds a rectilinear grid from a gonum matrix whose rows follow
// the x axis and whose columns follow the y axis.
func FromDense(x, y []float64, z mat.Matrix) (*Grid, error) {
	if z == nil {
		return nil, gridErrorf("FromDense", ErrEmptyGrid)
	}

	return NewRectilinear(x, y, rowsOf(z))
}

// FromDenseCurvilinear builds a curvilinear grid from three gonum matrices of equal shape.
func FromDenseCurvilinear(x, y, z mat.Matrix) (*Grid, error) {
	if x == nil || y == nil || z == nil {
		return nil, gridErrorf("FromDenseCurvilinear", ErrEmptyGrid)
	}

	return NewCurvilinear(rowsOf(x), rowsOf(y), rowsOf(z))
}

// rowsOf copies a gonum matrix into a [][]float64.
func rowsOf(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}

// flatten copies an nx×ny matrix into row-major storage.
func flatten(m [][]float64, nx, ny int) []float64 {
	out := make([]float64, 0, nx*ny)
	for _, row := range m {
		out = append(out, row...)
	}

	return out
}

// Kind reports whether the grid is rectilinear or curvilinear.
func (g *Grid) Kind() Kind { return g.kind }

// Nx is the number of nodes along the first (x) index.
func (g *Grid) Nx() int { return g.nx }

// Ny is the number of nodes along the second (y) index.
func (g *Grid) Ny() int { return g.ny }

// NumCells is (Nx-1)×(Ny-1); zero for a single row or column of nodes.
func (g *Grid) NumCells() int {
	if g.nx < 2 || g.ny < 2 {
		return 0
	}

	return (g.nx - 1) * (g.ny - 1)
}

// InBounds reports whether (i, j) is a node of the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.nx && j >= 0 && j < g.ny
}

// NodeIndex maps (i, j) to its flat index i*Ny + j. It does not check bounds.
func (g *Grid) NodeIndex(i, j int) int {
	return i*g.ny + j
}

// Position converts a flat node index back to (i, j).
func (g *Grid) Position(idx int) (i, j int) {
	return idx / g.ny, idx % g.ny
}

// node builds the Node at (i, j) without bounds checks.
func (g *Grid) node(i, j int) Node {
	idx := i*g.ny + j
	n := Node{I: i, J: j, Index: idx, Z: g.z[idx]}
	if g.kind == Rectilinear {
		n.X, n.Y = g.xAxis[i], g.yAxis[j]
	} else {
		n.X, n.Y = g.xs[idx], g.ys[idx]
	}

	return n
}

// Node returns the node at (i, j).
// Errors: ErrOutOfRange.
func (g *Grid) Node(i, j int) (Node, error) {
	if !g.InBounds(i, j) {
		return Node{}, gridErrorf(fmt.Sprintf("Node(%d,%d)", i, j), ErrOutOfRange)
	}

	return g.node(i, j), nil
}

// NodeAt returns the node with flat index idx.
// Errors: ErrOutOfRange.
func (g *Grid) NodeAt(idx int) (Node, error) {
	if idx < 0 || idx >= len(g.z) {
		return Node{}, gridErrorf(fmt.Sprintf("NodeAt(%d)", idx), ErrOutOfRange)
	}
	i, j := g.Position(idx)

	return g.node(i, j), nil
}

// Z returns the field value at (i, j). It does not check bounds.
func (g *Grid) Z(i, j int) float64 {
	return g.z[i*g.ny+j]
}

// Cell returns the four corners of cell (i, j), 0 ≤ i < Nx-1, 0 ≤ j < Ny-1.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Cell(i, j int) (Cell, error) {
	if i < 0 || i >= g.nx-1 || j < 0 || j >= g.ny-1 {
		return Cell{}, gridErrorf(fmt.Sprintf("Cell(%d,%d)", i, j), ErrOutOfRange)
	}

	return Cell{
		I: i,
		J: j,
		Corners: [4]Node{
			SW: g.node(i, j),
			SE: g.node(i+1, j),
			NE: g.node(i+1, j+1),
			NW: g.node(i, j+1),
		},
	}, nil
}

// Values returns a flat row-major copy of all field values.
func (g *Grid) Values() []float64 {
	return slices.Clone(g.z)
}

// Rows returns a deep copy of the value matrix, z[i][j].
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.nx)
	for i := range out {
		out[i] = slices.Clone(g.z[i*g.ny : (i+1)*g.ny])
	}

	return out
}

// Axes returns copies of the x and y axes of a rectilinear grid.
// For a curvilinear grid both results are nil.
func (g *Grid) Axes() (x, y []float64) {
	if g.kind != Rectilinear {
		return nil, nil
	}

	return slices.Clone(g.xAxis), slices.Clone(g.yAxis)
}

// Bounds returns the bounding box of all node coordinates.
// Complexity: O(1) for rectilinear grids, O(Nx×Ny) for curvilinear.
func (g *Grid) Bounds() Bounds {
	if g.kind == Rectilinear {
		return Bounds{
			MinX: g.xAxis[0], MaxX: g.xAxis[g.nx-1],
			MinY: g.yAxis[0], MaxY: g.yAxis[g.ny-1],
		}
	}
	b := Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
	for k := range g.xs {
		b.MinX = math.Min(b.MinX, g.xs[k])
		b.MaxX = math.Max(b.MaxX, g.xs[k])
		b.MinY = math.Min(b.MinY, g.ys[k])
		b.MaxY = math.Max(b.MaxY, g.ys[k])
	}

	return b
}

// IsBoundaryNode reports whether node (i, j) lies on the outer ring of the lattice.
func (g *Grid) IsBoundaryNode(i, j int) bool {
	return i == 0 || i == g.nx-1 || j == 0 || j == g.ny-1
}

// IsBoundaryEdge reports whether e joins two adjacent nodes along the outer
// ring of the lattice. Crossings on such edges lie on the grid boundary.
func (g *Grid) IsBoundaryEdge(e EdgeID) bool {
	ia, ja := g.Position(e.A)
	ib, jb := g.Position(e.B)
	switch {
	case ia == ib && jb == ja+1: // along y
		return ia == 0 || ia == g.nx-1
	case ja == jb && ib == ia+1: // along x
		return ja == 0 || ja == g.ny-1
	default:
		return false
	}
}
