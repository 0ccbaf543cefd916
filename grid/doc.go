// Package grid holds the immutable sample grid that contour tracing reads from.
//
// What:
//
//   - Grid stores node coordinates and field values for an Nx×Ny lattice.
//   - Rectilinear grids carry two strictly increasing axes x (len Nx) and y (len Ny).
//   - Curvilinear grids carry per-node x and y matrices, both Nx×Ny.
//   - z[i][j] is the field value at node (i, j); NaN marks a missing sample.
//   - Cell(i, j) answers the four corners of cell (i, j) in O(1).
//
// Indexing:
//
//   - i runs along x in [0, Nx), j runs along y in [0, Ny).
//   - Node index is i*Ny + j (row-major over z).
//   - EdgeID{A, B} names the grid edge between two adjacent nodes, A < B.
//
// Cell corners:
//
//	NW(i,j+1) ──── NE(i+1,j+1)
//	   │                │
//	   │   cell (i,j)   │
//	   │                │
//	SW(i,j)   ──── SE(i+1,j)
//
// Complexity:
//
//   - Construction: O(Nx×Ny) time and memory (inputs are deep-copied).
//   - Node, Cell, NodeIndex, IsBoundaryEdge: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrShapeMismatch: ragged rows or x/y/z dimensions disagree.
//   - ErrNonFiniteCoordinate: a node coordinate is NaN or ±Inf.
//   - ErrNonMonotonicGrid: a rectilinear axis is not strictly increasing.
//   - ErrOutOfRange: node or cell indices outside the grid.
package grid
