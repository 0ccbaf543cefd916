// Package stitch joins per-cell marching-squares segments into polylines.
//
// The segments of one level form an implicit graph: every distinct grid edge
// crossing (march.Crossing, keyed by grid.EdgeID) is a node and every segment
// is an edge between two nodes. The graph is held in a small arena:
//
//	ids   map[grid.EdgeID]int32  // crossing identity → dense node id
//	nodes []node                 // coordinates + up to two incident segments
//	ends  [][2]int32             // segment → its two node ids
//
// Node ids are assigned in first-seen order over the raster-ordered segment
// set, which fixes the scan order of the traversal:
//
//  1. Scan node ids ascending; each unvisited degree-1 node starts a walk that
//     ends at the other degree-1 node. These are open lines.
//  2. Scan again; each node still unvisited lies on a cycle. Walk it back to
//     the start and repeat the start point, giving a closed line whose first
//     and last vertices are equal.
//
// Every node is visited exactly once. A node with more than two incident
// segments cannot arise from a consistent trace and is reported as
// ErrDegenerateCrossing rather than resolved silently.
//
// Complexity: O(S) time and memory for S segments.
package stitch
