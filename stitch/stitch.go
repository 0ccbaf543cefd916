package stitch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/march"
)

// ErrDegenerateCrossing indicates a crossing shared by more than two segments.
var ErrDegenerateCrossing = errors.New("stitch: crossing joins more than two segments")

// Polyline is one stitched isoline. X, Y and Edges are parallel: vertex k lies
// at (X[k], Y[k]) on grid edge Edges[k]. A closed polyline repeats its first
// vertex at the end.
type Polyline struct {
	X, Y   []float64
	Edges  []grid.EdgeID
	Closed bool
}

// Len is the number of vertices.
func (p Polyline) Len() int { return len(p.X) }

// node is one crossing in the arena.
type node struct {
	x, y float64
	edge grid.EdgeID
	segs [2]int32
	deg  uint8
}

// arena is the explicit node-index graph of one level.
type arena struct {
	ids   map[grid.EdgeID]int32
	nodes []node
	ends  [][2]int32
}

// intern returns the node id of c, adding it on first sight.
func (a *arena) intern(c march.Crossing) int32 {
	if id, ok := a.ids[c.Edge]; ok {
		return id
	}
	id := int32(len(a.nodes))
	a.ids[c.Edge] = id
	a.nodes = append(a.nodes, node{x: c.X, y: c.Y, edge: c.Edge})

	return id
}

// attach records segment s as incident to node id.
func (a *arena) attach(id, s int32) error {
	n := &a.nodes[id]
	if n.deg == 2 {
		return fmt.Errorf("edge %d-%d: %w", n.edge.A, n.edge.B, ErrDegenerateCrossing)
	}
	n.segs[n.deg] = s
	n.deg++

	return nil
}

// build constructs the arena from a raster-ordered segment set.
func build(segs []march.Segment) (*arena, error) {
	a := &arena{
		ids:   make(map[grid.EdgeID]int32, len(segs)+1),
		nodes: make([]node, 0, len(segs)+1),
		ends:  make([][2]int32, len(segs)),
	}
	for k, s := range segs {
		u, v := a.intern(s.From), a.intern(s.To)
		a.ends[k] = [2]int32{u, v}
		if err := a.attach(u, int32(k)); err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", s.I, s.J, err)
		}
		if err := a.attach(v, int32(k)); err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", s.I, s.J, err)
		}
	}

	return a, nil
}

// Stitch joins segs into polylines: open lines first, then closed ones, each
// group in node scan order.
//
// Errors: ErrDegenerateCrossing (wrapped with the offending cell and edge).
// Complexity: O(len(segs)).
func Stitch(segs []march.Segment) ([]Polyline, error) {
	if len(segs) == 0 {
		return nil, nil
	}
	a, err := build(segs)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, len(a.nodes))
	used := make([]bool, len(a.ends))
	var out []Polyline

	// Open lines: start at each unvisited end.
	for id := range a.nodes {
		if seen[id] || a.nodes[id].deg != 1 {
			continue
		}
		out = append(out, a.walk(int32(id), seen, used))
	}
	// Whatever is left lies on a cycle.
	for id := range a.nodes {
		if seen[id] {
			continue
		}
		out = append(out, a.walk(int32(id), seen, used))
	}

	return out, nil
}

// walk follows unused segments from start until it reaches a dead end (open)
// or returns to start (closed).
func (a *arena) walk(start int32, seen, used []bool) Polyline {
	var p Polyline
	visit := func(id int32) {
		n := &a.nodes[id]
		p.X = append(p.X, n.x)
		p.Y = append(p.Y, n.y)
		p.Edges = append(p.Edges, n.edge)
	}

	cur := start
	seen[cur] = true
	visit(cur)
	for {
		s, ok := a.nextSegment(cur, used)
		if !ok {
			return p
		}
		used[s] = true
		nxt := a.ends[s][0]
		if nxt == cur {
			nxt = a.ends[s][1]
		}
		if nxt == start {
			visit(start)
			p.Closed = true

			return p
		}
		seen[nxt] = true
		visit(nxt)
		cur = nxt
	}
}

// nextSegment returns the first unused segment incident to id.
func (a *arena) nextSegment(id int32, used []bool) (int32, bool) {
	n := &a.nodes[id]
	for k := uint8(0); k < n.deg; k++ {
		if s := n.segs[k]; !used[s] {
			return s, true
		}
	}

	return 0, false
}
