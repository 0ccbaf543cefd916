package contour

import (
	"iter"
	"slices"
)

// Float is the set of coordinate types lines can be projected to.
type Float interface {
	~float32 | ~float64
}

// Point is a coordinate pair.
type Point[T Float] struct {
	X, Y T
}

// Vertex is a float64 coordinate pair, the native vertex type.
type Vertex = Point[float64]

// Line is one isoline: an ordered sequence of vertices. It is closed exactly
// when its first and last vertices are equal; otherwise both ends lie on the
// grid boundary (or on the rim of a region of NaN values). A closed line may
// touch the boundary at a node whose value equals the level. Isolated points
// where the field only touches the level are not reported as lines.
//
// Line has the Len/XY method set of gonum's plotter.XYer, so it can be handed
// to plotting code directly.
type Line struct {
	x, y   []float64
	closed bool
}

// Len is the number of vertices.
func (l Line) Len() int { return len(l.x) }

// XY returns vertex i.
func (l Line) XY(i int) (x, y float64) { return l.x[i], l.y[i] }

// At returns vertex i as a Vertex.
func (l Line) At(i int) Vertex { return Vertex{X: l.x[i], Y: l.y[i]} }

// Closed reports whether the line closes on itself.
func (l Line) Closed() bool { return l.closed }

// Coordinates returns the x and y coordinates of the vertices as two
// parallel slices. The slices are copies.
func (l Line) Coordinates() (xs, ys []float64) {
	return slices.Clone(l.x), slices.Clone(l.y)
}

// Vertices returns the vertices as coordinate pairs.
func (l Line) Vertices() []Vertex {
	return VerticesAs[float64](l)
}

// All iterates the vertices with their positions. The sequence is restartable.
func (l Line) All() iter.Seq2[int, Vertex] {
	return func(yield func(int, Vertex) bool) {
		for i := range l.x {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// CoordinatesAs is Coordinates converted to the coordinate type T.
func CoordinatesAs[T Float](l Line) (xs, ys []T) {
	xs = make([]T, len(l.x))
	ys = make([]T, len(l.y))
	for i := range l.x {
		xs[i], ys[i] = T(l.x[i]), T(l.y[i])
	}

	return xs, ys
}

// VerticesAs is Vertices converted to the coordinate type T.
func VerticesAs[T Float](l Line) []Point[T] {
	out := make([]Point[T], len(l.x))
	for i := range l.x {
		out[i] = Point[T]{X: T(l.x[i]), Y: T(l.y[i])}
	}

	return out
}

// ContourLevel is the set of lines traced at one level.
type ContourLevel struct {
	level float64
	lines []Line
}

// Level is the field value the lines were traced at.
func (c ContourLevel) Level() float64 { return c.level }

// Lines returns the lines in traversal order: open lines first, then closed.
// The returned slice is a copy; the lines themselves are immutable.
func (c ContourLevel) Lines() []Line { return slices.Clone(c.lines) }

// Len is the number of lines.
func (c ContourLevel) Len() int { return len(c.lines) }

// At returns line i.
func (c ContourLevel) At(i int) Line { return c.lines[i] }

// All iterates the lines. The sequence is restartable.
func (c ContourLevel) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, l := range c.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Collection is the result of tracing several levels, in request order.
type Collection struct {
	levels []ContourLevel
}

// Levels returns the traced levels. The returned slice is a copy.
func (c Collection) Levels() []ContourLevel { return slices.Clone(c.levels) }

// Len is the number of levels.
func (c Collection) Len() int { return len(c.levels) }

// At returns level i.
func (c Collection) At(i int) ContourLevel { return c.levels[i] }

// Values returns the level values in order.
func (c Collection) Values() []float64 {
	out := make([]float64, len(c.levels))
	for i, cl := range c.levels {
		out[i] = cl.level
	}

	return out
}

// All iterates the levels. The sequence is restartable.
func (c Collection) All() iter.Seq2[int, ContourLevel] {
	return func(yield func(int, ContourLevel) bool) {
		for i, cl := range c.levels {
			if !yield(i, cl) {
				return
			}
		}
	}
}
