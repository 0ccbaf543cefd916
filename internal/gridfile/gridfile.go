// Package gridfile reads grid documents and writes traced contours.
//
// A grid document is YAML (JSON is accepted as a subset):
//
//	x: [0, 1, 2]          # 1D axis (rectilinear) or Nx×Ny matrix (curvilinear)
//	y: [0, 1]             # 1D axis or Nx×Ny matrix, same form as x
//	z: [[0, 1], [1, .nan], [2, 3]]   # Nx×Ny; .nan or null marks a missing sample
package gridfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isoline/contour"
	"github.com/katalvlaran/isoline/grid"
)

// ErrBadDocument indicates a grid document that cannot be interpreted.
var ErrBadDocument = errors.New("gridfile: malformed grid document")

// document is the on-disk grid layout.
type document struct {
	X yaml.Node    `yaml:"x"`
	Y yaml.Node    `yaml:"y"`
	Z [][]*float64 `yaml:"z"`
}

// Load decodes a grid document from r.
func Load(r io.Reader) (*grid.Grid, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	z := make([][]float64, len(doc.Z))
	for i, row := range doc.Z {
		z[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				z[i][j] = math.NaN()
			} else {
				z[i][j] = *v
			}
		}
	}

	xm, err := isMatrix(&doc.X, "x")
	if err != nil {
		return nil, err
	}
	ym, err := isMatrix(&doc.Y, "y")
	if err != nil {
		return nil, err
	}
	if xm != ym {
		return nil, fmt.Errorf("%w: x and y must both be axes or both be matrices", ErrBadDocument)
	}

	if xm {
		var x, y [][]float64
		if err = doc.X.Decode(&x); err != nil {
			return nil, fmt.Errorf("%w: x: %v", ErrBadDocument, err)
		}
		if err = doc.Y.Decode(&y); err != nil {
			return nil, fmt.Errorf("%w: y: %v", ErrBadDocument, err)
		}

		return grid.NewCurvilinear(x, y, z)
	}
	var x, y []float64
	if err = doc.X.Decode(&x); err != nil {
		return nil, fmt.Errorf("%w: x: %v", ErrBadDocument, err)
	}
	if err = doc.Y.Decode(&y); err != nil {
		return nil, fmt.Errorf("%w: y: %v", ErrBadDocument, err)
	}

	return grid.NewRectilinear(x, y, z)
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// isMatrix reports whether n is a sequence of sequences.
func isMatrix(n *yaml.Node, name string) (bool, error) {
	if n.Kind != yaml.SequenceNode {
		return false, fmt.Errorf("%w: %s must be a sequence", ErrBadDocument, name)
	}
	if len(n.Content) == 0 {
		return false, nil
	}

	return n.Content[0].Kind == yaml.SequenceNode, nil
}

// LineDoc is one traced line in an output document.
type LineDoc struct {
	Closed bool      `yaml:"closed" json:"closed"`
	X      []float64 `yaml:"x,flow" json:"x"`
	Y      []float64 `yaml:"y,flow" json:"y"`
}

// LevelDoc is one traced level in an output document.
type LevelDoc struct {
	Level float64   `yaml:"level" json:"level"`
	Lines []LineDoc `yaml:"lines" json:"lines"`
}

// Output is the document written for a traced collection.
type Output struct {
	Levels []LevelDoc `yaml:"levels" json:"levels"`
}

// NewOutput projects c into an Output document.
func NewOutput(c contour.Collection) Output {
	out := Output{Levels: make([]LevelDoc, 0, c.Len())}
	for _, cl := range c.All() {
		ld := LevelDoc{Level: cl.Level(), Lines: make([]LineDoc, 0, cl.Len())}
		for _, l := range cl.All() {
			xs, ys := l.Coordinates()
			ld.Lines = append(ld.Lines, LineDoc{Closed: l.Closed(), X: xs, Y: ys})
		}
		out.Levels = append(out.Levels, ld)
	}

	return out
}

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Write encodes c to w in format f.
func Write(w io.Writer, c contour.Collection, f Format) error {
	doc := NewOutput(c)
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("gridfile: encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("gridfile: encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("gridfile: unknown format %q", f)
	}
}
