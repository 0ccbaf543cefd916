package march_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/march"
)

// unitCell builds a 2×2 grid on [0,1]² and returns its only cell.
func unitCell(t *testing.T, z [][]float64) (*grid.Grid, grid.Cell) {
	t.Helper()
	g, err := grid.NewRectilinear([]float64{0, 1}, []float64{0, 1}, z)
	require.NoError(t, err)
	c, err := g.Cell(0, 0)
	require.NoError(t, err)

	return g, c
}

// edges lists the edge identities of a segment set, pairwise.
func edges(segs []march.Segment) [][2]grid.EdgeID {
	out := make([][2]grid.EdgeID, len(segs))
	for k, s := range segs {
		out[k] = [2]grid.EdgeID{s.From.Edge, s.To.Edge}
	}

	return out
}

//----------------------------------------------------------------------------//
// Classification
//----------------------------------------------------------------------------//

// TestClassify_TieGoesAbove verifies that value == level counts as above.
func TestClassify_TieGoesAbove(t *testing.T) {
	_, c := unitCell(t, [][]float64{{2, 0}, {0, 0}}) // SW=2
	code, ok := march.Classify(c, 2)
	require.True(t, ok)
	assert.Equal(t, uint8(0x1), code)

	code, ok = march.Classify(c, 0)
	require.True(t, ok)
	assert.Equal(t, uint8(0xF), code, "all corners equal or above level 0")
}

// TestClassify_NonFinite verifies that NaN and Inf corners disqualify a cell.
func TestClassify_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, c := unitCell(t, [][]float64{{0, bad}, {1, 1}})
		_, ok := march.Classify(c, 0.5)
		assert.False(t, ok, "corner %v", bad)
		assert.Empty(t, march.CellSegments(nil, c, 0.5, march.DeciderMean))
	}
}

//----------------------------------------------------------------------------//
// Interpolation and segments
//----------------------------------------------------------------------------//

// TestSingleSegment2x2 traces z = [[0,0],[0,4]] at level 2: one segment between
// the midpoints of the two edges incident to the corner valued 4.
func TestSingleSegment2x2(t *testing.T) {
	g, _ := unitCell(t, [][]float64{{0, 0}, {0, 4}})
	segs, err := march.Trace(g, 2, march.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, segs, 1)

	s := segs[0]
	assert.Equal(t, march.Crossing{Edge: grid.EdgeID{A: 2, B: 3}, X: 1, Y: 0.5}, s.From)
	assert.Equal(t, march.Crossing{Edge: grid.EdgeID{A: 1, B: 3}, X: 0.5, Y: 1}, s.To)
	assert.Equal(t, [2]int{0, 0}, [2]int{s.I, s.J})
}

// TestInterpolate_OrderIndependent checks that a shared edge yields the same
// bits whichever node is passed first.
func TestInterpolate_OrderIndependent(t *testing.T) {
	a := grid.Node{Index: 4, X: 0.1, Y: 0.7, Z: 0.3}
	b := grid.Node{Index: 9, X: 0.45, Y: 0.7, Z: 1.9}
	for _, level := range []float64{0.3, 0.31, 1.0, 1.7} {
		assert.Equal(t, march.Interpolate(a, b, level), march.Interpolate(b, a, level))
	}
	c := march.Interpolate(b, a, 0.3)
	assert.Equal(t, grid.EdgeID{A: 4, B: 9}, c.Edge)
	assert.Equal(t, 0.1, c.X, "t = 0 lands exactly on the lower node")
}

// TestInterpolate_OnNodes checks that a level equal to either node value
// yields that node's coordinates bit for bit.
func TestInterpolate_OnNodes(t *testing.T) {
	a := grid.Node{Index: 2, X: 0.1, Y: 0.2, Z: -3}
	b := grid.Node{Index: 3, X: 0.3, Y: 0.7, Z: 0.7}

	lo := march.Interpolate(a, b, -3)
	assert.Equal(t, [2]float64{0.1, 0.2}, [2]float64{lo.X, lo.Y})
	hi := march.Interpolate(a, b, 0.7)
	assert.Equal(t, [2]float64{0.3, 0.7}, [2]float64{hi.X, hi.Y})
}

// TestInterpolate_WideRange keeps the crossing finite when the node values
// differ by more than MaxFloat64.
func TestInterpolate_WideRange(t *testing.T) {
	a := grid.Node{Index: 0, X: 0, Y: 5, Z: -1e308}
	b := grid.Node{Index: 1, X: 2, Y: 5, Z: 1e308}

	c := march.Interpolate(a, b, 0)
	assert.Equal(t, 1.0, c.X)
	assert.Equal(t, 5.0, c.Y)

	c = march.Interpolate(a, b, 5e307)
	assert.InDelta(t, 1.5, c.X, 1e-12)
}

//----------------------------------------------------------------------------//
// Saddles
//----------------------------------------------------------------------------//

// TestSaddle_Mean checks both pairings of code 5 under the mean decider.
// z = [[1,0],[0,1]] puts SW=1, SE=0, NE=1, NW=0, mean 0.5.
func TestSaddle_Mean(t *testing.T) {
	g, c := unitCell(t, [][]float64{{1, 0}, {0, 1}})
	code, _ := march.Classify(c, 0.5)
	require.True(t, march.IsSaddle(code))

	// Centre 0.5 >= 0.5: SW and NE joined, SE and NW cut off.
	segs, err := march.Trace(g, 0.5, march.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][2]grid.EdgeID{
		{{A: 0, B: 2}, {A: 2, B: 3}}, // bottom → right around SE
		{{A: 0, B: 1}, {A: 1, B: 3}}, // left → top around NW
	}, edges(segs))

	// Centre 0.5 < 0.6: SE and NW joined, SW and NE cut off.
	segs, err = march.Trace(g, 0.6, march.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][2]grid.EdgeID{
		{{A: 0, B: 1}, {A: 0, B: 2}}, // left → bottom around SW
		{{A: 2, B: 3}, {A: 1, B: 3}}, // right → top around NE
	}, edges(segs))
}

// TestSaddle_Code10 mirrors TestSaddle_Mean for the other diagonal.
func TestSaddle_Code10(t *testing.T) {
	g, _ := unitCell(t, [][]float64{{0, 1}, {1, 0}}) // SE=1, NW=1
	segs, err := march.Trace(g, 0.5, march.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][2]grid.EdgeID{
		{{A: 0, B: 1}, {A: 0, B: 2}},
		{{A: 2, B: 3}, {A: 1, B: 3}},
	}, edges(segs), "centre above joins SE and NW")
}

// TestSaddle_DeciderSaddle shows a cell where the two rules disagree.
// SW=10, NE=0.56, SE=NW=0 at level 0.55: mean 2.64 is above, the bilinear
// saddle value 5.6/10.56 ≈ 0.53 is below.
func TestSaddle_DeciderSaddle(t *testing.T) {
	g, c := unitCell(t, [][]float64{{10, 0}, {0, 0.56}})
	assert.InDelta(t, 2.64, march.DeciderMean.Centre(c), 1e-12)
	assert.InDelta(t, 5.6/10.56, march.DeciderSaddle.Centre(c), 1e-12)

	mean, err := march.Trace(g, 0.55, march.Options{Decider: march.DeciderMean})
	require.NoError(t, err)
	saddle, err := march.Trace(g, 0.55, march.Options{Decider: march.DeciderSaddle})
	require.NoError(t, err)

	assert.Equal(t, grid.EdgeID{A: 0, B: 2}, mean[0].From.Edge, "mean cuts off SE first")
	assert.Equal(t, grid.EdgeID{A: 0, B: 1}, saddle[0].From.Edge, "saddle cuts off SW first")
}

// TestParseDecider covers the names accepted on the command line.
func TestParseDecider(t *testing.T) {
	for _, d := range []march.Decider{march.DeciderMean, march.DeciderSaddle} {
		got, ok := march.ParseDecider(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := march.ParseDecider("bilinear")
	assert.False(t, ok)
	assert.Equal(t, "unknown", march.Decider(9).String())
}

//----------------------------------------------------------------------------//
// Whole-grid trace
//----------------------------------------------------------------------------//

// randomGrid builds an nx×ny non-uniform grid of noisy values.
func randomGrid(t testing.TB, nx, ny int, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, nx)
	y := make([]float64, ny)
	for i := 1; i < nx; i++ {
		x[i] = x[i-1] + 0.1 + rng.Float64()
	}
	for j := 1; j < ny; j++ {
		y[j] = y[j-1] + 0.1 + rng.Float64()
	}
	z := make([][]float64, nx)
	for i := range z {
		z[i] = make([]float64, ny)
		for j := range z[i] {
			z[i][j] = math.Sin(x[i]*0.7)*math.Cos(y[j]*0.5) + 0.3*rng.Float64()
		}
	}
	g, err := grid.NewRectilinear(x, y, z)
	if err != nil {
		t.Fatalf("NewRectilinear: %v", err)
	}

	return g
}

// TestTrace_SharedEdgeConsistency verifies that every crossing identity is
// reported by at most two cells, always with identical coordinates.
func TestTrace_SharedEdgeConsistency(t *testing.T) {
	g := randomGrid(t, 40, 30, 7)
	for _, d := range []march.Decider{march.DeciderMean, march.DeciderSaddle} {
		for _, level := range []float64{-0.5, 0, 0.15, 0.6} {
			segs, err := march.Trace(g, level, march.Options{Decider: d})
			require.NoError(t, err)
			require.NotEmpty(t, segs)

			seen := map[grid.EdgeID]march.Crossing{}
			count := map[grid.EdgeID]int{}
			for _, s := range segs {
				for _, c := range []march.Crossing{s.From, s.To} {
					if prev, ok := seen[c.Edge]; ok {
						assert.Equal(t, prev, c, "edge %v", c.Edge)
					}
					seen[c.Edge] = c
					count[c.Edge]++
				}
			}
			for e, n := range count {
				assert.LessOrEqual(t, n, 2, "edge %v at level %g", e, level)
				if n == 1 {
					assert.True(t, g.IsBoundaryEdge(e), "dangling crossing %v off the boundary", e)
				}
			}
		}
	}
}

// TestTrace_PartitionsDeterministic checks that banding never changes the output.
func TestTrace_PartitionsDeterministic(t *testing.T) {
	g := randomGrid(t, 57, 23, 3)
	want, err := march.Trace(g, 0.2, march.DefaultOptions())
	require.NoError(t, err)
	for _, p := range []int{0, 2, 3, 8, 56, 1000} {
		got, err := march.Trace(g, 0.2, march.Options{Partitions: p})
		require.NoError(t, err)
		assert.Equal(t, want, got, "partitions=%d", p)
	}
}

// TestTrace_NaNExcluded checks that no segment comes from a cell touching NaN.
func TestTrace_NaNExcluded(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2}
	z := [][]float64{
		{0, 1, 0},
		{1, math.NaN(), 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	g, err := grid.NewRectilinear(x, y, z)
	require.NoError(t, err)
	segs, err := march.Trace(g, 0.5, march.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, segs)
	for _, s := range segs {
		assert.Equal(t, 2, s.I, "only cells with i = 2 avoid the NaN node")
	}
}

// TestTrace_Degenerate covers NaN levels and grids without cells.
func TestTrace_Degenerate(t *testing.T) {
	g, _ := unitCell(t, [][]float64{{0, 1}, {1, 0}})
	_, err := march.Trace(g, math.NaN(), march.DefaultOptions())
	assert.ErrorIs(t, err, march.ErrInvalidLevel)

	line, err := grid.NewRectilinear([]float64{0}, []float64{0, 1, 2}, [][]float64{{0, 1, 2}})
	require.NoError(t, err)
	segs, err := march.Trace(line, 0.5, march.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, segs)

	segs, err = march.Trace(g, 5, march.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, segs, "level above every value")
}
