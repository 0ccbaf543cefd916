package stitch_test

import (
	"testing"

	"github.com/katalvlaran/isoline/march"
	"github.com/katalvlaran/isoline/stitch"
)

// BenchmarkStitch joins 100 000 segments forming one long open chain.
func BenchmarkStitch(b *testing.B) {
	const n = 100_000
	segs := make([]march.Segment, n)
	for k := range segs {
		segs[k] = seg(k, k+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stitch.Stitch(segs); err != nil {
			b.Fatal(err)
		}
	}
}
