package march_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isoline/march"
)

// BenchmarkTrace measures one level on a 500×500 grid, single band and banded.
func BenchmarkTrace(b *testing.B) {
	g := randomGrid(b, 500, 500, 42)
	for _, p := range []int{1, 4} {
		opts := march.Options{Partitions: p}
		b.Run(fmt.Sprintf("bands=%d", p), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := march.Trace(g, 0.1, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
