package contour_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isoline/contour"
)

// BenchmarkContoursN traces ten levels of a 400×400 field at several worker counts.
func BenchmarkContoursN(b *testing.B) {
	g := wavy(b, 400, 400)
	for _, w := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := contour.ContoursN(g, 10, contour.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkContour_Partitions traces one level of the dense paraboloid.
func BenchmarkContour_Partitions(b *testing.B) {
	g := paraboloid(b)
	for _, p := range []int{1, 2, 8} {
		b.Run(fmt.Sprintf("partitions=%d", p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := contour.Contour(g, 4, contour.WithPartitions(p)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
