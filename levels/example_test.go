package levels_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isoline/levels"
)

// ExampleEven picks four levels strictly inside the range of a field with a
// missing sample.
func ExampleEven() {
	z := []float64{0, 2.5, math.NaN(), 10}
	lv, err := levels.Even(z, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(lv)

	// Output:
	// [2 4 6 8]
}
