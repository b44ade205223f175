package coordinate

import (
	"math/rand"

	"github.com/hnimtadd/coordinate/utils"
)

// Sample builds a Coord from two independent draws, X first.
func Sample[T Number](draw func() T) Coord[T] {
	x := draw()
	y := draw()
	return Coord[T]{X: x, Y: y}
}

// Random draws each component from the default uniform distribution of T:
// [0, 1) for floats and the full representable range for integers. A nil r
// uses the package-level source of math/rand.
func Random[T Number](r *rand.Rand) Coord[T] {
	float64n, uint64n := rand.Float64, rand.Uint64
	if r != nil {
		float64n, uint64n = r.Float64, r.Uint64
	}

	if utils.IsFloat[T]() {
		return Sample(func() T {
			for {
				// float32 can round values just below 1 up to 1.
				if v := T(float64n()); v < 1 {
					return v
				}
			}
		})
	}
	// Conversion truncates to the width of T, which keeps the draw uniform.
	return Sample(func() T { return T(uint64n()) })
}
