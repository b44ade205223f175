package coordinate

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Distancef returns the Euclidean distance between start and end in the
// precision of T. NaN and Inf components propagate.
func Distancef[T constraints.Float](start, end Coord[T]) T {
	dx := end.X - start.X
	dy := end.Y - start.Y
	// The conversions keep each square rounded to T, so no FMA is fused in.
	return T(math.Sqrt(float64(T(dx*dx) + T(dy*dy))))
}

// Distance is Distancef fixed at float32.
func Distance(start, end Coord[float32]) float32 {
	return Distancef(start, end)
}

// Distance converts both points to float32 and measures between them.
func (c Coord[T]) Distance(other Coord[T]) float32 {
	return Distance(Convert[float32](c), Convert[float32](other))
}

// DistanceSquared returns dx*dx + dy*dy in T. It is exact on integer grids as
// long as the result fits in T.
func (c Coord[T]) DistanceSquared(other Coord[T]) T {
	dx := other.X - c.X
	dy := other.Y - c.Y
	return dx*dx + dy*dy
}
