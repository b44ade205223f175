package coordinate

import (
	"math"

	"github.com/hnimtadd/coordinate/utils"
)

// All operations below work on each axis independently. The *Assign forms
// are equivalent to c = c.Op(other).

func (c Coord[T]) Add(other Coord[T]) Coord[T] {
	return Coord[T]{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c *Coord[T]) AddAssign(other Coord[T]) {
	*c = c.Add(other)
}

func (c Coord[T]) Sub(other Coord[T]) Coord[T] {
	return Coord[T]{X: c.X - other.X, Y: c.Y - other.Y}
}

func (c *Coord[T]) SubAssign(other Coord[T]) {
	*c = c.Sub(other)
}

func (c Coord[T]) Mul(other Coord[T]) Coord[T] {
	return Coord[T]{X: c.X * other.X, Y: c.Y * other.Y}
}

func (c *Coord[T]) MulAssign(other Coord[T]) {
	*c = c.Mul(other)
}

// Div divides componentwise. Integer components truncate toward zero and
// panic on a zero divisor; float components follow IEEE 754 and yield ±Inf
// or NaN instead.
func (c Coord[T]) Div(other Coord[T]) Coord[T] {
	return Coord[T]{X: div(c.X, other.X), Y: div(c.Y, other.Y)}
}

func (c *Coord[T]) DivAssign(other Coord[T]) {
	*c = c.Div(other)
}

// Rem takes the componentwise remainder. The result has the sign of the
// dividend for both kinds. Integer components panic on a zero divisor; float
// components use math.Mod and yield NaN.
func (c Coord[T]) Rem(other Coord[T]) Coord[T] {
	return Coord[T]{X: rem(c.X, other.X), Y: rem(c.Y, other.Y)}
}

func (c *Coord[T]) RemAssign(other Coord[T]) {
	*c = c.Rem(other)
}

// Neg returns the additive inverse. Unsigned components wrap.
func (c Coord[T]) Neg() Coord[T] {
	return Coord[T]{}.Sub(c)
}

func div[T Number](a, b T) T {
	if !utils.IsFloat[T]() {
		utils.Assert(b != 0, "coordinate: integer division by zero")
	}
	return a / b
}

func rem[T Number](a, b T) T {
	if utils.IsFloat[T]() {
		// fmod is exact, so narrowing back to float32 loses nothing.
		return T(math.Mod(float64(a), float64(b)))
	}
	utils.Assert(b != 0, "coordinate: integer remainder by zero")
	if utils.IsSigned[T]() {
		return T(int64(a) % int64(b))
	}
	return T(uint64(a) % uint64(b))
}
