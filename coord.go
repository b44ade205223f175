// Package coordinate provides Coord, a generic two-dimensional point over any
// Go integer or floating point type, with componentwise arithmetic,
// conversions and Euclidean distance.
//
// Coord is a plain value. It is copied on assignment, so concurrent use of
// separate copies needs no locking.
package coordinate

import (
	"fmt"

	"github.com/hnimtadd/coordinate/utils"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Coord can hold. All of them support
// +, -, * and /; Rem supplies the remainder for both kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Coord is an x/y point, or vector, in a 2-D space. The zero value is the
// origin.
type Coord[T Number] struct {
	X T
	Y T
}

func New[T Number](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// XY returns both components, in order.
func (c Coord[T]) XY() (T, T) {
	return c.X, c.Y
}

func (c Coord[T]) Array() [2]T {
	return [2]T{c.X, c.Y}
}

func (c Coord[T]) IsZero() bool {
	return c == Coord[T]{}
}

func (c Coord[T]) String() string {
	return fmt.Sprintf("Coord{%v, %v}", c.X, c.Y)
}

// Hash returns a structural hash of the coordinate. Coords that compare equal
// hash equal.
func (c Coord[T]) Hash() uint64 {
	hashed, err := hashstructure.Hash(c.hashKey(), hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash coord: %v", err))
	return hashed
}

// hashKey widens both components to a fixed-size form, so every element
// type (uintptr included) can be written out, and folds -0 into +0 to match
// float equality.
func (c Coord[T]) hashKey() any {
	switch {
	case utils.IsFloat[T]():
		x, y := float64(c.X), float64(c.Y)
		if x == 0 {
			x = 0
		}
		if y == 0 {
			y = 0
		}
		return [2]float64{x, y}
	case utils.IsSigned[T]():
		return [2]int64{int64(c.X), int64(c.Y)}
	default:
		return [2]uint64{uint64(c.X), uint64(c.Y)}
	}
}
