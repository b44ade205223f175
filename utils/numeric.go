package utils

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating point type. Named types are
// classified by their underlying type.
func IsFloat[T number]() bool {
	var one T = 1
	// Integer division truncates 1/2 to zero, float division does not.
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T number]() bool {
	var zero T
	return zero-1 < zero
}
