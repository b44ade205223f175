package coordinate

import "errors"

// ErrConversion is returned when a sequence cannot be read as a Coord.
var ErrConversion = errors.New("coordinate: conversion error")

// Splat broadcasts a scalar into both components, so c.Add(Splat(5)) adds 5
// to X and Y.
func Splat[T Number](v T) Coord[T] {
	return Coord[T]{X: v, Y: v}
}

// FromArray maps a[0] to X and a[1] to Y.
func FromArray[T Number](a [2]T) Coord[T] {
	return Coord[T]{X: a[0], Y: a[1]}
}

func FromArrayPtr[T Number](a *[2]T) Coord[T] {
	return FromArray(*a)
}

// FromSlice reads s as [x, y]. Any length other than 2 fails with
// ErrConversion and the zero Coord; the slice is never truncated or padded.
func FromSlice[T Number](s []T) (Coord[T], error) {
	if len(s) != 2 {
		return Coord[T]{}, ErrConversion
	}
	return Coord[T]{X: s[0], Y: s[1]}, nil
}

// Convert changes the element type of c using Go's numeric conversion on
// each component. Narrowing truncates the same way J(v) does.
func Convert[J, T Number](c Coord[T]) Coord[J] {
	return Coord[J]{X: J(c.X), Y: J(c.Y)}
}
