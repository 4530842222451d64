// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides,
// with either a single value for all, or different values
// for subsets.
package sides

import (
	"fmt"
	"log/slog"

	"github.com/mecha-org/mctk-sub000/math32"
)

// Sides contains values for each side of a box.
type Sides[T any] struct {

	// top side value
	Top T

	// right side value
	Right T

	// bottom side value
	Bottom T

	// left side value
	Left T
}

// NewSides is a helper that creates new sides of the given type
// and calls Set on them with the given values.
func NewSides[T any](vals ...T) Sides[T] {
	var s Sides[T]
	s.Set(vals...)
	return s
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value,
// the right and left are set to the second value,
// and the bottom is set to the third value.
// If 4 values are provided, they are set in top, right, bottom, left order.
// This behavior is based on the CSS multi-side setting syntax,
// like that with padding (see https://www.w3schools.com/css/css_padding.asp).
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		if len(vals) > 4 {
			slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
		}
	}
	return s
}

// SetVertical sets the top and bottom sides to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left sides to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets all of the sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// Start returns the side at the start of the given dimension:
// Left for [math32.X] and Top for [math32.Y].
func (s Sides[T]) Start(d math32.Dims) T {
	if d == math32.X {
		return s.Left
	}
	return s.Top
}

// End returns the side at the end of the given dimension:
// Right for [math32.X] and Bottom for [math32.Y].
func (s Sides[T]) End(d math32.Dims) T {
	if d == math32.X {
		return s.Right
	}
	return s.Bottom
}

func (s Sides[T]) String() string {
	return fmt.Sprintf("{Top: %v, Right: %v, Bottom: %v, Left: %v}", s.Top, s.Right, s.Bottom, s.Left)
}

// Floats is a set of resolved side values in pixels.
type Floats = Sides[float32]

// Sum returns the sum of the start and end sides of the given dimension.
func Sum(s Floats, d math32.Dims) float32 {
	return s.Start(d) + s.End(d)
}

// Total returns the horizontal and vertical sums of the sides.
func Total(s Floats) math32.Vector2 {
	return math32.Vec2(Sum(s, math32.X), Sum(s, math32.Y))
}
