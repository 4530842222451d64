// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the layout configuration of nodes:
// dimensions, sizes, per-side rectangles and the flex layout settings.
package styles

import (
	"fmt"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/styles/sides"
)

// Units are the units of a [Dimension].
type Units int32

const (
	// UnitAuto is an unspecified value, resolved by the layout engine.
	UnitAuto Units = iota

	// UnitPx is a value in logical pixels.
	UnitPx

	// UnitPct is a percentage of the containing size along the same axis.
	UnitPct
)

func (u Units) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPx:
		return "px"
	case UnitPct:
		return "%"
	}
	return fmt.Sprintf("Units(%d)", int32(u))
}

// Dimension is a single layout length: Auto, a pixel value, or a percentage.
// The zero value is Auto.
type Dimension struct {
	Unit  Units
	Value float32
}

// Auto returns an unspecified [Dimension].
func Auto() Dimension {
	return Dimension{}
}

// Px returns a [Dimension] of the given number of logical pixels.
func Px(v float32) Dimension {
	return Dimension{Unit: UnitPx, Value: v}
}

// Pct returns a [Dimension] that is the given percentage (0-100)
// of the containing size.
func Pct(v float32) Dimension {
	return Dimension{Unit: UnitPct, Value: v}
}

func (d Dimension) String() string {
	switch d.Unit {
	case UnitAuto:
		return "auto"
	case UnitPct:
		return fmt.Sprintf("%g%%", d.Value)
	}
	return fmt.Sprintf("%gpx", d.Value)
}

// IsAuto returns whether the dimension is unspecified.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// IsPx returns whether the dimension is resolved to pixels.
func (d Dimension) IsPx() bool {
	return d.Unit == UnitPx
}

// IsPct returns whether the dimension is a percentage.
func (d Dimension) IsPct() bool {
	return d.Unit == UnitPct
}

// Px returns the pixel value and whether the dimension is resolved.
func (d Dimension) Px() (float32, bool) {
	if d.Unit == UnitPx {
		return d.Value, true
	}
	return 0, false
}

// PxOr returns the pixel value, or def if the dimension is not resolved.
func (d Dimension) PxOr(def float32) float32 {
	if d.Unit == UnitPx {
		return d.Value
	}
	return def
}

// Resolve converts a percentage into pixels when the containing
// size is itself resolved. Pixel and Auto values are returned as is.
func (d Dimension) Resolve(parent Dimension) Dimension {
	if d.Unit != UnitPct {
		return d
	}
	if pv, ok := parent.Px(); ok {
		return Px(pv * d.Value / 100)
	}
	return d
}

// MostSpecific returns whichever of d and other carries more
// information. A pixel value always wins over Auto or a percentage,
// preferring d when both are in pixels. Otherwise a percentage wins
// over Auto.
func (d Dimension) MostSpecific(other Dimension) Dimension {
	switch {
	case d.Unit == UnitPx:
		return d
	case other.Unit == UnitPx:
		return other
	case d.Unit == UnitPct:
		return d
	}
	return other
}

// Size is a two dimensional size request.
type Size struct {
	Width  Dimension
	Height Dimension
}

// SizePx returns a [Size] with both dimensions in pixels.
func SizePx(w, h float32) Size {
	return Size{Width: Px(w), Height: Px(h)}
}

// SizePct returns a [Size] with both dimensions as percentages.
func SizePct(w, h float32) Size {
	return Size{Width: Pct(w), Height: Pct(h)}
}

func (s Size) String() string {
	return fmt.Sprintf("%v x %v", s.Width, s.Height)
}

// Dim returns the dimension along the given axis.
func (s Size) Dim(d math32.Dims) Dimension {
	if d == math32.X {
		return s.Width
	}
	return s.Height
}

// SetDim sets the dimension along the given axis.
func (s *Size) SetDim(d math32.Dims, v Dimension) {
	if d == math32.X {
		s.Width = v
		return
	}
	s.Height = v
}

// Resolve resolves percentages against the given containing size.
func (s Size) Resolve(parent Size) Size {
	return Size{Width: s.Width.Resolve(parent.Width), Height: s.Height.Resolve(parent.Height)}
}

// MostSpecific applies [Dimension.MostSpecific] per axis.
func (s Size) MostSpecific(other Size) Size {
	return Size{Width: s.Width.MostSpecific(other.Width), Height: s.Height.MostSpecific(other.Height)}
}

// IsResolved returns whether both dimensions are in pixels.
func (s Size) IsResolved() bool {
	return s.Width.IsPx() && s.Height.IsPx()
}

// Vector returns the pixel values of the size, using 0 for
// unresolved dimensions.
func (s Size) Vector() math32.Vector2 {
	return math32.Vec2(s.Width.PxOr(0), s.Height.PxOr(0))
}

// Rect holds a [Dimension] per box edge, used for margins,
// padding and positions.
type Rect struct {
	sides.Sides[Dimension]
}

// NewRect returns a [Rect] set with CSS-style side values;
// see [sides.Sides.Set].
func NewRect(vals ...Dimension) Rect {
	return Rect{sides.NewSides(vals...)}
}

// RectPx returns a [Rect] with the given pixel values for
// top, right, bottom and left, following [sides.Sides.Set].
func RectPx(vals ...float32) Rect {
	ds := make([]Dimension, len(vals))
	for i, v := range vals {
		ds[i] = Px(v)
	}
	return NewRect(ds...)
}

// Resolve resolves the edges against the given containing size.
// Top and bottom resolve against the height, left and right against
// the width. Auto and unresolvable percentages become 0.
func (r Rect) Resolve(parent Size) sides.Floats {
	return sides.Floats{
		Top:    r.Top.Resolve(parent.Height).PxOr(0),
		Right:  r.Right.Resolve(parent.Width).PxOr(0),
		Bottom: r.Bottom.Resolve(parent.Height).PxOr(0),
		Left:   r.Left.Resolve(parent.Width).PxOr(0),
	}
}

// MostSpecific resolves the position of a box of the given size inside a
// container of the given size. The left/right and top/bottom pairs are
// resolved independently: an explicit side wins, otherwise it is inferred
// from the opposite side plus the size. Sides that cannot be inferred
// remain Auto.
func (r Rect) MostSpecific(size math32.Vector2, parent Size) Rect {
	res := Rect{}
	res.Left, res.Right = mostSpecificPair(r.Left.Resolve(parent.Width), r.Right.Resolve(parent.Width), size.X, parent.Width)
	res.Top, res.Bottom = mostSpecificPair(r.Top.Resolve(parent.Height), r.Bottom.Resolve(parent.Height), size.Y, parent.Height)
	return res
}

func mostSpecificPair(start, end Dimension, size float32, parent Dimension) (Dimension, Dimension) {
	pv, pok := parent.Px()
	sv, sok := start.Px()
	ev, eok := end.Px()
	switch {
	case sok && eok:
		return start, end
	case sok && pok:
		return start, Px(pv - sv - size)
	case sok:
		return start, Auto()
	case eok && pok:
		return Px(pv - ev - size), end
	}
	return Auto(), end
}
