// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/mecha-org/mctk-sub000/math32"
)

// Renderable is a union interface for the primitives a component renders:
// [Rect], [Text] or [Line]. All coordinates are in physical pixels.
type Renderable interface {

	// Bounds returns the area covered by the primitive. Its Z is the
	// stacking depth used to order primitives for drawing.
	Bounds() math32.AABB

	isRenderable()
}

// Rect is a filled rectangle with an optional border and rounded corners.
type Rect struct {
	AABB         math32.AABB
	Color        color.RGBA
	BorderColor  color.RGBA
	BorderWidth  float32
	CornerRadius float32
}

// Text is a run of text wrapped to the width of its box.
type Text struct {
	AABB     math32.AABB
	Text     string
	Color    color.RGBA
	FontSize float32
}

// Line is a straight line segment.
type Line struct {
	From  math32.Vector3
	To    math32.Vector2
	Color color.RGBA
	Width float32
}

func (r Rect) Bounds() math32.AABB { return r.AABB }
func (t Text) Bounds() math32.AABB { return t.AABB }

func (l Line) Bounds() math32.AABB {
	from := l.From.XY()
	pos := from.Min(l.To)
	return math32.AABB{Pos: math32.Vec3(pos.X, pos.Y, l.From.Z), BottomRight: from.Max(l.To)}
}

func (Rect) isRenderable() {}
func (Text) isRenderable() {}
func (Line) isRenderable() {}

func (r Rect) String() string { return fmt.Sprintf("Rect%v", r.AABB) }
func (t Text) String() string { return fmt.Sprintf("Text%v %q", t.AABB, t.Text) }
func (l Line) String() string { return fmt.Sprintf("Line[%v -> %v]", l.From, l.To) }

// SortByZ sorts the given renderables by ascending stacking depth,
// keeping the order of renderables at the same depth.
func SortByZ(rs []Renderable) {
	slices.SortStableFunc(rs, func(a, b Renderable) int {
		za, zb := a.Bounds().Pos.Z, b.Bounds().Pos.Z
		switch {
		case za < zb:
			return -1
		case za > zb:
			return 1
		}
		return 0
	})
}
