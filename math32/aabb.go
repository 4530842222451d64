// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// AABB is an axis-aligned bounding box in physical pixels.
// Pos is the top-left corner plus the stacking depth Z,
// and BottomRight is the exclusive bottom-right corner.
type AABB struct {
	Pos         Vector3
	BottomRight Vector2
}

// NewAABB returns an [AABB] at the given position with the given size.
func NewAABB(pos Vector3, size Vector2) AABB {
	return AABB{Pos: pos, BottomRight: pos.XY().Add(size)}
}

func (b AABB) String() string {
	return fmt.Sprintf("[%v -> %v]", b.Pos, b.BottomRight)
}

// Width returns the horizontal extent of the box.
func (b AABB) Width() float32 {
	return b.BottomRight.X - b.Pos.X
}

// Height returns the vertical extent of the box.
func (b AABB) Height() float32 {
	return b.BottomRight.Y - b.Pos.Y
}

// Size returns the width and height of the box.
func (b AABB) Size() Vector2 {
	return Vec2(b.Width(), b.Height())
}

// SetSize sets the size, keeping the top-left corner.
func (b *AABB) SetSize(size Vector2) {
	b.BottomRight = b.Pos.XY().Add(size)
}

// SetPos moves the box so that its top-left corner is at the given
// 2D position, keeping its size and Z.
func (b *AABB) SetPos(pos Vector2) {
	size := b.Size()
	b.Pos.X = pos.X
	b.Pos.Y = pos.Y
	b.BottomRight = pos.Add(size)
}

// Translate returns the box moved by the given offset.
func (b AABB) Translate(d Vector2) AABB {
	return AABB{Pos: b.Pos.AddXY(d), BottomRight: b.BottomRight.Add(d)}
}

// IsUnder returns whether the given point lies within the box.
// The top-left edge is inclusive and the bottom-right edge is exclusive.
func (b AABB) IsUnder(p Vector2) bool {
	return p.X >= b.Pos.X && p.X < b.BottomRight.X &&
		p.Y >= b.Pos.Y && p.Y < b.BottomRight.Y
}

// Contains returns whether other lies entirely within the box.
func (b AABB) Contains(other AABB) bool {
	return other.Pos.X >= b.Pos.X && other.Pos.Y >= b.Pos.Y &&
		other.BottomRight.X <= b.BottomRight.X && other.BottomRight.Y <= b.BottomRight.Y
}

// Union returns the smallest box that covers both boxes.
// The Z of the receiver is kept.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Pos:         Vec3(Min(b.Pos.X, other.Pos.X), Min(b.Pos.Y, other.Pos.Y), b.Pos.Z),
		BottomRight: b.BottomRight.Max(other.BottomRight),
	}
}

// Intersect returns the overlap of both boxes. The result has a
// zero size if the boxes do not overlap.
func (b AABB) Intersect(other AABB) AABB {
	r := AABB{
		Pos:         Vec3(Max(b.Pos.X, other.Pos.X), Max(b.Pos.Y, other.Pos.Y), b.Pos.Z),
		BottomRight: b.BottomRight.Min(other.BottomRight),
	}
	r.BottomRight = r.BottomRight.Max(r.Pos.XY())
	return r
}

// Rect returns the box as an [image.Rectangle], with its corners
// rounded to the nearest pixel.
func (b AABB) Rect() image.Rectangle {
	return image.Rect(int(Round(b.Pos.X)), int(Round(b.Pos.Y)), int(Round(b.BottomRight.X)), int(Round(b.BottomRight.Y)))
}
