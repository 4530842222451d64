// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/styles/sides"
)

// Directions are the main axis directions of a layout.
type Directions int32

const (
	// Row lays out children horizontally.
	Row Directions = iota

	// Column lays out children vertically.
	Column
)

func (d Directions) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	}
	return fmt.Sprintf("Directions(%d)", int32(d))
}

// Dim returns the main axis of the direction.
func (d Directions) Dim() math32.Dims {
	if d == Column {
		return math32.Y
	}
	return math32.X
}

// Aligns specifies the alignment of children along an axis.
type Aligns int32

const (
	// Start aligns children to the start (top, left) of the container.
	Start Aligns = iota

	// End aligns children to the end (bottom, right) of the container.
	End

	// Center centers children in the container.
	Center

	// Stretch makes children with an unspecified size fill the container.
	Stretch
)

func (a Aligns) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	case Center:
		return "center"
	case Stretch:
		return "stretch"
	}
	return fmt.Sprintf("Aligns(%d)", int32(a))
}

// PositionTypes determine whether a node takes part in the flow
// of its parent.
type PositionTypes int32

const (
	// Relative nodes are placed in the flow and offset by their Position.
	Relative PositionTypes = iota

	// Absolute nodes are removed from the flow and placed by their Position
	// within the parent's content box.
	Absolute
)

func (p PositionTypes) String() string {
	if p == Absolute {
		return "absolute"
	}
	return "relative"
}

// Layout is the requested layout of a node and the layout of its children.
type Layout struct {

	// Direction is the main axis along which children are placed.
	Direction Directions

	// Wrap starts a new row (or column) when the next child would overflow
	// the main axis.
	Wrap bool

	// AxisAlignment aligns children along the main axis.
	AxisAlignment Aligns

	// CrossAlignment aligns children along the cross axis.
	CrossAlignment Aligns

	// Margin is the space around the node, outside its size.
	Margin Rect

	// Padding is the space between the node's edge and its children.
	Padding Rect

	// Position offsets a relative node, or places an absolute node.
	Position Rect

	// PositionType determines whether the node is part of the flow.
	PositionType PositionTypes

	// Size is the requested size.
	Size Size

	// MinSize is the minimum size.
	MinSize Size

	// MaxSize is the maximum size.
	MaxSize Size

	// ZIndex, when set, is the absolute stacking depth of the node.
	ZIndex *float32

	// ZIndexIncrement is added to the depth inherited from the parent.
	ZIndexIncrement float32
}

// MainDim returns the main axis.
func (l Layout) MainDim() math32.Dims {
	return l.Direction.Dim()
}

// CrossDim returns the cross axis.
func (l Layout) CrossDim() math32.Dims {
	return l.Direction.Dim().Other()
}

// SetZIndex sets an absolute stacking depth.
func (l *Layout) SetZIndex(z float32) *Layout {
	l.ZIndex = &z
	return l
}

// ClampSize clamps the resolved dimensions of the given size
// to the resolved min and max sizes.
func (l *Layout) ClampSize(s Size) Size {
	return Size{
		Width:  clampDim(s.Width, l.MinSize.Width, l.MaxSize.Width),
		Height: clampDim(s.Height, l.MinSize.Height, l.MaxSize.Height),
	}
}

func clampDim(v, min, max Dimension) Dimension {
	pv, ok := v.Px()
	if !ok {
		return v
	}
	if mx, ok := max.Px(); ok && pv > mx {
		pv = mx
	}
	if mn, ok := min.Px(); ok && pv < mn {
		pv = mn
	}
	return Px(pv)
}

// LayoutResult is the resolved layout of a node, in logical pixels.
type LayoutResult struct {

	// Size is the resolved size. Both dimensions are in pixels
	// once the layout has run.
	Size Size

	// Position is the top-left corner relative to the parent's top-left corner.
	Position math32.Vector2

	// Padding is the resolved padding.
	Padding sides.Floats

	// Margin is the resolved margin.
	Margin sides.Floats

	// InnerScale is the full content size of a scrollable node.
	InnerScale *math32.Vector2
}

func (lr LayoutResult) String() string {
	return fmt.Sprintf("pos: %v size: %v", lr.Position, lr.Size)
}
