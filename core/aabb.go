// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// SetAABB converts the layout results of the tree into physical bounding
// boxes: positions and sizes are scaled by the scale factor, rounded, and
// made absolute, scroll offsets are clamped and applied to the children
// of scrollable nodes, and each node gets a depth one above its parent
// unless its layout sets a z-index. The root has depth 1.
func (n *Node) SetAABB(scaleFactor float32, fonts paint.FontMetrics) {
	n.AABB = n.layoutAABB(math32.Vector2{}, nodeZ(0, n.Layout), scaleFactor)
	n.InnerScale = scaleInner(n.LayoutResult.InnerScale, scaleFactor)
	n.setChildrenAABB(n.AABB, scaleFactor, fonts)
}

// nodeZ returns the depth of a node with the given layout under a
// parent at the given depth.
func nodeZ(parentZ float32, l styles.Layout) float32 {
	if l.ZIndex != nil {
		return *l.ZIndex
	}
	return parentZ + 1 + l.ZIndexIncrement
}

// layoutAABB returns the physical bounding box of the layout result,
// relative to the given physical base position.
func (n *Node) layoutAABB(base math32.Vector2, z, scaleFactor float32) math32.AABB {
	pos := base.Add(n.LayoutResult.Position.MulScalar(scaleFactor).Round())
	size := n.LayoutResult.Size.Vector().MulScalar(scaleFactor).Round()
	return math32.NewAABB(math32.Vec3(pos.X, pos.Y, z), size)
}

func scaleInner(is *math32.Vector2, scaleFactor float32) *math32.Vector2 {
	if is == nil {
		return nil
	}
	s := is.MulScalar(scaleFactor).Round()
	return &s
}

// setChildrenAABB sets the bounding boxes of the descendants of the node,
// whose own AABB is set, and its InclusiveAABB.
func (n *Node) setChildrenAABB(parent math32.AABB, scaleFactor float32, fonts paint.FontMetrics) {
	base := n.AABB.Pos.XY()
	for _, c := range n.Children {
		c.AABB = c.layoutAABB(base, nodeZ(n.AABB.Pos.Z, c.Layout), scaleFactor)
		c.InnerScale = scaleInner(c.LayoutResult.InnerScale, scaleFactor)
	}

	sp := n.Component.ScrollPosition()
	if n.Component.FullControl() {
		boxes := make([]*math32.AABB, len(n.Children))
		for i, c := range n.Children {
			boxes[i] = &c.AABB
		}
		n.Component.SetAABB(&n.AABB, parent, boxes, n.frame(sp), fonts)
	}

	n.ScrollOffset = math32.Vector2{}
	if sp != nil {
		n.ScrollOffset = clampScroll(sp, n.InnerScale, n.frame(sp))
		for _, c := range n.Children {
			c.AABB = c.AABB.Translate(n.ScrollOffset.MulScalar(-1))
		}
	}

	incl := n.AABB
	for _, c := range n.Children {
		c.setChildrenAABB(n.AABB, scaleFactor, fonts)
		if sp == nil {
			incl = incl.Union(c.InclusiveAABB)
		}
	}
	n.InclusiveAABB = incl
}

// frame returns the visible area of the node.
func (n *Node) frame(sp *ScrollPosition) math32.AABB {
	if sp == nil {
		return n.AABB
	}
	return n.Component.FrameBounds(n.AABB, n.InnerScale)
}

// clampScroll clamps the requested scroll offset of each scrolling axis
// to [0, max(0, inner - visible)]. Other axes get 0.
func clampScroll(sp *ScrollPosition, inner *math32.Vector2, frame math32.AABB) math32.Vector2 {
	var off math32.Vector2
	if inner == nil {
		return off
	}
	visible := frame.Size()
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		if !sp.Scrolls(d) {
			continue
		}
		limit := max(0, inner.Dim(d)-visible.Dim(d))
		off.SetDim(d, math32.Clamp(sp.Offset.Dim(d), 0, limit))
	}
	return off
}

// ClampScrollOffset returns the given scroll offset clamped to the
// scrollable range of a node with the given frame and inner scale,
// for the axes that sp scrolls.
func ClampScrollOffset(sp ScrollPosition, inner *math32.Vector2, frame math32.AABB) math32.Vector2 {
	return clampScroll(&sp, inner, frame)
}
