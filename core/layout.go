// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
	"github.com/mecha-org/mctk-sub000/styles/sides"
)

// Layout is a flexbox-like layout of a node tree: each node places its
// children along its main axis, optionally wrapping them into rows, and
// sizes itself from its children when its own size is not given.
//
// The layout runs in passes over the whole tree. Within a pass, a parent
// resolves the size of each child against its own inner size, lays out the
// child subtree, then distributes the remaining main axis space among
// stretched children and sizes children that are a percentage of their
// largest sibling. Sizes resolved in one pass are kept by the next one,
// which is what lets percentages that depend on sibling sizes settle.

// minNodeSize is the size of an empty node with no size or min size.
const minNodeSize = 10

// layoutContext holds the inputs shared by all nodes in a layout pass.
type layoutContext struct {
	fonts       paint.FontMetrics
	scaleFactor float32
	final       bool
}

// CalculateLayout resolves the [styles.LayoutResult] of every node in the
// tree for the given logical window size. It runs the given number of
// passes (at least one) over the tree with the same bounds.
func (n *Node) CalculateLayout(bounds math32.Vector2, fonts paint.FontMetrics, scaleFactor float32, passes int) {
	passes = max(passes, 1)
	bsz := styles.SizePx(bounds.X, bounds.Y)
	for i := range passes {
		lc := &layoutContext{fonts: fonts, scaleFactor: scaleFactor, final: i == passes-1}
		size := n.Layout.Size.Resolve(bsz).MostSpecific(n.LayoutResult.Size).MostSpecific(bsz)
		n.LayoutResult.Size = clampSize(n.Layout, size, bsz)
		n.LayoutResult.Margin = n.Layout.Margin.Resolve(bsz)
		n.LayoutResult.Position = math32.Vec2(n.LayoutResult.Margin.Left, n.LayoutResult.Margin.Top)
		n.resolveLayout(lc)
	}
	if DebugSettings.LayoutTrace {
		var b strings.Builder
		n.writeLayout(&b, 0)
		fmt.Print(b.String())
	}
}

func (n *Node) writeLayout(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%sLayout: %v %v\n", strings.Repeat("  ", depth), n, n.LayoutResult)
	for _, c := range n.Children {
		c.writeLayout(b, depth+1)
	}
}

// clampSize clamps the size to the min and max sizes of the layout,
// resolved against the given containing size.
func clampSize(l styles.Layout, size, parent styles.Size) styles.Size {
	l.MinSize = l.MinSize.Resolve(parent)
	l.MaxSize = l.MaxSize.Resolve(parent)
	return l.ClampSize(size)
}

// resolveLayout lays out the subtree of the node, whose own size
// request has been set in LayoutResult.Size by its parent.
func (n *Node) resolveLayout(lc *layoutContext) {
	lr := &n.LayoutResult
	sp := n.Component.ScrollPosition()
	lr.Padding = n.Layout.Padding.Resolve(lr.Size)

	inner := styles.Size{}
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		if v, ok := lr.Size.Dim(d).Px(); ok && !sp.Scrolls(d) {
			inner.SetDim(d, styles.Px(max(0, v-sides.Sum(lr.Padding, d))))
		}
	}

	n.resolveChildSizes(inner, lc)
	content := n.setChildrenPosition(inner)
	n.resolveSize(content, sp)
	n.setInnerScale(content, sp)
}

// resolveChildSizes sets the size of each child, lays out its subtree,
// and then applies stretching along the main axis and percentages of
// the largest sibling along the cross axis.
func (n *Node) resolveChildSizes(inner styles.Size, lc *layoutContext) {
	main, cross := n.Layout.MainDim(), n.Layout.CrossDim()
	innerMain, mainOK := inner.Dim(main).Px()
	_, crossOK := inner.Dim(cross).Px()
	stretchMain := n.Layout.AxisAlignment == styles.Stretch && mainOK

	var used, maxCross float32
	var stretched, pctCross []*Node
	for _, c := range n.Children {
		req := c.Layout.Size
		if n.Layout.CrossAlignment == styles.Stretch && req.Dim(cross).IsAuto() {
			req.SetDim(cross, styles.Pct(100))
		}
		margin := c.Layout.Margin.Resolve(inner)
		c.LayoutResult.Margin = margin

		size := req.Resolve(inner).MostSpecific(c.LayoutResult.Size)
		if !size.IsResolved() {
			maxW := availableSpace(inner, margin, math32.X)
			maxH := availableSpace(inner, margin, math32.Y)
			size.Width, size.Height = c.Component.FillBounds(size.Width, size.Height, maxW, maxH, lc.fonts, lc.scaleFactor)
		}
		c.LayoutResult.Size = clampSize(c.Layout, size, inner)
		c.resolveLayout(lc)

		if c.Layout.PositionType == styles.Absolute {
			continue
		}
		csize := c.LayoutResult.Size.Vector()
		if stretchMain && c.Layout.Size.Dim(main).IsAuto() {
			stretched = append(stretched, c)
		} else {
			used += csize.Dim(main) + sides.Sum(margin, main)
		}
		if !crossOK && req.Dim(cross).IsPct() {
			pctCross = append(pctCross, c)
		} else {
			maxCross = max(maxCross, csize.Dim(cross)+sides.Sum(margin, cross))
		}
	}

	if len(stretched) > 0 {
		share := max(0, (innerMain-used)/float32(len(stretched)))
		for _, c := range stretched {
			size := c.LayoutResult.Size
			size.SetDim(main, styles.Px(max(0, share-sides.Sum(c.LayoutResult.Margin, main))))
			c.LayoutResult.Size = clampSize(c.Layout, size, inner)
			c.resolveLayout(lc)
		}
	}
	for _, c := range pctCross {
		req := c.Layout.Size.Dim(cross)
		if req.IsAuto() {
			req = styles.Pct(100)
		}
		size := c.LayoutResult.Size
		size.SetDim(cross, styles.Px(maxCross*req.Value/100-sides.Sum(c.LayoutResult.Margin, cross)))
		c.LayoutResult.Size = clampSize(c.Layout, size, inner)
		c.resolveLayout(lc)
	}
}

// availableSpace returns the space available to a child with the given
// margin along d, or Auto if the inner size is not resolved.
func availableSpace(inner styles.Size, margin sides.Floats, d math32.Dims) styles.Dimension {
	v, ok := inner.Dim(d).Px()
	if !ok {
		return styles.Auto()
	}
	return styles.Px(max(0, v-sides.Sum(margin, d)))
}

// flowLine is a row (or column) of children placed along the main axis.
type flowLine struct {
	nodes []*Node
	main  float32
	cross float32
}

// setChildrenPosition positions the children inside the padding box and
// returns the size of the content, without padding.
func (n *Node) setChildrenPosition(inner styles.Size) math32.Vector2 {
	l := n.Layout
	pad := n.LayoutResult.Padding
	main, cross := l.MainDim(), l.CrossDim()
	innerMain, mainOK := inner.Dim(main).Px()
	innerCross, crossOK := inner.Dim(cross).Px()

	type flowSpot struct {
		line int
		main float32
	}
	lines := []flowLine{{}}
	spots := map[*Node]flowSpot{}
	for _, c := range n.Children {
		cur := &lines[len(lines)-1]
		if c.Layout.PositionType == styles.Absolute {
			spots[c] = flowSpot{line: len(lines) - 1, main: cur.main}
			continue
		}
		size := c.LayoutResult.Size.Vector()
		cm := size.Dim(main) + sides.Sum(c.LayoutResult.Margin, main)
		cc := size.Dim(cross) + sides.Sum(c.LayoutResult.Margin, cross)
		if l.Wrap && mainOK && len(cur.nodes) > 0 && cur.main+cm > innerMain {
			lines = append(lines, flowLine{})
			cur = &lines[len(lines)-1]
		}
		cur.nodes = append(cur.nodes, c)
		cur.main += cm
		cur.cross = max(cur.cross, cc)
	}

	var content math32.Vector2
	for _, ln := range lines {
		content.SetDim(main, max(content.Dim(main), ln.main))
		content.SetDim(cross, content.Dim(cross)+ln.cross)
	}
	availMain := content.Dim(main)
	if mainOK {
		availMain = innerMain
	}

	lineStarts := make([]float32, len(lines))
	var crossCursor float32
	for i, ln := range lines {
		lineStarts[i] = crossCursor
		lineCross := ln.cross
		if !l.Wrap && crossOK {
			lineCross = innerCross
		}
		cursor := alignOffset(l.AxisAlignment, availMain-ln.main)
		for _, c := range ln.nodes {
			margin := c.LayoutResult.Margin
			size := c.LayoutResult.Size.Vector()
			cc := size.Dim(cross) + sides.Sum(margin, cross)
			var pos math32.Vector2
			pos.SetDim(main, pad.Start(main)+cursor+margin.Start(main))
			pos.SetDim(cross, pad.Start(cross)+crossCursor+alignOffset(l.CrossAlignment, lineCross-cc)+margin.Start(cross))
			c.LayoutResult.Position = pos.Add(relativeOffset(c.Layout.Position, inner))
			cursor += size.Dim(main) + sides.Sum(margin, main)
		}
		crossCursor += lineCross
	}

	for _, c := range n.Children {
		if c.Layout.PositionType != styles.Absolute {
			continue
		}
		spot := spots[c]
		var flow math32.Vector2
		flow.SetDim(main, spot.main)
		flow.SetDim(cross, lineStarts[spot.line])
		size := c.LayoutResult.Size.Vector()
		r := c.Layout.Position.MostSpecific(size, inner)
		margin := c.LayoutResult.Margin
		c.LayoutResult.Position = math32.Vec2(
			pad.Left+margin.Left+r.Left.PxOr(flow.X),
			pad.Top+margin.Top+r.Top.PxOr(flow.Y),
		)
	}
	return content
}

// alignOffset returns the offset of an item along an axis with the
// given free space.
func alignOffset(a styles.Aligns, free float32) float32 {
	switch a {
	case styles.End:
		return free
	case styles.Center:
		return free / 2
	}
	return 0
}

// relativeOffset returns the offset of a relatively positioned node:
// the left (top) position if set, otherwise minus the right (bottom) one.
func relativeOffset(pos styles.Rect, inner styles.Size) math32.Vector2 {
	r := pos.Resolve(inner)
	var off math32.Vector2
	if pos.Left.IsAuto() {
		off.X = -r.Right
	} else {
		off.X = r.Left
	}
	if pos.Top.IsAuto() {
		off.Y = -r.Bottom
	} else {
		off.Y = r.Top
	}
	return off
}

// resolveSize sets the dimensions of the node that are still unresolved
// (or negative) from the size of its content, unless it scrolls along
// that axis, falling back to its min size and then to [minNodeSize].
func (n *Node) resolveSize(content math32.Vector2, sp *ScrollPosition) {
	lr := &n.LayoutResult
	size := lr.Size
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		if v, ok := size.Dim(d).Px(); ok && v >= 0 {
			continue
		}
		switch {
		case !sp.Scrolls(d) && content.Dim(d) > 0:
			size.SetDim(d, styles.Px(content.Dim(d)+sides.Sum(lr.Padding, d)))
		case n.Layout.MinSize.Dim(d).IsPx():
			size.SetDim(d, n.Layout.MinSize.Dim(d))
		default:
			size.SetDim(d, styles.Px(minNodeSize))
		}
	}
	l := n.Layout
	l.MinSize = styles.Size{Width: onlyPx(l.MinSize.Width), Height: onlyPx(l.MinSize.Height)}
	l.MaxSize = styles.Size{Width: onlyPx(l.MaxSize.Width), Height: onlyPx(l.MaxSize.Height)}
	lr.Size = l.ClampSize(size)
}

func onlyPx(d styles.Dimension) styles.Dimension {
	if d.IsPx() {
		return d
	}
	return styles.Auto()
}

// setInnerScale sets the content size of a scrollable node, which is at
// least its visible size.
func (n *Node) setInnerScale(content math32.Vector2, sp *ScrollPosition) {
	lr := &n.LayoutResult
	if sp == nil {
		lr.InnerScale = nil
		return
	}
	visible := lr.Size.Vector()
	is := visible
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		if sp.Scrolls(d) {
			is.SetDim(d, max(content.Dim(d)+sides.Sum(lr.Padding, d), visible.Dim(d)))
		}
	}
	lr.InnerScale = &is
}
