// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
)

// Frame runs all the passes of a frame on the tree under the node,
// against prev, the tree of the previous frame (or nil): view, layout
// in the given logical size, bounding boxes and render. It returns the
// event registrations of the tree and whether anything was rendered
// again. Nil settings use [DefaultSettings].
func (n *Node) Frame(prev *Node, logicalSize math32.Vector2, scaleFactor float32, fonts paint.FontMetrics, s *Settings) ([]events.Registration, bool) {
	if s == nil {
		s = DefaultSettings()
	}
	regs := n.View(prev)
	n.CalculateLayout(logicalSize, fonts, scaleFactor, s.LayoutPasses)
	n.SetAABB(scaleFactor, fonts)
	changed := n.Render(scaleFactor, fonts, s.RenderCache)
	return regs, changed
}

// WriteTree writes the tree under the node to w, one node per line
// indented by depth, with its id, key and bounding box.
func (n *Node) WriteTree(w io.Writer) error {
	return n.writeTree(w, 0)
}

func (n *Node) writeTree(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "%s%v key=%x aabb=%v\n", strings.Repeat("  ", depth), n, n.Key, n.AABB)
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.writeTree(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
