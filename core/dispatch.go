// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
)

// current returns the description of the node for events.
func (n *Node) current() events.Current {
	return events.Current{ID: n.ID, AABB: n.AABB, InnerScale: n.InnerScale}
}

// clipsChildren returns whether the children of the node are hidden
// at the given position because it is outside of its scroll frame.
func (n *Node) clipsChildren(pos math32.Vector2) bool {
	sp := n.Component.ScrollPosition()
	return sp != nil && !n.Component.FrameBounds(n.AABB, n.InnerScale).IsUnder(pos)
}

// NodesUnder returns the nodes that are under the given physical
// position, sorted by ascending depth, so that the last one is the
// topmost. Subtrees whose inclusive bounding box does not contain the
// position are skipped, as are the children of scrollable nodes whose
// frame does not contain it.
func (n *Node) NodesUnder(pos math32.Vector2) []*Node {
	var under []*Node
	n.nodesUnder(pos, &under)
	slices.SortStableFunc(under, func(a, b *Node) int {
		return cmp.Compare(a.AABB.Pos.Z, b.AABB.Pos.Z)
	})
	return under
}

func (n *Node) nodesUnder(pos math32.Vector2, under *[]*Node) {
	if !n.Component.IsMouseMaybeOver(pos, n.InclusiveAABB) {
		return
	}
	if n.Component.IsMouseOver(pos, n.AABB) {
		*under = append(*under, n)
	}
	if n.clipsChildren(pos) {
		return
	}
	for _, c := range n.Children {
		c.nodesUnder(pos, under)
	}
}

// topChildUnder returns the index of the topmost child of the node that
// may be under the given position, or -1.
func (n *Node) topChildUnder(pos math32.Vector2) int {
	if n == nil || n.clipsChildren(pos) {
		return -1
	}
	top := -1
	for i, c := range n.Children {
		if !c.Component.IsMouseMaybeOver(pos, c.InclusiveAABB) {
			continue
		}
		if top < 0 || c.AABB.Pos.Z >= n.Children[top].AABB.Pos.Z {
			top = i
		}
	}
	return top
}

// targetPath returns the child indexes leading from the node to the
// node with the given id.
func (n *Node) targetPath(id events.NodeID) ([]int, bool) {
	if n.ID == id {
		return nil, true
	}
	for i, c := range n.Children {
		if p, ok := c.targetPath(id); ok {
			return append([]int{i}, p...), true
		}
	}
	return nil, false
}

// deliver calls the handler of the node for the event and returns the
// messages it emitted, passed through its own Update. Every event
// except a tick marks the tree dirty.
func deliver[T events.Payload](n *Node, e *events.Event[T]) []events.Message {
	e.SetCurrent(n.current())
	if e.Type() != events.TickType {
		e.SetDirty()
	}
	if DebugSettings.EventTrace {
		fmt.Println("Event:", e, "to", n)
	}
	callHandler(n.Component, e)
	return n.update(e.TakeMessages())
}

// update passes the given messages through the Update of the node
// and returns the messages for its parent.
func (n *Node) update(msgs []events.Message) []events.Message {
	var out []events.Message
	for _, m := range msgs {
		out = append(out, n.Component.Update(m)...)
	}
	return out
}

// DispatchUnder delivers a position-targeted event to the nodes under
// the given position, topmost first, until a handler stops bubbling.
// Messages bubble up through the Update of every ancestor of each
// handling node. It returns the messages left over by the root.
func DispatchUnder[T events.Payload](root *Node, e *events.Event[T], pos math32.Vector2) []events.Message {
	stack := root.NodesUnder(pos)
	var out []events.Message
	for len(stack) > 0 && e.Bubbles() {
		before := len(stack)
		out = append(out, dispatchUnder(root, e, pos, &stack)...)
		if len(stack) == before {
			break
		}
	}
	return out
}

// dispatchUnder walks the subtree depth-first, delivering the event to
// a node when it is the topmost node still to visit.
func dispatchUnder[T events.Payload](n *Node, e *events.Event[T], pos math32.Vector2, stack *[]*Node) []events.Message {
	if !n.Component.IsMouseMaybeOver(pos, n.InclusiveAABB) {
		return nil
	}
	var out []events.Message
	if !n.clipsChildren(pos) {
		for i := len(n.Children) - 1; i >= 0; i-- {
			if len(*stack) == 0 || !e.Bubbles() {
				break
			}
			out = append(out, n.update(dispatchUnder(n.Children[i], e, pos, stack))...)
		}
	}
	if last := len(*stack) - 1; last >= 0 && (*stack)[last] == n && e.Bubbles() {
		*stack = (*stack)[:last]
		child := n.topChildUnder(pos)
		sub := -1
		if child >= 0 {
			sub = n.Children[child].topChildUnder(pos)
		}
		e.SetOverChild(child, sub)
		out = append(out, deliver(n, e)...)
	}
	return out
}

// DispatchTargeted delivers a targeted event to the node with the given
// id. When the target is the root and nodes registered for the kind of
// the event, it is delivered to each registrant in turn instead, until
// one of them stops bubbling. Messages bubble up through the Update of
// every ancestor. It returns the messages left over by the root.
func DispatchTargeted[T events.Payload](root *Node, e *events.Event[T], target events.NodeID, regs []events.Registration) []events.Message {
	if target == events.RootID {
		if kind, ok := e.Type().RegisterKind(); ok {
			var out []events.Message
			delivered := false
			for _, r := range regs {
				if r.Kind != kind {
					continue
				}
				if !e.Bubbles() {
					break
				}
				delivered = true
				out = append(out, DispatchTo(root, e, r.ID)...)
			}
			if delivered {
				return out
			}
		}
	}
	return DispatchTo(root, e, target)
}

// DispatchTo delivers the event to the node with the given id, if it is
// in the tree, and bubbles its messages up to the root.
func DispatchTo[T events.Payload](root *Node, e *events.Event[T], id events.NodeID) []events.Message {
	path, ok := root.targetPath(id)
	if !ok {
		return nil
	}
	return dispatchPath(root, e, path)
}

func dispatchPath[T events.Payload](n *Node, e *events.Event[T], path []int) []events.Message {
	if len(path) == 0 {
		return deliver(n, e)
	}
	return n.update(dispatchPath(n.Children[path[0]], e, path[1:]))
}

// Tick delivers the event to every node of the tree, children before
// their parent, bubbling messages through Update once per level.
func Tick(root *Node, e *events.Event[events.Tick]) []events.Message {
	var out []events.Message
	for _, c := range root.Children {
		out = append(out, root.update(Tick(c, e))...)
	}
	return append(out, deliver(root, e)...)
}

// callHandler calls the handler of the component for the event.
func callHandler[T events.Payload](c Component, e *events.Event[T]) {
	switch e := any(e).(type) {
	case *events.Event[events.Click]:
		c.OnClick(e)
	case *events.Event[events.DoubleClick]:
		c.OnDoubleClick(e)
	case *events.Event[events.MouseDown]:
		c.OnMouseDown(e)
	case *events.Event[events.MouseUp]:
		c.OnMouseUp(e)
	case *events.Event[events.MouseEnter]:
		c.OnMouseEnter(e)
	case *events.Event[events.MouseLeave]:
		c.OnMouseLeave(e)
	case *events.Event[events.MouseMotion]:
		c.OnMouseMotion(e)
	case *events.Event[events.Scroll]:
		c.OnScroll(e)
	case *events.Event[events.Drag]:
		c.OnDrag(e)
	case *events.Event[events.DragStart]:
		c.OnDragStart(e)
	case *events.Event[events.DragEnd]:
		c.OnDragEnd(e)
	case *events.Event[events.Focus]:
		c.OnFocus(e)
	case *events.Event[events.Blur]:
		c.OnBlur(e)
	case *events.Event[events.Tick]:
		c.OnTick(e)
	case *events.Event[events.KeyDown]:
		c.OnKeyDown(e)
	case *events.Event[events.KeyUp]:
		c.OnKeyUp(e)
	case *events.Event[events.KeyPress]:
		c.OnKeyPress(e)
	case *events.Event[events.TextEntry]:
		c.OnTextEntry(e)
	case *events.Event[events.DragEnter]:
		c.OnDragEnter(e)
	case *events.Event[events.DragLeave]:
		c.OnDragLeave(e)
	case *events.Event[events.DragTarget]:
		c.OnDragTarget(e)
	case *events.Event[events.DragDrop]:
		c.OnDragDrop(e)
	case *events.Event[events.TouchDown]:
		c.OnTouchDown(e)
	case *events.Event[events.TouchUp]:
		c.OnTouchUp(e)
	case *events.Event[events.TouchMoved]:
		c.OnTouchMoved(e)
	case *events.Event[events.TouchCancel]:
		c.OnTouchCancel(e)
	case *events.Event[events.MenuSelect]:
		c.OnMenuSelect(e)
	}
}
