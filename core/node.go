// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/mecha-org/mctk-sub000/base/keylist"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// nodeIDs is the source of node ids. Id 0 is reserved for the root.
var nodeIDs atomic.Uint64

func newNodeID() events.NodeID {
	return events.NodeID(nodeIDs.Add(1))
}

// Node is an element of the tree built from components on every frame.
// A new tree is built for each frame and reconciled against the tree of
// the previous frame with [Node.View], which carries ids and component
// state forward by key.
type Node struct {

	// ID identifies the node across frames. It is assigned when the
	// node first appears and copied forward while its key matches.
	ID events.NodeID

	// Key matches the node with its counterpart among the children of
	// its parent in the previous frame. It must be unique among siblings.
	Key uint64

	// Component is the component of the node.
	Component Component

	// Children are the child nodes, in layout and render order.
	Children []*Node

	// Layout is the requested layout.
	Layout styles.Layout

	// LayoutResult is the resolved layout in logical pixels.
	LayoutResult styles.LayoutResult

	// AABB is the bounding box in physical pixels.
	AABB math32.AABB

	// InclusiveAABB covers AABB and the InclusiveAABB of all children,
	// except for scrollable nodes, where it equals AABB.
	InclusiveAABB math32.AABB

	// InnerScale is the physical content size of a scrollable node.
	InnerScale *math32.Vector2

	// ScrollOffset is the clamped physical scroll offset of a scrollable node.
	ScrollOffset math32.Vector2

	// PropsHash is the last props hash of the component.
	PropsHash uint64

	// RenderHash is the last render hash of the component.
	RenderHash uint64

	// RenderCache is the last render output of the component.
	RenderCache []paint.Renderable

	// rendered is whether RenderCache holds a render output.
	rendered bool

	// prev is the matched node of the previous frame, between
	// [Node.View] and [Node.Render].
	prev *Node
}

// New returns a new [Node] for the given component and layout. Its key
// is derived from the file and line of the caller, so that nodes made at
// the same place in the code match across frames. Nodes made in a loop
// must be given distinct keys with [Node.WithKey].
func New(c Component, layout styles.Layout) *Node {
	return &Node{Component: c, Layout: layout, Key: callerKey(2)}
}

// callerKey returns a key for the file and line of [runtime.Caller](level).
func callerKey(level int) uint64 {
	_, file, line, _ := runtime.Caller(level)
	path := filepath.Base(filepath.Dir(file)) + "-" + filepath.Base(file)
	path = strings.ReplaceAll(path, ".", "-") + "-" + strconv.Itoa(line)
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}

// WithKey sets the key of the node and returns it.
func (n *Node) WithKey(key uint64) *Node {
	n.Key = key
	return n
}

// Push adds the given children to the node and returns it. For a
// container component the children are moved into its [Slot] when
// the node is viewed.
func (n *Node) Push(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) String() string {
	return fmt.Sprintf("%T#%d", n.Component, n.ID)
}

// WalkDown calls the given function on the node and all of its
// descendants in depth-first pre-order. Returning false skips the
// children of the current node.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range n.Children {
		c.WalkDown(fun)
	}
}

// FindByID returns the node with the given id in the tree, or nil.
func (n *Node) FindByID(id events.NodeID) *Node {
	path, ok := n.targetPath(id)
	if !ok {
		return nil
	}
	cur := n
	for _, i := range path {
		cur = cur.Children[i]
	}
	return cur
}

// View builds the tree under the node, which becomes the root of the
// current frame, and reconciles it with prev, the root of the previous
// frame (or nil). The root always has id [events.RootID]. It returns
// the event registrations of the whole tree, children before parents.
func (n *Node) View(prev *Node) []events.Registration {
	var regs []events.Registration
	n.view(prev, &regs, true)
	if DebugSettings.ViewTrace {
		fmt.Println("View:", n, "registrations:", len(regs))
	}
	return regs
}

func (n *Node) view(prev *Node, regs *[]events.Registration, root bool) {
	c := n.Component
	n.prev = prev
	if prev != nil {
		n.ID = prev.ID
		if st := prev.Component.TakeState(); st != nil {
			c.ReplaceState(st)
		}
		n.PropsHash = PropsHash(c)
		if n.PropsHash != prev.PropsHash {
			c.NewProps()
		}
	} else {
		n.ID = newNodeID()
		if root {
			n.ID = events.RootID
		}
		c.Init()
		n.PropsHash = PropsHash(c)
	}

	pushed := n.Children
	n.Children = nil
	if sub := c.View(); sub != nil {
		if slot := c.Container(); slot != nil {
			t := slot.target(sub, n)
			t.Children = append(t.Children, pushed...)
		} else if len(pushed) > 0 {
			panic(fmt.Sprintf("core.Node.View: %v has pushed children and a view, but is not a container", n))
		}
		n.Children = []*Node{sub}
	} else {
		n.Children = pushed
	}

	var prevKids *keylist.List[uint64, *Node]
	if prev != nil {
		prevKids = keylist.New[uint64, *Node](len(prev.Children))
		for _, pc := range prev.Children {
			_ = prevKids.Add(pc.Key, pc) // first one wins
		}
	}
	seen := make(map[uint64]bool, len(n.Children))
	for _, child := range n.Children {
		var pc *Node
		if seen[child.Key] {
			slog.Error("core.Node.View: duplicate sibling key", "key", child.Key, "parent", n.String())
		} else {
			pc, _ = prevKids.Claim(child.Key)
		}
		seen[child.Key] = true
		child.view(pc, regs, false)
	}
	if DebugSettings.ViewTrace {
		for _, gone := range prevKids.Unclaimed() {
			fmt.Println("View: dropped", gone, "from", n)
		}
	}

	for _, kind := range c.Register() {
		*regs = append(*regs, events.Registration{Kind: kind, ID: n.ID})
	}
}

// target returns the node of sub at the slot path. It panics if the
// path does not start at sub or leaves the tree.
func (s Slot) target(sub, owner *Node) *Node {
	if len(s) == 0 || s[0] != 0 {
		panic(fmt.Sprintf("core.Slot: slot of %v must start with 0, got %v", owner, s))
	}
	cur := sub
	for _, i := range s[1:] {
		if i < 0 || i >= len(cur.Children) {
			panic(fmt.Sprintf("core.Slot: slot %v of %v is out of range", s, owner))
		}
		cur = cur.Children[i]
	}
	return cur
}

// renderArgs are the inputs of [Node.Render].
type renderArgs struct {
	scaleFactor float32
	fonts       paint.FontMetrics
	cache       bool
}

// Render renders the tree after layout, reusing the render output of
// the matched previous nodes whose render hash is unchanged when cache
// is true. It returns whether any node was rendered again. The links to
// the previous tree are dropped.
func (n *Node) Render(scaleFactor float32, fonts paint.FontMetrics, cache bool) bool {
	return n.render(&renderArgs{scaleFactor: scaleFactor, fonts: fonts, cache: cache})
}

func (n *Node) render(ra *renderArgs) bool {
	prev := n.prev
	n.prev = nil
	n.RenderHash = RenderHash(n.Component, n.PropsHash)
	changed := false
	if ra.cache && prev != nil && prev.rendered && prev.RenderHash == n.RenderHash &&
		prev.AABB == n.AABB && equalScale(prev.InnerScale, n.InnerScale) && prev.ScrollOffset == n.ScrollOffset {
		n.RenderCache = prev.RenderCache
	} else {
		ctx := RenderContext{
			AABB:         n.AABB,
			InnerScale:   n.InnerScale,
			ScrollOffset: n.ScrollOffset,
			ScaleFactor:  ra.scaleFactor,
			Fonts:        ra.fonts,
		}
		if prev != nil {
			ctx.Prev = prev.RenderCache
		}
		n.RenderCache = n.Component.Render(ctx)
		changed = true
		if DebugSettings.RenderTrace {
			fmt.Println("Render:", n, "renderables:", len(n.RenderCache))
		}
	}
	n.rendered = true
	for _, c := range n.Children {
		if c.render(ra) {
			changed = true
		}
	}
	if prev != nil && len(prev.Children) != len(n.Children) {
		changed = true
	}
	return changed
}

func equalScale(a, b *math32.Vector2) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
