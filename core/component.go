// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the component tree of mctk: the [Component]
// contract implemented by every element, the [Node] tree built from
// components each frame and reconciled against the previous one, the
// layout engine, hit-testing and event dispatch, and the [UI] driver
// that runs it all.
package core

import (
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// State is the private state of a component, moved from the component
// of the previous frame to the component of the current frame.
// Its concrete type is only known to the component.
type State = any

// Slot is the path to the node that receives the externally pushed
// children of a container component, starting at the node returned by
// [Component.View]. The first element is always 0, which is that node;
// the following elements are child indexes.
type Slot []int

// ScrollPosition is the scroll state of a scrollable node.
type ScrollPosition struct {

	// Offset is the requested scroll offset in physical pixels.
	// It is clamped to the scrollable range during layout.
	Offset math32.Vector2

	// X and Y are whether the node scrolls along each axis.
	X, Y bool
}

// Scrolls returns whether the node scrolls along the given axis.
func (sp *ScrollPosition) Scrolls(d math32.Dims) bool {
	if sp == nil {
		return false
	}
	if d == math32.X {
		return sp.X
	}
	return sp.Y
}

// RenderContext is passed to [Component.Render].
type RenderContext struct {

	// AABB is the bounding box of the node in physical pixels.
	AABB math32.AABB

	// InnerScale is the physical content size of a scrollable node.
	InnerScale *math32.Vector2

	// ScrollOffset is the clamped scroll offset of a scrollable node.
	ScrollOffset math32.Vector2

	// ScaleFactor is the ratio of physical to logical pixels.
	ScaleFactor float32

	// Fonts measures text.
	Fonts paint.FontMetrics

	// Prev is the render output of the node in the previous frame, if any.
	Prev []paint.Renderable
}

// Component is the interface that all elements of a UI satisfy.
// Default implementations of all methods are provided by
// [ComponentBase], which every component type must embed, directly
// or through [Stateful]. Components only override the methods they need.
type Component interface {

	// View returns the node tree that makes up this component, or nil.
	// It is called on every frame and must be cheap: expensive work
	// belongs in [Component.Init] and [Component.NewProps].
	View() *Node

	// Container returns the [Slot] that receives the children pushed
	// onto the node of this component, or nil if it is not a container.
	Container() Slot

	// Init is called once, when the component has no counterpart in the
	// previous frame.
	Init()

	// NewProps is called when the props hash of the component differs
	// from the one of its counterpart in the previous frame.
	NewProps()

	// Update handles a message emitted by the component itself or by one
	// of its descendants, and returns the messages for its parent.
	// [ComponentBase.Update] forwards the message.
	Update(msg events.Message) []events.Message

	// Render returns the primitives that draw the component, or nil.
	Render(ctx RenderContext) []paint.Renderable

	// FillBounds returns the intrinsic size of the component, given the
	// size resolved so far and the space available, in logical pixels.
	// It is called by the layout when a dimension is still unresolved.
	FillBounds(width, height, maxWidth, maxHeight styles.Dimension, fonts paint.FontMetrics, scaleFactor float32) (styles.Dimension, styles.Dimension)

	// FullControl returns whether [Component.SetAABB] is called to
	// adjust the bounding boxes of the node and its children.
	FullControl() bool

	// SetAABB adjusts the bounding box of the node and of its direct
	// children, before scrolling is applied to the children.
	SetAABB(aabb *math32.AABB, parent math32.AABB, children []*math32.AABB, frame math32.AABB, fonts paint.FontMetrics)

	// ScrollPosition returns the scroll state of a scrollable component,
	// or nil if it does not scroll.
	ScrollPosition() *ScrollPosition

	// FrameBounds returns the visible area of a scrollable component.
	FrameBounds(aabb math32.AABB, innerScale *math32.Vector2) math32.AABB

	// IsMouseOver returns whether the given position is over the component.
	IsMouseOver(pos math32.Vector2, aabb math32.AABB) bool

	// IsMouseMaybeOver returns whether the given position may be over the
	// component or one of its descendants, given the inclusive bounding box.
	IsMouseMaybeOver(pos math32.Vector2, inclusive math32.AABB) bool

	// Register returns the event kinds the component receives even when
	// it does not have focus.
	Register() []events.RegisterKind

	// TakeState removes and returns the private state of the component.
	TakeState() State

	// ReplaceState sets the private state of the component.
	ReplaceState(st State)

	OnClick(e *events.Event[events.Click])
	OnDoubleClick(e *events.Event[events.DoubleClick])
	OnMouseDown(e *events.Event[events.MouseDown])
	OnMouseUp(e *events.Event[events.MouseUp])
	OnMouseEnter(e *events.Event[events.MouseEnter])
	OnMouseLeave(e *events.Event[events.MouseLeave])
	OnMouseMotion(e *events.Event[events.MouseMotion])
	OnScroll(e *events.Event[events.Scroll])
	OnDrag(e *events.Event[events.Drag])
	OnDragStart(e *events.Event[events.DragStart])
	OnDragEnd(e *events.Event[events.DragEnd])
	OnFocus(e *events.Event[events.Focus])
	OnBlur(e *events.Event[events.Blur])
	OnTick(e *events.Event[events.Tick])
	OnKeyDown(e *events.Event[events.KeyDown])
	OnKeyUp(e *events.Event[events.KeyUp])
	OnKeyPress(e *events.Event[events.KeyPress])
	OnTextEntry(e *events.Event[events.TextEntry])
	OnDragEnter(e *events.Event[events.DragEnter])
	OnDragLeave(e *events.Event[events.DragLeave])
	OnDragTarget(e *events.Event[events.DragTarget])
	OnDragDrop(e *events.Event[events.DragDrop])
	OnTouchDown(e *events.Event[events.TouchDown])
	OnTouchUp(e *events.Event[events.TouchUp])
	OnTouchMoved(e *events.Event[events.TouchMoved])
	OnTouchCancel(e *events.Event[events.TouchCancel])
	OnMenuSelect(e *events.Event[events.MenuSelect])
}

// ComponentBase provides the default implementation of every
// [Component] method. It has no state.
type ComponentBase struct{}

func (cb *ComponentBase) View() *Node       { return nil }
func (cb *ComponentBase) Container() Slot   { return nil }
func (cb *ComponentBase) Init()             {}
func (cb *ComponentBase) NewProps()         {}
func (cb *ComponentBase) FullControl() bool { return false }

// Update forwards the message to the parent.
func (cb *ComponentBase) Update(msg events.Message) []events.Message {
	return []events.Message{msg}
}

func (cb *ComponentBase) Render(ctx RenderContext) []paint.Renderable { return nil }

func (cb *ComponentBase) FillBounds(width, height, maxWidth, maxHeight styles.Dimension, fonts paint.FontMetrics, scaleFactor float32) (styles.Dimension, styles.Dimension) {
	return width, height
}

func (cb *ComponentBase) SetAABB(aabb *math32.AABB, parent math32.AABB, children []*math32.AABB, frame math32.AABB, fonts paint.FontMetrics) {
}

func (cb *ComponentBase) ScrollPosition() *ScrollPosition { return nil }

// FrameBounds returns the bounding box of the node.
func (cb *ComponentBase) FrameBounds(aabb math32.AABB, innerScale *math32.Vector2) math32.AABB {
	return aabb
}

func (cb *ComponentBase) IsMouseOver(pos math32.Vector2, aabb math32.AABB) bool {
	return aabb.IsUnder(pos)
}

func (cb *ComponentBase) IsMouseMaybeOver(pos math32.Vector2, inclusive math32.AABB) bool {
	return inclusive.IsUnder(pos)
}

func (cb *ComponentBase) Register() []events.RegisterKind { return nil }
func (cb *ComponentBase) TakeState() State                { return nil }
func (cb *ComponentBase) ReplaceState(st State)           {}

func (cb *ComponentBase) OnClick(e *events.Event[events.Click])             {}
func (cb *ComponentBase) OnDoubleClick(e *events.Event[events.DoubleClick]) {}
func (cb *ComponentBase) OnMouseDown(e *events.Event[events.MouseDown])     {}
func (cb *ComponentBase) OnMouseUp(e *events.Event[events.MouseUp])         {}
func (cb *ComponentBase) OnMouseEnter(e *events.Event[events.MouseEnter])   {}
func (cb *ComponentBase) OnMouseLeave(e *events.Event[events.MouseLeave])   {}
func (cb *ComponentBase) OnMouseMotion(e *events.Event[events.MouseMotion]) {}
func (cb *ComponentBase) OnScroll(e *events.Event[events.Scroll])           {}
func (cb *ComponentBase) OnDrag(e *events.Event[events.Drag])               {}
func (cb *ComponentBase) OnDragStart(e *events.Event[events.DragStart])     {}
func (cb *ComponentBase) OnDragEnd(e *events.Event[events.DragEnd])         {}
func (cb *ComponentBase) OnFocus(e *events.Event[events.Focus])             {}
func (cb *ComponentBase) OnBlur(e *events.Event[events.Blur])               {}
func (cb *ComponentBase) OnTick(e *events.Event[events.Tick])               {}
func (cb *ComponentBase) OnKeyDown(e *events.Event[events.KeyDown])         {}
func (cb *ComponentBase) OnKeyUp(e *events.Event[events.KeyUp])             {}
func (cb *ComponentBase) OnKeyPress(e *events.Event[events.KeyPress])       {}
func (cb *ComponentBase) OnTextEntry(e *events.Event[events.TextEntry])     {}
func (cb *ComponentBase) OnDragEnter(e *events.Event[events.DragEnter])     {}
func (cb *ComponentBase) OnDragLeave(e *events.Event[events.DragLeave])     {}
func (cb *ComponentBase) OnDragTarget(e *events.Event[events.DragTarget])   {}
func (cb *ComponentBase) OnDragDrop(e *events.Event[events.DragDrop])       {}
func (cb *ComponentBase) OnTouchDown(e *events.Event[events.TouchDown])     {}
func (cb *ComponentBase) OnTouchUp(e *events.Event[events.TouchUp])         {}
func (cb *ComponentBase) OnTouchMoved(e *events.Event[events.TouchMoved])   {}
func (cb *ComponentBase) OnTouchCancel(e *events.Event[events.TouchCancel]) {}
func (cb *ComponentBase) OnMenuSelect(e *events.Event[events.MenuSelect])   {}

// Stateful is embedded by components that have private state of type S,
// which is kept across frames. The state is usually created in
// [Component.Init] with [Stateful.SetState].
type Stateful[S any] struct {
	ComponentBase

	state *S
}

// SetState sets the state of the component.
func (sf *Stateful[S]) SetState(st *S) {
	sf.state = st
}

// HasState returns whether the component has state.
func (sf *Stateful[S]) HasState() bool {
	return sf.state != nil
}

// StateRef returns the state of the component for reading.
// It panics if the component has no state.
func (sf *Stateful[S]) StateRef() *S {
	if sf.state == nil {
		panic("core.Stateful.StateRef: component has no state")
	}
	return sf.state
}

// StateMut returns the state of the component for modification.
// It panics if the component has no state.
func (sf *Stateful[S]) StateMut() *S {
	if sf.state == nil {
		panic("core.Stateful.StateMut: component has no state")
	}
	return sf.state
}

func (sf *Stateful[S]) TakeState() State {
	st := sf.state
	sf.state = nil
	if st == nil {
		return nil
	}
	return st
}

// ReplaceState sets the state if it is a *S, and otherwise
// leaves the component without state.
func (sf *Stateful[S]) ReplaceState(st State) {
	s, _ := st.(*S)
	sf.state = s
}
