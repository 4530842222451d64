// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/mecha-org/mctk-sub000/math32"
)

// Current describes the node an [Event] is currently being delivered to.
type Current struct {
	ID         NodeID
	AABB       math32.AABB
	InnerScale *math32.Vector2
}

// Event carries a payload of type T through the node tree. Handlers can
// emit messages, stop bubbling, and request focus changes through it.
type Event[T Payload] struct {

	// Input is the event payload.
	Input T

	// Cache is a snapshot of the input state when the event was created.
	Cache Cache

	current       Current
	bubbles       bool
	dirty         bool
	focus         *NodeID
	target        *NodeID
	overChild     int
	overSubchild  int
	messages      []Message
	registrations []Registration
}

// New returns a new bubbling [Event] with the given payload and a snapshot
// of the given cache.
func New[T Payload](input T, cache *Cache) *Event[T] {
	e := &Event[T]{Input: input, bubbles: true, overChild: -1, overSubchild: -1}
	if cache != nil {
		e.Cache = cache.Snapshot()
	}
	return e
}

func (e *Event[T]) String() string {
	return fmt.Sprintf("%v{%+v, Node: %d, Bubbles: %v}", e.Input.Type(), e.Input, e.current.ID, e.bubbles)
}

// Type returns the kind of the event.
func (e *Event[T]) Type() Types {
	return e.Input.Type()
}

// Emit adds a message for the ancestors of the current node.
// It is first passed to the current node's own Update.
func (e *Event[T]) Emit(m Message) {
	e.messages = append(e.messages, m)
}

// StopBubbling prevents the event from being delivered to any further nodes.
// Messages already emitted still reach the ancestors.
func (e *Event[T]) StopBubbling() {
	e.bubbles = false
	id := e.current.ID
	e.target = &id
}

// Bubbles returns whether the event is still being propagated.
func (e *Event[T]) Bubbles() bool {
	return e.bubbles
}

// Focus requests focus for the current node.
func (e *Event[T]) Focus() {
	id := e.current.ID
	e.focus = &id
}

// Blur requests that the focus returns to the root.
func (e *Event[T]) Blur() {
	id := RootID
	e.focus = &id
}

// FocusRequest returns the node that requested focus through
// [Event.Focus] or [Event.Blur], if any.
func (e *Event[T]) FocusRequest() (NodeID, bool) {
	if e.focus == nil {
		return 0, false
	}
	return *e.focus, true
}

// Target returns the terminal node of the event: the last node whose
// handler received it.
func (e *Event[T]) Target() (NodeID, bool) {
	if e.target == nil {
		return 0, false
	}
	return *e.target, true
}

// Dirty returns whether the tree may need to be redrawn after the event.
func (e *Event[T]) Dirty() bool {
	return e.dirty
}

// SetDirty marks the tree as needing a redraw.
func (e *Event[T]) SetDirty() {
	e.dirty = true
}

// Register registers the current node for the given event kind
// until the next view pass.
func (e *Event[T]) Register(kind RegisterKind) {
	e.registrations = append(e.registrations, Registration{Kind: kind, ID: e.current.ID})
}

// TakeRegistrations returns and clears the registrations made by handlers.
func (e *Event[T]) TakeRegistrations() []Registration {
	r := e.registrations
	e.registrations = nil
	return r
}

// Current returns the node the event is being delivered to.
func (e *Event[T]) Current() Current {
	return e.current
}

// SetCurrent sets the node the event is being delivered to and
// records the node as the event target. It is called by the
// dispatcher before each handler.
func (e *Event[T]) SetCurrent(c Current) {
	e.current = c
	id := c.ID
	e.target = &id
}

// TakeMessages returns and clears the messages emitted since the last call.
func (e *Event[T]) TakeMessages() []Message {
	m := e.messages
	e.messages = nil
	return m
}

// OverChild returns the index of the topmost child of the current node
// that is under the pointer, and the index of the topmost child of that
// child under the pointer (or -1).
func (e *Event[T]) OverChild() (child, subchild int, ok bool) {
	return e.overChild, e.overSubchild, e.overChild >= 0
}

// SetOverChild sets the hit-test breadcrumbs for the current node.
func (e *Event[T]) SetOverChild(child, subchild int) {
	e.overChild = child
	e.overSubchild = subchild
}

// MousePosition returns the mouse position in physical pixels.
func (e *Event[T]) MousePosition() math32.Vector2 {
	return e.Cache.MousePosition
}

// RelativeMousePosition returns the mouse position relative to the
// top-left corner of the current node.
func (e *Event[T]) RelativeMousePosition() math32.Vector2 {
	return e.Cache.MousePosition.Sub(e.current.AABB.Pos.XY())
}

// Modifiers returns the modifier keys held when the event was created.
func (e *Event[T]) Modifiers() Modifiers {
	return e.Cache.Modifiers
}

// IsFocused returns whether the current node has focus.
func (e *Event[T]) IsFocused() bool {
	return e.Cache.Focus == e.current.ID
}
