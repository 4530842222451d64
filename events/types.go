// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events delivered to components, the
// [Event] envelope that carries them through the node tree, and the
// [Cache] of input state used to synthesize higher-level events such
// as clicks, double-clicks and drags.
package events

import "fmt"

// NodeID identifies a node for the lifetime of the process.
type NodeID uint64

// RootID is the id of the root node of a UI. It is the default focus.
const RootID NodeID = 0

// Message is an opaque value emitted by a component and interpreted by an
// ancestor's Update. Producer and consumer agree on its concrete type.
type Message = any

// Types is the kind of an event delivered to components.
type Types int32

const (
	UnknownType Types = iota
	ClickType
	DoubleClickType
	MouseDownType
	MouseUpType
	MouseEnterType
	MouseLeaveType
	MouseMotionType
	ScrollType
	DragType
	DragStartType
	DragEndType
	FocusType
	BlurType
	TickType
	KeyDownType
	KeyUpType
	KeyPressType
	TextEntryType
	DragEnterType
	DragLeaveType
	DragTargetType
	DragDropType
	TouchDownType
	TouchUpType
	TouchMovedType
	TouchCancelType
	MenuSelectType
)

var typeNames = [...]string{
	"Unknown", "Click", "DoubleClick", "MouseDown", "MouseUp", "MouseEnter",
	"MouseLeave", "MouseMotion", "Scroll", "Drag", "DragStart", "DragEnd",
	"Focus", "Blur", "Tick", "KeyDown", "KeyUp", "KeyPress", "TextEntry",
	"DragEnter", "DragLeave", "DragTarget", "DragDrop", "TouchDown",
	"TouchUp", "TouchMoved", "TouchCancel", "MenuSelect",
}

func (t Types) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Types(%d)", int32(t))
}

// RegisterKind is an event kind that a node can register for
// in order to receive it without being focused.
type RegisterKind int32

const (
	RegisterKeyDown RegisterKind = iota
	RegisterKeyUp
	RegisterKeyPress
)

func (r RegisterKind) String() string {
	switch r {
	case RegisterKeyDown:
		return "KeyDown"
	case RegisterKeyUp:
		return "KeyUp"
	case RegisterKeyPress:
		return "KeyPress"
	}
	return fmt.Sprintf("RegisterKind(%d)", int32(r))
}

// RegisterKind returns the registration kind matching the event type,
// and false if events of this type cannot be registered for.
func (t Types) RegisterKind() (RegisterKind, bool) {
	switch t {
	case KeyDownType:
		return RegisterKeyDown, true
	case KeyUpType:
		return RegisterKeyUp, true
	case KeyPressType:
		return RegisterKeyPress, true
	}
	return 0, false
}

// Registration records that a node registered for an event kind.
type Registration struct {
	Kind RegisterKind
	ID   NodeID
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
	Back
	Forward
)

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	case Back:
		return "Back"
	case Forward:
		return "Forward"
	}
	return fmt.Sprintf("Buttons(%d)", int32(b))
}
