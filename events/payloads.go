// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "github.com/mecha-org/mctk-sub000/math32"

// Payload is the kind-specific content of an [Event].
type Payload interface {
	Type() Types
}

// Click is a press and release of a mouse button (or touch)
// without a significant drag in between.
type Click struct {
	Button Buttons
}

// DoubleClick is a second click in rapid succession at about
// the same position as the first one.
type DoubleClick struct {
	Button Buttons
}

// MouseDown is a mouse button press.
type MouseDown struct {
	Button Buttons
}

// MouseUp is a mouse button release.
type MouseUp struct {
	Button Buttons
}

// MouseEnter is sent when the mouse moves over a node.
type MouseEnter struct{}

// MouseLeave is sent when the mouse leaves a node it was over.
type MouseLeave struct{}

// MouseMotion is sent when the mouse moves over a node.
type MouseMotion struct{}

// Scroll is a scroll wheel or gesture movement, in physical pixels.
type Scroll struct {
	Delta math32.Vector2
}

// DragStart is sent once a held button has moved beyond the drag threshold.
type DragStart struct {
	Button Buttons
}

// Drag is sent on each motion while dragging, to the node that received
// the DragStart.
type Drag struct {
	Button Buttons

	// Start is where the button was pressed.
	Start math32.Vector2
}

// DragEnd is sent when the dragging button is released.
type DragEnd struct {
	Button Buttons

	// Start is where the button was pressed.
	Start math32.Vector2
}

// Focus is sent to a node that gains focus.
type Focus struct{}

// Blur is sent to a node that loses focus.
type Blur struct{}

// Tick is sent to every node on each timer tick.
type Tick struct{}

// KeyDown is sent for every key press, including repeats.
type KeyDown struct {
	Key Key

	// Text is the text produced by the key, if any.
	Text string
}

// KeyUp is sent when a key is released.
type KeyUp struct {
	Key Key
}

// KeyPress is sent when a held key is released, completing a key stroke.
type KeyPress struct {
	Key Key
}

// TextEntry is text input, which may be composed by an input method.
type TextEntry struct {
	Text string
}

// DragEnter is sent when a drag and drop operation moves over a node.
type DragEnter struct {
	Data string
}

// DragLeave is sent when a drag and drop operation leaves a node.
type DragLeave struct{}

// DragTarget is sent to nodes under a drag and drop operation as it moves.
type DragTarget struct {
	Data string
}

// DragDrop is sent to the current drop target when data is dropped.
type DragDrop struct {
	Data string
}

// TouchDown is the start of a touch point.
type TouchDown struct {
	ID  uint64
	Pos math32.Vector2
}

// TouchUp is the end of a touch point.
type TouchUp struct {
	ID  uint64
	Pos math32.Vector2
}

// TouchMoved is the motion of a touch point.
type TouchMoved struct {
	ID  uint64
	Pos math32.Vector2
}

// TouchCancel is sent when the system cancels a touch point.
type TouchCancel struct {
	ID  uint64
	Pos math32.Vector2
}

// MenuSelect is sent when an item of a system menu is selected.
type MenuSelect struct {
	ID int
}

func (Click) Type() Types       { return ClickType }
func (DoubleClick) Type() Types { return DoubleClickType }
func (MouseDown) Type() Types   { return MouseDownType }
func (MouseUp) Type() Types     { return MouseUpType }
func (MouseEnter) Type() Types  { return MouseEnterType }
func (MouseLeave) Type() Types  { return MouseLeaveType }
func (MouseMotion) Type() Types { return MouseMotionType }
func (Scroll) Type() Types      { return ScrollType }
func (DragStart) Type() Types   { return DragStartType }
func (Drag) Type() Types        { return DragType }
func (DragEnd) Type() Types     { return DragEndType }
func (Focus) Type() Types       { return FocusType }
func (Blur) Type() Types        { return BlurType }
func (Tick) Type() Types        { return TickType }
func (KeyDown) Type() Types     { return KeyDownType }
func (KeyUp) Type() Types       { return KeyUpType }
func (KeyPress) Type() Types    { return KeyPressType }
func (TextEntry) Type() Types   { return TextEntryType }
func (DragEnter) Type() Types   { return DragEnterType }
func (DragLeave) Type() Types   { return DragLeaveType }
func (DragTarget) Type() Types  { return DragTargetType }
func (DragDrop) Type() Types    { return DragDropType }
func (TouchDown) Type() Types   { return TouchDownType }
func (TouchUp) Type() Types     { return TouchUpType }
func (TouchMoved) Type() Types  { return TouchMovedType }
func (TouchCancel) Type() Types { return TouchCancelType }
func (MenuSelect) Type() Types  { return MenuSelectType }
