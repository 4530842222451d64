// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input defines the closed set of raw inputs that a windowing
// backend feeds into a UI, one at a time.
package input

import (
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
)

// Input is a raw input from the windowing backend.
// The set of implementations is closed.
type Input interface {
	isInput()
}

// Resize is sent when the window surface changes size or scale.
type Resize struct {
	// Size is the new physical size.
	Size math32.Vector2

	// ScaleFactor is the new ratio of physical to logical pixels.
	// A zero value keeps the current scale.
	ScaleFactor float32
}

// Motion is a mouse motion to the given physical position.
type Motion struct {
	Pos math32.Vector2
}

// Scroll is a scroll wheel or gesture delta in physical pixels.
type Scroll struct {
	Delta math32.Vector2
}

// Press is a mouse button press.
type Press struct {
	Button events.Buttons
}

// Release is a mouse button release.
type Release struct {
	Button events.Buttons
}

// KeyPress is a key press, including repeats.
type KeyPress struct {
	Key  events.Key
	Text string
}

// KeyRelease is a key release.
type KeyRelease struct {
	Key events.Key
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

// TouchCancel is a touch point cancelled by the system.
type TouchCancel struct {
	ID  uint64
	Pos math32.Vector2
}

// Text is committed text input.
type Text struct {
	Text string
}

// Focus is sent when the window gains or loses focus.
type Focus struct {
	Focused bool
}

// Timer is a periodic tick.
type Timer struct{}

// MouseEnterWindow is sent when the mouse enters the window.
type MouseEnterWindow struct{}

// MouseLeaveWindow is sent when the mouse leaves the window.
type MouseLeaveWindow struct{}

// DragStart is the start of a drag and drop operation over the window.
type DragStart struct {
	Data string
}

// Dragging is the motion of a drag and drop operation over the window.
type Dragging struct {
	Pos math32.Vector2
}

// DragEnd is the end of a drag and drop operation without a drop.
type DragEnd struct{}

// Drop is the drop of a drag and drop operation.
type Drop struct {
	Data string
}

// Exit is sent when the window is closing.
type Exit struct{}

// Menu is the selection of a system menu item.
type Menu struct {
	ID int
}

func (Resize) isInput()           {}
func (Motion) isInput()           {}
func (Scroll) isInput()           {}
func (Press) isInput()            {}
func (Release) isInput()          {}
func (KeyPress) isInput()         {}
func (KeyRelease) isInput()       {}
func (TouchDown) isInput()        {}
func (TouchUp) isInput()          {}
func (TouchMoved) isInput()       {}
func (TouchCancel) isInput()      {}
func (Text) isInput()             {}
func (Focus) isInput()            {}
func (Timer) isInput()            {}
func (MouseEnterWindow) isInput() {}
func (MouseLeaveWindow) isInput() {}
func (DragStart) isInput()        {}
func (Dragging) isInput()         {}
func (DragEnd) isInput()          {}
func (Drop) isInput()             {}
func (Exit) isInput()             {}
func (Menu) isInput()             {}
