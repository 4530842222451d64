// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"maps"
	"time"

	"github.com/mecha-org/mctk-sub000/math32"
)

// Thresholds are the distances and times that separate clicks,
// double-clicks and drags.
type Thresholds struct {

	// DragThreshold is the distance in pixels a held button must move
	// before a drag starts.
	DragThreshold float32

	// DragClickMaxDistance is the maximum distance in pixels between the
	// press and the release of a drag for the release to also be a click.
	DragClickMaxDistance float32

	// DoubleClickInterval is the maximum time between two clicks
	// of a double-click.
	DoubleClickInterval time.Duration

	// DoubleClickMaxDistance is the maximum distance in pixels between
	// two clicks of a double-click.
	DoubleClickMaxDistance float32
}

// DefaultThresholds returns the default [Thresholds].
func DefaultThresholds() Thresholds {
	return Thresholds{
		DragThreshold:          15,
		DragClickMaxDistance:   30,
		DoubleClickInterval:    250 * time.Millisecond,
		DoubleClickMaxDistance: 10,
	}
}

// DragAction is the drag state change caused by a pointer motion.
type DragAction int32

const (
	// NoDrag means the motion is not part of a drag.
	NoDrag DragAction = iota

	// DragStarted means the motion crossed the drag threshold.
	DragStarted

	// DragMoved means the motion continues an active drag.
	DragMoved
)

// Release is the outcome of releasing a button or touch point.
type Release struct {

	// Button is the released button.
	Button Buttons

	// Start is where the button was pressed.
	Start math32.Vector2

	// DragEnded is whether the release ended a drag.
	DragEnded bool

	// Click is whether the release is a click.
	Click bool

	// DoubleClick is whether the release completes a double-click,
	// in which case Click is false.
	DoubleClick bool
}

// pointer tracks the press/drag state of one pointer (the mouse or
// the primary touch point).
type pointer struct {
	down     bool
	button   Buttons
	downPos  math32.Vector2
	dragging bool
}

// Cache is the input state of a UI, kept for its whole life.
// It is only mutated by the UI's input dispatcher.
type Cache struct {

	// Focus is the focused node.
	Focus NodeID

	// KeysHeld is the set of keys physically held down.
	KeysHeld map[Key]bool

	// Modifiers are the modifier keys held down.
	Modifiers Modifiers

	// ButtonsHeld is the set of mouse buttons held down.
	ButtonsHeld map[Buttons]bool

	// MousePosition is the last mouse position in physical pixels.
	MousePosition math32.Vector2

	// MouseInWindow is whether the mouse is over the window.
	MouseInWindow bool

	// TouchPosition is the last position of the primary touch point.
	TouchPosition math32.Vector2

	// DragTarget is the node that received the current DragStart.
	DragTarget NodeID

	// ScaleFactor is the ratio of physical to logical pixels.
	ScaleFactor float32

	// Thresholds are the click and drag thresholds.
	Thresholds Thresholds

	lastClick    time.Time
	lastClickPos math32.Vector2
	mouse        pointer
	touch        pointer
	touchID      uint64
}

// NewCache returns a new [Cache] with the given thresholds.
func NewCache(th Thresholds) *Cache {
	return &Cache{
		Focus:       RootID,
		KeysHeld:    map[Key]bool{},
		ButtonsHeld: map[Buttons]bool{},
		ScaleFactor: 1,
		Thresholds:  th,
	}
}

// Snapshot returns a copy of the cache that does not share its sets.
func (c *Cache) Snapshot() Cache {
	s := *c
	s.KeysHeld = maps.Clone(c.KeysHeld)
	s.ButtonsHeld = maps.Clone(c.ButtonsHeld)
	return s
}

// IsDragging returns whether a mouse or touch drag is active.
func (c *Cache) IsDragging() bool {
	return c.mouse.dragging || c.touch.dragging
}

// DragButton returns the button of the active mouse drag, if any.
func (c *Cache) DragButton() (Buttons, bool) {
	if !c.mouse.dragging {
		return NoButton, false
	}
	return c.mouse.button, true
}

// DragStartPosition returns where the active mouse drag was pressed.
func (c *Cache) DragStartPosition() math32.Vector2 {
	return c.mouse.downPos
}

// KeyDown records a key press and returns whether the key was already held.
func (c *Cache) KeyDown(k Key) (repeat bool) {
	repeat = c.KeysHeld[k]
	c.KeysHeld[k] = true
	if m, ok := k.Modifier(); ok {
		c.Modifiers.SetFlag(true, m)
	}
	return repeat
}

// KeyUp records a key release and returns whether the key was held.
func (c *Cache) KeyUp(k Key) (held bool) {
	held = c.KeysHeld[k]
	delete(c.KeysHeld, k)
	if m, ok := k.Modifier(); ok {
		c.Modifiers.SetFlag(false, m)
	}
	return held
}

// ResetHeld clears all held keys, modifiers and buttons, and abandons
// any press or drag in progress.
func (c *Cache) ResetHeld() {
	clear(c.KeysHeld)
	clear(c.ButtonsHeld)
	c.Modifiers = 0
	c.mouse = pointer{}
	c.touch = pointer{}
}

// MouseMove records a mouse motion and returns the resulting drag action.
func (c *Cache) MouseMove(pos math32.Vector2) DragAction {
	c.MousePosition = pos
	return c.move(&c.mouse, pos)
}

// MouseDown records a mouse button press at the current mouse position.
func (c *Cache) MouseDown(b Buttons) {
	c.ButtonsHeld[b] = true
	if !c.mouse.down {
		c.mouse = pointer{down: true, button: b, downPos: c.MousePosition}
	}
}

// MouseUp records a mouse button release at the current mouse position
// and resolves it into a drag end, click or double-click.
func (c *Cache) MouseUp(b Buttons, now time.Time) Release {
	delete(c.ButtonsHeld, b)
	if !c.mouse.down || c.mouse.button != b {
		return Release{Button: b, Start: c.MousePosition}
	}
	return c.release(&c.mouse, c.MousePosition, now)
}

// TouchDown records the start of a touch point. Only the first touch
// point of a gesture drives clicks and drags; it returns whether id
// is that primary point.
func (c *Cache) TouchDown(id uint64, pos math32.Vector2) bool {
	if c.touch.down {
		return id == c.touchID
	}
	c.touchID = id
	c.TouchPosition = pos
	c.touch = pointer{down: true, button: Left, downPos: pos}
	return true
}

// TouchMove records the motion of a touch point and returns the
// resulting drag action of the primary point.
func (c *Cache) TouchMove(id uint64, pos math32.Vector2) DragAction {
	if !c.touch.down || id != c.touchID {
		return NoDrag
	}
	c.TouchPosition = pos
	return c.move(&c.touch, pos)
}

// TouchUp records the end of a touch point and resolves it like a
// mouse button release.
func (c *Cache) TouchUp(id uint64, pos math32.Vector2, now time.Time) Release {
	if !c.touch.down || id != c.touchID {
		return Release{Button: Left, Start: pos}
	}
	c.TouchPosition = pos
	return c.release(&c.touch, pos, now)
}

// TouchCancel abandons the primary touch point without a click.
// It returns whether a drag was active.
func (c *Cache) TouchCancel(id uint64) (wasDragging bool) {
	if !c.touch.down || id != c.touchID {
		return false
	}
	wasDragging = c.touch.dragging
	c.touch = pointer{}
	return wasDragging
}

// TouchDragStart returns where the primary touch point went down.
func (c *Cache) TouchDragStart() math32.Vector2 {
	return c.touch.downPos
}

func (c *Cache) move(p *pointer, pos math32.Vector2) DragAction {
	if !p.down {
		return NoDrag
	}
	if p.dragging {
		return DragMoved
	}
	if pos.DistanceTo(p.downPos) > c.Thresholds.DragThreshold {
		p.dragging = true
		return DragStarted
	}
	return NoDrag
}

func (c *Cache) release(p *pointer, pos math32.Vector2, now time.Time) Release {
	r := Release{Button: p.button, Start: p.downPos}
	if p.dragging {
		r.DragEnded = true
		r.Click = pos.DistanceTo(p.downPos) < c.Thresholds.DragClickMaxDistance
		c.lastClick = time.Time{}
	} else if !c.lastClick.IsZero() &&
		now.Sub(c.lastClick) <= c.Thresholds.DoubleClickInterval &&
		pos.DistanceTo(c.lastClickPos) <= c.Thresholds.DoubleClickMaxDistance {
		r.DoubleClick = true
		c.lastClick = time.Time{}
	} else {
		r.Click = true
		c.lastClick = now
		c.lastClickPos = pos
	}
	*p = pointer{}
	return r
}
