// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"
	"time"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/stretchr/testify/assert"
)

func TestCacheClickUnderThreshold(t *testing.T) {
	c := NewCache(DefaultThresholds())
	now := time.Unix(100, 0)
	c.MouseMove(math32.Vec2(0, 0))
	c.MouseDown(Left)
	assert.True(t, c.ButtonsHeld[Left])
	assert.Equal(t, NoDrag, c.MouseMove(math32.Vec2(5, 5)))
	r := c.MouseUp(Left, now)
	assert.False(t, r.DragEnded)
	assert.True(t, r.Click)
	assert.False(t, r.DoubleClick)
	assert.False(t, c.ButtonsHeld[Left])
}

func TestCacheDragThenClick(t *testing.T) {
	c := NewCache(DefaultThresholds())
	c.MouseMove(math32.Vec2(0, 0))
	c.MouseDown(Left)
	assert.Equal(t, NoDrag, c.MouseMove(math32.Vec2(10, 10)))
	assert.Equal(t, DragStarted, c.MouseMove(math32.Vec2(20, 20)))
	assert.True(t, c.IsDragging())
	b, ok := c.DragButton()
	assert.True(t, ok)
	assert.Equal(t, Left, b)
	assert.Equal(t, DragMoved, c.MouseMove(math32.Vec2(20, 21)))
	r := c.MouseUp(Left, time.Unix(100, 0))
	assert.True(t, r.DragEnded)
	assert.True(t, r.Click)
	assert.Equal(t, math32.Vec2(0, 0), r.Start)
	assert.False(t, c.IsDragging())
}

func TestCacheLongDragNoClick(t *testing.T) {
	c := NewCache(DefaultThresholds())
	c.MouseDown(Left)
	assert.Equal(t, DragStarted, c.MouseMove(math32.Vec2(40, 0)))
	r := c.MouseUp(Left, time.Unix(100, 0))
	assert.True(t, r.DragEnded)
	assert.False(t, r.Click)
}

func TestCacheDoubleClick(t *testing.T) {
	c := NewCache(DefaultThresholds())
	t0 := time.Unix(100, 0)
	c.MouseDown(Left)
	assert.True(t, c.MouseUp(Left, t0).Click)
	c.MouseDown(Left)
	r := c.MouseUp(Left, t0.Add(200*time.Millisecond))
	assert.True(t, r.DoubleClick)
	assert.False(t, r.Click)

	c.MouseDown(Left)
	assert.True(t, c.MouseUp(Left, t0.Add(300*time.Millisecond)).Click)
	c.MouseDown(Left)
	r = c.MouseUp(Left, t0.Add(600*time.Millisecond))
	assert.True(t, r.Click)
	assert.False(t, r.DoubleClick)
}

func TestCacheDoubleClickTooFar(t *testing.T) {
	c := NewCache(DefaultThresholds())
	t0 := time.Unix(100, 0)
	c.MouseDown(Left)
	c.MouseUp(Left, t0)
	c.MouseMove(math32.Vec2(12, 0))
	c.MouseDown(Left)
	r := c.MouseUp(Left, t0.Add(100*time.Millisecond))
	assert.True(t, r.Click)
	assert.False(t, r.DoubleClick)
}

func TestCacheOtherButtonRelease(t *testing.T) {
	c := NewCache(DefaultThresholds())
	c.MouseDown(Left)
	c.MouseDown(Right)
	r := c.MouseUp(Right, time.Unix(1, 0))
	assert.False(t, r.Click)
	assert.True(t, c.MouseUp(Left, time.Unix(1, 0)).Click)
}

func TestCacheTouch(t *testing.T) {
	c := NewCache(DefaultThresholds())
	assert.True(t, c.TouchDown(1, math32.Vec2(10, 10)))
	assert.False(t, c.TouchDown(2, math32.Vec2(50, 50)))
	assert.Equal(t, NoDrag, c.TouchMove(2, math32.Vec2(90, 90)))
	assert.Equal(t, DragStarted, c.TouchMove(1, math32.Vec2(10, 30)))
	assert.Equal(t, math32.Vec2(10, 10), c.TouchDragStart())
	r := c.TouchUp(1, math32.Vec2(10, 30), time.Unix(1, 0))
	assert.True(t, r.DragEnded)
	assert.True(t, r.Click)

	assert.True(t, c.TouchDown(3, math32.Vec2(0, 0)))
	assert.Equal(t, DragStarted, c.TouchMove(3, math32.Vec2(0, 20)))
	assert.True(t, c.TouchCancel(3))
	assert.False(t, c.IsDragging())
}

func TestCacheKeys(t *testing.T) {
	c := NewCache(DefaultThresholds())
	assert.False(t, c.KeyDown(KeyShift))
	assert.True(t, c.KeyDown(KeyShift))
	assert.True(t, c.Modifiers.HasFlag(Shift))
	c.KeyDown(KeyRune('a'))
	snap := c.Snapshot()
	assert.True(t, c.KeyUp(KeyShift))
	assert.False(t, c.Modifiers.HasFlag(Shift))
	assert.True(t, snap.KeysHeld[KeyShift])
	assert.False(t, c.KeyUp(KeyShift))

	c.MouseDown(Left)
	c.ResetHeld()
	assert.Empty(t, c.KeysHeld)
	assert.Empty(t, c.ButtonsHeld)
	assert.Equal(t, "Shift+Control", (Shift | Control).String())
	assert.Equal(t, "a", KeyRune('a').String())
	assert.Equal(t, "Enter", KeyEnter.String())
}

func TestEventFlags(t *testing.T) {
	c := NewCache(DefaultThresholds())
	c.Focus = 4
	e := New(Click{Button: Left}, c)
	assert.True(t, e.Bubbles())
	assert.Equal(t, ClickType, e.Type())
	_, ok := e.Target()
	assert.False(t, ok)

	e.SetCurrent(Current{ID: 4})
	assert.False(t, e.Dirty())
	e.SetDirty()
	assert.True(t, e.Dirty())
	assert.True(t, e.IsFocused())
	e.Emit("hello")
	e.Register(RegisterKeyDown)
	e.Focus()
	id, ok := e.FocusRequest()
	assert.True(t, ok)
	assert.Equal(t, NodeID(4), id)

	e.SetCurrent(Current{ID: 9})
	e.StopBubbling()
	assert.False(t, e.Bubbles())
	id, _ = e.Target()
	assert.Equal(t, NodeID(9), id)
	e.Blur()
	id, _ = e.FocusRequest()
	assert.Equal(t, RootID, id)

	assert.Equal(t, []Message{"hello"}, e.TakeMessages())
	assert.Empty(t, e.TakeMessages())
	assert.Equal(t, []Registration{{Kind: RegisterKeyDown, ID: 4}}, e.TakeRegistrations())

	rk, ok := KeyDownType.RegisterKind()
	assert.True(t, ok)
	assert.Equal(t, RegisterKeyDown, rk)
	_, ok = ClickType.RegisterKind()
	assert.False(t, ok)
}
