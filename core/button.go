// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/binary"
	"hash"
	"image/color"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// Button is a clickable label that emits Msg when clicked.
type Button struct {
	Stateful[ButtonState]

	Label string

	// Msg is emitted on click. It is not part of the props.
	Msg events.Message `hash:"ignore"`

	Background color.RGBA

	// HoverBackground is the background while the pointer is over the
	// button, and PressedBackground while it is pressed.
	HoverBackground, PressedBackground color.RGBA

	TextColor color.RGBA
}

// ButtonState is the state of a [Button].
type ButtonState struct {
	Hovered bool
	Pressed bool
}

func (b *Button) Init() {
	b.SetState(&ButtonState{})
}

func (b *Button) View() *Node {
	return New(&Text{Text: b.Label, Color: b.TextColor}, styles.Layout{
		Margin: styles.RectPx(4, 8),
	})
}

// RenderHash adds the state of the button to its props hash.
func (b *Button) RenderHash(h hash.Hash64) {
	binary.Write(h, binary.LittleEndian, PropsHash(b))
	if b.HasState() {
		st := b.StateRef()
		binary.Write(h, binary.LittleEndian, []bool{st.Hovered, st.Pressed})
	}
}

func (b *Button) background() color.RGBA {
	if !b.HasState() {
		return b.Background
	}
	switch st := b.StateRef(); {
	case st.Pressed:
		return b.PressedBackground
	case st.Hovered:
		return b.HoverBackground
	}
	return b.Background
}

func (b *Button) Render(ctx RenderContext) []paint.Renderable {
	return []paint.Renderable{paint.Rect{
		AABB:         ctx.AABB,
		Color:        b.background(),
		CornerRadius: 4 * ctx.ScaleFactor,
	}}
}

func (b *Button) OnClick(e *events.Event[events.Click]) {
	if b.Msg != nil {
		e.Emit(b.Msg)
	}
	e.StopBubbling()
}

// OnDoubleClick emits the message again, since the second click of a
// double-click is not delivered as a click.
func (b *Button) OnDoubleClick(e *events.Event[events.DoubleClick]) {
	if b.Msg != nil {
		e.Emit(b.Msg)
	}
	e.StopBubbling()
}

func (b *Button) OnMouseEnter(e *events.Event[events.MouseEnter]) {
	b.StateMut().Hovered = true
}

func (b *Button) OnMouseLeave(e *events.Event[events.MouseLeave]) {
	st := b.StateMut()
	st.Hovered = false
	st.Pressed = false
}

func (b *Button) OnMouseDown(e *events.Event[events.MouseDown]) {
	b.StateMut().Pressed = true
	e.StopBubbling()
}

func (b *Button) OnMouseUp(e *events.Event[events.MouseUp]) {
	b.StateMut().Pressed = false
}
