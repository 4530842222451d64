// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// monoFonts measures every character as half the font size wide
// and every line as the font size high, without wrapping.
type monoFonts struct{}

func (monoFonts) MeasureText(text string, size, maxWidth float32) math32.Vector2 {
	return math32.Vec2(float32(len(text))*size/2, size)
}

func (monoFonts) LineHeight(size float32) float32 { return size }

// eventLog records the events delivered to [probe] components.
type eventLog struct {
	entries []string
	updates []string

	// over records the child and subchild under the pointer for each
	// click handled over a child, as name:child/subchild.
	over []string
}

func (l *eventLog) add(name string, t events.Types) {
	l.entries = append(l.entries, fmt.Sprintf("%s:%v", name, t))
}

// probe is a component that records the events it receives and the
// messages that reach its Update. It stops the events of the types in
// stop, and emits its name on click.
type probe struct {
	ComponentBase

	Name string

	log  *eventLog
	stop map[events.Types]bool
	regs []events.RegisterKind
}

func newProbe(name string, log *eventLog, stop ...events.Types) *probe {
	p := &probe{Name: name, log: log, stop: map[events.Types]bool{}}
	for _, t := range stop {
		p.stop[t] = true
	}
	return p
}

func (p *probe) handle(t events.Types, stop func()) {
	p.log.add(p.Name, t)
	if p.stop[t] {
		stop()
	}
}

func (p *probe) Update(msg events.Message) []events.Message {
	p.log.updates = append(p.log.updates, fmt.Sprintf("%s<-%v", p.Name, msg))
	return []events.Message{msg}
}

func (p *probe) Register() []events.RegisterKind { return p.regs }

func (p *probe) Render(ctx RenderContext) []paint.Renderable {
	return []paint.Renderable{paint.Rect{AABB: ctx.AABB}}
}

func (p *probe) OnClick(e *events.Event[events.Click]) {
	if c, s, ok := e.OverChild(); ok {
		p.log.over = append(p.log.over, fmt.Sprintf("%s:%d/%d", p.Name, c, s))
	}
	e.Emit(p.Name)
	p.handle(e.Type(), e.StopBubbling)
}

func (p *probe) OnDoubleClick(e *events.Event[events.DoubleClick]) {
	p.handle(e.Type(), e.StopBubbling)
}

func (p *probe) OnMouseDown(e *events.Event[events.MouseDown]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnMouseUp(e *events.Event[events.MouseUp])     { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnMouseEnter(e *events.Event[events.MouseEnter]) {
	p.handle(e.Type(), e.StopBubbling)
}
func (p *probe) OnMouseLeave(e *events.Event[events.MouseLeave]) {
	p.handle(e.Type(), e.StopBubbling)
}
func (p *probe) OnScroll(e *events.Event[events.Scroll])       { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDrag(e *events.Event[events.Drag])           { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDragStart(e *events.Event[events.DragStart]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDragEnd(e *events.Event[events.DragEnd])     { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnFocus(e *events.Event[events.Focus])         { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnBlur(e *events.Event[events.Blur])           { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnTick(e *events.Event[events.Tick])           { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnKeyDown(e *events.Event[events.KeyDown])     { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnKeyUp(e *events.Event[events.KeyUp])         { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnKeyPress(e *events.Event[events.KeyPress])   { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDragEnter(e *events.Event[events.DragEnter]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDragLeave(e *events.Event[events.DragLeave]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnDragTarget(e *events.Event[events.DragTarget]) {
	p.handle(e.Type(), e.StopBubbling)
}
func (p *probe) OnDragDrop(e *events.Event[events.DragDrop]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnTouchDown(e *events.Event[events.TouchDown]) {
	p.handle(e.Type(), e.StopBubbling)
}
func (p *probe) OnTouchUp(e *events.Event[events.TouchUp]) { p.handle(e.Type(), e.StopBubbling) }
func (p *probe) OnMenuSelect(e *events.Event[events.MenuSelect]) {
	p.handle(e.Type(), e.StopBubbling)
}

// box is a node of the given pixel size with the given key.
func box(key uint64, c Component, w, h float32) *Node {
	return New(c, styles.Layout{Size: styles.SizePx(w, h)}).WithKey(key)
}

// frame runs a frame of the tree against prev in a window of the given
// logical size with a scale factor of 1.
func frame(root, prev *Node, w, h float32) ([]events.Registration, bool) {
	return root.Frame(prev, math32.Vec2(w, h), 1, monoFonts{}, nil)
}
