// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
)

// Div is a box with an optional background and border that lays out
// its pushed children. It scrolls along the axes given by ScrollX and
// ScrollY.
type Div struct {
	Stateful[DivState]

	// Background is the fill color. The zero value is transparent.
	Background color.RGBA

	// BorderColor is the color of the border.
	BorderColor color.RGBA

	// BorderWidth is the width of the border in logical pixels.
	BorderWidth float32

	// Radius is the corner radius in logical pixels.
	Radius float32

	// ScrollX and ScrollY are whether the div scrolls along each axis.
	ScrollX, ScrollY bool
}

// DivState is the state of a [Div].
type DivState struct {

	// Scroll is the requested scroll offset in physical pixels.
	Scroll math32.Vector2
}

func (d *Div) Init() {
	d.SetState(&DivState{})
}

func (d *Div) scrolls() bool {
	return d.ScrollX || d.ScrollY
}

func (d *Div) ScrollPosition() *ScrollPosition {
	if !d.scrolls() || !d.HasState() {
		return nil
	}
	return &ScrollPosition{Offset: d.StateRef().Scroll, X: d.ScrollX, Y: d.ScrollY}
}

// OnScroll scrolls a scrollable div, stopping the event if it moved.
func (d *Div) OnScroll(e *events.Event[events.Scroll]) {
	sp := d.ScrollPosition()
	if sp == nil {
		return
	}
	cur := e.Current()
	prev := ClampScrollOffset(*sp, cur.InnerScale, cur.AABB)
	sp.Offset = prev.Add(e.Input.Delta)
	next := ClampScrollOffset(*sp, cur.InnerScale, cur.AABB)
	if next == prev {
		return
	}
	d.StateMut().Scroll = next
	e.StopBubbling()
}

func (d *Div) Render(ctx RenderContext) []paint.Renderable {
	if d.Background.A == 0 && (d.BorderWidth == 0 || d.BorderColor.A == 0) {
		return nil
	}
	return []paint.Renderable{paint.Rect{
		AABB:         ctx.AABB,
		Color:        d.Background,
		BorderColor:  d.BorderColor,
		BorderWidth:  d.BorderWidth * ctx.ScaleFactor,
		CornerRadius: d.Radius * ctx.ScaleFactor,
	}}
}
