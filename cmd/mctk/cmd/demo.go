// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the mctk tool.
package cmd

import (
	"fmt"
	"image/color"

	"github.com/mecha-org/mctk-sub000/core"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/styles"
)

// Demo is the demo app shown by the layout command: a panel with a
// click counter and a scrolling list.
type Demo struct {
	core.Stateful[DemoState]

	// Items are the entries of the list.
	Items []string
}

// DemoState is the state of a [Demo].
type DemoState struct {
	Clicks int
}

type demoClicked struct{}

var (
	demoBackground = color.RGBA{245, 245, 245, 255}
	demoText       = color.RGBA{30, 30, 30, 255}
	demoItem       = color.RGBA{220, 228, 240, 255}
)

func (d *Demo) Init() {
	d.SetState(&DemoState{})
}

func (d *Demo) View() *core.Node {
	list := core.New(&core.Div{ScrollY: true}, styles.Layout{
		Direction:      styles.Column,
		CrossAlignment: styles.Stretch,
		Size:           styles.Size{Width: styles.Pct(100), Height: styles.Px(80)},
	})
	for i, it := range d.Items {
		list.Push(core.New(&core.Div{Background: demoItem}, styles.Layout{
			Padding: styles.RectPx(4),
			Margin:  styles.RectPx(0, 0, 2),
		}).WithKey(uint64(i)).Push(
			core.New(&core.Text{Text: it, Color: demoText}, styles.Layout{}),
		))
	}
	return core.New(&core.Panel{Title: "mctk demo", Background: demoBackground}, styles.Layout{
		Size: styles.Size{Width: styles.Pct(100), Height: styles.Pct(100)},
	}).Push(
		core.New(&core.Text{Text: fmt.Sprintf("Clicks: %d", d.StateRef().Clicks), Color: demoText}, styles.Layout{}),
		core.New(&core.Button{Label: "Click me", Msg: demoClicked{}}, styles.Layout{}),
		list,
	)
}

func (d *Demo) Update(msg events.Message) []events.Message {
	if _, ok := msg.(demoClicked); ok {
		d.StateMut().Clicks++
		return nil
	}
	return []events.Message{msg}
}

// NewDemo returns the root node of the demo app with the given number
// of list items.
func NewDemo(items int) *core.Node {
	d := &Demo{}
	for i := range items {
		d.Items = append(d.Items, fmt.Sprintf("Item %d", i+1))
	}
	return core.New(d, styles.Layout{Size: styles.Size{Width: styles.Pct(100), Height: styles.Pct(100)}})
}
