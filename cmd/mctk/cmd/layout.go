// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/base/iox/imagex"
	"github.com/mecha-org/mctk-sub000/core"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/events/input"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/system/offscreen"
)

// LayoutConfig is the configuration of the layout command.
type LayoutConfig struct {

	// Width is the width of the window in logical pixels.
	Width float32

	// Height is the height of the window in logical pixels.
	Height float32

	// Scale is the scale factor of the window.
	Scale float32

	// Items is the number of items in the list of the demo app.
	Items int

	// Clicks is the number of times the button of the demo app is
	// clicked before the tree is printed.
	Clicks int

	// Image is the file the rendered frame is saved to, if set.
	// The format follows its extension.
	Image string

	// Settings is the settings file; see [core.OpenSettings].
	Settings string
}

// Layout shows the demo app in an offscreen window, clicks its button,
// and writes the resulting node tree to w.
func Layout(w io.Writer, c *LayoutConfig) error {
	u, r, err := showDemo(c)
	if err != nil {
		return err
	}
	defer u.Close()

	if err := u.Root().WriteTree(w); err != nil {
		return err
	}
	if c.Image == "" {
		return nil
	}
	img := r.Image()
	if img == nil {
		return errors.New("layout: no frame was rendered")
	}
	return imagex.Save(img, c.Image)
}

// showDemo draws and renders the demo app after clicking its button.
func showDemo(c *LayoutConfig) (*core.UI, *offscreen.Renderer, error) {
	if c.Width <= 0 || c.Height <= 0 || c.Scale <= 0 {
		return nil, nil, fmt.Errorf("layout: width, height and scale must be positive, got %vx%v at %v", c.Width, c.Height, c.Scale)
	}
	st, err := core.OpenSettings(c.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("layout: %w", err)
	}
	win := offscreen.NewWindow(math32.Vec2(c.Width, c.Height).MulScalar(c.Scale), c.Scale)
	var r *offscreen.Renderer
	newRenderer := func(cw core.Window) (core.Renderer, error) {
		var err error
		r, err = offscreen.New(cw)
		return r, err
	}
	u, err := core.NewUI(win, newRenderer, func() *core.Node { return NewDemo(c.Items) }, st)
	if err != nil {
		return nil, nil, fmt.Errorf("layout: %w", err)
	}

	u.Draw()
	for range c.Clicks {
		if err := clickButton(u); err != nil {
			u.Close()
			return nil, nil, err
		}
		u.Draw()
	}
	u.RenderFrame()
	return u, r, nil
}

// clickButton clicks the center of the first button in the tree.
func clickButton(u *core.UI) error {
	var button *core.Node
	u.Root().WalkDown(func(n *core.Node) bool {
		if _, ok := n.Component.(*core.Button); ok && button == nil {
			button = n
		}
		return button == nil
	})
	if button == nil {
		return errors.New("layout: the app has no button")
	}
	b := button.AABB
	pos := b.Pos.XY().Add(b.Size().MulScalar(0.5))
	u.HandleInput(input.Motion{Pos: pos})
	u.HandleInput(input.Press{Button: events.Left})
	u.HandleInput(input.Release{Button: events.Left})
	return nil
}
