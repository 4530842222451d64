// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// This file contains the interfaces of the collaborators that
// a [UI] drives: the window it is shown in and the renderer that
// draws the renderables of its node tree.

import (
	"io/fs"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
)

// Window is a window provided by a windowing backend.
// Its methods may be called from any goroutine.
type Window interface {

	// LogicalSize returns the size of the window in logical pixels.
	LogicalSize() math32.Vector2

	// PhysicalSize returns the size of the window surface in physical pixels.
	PhysicalSize() math32.Vector2

	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float32

	// SetSize sets the physical size and scale factor of the window,
	// as reported by the backend.
	SetSize(physical math32.Vector2, scaleFactor float32)

	// Redraw requests that the window surface is redrawn.
	Redraw()

	// NextFrame requests a callback for the next frame.
	NextFrame()

	// FontData returns the font used for text, or nil for the default font.
	FontData() []byte

	// Assets returns the file system holding the images and icons of the
	// application, or nil.
	Assets() fs.FS
}

// Renderer draws the renderables of a node tree to a window surface.
type Renderer interface {

	// Render draws the given tree to a surface of the given physical size.
	Render(root *Node, physicalSize math32.Vector2) error

	// Fonts returns the font metrics used to draw text, which the layout
	// also uses to measure it.
	Fonts() paint.FontMetrics

	// Close releases the surface of the renderer.
	Close() error
}

// NewRendererFunc creates a [Renderer] for a window. It is called
// again whenever the window is resized.
type NewRendererFunc func(w Window) (Renderer, error)
