// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides headless implementations of the window and
// renderer that a [core.UI] drives, for testing and capturing apps
// without a display.
package offscreen

import (
	"io/fs"
	"sync"

	"github.com/mecha-org/mctk-sub000/core"
	"github.com/mecha-org/mctk-sub000/math32"
)

// Window is the implementation of [core.Window] on the offscreen platform.
// It records redraw and frame requests instead of presenting anything.
type Window struct {

	// Font is the font data used for text, or nil for the default font.
	Font []byte

	// FS is the file system holding the assets of the app, if any.
	FS fs.FS

	mu         sync.Mutex
	physical   math32.Vector2
	scale      float32
	redraws    int
	nextFrames int
}

var _ core.Window = &Window{}

// NewWindow returns a new [Window] with the given physical size and
// scale factor. A zero size defaults to 800x600 and a non-positive
// scale factor to 1.
func NewWindow(physical math32.Vector2, scaleFactor float32) *Window {
	if physical.X == 0 {
		physical.X = 800
	}
	if physical.Y == 0 {
		physical.Y = 600
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	return &Window{physical: physical, scale: scaleFactor}
}

func (w *Window) LogicalSize() math32.Vector2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.physical.MulScalar(1 / w.scale)
}

func (w *Window) PhysicalSize() math32.Vector2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.physical
}

func (w *Window) ScaleFactor() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *Window) SetSize(physical math32.Vector2, scaleFactor float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.physical = physical
	if scaleFactor > 0 {
		w.scale = scaleFactor
	}
}

func (w *Window) Redraw() {
	w.mu.Lock()
	w.redraws++
	w.mu.Unlock()
}

func (w *Window) NextFrame() {
	w.mu.Lock()
	w.nextFrames++
	w.mu.Unlock()
}

func (w *Window) FontData() []byte { return w.Font }

func (w *Window) Assets() fs.FS { return w.FS }

// Redraws returns the number of redraws requested so far.
func (w *Window) Redraws() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.redraws
}

// NextFrames returns the number of frame callbacks requested so far.
func (w *Window) NextFrames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nextFrames
}
