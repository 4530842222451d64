// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
)

// DefaultFontSize is the font size of a [Text] without one.
const DefaultFontSize = 16

// Text is a run of text, wrapped to its width. Without a given size
// it takes the size of its text.
type Text struct {
	ComponentBase

	Text string

	// FontSize is the font size in logical pixels.
	FontSize float32

	Color color.RGBA
}

func (t *Text) fontSize() float32 {
	if t.FontSize <= 0 {
		return DefaultFontSize
	}
	return t.FontSize
}

// FillBounds measures the text, wrapping it to the resolved width or
// else the available width.
func (t *Text) FillBounds(width, height, maxWidth, maxHeight styles.Dimension, fonts paint.FontMetrics, scaleFactor float32) (styles.Dimension, styles.Dimension) {
	if fonts == nil {
		return width, height
	}
	var wrap float32
	if w, ok := width.Px(); ok {
		wrap = w
	} else if w, ok := maxWidth.Px(); ok {
		wrap = w
	}
	sz := fonts.MeasureText(t.Text, t.fontSize(), wrap)
	if width.IsAuto() {
		width = styles.Px(sz.X)
	}
	if height.IsAuto() {
		height = styles.Px(sz.Y)
	}
	return width, height
}

func (t *Text) Render(ctx RenderContext) []paint.Renderable {
	if t.Text == "" {
		return nil
	}
	return []paint.Renderable{paint.Text{
		AABB:     ctx.AABB,
		Text:     t.Text,
		Color:    t.Color,
		FontSize: t.fontSize() * ctx.ScaleFactor,
	}}
}
