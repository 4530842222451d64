// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"github.com/mecha-org/mctk-sub000/styles"
)

// Panel is a container with a title above a column that receives
// its pushed children.
type Panel struct {
	ComponentBase

	Title string

	Background color.RGBA
}

func (p *Panel) View() *Node {
	return New(&Div{Background: p.Background}, styles.Layout{
		Direction:      styles.Column,
		CrossAlignment: styles.Stretch,
		Padding:        styles.RectPx(8),
	}).Push(
		New(&Text{Text: p.Title, FontSize: 20}, styles.Layout{
			Margin: styles.RectPx(0, 0, 8, 0),
		}),
		New(&Div{}, styles.Layout{Direction: styles.Column}),
	)
}

// Container puts the pushed children in the column under the title.
func (p *Panel) Container() Slot {
	return Slot{0, 1}
}
