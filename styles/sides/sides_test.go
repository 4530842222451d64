// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/stretchr/testify/assert"
)

func TestSidesSet(t *testing.T) {
	assert.Equal(t, Sides[int]{1, 1, 1, 1}, NewSides(1))
	assert.Equal(t, Sides[int]{1, 2, 1, 2}, NewSides(1, 2))
	assert.Equal(t, Sides[int]{1, 2, 3, 2}, NewSides(1, 2, 3))
	assert.Equal(t, Sides[int]{1, 2, 3, 4}, NewSides(1, 2, 3, 4))
	assert.Equal(t, Sides[int]{1, 2, 3, 4}, NewSides(1, 2, 3, 4, 5))
	assert.Equal(t, Sides[int]{}, NewSides[int]())
}

func TestSidesDims(t *testing.T) {
	s := Floats{Top: 1, Right: 2, Bottom: 3, Left: 4}
	assert.Equal(t, float32(4), s.Start(math32.X))
	assert.Equal(t, float32(2), s.End(math32.X))
	assert.Equal(t, float32(1), s.Start(math32.Y))
	assert.Equal(t, float32(3), s.End(math32.Y))
	assert.Equal(t, math32.Vec2(6, 4), Total(s))
}
