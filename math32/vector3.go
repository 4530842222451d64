// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 2D point with an additional Z (stacking depth) component.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// XY returns the X and Y components as a [Vector2].
func (v Vector3) XY() Vector2 {
	return Vec2(v.X, v.Y)
}

// AddXY returns the vector translated by the given 2D offset, keeping Z.
func (v Vector3) AddXY(d Vector2) Vector3 {
	return Vec3(v.X+d.X, v.Y+d.Y, v.Z)
}
