// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the graphical primitives produced by components
// when they render, and the font metrics used to measure text during
// layout.
package paint
