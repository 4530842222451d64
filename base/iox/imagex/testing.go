// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mecha-org/mctk-sub000/base/errors"
)

// TestingT is the part of [testing.T] used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the reference images instead
// of comparing against them. It is set when the environment variable
// MCTK_UPDATE_TESTDATA is "true", which should only be done after a
// change that is meant to alter rendering.
var UpdateTestImages = os.Getenv("MCTK_UPDATE_TESTDATA") == "true"

// Tolerance is the largest difference per color channel that [Assert]
// accepts between a pixel and its reference.
var Tolerance = 10

// CompareUint8 returns whether a and b differ by at most tol.
func CompareUint8(a, b uint8, tol int) bool {
	return int(absDiff(a, b)) <= tol
}

// CompareColors returns whether every channel of a and b differs by
// at most tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	return CompareUint8(a.R, b.R, tol) && CompareUint8(a.G, b.G, tol) &&
		CompareUint8(a.B, b.B, tol) && CompareUint8(a.A, b.A, tol)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func rgbaAt(im image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
}

// DiffImage returns an opaque image of the absolute per-channel
// difference between a and b, over the bounds of a.
func DiffImage(a, b image.Image) image.Image {
	bounds := a.Bounds()
	di := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ca, cb := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{absDiff(ca.R, cb.R), absDiff(ca.G, cb.G), absDiff(ca.B, cb.B), 255})
		}
	}
	return di
}

// mismatch returns the first pixel of img that differs from ref by
// more than the tolerance.
func mismatch(img, ref image.Image, tol int) (image.Point, bool) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !CompareColors(rgbaAt(img, x, y), rgbaAt(ref, x, y), tol) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Assert checks that img matches the reference image testdata/name,
// with ".png" added if name has no extension. A missing reference is
// created from img. On a mismatch the test fails and the image and its
// difference from the reference are saved next to it with .fail and
// .diff suffixes; they are removed again once the image matches.
func Assert(t TestingT, img image.Image, name string) {
	ref := filepath.Join("testdata", name)
	if filepath.Ext(ref) == "" {
		ref += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(ref), 0o750); err != nil {
		t.Errorf("imagex.Assert: making testdata directory: %v", err)
		return
	}
	ext := filepath.Ext(ref)
	fail := strings.TrimSuffix(ref, ext) + ".fail" + ext
	diff := strings.TrimSuffix(ref, ext) + ".diff" + ext
	clean := func() {
		if err := errors.Join(os.RemoveAll(fail), os.RemoveAll(diff)); err != nil {
			t.Errorf("imagex.Assert: removing old failure images: %v", err)
		}
	}

	if UpdateTestImages {
		if err := Save(img, ref); err != nil {
			t.Errorf("imagex.Assert: saving updated image: %v", err)
		}
		clean()
		return
	}

	want, _, err := Open(ref)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, ref); err != nil {
			t.Errorf("imagex.Assert: saving new image: %v", err)
		}
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", ref, err)
		return
	}

	if got, exp := img.Bounds(), want.Bounds(); got != exp {
		t.Errorf("imagex.Assert: image for %s has bounds %v, expected %v; see %s", ref, got, exp, fail)
	} else if p, bad := mismatch(img, want, Tolerance); bad {
		t.Errorf("imagex.Assert: image for %s differs at %v: got %v, expected %v; see %s",
			ref, p, rgbaAt(img, p.X, p.Y), rgbaAt(want, p.X, p.Y), fail)
	} else {
		clean()
		return
	}
	if err := Save(img, fail); err != nil {
		t.Errorf("imagex.Assert: saving fail image: %v", err)
	}
	if err := Save(DiffImage(img, want), diff); err != nil {
		t.Errorf("imagex.Assert: saving diff image: %v", err)
	}
}
