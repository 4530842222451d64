// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontMetrics measures text for intrinsic sizing during layout.
// Sizes are in the same units as the font size passed in.
type FontMetrics interface {

	// MeasureText returns the size of the given text at the given font
	// size, wrapped at word boundaries to maxWidth when maxWidth > 0.
	MeasureText(text string, size, maxWidth float32) math32.Vector2

	// LineHeight returns the height of one line of text at the given size.
	LineHeight(size float32) float32
}

// FontCache is a [FontMetrics] backed by an OpenType font, with one
// face cached per integer font size. It is safe for concurrent use.
type FontCache struct {
	font *sfnt.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewFontCache returns a [FontCache] for the given OpenType or TrueType
// font data. If data is nil the Go Regular font is used.
func NewFontCache(data []byte) (*FontCache, error) {
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Errorf("paint.NewFontCache: parsing font: %w", err)
	}
	return &FontCache{font: f, faces: map[int]font.Face{}}, nil
}

// DefaultFontCache returns a [FontCache] for the Go Regular font.
func DefaultFontCache() *FontCache {
	return errors.Must1(NewFontCache(nil))
}

// Face returns the face for the given size, rounded to the nearest
// integer (at least 1).
func (fc *FontCache) Face(size float32) (font.Face, error) {
	isz := max(int(math32.Round(size)), 1)
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if face, ok := fc.faces[isz]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    float64(isz),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[isz] = face
	return face, nil
}

// LineHeight returns the height of one line of text at the given size.
func (fc *FontCache) LineHeight(size float32) float32 {
	face, err := fc.Face(size)
	if errors.Log(err) != nil {
		return size
	}
	return math32.FromFixed(face.Metrics().Height)
}

// MeasureText returns the size of the given text, wrapped greedily at
// spaces so that no line exceeds maxWidth when maxWidth > 0. Explicit
// newlines always break a line. A single word wider than maxWidth
// overflows its line.
func (fc *FontCache) MeasureText(text string, size, maxWidth float32) math32.Vector2 {
	face, err := fc.Face(size)
	if errors.Log(err) != nil {
		return math32.Vector2{}
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	lines := wrapLines(face, text, maxWidth)
	var width float32
	for _, ln := range lines {
		width = max(width, math32.FromFixed(font.MeasureString(face, ln)))
	}
	lineHeight := math32.FromFixed(face.Metrics().Height)
	return math32.Vec2(math32.Ceil(width), math32.Ceil(lineHeight*float32(len(lines))))
}

// wrapLines splits the text into the lines it is drawn as.
func wrapLines(face font.Face, text string, maxWidth float32) []string {
	measure := func(s string) float32 {
		return math32.FromFixed(font.MeasureString(face, s))
	}
	space := measure(" ")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line []string
		var lineWidth float32
		for _, word := range strings.Fields(para) {
			w := measure(word)
			if len(line) > 0 && maxWidth > 0 && lineWidth+space+w > maxWidth {
				lines = append(lines, strings.Join(line, " "))
				line, lineWidth = nil, 0
			}
			if len(line) > 0 {
				lineWidth += space
			}
			line = append(line, word)
			lineWidth += w
		}
		lines = append(lines, strings.Join(line, " "))
	}
	return lines
}

// DrawText draws the text wrapped to the width of its box onto dst,
// clipped to the box.
func (fc *FontCache) DrawText(dst draw.Image, t Text) error {
	face, err := fc.Face(t.FontSize)
	if err != nil {
		return err
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	box := t.AABB.Rect()
	clip := clippedImage{Image: dst, clip: box}
	d := &font.Drawer{Dst: clip, Src: image.NewUniform(t.Color), Face: face}
	m := face.Metrics()
	y := fixed.I(box.Min.Y) + m.Ascent
	for _, ln := range wrapLines(face, t.Text, t.AABB.Width()) {
		d.Dot = fixed.Point26_6{X: fixed.I(box.Min.X), Y: y}
		d.DrawString(ln)
		y += m.Height
	}
	return nil
}

// clippedImage is an image that ignores writes outside of its clip.
type clippedImage struct {
	draw.Image
	clip image.Rectangle
}

func (c clippedImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.Image.Set(x, y, col)
	}
}
