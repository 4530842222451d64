// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/core"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
)

// Renderer is the implementation of [core.Renderer] on the offscreen
// platform. It rasterizes the cached renderables of the tree into an
// in-memory image, in ascending z order.
type Renderer struct {
	fonts *paint.FontCache

	mu     sync.Mutex
	img    *image.RGBA
	frame  []paint.Renderable
	frames int
	closed bool
}

var _ core.Renderer = &Renderer{}

// New returns a new [Renderer] for the given window, using its font.
func New(w core.Window) (*Renderer, error) {
	fc, err := paint.NewFontCache(w.FontData())
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fc}, nil
}

// NewRenderer is a [core.NewRendererFunc] that returns a new [Renderer].
func NewRenderer(w core.Window) (core.Renderer, error) {
	r, err := New(w)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Fonts() paint.FontMetrics {
	return r.fonts
}

func (r *Renderer) Render(root *core.Node, physicalSize math32.Vector2) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errors.New("offscreen.Renderer.Render: renderer is closed")
	}
	var rs []paint.Renderable
	root.WalkDown(func(n *core.Node) bool {
		rs = append(rs, n.RenderCache...)
		return true
	})
	paint.SortByZ(rs)

	img := image.NewRGBA(image.Rect(0, 0, int(math32.Round(physicalSize.X)), int(math32.Round(physicalSize.Y))))
	for _, it := range rs {
		switch it := it.(type) {
		case paint.Rect:
			drawRect(img, it)
		case paint.Text:
			if err := r.fonts.DrawText(img, it); err != nil {
				return errors.Errorf("offscreen.Renderer.Render: drawing %v: %w", it, err)
			}
		case paint.Line:
			drawLine(img, it)
		default:
			slog.Error("offscreen.Renderer.Render: unknown renderable", "type", it)
		}
	}
	r.img = img
	r.frame = rs
	r.frames++
	if core.DebugSettings.RenderTrace {
		fmt.Println("Offscreen render: frame", r.frames, "renderables:", len(rs))
	}
	return nil
}

// Image returns the last rendered image, or nil.
func (r *Renderer) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img
}

// LastFrame returns the renderables of the last frame in drawing order.
func (r *Renderer) LastFrame() []paint.Renderable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// drawRect fills the rectangle, drawing its border over the edge.
// Pixels outside of the rounded corners are left untouched.
func drawRect(dst *image.RGBA, rc paint.Rect) {
	box := rc.AABB.Rect().Intersect(dst.Bounds())
	if box.Empty() {
		return
	}
	if rc.CornerRadius <= 0 && rc.BorderWidth <= 0 {
		draw.Draw(dst, box, image.NewUniform(rc.Color), image.Point{}, draw.Over)
		return
	}
	fill := image.NewUniform(rc.Color)
	border := image.NewUniform(rc.BorderColor)
	inner := rc.AABB
	inner.Pos = inner.Pos.AddXY(math32.Vec2(rc.BorderWidth, rc.BorderWidth))
	inner.BottomRight = inner.BottomRight.Sub(math32.Vec2(rc.BorderWidth, rc.BorderWidth))
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			p := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
			if !insideRounded(rc.AABB, rc.CornerRadius, p) {
				continue
			}
			src := fill
			if rc.BorderWidth > 0 && !insideRounded(inner, max(rc.CornerRadius-rc.BorderWidth, 0), p) {
				src = border
			}
			px := image.Rect(x, y, x+1, y+1)
			draw.Draw(dst, px, src, image.Point{}, draw.Over)
		}
	}
}

// insideRounded returns whether p is inside the box with the given
// corner radius.
func insideRounded(b math32.AABB, radius float32, p math32.Vector2) bool {
	if !b.IsUnder(p) {
		return false
	}
	radius = min(radius, b.Width()/2, b.Height()/2)
	if radius <= 0 {
		return true
	}
	pos := b.Pos.XY()
	cx := math32.Clamp(p.X, pos.X+radius, b.BottomRight.X-radius)
	cy := math32.Clamp(p.Y, pos.Y+radius, b.BottomRight.Y-radius)
	return p.DistanceTo(math32.Vec2(cx, cy)) <= radius
}

// drawLine draws the line as a run of squares of its width.
func drawLine(dst *image.RGBA, l paint.Line) {
	from, to := l.From.XY(), l.To
	d := to.Sub(from)
	steps := int(math32.Ceil(max(math32.Abs(d.X), math32.Abs(d.Y))))
	w := max(int(math32.Round(l.Width)), 1)
	src := image.NewUniform(l.Color)
	for i := 0; i <= steps; i++ {
		p := from
		if steps > 0 {
			p = from.Add(d.MulScalar(float32(i) / float32(steps)))
		}
		x, y := int(math32.Round(p.X))-w/2, int(math32.Round(p.Y))-w/2
		draw.Draw(dst, image.Rect(x, y, x+w, y+w).Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
	}
}
