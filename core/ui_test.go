// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/events/input"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"github.com/mecha-org/mctk-sub000/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	mu         sync.Mutex
	physical   math32.Vector2
	scale      float32
	redraws    int
	nextFrames int
}

func (w *fakeWindow) LogicalSize() math32.Vector2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.physical.MulScalar(1 / w.scale)
}

func (w *fakeWindow) PhysicalSize() math32.Vector2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.physical
}

func (w *fakeWindow) ScaleFactor() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *fakeWindow) SetSize(physical math32.Vector2, scale float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.physical, w.scale = physical, scale
}

func (w *fakeWindow) Redraw() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.redraws++
}

func (w *fakeWindow) NextFrame() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextFrames++
}

func (w *fakeWindow) FontData() []byte { return nil }
func (w *fakeWindow) Assets() fs.FS    { return nil }

type fakeRenderer struct {
	mu      sync.Mutex
	renders int
	closed  bool
	err     error
}

func (r *fakeRenderer) Render(root *Node, physicalSize math32.Vector2) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders++
	return r.err
}

func (r *fakeRenderer) Fonts() paint.FontMetrics { return monoFonts{} }

func (r *fakeRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// uiTest is a UI over a fake window and renderer showing two probes:
//
//	root (300x200)
//	  A (0,0 100x100)
//	  B (100,0 100x100)
type uiTest struct {
	ui        *UI
	window    *fakeWindow
	renderers []*fakeRenderer
	log       *eventLog
	stops     map[string][]events.Types
	bWidth    float32
	now       time.Time
}

func newUITest(t *testing.T) *uiTest {
	ut := &uiTest{
		window: &fakeWindow{physical: math32.Vec2(300, 200), scale: 1},
		log:    &eventLog{},
		stops:  map[string][]events.Types{},
		bWidth: 100,
		now:    time.Unix(1000, 0),
	}
	newRenderer := func(w Window) (Renderer, error) {
		r := &fakeRenderer{}
		ut.renderers = append(ut.renderers, r)
		return r, nil
	}
	root := func() *Node {
		return New(newProbe("root", ut.log, ut.stops["root"]...), styles.Layout{}).Push(
			box(1, newProbe("A", ut.log, ut.stops["A"]...), 100, 100),
			box(2, newProbe("B", ut.log, ut.stops["B"]...), ut.bWidth, 100),
		)
	}
	u, err := NewUI(ut.window, newRenderer, root, nil)
	require.NoError(t, err)
	u.now = func() time.Time { return ut.now }
	ut.ui = u
	u.Draw()
	require.NotNil(t, u.Root())
	return ut
}

func (ut *uiTest) id(name string) events.NodeID {
	var id events.NodeID
	ut.ui.Root().WalkDown(func(n *Node) bool {
		if n.Component.(*probe).Name == name {
			id = n.ID
		}
		return true
	})
	return id
}

// entries returns the logged events of the given types and clears the log.
func (ut *uiTest) entries(types ...events.Types) []string {
	var res []string
	for _, e := range ut.log.entries {
		for _, ty := range types {
			if strings.HasSuffix(e, ":"+ty.String()) {
				res = append(res, e)
			}
		}
	}
	ut.log.entries = nil
	return res
}

func (ut *uiTest) click(x, y float32) {
	ut.ui.HandleInput(input.Motion{Pos: math32.Vec2(x, y)})
	ut.ui.HandleInput(input.Press{Button: events.Left})
	ut.ui.HandleInput(input.Release{Button: events.Left})
}

func TestUIDrawAndRender(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	assert.False(t, u.IsDirty())
	assert.True(t, u.IsFrameDirty())
	assert.Equal(t, 1, ut.window.redraws)

	u.RenderFrame()
	assert.False(t, u.IsFrameDirty())
	assert.Equal(t, 1, ut.renderers[0].renders)
	assert.Equal(t, 1, ut.window.nextFrames)

	u.RenderFrame()
	assert.Equal(t, 1, ut.renderers[0].renders)

	u.Draw()
	assert.Equal(t, 1, ut.window.redraws)

	u.SetDirty()
	assert.True(t, u.IsDirty())
	u.Draw()
	assert.False(t, u.IsDirty())
	assert.False(t, u.IsFrameDirty())
	assert.Equal(t, 1, ut.window.redraws)

	ut.bWidth = 120
	u.SetDirty()
	u.Draw()
	assert.Equal(t, 2, ut.window.redraws)
	assert.True(t, u.IsFrameDirty())
}

func TestUIRenderError(t *testing.T) {
	ut := newUITest(t)
	ut.renderers[0].err = errors.New("surface lost")
	ut.ui.RenderFrame()
	assert.True(t, ut.ui.IsFrameDirty())
	assert.Equal(t, 0, ut.window.nextFrames)

	ut.renderers[0].err = nil
	ut.ui.RenderFrame()
	assert.False(t, ut.ui.IsFrameDirty())
	assert.Equal(t, 1, ut.window.nextFrames)
}

func TestUIDragAndClick(t *testing.T) {
	ut := newUITest(t)
	ut.stops["A"] = []events.Types{events.DragStartType}
	ut.ui.SetDirty()
	ut.ui.Draw()
	u := ut.ui
	drag := []events.Types{
		events.MouseDownType, events.MouseUpType, events.DragStartType, events.DragType,
		events.DragEndType, events.ClickType, events.FocusType, events.BlurType,
	}

	u.HandleInput(input.Motion{Pos: math32.Vec2(10, 10)})
	assert.Equal(t, []string{"root:MouseEnter", "A:MouseEnter"}, ut.entries(events.MouseEnterType))
	u.HandleInput(input.Press{Button: events.Left})
	u.HandleInput(input.Motion{Pos: math32.Vec2(20, 10)})
	assert.Equal(t, []string{"A:MouseDown", "root:MouseDown"}, ut.entries(drag...))

	u.HandleInput(input.Motion{Pos: math32.Vec2(50, 10)})
	assert.Equal(t, []string{"A:DragStart"}, ut.entries(drag...))
	assert.Equal(t, ut.id("A"), u.cache.DragTarget)

	u.HandleInput(input.Motion{Pos: math32.Vec2(150, 10)})
	assert.Equal(t, []string{"A:Drag"}, ut.entries(drag...))

	u.HandleInput(input.Release{Button: events.Left})
	assert.Equal(t, []string{"B:MouseUp", "root:MouseUp", "A:DragEnd", "root:Blur", "A:Focus"}, ut.entries(drag...))
	assert.Equal(t, ut.id("A"), u.Focus())
	assert.True(t, u.IsDirty())
}

func TestUIShortDragClicks(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	u.HandleInput(input.Motion{Pos: math32.Vec2(10, 10)})
	u.HandleInput(input.Press{Button: events.Left})
	u.HandleInput(input.Motion{Pos: math32.Vec2(30, 10)})
	u.HandleInput(input.Release{Button: events.Left})
	assert.Equal(t, []string{"root:DragEnd", "A:Click", "root:Click"},
		ut.entries(events.DragEndType, events.ClickType))
}

func TestUIDoubleClick(t *testing.T) {
	for _, tt := range []struct {
		gap  time.Duration
		want []string
	}{
		{200 * time.Millisecond, []string{"A:Click", "A:DoubleClick"}},
		{300 * time.Millisecond, []string{"A:Click", "A:Click"}},
	} {
		ut := newUITest(t)
		ut.stops["A"] = []events.Types{events.ClickType, events.DoubleClickType}
		ut.ui.SetDirty()
		ut.ui.Draw()
		ut.click(10, 10)
		ut.now = ut.now.Add(tt.gap)
		ut.click(12, 10)
		assert.Equal(t, tt.want, ut.entries(events.ClickType, events.DoubleClickType), "gap %v", tt.gap)
	}
}

func TestUIFocus(t *testing.T) {
	ut := newUITest(t)
	ut.stops["A"] = []events.Types{events.ClickType}
	ut.ui.SetDirty()
	ut.ui.Draw()
	u := ut.ui
	focus := []events.Types{events.FocusType, events.BlurType}

	ut.click(10, 10)
	assert.Equal(t, []string{"root:Blur", "A:Focus"}, ut.entries(focus...))
	assert.Equal(t, ut.id("A"), u.Focus())

	ut.now = ut.now.Add(time.Second)
	ut.click(150, 10)
	assert.Empty(t, ut.entries(focus...))
	assert.Equal(t, ut.id("A"), u.Focus())

	ut.stops["B"] = []events.Types{events.ClickType}
	u.SetDirty()
	u.Draw()
	ut.now = ut.now.Add(time.Second)
	ut.click(150, 10)
	assert.Equal(t, []string{"A:Blur", "B:Focus"}, ut.entries(focus...))
	assert.Equal(t, ut.id("B"), u.Focus())

	keys := []events.Types{events.KeyDownType, events.KeyUpType, events.KeyPressType}
	u.HandleInput(input.KeyPress{Key: events.KeyEnter})
	u.HandleInput(input.KeyRelease{Key: events.KeyEnter})
	assert.Equal(t, []string{"B:KeyDown", "B:KeyUp", "B:KeyPress"}, ut.entries(keys...))

	u.HandleInput(input.KeyRelease{Key: events.KeyEscape})
	assert.Equal(t, []string{"B:KeyUp"}, ut.entries(keys...))
}

func TestUIMenu(t *testing.T) {
	ut := newUITest(t)
	ut.ui.HandleInput(input.Menu{ID: 3})
	assert.Equal(t, []string{"root:MenuSelect"}, ut.entries(events.MenuSelectType))

	ut.stops["A"] = []events.Types{events.ClickType}
	ut.ui.SetDirty()
	ut.ui.Draw()
	ut.click(10, 10)
	ut.ui.HandleInput(input.Menu{ID: 4})
	assert.Equal(t, []string{"A:MenuSelect"}, ut.entries(events.MenuSelectType))
}

func TestUIHover(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	hover := []events.Types{events.MouseEnterType, events.MouseLeaveType}
	u.HandleInput(input.Motion{Pos: math32.Vec2(10, 10)})
	assert.Equal(t, []string{"root:MouseEnter", "A:MouseEnter"}, ut.entries(hover...))
	u.HandleInput(input.Motion{Pos: math32.Vec2(20, 10)})
	assert.Empty(t, ut.entries(hover...))
	u.HandleInput(input.Motion{Pos: math32.Vec2(150, 10)})
	assert.Equal(t, []string{"A:MouseLeave", "B:MouseEnter"}, ut.entries(hover...))
	u.HandleInput(input.MouseLeaveWindow{})
	assert.Equal(t, []string{"root:MouseLeave", "B:MouseLeave"}, ut.entries(hover...))
	assert.False(t, u.cache.MouseInWindow)
}

func TestUITickIsClean(t *testing.T) {
	ut := newUITest(t)
	ut.ui.HandleInput(input.Timer{})
	assert.Equal(t, []string{"A:Tick", "B:Tick", "root:Tick"}, ut.entries(events.TickType))
	assert.False(t, ut.ui.IsDirty())

	ut.ui.HandleInput(input.Motion{Pos: math32.Vec2(10, 10)})
	assert.True(t, ut.ui.IsDirty())
}

func TestUIDragAndDrop(t *testing.T) {
	ut := newUITest(t)
	ut.stops["A"] = []events.Types{events.DragTargetType}
	ut.ui.SetDirty()
	ut.ui.Draw()
	u := ut.ui
	dnd := []events.Types{events.DragEnterType, events.DragLeaveType, events.DragDropType}

	u.HandleInput(input.DragStart{Data: "file"})
	u.HandleInput(input.Dragging{Pos: math32.Vec2(150, 10)})
	assert.Empty(t, ut.entries(dnd...))
	u.HandleInput(input.Dragging{Pos: math32.Vec2(10, 10)})
	assert.Equal(t, []string{"A:DragEnter"}, ut.entries(dnd...))
	u.HandleInput(input.Dragging{Pos: math32.Vec2(20, 10)})
	assert.Empty(t, ut.entries(dnd...))
	u.HandleInput(input.Dragging{Pos: math32.Vec2(150, 10)})
	assert.Equal(t, []string{"A:DragLeave"}, ut.entries(dnd...))
	u.HandleInput(input.Dragging{Pos: math32.Vec2(10, 10)})
	u.HandleInput(input.Drop{Data: "file"})
	assert.Equal(t, []string{"A:DragEnter", "A:DragDrop"}, ut.entries(dnd...))
}

func TestUITouch(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	u.HandleInput(input.TouchDown{ID: 7, Pos: math32.Vec2(10, 10)})
	u.HandleInput(input.TouchDown{ID: 8, Pos: math32.Vec2(150, 10)})
	u.HandleInput(input.TouchUp{ID: 8, Pos: math32.Vec2(150, 10)})
	u.HandleInput(input.TouchUp{ID: 7, Pos: math32.Vec2(12, 10)})
	assert.Equal(t, []string{
		"A:TouchDown", "root:TouchDown", "B:TouchDown", "root:TouchDown",
		"B:TouchUp", "root:TouchUp", "A:TouchUp", "root:TouchUp", "A:Click", "root:Click",
	}, ut.entries(events.TouchDownType, events.TouchUpType, events.ClickType))
}

func TestUIResize(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	u.HandleInput(input.Resize{Size: math32.Vec2(600, 400), ScaleFactor: 2})
	assert.Equal(t, math32.Vec2(300, 200), u.LogicalSize())
	assert.Equal(t, math32.Vec2(600, 400), u.PhysicalSize())
	assert.Equal(t, float32(2), u.ScaleFactor())
	require.Len(t, ut.renderers, 2)
	assert.True(t, ut.renderers[0].closed)
	assert.True(t, u.IsDirty())

	u.Draw()
	assert.Equal(t, math32.Vec2(600, 400), u.Root().AABB.Size())
	assert.Equal(t, math32.Vec2(200, 200), u.Root().Children[0].AABB.Size())
}

func TestUIFocusLost(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	u.HandleInput(input.KeyPress{Key: events.KeyShift})
	assert.True(t, u.cache.KeysHeld[events.KeyShift])
	u.HandleInput(input.Focus{Focused: false})
	assert.Empty(t, u.cache.KeysHeld)
	assert.True(t, u.IsDirty())
}

// clickCounter counts the clicks of its button.
type clickCounter struct {
	Stateful[clickCounterState]
}

type clickCounterState struct {
	Clicks int
}

type clicked struct{}

func (c *clickCounter) Init() {
	c.SetState(&clickCounterState{})
}

func (c *clickCounter) View() *Node {
	return New(&Div{}, styles.Layout{}).Push(
		New(&Button{Label: "ok", Msg: clicked{}}, styles.Layout{Size: styles.SizePx(100, 40)}),
	)
}

func (c *clickCounter) Update(msg events.Message) []events.Message {
	if _, ok := msg.(clicked); ok {
		c.StateMut().Clicks++
		return nil
	}
	return []events.Message{msg}
}

func TestUIButton(t *testing.T) {
	w := &fakeWindow{physical: math32.Vec2(300, 200), scale: 1}
	u, err := NewUI(w, func(Window) (Renderer, error) { return &fakeRenderer{}, nil },
		func() *Node { return New(&clickCounter{}, styles.Layout{}) }, nil)
	require.NoError(t, err)
	u.Draw()
	clicks := func() int {
		return u.Root().Component.(*clickCounter).StateRef().Clicks
	}

	u.HandleInput(input.Motion{Pos: math32.Vec2(50, 20)})
	u.Draw()
	var button *Node
	u.Root().WalkDown(func(n *Node) bool {
		if _, ok := n.Component.(*Button); ok {
			button = n
		}
		return true
	})
	require.NotNil(t, button)
	assert.True(t, button.Component.(*Button).StateRef().Hovered)
	assert.Equal(t, 2, w.redraws)

	u.HandleInput(input.Press{Button: events.Left})
	u.HandleInput(input.Release{Button: events.Left})
	assert.Equal(t, 1, clicks())
	assert.Equal(t, button.ID, u.Focus())

	u.Update(clicked{})
	assert.Equal(t, 2, clicks())

	StateMut(u, func(st *clickCounterState) { st.Clicks = 10 })
	assert.Equal(t, 10, clicks())
	assert.True(t, u.IsDirty())
	u.Draw()
	assert.Equal(t, 10, clicks())

	called := false
	StateMut(u, func(st *DivState) { called = true })
	assert.False(t, called)
	assert.True(t, u.IsDirty())
	assert.Equal(t, 10, clicks())
}

func TestUIStateMutStateless(t *testing.T) {
	ut := newUITest(t)
	require.False(t, ut.ui.IsDirty())
	called := false
	StateMut(ut.ui, func(st *DivState) { called = true })
	assert.False(t, called)
	assert.False(t, ut.ui.IsDirty())
}

func TestUIButtonDoubleClick(t *testing.T) {
	w := &fakeWindow{physical: math32.Vec2(300, 200), scale: 1}
	u, err := NewUI(w, func(Window) (Renderer, error) { return &fakeRenderer{}, nil },
		func() *Node { return New(&clickCounter{}, styles.Layout{}) }, nil)
	require.NoError(t, err)
	u.Draw()
	u.HandleInput(input.Motion{Pos: math32.Vec2(50, 20)})
	for range 2 {
		u.HandleInput(input.Press{Button: events.Left})
		u.HandleInput(input.Release{Button: events.Left})
	}
	assert.Equal(t, 2, u.Root().Component.(*clickCounter).StateRef().Clicks)
}

func TestUIStartExit(t *testing.T) {
	ut := newUITest(t)
	u := ut.ui
	u.Start(context.Background())
	u.SetDirty()
	assert.Eventually(t, func() bool {
		ut.renderers[0].mu.Lock()
		defer ut.renderers[0].mu.Unlock()
		return ut.renderers[0].renders > 0
	}, time.Second, time.Millisecond)
	u.HandleInput(input.Exit{})
	require.NoError(t, u.Wait())
	require.NoError(t, u.Close())
	assert.True(t, slices.ContainsFunc(ut.renderers, func(r *fakeRenderer) bool { return r.closed }))
}
