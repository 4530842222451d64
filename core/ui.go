// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/mecha-org/mctk-sub000/base/errors"
	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/events/input"
	"github.com/mecha-org/mctk-sub000/math32"
	"github.com/mecha-org/mctk-sub000/paint"
	"golang.org/x/sync/errgroup"
)

// renderSignal is sent to a render loop.
type renderSignal int32

const (
	renderFrame renderSignal = iota
	renderExit
)

// UI drives a node tree in a window. Raw input is fed to it with
// [UI.HandleInput] on the caller's goroutine. Once started, a draw loop
// rebuilds, lays out and renders the tree whenever it is dirty, and a
// render loop hands the tree to the [Renderer] whenever a new frame
// is ready.
//
// The node tree, the renderer, the sizes and the scale factor are each
// guarded by their own lock, so reads across them may be slightly stale.
type UI struct {
	window      Window
	newRenderer NewRendererFunc
	root        func() *Node

	// cache, hovered and dnd are the input state, guarded by nodeMu.
	cache    *events.Cache
	hovered  map[events.NodeID]bool
	dnd      *dndState
	now      func() time.Time
	settings *Settings

	settingsMu sync.RWMutex

	node          *Node
	registrations []events.Registration
	nodeMu        sync.RWMutex

	renderer   Renderer
	renderCh   chan renderSignal
	rendererMu sync.RWMutex

	physicalSize   math32.Vector2
	physicalSizeMu sync.RWMutex

	logicalSize   math32.Vector2
	logicalSizeMu sync.RWMutex

	scaleFactor   float32
	scaleFactorMu sync.RWMutex

	nodeDirty   bool
	nodeDirtyMu sync.RWMutex

	frameDirty   bool
	frameDirtyMu sync.RWMutex

	drawCh chan struct{}
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// dndState is a drag and drop operation over the window.
type dndState struct {
	data   string
	target events.NodeID
}

// NewUI returns a new [UI] for the tree made by root in the given window.
// The root function is called for every frame; the nodes it returns are
// reconciled with those of the previous frame. Nil settings use
// [DefaultSettings].
func NewUI(w Window, newRenderer NewRendererFunc, root func() *Node, settings *Settings) (*UI, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	r, err := newRenderer(w)
	if err != nil {
		return nil, errors.Errorf("core.NewUI: creating renderer: %w", err)
	}
	u := &UI{
		window:       w,
		newRenderer:  newRenderer,
		root:         root,
		cache:        events.NewCache(settings.Thresholds()),
		hovered:      map[events.NodeID]bool{},
		now:          time.Now,
		settings:     settings,
		renderer:     r,
		physicalSize: w.PhysicalSize(),
		logicalSize:  w.LogicalSize(),
		scaleFactor:  w.ScaleFactor(),
		nodeDirty:    true,
		drawCh:       make(chan struct{}, 1),
	}
	u.cache.ScaleFactor = u.scaleFactor
	return u, nil
}

// Start starts the draw and render loops, which run until the context
// is done, [UI.Close] is called, or an [input.Exit] is handled.
func (u *UI) Start(ctx context.Context) {
	ctx, u.cancel = context.WithCancel(ctx)
	u.group, u.ctx = errgroup.WithContext(ctx)
	u.group.Go(u.drawLoop)
	u.rendererMu.Lock()
	u.startRenderLoop()
	u.rendererMu.Unlock()
	u.requestDraw()
	u.requestRender()
}

// Wait waits for the loops started by [UI.Start] to end.
func (u *UI) Wait() error {
	if u.group == nil {
		return nil
	}
	return u.group.Wait()
}

// Close stops the loops and closes the renderer.
func (u *UI) Close() error {
	if u.cancel != nil {
		u.cancel()
	}
	err := u.Wait()
	u.rendererMu.Lock()
	defer u.rendererMu.Unlock()
	return errors.Join(err, u.renderer.Close())
}

// startRenderLoop starts a new render loop. The renderer lock must be held.
func (u *UI) startRenderLoop() {
	ch := make(chan renderSignal, 1)
	u.renderCh = ch
	u.group.Go(func() error { return u.renderLoop(ch) })
}

func (u *UI) drawLoop() error {
	for {
		select {
		case <-u.ctx.Done():
			return nil
		case <-u.drawCh:
			u.Draw()
		}
	}
}

func (u *UI) renderLoop(ch chan renderSignal) error {
	for {
		select {
		case <-u.ctx.Done():
			return nil
		case sig := <-ch:
			if sig == renderExit {
				return nil
			}
			u.RenderFrame()
		}
	}
}

// requestDraw wakes up the draw loop, if it is not already awake.
func (u *UI) requestDraw() {
	select {
	case u.drawCh <- struct{}{}:
	default:
	}
}

// requestRender wakes up the render loop, if it is not already awake.
func (u *UI) requestRender() {
	u.rendererMu.RLock()
	ch := u.renderCh
	u.rendererMu.RUnlock()
	if ch == nil {
		return
	}
	select {
	case ch <- renderFrame:
	default:
	}
}

// SetDirty marks the tree as needing a new frame and wakes up the draw loop.
func (u *UI) SetDirty() {
	u.nodeDirtyMu.Lock()
	u.nodeDirty = true
	u.nodeDirtyMu.Unlock()
	u.requestDraw()
}

// IsDirty returns whether the tree needs a new frame.
func (u *UI) IsDirty() bool {
	u.nodeDirtyMu.RLock()
	defer u.nodeDirtyMu.RUnlock()
	return u.nodeDirty
}

// IsFrameDirty returns whether a new frame is waiting to be rendered.
func (u *UI) IsFrameDirty() bool {
	u.frameDirtyMu.RLock()
	defer u.frameDirtyMu.RUnlock()
	return u.frameDirty
}

// Settings returns the current settings.
func (u *UI) Settings() *Settings {
	u.settingsMu.RLock()
	defer u.settingsMu.RUnlock()
	return u.settings
}

// SetSettings replaces the settings and redraws.
func (u *UI) SetSettings(s *Settings) {
	u.settingsMu.Lock()
	u.settings = s
	u.settingsMu.Unlock()
	u.SetDirty()
}

// LogicalSize returns the logical size of the window.
func (u *UI) LogicalSize() math32.Vector2 {
	u.logicalSizeMu.RLock()
	defer u.logicalSizeMu.RUnlock()
	return u.logicalSize
}

// PhysicalSize returns the physical size of the window.
func (u *UI) PhysicalSize() math32.Vector2 {
	u.physicalSizeMu.RLock()
	defer u.physicalSizeMu.RUnlock()
	return u.physicalSize
}

// ScaleFactor returns the ratio of physical to logical pixels.
func (u *UI) ScaleFactor() float32 {
	u.scaleFactorMu.RLock()
	defer u.scaleFactorMu.RUnlock()
	return u.scaleFactor
}

// Focus returns the id of the focused node.
func (u *UI) Focus() events.NodeID {
	u.nodeMu.RLock()
	defer u.nodeMu.RUnlock()
	return u.cache.Focus
}

// Root returns the root of the current tree, or nil before the first
// draw. It must not be modified.
func (u *UI) Root() *Node {
	u.nodeMu.RLock()
	defer u.nodeMu.RUnlock()
	return u.node
}

func (u *UI) fonts() paint.FontMetrics {
	u.rendererMu.RLock()
	defer u.rendererMu.RUnlock()
	return u.renderer.Fonts()
}

// Draw builds a new tree if the tree is dirty: it views the new tree
// against the current one, lays it out, computes its bounding boxes and
// renders it. If anything was rendered again, it requests a redraw of
// the window and a new frame from the render loop.
func (u *UI) Draw() {
	u.nodeDirtyMu.Lock()
	if !u.nodeDirty {
		u.nodeDirtyMu.Unlock()
		return
	}
	u.nodeDirty = false
	u.nodeDirtyMu.Unlock()

	st := u.Settings()
	logical := u.LogicalSize()
	scale := u.ScaleFactor()
	fonts := u.fonts()

	u.nodeMu.Lock()
	root := u.root()
	regs, changed := root.Frame(u.node, logical, scale, fonts, st)
	u.node = root
	u.registrations = regs
	u.nodeMu.Unlock()

	if !changed {
		return
	}
	u.frameDirtyMu.Lock()
	u.frameDirty = true
	u.frameDirtyMu.Unlock()
	u.window.Redraw()
	u.requestRender()
}

// RenderFrame hands the current tree to the renderer if a new frame is
// ready, and requests the next frame from the window. A frame that fails
// to render stays ready.
func (u *UI) RenderFrame() {
	u.frameDirtyMu.Lock()
	if !u.frameDirty {
		u.frameDirtyMu.Unlock()
		return
	}
	u.frameDirty = false
	u.frameDirtyMu.Unlock()

	phys := u.PhysicalSize()
	u.rendererMu.RLock()
	u.nodeMu.RLock()
	var err error
	if u.node != nil {
		err = u.renderer.Render(u.node, phys)
	}
	u.nodeMu.RUnlock()
	u.rendererMu.RUnlock()

	if err != nil {
		slog.Error("core.UI.RenderFrame: rendering frame", "err", err)
		u.frameDirtyMu.Lock()
		u.frameDirty = true
		u.frameDirtyMu.Unlock()
		return
	}
	u.window.NextFrame()
}

// Update delivers a message to the Update of the root component and
// marks the tree dirty.
func (u *UI) Update(msg events.Message) {
	u.nodeMu.Lock()
	if u.node != nil {
		u.node.Component.Update(msg)
	}
	u.nodeMu.Unlock()
	u.SetDirty()
}

// StateMut calls fun with the state of the root component of the UI,
// if it has state of type S. The tree is marked dirty whenever the root
// has state, even of another type.
func StateMut[S any](u *UI, fun func(st *S)) {
	u.nodeMu.Lock()
	hasState := false
	if u.node != nil {
		c := u.node.Component
		st := c.TakeState()
		if s, ok := st.(*S); ok {
			fun(s)
		}
		if st != nil {
			c.ReplaceState(st)
			hasState = true
		}
	}
	u.nodeMu.Unlock()
	if hasState {
		u.SetDirty()
	}
}

// resize applies a new physical size and scale factor, and replaces the
// renderer with one for the new surface.
func (u *UI) resize(in input.Resize) {
	scale := in.ScaleFactor
	if scale <= 0 {
		scale = u.ScaleFactor()
	}
	u.window.SetSize(in.Size, scale)
	u.physicalSizeMu.Lock()
	u.physicalSize = in.Size
	u.physicalSizeMu.Unlock()
	u.scaleFactorMu.Lock()
	u.scaleFactor = scale
	u.scaleFactorMu.Unlock()
	u.logicalSizeMu.Lock()
	u.logicalSize = in.Size.MulScalar(1 / scale)
	u.logicalSizeMu.Unlock()
	u.nodeMu.Lock()
	u.cache.ScaleFactor = scale
	u.nodeMu.Unlock()

	u.rendererMu.Lock()
	old := u.renderCh
	errors.Log(u.renderer.Close())
	r, err := u.newRenderer(u.window)
	if err == nil {
		u.renderer = r
	} else {
		slog.Error("core.UI.HandleInput: recreating renderer after resize", "err", err)
	}
	if old != nil {
		u.startRenderLoop()
	}
	u.rendererMu.Unlock()
	if old != nil {
		select {
		case old <- renderExit:
		case <-u.ctx.Done():
		}
	}
	u.SetDirty()
}

// HandleInput handles a raw input from the windowing backend,
// dispatching the resulting events through the tree.
func (u *UI) HandleInput(in input.Input) {
	if DebugSettings.EventTrace {
		fmt.Printf("Input: %T%+v\n", in, in)
	}
	switch in := in.(type) {
	case input.Resize:
		u.resize(in)
		return
	case input.Exit:
		if u.cancel != nil {
			u.cancel()
		}
		return
	}

	u.nodeMu.Lock()
	root := u.node
	if root == nil {
		u.nodeMu.Unlock()
		return
	}
	dirty := u.dispatch(root, in)
	u.nodeMu.Unlock()
	if dirty {
		u.SetDirty()
	}
}

// dispatch dispatches the events for the input through the tree and
// returns whether the tree became dirty. The node lock is held.
func (u *UI) dispatch(root *Node, in input.Input) bool {
	d := &dispatcher{u: u, root: root}
	c := u.cache
	c.Thresholds = u.Settings().Thresholds()
	switch in := in.(type) {
	case input.Motion:
		action := c.MouseMove(in.Pos)
		d.hover(in.Pos)
		under(d, events.MouseMotion{}, in.Pos)
		d.dragAction(action, c.DragStartPosition())
	case input.Scroll:
		delta := in.Delta.MulScalar(u.Settings().ScrollSpeed)
		under(d, events.Scroll{Delta: delta}, c.MousePosition)
	case input.Press:
		c.MouseDown(in.Button)
		under(d, events.MouseDown{Button: in.Button}, c.MousePosition)
	case input.Release:
		r := c.MouseUp(in.Button, u.now())
		under(d, events.MouseUp{Button: in.Button}, c.MousePosition)
		d.release(r, c.MousePosition)
	case input.KeyPress:
		c.KeyDown(in.Key)
		targeted(d, events.KeyDown{Key: in.Key, Text: in.Text}, c.Focus)
	case input.KeyRelease:
		held := c.KeyUp(in.Key)
		targeted(d, events.KeyUp{Key: in.Key}, c.Focus)
		if held {
			targeted(d, events.KeyPress{Key: in.Key}, c.Focus)
		}
	case input.Text:
		targeted(d, events.TextEntry{Text: in.Text}, c.Focus)
	case input.TouchDown:
		primary := c.TouchDown(in.ID, in.Pos)
		under(d, events.TouchDown{ID: in.ID, Pos: in.Pos}, in.Pos)
		if primary {
			d.hover(in.Pos)
		}
	case input.TouchMoved:
		action := c.TouchMove(in.ID, in.Pos)
		under(d, events.TouchMoved{ID: in.ID, Pos: in.Pos}, in.Pos)
		d.dragAction(action, c.TouchDragStart())
	case input.TouchUp:
		r := c.TouchUp(in.ID, in.Pos, u.now())
		under(d, events.TouchUp{ID: in.ID, Pos: in.Pos}, in.Pos)
		d.release(r, in.Pos)
	case input.TouchCancel:
		dragging := c.TouchCancel(in.ID)
		under(d, events.TouchCancel{ID: in.ID, Pos: in.Pos}, in.Pos)
		if dragging {
			to(d, events.DragEnd{Button: events.Left, Start: c.TouchDragStart()}, c.DragTarget)
		}
	case input.Focus:
		if !in.Focused {
			c.ResetHeld()
			d.dirty = true
		}
	case input.Timer:
		e := events.New(events.Tick{}, c)
		Tick(root, e)
		d.finish(e, false)
	case input.MouseEnterWindow:
		c.MouseInWindow = true
	case input.MouseLeaveWindow:
		c.MouseInWindow = false
		d.leaveAll()
	case input.DragStart:
		u.dnd = &dndState{data: in.Data, target: events.RootID}
	case input.Dragging:
		d.dndMove(in.Pos)
	case input.DragEnd:
		if u.dnd != nil && u.dnd.target != events.RootID {
			to(d, events.DragLeave{}, u.dnd.target)
		}
		u.dnd = nil
	case input.Drop:
		target := events.RootID
		if u.dnd != nil {
			target = u.dnd.target
		}
		to(d, events.DragDrop{Data: in.Data}, target)
		u.dnd = nil
	case input.Menu:
		targeted(d, events.MenuSelect{ID: in.ID}, c.Focus)
	}
	return d.dirty
}

// dispatcher dispatches the events of one input.
type dispatcher struct {
	u     *UI
	root  *Node
	dirty bool
}

// under dispatches a position-targeted event and returns its
// terminal node.
func under[T events.Payload](d *dispatcher, payload T, pos math32.Vector2) (events.NodeID, bool) {
	e := events.New(payload, d.u.cache)
	e.Cache.MousePosition = pos
	DispatchUnder(d.root, e, pos)
	d.finish(e, isFocusing(e.Type()))
	return e.Target()
}

// targeted dispatches a targeted event, honoring registrations.
func targeted[T events.Payload](d *dispatcher, payload T, target events.NodeID) {
	e := events.New(payload, d.u.cache)
	DispatchTargeted(d.root, e, target, d.u.registrations)
	d.finish(e, isFocusing(e.Type()))
}

// to dispatches an event to the node with the given id only.
func to[T events.Payload](d *dispatcher, payload T, target events.NodeID) {
	e := events.New(payload, d.u.cache)
	DispatchTo(d.root, e, target)
	d.finish(e, isFocusing(e.Type()))
}

// isFocusing returns whether events of the given type move the focus
// to the node that handled them.
func isFocusing(t events.Types) bool {
	return t == events.ClickType || t == events.DoubleClickType || t == events.DragEndType
}

type finisher interface {
	Dirty() bool
	TakeRegistrations() []events.Registration
	FocusRequest() (events.NodeID, bool)
	Target() (events.NodeID, bool)
	Type() events.Types
}

// finish records the dirtiness of a dispatched event and applies
// the focus change it requested, if any. For focusing events the
// focus otherwise moves to their terminal node, unless it is the root.
func (d *dispatcher) finish(e finisher, focusing bool) {
	if e.Dirty() {
		d.dirty = true
	}
	d.u.registrations = append(d.u.registrations, e.TakeRegistrations()...)
	if t := e.Type(); t == events.FocusType || t == events.BlurType {
		return
	}
	if id, ok := e.FocusRequest(); ok {
		d.setFocus(id)
		return
	}
	if !focusing {
		return
	}
	if id, ok := e.Target(); ok && id != events.RootID {
		d.setFocus(id)
	}
}

// setFocus moves the focus to the given node, sending Blur to the
// previously focused node and Focus to the new one.
func (d *dispatcher) setFocus(id events.NodeID) {
	c := d.u.cache
	if id == c.Focus {
		return
	}
	to(d, events.Blur{}, c.Focus)
	c.Focus = id
	to(d, events.Focus{}, id)
	d.dirty = true
}

// dragAction dispatches the drag events for a pointer motion.
func (d *dispatcher) dragAction(action events.DragAction, start math32.Vector2) {
	c := d.u.cache
	b, ok := c.DragButton()
	if !ok {
		b = events.Left
	}
	switch action {
	case events.DragStarted:
		target, _ := under(d, events.DragStart{Button: b}, start)
		c.DragTarget = target
	case events.DragMoved:
		to(d, events.Drag{Button: b, Start: start}, c.DragTarget)
	}
}

// release dispatches the drag end, click and double-click events for
// a released pointer.
func (d *dispatcher) release(r events.Release, pos math32.Vector2) {
	c := d.u.cache
	if r.DragEnded {
		to(d, events.DragEnd{Button: r.Button, Start: r.Start}, c.DragTarget)
		c.DragTarget = events.RootID
	}
	if r.Click {
		under(d, events.Click{Button: r.Button}, pos)
	}
	if r.DoubleClick {
		under(d, events.DoubleClick{Button: r.Button}, pos)
	}
}

// hover sends MouseEnter to the nodes newly under the position and
// MouseLeave to the nodes no longer under it.
func (d *dispatcher) hover(pos math32.Vector2) {
	nodes := d.root.NodesUnder(pos)
	now := make(map[events.NodeID]bool, len(nodes))
	for _, n := range nodes {
		now[n.ID] = true
	}
	var left []events.NodeID
	for id := range d.u.hovered {
		if !now[id] {
			left = append(left, id)
		}
	}
	slices.Sort(left)
	for _, id := range left {
		to(d, events.MouseLeave{}, id)
	}
	for _, n := range nodes {
		if !d.u.hovered[n.ID] {
			to(d, events.MouseEnter{}, n.ID)
		}
	}
	d.u.hovered = now
}

// leaveAll sends MouseLeave to all hovered nodes.
func (d *dispatcher) leaveAll() {
	ids := slices.Sorted(maps.Keys(d.u.hovered))
	for _, id := range ids {
		to(d, events.MouseLeave{}, id)
	}
	clear(d.u.hovered)
}

// dndMove dispatches DragTarget under the position of a drag and drop
// operation. The node that stops it becomes the drop target, receiving
// DragEnter, and the previous one receives DragLeave.
func (d *dispatcher) dndMove(pos math32.Vector2) {
	dnd := d.u.dnd
	if dnd == nil {
		dnd = &dndState{target: events.RootID}
		d.u.dnd = dnd
	}
	e := events.New(events.DragTarget{Data: dnd.data}, d.u.cache)
	e.Cache.MousePosition = pos
	DispatchUnder(d.root, e, pos)
	d.finish(e, false)
	target := events.RootID
	if id, ok := e.Target(); ok && !e.Bubbles() {
		target = id
	}
	if target == dnd.target {
		return
	}
	if dnd.target != events.RootID {
		to(d, events.DragLeave{}, dnd.target)
	}
	dnd.target = target
	if target != events.RootID {
		to(d, events.DragEnter{Data: dnd.data}, target)
	}
}
