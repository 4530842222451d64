// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"hash"
	"strings"
	"testing"

	"github.com/mecha-org/mctk-sub000/events"
	"github.com/mecha-org/mctk-sub000/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowOf(keys ...uint64) *Node {
	root := New(&Div{}, styles.Layout{})
	for _, k := range keys {
		root.Push(box(k, &Div{}, 10, 10))
	}
	return root
}

func TestViewKeysSurviveReorder(t *testing.T) {
	a := rowOf(1, 2, 3)
	a.View(nil)
	assert.Equal(t, events.RootID, a.ID)
	ids := map[uint64]events.NodeID{}
	for _, c := range a.Children {
		assert.NotEqual(t, events.RootID, c.ID)
		ids[c.Key] = c.ID
	}
	assert.Len(t, ids, 3)

	b := rowOf(3, 1, 2)
	b.View(a)
	assert.Equal(t, events.RootID, b.ID)
	for _, c := range b.Children {
		assert.Equal(t, ids[c.Key], c.ID, "key %d", c.Key)
	}

	c := rowOf(4, 2)
	c.View(b)
	for id := range ids {
		assert.NotEqual(t, ids[id], c.Children[0].ID)
	}
	assert.Equal(t, ids[2], c.Children[1].ID)
}

func TestViewDuplicateKeys(t *testing.T) {
	a := rowOf(1)
	a.View(nil)
	b := rowOf(1, 1)
	b.View(a)
	assert.Equal(t, a.Children[0].ID, b.Children[0].ID)
	assert.NotEqual(t, a.Children[0].ID, b.Children[1].ID)
}

type counter struct {
	Stateful[int]

	Value int

	inits    *int
	newProps *int
}

func (c *counter) Init() {
	*c.inits++
	c.SetState(new(int))
}

func (c *counter) NewProps() {
	*c.newProps++
}

func TestViewState(t *testing.T) {
	var inits, newProps int
	build := func(v int) *Node {
		return New(&Div{}, styles.Layout{}).Push(
			New(&counter{Value: v, inits: &inits, newProps: &newProps}, styles.Layout{}),
		)
	}
	a := build(1)
	a.View(nil)
	assert.Equal(t, 1, inits)
	ca := a.Children[0].Component.(*counter)
	*ca.StateMut() = 5

	b := build(1)
	b.View(a)
	cb := b.Children[0].Component.(*counter)
	assert.Equal(t, 1, inits)
	assert.Equal(t, 0, newProps)
	assert.Equal(t, 5, *cb.StateRef())
	assert.False(t, ca.HasState())
	assert.Equal(t, a.Children[0].PropsHash, b.Children[0].PropsHash)

	*cb.StateMut() = 7
	b2 := build(1)
	b2.View(b)
	assert.Equal(t, 0, newProps)
	assert.Equal(t, 7, *b2.Children[0].Component.(*counter).StateRef())
	b = b2

	c := build(2)
	c.View(b)
	assert.Equal(t, 1, inits)
	assert.Equal(t, 1, newProps)
	assert.Equal(t, 7, *c.Children[0].Component.(*counter).StateRef())
	assert.NotEqual(t, b.Children[0].PropsHash, c.Children[0].PropsHash)
}

func TestStateRefPanics(t *testing.T) {
	d := &Div{}
	assert.PanicsWithValue(t, "core.Stateful.StateRef: component has no state", func() { d.StateRef() })
	assert.PanicsWithValue(t, "core.Stateful.StateMut: component has no state", func() { d.StateMut() })
	d.ReplaceState(new(int))
	assert.False(t, d.HasState())
	d.ReplaceState(&DivState{})
	assert.True(t, d.HasState())
}

func TestViewContainer(t *testing.T) {
	root := New(&Panel{Title: "title"}, styles.Layout{}).Push(
		box(1, &Div{}, 10, 10),
		box(2, &Div{}, 10, 10),
	)
	root.View(nil)
	require.Len(t, root.Children, 1)
	div := root.Children[0]
	require.Len(t, div.Children, 2)
	assert.IsType(t, &Text{}, div.Children[0].Component)
	body := div.Children[1]
	require.Len(t, body.Children, 2)
	assert.Equal(t, uint64(1), body.Children[0].Key)
	assert.Equal(t, uint64(2), body.Children[1].Key)
}

// viewer has a view but is not a container.
type viewer struct {
	ComponentBase

	slot Slot
}

func (v *viewer) View() *Node {
	return New(&Div{}, styles.Layout{})
}

func (v *viewer) Container() Slot { return v.slot }

func TestViewContractPanics(t *testing.T) {
	n := New(&viewer{}, styles.Layout{}).Push(box(1, &Div{}, 1, 1))
	assert.Panics(t, func() { n.View(nil) })

	n = New(&viewer{slot: Slot{1}}, styles.Layout{}).Push(box(1, &Div{}, 1, 1))
	assert.Panics(t, func() { n.View(nil) })

	n = New(&viewer{slot: Slot{0, 3}}, styles.Layout{}).Push(box(1, &Div{}, 1, 1))
	assert.Panics(t, func() { n.View(nil) })

	n = New(&viewer{}, styles.Layout{})
	assert.NotPanics(t, func() { n.View(nil) })
	assert.Len(t, n.Children, 1)
}

func TestViewRegistrations(t *testing.T) {
	log := &eventLog{}
	parent := newProbe("parent", log)
	parent.regs = []events.RegisterKind{events.RegisterKeyDown}
	child := newProbe("child", log)
	child.regs = []events.RegisterKind{events.RegisterKeyDown, events.RegisterKeyPress}
	root := New(parent, styles.Layout{}).Push(box(1, child, 1, 1))
	regs := root.View(nil)
	cid := root.Children[0].ID
	assert.Equal(t, []events.Registration{
		{Kind: events.RegisterKeyDown, ID: cid},
		{Kind: events.RegisterKeyPress, ID: cid},
		{Kind: events.RegisterKeyDown, ID: events.RootID},
	}, regs)
}

func TestRenderCache(t *testing.T) {
	log := &eventLog{}
	build := func(name string) *Node {
		return rowOf().Push(box(1, newProbe(name, log), 20, 20), box(2, newProbe("b", log), 20, 20))
	}
	a := build("a")
	_, changed := frame(a, nil, 100, 100)
	assert.True(t, changed)
	require.Len(t, a.Children[0].RenderCache, 1)

	b := build("a")
	_, changed = frame(b, a, 100, 100)
	assert.False(t, changed)
	assert.Same(t, &a.Children[0].RenderCache[0], &b.Children[0].RenderCache[0])

	c := build("c")
	_, changed = frame(c, b, 100, 100)
	assert.True(t, changed)
	assert.NotSame(t, &b.Children[0].RenderCache[0], &c.Children[0].RenderCache[0])
	assert.Same(t, &b.Children[1].RenderCache[0], &c.Children[1].RenderCache[0])

	d := build("c")
	s := DefaultSettings()
	s.RenderCache = false
	_, changed = d.Frame(c, c.AABB.Size(), 1, monoFonts{}, s)
	assert.True(t, changed)

	e := build("c")
	e.Children = e.Children[:1]
	_, changed = frame(e, d, 100, 100)
	assert.True(t, changed)
}

func TestRenderCacheMovedNode(t *testing.T) {
	log := &eventLog{}
	a := rowOf().Push(box(1, newProbe("a", log), 20, 20))
	frame(a, nil, 100, 100)
	b := rowOf().Push(box(2, newProbe("x", log), 30, 20), box(1, newProbe("a", log), 20, 20))
	frame(b, a, 100, 100)
	assert.Equal(t, a.Children[0].ID, b.Children[1].ID)
	assert.NotSame(t, &a.Children[0].RenderCache[0], &b.Children[1].RenderCache[0])
}

type customHash struct {
	ComponentBase

	A, B int
}

func (c *customHash) PropsHash(h hash.Hash64) {
	h.Write([]byte{byte(c.A)})
}

func TestPropsHash(t *testing.T) {
	assert.Equal(t, PropsHash(&Text{Text: "a"}), PropsHash(&Text{Text: "a"}))
	assert.NotEqual(t, PropsHash(&Text{Text: "a"}), PropsHash(&Text{Text: "b"}))
	assert.Equal(t, PropsHash(&Button{Label: "a", Msg: func() {}}), PropsHash(&Button{Label: "a"}))
	assert.Equal(t, PropsHash(&customHash{A: 1, B: 1}), PropsHash(&customHash{A: 1, B: 2}))
	assert.NotEqual(t, PropsHash(&customHash{A: 1}), PropsHash(&customHash{A: 2}))

	bt := &Button{Label: "a"}
	bt.Init()
	before := RenderHash(bt, PropsHash(bt))
	bt.StateMut().Hovered = true
	assert.NotEqual(t, before, RenderHash(bt, PropsHash(bt)))
	tx := &Text{Text: "a"}
	assert.Equal(t, PropsHash(tx), RenderHash(tx, PropsHash(tx)))
}

func TestWriteTree(t *testing.T) {
	root := rowOf(1, 2)
	frame(root, nil, 100, 100)
	var b strings.Builder
	require.NoError(t, root.WriteTree(&b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "*core.Div#0 "))
	assert.True(t, strings.HasPrefix(lines[1], "  *core.Div#"))
}

func TestFindByID(t *testing.T) {
	root := rowOf(1, 2)
	root.View(nil)
	id := root.Children[1].ID
	assert.Same(t, root.Children[1], root.FindByID(id))
	assert.Nil(t, root.FindByID(id+1000))
	n := 0
	root.WalkDown(func(*Node) bool { n++; return true })
	assert.Equal(t, 3, n)
}
