// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"hash"
	"hash/fnv"
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/mitchellh/hashstructure/v2"
)

// PropsHasher is an optional interface for components that compute
// their own props hash. Components that do not implement it are hashed
// from their exported fields; fields tagged `hash:"ignore"` are skipped.
type PropsHasher interface {

	// PropsHash writes the inputs of the component to the hasher.
	PropsHash(h hash.Hash64)
}

// RenderHasher is an optional interface for components whose render
// output depends on more or less than their props. Components that do
// not implement it use their props hash as their render hash.
type RenderHasher interface {

	// RenderHash writes the inputs of the render to the hasher.
	RenderHash(h hash.Hash64)
}

// unhashable hands out distinct hashes for components that cannot
// be hashed, so that they are always treated as changed.
var unhashable atomic.Uint64

// PropsHash returns the props hash of the given component.
func PropsHash(c Component) uint64 {
	if ph, ok := c.(PropsHasher); ok {
		h := fnv.New64a()
		ph.PropsHash(h)
		return h.Sum64()
	}
	v, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	if err != nil {
		slog.Error("core.PropsHash: component cannot be hashed", "type", reflect.TypeOf(c).String(), "err", err)
		return ^unhashable.Add(1)
	}
	return v
}

// RenderHash returns the render hash of the given component, given
// its props hash.
func RenderHash(c Component, propsHash uint64) uint64 {
	if rh, ok := c.(RenderHasher); ok {
		h := fnv.New64a()
		rh.RenderHash(h)
		return h.Sum64()
	}
	return propsHash
}
