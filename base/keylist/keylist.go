// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list of values indexed by key,
// in which each value can be claimed once. It is used to match the
// children of a node with the children of its predecessor.
package keylist

import (
	"fmt"
)

// List is an ordered list of values with a key index.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Keys are the keys in insertion order.
	Keys []K

	// Values are the values in insertion order.
	Values []V

	indexes map[K]int
	claimed []bool
}

// New returns a new [List] with capacity for n values.
func New[K comparable, V any](n int) *List[K, V] {
	return &List[K, V]{
		Keys:    make([]K, 0, n),
		Values:  make([]V, 0, n),
		indexes: make(map[K]int, n),
		claimed: make([]bool, 0, n),
	}
}

// Len returns the number of values in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Add appends a value with the given key. If the key is already in
// the list the first value is kept and an error is returned.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.indexes = map[K]int{}
	}
	if _, has := kl.indexes[key]; has {
		return fmt.Errorf("keylist.Add: duplicate key %v", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
	kl.claimed = append(kl.claimed, false)
	return nil
}

// IndexByKey returns the index of the key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	if i, has := kl.indexes[key]; has {
		return i
	}
	return -1
}

// At returns the value with the given key, whether or not it is claimed.
func (kl *List[K, V]) At(key K) (V, bool) {
	i := kl.IndexByKey(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return kl.Values[i], true
}

// Claim returns the value with the given key and marks it as claimed.
// It returns false if there is no such value or it is already claimed.
// A nil list has no values.
func (kl *List[K, V]) Claim(key K) (V, bool) {
	var zero V
	i := kl.IndexByKey(key)
	if i < 0 || kl.claimed[i] {
		return zero, false
	}
	kl.claimed[i] = true
	return kl.Values[i], true
}

// Unclaimed returns the values that have not been claimed, in order.
func (kl *List[K, V]) Unclaimed() []V {
	if kl == nil {
		return nil
	}
	var res []V
	for i, v := range kl.Values {
		if !kl.claimed[i] {
			res = append(res, v)
		}
	}
	return res
}
