// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[uint64, string](2)
	assert.NoError(t, kl.Add(7, "seven"))
	assert.NoError(t, kl.Add(3, "three"))
	assert.Error(t, kl.Add(7, "other"))
	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, []uint64{7, 3}, kl.Keys)

	v, ok := kl.At(7)
	assert.True(t, ok)
	assert.Equal(t, "seven", v)
	_, ok = kl.At(9)
	assert.False(t, ok)
	assert.Equal(t, 1, kl.IndexByKey(3))
	assert.Equal(t, -1, kl.IndexByKey(4))

	var zero List[string, int]
	assert.NoError(t, zero.Add("a", 1))
	assert.Equal(t, 0, zero.IndexByKey("a"))
}

func TestClaim(t *testing.T) {
	kl := New[uint64, string](3)
	kl.Add(1, "one")
	kl.Add(2, "two")
	kl.Add(3, "three")

	v, ok := kl.Claim(2)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
	_, ok = kl.Claim(2)
	assert.False(t, ok, "claimed twice")
	_, ok = kl.Claim(4)
	assert.False(t, ok)

	v, ok = kl.At(2)
	assert.True(t, ok, "At ignores claims")
	assert.Equal(t, "two", v)
	assert.Equal(t, []string{"one", "three"}, kl.Unclaimed())
}

func TestNilList(t *testing.T) {
	var kl *List[int, int]
	assert.Equal(t, 0, kl.Len())
	_, ok := kl.At(1)
	assert.False(t, ok)
	_, ok = kl.Claim(1)
	assert.False(t, ok)
	assert.Nil(t, kl.Unclaimed())
}
