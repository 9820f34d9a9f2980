// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayListExactCapacity(t *testing.T) {
	t.Parallel()
	l, err := NewArrayList([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 6, cap(l.elems))

	l.ChooseAll(ChooserFunc[int](func(x int) bool { return x%3 == 0 }))
	assert.Equal(t, []int{3, 6}, l.elems)
	assert.Equal(t, 2, cap(l.elems))

	l.ChooseAll(ChooserFunc[int](func(int) bool { return false }))
	assert.Equal(t, 0, len(l.elems))
	assert.Equal(t, 0, cap(l.elems))
	assert.True(t, l.IsEmpty())
}

func TestArrayListTransformInPlace(t *testing.T) {
	t.Parallel()
	l, err := NewArrayList([]int{1, 2, 3})
	require.NoError(t, err)
	before := &l.elems[0]
	l.TransformAll(TransformerFunc[int](func(x int) int { return x * 10 }))
	assert.Same(t, before, &l.elems[0])
	assert.Equal(t, []int{10, 20, 30}, l.ToSlice())
}
