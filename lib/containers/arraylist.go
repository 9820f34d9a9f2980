// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

// ArrayList is a List backed by a flat slice.
//
// The backing slice is always exactly as long as the list; it is
// never over-allocated, and there is no growth policy.  ChooseAll
// allocates a new, exactly-sized slice rather than shrinking in
// place.
type ArrayList[E any] struct {
	elems []E
}

var _ List[int] = (*ArrayList[int])(nil)

// NewArrayList returns an ArrayList holding a copy of contents.  It
// returns ErrNilContents if contents is nil.
func NewArrayList[E any](contents []E) (*ArrayList[E], error) {
	if contents == nil {
		return nil, ErrNilContents
	}
	elems := make([]E, len(contents))
	copy(elems, contents)
	return &ArrayList[E]{
		elems: elems,
	}, nil
}

// Len implements List.
func (l *ArrayList[E]) Len() int {
	return len(l.elems)
}

// IsEmpty implements List.
func (l *ArrayList[E]) IsEmpty() bool {
	return len(l.elems) == 0
}

// ToSlice implements List.
func (l *ArrayList[E]) ToSlice() []E {
	ret := make([]E, len(l.elems))
	copy(ret, l.elems)
	return ret
}

// TransformAll implements List.
func (l *ArrayList[E]) TransformAll(tr Transformer[E]) {
	for i := range l.elems {
		l.elems[i] = tr.TransformElement(l.elems[i])
	}
}

// ChooseAll implements List.
func (l *ArrayList[E]) ChooseAll(ch Chooser[E]) {
	// Pass 1: decide, and count.
	keep := make([]bool, len(l.elems))
	newLen := 0
	for i, elem := range l.elems {
		if ch.ChooseElement(elem) {
			keep[i] = true
			newLen++
		}
	}

	// Pass 2: copy.  `src` only ever moves forward.
	newElems := make([]E, newLen)
	src := 0
	for dst := range newElems {
		for !keep[src] {
			src++
		}
		newElems[dst] = l.elems[src]
		src++
	}

	l.elems = newElems
}
