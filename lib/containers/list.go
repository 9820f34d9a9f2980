// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"errors"
)

// ErrNilContents is returned when constructing a List from a nil
// slice.  A non-nil empty slice is fine, and results in an empty
// List.
var ErrNilContents = errors.New("invalid argument: nil contents")

// A Chooser decides whether an element should be retained by
// List.ChooseAll.
type Chooser[E any] interface {
	ChooseElement(E) bool
}

// A Transformer produces the replacement for an element in
// List.TransformAll.
type Transformer[E any] interface {
	TransformElement(E) E
}

// ChooserFunc adapts a plain function to a Chooser.
type ChooserFunc[E any] func(E) bool

var _ Chooser[int] = ChooserFunc[int](nil)

// ChooseElement implements Chooser.
func (fn ChooserFunc[E]) ChooseElement(e E) bool { return fn(e) }

// TransformerFunc adapts a plain function to a Transformer.
type TransformerFunc[E any] func(E) E

var _ Transformer[int] = TransformerFunc[int](nil)

// TransformElement implements Transformer.
func (fn TransformerFunc[E]) TransformElement(e E) E { return fn(e) }

// List is the common interface implemented by ArrayList and
// LinkedList.  Given the same contents and the same sequence of
// (pure) Choosers and Transformers, every implementation produces
// the same ToSlice() result.
//
// A List is not safe for concurrent use.
type List[E any] interface {
	// ToSlice returns a newly allocated copy of the elements, in
	// order.  Modifying the returned slice does not affect the
	// List.
	ToSlice() []E

	// TransformAll replaces every element with
	// tr.TransformElement(element), including zero-valued
	// ("absent") elements.  The length and order are unchanged.
	TransformAll(tr Transformer[E])

	// ChooseAll removes every element for which
	// ch.ChooseElement(element) returns false.  The relative order
	// of the remaining elements is preserved, and ch is called
	// exactly once per element.
	ChooseAll(ch Chooser[E])

	IsEmpty() bool
	Len() int
}
