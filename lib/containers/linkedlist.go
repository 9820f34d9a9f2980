// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

// LinkedListEntry[E] is an entry in a LinkedList[E].
type LinkedListEntry[E any] struct {
	next  *LinkedListEntry[E]
	Value E
}

// LinkedList is a singly-linked List.
//
// The chain hangs off of a sentinel entry whose Value is unused; this
// means that "the first real entry" is always `sentinel.next`, and
// that appending or relinking never needs to special-case an empty
// list.
//
// Unlike `container/list.List`, the entries are never exposed to the
// caller; everything goes in and out by value through the List
// interface.
type LinkedList[E any] struct {
	sentinel LinkedListEntry[E]
	len      int
}

var _ List[int] = (*LinkedList[int])(nil)

// NewLinkedList returns a LinkedList holding a copy of contents.  It
// returns ErrNilContents if contents is nil.
func NewLinkedList[E any](contents []E) (*LinkedList[E], error) {
	if contents == nil {
		return nil, ErrNilContents
	}
	l := new(LinkedList[E])
	tail := &l.sentinel
	for _, val := range contents {
		tail.next = &LinkedListEntry[E]{
			Value: val,
		}
		tail = tail.next
		l.len++
	}
	return l, nil
}

// Len implements List.
func (l *LinkedList[E]) Len() int {
	return l.len
}

// IsEmpty implements List.
func (l *LinkedList[E]) IsEmpty() bool {
	return l.sentinel.next == nil
}

// ToSlice implements List.
func (l *LinkedList[E]) ToSlice() []E {
	ret := make([]E, 0, l.len)
	for entry := l.sentinel.next; entry != nil; entry = entry.next {
		ret = append(ret, entry.Value)
	}
	return ret
}

// TransformAll implements List.
func (l *LinkedList[E]) TransformAll(tr Transformer[E]) {
	for entry := l.sentinel.next; entry != nil; entry = entry.next {
		entry.Value = tr.TransformElement(entry.Value)
	}
}

// ChooseAll implements List.
//
// Retained entries are re-linked in place; rejected entries are
// simply skipped over, and become unreachable.
func (l *LinkedList[E]) ChooseAll(ch Chooser[E]) {
	lastKept := &l.sentinel
	newLen := 0
	for entry := l.sentinel.next; entry != nil; {
		next := entry.next
		if ch.ChooseElement(entry.Value) {
			lastKept.next = entry
			lastKept = entry
			newLen++
		} else {
			*entry = LinkedListEntry[E]{} // no memory leaks
		}
		entry = next
	}
	// Don't let the tail of the old chain leak back in.
	lastKept.next = nil
	l.len = newLen
}
