// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package strategies

import (
	"unicode"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.lukeshu.com/glist/lib/containers"
)

// Uppercase converts a string to upper case.
//
// It operates on plain strings, not containers.Optional[string]:
// there is no upper-case form of an absent string, and callers
// holding possibly-absent strings must deal with that themselves
// before reaching for Uppercase.
type Uppercase struct{}

var _ containers.Transformer[string] = Uppercase{}

// TransformElement implements containers.Transformer.
func (Uppercase) TransformElement(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Depluralize strips a trailing "s" from words that look plural.
//
// Words shorter than 3 characters are left alone, as are words
// ending in "ss" ("mass") or "'s" ("Bill's").
type Depluralize struct{}

var _ containers.Transformer[containers.Optional[string]] = Depluralize{}

// TransformElement implements containers.Transformer.
func (Depluralize) TransformElement(s containers.Optional[string]) containers.Optional[string] {
	if !s.OK {
		return s
	}
	runes := []rune(s.Val)
	if len(runes) < 3 {
		return s
	}
	secondToLast := runes[len(runes)-2]
	if secondToLast == '\'' || unicode.ToLower(secondToLast) == 's' {
		return s
	}
	if unicode.ToLower(runes[len(runes)-1]) == 's' {
		return containers.Some(string(runes[:len(runes)-1]))
	}
	return s
}

// MaxFibonacciIndex is the largest n for which Fibonacci computes
// F(n); F(45) is the largest Fibonacci number that Fibonacci will
// produce, keeping results within the range of an int32.
const MaxFibonacciIndex = 45

// Fibonacci replaces n with the n-th Fibonacci number F(n).
//
// Values less than 2 (where F(0)=0 and F(1)=1 are their own
// counterparts, and negative values have none) and values greater
// than MaxFibonacciIndex are left unchanged.
type Fibonacci struct{}

var _ containers.Transformer[containers.Optional[int]] = Fibonacci{}

// TransformElement implements containers.Transformer.
func (Fibonacci) TransformElement(n containers.Optional[int]) containers.Optional[int] {
	if !n.OK || n.Val < 2 || n.Val > MaxFibonacciIndex {
		return n
	}
	smaller, larger := 0, 1
	for i := 2; i <= n.Val; i++ {
		smaller, larger = larger, smaller+larger
	}
	return containers.Some(larger)
}

// Square replaces x with x². Negative values are left unchanged.
//
// For integer types, values whose square does not fit in T are also
// left unchanged.  Floats follow the usual IEEE rules, and may
// square to +Inf.
type Square[T constraints.Integer | constraints.Float] struct{}

var (
	_ containers.Transformer[containers.Optional[int]]     = Square[int]{}
	_ containers.Transformer[containers.Optional[float64]] = Square[float64]{}
)

// TransformElement implements containers.Transformer.
func (Square[T]) TransformElement(x containers.Optional[T]) containers.Optional[T] {
	if !x.OK || x.Val < 0 {
		return x
	}
	sq := x.Val * x.Val
	if isInteger[T]() && x.Val != 0 && sq/x.Val != x.Val {
		// overflow
		return x
	}
	return containers.Some(sq)
}

func isInteger[T constraints.Integer | constraints.Float]() bool {
	var one T = 1
	return one/2 == 0
}
