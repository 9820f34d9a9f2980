// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package strategies

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"git.lukeshu.com/glist/lib/containers"
)

// LongWord accepts strings that are longer than 5 characters.
// Characters are counted as runes, so "🙂🙂🙂" is 3 long, not 6.
type LongWord struct{}

var _ containers.Chooser[containers.Optional[string]] = LongWord{}

// ChooseElement implements containers.Chooser.
func (LongWord) ChooseElement(s containers.Optional[string]) bool {
	return s.OK && utf8.RuneCountInString(s.Val) > 5
}

// CapitalizedWord accepts strings that begin with an upper-case
// letter.
type CapitalizedWord struct{}

var _ containers.Chooser[containers.Optional[string]] = CapitalizedWord{}

// ChooseElement implements containers.Chooser.
func (CapitalizedWord) ChooseElement(s containers.Optional[string]) bool {
	if !s.OK || s.Val == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s.Val)
	return unicode.IsUpper(first)
}

// MultipleOfTwelve accepts integers that are evenly divisible by 12
// (including 0 and negative multiples).
type MultipleOfTwelve[T constraints.Integer] struct{}

var _ containers.Chooser[containers.Optional[int]] = MultipleOfTwelve[int]{}

// ChooseElement implements containers.Chooser.
func (MultipleOfTwelve[T]) ChooseElement(i containers.Optional[T]) bool {
	return i.OK && i.Val%12 == 0
}

// LacksDigitThree accepts numbers whose decimal representation does
// NOT contain a '3'.
//
// Note that it accepts the numbers *without* a 3, not the numbers
// with one.
//
// Very large and very small floats are written with an exponent, and
// the exponent counts: 1e13 is "1.0E13", and is rejected.
type LacksDigitThree[T constraints.Integer | constraints.Float] struct{}

var (
	_ containers.Chooser[containers.Optional[float64]] = LacksDigitThree[float64]{}
	_ containers.Chooser[containers.Optional[int]]     = LacksDigitThree[int]{}
)

// ChooseElement implements containers.Chooser.
func (LacksDigitThree[T]) ChooseElement(d containers.Optional[T]) bool {
	return d.OK && !strings.ContainsRune(formatDecimal(d.Val), '3')
}

// formatDecimal returns the decimal text of x.  Integers are plain
// base-10.  Floats use the shortest digits that round-trip, laid out
// as "d.ddd" when 1e-3 <= |x| < 1e7 and as "d.dddEn" otherwise, so
// the exponent digits are part of the text.
func formatDecimal[T constraints.Integer | constraints.Float](x T) string {
	val := reflect.ValueOf(x)
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return formatFloat(val.Float(), val.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(val.Uint(), 10)
	default:
		return strconv.FormatInt(val.Int(), 10)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		str := strconv.FormatFloat(f, 'f', -1, bits)
		if !strings.Contains(str, ".") {
			str += ".0"
		}
		return str
	}

	// strconv gives "1.5e+13" or "2e-05"; we want "1.5E13" or "2.0E-5".
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bits), "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	if strings.HasPrefix(exp, "-") {
		sign = "-"
	}
	exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	return mant + "E" + sign + exp
}
