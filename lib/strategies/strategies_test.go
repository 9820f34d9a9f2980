// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package strategies_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/glist/lib/containers"
	"git.lukeshu.com/glist/lib/strategies"
)

func opt[T any](vals ...any) []containers.Optional[T] {
	ret := make([]containers.Optional[T], len(vals))
	for i, val := range vals {
		if val != nil {
			ret[i] = containers.Some(val.(T))
		}
	}
	return ret
}

// bothLists runs fn against an ArrayList and a LinkedList built from
// the same input, and checks that they agree.
func bothLists[E any](t *testing.T, input []E, fn func(containers.List[E])) []E {
	t.Helper()
	arr, err := containers.NewArrayList(input)
	require.NoError(t, err)
	lnk, err := containers.NewLinkedList(input)
	require.NoError(t, err)
	fn(arr)
	fn(lnk)
	out := arr.ToSlice()
	assert.Equal(t, out, lnk.ToSlice(), "ArrayList and LinkedList disagree")
	assert.Equal(t, len(out), arr.Len())
	assert.Equal(t, len(out), lnk.Len())
	return out
}

func TestChooseMultipleOfTwelve(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[int](1, 2, 3, 12, 0, nil, 24, 48), func(l containers.List[containers.Optional[int]]) {
		l.ChooseAll(strategies.MultipleOfTwelve[int]{})
	})
	assert.Equal(t, opt[int](12, 0, 24, 48), out)
}

func TestChooseCapitalizedWord(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[string]("", "b", "C", "car", "Door", "bUN", nil, "RUDE"), func(l containers.List[containers.Optional[string]]) {
		l.ChooseAll(strategies.CapitalizedWord{})
	})
	assert.Equal(t, opt[string]("C", "Door", "RUDE"), out)
}

func TestChooseLongWord(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[string]("short", "longer", nil, "", "élégant", "abcdefg"), func(l containers.List[containers.Optional[string]]) {
		l.ChooseAll(strategies.LongWord{})
	})
	assert.Equal(t, opt[string]("longer", "élégant", "abcdefg"), out)
}

func TestLongWordCountsRunes(t *testing.T) {
	t.Parallel()
	ch := strategies.LongWord{}
	assert.False(t, ch.ChooseElement(containers.Some("🙂🙂🙂")))
	assert.True(t, ch.ChooseElement(containers.Some("🙂🙂🙂🙂🙂🙂")))
}

// LacksDigitThree keeps the numbers that do NOT have a 3 in them.
// This is intentional; do not "fix" it to keep the ones with a 3.
func TestChooseLacksDigitThree(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[float64](0.0, 1.23, 3.0, nil, -4.20, 1.1111113, -1.2463), func(l containers.List[containers.Optional[float64]]) {
		l.ChooseAll(strategies.LacksDigitThree[float64]{})
	})
	assert.Equal(t, opt[float64](0.0, -4.20), out)

	outInts := bothLists(t, opt[int](3, 13, 30, 42, nil, -3, 1000000), func(l containers.List[containers.Optional[int]]) {
		l.ChooseAll(strategies.LacksDigitThree[int]{})
	})
	assert.Equal(t, opt[int](42, 1000000), outInts)
}

func TestLacksDigitThreeExponent(t *testing.T) {
	t.Parallel()
	ch := strategies.LacksDigitThree[float64]{}
	// Outside of [1e-3, 1e7) the exponent is part of the text.
	assert.False(t, ch.ChooseElement(containers.Some(1e13)))  // "1.0E13"
	assert.False(t, ch.ChooseElement(containers.Some(2e-13))) // "2.0E-13"
	assert.False(t, ch.ChooseElement(containers.Some(1e30)))  // "1.0E30"
	assert.True(t, ch.ChooseElement(containers.Some(1e21)))   // "1.0E21"
	assert.True(t, ch.ChooseElement(containers.Some(1e-5)))   // "1.0E-5"
	assert.True(t, ch.ChooseElement(containers.Some(1e7)))    // "1.0E7"
	assert.True(t, ch.ChooseElement(containers.Some(0.001)))  // "0.001"
	assert.True(t, ch.ChooseElement(containers.Some(0.5)))
	assert.False(t, ch.ChooseElement(containers.None[float64]()))
}

func TestChoosersRejectAbsent(t *testing.T) {
	t.Parallel()
	assert.False(t, strategies.LongWord{}.ChooseElement(containers.None[string]()))
	assert.False(t, strategies.CapitalizedWord{}.ChooseElement(containers.None[string]()))
	assert.False(t, strategies.MultipleOfTwelve[int]{}.ChooseElement(containers.None[int]()))
	assert.False(t, strategies.LacksDigitThree[int]{}.ChooseElement(containers.None[int]()))
}

func TestTransformFibonacci(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[int](1, 2, 3, 12, 0, nil, 44, 48), func(l containers.List[containers.Optional[int]]) {
		l.TransformAll(strategies.Fibonacci{})
	})
	assert.Equal(t, opt[int](1, 1, 2, 144, 0, nil, 701408733, 48), out)
}

func TestFibonacciBounds(t *testing.T) {
	t.Parallel()
	tr := strategies.Fibonacci{}
	type TestCase struct {
		In, Out containers.Optional[int]
	}
	testcases := map[string]TestCase{
		"negative": {In: containers.Some(-5), Out: containers.Some(-5)},
		"zero":     {In: containers.Some(0), Out: containers.Some(0)},
		"one":      {In: containers.Some(1), Out: containers.Some(1)},
		"two":      {In: containers.Some(2), Out: containers.Some(1)},
		"ten":      {In: containers.Some(10), Out: containers.Some(55)},
		"max":      {In: containers.Some(45), Out: containers.Some(1134903170)},
		"over":     {In: containers.Some(46), Out: containers.Some(46)},
		"absent":   {In: containers.None[int](), Out: containers.None[int]()},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.Out, tr.TransformElement(tc.In))
		})
	}
}

func TestTransformDepluralize(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[string]("Is", "B", "", "cars", "Bill's", "mass", nil, "miles"), func(l containers.List[containers.Optional[string]]) {
		l.TransformAll(strategies.Depluralize{})
	})
	assert.Equal(t, opt[string]("Is", "B", "", "car", "Bill's", "mass", nil, "mile"), out)
}

func TestDepluralizeCase(t *testing.T) {
	t.Parallel()
	tr := strategies.Depluralize{}
	assert.Equal(t, containers.Some("CAR"), tr.TransformElement(containers.Some("CARS")))
	assert.Equal(t, containers.Some("MASS"), tr.TransformElement(containers.Some("MASS")))
	assert.Equal(t, containers.Some("café"), tr.TransformElement(containers.Some("cafés")))
	assert.Equal(t, containers.Some("it"), tr.TransformElement(containers.Some("its")))
}

func TestTransformSquare(t *testing.T) {
	t.Parallel()
	a, b := 1.23, 1.1111113
	out := bothLists(t, opt[float64](0.0, a, 3.0, nil, -4.20, b, -1.2463), func(l containers.List[containers.Optional[float64]]) {
		l.TransformAll(strategies.Square[float64]{})
	})
	assert.Equal(t, opt[float64](0.0, a*a, 9.0, nil, -4.20, b*b, -1.2463), out)

	outInts := bothLists(t, opt[int](-2, 0, 7, nil), func(l containers.List[containers.Optional[int]]) {
		l.TransformAll(strategies.Square[int]{})
	})
	assert.Equal(t, opt[int](-2, 0, 49, nil), outInts)
}

func TestSquareOverflow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, containers.Some(int64(9223372030926249001)), strategies.Square[int64]{}.TransformElement(containers.Some(int64(3037000499))))
	assert.Equal(t, containers.Some(int64(3037000500)), strategies.Square[int64]{}.TransformElement(containers.Some(int64(3037000500))))
	assert.Equal(t, containers.Some(int64(9999999999)), strategies.Square[int64]{}.TransformElement(containers.Some(int64(9999999999))))

	assert.Equal(t, containers.Some(int8(121)), strategies.Square[int8]{}.TransformElement(containers.Some(int8(11))))
	assert.Equal(t, containers.Some(int8(12)), strategies.Square[int8]{}.TransformElement(containers.Some(int8(12))))
	assert.Equal(t, containers.Some(uint8(225)), strategies.Square[uint8]{}.TransformElement(containers.Some(uint8(15))))
	assert.Equal(t, containers.Some(uint8(16)), strategies.Square[uint8]{}.TransformElement(containers.Some(uint8(16))))
	assert.Equal(t, containers.Some(uint8(0)), strategies.Square[uint8]{}.TransformElement(containers.Some(uint8(0))))

	// Floats don't overflow; they go to +Inf.
	big := 1e200
	assert.Equal(t, containers.Some(math.Inf(1)), strategies.Square[float64]{}.TransformElement(containers.Some(big)))
}

func TestTransformUppercase(t *testing.T) {
	t.Parallel()
	out := bothLists(t, []string{"abc", "", "MiXeD", "straße"}, func(l containers.List[string]) {
		l.TransformAll(strategies.Uppercase{})
	})
	assert.Equal(t, []string{"ABC", "", "MIXED", "STRASSE"}, out)
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[int](), func(l containers.List[containers.Optional[int]]) {
		assert.True(t, l.IsEmpty())
		l.ChooseAll(strategies.MultipleOfTwelve[int]{})
		l.TransformAll(strategies.Fibonacci{})
		assert.True(t, l.IsEmpty())
	})
	assert.Equal(t, opt[int](), out)

	outStrs := bothLists(t, opt[string](), func(l containers.List[containers.Optional[string]]) {
		l.TransformAll(strategies.Depluralize{})
		l.ChooseAll(strategies.CapitalizedWord{})
	})
	assert.Equal(t, opt[string](), outStrs)
}

func TestAllAbsent(t *testing.T) {
	t.Parallel()
	input := make([]containers.Optional[float64], 1000)
	out := bothLists(t, input, func(l containers.List[containers.Optional[float64]]) {
		assert.False(t, l.IsEmpty())
		l.TransformAll(strategies.Square[float64]{})
	})
	assert.Equal(t, input, out)
}

func TestAlwaysTrueIsNoOp(t *testing.T) {
	t.Parallel()
	input := opt[string]("a", nil, "B", "cars")
	out := bothLists(t, input, func(l containers.List[containers.Optional[string]]) {
		l.ChooseAll(containers.ChooserFunc[containers.Optional[string]](func(containers.Optional[string]) bool {
			return true
		}))
	})
	assert.Equal(t, input, out)
}

func TestPipeline(t *testing.T) {
	t.Parallel()
	out := bothLists(t, opt[string]("Dogs", "cats", nil, "Horses", "Bill's", "Elephants"), func(l containers.List[containers.Optional[string]]) {
		l.TransformAll(strategies.Depluralize{})
		l.ChooseAll(strategies.CapitalizedWord{})
		l.ChooseAll(strategies.LongWord{})
	})
	assert.Equal(t, opt[string]("Bill's", "Elephant"), out)
}
