// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"git.lukeshu.com/glist/lib/containers"
	"git.lukeshu.com/glist/lib/strategies"
)

type (
	optString  = containers.Optional[string]
	optInt     = containers.Optional[int]
	optFloat64 = containers.Optional[float64]
)

// A step is one stage of the pipeline; exactly one of Choose or
// Transform is set.
type step[E any] struct {
	Name      string
	Choose    containers.Chooser[E]
	Transform containers.Transformer[E]

	// Check, if non-nil, is run against the list contents right
	// before the step is applied, and may refuse to apply it.
	Check func([]E) error
}

func (s step[E]) apply(l containers.List[E]) error {
	if s.Check != nil {
		if err := s.Check(l.ToSlice()); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	switch {
	case s.Choose != nil:
		l.ChooseAll(s.Choose)
	case s.Transform != nil:
		l.TransformAll(s.Transform)
	}
	return nil
}

func registry[E any](steps ...step[E]) map[string]step[E] {
	ret := make(map[string]step[E], len(steps))
	for _, s := range steps {
		ret[s.Name] = s
	}
	return ret
}

func allPresent[T any](elems []containers.Optional[T]) error {
	for i, elem := range elems {
		if !elem.OK {
			return fmt.Errorf("element %d is absent (null)", i)
		}
	}
	return nil
}

func stringSteps() map[string]step[optString] {
	return registry(
		step[optString]{Name: "choose:long-word", Choose: strategies.LongWord{}},
		step[optString]{Name: "choose:capitalized-word", Choose: strategies.CapitalizedWord{}},
		step[optString]{Name: "transform:depluralize", Transform: strategies.Depluralize{}},
		step[optString]{
			Name:  "transform:uppercase",
			Check: allPresent[string],
			Transform: containers.TransformerFunc[optString](func(s optString) optString {
				return containers.Some(strategies.Uppercase{}.TransformElement(s.Val))
			}),
		},
	)
}

func intSteps() map[string]step[optInt] {
	return registry(
		step[optInt]{Name: "choose:multiple-of-twelve", Choose: strategies.MultipleOfTwelve[int]{}},
		step[optInt]{Name: "choose:lacks-digit-three", Choose: strategies.LacksDigitThree[int]{}},
		step[optInt]{Name: "transform:fibonacci", Transform: strategies.Fibonacci{}},
		step[optInt]{Name: "transform:square", Transform: strategies.Square[int]{}},
	)
}

func floatSteps() map[string]step[optFloat64] {
	return registry(
		step[optFloat64]{Name: "choose:lacks-digit-three", Choose: strategies.LacksDigitThree[float64]{}},
		step[optFloat64]{Name: "transform:square", Transform: strategies.Square[float64]{}},
	)
}

func parseSteps[E any](reg map[string]step[E], args []string) ([]step[E], error) {
	ret := make([]step[E], 0, len(args))
	for _, arg := range args {
		s, ok := reg[arg]
		if !ok {
			return nil, fmt.Errorf("unknown step %q (see --list-steps)", arg)
		}
		ret = append(ret, s)
	}
	return ret, nil
}
