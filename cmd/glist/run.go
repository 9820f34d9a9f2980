// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"git.lukeshu.com/glist/lib/containers"
	"git.lukeshu.com/glist/lib/textui"
)

func runType[E comparable](ctx context.Context, cmd *cobra.Command, cfg config, reg map[string]step[E], args []string) error {
	if cfg.ListSteps {
		names := maps.Keys(reg)
		slices.Sort(names)
		for _, name := range names {
			if _, err := textui.Fprintf(cmd.OutOrStdout(), "%s\n", name); err != nil {
				return err
			}
		}
		return nil
	}

	steps, err := parseSteps(reg, args)
	if err != nil {
		return err
	}

	var input []E
	if cfg.Input == "" {
		input, err = readJSON[[]E](ctx, cmd.InOrStdin())
	} else {
		input, err = readJSONFile[[]E](ctx, cfg.Input)
	}
	if err != nil {
		return err
	}

	var dumpOut io.Writer
	if cfg.Dump {
		dumpOut = cmd.ErrOrStderr()
	}
	output, err := runSteps(ctx, cfg.Impl.Val, steps, input, dumpOut)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), output)
}

func newList[E any](impl string, contents []E) (containers.List[E], error) {
	switch impl {
	case "array":
		l, err := containers.NewArrayList(contents)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "linked":
		l, err := containers.NewLinkedList(contents)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		panic(fmt.Errorf("should not happen: unknown list implementation %q", impl))
	}
}

// runSteps builds the list(s) selected by `impl` from `input`, and
// applies `steps` to each.  Each list is driven by its own
// goroutine.
func runSteps[E comparable](ctx context.Context, impl string, steps []step[E], input []E, dumpOut io.Writer) ([]E, error) {
	implNames := []string{impl}
	if impl == "both" {
		implNames = []string{"array", "linked"}
	}

	lists := make([]containers.List[E], len(implNames))
	for i, name := range implNames {
		l, err := newList(name, input)
		if err != nil {
			return nil, err
		}
		lists[i] = l
	}

	results := make([][]E, len(lists))
	stepErrs := make([]error, len(lists))
	grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{})
	for i := range lists {
		i := i
		grp.Go(implNames[i], func(ctx context.Context) error {
			l := lists[i]
			for j, s := range steps {
				ctx := dlog.WithField(ctx, "glist.step", j+1)
				ctx = dlog.WithField(ctx, "glist.op", s.Name)
				before := l.Len()
				if err := s.apply(l); err != nil {
					stepErrs[i] = fmt.Errorf("%s list: step %d: %w", implNames[i], j+1, err)
					return stepErrs[i]
				}
				if s.Choose != nil {
					dlog.Debugf(ctx, "kept %v", textui.Portion[int]{N: l.Len(), D: before})
				} else {
					dlog.Debugf(ctx, "transformed %d elements", l.Len())
				}
			}
			results[i] = l.ToSlice()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		var errs derror.MultiError
		for _, stepErr := range stepErrs {
			if stepErr != nil {
				errs = append(errs, stepErr)
			}
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return nil, err
	}

	if dumpOut != nil {
		spew := spew.NewDefaultConfig()
		spew.DisablePointerAddresses = true
		spew.DisableCapacities = true
		for i, l := range lists {
			textui.Fprintf(dumpOut, "%s = ", implNames[i])
			spew.Fdump(dumpOut, l)
		}
	}

	for i := 1; i < len(results); i++ {
		if err := compareResults(results[0], results[i]); err != nil {
			return nil, fmt.Errorf("%s and %s lists disagree: %w", implNames[0], implNames[i], err)
		}
	}
	dlog.Infof(ctx, "%d elements", len(results[0]))
	return results[0], nil
}

func compareResults[E comparable](a, b []E) error {
	var errs derror.MultiError
	if len(a) != len(b) {
		errs = append(errs, fmt.Errorf("length: %d != %d", len(a), len(b)))
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			errs = append(errs, fmt.Errorf("element %d: %v != %v", i, a[i], b[i]))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
