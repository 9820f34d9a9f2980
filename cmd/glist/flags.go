// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

type config struct {
	Impl      enumFlag
	Type      enumFlag
	Input     string
	Dump      bool
	ListSteps bool
}

// enumFlag is a pflag.Value that may only be set to one of a fixed
// list of strings.
type enumFlag struct {
	Val     string
	Options []string
}

var _ pflag.Value = (*enumFlag)(nil)

func (f *enumFlag) Choices() string {
	return strings.Join(f.Options, "|")
}

// String implements pflag.Value.
func (f *enumFlag) String() string { return f.Val }

// Type implements pflag.Value.
func (*enumFlag) Type() string { return "string" }

// Set implements pflag.Value.
func (f *enumFlag) Set(str string) error {
	if !slices.Contains(f.Options, str) {
		return fmt.Errorf("must be one of %s", f.Choices())
	}
	f.Val = str
	return nil
}
