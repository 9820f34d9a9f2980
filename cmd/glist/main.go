// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command glist filters and transforms a JSON array by loading it in
// to an array-backed list, a linked list, or both, and running a
// pipeline of choose/transform steps over it.
package main

import (
	"context"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/glist/lib/textui"
)

func main() {
	argparser := newCommand()
	if err := argparser.ExecuteContext(context.Background()); err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	logLevelFlag := textui.LogLevelFlag{
		Level: dlog.LogLevelInfo,
	}
	cfg := config{
		Impl: enumFlag{Val: "both", Options: []string{"array", "linked", "both"}},
		Type: enumFlag{Val: "string", Options: []string{"string", "int", "float"}},
	}

	argparser := &cobra.Command{
		Use:   "glist [flags] STEP...",
		Short: "Filter and transform a JSON array",
		Long: "Read a JSON array, and run each STEP over it in order.  " +
			"Each STEP is either \"choose:NAME\", which keeps only the " +
			"elements that NAME accepts, or \"transform:NAME\", which " +
			"replaces every element.  Use --list-steps to see which " +
			"NAMEs are available for the selected --type.\n" +
			"\n" +
			"With --impl=both (the default), the steps are run against " +
			"both an array-backed list and a linked list, and it is an " +
			"error for the results to differ.",

		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := textui.NewLogger(cmd.ErrOrStderr(), logLevelFlag.Level)
			ctx = dlog.WithLogger(ctx, logger)

			switch cfg.Type.Val {
			case "string":
				return runType(ctx, cmd, cfg, stringSteps(), args)
			case "int":
				return runType(ctx, cmd, cfg, intSteps(), args)
			case "float":
				return runType(ctx, cmd, cfg, floatSteps(), args)
			default:
				panic("should not happen: unhandled --type")
			}
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)

	argparser.Flags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.Flags().Var(&cfg.Impl, "impl", "which list implementation to use: "+cfg.Impl.Choices())
	argparser.Flags().Var(&cfg.Type, "type", "the type of the array elements: "+cfg.Type.Choices())
	argparser.Flags().StringVar(&cfg.Input, "input", "", "read the JSON array from `file.json` instead of stdin")
	if err := argparser.MarkFlagFilename("input", "json"); err != nil {
		panic(err)
	}
	argparser.Flags().BoolVar(&cfg.Dump, "dump", false, "dump the internals of the final list(s) to stderr")
	argparser.Flags().BoolVar(&cfg.ListSteps, "list-steps", false, "list the available STEPs for --type, and exit")

	return argparser
}
