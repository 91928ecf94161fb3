// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Evaluate a binary operation",
		Long: `Evaluate x op y where op is one of:

  +  -  *  /  hypot  fmod  rem  min  max  pow

The exponent of pow must be an integer. Negative operands must follow a
"--" argument: cascade eval -- -1 / 3`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, func(e engine) (Result, error) {
				return e.eval(args[0], args[1], args[2])
			})
		},
	}
}

// run evaluates f with an engine configured from opts and writes its result.
func run(opts *RootOptions, cmd *cobra.Command, f func(engine) (Result, error)) error {
	formatter := opts.formatter(cmd)
	log := opts.logger(cmd)
	defer log.Sync() //nolint:errcheck

	r, err := f(newEngine(opts, log))
	if err != nil {
		var ce *cmdError
		if errors.As(err, &ce) {
			return formatter.fail(ce.exit, ce.code, ce.err)
		}
		return formatter.fail(ExitFailure, ErrCodeCondition, err)
	}
	return formatter.Success(r)
}
