// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewFnCommand creates the fn command.
func NewFnCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "fn <name> <x>",
		Short:         "Evaluate a function",
		Long:          fmt.Sprintf("Evaluate one of the functions %s.", strings.Join(functions, ", ")),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, func(e engine) (Result, error) {
				return e.fn(args[0], args[1])
			})
		},
	}
}
