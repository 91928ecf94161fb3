// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewConstCommand creates the const command.
func NewConstCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "const <name>",
		Short:         "Print a mathematical constant",
		Long:          fmt.Sprintf("Print one of the constants %s, rounded to the selected width.", strings.Join(constantNames(), ", ")),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, func(e engine) (Result, error) {
				return e.constant(args[0])
			})
		},
	}
}
