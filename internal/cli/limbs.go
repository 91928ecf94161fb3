// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
)

// NewLimbsCommand creates the limbs command.
func NewLimbsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "limbs <x>",
		Short: "Print the limbs of a value",
		Long: `Parse x and print its limbs, leading limb first, in the shortest
float64 form.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, func(e engine) (Result, error) {
				return e.limbs(args[0])
			})
		},
	}
}
