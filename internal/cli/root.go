// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Limbs   int    // 2, 3 or 4
	Digits  int    // significant digits, negative for the shortest round-trip form
	Trap    bool   // fail on invalid operation, division by zero and overflow
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cascade CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Extended precision floating-point calculator",
		Long: `Evaluate expressions in double-double, triple-double or quad-double
precision.

Values are parsed from decimal strings and printed in the shortest form
that parses back to the same value unless --digits is set.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Limbs < 2 || opts.Limbs > 4 {
				return fmt.Errorf("invalid limb count %d: must be 2, 3 or 4", opts.Limbs)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log arithmetic conditions to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVarP(&opts.Limbs, "limbs", "l", 4, "number of limbs (2|3|4)")
	cmd.PersistentFlags().IntVarP(&opts.Digits, "digits", "d", -1, "significant digits (-1 for shortest)")
	cmd.PersistentFlags().BoolVar(&opts.Trap, "trap", false, "fail on invalid operation, division by zero and overflow")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewFnCommand(opts))
	cmd.AddCommand(NewConstCommand(opts))
	cmd.AddCommand(NewLimbsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// logger returns a development logger writing to the command's stderr when
// verbose output is enabled, and a no-op logger otherwise.
func (o *RootOptions) logger(cmd *cobra.Command) *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), zap.DebugLevel)
	return zap.New(core)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
