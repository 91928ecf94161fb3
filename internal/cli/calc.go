// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/db47h/cascade"
	"github.com/db47h/cascade/context"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A cmdError carries the exit and error codes of a failed computation.
type cmdError struct {
	exit int
	code string
	err  error
}

func (e *cmdError) Error() string { return e.err.Error() }
func (e *cmdError) Unwrap() error { return e.err }

func syntaxError(err error) error {
	return &cmdError{ExitCommandError, ErrCodeSyntax, err}
}

func operatorError(format string, args ...interface{}) error {
	return &cmdError{ExitCommandError, ErrCodeOperator, errors.Errorf(format, args...)}
}

// engine evaluates the CLI commands at a fixed cascade width.
type engine interface {
	eval(x, op, y string) (Result, error)
	fn(name, x string) (Result, error)
	constant(name string) (Result, error)
	limbs(x string) (Result, error)
}

// newEngine returns an engine for opts.Limbs limbs.
func newEngine(opts *RootOptions, log *zap.Logger) engine {
	cfg := context.Config{NoTraps: !opts.Trap, Logger: log}
	switch opts.Limbs {
	case 2:
		return &calculator[cascade.DD]{context.New[cascade.DD](cfg), opts.Digits, "DD"}
	case 3:
		return &calculator[cascade.TD]{context.New[cascade.TD](cfg), opts.Digits, "TD"}
	default:
		return &calculator[cascade.QD]{context.New[cascade.QD](cfg), opts.Digits, "QD"}
	}
}

type calculator[T cascade.Number[T]] struct {
	ctx    *context.Context[T]
	digits int
	width  string
}

var binaryOps = map[string]string{
	"+":     "add",
	"add":   "add",
	"-":     "sub",
	"sub":   "sub",
	"*":     "mul",
	"x":     "mul",
	"mul":   "mul",
	"/":     "quo",
	"div":   "quo",
	"hypot": "hypot",
	"fmod":  "fmod",
	"rem":   "rem",
	"min":   "min",
	"max":   "max",
	"pow":   "pow",
	"**":    "pow",
}

var functions = []string{"abs", "cbrt", "erf", "erfc", "exp", "log", "neg", "sqrt"}

var constants = map[string]string{
	"pi":     cascade.Pi,
	"e":      cascade.E,
	"ln2":    cascade.Ln2,
	"ln10":   cascade.Ln10,
	"sqrt2":  cascade.Sqrt2,
	"log2e":  cascade.Log2E,
	"log10e": cascade.Log10E,
}

func constantNames() []string {
	names := make([]string, 0, len(constants))
	for k := range constants {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// parse parses s. Syntax errors are always reported, overflow only if
// trapped.
func (c *calculator[T]) parse(s string) (T, error) {
	x, err := cascade.Parse[T](s)
	switch {
	case err == nil:
		return x, nil
	case errors.Is(err, cascade.ErrRange):
		x = c.ctx.Parse(s)
		return x, c.condition()
	default:
		return x, syntaxError(err)
	}
}

func (c *calculator[T]) condition() error {
	if err := c.ctx.Err(); err != nil {
		return &cmdError{ExitFailure, ErrCodeCondition, err}
	}
	return nil
}

func (c *calculator[T]) result(expr string, z T) (Result, error) {
	if err := c.condition(); err != nil {
		return Result{}, err
	}
	return Result{Expr: expr, Value: z.Text('g', c.digits), Width: c.width}, nil
}

func (c *calculator[T]) eval(xs, op, ys string) (Result, error) {
	name, ok := binaryOps[strings.ToLower(op)]
	if !ok {
		return Result{}, operatorError("unknown operator %q", op)
	}
	x, err := c.parse(xs)
	if err != nil {
		return Result{}, err
	}
	expr := xs + " " + op + " " + ys
	if name == "pow" {
		n, err := strconv.Atoi(ys)
		if err != nil {
			return Result{}, syntaxError(errors.Wrapf(cascade.ErrSyntax, "exponent %q is not an integer", ys))
		}
		return c.result(expr, c.ctx.Pow(x, n))
	}
	y, err := c.parse(ys)
	if err != nil {
		return Result{}, err
	}
	var z T
	switch name {
	case "add":
		z = c.ctx.Add(x, y)
	case "sub":
		z = c.ctx.Sub(x, y)
	case "mul":
		z = c.ctx.Mul(x, y)
	case "quo":
		z = c.ctx.Quo(x, y)
	case "hypot":
		z = c.ctx.Hypot(x, y)
	case "fmod":
		z = c.ctx.Fmod(x, y)
	case "rem":
		z = c.ctx.Remainder(x, y)
	case "min":
		z = c.ctx.Min(x, y)
	case "max":
		z = c.ctx.Max(x, y)
	}
	return c.result(expr, z)
}

func (c *calculator[T]) fn(name, xs string) (Result, error) {
	var f func(T) T
	switch strings.ToLower(name) {
	case "abs":
		f = c.ctx.Abs
	case "cbrt":
		f = c.ctx.Cbrt
	case "erf":
		f = c.ctx.Erf
	case "erfc":
		f = c.ctx.Erfc
	case "exp":
		f = c.ctx.Exp
	case "log":
		f = c.ctx.Log
	case "neg":
		f = c.ctx.Neg
	case "sqrt":
		f = c.ctx.Sqrt
	default:
		return Result{}, operatorError("unknown function %q, expected one of %v", name, functions)
	}
	x, err := c.parse(xs)
	if err != nil {
		return Result{}, err
	}
	return c.result(name+"("+xs+")", f(x))
}

func (c *calculator[T]) constant(name string) (Result, error) {
	s, ok := constants[strings.ToLower(name)]
	if !ok {
		return Result{}, operatorError("unknown constant %q, expected one of %v", name, constantNames())
	}
	return c.result(name, c.ctx.Parse(s))
}

func (c *calculator[T]) limbs(xs string) (Result, error) {
	x, err := c.parse(xs)
	if err != nil {
		return Result{}, err
	}
	r, err := c.result(xs, x)
	if err != nil {
		return r, err
	}
	for _, l := range cascade.LimbsOf(x) {
		r.Limbs = append(r.Limbs, strconv.FormatFloat(l, 'g', -1, 64))
	}
	return r, nil
}
