// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style exception handling for cascades.
//
// Cascade operations never fail: like float64 arithmetic, they return NaN on
// invalid operations and signed infinities on overflow or division by zero. A
// Context wraps these operations and detects such conditions:
//
//	func (c *Context[T]) UnaryOp(x T) T
//	func (c *Context[T]) BinaryOp(x, y T) T
//
// return the same value as x.Op() or x.Op(y). If the operation raises a
// condition listed in the context's traps, the condition is recorded as an
// *ArithmeticError and further operations with the context are no-ops
// returning the zero value of T, until (*Context).Err is called to check for
// errors. If Config.Panic is set, trapped conditions panic instead.
//
// A Context is not safe for concurrent use. The values it returns are.
package context

import (
	"fmt"
	"strings"

	"github.com/db47h/cascade"
	cmath "github.com/db47h/cascade/math"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Condition is a set of exceptional conditions.
type Condition uint8

// Exceptional conditions.
const (
	// InvalidOperation is raised when an operation on non-NaN operands
	// yields a NaN, like 0/0, ∞-∞ or the square root of a negative number,
	// or when a string cannot be parsed.
	InvalidOperation Condition = 1 << iota
	// DivisionByZero is raised when a finite non-zero number is divided by
	// zero, and by Log(0) or Pow(0, n) with n < 0.
	DivisionByZero
	// Overflow is raised when an operation on finite operands yields an
	// infinity.
	Overflow
	// Underflow is raised when a product, quotient, power or exponential of
	// finite non-zero operands is zero.
	Underflow
)

// DefaultTraps is the set of conditions trapped by a zero Config.
const DefaultTraps = InvalidOperation | DivisionByZero | Overflow

var condNames = [...]string{"invalid operation", "division by zero", "overflow", "underflow"}

func (c Condition) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for i, n := range condNames {
		if c&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if rest := c &^ (1<<len(condNames) - 1); rest != 0 {
		names = append(names, fmt.Sprintf("Condition(%#x)", uint8(rest)))
	}
	return strings.Join(names, "|")
}

// Error implements the error interface, so that a Condition can be used as
// the target of errors.Is.
func (c Condition) Error() string { return c.String() }

// An ArithmeticError reports a trapped condition.
type ArithmeticError struct {
	Op       string    // operation name, like "quo"
	Cond     Condition // the condition raised
	Operands []string  // operands, formatted with %g
	Err      error     // underlying error, if any
}

func (e *ArithmeticError) Error() string {
	msg := e.Op + ": " + e.Cond.String()
	if len(e.Operands) > 0 {
		msg += " (" + strings.Join(e.Operands, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is a Condition raised by e.
func (e *ArithmeticError) Is(target error) bool {
	c, ok := target.(Condition)
	return ok && c != 0 && e.Cond&c == c
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

// Config configures a Context.
type Config struct {
	// Traps is the set of conditions that are recorded or, if Panic is set,
	// that panic. If Traps is zero, DefaultTraps is used. Use NoTraps to
	// disable all traps.
	Traps Condition
	// NoTraps disables all traps. The context then only logs conditions.
	NoTraps bool
	// Panic makes trapped conditions panic with an *ArithmeticError.
	Panic bool
	// Logger receives a debug entry for every condition raised, trapped or
	// not. If nil, the package logger is used.
	Logger *zap.Logger
}

// A Context is a wrapper around cascade operations that detects exceptional
// conditions.
type Context[T cascade.Number[T]] struct {
	traps Condition
	panic bool
	log   *zap.Logger
	err   error
}

// New creates a new context with the given configuration.
func New[T cascade.Number[T]](cfg Config) *Context[T] {
	c := &Context[T]{traps: cfg.Traps, panic: cfg.Panic, log: cfg.Logger}
	switch {
	case cfg.NoTraps:
		c.traps = 0
	case c.traps == 0:
		c.traps = DefaultTraps
	}
	if c.log == nil {
		c.log = Logger()
	}
	return c
}

// Traps returns the set of conditions trapped by c.
func (c *Context[T]) Traps() Condition { return c.traps }

// Prec returns the nominal precision of T in bits.
func (c *Context[T]) Prec() uint {
	var zero T
	return zero.Prec()
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// New returns a T with value 0.
func (c *Context[T]) New() T {
	var zero T
	return zero
}

// NewFloat64 returns a T set to the value of x.
func (c *Context[T]) NewFloat64(x float64) T {
	return cascade.New[T](x)
}

// NewInt64 returns a T set to the value of x, rounded if |x| > 2**53 and T is
// too narrow.
func (c *Context[T]) NewInt64(x int64) T {
	hi := float64(x &^ (1<<11 - 1))
	return cascade.New[T](hi).AddFloat64(float64(x & (1<<11 - 1)))
}

// Parse returns the value of s, parsed as with cascade.Parse. A syntax error
// raises InvalidOperation and a value out of range raises Overflow.
func (c *Context[T]) Parse(s string) T {
	if c.err != nil {
		return c.New()
	}
	z, err := cascade.Parse[T](s)
	switch {
	case err == nil:
	case errors.Is(err, cascade.ErrRange):
		c.raise("parse", Overflow, err, s)
	default:
		c.raise("parse", InvalidOperation, err, s)
	}
	return z
}

// Add returns the sum x+y.
func (c *Context[T]) Add(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Add(y)
	c.check("add", z, x, y)
	return z
}

// Sub returns the difference x-y.
func (c *Context[T]) Sub(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Sub(y)
	c.check("sub", z, x, y)
	return z
}

// Mul returns the product x×y.
func (c *Context[T]) Mul(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Mul(y)
	c.check("mul", z, x, y)
	return z
}

// Quo returns the quotient x/y.
func (c *Context[T]) Quo(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Quo(y)
	c.check("quo", z, x, y)
	return z
}

// Sqrt returns the square root of x.
func (c *Context[T]) Sqrt(x T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Sqrt()
	c.check("sqrt", z, x)
	return z
}

// Cbrt returns the cube root of x.
func (c *Context[T]) Cbrt(x T) T {
	if c.err != nil {
		return c.New()
	}
	z := x.Cbrt()
	c.check("cbrt", z, x)
	return z
}

// Hypot returns √(x²+y²), avoiding unnecessary overflow and underflow.
func (c *Context[T]) Hypot(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Hypot(x, y)
	c.check("hypot", z, x, y)
	return z
}

// Exp returns e**x.
func (c *Context[T]) Exp(x T) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Exp(x)
	c.check("exp", z, x)
	return z
}

// Log returns the natural logarithm of x. Log(0) raises DivisionByZero.
func (c *Context[T]) Log(x T) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Log(x)
	c.check("log", z, x)
	return z
}

// Pow returns x**n. A zero x with a negative n raises DivisionByZero.
func (c *Context[T]) Pow(x T, n int) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Pow(x, n)
	c.check("pow", z, x)
	return z
}

// Fmod returns the remainder of x/y, truncated toward zero.
func (c *Context[T]) Fmod(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Fmod(x, y)
	c.check("fmod", z, x, y)
	return z
}

// Remainder returns the IEEE 754 remainder of x/y.
func (c *Context[T]) Remainder(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	z := cmath.Remainder(x, y)
	c.check("remainder", z, x, y)
	return z
}

// Min returns the smaller of x or y.
func (c *Context[T]) Min(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	return cmath.Min(x, y)
}

// Max returns the larger of x or y.
func (c *Context[T]) Max(x, y T) T {
	if c.err != nil {
		return c.New()
	}
	return cmath.Max(x, y)
}

// Erf returns the error function of x.
func (c *Context[T]) Erf(x T) T {
	if c.err != nil {
		return c.New()
	}
	return cmath.Erf(x)
}

// Erfc returns the complementary error function of x.
func (c *Context[T]) Erfc(x T) T {
	if c.err != nil {
		return c.New()
	}
	return cmath.Erfc(x)
}

// Neg returns x with its sign negated.
func (c *Context[T]) Neg(x T) T {
	if c.err != nil {
		return c.New()
	}
	return x.Neg()
}

// Abs returns the absolute value of x.
func (c *Context[T]) Abs(x T) T {
	if c.err != nil {
		return c.New()
	}
	return x.Abs()
}

func finite[T cascade.Number[T]](x T) bool { return !x.IsNaN() && !x.IsInf(0) }

// check detects the conditions raised by op with result z and operands args.
func (c *Context[T]) check(op string, z T, args ...T) {
	var cond Condition
	switch {
	case z.IsNaN():
		for _, x := range args {
			if x.IsNaN() {
				return
			}
		}
		cond = InvalidOperation
	case z.IsInf(0):
		for _, x := range args {
			if !finite(x) {
				return
			}
		}
		cond = Overflow
		switch op {
		case "quo":
			if args[1].IsZero() {
				cond = DivisionByZero
			}
		case "log", "pow":
			if args[0].IsZero() {
				cond = DivisionByZero
			}
		}
	case z.IsZero() && (op == "mul" || op == "quo" || op == "exp" || op == "pow"):
		for _, x := range args {
			if x.IsZero() || !finite(x) {
				return
			}
		}
		cond = Underflow
	default:
		return
	}
	ops := make([]string, len(args))
	for i, x := range args {
		ops[i] = x.Text('g', -1)
	}
	c.raise(op, cond, nil, ops...)
}

func (c *Context[T]) raise(op string, cond Condition, err error, operands ...string) {
	trapped := c.traps&cond != 0
	c.log.Debug("arithmetic condition",
		zap.String("op", op),
		zap.Stringer("condition", cond),
		zap.Strings("operands", operands),
		zap.Bool("trapped", trapped),
		zap.Error(err))
	if !trapped {
		return
	}
	e := &ArithmeticError{Op: op, Cond: cond, Operands: operands, Err: err}
	if c.panic {
		panic(e)
	}
	if c.err == nil {
		c.err = errors.WithStack(e)
	}
}
