// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for cascades. All functions are
// generic and work with any of cascade.DD, cascade.TD or cascade.QD.
//
// Unless noted otherwise, results are faithful: the error is bounded by a
// small multiple of the ulp of the last limb.
package math

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/db47h/cascade"
)

// pick returns the T among the given constants.
func pick[T cascade.Number[T]](dd cascade.DD, td cascade.TD, qd cascade.QD) (z T) {
	switch p := any(&z).(type) {
	case *cascade.DD:
		*p = dd
	case *cascade.TD:
		*p = td
	case *cascade.QD:
		*p = qd
	default:
		panic(fmt.Sprintf("cascade/math: unsupported type %T", z))
	}
	return z
}

func limbs[T cascade.Number[T]]() int {
	var zero T
	return int(zero.Prec()) / 53
}

// newtonSteps returns the number of Newton iterations needed to refine a
// float64 estimate to the full precision of T.
func newtonSteps[T cascade.Number[T]]() int {
	return 1 + bits.Len(uint(limbs[T]()-1))
}

// eps returns 2**-Prec for T.
func eps[T cascade.Number[T]]() float64 {
	var zero T
	return math.Ldexp(1, -int(zero.Prec()))
}

// Pow returns x**n. Pow(x, 0) is 1 for any x, NaN included.
func Pow[T cascade.Number[T]](x T, n int) T {
	if n < 0 {
		// -n overflows for math.MinInt but its uint64 conversion is right.
		return pow(x, uint64(-n)).Inv()
	}
	return pow(x, uint64(n))
}

// pow returns x**n by binary exponentiation.
func pow[T cascade.Number[T]](x T, n uint64) T {
	y := cascade.New[T](1)
	if n == 0 {
		return y
	}
	z := x
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Sqr()
		if z.IsInf(0) || z.IsZero() {
			break
		}
		n /= 2
	}
	return z.Mul(y)
}

// Min returns the smaller of x or y. If either is NaN, Min returns that NaN.
// Min(-0, +0) is -0.
func Min[T cascade.Number[T]](x, y T) T {
	switch {
	case x.IsNaN():
		return x
	case y.IsNaN():
		return y
	case x.IsZero() && y.IsZero():
		if x.Signbit() {
			return x
		}
		return y
	case x.Less(y):
		return x
	}
	return y
}

// Max returns the larger of x or y. If either is NaN, Max returns that NaN.
// Max(-0, +0) is +0.
func Max[T cascade.Number[T]](x, y T) T {
	switch {
	case x.IsNaN():
		return x
	case y.IsNaN():
		return y
	case x.IsZero() && y.IsZero():
		if x.Signbit() {
			return y
		}
		return x
	case x.Greater(y):
		return x
	}
	return y
}

// Hypot returns √(x²+y²), avoiding unnecessary overflow and underflow.
//
// Special cases are:
//
//	Hypot(±Inf, y) = +Inf
//	Hypot(x, ±Inf) = +Inf
//	Hypot(NaN, y) = NaN
//	Hypot(x, NaN) = NaN
func Hypot[T cascade.Number[T]](x, y T) T {
	switch {
	case x.IsInf(0) || y.IsInf(0):
		return cascade.New[T](math.Inf(1))
	case x.IsNaN():
		return x
	case y.IsNaN():
		return y
	}
	x, y = x.Abs(), y.Abs()
	if x.Less(y) {
		x, y = y, x
	}
	if x.IsZero() {
		return x
	}
	r := y.Quo(x)
	return x.Mul(r.Sqr().AddFloat64(1).Sqrt())
}

// Fmod returns the floating-point remainder of x/y. The result has the sign
// of x and its magnitude is less than |y|. The quotient x/y is truncated to an
// integer, so the result is exact only if |x/y| is below 2**Prec.
//
// Special cases are:
//
//	Fmod(±Inf, y) = NaN
//	Fmod(NaN, y) = NaN
//	Fmod(x, 0) = NaN
//	Fmod(x, ±Inf) = x
//	Fmod(x, NaN) = NaN
func Fmod[T cascade.Number[T]](x, y T) T {
	switch {
	case y.IsZero() || x.IsInf(0) || x.IsNaN() || y.IsNaN():
		return cascade.New[T](math.NaN())
	case y.IsInf(0):
		return x
	}
	ay := y.Abs()
	r := x.Sub(x.Quo(y).Trunc().Mul(y))
	// The rounded quotient may be one off.
	switch {
	case x.Sign() > 0 && r.Sign() < 0:
		r = r.Add(ay)
	case x.Sign() < 0 && r.Sign() > 0:
		r = r.Sub(ay)
	case r.Abs().GreaterEqual(ay):
		if r.Sign() > 0 {
			r = r.Sub(ay)
		} else {
			r = r.Add(ay)
		}
	}
	if r.IsZero() {
		return x.MulFloat64(0)
	}
	return r
}

// Remainder returns the IEEE 754 floating-point remainder of x/y: x - n×y
// where n is the integer nearest to x/y, ties to even.
//
// Special cases are the same as for Fmod.
func Remainder[T cascade.Number[T]](x, y T) T {
	switch {
	case y.IsZero() || x.IsInf(0) || x.IsNaN() || y.IsNaN():
		return cascade.New[T](math.NaN())
	case y.IsInf(0):
		return x
	}
	ay := y.Abs()
	r := x.Sub(x.Quo(y).RoundToEven().Mul(y))
	if r.Abs().Ldexp(1).Greater(ay) {
		if r.Sign() > 0 {
			r = r.Sub(ay)
		} else {
			r = r.Add(ay)
		}
	}
	if r.IsZero() {
		return x.MulFloat64(0)
	}
	return r
}
