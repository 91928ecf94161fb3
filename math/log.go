// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/cascade"
)

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log[T cascade.Number[T]](x T) T {
	switch {
	case x.IsNaN() || x.IsInf(1):
		return x
	case x.Sign() < 0:
		return cascade.New[T](math.NaN())
	case x.IsZero():
		return cascade.New[T](math.Inf(-1))
	}

	// Scale x near 1 if Exp(-Log(x)) would overflow or underflow:
	// log(x) = log(x×2**-e) + e×log(2)
	var k int
	if _, e := math.Frexp(x.Float64()); e > 512 || e < -512 {
		k = e
		x = x.Ldexp(-e)
	}

	// Newton iteration on f(y) = x×e**-y - 1:
	//	y' = y + x×e**-y - 1 = y + x×(e**-y - 1) + (x - 1)
	xm1 := x.AddFloat64(-1)
	y := cascade.New[T](math.Log(x.Float64()))
	if !xm1.IsZero() {
		for i := newtonSteps[T](); i > 0; i-- {
			y = y.Add(x.Mul(Expm1(y.Neg())).Add(xm1))
		}
	} else {
		y = xm1
	}
	if k != 0 {
		y = y.Add(pick[T](cascade.DDLn2, cascade.TDLn2, cascade.QDLn2).MulFloat64(float64(k)))
	}
	return y
}

// Log2 returns the binary logarithm of x.
func Log2[T cascade.Number[T]](x T) T {
	return Log(x).Mul(pick[T](cascade.DDLog2E, cascade.TDLog2E, cascade.QDLog2E))
}

// Log10 returns the decimal logarithm of x.
func Log10[T cascade.Number[T]](x T) T {
	return Log(x).Mul(pick[T](cascade.DDLog10E, cascade.TDLog10E, cascade.QDLog10E))
}
