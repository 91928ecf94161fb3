// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/cascade"
)

const (
	// bounds of the arguments of Exp that yield a finite non-zero result
	maxExp = 7.09782712893383973096e+02 // log(MaxFloat64)
	minExp = -7.45133219101941108420e+02

	// number of squarings after Taylor expansion. Arguments are divided by
	// 2**expSquarings before summing the series.
	expSquarings = 10
)

// Exp returns e**x, the base-e exponential of x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(NaN) = NaN
//
// Very large values overflow to 0 or +Inf.
func Exp[T cascade.Number[T]](x T) T {
	x0 := x.Float64()
	switch {
	case x.IsNaN():
		return x
	case x0 > maxExp:
		return cascade.New[T](math.Inf(1))
	case x0 < minExp:
		return cascade.New[T](0)
	case x.IsZero():
		return cascade.New[T](1)
	}
	// x = m×ln2 + r, |r| <= ln2/2
	m := math.Floor(x0/math.Ln2 + 0.5)
	r := x.Sub(pick[T](cascade.DDLn2, cascade.TDLn2, cascade.QDLn2).MulFloat64(m))
	return expm1(r).AddFloat64(1).Ldexp(int(m))
}

// Expm1 returns e**x - 1. It is more accurate than Exp(x) - 1 when x is near
// zero.
//
// Special cases are:
//
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
func Expm1[T cascade.Number[T]](x T) T {
	switch {
	case x.IsNaN() || x.IsZero():
		return x
	case math.Abs(x.Float64()) > 0.5:
		return Exp(x).AddFloat64(-1)
	}
	return expm1(x)
}

// expm1 returns e**r - 1 for |r| <= 1/2.
func expm1[T cascade.Number[T]](r T) T {
	// e**r - 1 = s where s is computed from s' = e**(r/2**k) - 1 by squaring:
	//	e**2a - 1 = (e**a - 1)×(e**a + 1) = 2s' + s'²
	r = r.Ldexp(-expSquarings)
	var (
		s   = r
		t   = r
		tol = eps[T]() / 4
	)
	for i := 2; i < 64; i++ {
		t = t.Mul(r).QuoFloat64(float64(i))
		s = s.Add(t)
		if math.Abs(t.Float64()) <= tol*math.Abs(s.Float64()) {
			break
		}
	}
	for i := 0; i < expSquarings; i++ {
		s = s.Ldexp(1).Add(s.Sqr())
	}
	return s
}
