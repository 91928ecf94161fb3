// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic on cascades of any width up to maxLimbs.
// All functions take canonical operands and write a canonical result into z.
// z may alias an operand.

package cascade

import (
	"math"
	"math/bits"

	"github.com/db47h/cascade/eft"
)

// neg sets z to -x. z may be wider than x, in which case it is padded with
// zeros.
func neg(z, x []float64) {
	z[0] = -x[0]
	for i := 1; i < len(z); i++ {
		if i < len(x) && x[i] != 0 {
			z[i] = -x[i]
		} else {
			z[i] = 0
		}
	}
}

// abs sets z to |x|, with the same padding rules as neg.
func abs(z, x []float64) {
	if math.Signbit(x[0]) {
		neg(z, x)
		return
	}
	n := copy(z, x)
	for i := n; i < len(z); i++ {
		z[i] = 0
	}
}

func add(z, x, y []float64) {
	if x[0] == 0 && y[0] == 0 {
		setSpecial(z, x[0]+y[0])
		return
	}
	var buf [2 * maxLimbs]float64
	raw := append(append(buf[:0], x...), y...)
	renorm(z, raw)
}

func sub(z, x, y []float64) {
	var buf [maxLimbs]float64
	t := buf[:len(y)]
	neg(t, y)
	add(z, x, t)
}

func addFloat(z, x []float64, y float64) {
	if x[0] == 0 && y == 0 {
		setSpecial(z, x[0]+y)
		return
	}
	var buf [maxLimbs + 1]float64
	raw := append(append(buf[:0], x...), y)
	renorm(z, raw)
}

// mul sets z to x×y. The exact product of all limb pairs is renormalized, so
// the result is the cascade nearest to the exact product.
func mul(z, x, y []float64) {
	if p := x[0] * y[0]; isSpecial(p) {
		if overflows(p, x[0], y[0]) {
			mulScaled(z, x, y, mul)
			return
		}
		setSpecial(z, p)
		return
	}
	var buf [maxExpansion]float64
	raw := buf[:0]
	for _, xi := range x {
		if xi == 0 {
			break
		}
		for _, yj := range y {
			if yj == 0 {
				break
			}
			p, e := eft.TwoProd(xi, yj)
			raw = append(raw, p, e)
		}
	}
	renorm(z, raw)
}

// overflows reports whether the product p of the finite leading limbs x0 and
// y0 overflowed while the exact product of two cascades may still be finite.
func overflows(p, x0, y0 float64) bool {
	return math.IsInf(p, 0) && x0-x0 == 0 && y0-y0 == 0 && !math.IsInf(0.25*x0*y0, 0)
}

// mulScaled sets z to x×y computed as (x/4 × y) × 4 with the multiplication
// f.
func mulScaled(z, x, y []float64, f func(z, x, y []float64)) {
	var buf [maxLimbs]float64
	t := buf[:len(x)]
	ldexp(t, x, -2)
	f(z, t, y)
	ldexp(z, z, 2)
}

// mul2 is the double-double product. Partial products below the precision of
// the result are not computed and the cross terms are rounded once.
func mul2(z, x, y []float64) {
	p, e := eft.TwoProd(x[0], y[0])
	if isSpecial(p) {
		if overflows(p, x[0], y[0]) {
			mulScaled(z, x, y, mul2)
			return
		}
		setSpecial(z, p)
		return
	}
	e += x[0]*y[1] + x[1]*y[0]
	renorm(z, []float64{p, e})
}

func mulFloat(z, x []float64, y float64) {
	if p := x[0] * y; isSpecial(p) {
		if overflows(p, x[0], y) {
			mulScaled(z, x, []float64{y}, func(z, x, y []float64) { mulFloat(z, x, y[0]) })
			return
		}
		setSpecial(z, p)
		return
	}
	var buf [2 * maxLimbs]float64
	raw := buf[:0]
	for _, xi := range x {
		if xi == 0 {
			break
		}
		p, e := eft.TwoProd(xi, y)
		raw = append(raw, p, e)
	}
	renorm(z, raw)
}

// quo sets z to x/y by long division: each quotient digit is computed from
// the leading limbs of the current residual, and the residual is updated
// exactly before being rounded back to len(z)+1 limbs.
func quo(z, x, y []float64) {
	n := len(z)
	if q0 := x[0] / y[0]; isSpecial(q0) {
		setSpecial(z, q0)
		return
	}
	var (
		q   [maxLimbs + 1]float64
		r   [maxLimbs + 1]float64
		raw [3*maxLimbs + 1]float64
	)
	rw := n + 1
	copy(r[:], x)
	for i := range q[:n+1] {
		qi := r[0] / y[0]
		q[i] = qi
		if i == n {
			break
		}
		t := append(raw[:0], r[:rw]...)
		for _, yj := range y {
			if yj == 0 {
				break
			}
			p, e := eft.TwoProd(-qi, yj)
			t = append(t, p, e)
		}
		renorm(r[:rw], t)
		if r[0] == 0 || r[0]-r[0] != 0 {
			break
		}
	}
	renorm(z, q[:n+1])
}

func quoFloat(z, x []float64, y float64) {
	var buf [maxLimbs]float64
	t := buf[:len(z)]
	setSpecial(t, y)
	quo(z, x, t)
}

// newtonSteps returns the number of Newton iterations needed to refine a
// float64 estimate to n limbs.
func newtonSteps(n int) int {
	return 1 + bits.Len(uint(n-1))
}

// sqrt sets z to √a. Negative operands and NaNs yield NaN; ±0 and +Inf are
// returned unchanged.
func sqrt(z, a []float64) {
	a0 := a[0]
	if isSpecial(a0) || a0 < 0 {
		setSpecial(z, math.Sqrt(a0))
		return
	}
	var xb, tb [maxLimbs]float64
	n := len(z)
	x, t := xb[:n], tb[:n]
	// x += (a - x²)/x × 1/2
	setSpecial(x, math.Sqrt(a0))
	for i := newtonSteps(n); i > 0; i-- {
		mul(t, x, x)
		sub(t, a, t)
		quo(t, t, x)
		ldexp(t, t, -1)
		add(x, x, t)
	}
	copy(z, x)
}

// cbrt sets z to the cube root of a.
func cbrt(z, a []float64) {
	a0 := a[0]
	if isSpecial(a0) {
		setSpecial(z, math.Cbrt(a0))
		return
	}
	var xb, tb [maxLimbs]float64
	n := len(z)
	x, t := xb[:n], tb[:n]
	// x += (a/x² - x)/3
	setSpecial(x, math.Cbrt(a0))
	for i := newtonSteps(n); i > 0; i-- {
		mul(t, x, x)
		quo(t, a, t)
		sub(t, t, x)
		quoFloat(t, t, 3)
		add(x, x, t)
	}
	copy(z, x)
}

// ldexp sets z to x×2**exp.
func ldexp(z, x []float64, exp int) {
	z0 := math.Ldexp(x[0], exp)
	if isSpecial(z0) {
		setSpecial(z, z0)
		return
	}
	var buf [maxLimbs]float64
	t := buf[:len(x)]
	for i, l := range x {
		t[i] = math.Ldexp(l, exp)
	}
	renorm(z, t)
}

// roundInt sets z to x rounded to an integer with f applied to the limbs.
// The first non-integer limb is rounded and the following ones dropped.
func roundInt(z, x []float64, f func(float64) float64) {
	if isSpecial(x[0]) {
		copy(z, x)
		return
	}
	var buf [maxLimbs]float64
	t := buf[:len(x)]
	for i, l := range x {
		r := f(l)
		t[i] = r
		if r != l {
			break
		}
	}
	renorm(z, t)
	if z[0] == 0 {
		// keep the sign of x
		z[0] = math.Copysign(0, x[0])
	}
}

func floor(z, x []float64) { roundInt(z, x, math.Floor) }
func ceil(z, x []float64)  { roundInt(z, x, math.Ceil) }

func trunc(z, x []float64) {
	if math.Signbit(x[0]) {
		ceil(z, x)
		return
	}
	floor(z, x)
}

// round sets z to the nearest integer to x. Half-way cases are rounded away
// from zero if even is false, to the nearest even integer otherwise.
func round(z, x []float64, even bool) {
	if isSpecial(x[0]) {
		copy(z, x)
		return
	}
	var tb, fb [maxLimbs]float64
	n := len(x)
	t, f := tb[:n], fb[:n]
	trunc(t, x)
	sub(f, x, t)
	abs(f, f)
	c := cmpFloat(f, 0.5)
	if c > 0 || c == 0 && (!even || isOdd(t)) {
		addFloat(t, t, math.Copysign(1, x[0]))
	}
	copy(z, t)
	if z[0] == 0 {
		z[0] = math.Copysign(0, x[0])
	}
}

// isInt reports whether x is an integer. All limbs of an integer cascade are
// integers.
func isInt(x []float64) bool {
	for _, l := range x {
		if l-l != 0 || math.Trunc(l) != l {
			return false
		}
	}
	return true
}

// isOdd reports whether the integer cascade x is odd.
func isOdd(x []float64) bool {
	odd := false
	for _, l := range x {
		if math.Mod(l, 2) != 0 {
			odd = !odd
		}
	}
	return odd
}

// cmp compares x and y and returns -1, 0 or +1. NaNs compare less than any
// other value and equal to each other, and -0 == +0.
func cmp(x, y []float64) int {
	xn, yn := x[0] != x[0], y[0] != y[0]
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	for i := range x {
		var yi float64
		if i < len(y) {
			yi = y[i]
		}
		switch {
		case x[i] < yi:
			return -1
		case x[i] > yi:
			return 1
		}
	}
	for _, yi := range y[min(len(x), len(y)):] {
		switch {
		case yi > 0:
			return -1
		case yi < 0:
			return 1
		}
	}
	return 0
}

func cmpFloat(x []float64, y float64) int {
	return cmp(x, []float64{y})
}

func sign(x []float64) int {
	switch {
	case x[0] < 0:
		return -1
	case x[0] > 0:
		return 1
	}
	return 0
}
