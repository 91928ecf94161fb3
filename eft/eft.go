// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eft implements error-free transforms of float64 operations.
//
// An error-free transform computes both the rounded result of a single IEEE
// operation and the rounding error of that operation, such that
//
//	a ⊕ b = s + e
//
// holds exactly as real numbers. They are the building blocks of double-double
// and longer floating-point cascades.
//
// None of the functions in this package panic. Non-finite results propagate
// per IEEE-754 rules and their error term is 0.
package eft

import "math"

// TwoSum returns s = fl(a+b) and the exact error e = a + b - s.
//
// TwoSum is Knuth's branch-free algorithm and does not require |a| >= |b|. The
// result is exact for all finite inputs as long as a+b does not overflow. If
// it does, s is ±Inf and e is 0.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	bv := s - a
	av := s - bv
	e = (a - av) + (b - bv)
	if e != e || math.IsInf(e, 0) {
		e = 0
	}
	return s, e
}

// FastTwoSum returns s = fl(a+b) and the exact error e = a + b - s.
//
// It requires |a| >= |b| or a == 0. Results are undefined otherwise.
func FastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// TwoDiff returns s = fl(a-b) and the exact error e = a - b - s.
func TwoDiff(a, b float64) (s, e float64) {
	return TwoSum(a, -b)
}

// ThreeSum returns s = fl(a+b+c) and two error terms such that
// a + b + c = s + e1 + e2 exactly.
func ThreeSum(a, b, c float64) (s, e1, e2 float64) {
	t1, t2 := TwoSum(a, b)
	s, t3 := TwoSum(c, t1)
	e1, e2 = TwoSum(t2, t3)
	return s, e1, e2
}

// TwoProd returns p = fl(a×b) and the exact error e = a×b - p.
//
// The error is computed with a fused multiply-add, which math.FMA guarantees
// to be exact on every platform. The result is exact unless a×b underflows.
func TwoProd(a, b float64) (p, e float64) {
	p = a * b
	if p-p != 0 {
		// ±Inf or NaN
		return p, 0
	}
	return p, math.FMA(a, b, -p)
}

// TwoSqr is like TwoProd(a, a).
func TwoSqr(a float64) (p, e float64) {
	return TwoProd(a, a)
}

const (
	splitter    = 1<<27 + 1 // 2^ceil(53/2) + 1
	splitThresh = 0x1p996   // above this, a*splitter may overflow
	splitDown   = 0x1p-28
	splitUp     = 0x1p28
)

// Split splits a into two non-overlapping halves such that a = hi + lo and
// both hi and lo fit in 26 bits of significand.
//
// Operands close to the top of the exponent range are scaled down before
// splitting and scaled back afterwards, so the split never overflows.
func Split(a float64) (hi, lo float64) {
	if a > splitThresh || a < -splitThresh {
		a *= splitDown
		t := splitter * a
		hi = t - (t - a)
		lo = a - hi
		return hi * splitUp, lo * splitUp
	}
	t := splitter * a
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// TwoProdDekker is like TwoProd but computes the error term with Dekker's
// algorithm instead of a fused multiply-add.
//
// The result is exact unless a×b overflows or one of the half products
// underflows.
func TwoProdDekker(a, b float64) (p, e float64) {
	p = a * b
	if p-p != 0 {
		return p, 0
	}
	ah, al := Split(a)
	bh, bl := Split(b)
	e = ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return p, e
}

// TwoDiv returns q = fl(a/b) and a correction term e such that q + e is a
// faithful approximation of a/b to about twice the precision of q.
//
// Unlike the other transforms, the remainder of a division is not exactly
// representable in general; e is computed as (a - q×b - perr)/b where q×b and
// perr are the exact product and error from TwoProd(q, b).
//
// Division by zero or a non-finite quotient yields e = 0.
func TwoDiv(a, b float64) (q, e float64) {
	q = a / b
	if q-q != 0 || b == 0 {
		return q, 0
	}
	p, perr := TwoProd(q, b)
	e = ((a - p) - perr) / b
	return q, e
}
