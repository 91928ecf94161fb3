// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements cascade-to-string conversion functions.

package cascade

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// decimal is a decimal representation of a non-negative cascade. The value
// is 0.d[0]d[1]...d[nd-1] × 10**dp.
type decimal struct {
	d  []byte // ASCII digits, most significant first
	nd int    // number of valid digits in d
	dp int    // decimal point
}

// round rounds a to nd digits, half-up. If nd is zero, a is rounded just to
// the left of its digits, as in 0.09 -> 0.1. If nd is negative, a is set to
// zero.
func (a *decimal) round(nd int) {
	switch {
	case nd < 0:
		a.nd, a.dp = 0, 0
		return
	case nd >= a.nd:
		trim(a)
		return
	}
	if a.d[nd] >= '5' {
		a.roundUp(nd)
	} else {
		a.nd = nd
	}
	trim(a)
}

func (a *decimal) roundUp(nd int) {
	for i := nd - 1; i >= 0; i-- {
		if c := a.d[i]; c < '9' {
			a.d[i]++
			a.nd = i + 1
			return
		}
	}
	// all 9s
	a.d[0] = '1'
	a.nd = 1
	a.dp++
}

// trim trailing zeros from a.
func trim(a *decimal) {
	for a.nd > 0 && a.d[a.nd-1] == '0' {
		a.nd--
	}
	if a.nd == 0 {
		a.dp = 0
	}
}

// genDigits sets a to the first n significant decimal digits of |x|, without
// rounding. x must be finite and non-zero.
//
// Digits are produced by repeatedly taking the floor of the leading limb and
// multiplying the remainder by ten. Since the floor of the leading limb may be
// one off from the floor of the cascade, digits can fall out of the range
// 0..9; a final carry pass fixes them.
func genDigits(a *decimal, x []float64, n int) {
	w := min(len(x)+2, maxLimbs)
	var rb [maxLimbs]float64
	r := rb[:w]
	abs(r, x)

	e := int(math.Floor(math.Log10(r[0])))
	// Scaling a tiny cascade would lose its low-order products to gradual
	// underflow.
	k := 0
	if r[0] < 0x1p-900 {
		k = 512
		ldexp(r, r, k)
	}
	scale10(r, -e)
	if k != 0 {
		ldexp(r, r, -k)
	}
	switch {
	case r[0] >= 10:
		quoFloat(r, r, 10)
		e++
	case r[0] < 1:
		mulFloat(r, r, 10)
		e--
	}

	// dig[0] catches a carry out of the first digit.
	dig := make([]int8, n+1)
	for i := 1; i <= n; i++ {
		d := math.Floor(r[0])
		dig[i] = int8(d)
		addFloat(r, r, -d)
		if r[0] == 0 {
			break
		}
		mulFloat(r, r, 10)
	}
	for i := n; i > 0; i-- {
		switch {
		case dig[i] < 0:
			dig[i] += 10
			dig[i-1]--
		case dig[i] > 9:
			dig[i] -= 10
			dig[i-1]++
		}
	}

	s := 0
	for s < n && dig[s] == 0 {
		s++
	}
	if cap(a.d) < n+1-s {
		a.d = make([]byte, n+1-s)
	}
	a.d = a.d[:n+1-s]
	for i, d := range dig[s:] {
		a.d[i] = '0' + byte(d)
	}
	a.nd = len(a.d)
	a.dp = e + 2 - s
}

// digitsFor returns the number of significant digits that must be generated
// to format x with the given format and precision, rounding included.
func digitsFor(x0 float64, format byte, prec, shortest int) int {
	var n int
	switch format {
	case 'e', 'E':
		n = prec + 1
	case 'f':
		dp := int(math.Floor(math.Log10(math.Abs(x0)))) + 1
		n = max(dp+prec, 0)
	case 'g', 'G':
		n = max(prec, 1)
	}
	if prec < 0 {
		n = shortest
	}
	// one guard digit and one more in case the leading digit carries
	return min(n+2, maxDigits)
}

// appendCascade appends the string form of x to buf. digits is the number of
// significant digits used when prec < 0.
func appendCascade(buf []byte, x []float64, format byte, prec, digits int) []byte {
	x0 := x[0]
	switch {
	case x0 != x0:
		return append(buf, "NaN"...)
	case math.IsInf(x0, 1):
		return append(buf, "+Inf"...)
	case math.IsInf(x0, -1):
		return append(buf, "-Inf"...)
	}
	if format == 'F' {
		format = 'f'
	}
	switch format {
	case 'e', 'E', 'f', 'g', 'G':
	default:
		return append(buf, '%', format)
	}

	neg := math.Signbit(x0)
	shortest := prec < 0

	var (
		db [maxDigits + 2]byte
		d  = decimal{d: db[:0]}
	)
	if x0 != 0 {
		genDigits(&d, x, digitsFor(x0, format, prec, digits))
		switch {
		case shortest:
			shortestDigits(&d, x, digits)
		case format == 'e' || format == 'E':
			d.round(prec + 1)
		case format == 'f':
			d.round(d.dp + prec)
		default:
			d.round(max(prec, 1))
		}
	}

	if shortest {
		switch format {
		case 'e', 'E':
			prec = max(d.nd-1, 0)
		case 'f':
			prec = max(d.nd-d.dp, 0)
		case 'g', 'G':
			prec = d.nd
		}
	} else if (format == 'g' || format == 'G') && prec == 0 {
		prec = 1
	}
	return formatDigits(buf, shortest, neg, &d, prec, format)
}

// shortestDigits rounds d to the smallest number of digits that parses back
// to x. Most values need at most digits digits. Others, such as cascades whose
// limbs span a wide exponent range, are searched again from maxDigits
// generated digits. If even maxDigits digits do not parse back, d is left with
// maxDigits digits.
func shortestDigits(d *decimal, x []float64, digits int) {
	var (
		zb [maxLimbs]float64
		ab [maxLimbs]float64
		z  = zb[:len(x)]
		ax = ab[:len(x)]
		lo = 1
		hi = digits
	)
	abs(ax, x)
	if !parsesBack(d, digits, z, ax) {
		genDigits(d, x, maxDigits)
		lo, hi = digits+1, maxDigits
		if !parsesBack(d, hi, z, ax) {
			d.round(hi)
			return
		}
	}
	for lo < hi {
		m := (lo + hi) / 2
		if parsesBack(d, m, z, ax) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	d.round(hi)
}

// parsesBack reports whether d rounded to nd digits parses to ax. z is used as
// scratch space and d is not modified.
func parsesBack(d *decimal, nd int, z, ax []float64) bool {
	var (
		tb [maxDigits + 2]byte
		sb [maxDigits + 24]byte
	)
	t := decimal{d: append(tb[:0], d.d[:d.nd]...), nd: d.nd, dp: d.dp}
	t.round(nd)
	// ddd…de±exp
	buf := append(sb[:0], t.d[:t.nd]...)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(t.dp-t.nd), 10)
	return parse(z, string(buf)) == nil && cmp(z, ax) == 0
}

func formatDigits(buf []byte, shortest bool, neg bool, d *decimal, prec int, format byte) []byte {
	switch format {
	case 'e', 'E':
		return fmtE(buf, neg, d, prec, format)
	case 'f':
		return fmtF(buf, neg, d, prec)
	}
	// 'g', 'G'
	eprec := prec
	if eprec > d.nd && d.nd >= d.dp {
		eprec = d.nd
	}
	// %e is used if the exponent from the conversion is less than -4 or
	// greater than or equal to the precision. If precision was the shortest
	// possible, use eprec = 6 for this decision.
	if shortest {
		eprec = 6
	}
	exp := d.dp - 1
	if exp < -4 || exp >= eprec {
		if prec > d.nd {
			prec = d.nd
		}
		return fmtE(buf, neg, d, prec-1, format+'e'-'g')
	}
	if prec > d.dp {
		prec = d.nd
	}
	return fmtF(buf, neg, d, max(prec-d.dp, 0))
}

// %e: -d.ddddde±dd
func fmtE(buf []byte, neg bool, d *decimal, prec int, format byte) []byte {
	if neg {
		buf = append(buf, '-')
	}

	ch := byte('0')
	if d.nd != 0 {
		ch = d.d[0]
	}
	buf = append(buf, ch)

	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(d.nd, prec+1)
		if i < m {
			buf = append(buf, d.d[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	buf = append(buf, format)
	exp := d.dp - 1
	if d.nd == 0 {
		exp = 0
	}
	if exp < 0 {
		ch = '-'
		exp = -exp
	} else {
		ch = '+'
	}
	buf = append(buf, ch)

	// dd or ddd
	switch {
	case exp < 10:
		buf = append(buf, '0', byte(exp)+'0')
	case exp < 100:
		buf = append(buf, byte(exp/10)+'0', byte(exp%10)+'0')
	default:
		buf = append(buf, byte(exp/100)+'0', byte(exp/10)%10+'0', byte(exp%10)+'0')
	}
	return buf
}

// %f: -ddddddd.ddddd
func fmtF(buf []byte, neg bool, d *decimal, prec int) []byte {
	if neg {
		buf = append(buf, '-')
	}

	if d.dp > 0 {
		m := min(d.nd, d.dp)
		buf = append(buf, d.d[:m]...)
		for ; m < d.dp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			ch := byte('0')
			if j := d.dp + i; 0 <= j && j < d.nd {
				ch = d.d[j]
			}
			buf = append(buf, ch)
		}
	}
	return buf
}

// formatCascade implements fmt.Formatter for cascades. It accepts the formats
// 'e', 'E', 'f', 'F', 'g', 'G' and 'v' and 's' as 'g'. It also supports the
// flags '+' and ' ' for sign control, '0' for zero padding and '-' for left
// or right justification.
func formatCascade(s fmt.State, format rune, x []float64, digits int) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch format {
	case 'e', 'E', 'f':
		// nothing to do
	case 'F':
		format = 'f'
	case 'v', 's':
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(cascade=%s)", format, appendCascade(nil, x, 'g', -1, digits))
		return
	}

	var sbuf [maxDigits + 16]byte
	buf := appendCascade(sbuf[:0], x, byte(format), prec, digits)

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		if s.Flag(' ') {
			sign = " "
		}
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x[0]-x[0] == 0:
		// 0-padding on left
		io.WriteString(s, sign)
		io.WriteString(s, strings.Repeat("0", padding))
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		io.WriteString(s, sign)
		s.Write(buf)
		io.WriteString(s, strings.Repeat(" ", padding))
	default:
		// padding on left
		io.WriteString(s, strings.Repeat(" ", padding))
		io.WriteString(s, sign)
		s.Write(buf)
	}
}
