// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between cascades of different widths and
// to or from other numeric types.

package cascade

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// TD returns x as a TD. The conversion is exact.
func (x DD) TD() TD { return TD{[tdLimbs]float64{x.l[0], x.l[1]}} }

// QD returns x as a QD. The conversion is exact.
func (x DD) QD() QD { return QD{[qdLimbs]float64{x.l[0], x.l[1]}} }

// DD returns the DD nearest to x.
func (x TD) DD() (z DD) {
	renorm(z.l[:], x.l[:])
	return z
}

// QD returns x as a QD. The conversion is exact.
func (x TD) QD() QD { return QD{[qdLimbs]float64{x.l[0], x.l[1], x.l[2]}} }

// DD returns the DD nearest to x.
func (x QD) DD() (z DD) {
	renorm(z.l[:], x.l[:])
	return z
}

// TD returns the TD nearest to x.
func (x QD) TD() (z TD) {
	renorm(z.l[:], x.l[:])
	return z
}

// lowBits is the mask of the bits of a uint64 that do not fit in the 53-bit
// significand of the high part.
const lowBits = 1<<11 - 1

func setUint64(z []float64, x uint64) {
	hi, lo := float64(x&^lowBits), float64(x&lowBits)
	var buf [2]float64
	buf[0], buf[1] = hi, lo
	renorm(z, buf[:])
}

func setInt64(z []float64, x int64) {
	if x >= 0 {
		setUint64(z, uint64(x))
		return
	}
	setUint64(z, uint64(-x)) // -MinInt64 wraps to 1<<63 as expected
	neg(z, z)
}

// bigFloat sets z to the exact value of x. See DD.BigFloat.
func bigFloat(z *big.Float, x []float64) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	x0 := x[0]
	switch {
	case x0 != x0:
		panic(ErrNaN{"conversion of NaN to big.Float"})
	case math.IsInf(x0, 0) || x0 == 0:
		if z.Prec() == 0 {
			z.SetPrec(53)
		}
		return z.SetFloat64(x0)
	}
	if z.Prec() == 0 {
		// span of the significant bits of x
		_, hi := math.Frexp(x0)
		lo := hi
		for _, l := range x[1:] {
			if l == 0 {
				break
			}
			_, lo = math.Frexp(l)
		}
		z.SetPrec(uint(hi-lo) + 53)
	}
	z.SetFloat64(0)
	t := new(big.Float)
	for _, l := range x {
		if l == 0 {
			break
		}
		z.Add(z, t.SetFloat64(l))
	}
	return z
}

// setBigFloat sets z to the cascade nearest to x. A few more limbs than
// needed are peeled off x, each being the float64 nearest to what remains,
// and then renormalized.
func setBigFloat(z []float64, x *big.Float) {
	if x.IsInf() {
		setSpecial(z, math.Inf(x.Sign()))
		return
	}
	if x.Sign() == 0 {
		setSpecial(z, 0)
		if x.Signbit() {
			z[0] = negZero
		}
		return
	}
	var buf [maxLimbs + 2]float64
	raw := buf[:0]
	r := new(big.Float).SetPrec(x.MinPrec() + 2).Set(x)
	t := new(big.Float)
	for len(raw) < len(z)+2 {
		l, _ := r.Float64()
		if l == 0 {
			break
		}
		raw = append(raw, l)
		if isSpecial(l) {
			break
		}
		r.Sub(r, t.SetFloat64(l)) // exact
	}
	renorm(z, raw)
}

// toDecimal sets z to the exact decimal value of x.
func toDecimal(z *apd.Decimal, x []float64) *apd.Decimal {
	if z == nil {
		z = new(apd.Decimal)
	}
	x0 := x[0]
	switch {
	case x0 != x0:
		z.Form, z.Negative = apd.NaN, false
		z.Coeff.SetInt64(0)
		return z
	case math.IsInf(x0, 0):
		z.Form, z.Negative = apd.Infinite, x0 < 0
		z.Coeff.SetInt64(0)
		return z
	}
	z.SetInt64(0)
	var (
		m = new(big.Int)
		p = new(big.Int)
		d apd.Decimal
	)
	for _, l := range x {
		if l == 0 {
			break
		}
		// l = m×2**e = m×5**-e×10**e for e < 0
		f, e := math.Frexp(l)
		m.SetInt64(int64(f * (1 << 53)))
		e -= 53
		if e >= 0 {
			m.Lsh(m, uint(e))
			e = 0
		} else {
			m.Mul(m, pow5(p, uint64(-e)))
		}
		d.Coeff.SetMathBigInt(m.Abs(m))
		d.Negative = l < 0
		d.Exponent = int32(e)
		d.Form = apd.Finite
		// BaseContext has no precision limit, so the sum is exact.
		_, _ = apd.BaseContext.Add(z, z, &d)
	}
	if z.IsZero() {
		z.Negative = math.Signbit(x0)
		return z
	}
	z.Reduce(z)
	return z
}

// setDecimal sets z to the cascade nearest to x.
func setDecimal(z []float64, x *apd.Decimal) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		setSpecial(z, math.NaN())
		return
	case apd.Infinite:
		if x.Negative {
			setSpecial(z, math.Inf(-1))
		} else {
			setSpecial(z, math.Inf(1))
		}
		return
	}
	if err := parse(z, x.Text('e')); err != nil && !isRangeErr(err) {
		setSpecial(z, math.NaN())
	}
}
