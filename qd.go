// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

const (
	qdLimbs  = 4
	qdPrec   = qdLimbs * 53
	qdDigits = 66
)

// A QD is a quad-double: an unevaluated sum of four float64 limbs that
// carries about 212 bits (63 decimal digits) of precision.
//
// The zero value for a QD is +0. Like DD and TD, QD values are immutable and
// their limbs are kept in canonical form.
type QD struct {
	l [qdLimbs]float64
}

// NewQD returns a QD set to the value of x.
func NewQD(x float64) QD {
	var z QD
	setSpecial(z.l[:], x)
	return z
}

// NewQDFromInt64 returns a QD set to the exact value of x.
func NewQDFromInt64(x int64) (z QD) {
	setInt64(z.l[:], x)
	return z.valid()
}

// NewQDFromUint64 returns a QD set to the exact value of x.
func NewQDFromUint64(x uint64) (z QD) {
	setUint64(z.l[:], x)
	return z.valid()
}

// NewQDFromLimbs returns the QD nearest to the exact sum of limbs.
func NewQDFromLimbs(limbs ...float64) (z QD) {
	renorm(z.l[:], limbs)
	return z.valid()
}

// NewQDFromBigFloat returns the QD nearest to x.
func NewQDFromBigFloat(x *big.Float) (z QD) {
	setBigFloat(z.l[:], x)
	return z.valid()
}

// NewQDFromDecimal returns the QD nearest to x.
func NewQDFromDecimal(x *apd.Decimal) (z QD) {
	setDecimal(z.l[:], x)
	return z.valid()
}

// ParseQD parses s and returns the nearest QD. It accepts the same syntax
// as ParseDD.
func ParseQD(s string) (z QD, err error) {
	err = parse(z.l[:], s)
	return z.valid(), err
}

// MustParseQD is like ParseQD but panics on error.
func MustParseQD(s string) QD {
	z, err := ParseQD(s)
	if err != nil {
		panic(err)
	}
	return z
}

func (x QD) valid() QD {
	if debugCascade {
		validate(x.l[:])
	}
	return x
}

// Prec returns the nominal precision of a QD in bits.
func (QD) Prec() uint { return qdPrec }

// Limbs returns the limbs of x, leading limb first.
func (x QD) Limbs() [qdLimbs]float64 { return x.l }

// Float64 returns the float64 nearest to x.
func (x QD) Float64() float64 { return x.l[0] }

// BigFloat sets z to the exact value of x and returns z. See DD.BigFloat.
func (x QD) BigFloat(z *big.Float) *big.Float { return bigFloat(z, x.l[:]) }

// Decimal sets z to the exact value of x and returns z.
func (x QD) Decimal(z *apd.Decimal) *apd.Decimal { return toDecimal(z, x.l[:]) }

func (x QD) Sign() int              { return sign(x.l[:]) }
func (x QD) Signbit() bool          { return math.Signbit(x.l[0]) }
func (x QD) IsNaN() bool            { return x.l[0] != x.l[0] }
func (x QD) IsInf(sign int) bool    { return math.IsInf(x.l[0], sign) }
func (x QD) IsZero() bool           { return x.l[0] == 0 }
func (x QD) IsInt() bool            { return isInt(x.l[:]) }
func (x QD) Cmp(y QD) int           { return cmp(x.l[:], y.l[:]) }
func (x QD) Equal(y QD) bool        { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) == 0 }
func (x QD) Less(y QD) bool         { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0 }
func (x QD) LessEqual(y QD) bool    { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0 }
func (x QD) Greater(y QD) bool      { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) > 0 }
func (x QD) GreaterEqual(y QD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) >= 0 }

// Add returns x+y.
func (x QD) Add(y QD) (z QD) {
	add(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Sub returns x-y.
func (x QD) Sub(y QD) (z QD) {
	sub(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Mul returns the QD nearest to x×y. All sixteen partial products are
// computed exactly before rounding.
func (x QD) Mul(y QD) (z QD) {
	mul(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Quo returns x/y.
func (x QD) Quo(y QD) (z QD) {
	quo(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

func (x QD) AddFloat64(y float64) (z QD) {
	addFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x QD) MulFloat64(y float64) (z QD) {
	mulFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x QD) QuoFloat64(y float64) (z QD) {
	quoFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x QD) Neg() (z QD) {
	neg(z.l[:], x.l[:])
	return z
}

func (x QD) Abs() (z QD) {
	abs(z.l[:], x.l[:])
	return z
}

func (x QD) Sqr() QD { return x.Mul(x) }
func (x QD) Inv() QD { return NewQD(1).Quo(x) }

// Sqrt returns the square root of x.
func (x QD) Sqrt() (z QD) {
	sqrt(z.l[:], x.l[:])
	return z.valid()
}

// Cbrt returns the cube root of x.
func (x QD) Cbrt() (z QD) {
	cbrt(z.l[:], x.l[:])
	return z.valid()
}

func (x QD) Ldexp(exp int) (z QD) {
	ldexp(z.l[:], x.l[:], exp)
	return z.valid()
}

func (x QD) Floor() (z QD) {
	floor(z.l[:], x.l[:])
	return z.valid()
}

func (x QD) Ceil() (z QD) {
	ceil(z.l[:], x.l[:])
	return z.valid()
}

func (x QD) Trunc() (z QD) {
	trunc(z.l[:], x.l[:])
	return z.valid()
}

func (x QD) Round() (z QD) {
	round(z.l[:], x.l[:], false)
	return z.valid()
}

func (x QD) RoundToEven() (z QD) {
	round(z.l[:], x.l[:], true)
	return z.valid()
}

// Text converts x to a string according to the given format and precision.
// See DD.Text.
func (x QD) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, qdDigits+8), format, prec))
}

func (x QD) Append(buf []byte, format byte, prec int) []byte {
	return appendCascade(buf, x.l[:], format, prec, qdDigits)
}

func (x QD) String() string                  { return x.Text('g', -1) }
func (x QD) Format(s fmt.State, format rune) { formatCascade(s, format, x.l[:], qdDigits) }

var _ fmt.Scanner = (*QD)(nil)

// Scan is a support routine for fmt.Scanner.
func (z *QD) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	var t QD
	if err := scan(t.l[:], byteReader{s}); err != nil {
		return err
	}
	*z = t
	return nil
}
