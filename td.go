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
	tdLimbs  = 3
	tdPrec   = tdLimbs * 53
	tdDigits = 50
)

// A TD is a triple-double: an unevaluated sum of three float64 limbs that
// carries about 159 bits (47 decimal digits) of precision.
//
// TD follows the same rules as DD: the zero value is +0, values are
// immutable and always in canonical form.
type TD struct {
	l [tdLimbs]float64
}

// NewTD returns a TD set to the value of x.
func NewTD(x float64) TD {
	var z TD
	setSpecial(z.l[:], x)
	return z
}

// NewTDFromInt64 returns a TD set to the exact value of x.
func NewTDFromInt64(x int64) (z TD) {
	setInt64(z.l[:], x)
	return z.valid()
}

// NewTDFromUint64 returns a TD set to the exact value of x.
func NewTDFromUint64(x uint64) (z TD) {
	setUint64(z.l[:], x)
	return z.valid()
}

// NewTDFromLimbs returns the TD nearest to the exact sum of limbs.
func NewTDFromLimbs(limbs ...float64) (z TD) {
	renorm(z.l[:], limbs)
	return z.valid()
}

// NewTDFromBigFloat returns the TD nearest to x.
func NewTDFromBigFloat(x *big.Float) (z TD) {
	setBigFloat(z.l[:], x)
	return z.valid()
}

// NewTDFromDecimal returns the TD nearest to x.
func NewTDFromDecimal(x *apd.Decimal) (z TD) {
	setDecimal(z.l[:], x)
	return z.valid()
}

// ParseTD is like ParseDD for TD values.
func ParseTD(s string) (z TD, err error) {
	err = parse(z.l[:], s)
	return z.valid(), err
}

// MustParseTD is like ParseTD but panics on error.
func MustParseTD(s string) TD {
	z, err := ParseTD(s)
	if err != nil {
		panic(err)
	}
	return z
}

func (x TD) valid() TD {
	if debugCascade {
		validate(x.l[:])
	}
	return x
}

// Prec returns the nominal precision of a TD in bits.
func (TD) Prec() uint { return tdPrec }

// Limbs returns the limbs of x, leading limb first.
func (x TD) Limbs() [tdLimbs]float64 { return x.l }

// Float64 returns the float64 nearest to x.
func (x TD) Float64() float64 { return x.l[0] }

// BigFloat sets z to the exact value of x and returns z. See DD.BigFloat.
func (x TD) BigFloat(z *big.Float) *big.Float { return bigFloat(z, x.l[:]) }

// Decimal sets z to the exact value of x and returns z.
func (x TD) Decimal(z *apd.Decimal) *apd.Decimal { return toDecimal(z, x.l[:]) }

func (x TD) Sign() int              { return sign(x.l[:]) }
func (x TD) Signbit() bool          { return math.Signbit(x.l[0]) }
func (x TD) IsNaN() bool            { return x.l[0] != x.l[0] }
func (x TD) IsInf(sign int) bool    { return math.IsInf(x.l[0], sign) }
func (x TD) IsZero() bool           { return x.l[0] == 0 }
func (x TD) IsInt() bool            { return isInt(x.l[:]) }
func (x TD) Cmp(y TD) int           { return cmp(x.l[:], y.l[:]) }
func (x TD) Equal(y TD) bool        { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) == 0 }
func (x TD) Less(y TD) bool         { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0 }
func (x TD) LessEqual(y TD) bool    { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0 }
func (x TD) Greater(y TD) bool      { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) > 0 }
func (x TD) GreaterEqual(y TD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) >= 0 }

// Add returns x+y.
func (x TD) Add(y TD) (z TD) {
	add(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Sub returns x-y.
func (x TD) Sub(y TD) (z TD) {
	sub(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Mul returns the TD nearest to x×y.
func (x TD) Mul(y TD) (z TD) {
	mul(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Quo returns x/y.
func (x TD) Quo(y TD) (z TD) {
	quo(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

func (x TD) AddFloat64(y float64) (z TD) {
	addFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x TD) MulFloat64(y float64) (z TD) {
	mulFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x TD) QuoFloat64(y float64) (z TD) {
	quoFloat(z.l[:], x.l[:], y)
	return z.valid()
}

func (x TD) Neg() (z TD) {
	neg(z.l[:], x.l[:])
	return z
}

func (x TD) Abs() (z TD) {
	abs(z.l[:], x.l[:])
	return z
}

func (x TD) Sqr() TD { return x.Mul(x) }
func (x TD) Inv() TD { return NewTD(1).Quo(x) }

// Sqrt returns the square root of x.
func (x TD) Sqrt() (z TD) {
	sqrt(z.l[:], x.l[:])
	return z.valid()
}

// Cbrt returns the cube root of x.
func (x TD) Cbrt() (z TD) {
	cbrt(z.l[:], x.l[:])
	return z.valid()
}

func (x TD) Ldexp(exp int) (z TD) {
	ldexp(z.l[:], x.l[:], exp)
	return z.valid()
}

func (x TD) Floor() (z TD) {
	floor(z.l[:], x.l[:])
	return z.valid()
}

func (x TD) Ceil() (z TD) {
	ceil(z.l[:], x.l[:])
	return z.valid()
}

func (x TD) Trunc() (z TD) {
	trunc(z.l[:], x.l[:])
	return z.valid()
}

func (x TD) Round() (z TD) {
	round(z.l[:], x.l[:], false)
	return z.valid()
}

func (x TD) RoundToEven() (z TD) {
	round(z.l[:], x.l[:], true)
	return z.valid()
}

// Text converts x to a string according to the given format and precision.
// See DD.Text.
func (x TD) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, tdDigits+8), format, prec))
}

func (x TD) Append(buf []byte, format byte, prec int) []byte {
	return appendCascade(buf, x.l[:], format, prec, tdDigits)
}

func (x TD) String() string                  { return x.Text('g', -1) }
func (x TD) Format(s fmt.State, format rune) { formatCascade(s, format, x.l[:], tdDigits) }

var _ fmt.Scanner = (*TD)(nil)

// Scan is a support routine for fmt.Scanner.
func (z *TD) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	var t TD
	if err := scan(t.l[:], byteReader{s}); err != nil {
		return err
	}
	*z = t
	return nil
}
