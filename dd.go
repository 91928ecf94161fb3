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
	ddLimbs  = 2
	ddPrec   = ddLimbs * 53
	ddDigits = 34 // significant digits needed to round-trip a DD
)

// A DD is a double-double: an unevaluated sum of two float64 limbs that
// carries about 106 bits (32 decimal digits) of precision.
//
// The zero value for a DD is +0. DD values are immutable: operations return
// new values and never modify their operands, so a DD can be shared between
// goroutines without synchronization.
//
// The limbs of a DD are always kept in canonical form: the leading limb is
// the float64 nearest to the value and the second limb is the float64
// nearest to the remainder. Two DD values are equal if and only if their
// limbs are equal.
type DD struct {
	l [ddLimbs]float64
}

// NewDD returns a DD set to the value of x. NewDD never loses precision.
func NewDD(x float64) DD {
	var z DD
	setSpecial(z.l[:], x)
	return z
}

// NewDDFromInt64 returns a DD set to the exact value of x.
func NewDDFromInt64(x int64) (z DD) {
	setInt64(z.l[:], x)
	return z.valid()
}

// NewDDFromUint64 returns a DD set to the exact value of x.
func NewDDFromUint64(x uint64) (z DD) {
	setUint64(z.l[:], x)
	return z.valid()
}

// NewDDFromLimbs returns the DD nearest to the exact sum of limbs. The limbs
// may be given in any order, may overlap and may contain special values; IEEE
// rules apply to NaNs, infinities and signed zeros.
func NewDDFromLimbs(limbs ...float64) (z DD) {
	renorm(z.l[:], limbs)
	return z.valid()
}

// NewDDFromBigFloat returns the DD nearest to x.
func NewDDFromBigFloat(x *big.Float) (z DD) {
	setBigFloat(z.l[:], x)
	return z.valid()
}

// NewDDFromDecimal returns the DD nearest to x.
func NewDDFromDecimal(x *apd.Decimal) (z DD) {
	setDecimal(z.l[:], x)
	return z.valid()
}

// ParseDD parses s and returns the nearest DD. See the package documentation
// for the accepted syntax. On error, ParseDD returns a zero DD and an error
// wrapping ErrSyntax, or ±Inf and an error wrapping ErrRange if s overflows.
func ParseDD(s string) (z DD, err error) {
	err = parse(z.l[:], s)
	return z.valid(), err
}

// MustParseDD is like ParseDD but panics on error.
func MustParseDD(s string) DD {
	z, err := ParseDD(s)
	if err != nil {
		panic(err)
	}
	return z
}

func (x DD) valid() DD {
	if debugCascade {
		validate(x.l[:])
	}
	return x
}

// Prec returns the nominal precision of a DD in bits.
func (DD) Prec() uint { return ddPrec }

// Limbs returns the limbs of x, leading limb first.
func (x DD) Limbs() [ddLimbs]float64 { return x.l }

// Float64 returns the float64 nearest to x.
func (x DD) Float64() float64 { return x.l[0] }

// BigFloat sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. If z's precision is 0, it is changed to the
// smallest precision that can represent x exactly; otherwise the result is
// rounded per z's precision and rounding mode.
//
// BigFloat panics with ErrNaN if x is a NaN.
func (x DD) BigFloat(z *big.Float) *big.Float { return bigFloat(z, x.l[:]) }

// Decimal sets z to the exact value of x and returns z. If z is nil, a new
// apd.Decimal is allocated.
func (x DD) Decimal(z *apd.Decimal) *apd.Decimal { return toDecimal(z, x.l[:]) }

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x DD) Sign() int { return sign(x.l[:]) }

// Signbit reports whether x is negative or negative zero.
func (x DD) Signbit() bool { return math.Signbit(x.l[0]) }

// IsNaN reports whether x is a NaN.
func (x DD) IsNaN() bool { return x.l[0] != x.l[0] }

// IsInf reports whether x is an infinity, according to sign. If sign > 0,
// IsInf reports whether x is positive infinity. If sign < 0, IsInf reports
// whether x is negative infinity. If sign == 0, IsInf reports whether x is
// either infinity.
func (x DD) IsInf(sign int) bool { return math.IsInf(x.l[0], sign) }

// IsZero reports whether x is ±0.
func (x DD) IsZero() bool { return x.l[0] == 0 }

// IsInt reports whether x is an integer. ±Inf and NaN values are not
// integers.
func (x DD) IsInt() bool { return isInt(x.l[:]) }

// Add returns x+y.
func (x DD) Add(y DD) (z DD) {
	add(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Sub returns x-y.
func (x DD) Sub(y DD) (z DD) {
	sub(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Mul returns x×y.
//
// Unlike TD and QD, the product of two DD values is computed with the
// classic double-double algorithm: the product of the leading limbs is
// exact, and the cross products are added with a single rounding. The result
// is faithful but not always the DD nearest to the exact product.
func (x DD) Mul(y DD) (z DD) {
	mul2(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// Quo returns x/y. Division by zero yields ±Inf or NaN per IEEE rules.
func (x DD) Quo(y DD) (z DD) {
	quo(z.l[:], x.l[:], y.l[:])
	return z.valid()
}

// AddFloat64 returns x+y.
func (x DD) AddFloat64(y float64) (z DD) {
	addFloat(z.l[:], x.l[:], y)
	return z.valid()
}

// MulFloat64 returns x×y. The result is the DD nearest to the exact product.
func (x DD) MulFloat64(y float64) (z DD) {
	mulFloat(z.l[:], x.l[:], y)
	return z.valid()
}

// QuoFloat64 returns x/y.
func (x DD) QuoFloat64(y float64) (z DD) {
	quoFloat(z.l[:], x.l[:], y)
	return z.valid()
}

// Neg returns -x.
func (x DD) Neg() (z DD) {
	neg(z.l[:], x.l[:])
	return z
}

// Abs returns |x|.
func (x DD) Abs() (z DD) {
	abs(z.l[:], x.l[:])
	return z
}

// Sqr returns x².
func (x DD) Sqr() DD { return x.Mul(x) }

// Inv returns 1/x.
func (x DD) Inv() DD { return NewDD(1).Quo(x) }

// Sqrt returns the square root of x. The result is NaN if x < 0 or x is NaN,
// and x itself if x is ±0 or +Inf.
func (x DD) Sqrt() (z DD) {
	sqrt(z.l[:], x.l[:])
	return z.valid()
}

// Cbrt returns the cube root of x.
func (x DD) Cbrt() (z DD) {
	cbrt(z.l[:], x.l[:])
	return z.valid()
}

// Ldexp returns x×2**exp.
func (x DD) Ldexp(exp int) (z DD) {
	ldexp(z.l[:], x.l[:], exp)
	return z.valid()
}

// Floor returns the greatest integer value less than or equal to x.
func (x DD) Floor() (z DD) {
	floor(z.l[:], x.l[:])
	return z.valid()
}

// Ceil returns the least integer value greater than or equal to x.
func (x DD) Ceil() (z DD) {
	ceil(z.l[:], x.l[:])
	return z.valid()
}

// Trunc returns the integer value of x.
func (x DD) Trunc() (z DD) {
	trunc(z.l[:], x.l[:])
	return z.valid()
}

// Round returns the nearest integer, rounding half away from zero.
func (x DD) Round() (z DD) {
	round(z.l[:], x.l[:], false)
	return z.valid()
}

// RoundToEven returns the nearest integer, rounding ties to even.
func (x DD) RoundToEven() (z DD) {
	round(z.l[:], x.l[:], true)
	return z.valid()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, NaN == NaN)
//	+1 if x >  y
//
// A NaN is considered less than any non-NaN, like cmp.Compare does for
// float64 values.
func (x DD) Cmp(y DD) int { return cmp(x.l[:], y.l[:]) }

// Equal reports whether x == y. It is false if either operand is a NaN.
func (x DD) Equal(y DD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) == 0 }

// Less reports whether x < y. It is false if either operand is a NaN.
func (x DD) Less(y DD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0 }

// LessEqual reports whether x <= y. It is false if either operand is a NaN.
func (x DD) LessEqual(y DD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0 }

// Greater reports whether x > y. It is false if either operand is a NaN.
func (x DD) Greater(y DD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y. It is false if either operand is a
// NaN.
func (x DD) GreaterEqual(y DD) bool { return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) >= 0 }

// Text converts x to a string according to the given format and precision
// prec. See the package documentation for the list of formats. A negative
// precision selects the smallest number of digits that guarantees a round
// trip for DDs whose limbs span the full precision.
func (x DD) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, ddDigits+8), format, prec))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x DD) Append(buf []byte, format byte, prec int) []byte {
	return appendCascade(buf, x.l[:], format, prec, ddDigits)
}

// String formats x like x.Text('g', -1).
func (x DD) String() string { return x.Text('g', -1) }

// Format implements fmt.Formatter.
func (x DD) Format(s fmt.State, format rune) { formatCascade(s, format, x.l[:], ddDigits) }

var _ fmt.Scanner = (*DD)(nil)

// Scan is a support routine for fmt.Scanner. It accepts the same syntax as
// ParseDD, including signed infinities and NaN.
func (z *DD) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	var t DD
	if err := scan(t.l[:], byteReader{s}); err != nil {
		return err
	}
	*z = t
	return nil
}
