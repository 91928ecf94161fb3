// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cascade implements extended-precision floating-point arithmetic with
cascades of float64 values.

A cascade is an unevaluated sum of N float64 limbs x[0] + x[1] + … + x[N-1]
where each limb is negligible with respect to the previous one. The package
provides three widths:

	DD  double-double  2 limbs  ~106 bits  ~32 decimal digits
	TD  triple-double  3 limbs  ~159 bits  ~47 decimal digits
	QD  quad-double    4 limbs  ~212 bits  ~64 decimal digits

Cascades trade the unbounded precision of big.Float for speed: all
operations are carried out with plain float64 arithmetic and error-free
transformations (see package eft), without any memory allocation.

The zero value of every cascade type is +0, so new values can be declared in
the usual ways and denote 0 without further initialization:

	var x cascade.DD // x is a DD of value 0

Cascade values are immutable. Operations are methods that take their operands
by value and return the result:

	func (x DD) Unary() DD         // z = unary x
	func (x DD) Binary(y DD) DD    // z = x binary y
	func (x DD) Pred() P           // p = pred(x)

For instance, given three DD values a, b and c, the expression a×b + c is
written

	a.Mul(b).Add(c)

# Canonical form

Every cascade produced by this package is in canonical form: each non-zero
limb is the float64 nearest to the sum of itself and all the following limbs,
and all limbs following a zero limb are +0. Infinities and NaNs are
represented as (v, 0, …). The canonical form of a value is unique, so two
cascades are equal if and only if their limbs are equal, and comparisons are
lexicographic on the limbs.

# Rounding

Addition, subtraction and multiplication (except DD multiplication, which uses
the classic double-double product) compute the exact result and round it to
the nearest cascade. Division, square and cube roots are faithful: the error
is bounded by a small multiple of the ulp of the last limb.

Special values follow IEEE 754: division by zero yields a signed infinity or
NaN, overflow yields an infinity and NaNs propagate. Package context provides
a way to detect such conditions.

# Conversions

Cascades can be converted to and from float64, int64, uint64, big.Float and
apd.Decimal values (github.com/cockroachdb/apd/v3). Conversions to big.Float
and apd.Decimal are exact.

ParseDD, ParseTD and ParseQD accept strings of the form:

	number    = [ sign ] ( float | "inf" | "infinity" | "nan" ) .
	sign      = "+" | "-" .
	float     = mantissa [ exponent ] .
	mantissa  = digits "." [ digits ] | digits | "." digits .
	exponent  = ( "e" | "E" ) [ sign ] digits .
	digits    = digit { [ "_" ] digit } .

Parsing errors wrap ErrSyntax or ErrRange and can be tested with errors.Is.

The Text and Append methods support the formats 'e', 'E', 'f', 'g' and 'G'
of strconv.FormatFloat. Digits are rounded half away from zero. A negative
precision selects the smallest number of digits that parses back to the same
value. That is at most 34, 50 or 66 digits for DD, TD and QD values whose
limbs carry the full precision of their type. Others, like a float64 with a
long exact decimal expansion, take up to 120 digits, the most Parse reads.
Only values that need more than that do not round-trip. Cascade types implement
fmt.Formatter, fmt.Stringer, fmt.Scanner, encoding.TextMarshaler,
encoding.TextUnmarshaler, gob.GobEncoder and gob.GobDecoder.

# Generic code

The Number interface lists the methods shared by DD, TD and QD. It is used as
a type constraint by packages context and math to provide a single
implementation for all widths.
*/
package cascade
