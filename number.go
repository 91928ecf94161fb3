// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import "fmt"

// Number is the method set shared by DD, TD and QD. It lets functions be
// written once for all cascade widths:
//
//	func Twice[T cascade.Number[T]](x T) T { return x.Add(x) }
//
// The zero value of a Number is +0, so constants can be built from the zero
// value:
//
//	var zero T
//	one := zero.AddFloat64(1)
type Number[T any] interface {
	fmt.Stringer
	fmt.Formatter

	// Prec returns the nominal precision of T in bits.
	Prec() uint

	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	AddFloat64(y float64) T
	MulFloat64(y float64) T
	QuoFloat64(y float64) T
	Neg() T
	Abs() T
	Sqr() T
	Inv() T
	Sqrt() T
	Cbrt() T
	Ldexp(exp int) T
	Floor() T
	Ceil() T
	Trunc() T
	Round() T
	RoundToEven() T

	Cmp(y T) int
	Equal(y T) bool
	Less(y T) bool
	LessEqual(y T) bool
	Greater(y T) bool
	GreaterEqual(y T) bool

	Float64() float64
	Sign() int
	Signbit() bool
	IsNaN() bool
	IsInf(sign int) bool
	IsZero() bool
	IsInt() bool

	Text(format byte, prec int) string
}

var (
	_ Number[DD] = DD{}
	_ Number[TD] = TD{}
	_ Number[QD] = QD{}
)

// Parse parses s as a T. See ParseDD for the accepted syntax.
func Parse[T Number[T]](s string) (T, error) {
	var z T
	var err error
	switch p := any(&z).(type) {
	case *DD:
		*p, err = ParseDD(s)
	case *TD:
		*p, err = ParseTD(s)
	case *QD:
		*p, err = ParseQD(s)
	default:
		panic(fmt.Sprintf("cascade: unsupported type %T", z))
	}
	return z, err
}

// New returns a T set to the value of x.
func New[T Number[T]](x float64) T {
	var z T
	switch p := any(&z).(type) {
	case *DD:
		*p = NewDD(x)
	case *TD:
		*p = NewTD(x)
	case *QD:
		*p = NewQD(x)
	default:
		panic(fmt.Sprintf("cascade: unsupported type %T", z))
	}
	return z
}

// LimbsOf returns the limbs of x, leading limb first.
func LimbsOf[T Number[T]](x T) []float64 {
	switch x := any(x).(type) {
	case DD:
		return x.l[:]
	case TD:
		return x.l[:]
	case QD:
		return x.l[:]
	}
	panic(fmt.Sprintf("cascade: unsupported type %T", x))
}
