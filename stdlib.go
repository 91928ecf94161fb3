// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors helpers from math/big and strconv.

package cascade

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// debugCascade enables validation of the canonical form of every result.
const debugCascade = false

var (
	// ErrSyntax indicates that a value does not have the right syntax.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange indicates that a value is out of range.
	ErrRange = errors.New("value out of range")
)

// scan errors
var (
	errNoDigits = errors.WithMessage(ErrSyntax, "number has no digits")
	errInvalSep = errors.WithMessage(ErrSyntax, "'_' must separate successive digits")
)

func isRangeErr(err error) bool {
	return errors.Is(err, ErrRange)
}

// An ErrNaN panic is raised when converting a NaN to a type that cannot
// represent it, like big.Float. An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = errors.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// maxExp10 is larger than any meaningful decimal exponent of a cascade.
// Larger exponents saturate.
const maxExp10 = 1 << 30

// scanExponent scans an optional decimal exponent: ("e" | "E") [sign] digits.
// Digits may be separated by '_'. Exponents beyond ±maxExp10 saturate.
func scanExponent(r io.ByteScanner) (exp int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}

	// exponent char
	switch ch {
	case 'e', 'E':
		// ok
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, nil
	}

	// sign
	neg := false
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		neg = ch == '-'
		ch, err = r.ReadByte()
	}

	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			if exp < maxExp10 {
				exp = exp*10 + int64(ch-'0')
			}
			prev = '0'
			hasDigits = true
		} else if ch == '_' {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errNoDigits
	}
	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}
	if exp > maxExp10 {
		exp = maxExp10
	}
	if neg {
		exp = -exp
	}
	return
}

// These powers of 5 fit into a uint64.
//
//	for p, q := uint64(0), uint64(1); p < q; p, q = q, q*5 {
//		fmt.Println(q)
//	}
var pow5tab = [...]uint64{
	1,
	5,
	25,
	125,
	625,
	3125,
	15625,
	78125,
	390625,
	1953125,
	9765625,
	48828125,
	244140625,
	1220703125,
	6103515625,
	30517578125,
	152587890625,
	762939453125,
	3814697265625,
	19073486328125,
	95367431640625,
	476837158203125,
	2384185791015625,
	11920928955078125,
	59604644775390625,
	298023223876953125,
	1490116119384765625,
	7450580596923828125,
}

// pow5 sets z to 5**n and returns z.
func pow5(z *big.Int, n uint64) *big.Int {
	const m = uint64(len(pow5tab) - 1)
	if n <= m {
		return z.SetUint64(pow5tab[n])
	}
	// n > m

	z.SetUint64(pow5tab[m])
	n -= m

	f := new(big.Int).SetUint64(5)

	for n > 0 {
		if n&1 != 0 {
			z.Mul(z, f)
		}
		f.Mul(f, f)
		n >>= 1
	}

	return z
}
