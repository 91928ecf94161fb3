// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-cascade conversion functions.

package cascade

import (
	"io"
	"math"
	"math/big"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	// chunkDigits decimal digits always fit in the significand of a float64.
	chunkDigits = 15
	// maxDigits is the number of significant digits taken into account when
	// parsing. It exceeds the precision of the widest internal cascade.
	maxDigits = 120
	// maxScale is the largest power of ten that fits in a float64 and is used
	// as a step when scaling by large powers of ten.
	maxScale = 256
	// decimal exponents beyond this limit overflow or underflow any cascade.
	maxScaledExp = 800
)

var pow10tab = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// parse sets z to the cascade nearest to the number represented by s. The
// entire string must be consumed. On error, z is set to 0 unless the error
// is a range error, in which case z is ±Inf.
//
// The number must be of the form:
//
//	number    = [ sign ] ( float | "inf" | "infinity" | "nan" ) .
//	sign      = "+" | "-" .
//	float     = mantissa [ exponent ] .
//	mantissa  = digits "." [ digits ] | digits | "." digits .
//	exponent  = ( "e" | "E" ) [ sign ] digits .
//	digits    = digit { [ "_" ] digit } .
//	digit     = "0" ... "9" .
//
// Special values are matched without regard to case.
func parse(z []float64, s string) (err error) {
	r := strings.NewReader(s)
	if err = scan(z, r); err != nil {
		if !isRangeErr(err) {
			setSpecial(z, 0)
		}
		return errors.Wrapf(err, "cascade: parsing %q", s)
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		setSpecial(z, 0)
		return errors.Wrapf(ErrSyntax, "cascade: parsing %q: expected end of string, found %q", s, ch)
	} else if err2 != io.EOF {
		setSpecial(z, 0)
		return err2
	}
	return nil
}

// scan is like parse but reads the longest possible prefix representing a
// valid floating point number from an io.ByteScanner rather than a string.
func scan(z []float64, r io.ByteScanner) error {
	negative, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return err
	}

	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return err
	}
	_ = r.UnreadByte()
	if lower(ch) == 'i' || lower(ch) == 'n' {
		return scanSpecial(z, r, negative)
	}

	// Digits are accumulated in a wider cascade, in chunks of chunkDigits
	// digits, then scaled by the decimal exponent.
	var (
		w         = min(len(z)+2, maxLimbs)
		vb        [maxLimbs]float64
		v         = vb[:w]
		chunk     uint64
		nchunk    int
		ndig      int   // significant digits in v
		dexp      int64 // exponent adjustment from the position of the decimal point
		seenDot   bool
		hasDigits bool
		invalSep  bool
		prev      = '.'
	)

loop:
	for {
		if ch, err = r.ReadByte(); err != nil {
			break
		}
		switch {
		case ch == '.' && !seenDot:
			seenDot = true
			prev = '.'
		case ch == '_':
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		case '0' <= ch && ch <= '9':
			hasDigits = true
			prev = '0'
			switch {
			case ch == '0' && ndig == 0:
				// leading zero
				if seenDot {
					dexp--
				}
			case ndig < maxDigits:
				chunk = chunk*10 + uint64(ch-'0')
				nchunk++
				ndig++
				if seenDot {
					dexp--
				}
				if nchunk == chunkDigits {
					mulFloat(v, v, pow10tab[chunkDigits])
					addFloat(v, v, float64(chunk))
					chunk, nchunk = 0, 0
				}
			case !seenDot:
				// dropped digit in the integer part
				dexp++
			}
		default:
			_ = r.UnreadByte() // ch does not belong to number anymore
			break loop
		}
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return err
	}
	if !hasDigits {
		return errNoDigits
	}
	if invalSep || prev == '_' {
		return errInvalSep
	}
	if nchunk > 0 {
		mulFloat(v, v, pow10tab[nchunk])
		addFloat(v, v, float64(chunk))
	}

	exp, err := scanExponent(r)
	if err != nil {
		return err
	}

	if v[0] == 0 {
		setSpecial(z, 0)
		if negative {
			z[0] = negZero
		}
		return nil
	}

	e := exp + dexp
	switch {
	case e > maxScaledExp:
		e = maxScaledExp
	case e < -maxScaledExp:
		e = -maxScaledExp
	}
	scale10(v, int(e))
	renorm(z, v)
	if negative {
		neg(z, z)
	}
	if math.IsInf(z[0], 0) {
		return ErrRange
	}
	return nil
}

func scanSpecial(z []float64, r io.ByteScanner, negative bool) error {
	var word [8]byte
	n := 0
	for {
		ch, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if c := lower(ch); c < 'a' || c > 'z' || n == len(word) {
			_ = r.UnreadByte()
			break
		}
		word[n] = lower(ch)
		n++
	}
	switch string(word[:n]) {
	case "inf", "infinity":
		if negative {
			setSpecial(z, math.Inf(-1))
		} else {
			setSpecial(z, math.Inf(1))
		}
	case "nan":
		setSpecial(z, math.NaN())
	default:
		return errors.WithMessagef(ErrSyntax, "unexpected %q", word[:n])
	}
	return nil
}

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

var (
	pow10once sync.Once
	pow10big  [maxScale + 1][maxLimbs]float64
)

// initPow10 computes the widest cascades nearest to the powers of ten that do
// not fit in pow10tab.
func initPow10() {
	p := new(big.Int)
	for n := len(pow10tab); n <= maxScale; n++ {
		// 10**n = 5**n × 2**n
		f := new(big.Float).SetInt(pow5(p, uint64(n)))
		z := pow10big[n][:]
		setBigFloat(z, f)
		ldexp(z, z, n)
	}
}

// pow10 sets z to the cascade nearest to 10**n, 0 <= n <= maxScale.
func pow10(z []float64, n int) {
	if n < len(pow10tab) {
		setSpecial(z, pow10tab[n])
		return
	}
	pow10once.Do(initPow10)
	renorm(z, pow10big[n][:])
}

// scale10 sets z to z×10**exp.
func scale10(z []float64, exp int) {
	var pb [maxLimbs]float64
	p := pb[:len(z)]
	for exp != 0 {
		n := exp
		switch {
		case n > maxScale:
			n = maxScale
		case n < -maxScale:
			n = -maxScale
		}
		if n > 0 {
			pow10(p, n)
			mul(z, z, p)
		} else {
			pow10(p, -n)
			quo(z, z, p)
		}
		if isSpecial(z[0]) {
			return
		}
		exp -= n
	}
}
