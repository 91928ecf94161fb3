// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements renormalization of floating-point expansions into
// canonical cascades.

package cascade

import (
	"fmt"
	"math"

	"github.com/db47h/cascade/eft"
)

const (
	// maxLimbs is the widest cascade the internal engine operates on. DD, TD
	// and QD use two extra limbs as guard limbs during conversions.
	maxLimbs = 6
	// maxExpansion is the largest raw expansion fed to renorm: all the
	// TwoProd terms of a maxLimbs×maxLimbs product.
	maxExpansion = 2 * maxLimbs * maxLimbs
	// maxPasses bounds the number of distillation passes.
	maxPasses = 3 * maxExpansion
)

var negZero = math.Copysign(0, -1)

// Internal representation: a cascade x of width n is a slice of n float64
// limbs such that
//
//	x[0] = RN(x[0] + x[1] + ... + x[n-1])
//	x[i] = RN(x[i] + ... + x[n-1])     for every non-zero x[i]
//
// RN is IEEE round to nearest, ties to even. Limbs following a zero limb are
// +0. Non-finite cascades and zeros are of the form (v, +0, +0, ...).
//
// This form is unique for any real number representable as a sum of n
// float64 values, is non-overlapping (|x[i+1]| <= ulp(x[i])/2) and ordered by
// decreasing magnitude. Comparing two cascades is a lexicographic comparison
// of their limbs.

// setSpecial sets z to (v, +0, ...).
func setSpecial(z []float64, v float64) {
	z[0] = v
	for i := 1; i < len(z); i++ {
		z[i] = 0
	}
}

// isSpecial reports whether the leading limb of a cascade is a zero, an
// infinity or a NaN.
func isSpecial(x0 float64) bool {
	return x0 == 0 || x0-x0 != 0
}

// renorm sets z to the canonical cascade of len(z) limbs nearest to the exact
// sum of the raw expansion. raw is not modified.
//
// Limbs are first extracted from the exact sum, each one rounded from what
// remains. Extra precision beyond len(z) limbs is then dropped and, since the
// dropped part may have decided a tie between two limbs, the truncated value
// is renormalized. The leading limb is therefore RN of the truncated sum,
// which may differ from RN of the exact sum by one ulp in tie cases.
func renorm(z, raw []float64) {
	var buf [maxExpansion]float64
	e := buf[:0]
	if len(raw) > len(buf) {
		e = make([]float64, 0, len(raw))
	}

	var nan, pinf, ninf bool
	zs := negZero // -0 is the neutral element of IEEE addition
	for _, x := range raw {
		switch {
		case x != x:
			nan = true
		case x == 0:
			zs += x
		case math.IsInf(x, 1):
			pinf = true
		case math.IsInf(x, -1):
			ninf = true
		default:
			e = append(e, x)
		}
	}
	switch {
	case nan || pinf && ninf:
		setSpecial(z, math.NaN())
		return
	case pinf:
		setSpecial(z, math.Inf(1))
		return
	case ninf:
		setSpecial(z, math.Inf(-1))
		return
	case len(e) == 0:
		if len(raw) == 0 {
			zs = 0
		}
		setSpecial(z, zs)
		return
	}

	e, ok := distill(e)
	if !ok {
		setSpecial(z, e[0])
		return
	}
	var t [maxLimbs]float64
	for pass := 0; ; pass++ {
		rest := extract(z, e)
		if len(rest) == 0 || pass == 3 {
			return
		}
		// The dropped tail may have decided a tie between two limbs of z.
		// Renormalize the truncated value.
		e, _ = distill(append(t[:0], z...))
	}
}

// extract sets z to the limbs of the distilled expansion e, each limb being
// the correctly rounded value of the remaining exact sum. It returns what is
// left of e once z is full.
func extract(z, e []float64) []float64 {
	for i := range z {
		if len(e) == 0 {
			z[i] = 0
			continue
		}
		lead := e[0]
		if len(e) > 2 {
			// e[0] = RN(e[0]+e[1]) by construction. The rest of the
			// expansion only matters when e[1] is exactly half way between
			// e[0] and its neighbor.
			n := math.Nextafter(e[0], math.Copysign(math.Inf(1), e[1]))
			if n-e[0] == 2*e[1] && math.Signbit(e[2]) == math.Signbit(e[1]) {
				lead = n
			}
		}
		z[i] = lead
		if lead == e[0] {
			e = e[1:]
			continue
		}
		e[0] -= lead // exact
		e, _ = distill(e)
	}
	return e
}

// distill turns e into a non-overlapping expansion, sorted by decreasing
// magnitude and with no zero limbs, that has the same exact sum. It operates
// in place and returns the trimmed slice. It returns false if the
// computation overflowed, in which case e[0] holds the infinite result.
func distill(e []float64) ([]float64, bool) {
	for pass := 0; ; pass++ {
		sortByMagnitude(e)
		for len(e) > 0 && e[len(e)-1] == 0 {
			e = e[:len(e)-1]
		}
		if len(e) < 2 || isDistilled(e) || pass == maxPasses {
			return e, true
		}
		vecSum(e)
		if e[0]-e[0] != 0 {
			return e, false
		}
	}
}

// vecSum runs one bottom-up pass of TwoSum over e, propagating carries toward
// e[0]. The exact sum of e is preserved.
func vecSum(e []float64) {
	k := len(e)
	s := e[k-1]
	for i := k - 2; i >= 0; i-- {
		s, e[i+1] = eft.TwoSum(e[i], s)
	}
	e[0] = s
}

// isDistilled reports whether every adjacent pair of e is a fixed point of
// TwoSum. e must be sorted by decreasing magnitude and have no zero limbs.
func isDistilled(e []float64) bool {
	for i := 0; i < len(e)-1; i++ {
		if s, t := eft.TwoSum(e[i], e[i+1]); s != e[i] || t != e[i+1] {
			return false
		}
	}
	return true
}

// sortByMagnitude sorts e by decreasing magnitude. Expansions are short and
// usually nearly sorted, where insertion sort does best.
func sortByMagnitude(e []float64) {
	for i := 1; i < len(e); i++ {
		x := e[i]
		ax := math.Abs(x)
		j := i
		for ; j > 0 && math.Abs(e[j-1]) < ax; j-- {
			e[j] = e[j-1]
		}
		e[j] = x
	}
}

// isCanonical reports whether x is a canonical cascade.
func isCanonical(x []float64) bool {
	if isSpecial(x[0]) {
		for _, l := range x[1:] {
			if l != 0 || math.Signbit(l) {
				return false
			}
		}
		return true
	}
	var buf [maxLimbs]float64
	z := buf[:len(x)]
	renorm(z, x)
	for i := range x {
		if z[i] != x[i] || math.Signbit(z[i]) != math.Signbit(x[i]) {
			return false
		}
	}
	return true
}

// validate panics if x is not a canonical cascade.
func validate(x []float64) {
	if !debugCascade {
		// avoid performance bugs
		panic("validate called but debugCascade is not set")
	}
	if !isCanonical(x) {
		panic(fmt.Sprintf("non-canonical cascade %v", x))
	}
}
