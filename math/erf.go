// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/cascade"
)

// Erf returns the error function of x.
//
// Erf is computed in float64 precision from the leading limb of x: only the
// leading limb of the result is significant.
func Erf[T cascade.Number[T]](x T) T {
	return cascade.New[T](math.Erf(x.Float64()))
}

// Erfc returns the complementary error function of x.
//
// Like Erf, only the leading limb of the result is significant.
func Erfc[T cascade.Number[T]](x T) T {
	return cascade.New[T](math.Erfc(x.Float64()))
}
