// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/cascade"

// Sqrt returns the square root of x.
//
// This function is a proxy for x.Sqrt().
func Sqrt[T cascade.Number[T]](x T) T {
	return x.Sqrt()
}

// Cbrt returns the cube root of x.
//
// This function is a proxy for x.Cbrt().
func Cbrt[T cascade.Number[T]](x T) T {
	return x.Cbrt()
}

// Abs returns the absolute value of x.
//
// This function is a proxy for x.Abs().
func Abs[T cascade.Number[T]](x T) T {
	return x.Abs()
}
