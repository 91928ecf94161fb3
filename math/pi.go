// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/cascade"
)

// Pi returns π computed with the Gauss-Legendre algorithm in T arithmetic.
// The result is within a few ulps of the last limb from the nearest T. Use
// cascade.DDPi, cascade.TDPi or cascade.QDPi for correctly rounded values.
func Pi[T cascade.Number[T]]() T {
	var (
		a    = cascade.New[T](1)
		b    = cascade.New[T](0.5).Sqrt()
		t    = cascade.New[T](0.25)
		p    = 1.0
		stop = math.Ldexp(1, -int(a.Prec())/2-4)
	)
	for i := 0; i < 16; i++ {
		u := a                           // a_n
		a = a.Add(b).Ldexp(-1)           // a_n+1 = (a_n+b_n)/2
		b = u.Mul(b).Sqrt()              // b_n+1 = sqrt(a_n × b_n)
		d := u.Sub(a)                    // a_n - a_n+1
		t = t.Sub(d.Sqr().MulFloat64(p)) // t_n+1 = t_n - p×(a_n - a_n+1)²
		p *= 2
		if math.Abs(d.Float64()) <= stop {
			break
		}
	}
	s := a.Add(b)
	return s.Sqr().Quo(t.Ldexp(2))
}
