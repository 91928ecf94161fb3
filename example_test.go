// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade_test

import (
	"errors"
	"fmt"

	"github.com/db47h/cascade"
)

func ExampleDD() {
	x := cascade.NewDD(1).AddFloat64(1e-20)
	fmt.Println(x)
	fmt.Println(x.Limbs())
	fmt.Println(x.Greater(cascade.NewDD(1)))
	// Output:
	// 1.00000000000000000001
	// [1 1e-20]
	// true
}

func ExampleDD_Quo() {
	third := cascade.NewDD(1).Quo(cascade.NewDD(3))
	fmt.Printf("%.30f\n", third)
	// Output:
	// 0.333333333333333333333333333333
}

func ExampleQD_Sqrt() {
	fmt.Printf("%.60f\n", cascade.NewQD(2).Sqrt())
	fmt.Printf("%.60f\n", cascade.QDPi)
	// Output:
	// 1.414213562373095048801688724209698078569671875376948073176680
	// 3.141592653589793238462643383279502884197169399375105820974945
}

func ExampleParseQD() {
	x, err := cascade.ParseQD("1e10000")
	fmt.Println(x, errors.Is(err, cascade.ErrRange))
	_, err = cascade.ParseQD("1..2")
	fmt.Println(errors.Is(err, cascade.ErrSyntax))
	// Output:
	// +Inf true
	// true
}

// sum returns the sum of xs as a T.
func sum[T cascade.Number[T]](xs ...float64) T {
	var s T
	for _, x := range xs {
		s = s.AddFloat64(x)
	}
	return s
}

func ExampleNumber() {
	a, b, c := 0.1, 0.2, 0.3
	fmt.Println(a + b + c)
	fmt.Printf("%.25f\n", sum[cascade.DD](0.1, 0.2, 0.3))
	fmt.Printf("%.25f\n", sum[cascade.QD](0.1, 0.2, 0.3))
	// Output:
	// 0.6000000000000001
	// 0.6000000000000000055511151
	// 0.6000000000000000055511151
}
