// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"testing"

	"github.com/db47h/cascade"
)

func testPi[T cascade.Number[T]](t *testing.T) {
	assertClose(t, Pi[T](), cascade.Pi, 6, "Pi")
}

func TestPi(t *testing.T) {
	t.Run("DD", testPi[cascade.DD])
	t.Run("TD", testPi[cascade.TD])
	t.Run("QD", testPi[cascade.QD])
}

func BenchmarkPi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Pi[cascade.QD]()
	}
}
