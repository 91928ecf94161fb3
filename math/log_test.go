// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"
	"math/rand"
	"testing"

	"github.com/db47h/cascade"
	"github.com/stretchr/testify/assert"
)

func testLog[T cascade.Number[T]](t *testing.T) {
	for _, td := range []struct {
		x    T
		want string
	}{
		{cascade.New[T](2), cascade.Ln2},
		{cascade.New[T](10), cascade.Ln10},
		{cascade.New[T](3), "1.098612288668109691395245236922525704647490557822749451734694333637494293218608966873615754813732089"},
		{pick[T](cascade.DDE, cascade.TDE, cascade.QDE), "1"},
		{cascade.New[T](1).AddFloat64(0x1p-66), "1.3552527156068805425001324514716280181263037818399893541981360861492663427862294752482578427122971996763830432e-20"},
		{cascade.New[T](0x3p1000), "694.24579284861341910862736669509909378014762491807800357241470382703111626291332457273694275123241963078945105"},
		{cascade.New[T](0x3p-1060), "-733.63739910487391829087080350874463645538265186404781991618611572935974499465778957534151086139007670573359985"},
	} {
		assertClose(t, Log(td.x), td.want, 8, "Log(%v)", td.x)
	}

	assert.True(t, Log(cascade.New[T](1)).IsZero())
	assert.True(t, Log(cascade.New[T](0)).IsInf(-1))
	assert.True(t, Log(cascade.New[T](-1)).IsNaN())
	assert.True(t, Log(cascade.New[T](math.Inf(1))).IsInf(1))
	assert.True(t, Log(cascade.New[T](math.NaN())).IsNaN())

	assertClose(t, Log2(cascade.New[T](7)), "2.807354922057604107441969317231830808641026625966140783677291724070320848862192986497860999170210785", 8)
	assertClose(t, Log10(cascade.New[T](1000)), "3", 8)

	// Log(Exp(x)) = x
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		x := cascade.New[T](0.5 + r.Float64()*9.5)
		if r.Intn(2) == 0 {
			x = x.Neg()
		}
		got := Log(Exp(x))
		assertClose(t, got, x.Text('e', 80), 12, "Log(Exp(%v))", x)
	}
}

func TestLog(t *testing.T) {
	t.Run("DD", testLog[cascade.DD])
	t.Run("TD", testLog[cascade.TD])
	t.Run("QD", testLog[cascade.QD])
}

func BenchmarkLog(b *testing.B) {
	x := cascade.NewQD(3.73)
	for i := 0; i < b.N; i++ {
		_ = Log(x)
	}
}
