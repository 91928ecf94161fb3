// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"
	"testing"

	"github.com/db47h/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	two := cascade.NewQD(2)
	assert.True(t, Pow(two, 10).Equal(cascade.NewQD(1024)))
	assert.True(t, Pow(two, -2).Equal(cascade.NewQD(0.25)))
	assert.True(t, Pow(two, 0).Equal(cascade.NewQD(1)))
	assert.True(t, Pow(cascade.NewQD(0), 0).Equal(cascade.NewQD(1)), "0**0")
	assert.True(t, Pow(cascade.NewQD(math.NaN()), 0).Equal(cascade.NewQD(1)), "NaN**0")
	assert.True(t, Pow(cascade.NewQD(0), -1).IsInf(1))
	assert.True(t, Pow(two, 2000).IsInf(1))
	assert.True(t, Pow(two, -2000).IsZero())
	assert.True(t, Pow(two.Neg(), 3).Equal(cascade.NewQD(-8)))
	assert.True(t, Pow(two.Neg(), 1025).IsInf(-1))
	assert.True(t, Pow(two, math.MinInt).IsZero())

	// 3**40 needs 64 bits
	assert.True(t, Pow(cascade.NewQD(3), 40).Equal(cascade.NewQDFromUint64(12157665459056928801)))
	assertClose(t, Pow(cascade.QDSqrt2, 2), "2", 4)
	assertClose(t, Pow(cascade.DDSqrt2, 31), "46340.9500118415785591337361149033866385710080123518344618534416544803218542463234490494986", 8)
}

func TestMinMax(t *testing.T) {
	var (
		one  = cascade.NewTD(1)
		two  = cascade.NewTD(2)
		pz   = cascade.NewTD(0)
		nz   = cascade.NewTD(math.Copysign(0, -1))
		nan  = cascade.NewTD(math.NaN())
		tiny = one.AddFloat64(0x1p-150)
	)
	assert.Equal(t, one, Min(one, two))
	assert.Equal(t, one, Min(two, one))
	assert.Equal(t, two, Max(one, two))
	assert.Equal(t, tiny, Max(one, tiny))
	assert.Equal(t, one, Min(tiny, one))
	assert.True(t, Min(pz, nz).Signbit())
	assert.True(t, Min(nz, pz).Signbit())
	assert.False(t, Max(pz, nz).Signbit())
	assert.False(t, Max(nz, pz).Signbit())
	assert.True(t, Min(nan, one).IsNaN())
	assert.True(t, Min(one, nan).IsNaN())
	assert.True(t, Max(nan, one).IsNaN())
	assert.True(t, Max(one, nan).IsNaN())
}

func TestHypot(t *testing.T) {
	inf, nan := cascade.NewDD(math.Inf(1)), cascade.NewDD(math.NaN())
	assert.True(t, Hypot(cascade.NewDD(3), cascade.NewDD(-4)).Equal(cascade.NewDD(5)))
	assert.True(t, Hypot(cascade.NewDD(0), cascade.NewDD(0)).IsZero())
	assert.True(t, Hypot(inf, nan).IsInf(1))
	assert.True(t, Hypot(nan, inf.Neg()).IsInf(1))
	assert.True(t, Hypot(nan, cascade.NewDD(1)).IsNaN())
	assert.True(t, Hypot(cascade.NewDD(math.MaxFloat64), cascade.NewDD(math.MaxFloat64)).IsInf(1))

	// no overflow of the intermediate squares
	big := cascade.NewQD(0x1p1000)
	assertClose(t, Hypot(big, big), "1.51534200448232446153225932624612313639580415920350281797305076266771690705819589192365763e301", 6)
	assertClose(t, Hypot(cascade.NewQD(1), cascade.NewQD(1)), cascade.Sqrt2, 6)
}

func TestFmod(t *testing.T) {
	for _, td := range []struct {
		x, y, want float64
	}{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{-7, -3, -1},
		{6, 3, 0},
		{-6, 3, math.Copysign(0, -1)},
		{1, math.Inf(1), 1},
		{5.5, 2, 1.5},
	} {
		got := Fmod(cascade.NewDD(td.x), cascade.NewDD(td.y))
		assert.Equal(t, td.want, got.Float64(), "Fmod(%g, %g)", td.x, td.y)
		assert.Equal(t, math.Signbit(td.want), got.Signbit(), "Fmod(%g, %g)", td.x, td.y)
	}
	for _, xy := range [][2]float64{{1, 0}, {math.Inf(1), 1}, {math.NaN(), 1}, {1, math.NaN()}} {
		assert.True(t, Fmod(cascade.NewDD(xy[0]), cascade.NewDD(xy[1])).IsNaN(), "Fmod(%g, %g)", xy[0], xy[1])
	}

	// the quotient 1e30 is exact in a QD, not in a float64
	x := cascade.MustParseQD("1e30").AddFloat64(0.5)
	assert.True(t, Fmod(x, cascade.NewQD(1)).Equal(cascade.NewQD(0.5)))
	assert.True(t, Fmod(cascade.QDPi, cascade.NewQD(1)).Equal(cascade.QDPi.Sub(cascade.NewQD(3))))
}

func TestRemainder(t *testing.T) {
	for _, td := range []struct {
		x, y, want float64
	}{
		{5, 3, -1},
		{7, 2, -1},
		{5, 2, 1},
		{-5, 2, -1},
		{4, 2, 0},
		{1, math.Inf(-1), 1},
	} {
		got := Remainder(cascade.NewQD(td.x), cascade.NewQD(td.y))
		require.False(t, got.IsNaN())
		assert.Equal(t, td.want, got.Float64(), "Remainder(%g, %g)", td.x, td.y)
		assert.Equal(t, math.Remainder(td.x, td.y), got.Float64(), "Remainder(%g, %g)", td.x, td.y)
	}
	assert.True(t, Remainder(cascade.NewQD(1), cascade.NewQD(0)).IsNaN())
}

func TestErf(t *testing.T) {
	for _, x := range []float64{0, 0.5, -1.25, 3, math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, math.Erf(x), Erf(cascade.NewTD(x)).Float64(), "Erf(%g)", x)
		assert.Equal(t, math.Erfc(x), Erfc(cascade.NewTD(x)).Float64(), "Erfc(%g)", x)
	}
	assert.True(t, Erf(cascade.NewTD(math.NaN())).IsNaN())
}

func TestProxies(t *testing.T) {
	assert.True(t, Sqrt(cascade.NewDD(16)).Equal(cascade.NewDD(4)))
	assert.True(t, Cbrt(cascade.NewDD(-27)).Equal(cascade.NewDD(-3)))
	assert.True(t, Abs(cascade.NewDD(-27)).Equal(cascade.NewDD(27)))
}
