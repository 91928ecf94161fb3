// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/db47h/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigOf returns the exact value of x.
func bigOf[T cascade.Number[T]](x T) *big.Float {
	z := new(big.Float).SetPrec(2400)
	t := new(big.Float)
	for _, l := range cascade.LimbsOf(x) {
		z.Add(z, t.SetFloat64(l))
	}
	return z
}

// assertClose checks that the relative error of got with respect to the
// decimal value want is below 2**(-Prec+slack).
func assertClose[T cascade.Number[T]](t *testing.T, got T, want string, slack int, msgAndArgs ...interface{}) bool {
	t.Helper()
	w, _, err := big.ParseFloat(want, 10, 2400, big.ToNearestEven)
	require.NoError(t, err)
	if !assert.False(t, got.IsNaN() || got.IsInf(0), msgAndArgs...) {
		return false
	}
	d := new(big.Float).SetPrec(2400).Sub(bigOf(got), w)
	if w.Sign() != 0 {
		d.Quo(d, w)
	}
	e, _ := d.Float64()
	tol := math.Ldexp(1, -int(got.Prec())+slack)
	return assert.LessOrEqual(t, math.Abs(e), tol, msgAndArgs...)
}

func testExp[T cascade.Number[T]](t *testing.T) {
	for _, td := range []struct {
		x     float64
		want  string
		slack int
	}{
		{1, cascade.E, 6},
		{0.5, "1.64872127070012814684865078781416357165377610071014801157507931164066102119421560863277652", 6},
		{-3.25, "0.0387742078317220098868998352675961432601440619360201457006958609930934431984710807317697965", 8},
		{10, "22026.4657948067165169579006452842443663535126185567810742354263552252028185707925751991210", 8},
		{100, "26881171418161354484126255515800135873611118.7737419224151916086152802870349095649141588711", 10},
		{-100, "3.72007597602083596295969580386311833735889229237678196712061387666329047589581571815711878e-44", 10},
		{700, "1.01423205473500450945532959523126761520467957224307334878053628124935170250752368304548160e+304", 12},
	} {
		assertClose(t, Exp(cascade.New[T](td.x)), td.want, td.slack, "Exp(%g)", td.x)
	}

	ln2 := pick[T](cascade.DDLn2, cascade.TDLn2, cascade.QDLn2)
	assert.True(t, Exp(ln2).Equal(cascade.New[T](2)), "Exp(Ln2) = %v", Exp(ln2))
	assert.True(t, Exp(cascade.New[T](0)).Equal(cascade.New[T](1)))
	assert.True(t, Exp(cascade.New[T](math.Inf(1))).IsInf(1))
	assert.True(t, Exp(cascade.New[T](math.Inf(-1))).IsZero())
	assert.True(t, Exp(cascade.New[T](1000)).IsInf(1))
	assert.True(t, Exp(cascade.New[T](-1000)).IsZero())
	assert.True(t, Exp(cascade.New[T](math.NaN())).IsNaN())

	// e**x × e**-x = 1
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		x := cascade.New[T](r.Float64()*80 - 40).AddFloat64(r.Float64() * 0x1p-60)
		assertClose(t, Exp(x).Mul(Exp(x.Neg())), "1", 12, "Exp(%v)×Exp(-%v)", x, x)
	}
}

func TestExp(t *testing.T) {
	t.Run("DD", testExp[cascade.DD])
	t.Run("TD", testExp[cascade.TD])
	t.Run("QD", testExp[cascade.QD])
}

func testExpm1[T cascade.Number[T]](t *testing.T) {
	x := cascade.MustParseQD("1e-30")
	assertClose(t, Expm1(pick[T](x.DD(), x.TD(), x)), "1.0000000000000000000000000000005000000000000000000000000000001666666666666666667E-30", 4)
	assertClose(t, Expm1(cascade.New[T](1)), "1.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274274", 6)
	assertClose(t, Expm1(cascade.New[T](0.25)), "0.28402541668774148407342056806243645833628086528146308921750729687220776586723800275330641943955356890166", 6)
	assert.True(t, Expm1(cascade.New[T](math.Inf(-1))).Equal(cascade.New[T](-1)))
	assert.True(t, Expm1(cascade.New[T](math.Inf(1))).IsInf(1))
	z := Expm1(cascade.New[T](math.Copysign(0, -1)))
	assert.True(t, z.IsZero() && z.Signbit(), "Expm1(-0) = %v", z)
}

func TestExpm1(t *testing.T) {
	t.Run("DD", testExpm1[cascade.DD])
	t.Run("TD", testExpm1[cascade.TD])
	t.Run("QD", testExpm1[cascade.QD])
}

func BenchmarkExp(b *testing.B) {
	x := cascade.NewQD(3.73)
	for i := 0; i < b.N; i++ {
		_ = Exp(x)
	}
}
