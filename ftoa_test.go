// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func TestDDText(t *testing.T) {
	for _, td := range []struct {
		x      DD
		format byte
		prec   int
		want   string
	}{
		{DD{}, 'g', -1, "0"},
		{NewDD(negZero), 'g', -1, "-0"},
		{DD{}, 'e', 2, "0.00e+00"},
		{DD{}, 'f', 3, "0.000"},
		{NewDD(1), 'g', -1, "1"},
		{NewDD(0.5), 'g', -1, "0.5"},
		{NewDD(-2.5), 'f', 2, "-2.50"},
		{NewDD(-2.5), 'F', 0, "-3"},
		{NewDD(1234.5678), 'e', 3, "1.235e+03"},
		{NewDD(1234.5678), 'E', 3, "1.235E+03"},
		{NewDD(1234.5678), 'f', 1, "1234.6"},
		{NewDD(1234.5678), 'g', 3, "1.23e+03"},
		{NewDD(1234.5678), 'g', 0, "1e+03"},
		{NewDD(123456), 'g', -1, "123456"},
		{NewDD(1234567), 'g', -1, "1.234567e+06"},
		{NewDD(1e21), 'g', -1, "1e+21"},
		{NewDD(1e-5), 'g', 3, "1e-05"},
		{MustParseDD("0.0001"), 'g', -1, "0.0001"},
		{NewDD(0.0001), 'g', -1, "0.000100000000000000004792173602385929598312941379845142364501953125"},
		{NewDD(-1.5), 'g', -1, "-1.5"},
		{NewDD(-1.5), 'e', 10, "-1.5000000000e+00"},
		{MustParseDD("-0.1"), 'g', -1, "-0.1"},
		{NewDD(0.0004), 'f', 2, "0.00"},
		{NewDD(0.006), 'f', 2, "0.01"},
		{NewDD(9.9999), 'f', 2, "10.00"},
		{NewDD(9.9999), 'e', 2, "1.00e+01"},
		{NewDD(1e100), 'e', 0, "1e+100"},
		{MustParseDD("0.1"), 'g', -1, "0.1"},
		{MustParseDD("-1e-300"), 'g', -1, "-1e-300"},
		{MustParseDD("123.456"), 'g', -1, "123.456"},
		{NewDD(1).QuoFloat64(3), 'f', 30, "0.333333333333333333333333333333"},
		{NewDD(2).QuoFloat64(3), 'e', 30, "6.666666666666666666666666666667e-01"},
		{NewDDFromLimbs(1, 1e-20), 'g', -1, "1.00000000000000000001"},
		{NewDDFromLimbs(1, -1e-20), 'f', 22, "0.9999999999999999999900"},
		{NewDD(math.Inf(1)), 'g', -1, "+Inf"},
		{NewDD(math.Inf(-1)), 'f', 2, "-Inf"},
		{NewDD(math.NaN()), 'e', -1, "NaN"},
		{NewDD(1), 'x', -1, "%x"},
	} {
		if got := td.x.Text(td.format, td.prec); got != td.want {
			t.Errorf("%v.Text(%q, %d) = %q, want %q", td.x.Limbs(), td.format, td.prec, got, td.want)
		}
	}
}

func TestQDText(t *testing.T) {
	for _, td := range []struct {
		x      QD
		format byte
		prec   int
		want   string
	}{
		{QDPi, 'f', 60, "3.141592653589793238462643383279502884197169399375105820974945"},
		{QDSqrt2, 'f', 60, "1.414213562373095048801688724209698078569671875376948073176680"},
		{NewQD(2).Sqrt(), 'f', 60, "1.414213562373095048801688724209698078569671875376948073176680"},
		{QDPi.Ldexp(400), 'e', 10, "8.1123772467e+120"},
		{NewQD(0.1), 'g', -1, "0.1000000000000000055511151231257827021181583404541015625"},
		{NewQD(1).Ldexp(-1074), 'e', 5, "4.94066e-324"},
		{NewQD(5e-324), 'e', 5, "4.94066e-324"},
		{NewQD(-0x1p-1070), 'e', 3, "-7.905e-323"},
		{NewQD(0x1p-1000), 'e', 20, "9.33263618503218878990e-302"},
		{QDPi.Neg(), 'f', 30, "-3.141592653589793238462643383280"},
	} {
		if got := td.x.Text(td.format, td.prec); got != td.want {
			t.Errorf("%v.Text(%q, %d) = %q, want %q", td.x.Limbs(), td.format, td.prec, got, td.want)
		}
	}
}

func TestFormat(t *testing.T) {
	pi := DDPi
	for _, td := range []struct {
		format string
		x      DD
		want   string
	}{
		{"%v", NewDD(1.5), "1.5"},
		{"%s", NewDD(1.5), "1.5"},
		{"%.3f", pi, "3.142"},
		{"%8.3f", pi, "   3.142"},
		{"%-8.2f|", pi, "3.14    |"},
		{"%08.3f", pi.Neg(), "-003.142"},
		{"%+.2e", pi, "+3.14e+00"},
		{"% .2F", pi, " 3.14"},
		{"%.10g", pi, "3.141592654"},
		{"%G", MustParseDD("1e-10"), "1E-10"},
		{"%G", NewDD(1e-10), "1.0000000000000000364321973154977415791655470655996396089904010295867919921875E-10"},
		{"%v", NewDD(-0.5), "-0.5"},
		{"%.2e", DDPi.Neg(), "-3.14e+00"},
		{"%e", NewDD(1), "1.000000e+00"},
		{"%f", NewDD(1), "1.000000"},
		{"%+v", NewDD(2), "+2"},
		{"%6v", NewDD(math.Inf(1)), "  +Inf"},
		{"%06v", NewDD(math.Inf(-1)), "  -Inf"},
		{"% v", NewDD(math.Inf(1)), " Inf"},
		{"%5v", NewDD(math.NaN()), "  NaN"},
		{"%x", NewDD(1), "%!x(cascade=1)"},
		{"%v", DDPi, "3.1415926535897932384626433832795"},
	} {
		if got := fmt.Sprintf(td.format, td.x); got != td.want {
			t.Errorf("Sprintf(%q, %v) = %q, want %q", td.format, td.x.Limbs(), got, td.want)
		}
	}
}

func testNegativeText[T Number[T]](t *testing.T) {
	x := New[T](-1.5)
	for _, td := range []struct {
		got, want string
	}{
		{x.Text('g', -1), "-1.5"},
		{x.Text('e', 10), "-1.5000000000e+00"},
		{x.Text('f', 3), "-1.500"},
		{fmt.Sprint(x), "-1.5"},
		{fmt.Sprintf("%+.1f", x), "-1.5"},
	} {
		if td.got != td.want {
			t.Errorf("got %q, want %q", td.got, td.want)
		}
	}
}

func TestNegativeText(t *testing.T) {
	t.Run("DD", testNegativeText[DD])
	t.Run("TD", testNegativeText[TD])
	t.Run("QD", testNegativeText[QD])
}

// randDigits returns a random decimal string with n significant digits.
func randDigits(r *rand.Rand, n int) string {
	b := make([]byte, 0, n+8)
	if r.Intn(2) == 0 {
		b = append(b, '-')
	}
	b = append(b, byte('1'+r.Intn(9)), '.')
	for i := 1; i < n; i++ {
		b = append(b, byte('0'+r.Intn(10)))
	}
	return fmt.Sprintf("%se%d", b, r.Intn(200)-100)
}

func testShortestRoundTrip[T Number[T]](t *testing.T) {
	r := rand.New(rand.NewSource(70))
	for i := 0; i < 500; i++ {
		s := randDigits(r, 70)
		x, err := Parse[T](s)
		if err != nil {
			t.Fatal(err)
		}
		if y, err := Parse[T](x.String()); err != nil || !y.Equal(x) {
			t.Fatalf("Parse(%q).String() = %q parses to %v, %v", s, x.String(), LimbsOf(y), err)
		}
	}
	for i := 0; i < 500; i++ {
		f := math.Ldexp(r.Float64(), r.Intn(100)-50)
		x := New[T](f)
		if y, err := Parse[T](x.String()); err != nil || !y.Equal(x) {
			t.Fatalf("New(%g).String() = %q parses to %v, %v", f, x.String(), LimbsOf(y), err)
		}
	}
}

func TestShortestRoundTrip(t *testing.T) {
	t.Run("DD", testShortestRoundTrip[DD])
	t.Run("TD", testShortestRoundTrip[TD])
	t.Run("QD", testShortestRoundTrip[QD])
}

func BenchmarkQD_Text(b *testing.B) {
	x := QDPi
	for i := 0; i < b.N; i++ {
		_ = x.Text('e', 60)
	}
}

func BenchmarkQD_String(b *testing.B) {
	x := QDPi
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
