// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCascadeGobEncoding(t *testing.T) {
	type record struct {
		A DD
		B TD
		C QD
		D *QD
	}
	r := rand.New(rand.NewSource(21))
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for i := 0; i < 200; i++ {
		c := randCascade[QD](r)
		in := record{randCascade[DD](r), randCascade[TD](r), NewQD(float64(i)), &c}
		if i == 0 {
			in.A = NewDD(math.Inf(-1))
			in.B = NewTD(negZero)
		}
		medium.Reset()
		if err := enc.Encode(&in); err != nil {
			t.Fatalf("encode: %v", err)
		}
		var out record
		if err := dec.Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.A != in.A || out.B != in.B || out.C != in.C || *out.D != *in.D {
			t.Fatalf("gob round trip: got %v, want %v", out, in)
		}
	}
}

func TestCascadeGobDecode(t *testing.T) {
	var z QD
	if err := z.GobDecode(nil); err != nil || z != (QD{}) {
		t.Errorf("GobDecode(nil) = %v, %v", z, err)
	}

	// a QD decoded into a DD is rounded
	buf, _ := QDPi.GobEncode()
	var d DD
	if err := d.GobDecode(buf); err != nil {
		t.Fatal(err)
	}
	if d != DDPi {
		t.Errorf("GobDecode(QDPi) = %v, want %v", d.Limbs(), DDPi.Limbs())
	}

	// non-canonical limbs are renormalized
	buf, _ = NewTDFromLimbs(1).GobEncode()
	buf[0], buf[1] = cascadeGobVersion, 2
	buf = append(buf, buf[2:10]...)
	var x TD
	if err := x.GobDecode(buf); err != nil || x != NewTD(2) {
		t.Errorf("GobDecode(1, 1) = %v, %v", x.Limbs(), err)
	}

	for _, buf := range [][]byte{
		{cascadeGobVersion + 1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{cascadeGobVersion},
		{cascadeGobVersion, 0},
		{cascadeGobVersion, 2, 0, 0, 0, 0, 0, 0, 0, 0},
		{cascadeGobVersion, maxLimbs + 1},
	} {
		if err := x.GobDecode(buf); err == nil {
			t.Errorf("GobDecode(%v): expected error", buf)
		}
	}
}

func TestCascadeJSONEncoding(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for i := 0; i < 200; i++ {
		in := randCascade[TD](r)
		b, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		var out TD
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Fatalf("JSON round trip of %v: %s decodes to %v", in.Limbs(), b, out.Limbs())
		}
	}

	b, err := json.Marshal(map[string]DD{"x": NewDD(0.5), "y": NewDD(math.Inf(1)), "z": NewDD(-0.25)})
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != `{"x":"0.5","y":"+Inf","z":"-0.25"}` {
		t.Errorf("json.Marshal = %s", s)
	}
}

func TestCascadeUnmarshalText(t *testing.T) {
	var x QD
	if err := x.UnmarshalText([]byte("1.5")); err != nil || x != NewQD(1.5) {
		t.Errorf("UnmarshalText(1.5) = %v, %v", x, err)
	}
	err := x.UnmarshalText([]byte("1.5.2"))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("UnmarshalText(1.5.2): got error %v, want ErrSyntax", err)
	}
	if x != NewQD(1.5) {
		t.Errorf("UnmarshalText(1.5.2) changed its receiver to %v", x)
	}
	if err := x.UnmarshalText([]byte("-1e999")); !errors.Is(err, ErrRange) {
		t.Errorf("UnmarshalText(-1e999): got error %v, want ErrRange", err)
	}
}
