// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of cascades.

package cascade

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const cascadeGobVersion byte = 1

// gobEncode encodes x as a version byte, a limb count and the limbs as
// big-endian IEEE 754 binary64 values. Trailing zero limbs are not encoded.
func gobEncode(x []float64) []byte {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	buf := make([]byte, 2+8*n)
	buf[0] = cascadeGobVersion
	buf[1] = byte(n)
	for i, l := range x[:n] {
		binary.BigEndian.PutUint64(buf[2+8*i:], math.Float64bits(l))
	}
	return buf
}

// gobDecode sets z to the cascade nearest to the limbs encoded in buf. The
// limbs are renormalized, so any sequence of float64 values decodes to a
// valid cascade. An empty buf decodes to +0.
func gobDecode(z []float64, buf []byte, typ string) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		setSpecial(z, 0)
		return nil
	}
	if buf[0] != cascadeGobVersion {
		return errors.Errorf("%s.GobDecode: encoding version %d not supported", typ, buf[0])
	}
	if len(buf) < 2 {
		return errors.Errorf("%s.GobDecode: buffer too small", typ)
	}
	n := int(buf[1])
	if n == 0 || n > maxLimbs || len(buf) != 2+8*n {
		return errors.Errorf("%s.GobDecode: invalid encoding of %d limbs in %d bytes", typ, n, len(buf))
	}
	var lb [maxLimbs]float64
	l := lb[:n]
	for i := range l {
		l[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[2+8*i:]))
	}
	renorm(z, l)
	return nil
}

func unmarshalText(z []float64, text []byte, typ string) error {
	if err := parse(z, string(text)); err != nil {
		return errors.WithMessagef(err, "cascade: cannot unmarshal %q into a *%s", text, typ)
	}
	return nil
}

// GobEncode implements the gob.GobEncoder interface. The limbs of x are
// marshaled exactly.
func (x DD) GobEncode() ([]byte, error) { return gobEncode(x.l[:]), nil }

// GobDecode implements the gob.GobDecoder interface. A value encoded from a
// wider cascade is rounded to the nearest DD.
func (z *DD) GobDecode(buf []byte) error {
	var t DD
	if err := gobDecode(t.l[:], buf, "cascade.DD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. x is
// marshaled with enough digits to parse back to the same value when its
// limbs span the full precision of a DD.
func (x DD) MarshalText() (text []byte, err error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the same syntax as ParseDD.
func (z *DD) UnmarshalText(text []byte) error {
	var t DD
	if err := unmarshalText(t.l[:], text, "cascade.DD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x TD) GobEncode() ([]byte, error) { return gobEncode(x.l[:]), nil }

// GobDecode implements the gob.GobDecoder interface.
func (z *TD) GobDecode(buf []byte) error {
	var t TD
	if err := gobDecode(t.l[:], buf, "cascade.TD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x TD) MarshalText() (text []byte, err error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *TD) UnmarshalText(text []byte) error {
	var t TD
	if err := unmarshalText(t.l[:], text, "cascade.TD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x QD) GobEncode() ([]byte, error) { return gobEncode(x.l[:]), nil }

// GobDecode implements the gob.GobDecoder interface.
func (z *QD) GobDecode(buf []byte) error {
	var t QD
	if err := gobDecode(t.l[:], buf, "cascade.QD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x QD) MarshalText() (text []byte, err error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *QD) UnmarshalText(text []byte) error {
	var t QD
	if err := unmarshalText(t.l[:], text, "cascade.QD"); err != nil {
		return err
	}
	*z = t.valid()
	return nil
}
