// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

// Mathematical constants to 70 significant digits, more than any cascade can
// hold.
const (
	Pi     = "3.141592653589793238462643383279502884197169399375105820974944592307816"
	E      = "2.718281828459045235360287471352662497757247093699959574966967627724077"
	Ln2    = "0.6931471805599453094172321214581765680755001343602552541206800094933936"
	Ln10   = "2.302585092994045684017991454684364207601101488628772976033327900967573"
	Sqrt2  = "1.414213562373095048801688724209698078569671875376948073176679737990732"
	Log2E  = "1.442695040888963407359924681001892137426645954152985934135449406931109"
	Log10E = "0.4342944819032518276511289189166050822943970058036665661144537831658646"
)

// Mathematical constants, rounded to each cascade width.
var (
	DDPi     = MustParseDD(Pi)
	DDE      = MustParseDD(E)
	DDLn2    = MustParseDD(Ln2)
	DDLn10   = MustParseDD(Ln10)
	DDSqrt2  = MustParseDD(Sqrt2)
	DDLog2E  = MustParseDD(Log2E)
	DDLog10E = MustParseDD(Log10E)

	TDPi     = MustParseTD(Pi)
	TDE      = MustParseTD(E)
	TDLn2    = MustParseTD(Ln2)
	TDLn10   = MustParseTD(Ln10)
	TDSqrt2  = MustParseTD(Sqrt2)
	TDLog2E  = MustParseTD(Log2E)
	TDLog10E = MustParseTD(Log10E)

	QDPi     = MustParseQD(Pi)
	QDE      = MustParseQD(E)
	QDLn2    = MustParseQD(Ln2)
	QDLn10   = MustParseQD(Ln10)
	QDSqrt2  = MustParseQD(Sqrt2)
	QDLog2E  = MustParseQD(Log2E)
	QDLog10E = MustParseQD(Log10E)
)

// Machine epsilons: the distance from 1 to the next larger value whose limbs
// span the nominal precision.
var (
	DDEpsilon = NewDD(0x1p-104)
	TDEpsilon = NewTD(0x1p-156)
	QDEpsilon = NewQD(0x1p-208)
)
