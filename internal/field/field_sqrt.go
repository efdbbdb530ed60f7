// Copyright (c) 2013, 2014 Pieter Wuille
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package field

import dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"

// This routine is shamelessly lifted from libsecp256k1.

// Sqrt sets dst = Sqrt(a), and returns true iff the square root exists.  In
// all other cases dst is left with an unspecified value and false is
// returned.  a is left unmodified.
func Sqrt(dst, a *dcred.FieldVal) bool {
	// Given that p is congruent to 3 mod 4, the square root of a mod p
	// (if it exists) is the (p+1)/4'th power of a.
	//
	// As (p+1)/4 is an even number, it will have the same result for a
	// and for (-a).  Only one of these two numbers actually has a square
	// root however, so the result is checked at the end by squaring and
	// comparing to the input.

	var (
		x2, x3, x6, x9, x11, x22       dcred.FieldVal
		x44, x88, x176, x220, x223, t1 dcred.FieldVal
		r                              dcred.FieldVal
	)

	// The binary representation of (p + 1)/4 has 3 blocks of 1s, with
	// lengths in { 2, 22, 223 }.  Use an addition chain to calculate
	// 2^n - 1 for each block: 1, [2], 3, 6, 9, 11, [22], 44, 88, 176,
	// 220, [223].

	x2.SquareVal(a).Mul(a)

	x3.SquareVal(&x2).Mul(a)

	x6.Set(&x3)
	for i := 0; i < 3; i++ {
		x6.Square()
	}
	x6.Mul(&x3)

	x9.Set(&x6)
	for i := 0; i < 3; i++ {
		x9.Square()
	}
	x9.Mul(&x3)

	x11.Set(&x9)
	for i := 0; i < 2; i++ {
		x11.Square()
	}
	x11.Mul(&x2)

	x22.Set(&x11)
	for i := 0; i < 11; i++ {
		x22.Square()
	}
	x22.Mul(&x11)

	x44.Set(&x22)
	for i := 0; i < 22; i++ {
		x44.Square()
	}
	x44.Mul(&x22)

	x88.Set(&x44)
	for i := 0; i < 44; i++ {
		x88.Square()
	}
	x88.Mul(&x44)

	x176.Set(&x88)
	for i := 0; i < 88; i++ {
		x176.Square()
	}
	x176.Mul(&x88)

	x220.Set(&x176)
	for i := 0; i < 44; i++ {
		x220.Square()
	}
	x220.Mul(&x44)

	x223.Set(&x220)
	for i := 0; i < 3; i++ {
		x223.Square()
	}
	x223.Mul(&x3)

	// The final result is then assembled using a sliding window over the
	// blocks.

	t1.Set(&x223)
	for i := 0; i < 23; i++ {
		t1.Square()
	}
	t1.Mul(&x22)
	for i := 0; i < 6; i++ {
		t1.Square()
	}
	t1.Mul(&x2)
	t1.Square()
	r.SquareVal(&t1)

	// Check that a square root was actually calculated.
	t1.SquareVal(&r)
	t1.Normalize()
	var aNorm dcred.FieldVal
	aNorm.Set(a).Normalize()
	isSqrt := t1.Equals(&aNorm)

	r.Normalize()
	dst.Set(&r)

	return isSqrt
}
