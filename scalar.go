// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package secp256k1 wraps github.com/decred/dcrd/dcrec/secp256k1/v4 with the
// Scalar/Point API this module's hash-to-curve, Pedersen, and VRF packages
// build on, plus the canonical SEC 1 serialization they all share.
package secp256k1

import (
	"errors"
	"io"
	"math/big"

	"filippo.io/bigmod"
	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the size of a scalar in bytes.
const ScalarSize = 32

// scalarWideSize is the maximum length in bytes accepted by
// Scalar.SetWideBytes (mirrors internal/field's WideSize).
const scalarWideSize = 64

const maxScalarResamples = 8

var errRejectionSampling = errors.New("secp256k1: failed rejection sampling")

var (
	nBig = func() *big.Int {
		n, ok := new(big.Int).SetString(
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16,
		)
		if !ok {
			panic("secp256k1: failed to parse n")
		}
		return n
	}()

	nMod = bigmod.NewModulusFromBig(nBig)

	nWideMod = bigmod.NewModulusFromBig(
		new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 8*scalarWideSize), big.NewInt(1)),
	)
)

// Scalar is an integer modulo the order of the secp256k1 base point.  The
// zero value is a valid zero scalar.
type Scalar struct {
	s dcred.ModNScalar
}

// Zero sets s = 0 and returns s.
func (s *Scalar) Zero() *Scalar {
	s.s.SetInt(0)
	return s
}

// One sets s = 1 and returns s.
func (s *Scalar) One() *Scalar {
	s.s.SetInt(1)
	return s
}

// Set sets s = a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.s.Set(&a.s)
	return s
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.s.Set(&a.s).Add(&b.s)
	return s
}

// Subtract sets s = a - b and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	var bNeg dcred.ModNScalar
	bNeg.Set(&b.s).Negate()
	s.s.Set(&a.s).Add(&bNeg)
	return s
}

// Negate sets s = -a and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.s.Set(&a.s).Negate()
	return s
}

// Multiply sets s = a * b and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.s.Set(&a.s).Mul(&b.s)
	return s
}

// IsZero returns true iff s == 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Equal returns true iff s == a.
func (s *Scalar) Equal(a *Scalar) bool {
	return s.s.Equals(&a.s)
}

// Bytes returns the canonical big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

// SetCanonicalBytes sets s = src, where src is a 32-byte big-endian
// encoding of s, and returns s.  If src is not a canonical encoding of a
// value strictly less than the group order, SetCanonicalBytes returns nil
// and an error, and the receiver is unchanged.
func (s *Scalar) SetCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	var tmp dcred.ModNScalar
	if overflow := tmp.SetByteSlice(src[:]); overflow {
		return nil, errors.New("secp256k1: scalar value out of range")
	}
	s.s.Set(&tmp)
	return s, nil
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarFrom creates a new Scalar from another.
func NewScalarFrom(other *Scalar) *Scalar {
	return NewScalar().Set(other)
}

// NewScalarFromCanonicalBytes creates a new Scalar from the canonical
// big-endian byte representation.
func NewScalarFromCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	return NewScalar().SetCanonicalBytes(src)
}

// SetWideBytes sets s = OS2IP(src) mod n, where src is a big-endian
// encoding of an integer with a length in the range [32,64] bytes, and
// returns s.  This is the scalar-field analogue of internal/field's
// SetWideBytes, used to reduce a hash_to_field output against the group
// order n instead of the base field's p (the VRF's Fiat-Shamir challenge
// needs the former).
func (s *Scalar) SetWideBytes(src []byte) *Scalar {
	switch {
	case len(src) < ScalarSize:
		panic("secp256k1: wide scalar too short")
	case len(src) > scalarWideSize:
		panic("secp256k1: wide scalar too long")
	case len(src) == ScalarSize:
		var tmp dcred.ModNScalar
		tmp.SetByteSlice(src)
		s.s.Set(&tmp)
		return s
	}

	n, err := bigmod.NewNat().SetBytes(src, nWideMod)
	if err != nil {
		// Can't happen: nWideMod is larger than any scalarWideSize-byte value.
		panic("secp256k1: failed to stage wide scalar: " + err.Error())
	}
	reduced := bigmod.NewNat().Mod(n, nMod)

	var buf [ScalarSize]byte
	copy(buf[:], reduced.Bytes(nMod))

	var tmp dcred.ModNScalar
	tmp.SetByteSlice(buf[:])
	s.s.Set(&tmp)
	return s
}

// NewScalarFromWideBytes creates a new Scalar by reducing src mod n, as
// SetWideBytes does.
func NewScalarFromWideBytes(src []byte) *Scalar {
	return NewScalar().SetWideBytes(src)
}

// SampleUniformScalar draws a scalar uniformly at random from rand, via
// rejection sampling on decred's overflow flag so that every value in
// [1, n) is equally likely (zero is rejected along with overflowing reads).  The odds of needing more than one read are
// astronomically small; maxScalarResamples exists only to turn a broken
// entropy source into an error instead of an infinite loop.
func SampleUniformScalar(rand io.Reader) (*Scalar, error) {
	var buf [ScalarSize]byte
	s := NewScalar()
	for i := 0; i < maxScalarResamples; i++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, err
		}

		var tmp dcred.ModNScalar
		if overflow := tmp.SetByteSlice(buf[:]); !overflow && !tmp.IsZero() {
			s.s.Set(&tmp)
			return s, nil
		}
	}

	return nil, errRejectionSampling
}
