// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package field supplies the pieces of secp256k1's base field Fq that
// the external field/group backend (decred's secp256k1 package) does not
// expose generically: a modular square root and the sgn0/parity selector
// used throughout the hash-to-curve maps.  Everything else (add, multiply,
// square, invert, canonical (de)serialization) is the backend's job and is
// used directly via *secp256k1.FieldVal.
package field

import (
	"math/big"

	"filippo.io/bigmod"
	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Size is the length in bytes of the canonical big-endian encoding of an
// Fq element.
const Size = 32

var (
	pBig = func() *big.Int {
		p, ok := new(big.Int).SetString(
			"fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16,
		)
		if !ok {
			panic("internal/field: failed to parse p")
		}
		return p
	}()

	pMod = bigmod.NewModulusFromBig(pBig)

	// wideMod is an odd modulus strictly greater than the largest value
	// representable in WideSize bytes (2^(8*WideSize)+1), so
	// bigmod.Nat.SetBytes never overflows it; this is only a staging area
	// before the real reduction mod p.
	wideMod = bigmod.NewModulusFromBig(
		new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 8*WideSize), big.NewInt(1)),
	)
)

// WideSize is the maximum length in bytes accepted by SetWideBytes.
const WideSize = 64

// New returns a new zero-valued field element.
func New() *dcred.FieldVal {
	return new(dcred.FieldVal)
}

// MustFromDecimal returns a field element set to the decimal string s,
// reduced mod p.  It panics if s is not a valid base-10 integer.  This is
// only meant for package-level constant initialization.
func MustFromDecimal(s string) *dcred.FieldVal {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("internal/field: invalid decimal constant: " + s)
	}
	i.Mod(i, pBig)

	var buf [Size]byte
	i.FillBytes(buf[:])

	fe := New()
	fe.SetBytes(&buf)
	return fe
}

// SetWideBytes sets fe = OS2IP(src) mod p, where src is a big-endian
// encoding of an integer with a length in the range [32,64] bytes, and
// returns fe.  This is the reduction step hash_to_field needs after
// expand_message_xmd produces more entropy than fits in a single
// field-sized word.
func SetWideBytes(fe *dcred.FieldVal, src []byte) *dcred.FieldVal {
	switch {
	case len(src) < Size:
		panic("internal/field: wide element too short")
	case len(src) > WideSize:
		panic("internal/field: wide element too long")
	case len(src) == Size:
		fe.SetByteSlice(src)
		return fe
	}

	n, err := bigmod.NewNat().SetBytes(src, wideMod)
	if err != nil {
		// Can't happen: wideMod is larger than any WideSize-byte value.
		panic("internal/field: failed to stage wide element: " + err.Error())
	}
	// Nat.Mod is not aliasing-safe, so reduce into a fresh Nat.
	reduced := bigmod.NewNat().Mod(n, pMod)

	var buf [Size]byte
	copy(buf[:], reduced.Bytes(pMod))
	fe.SetBytes(&buf)
	return fe
}

// Parity returns the sgn0 selector of fe: the least-significant bit of its
// canonical non-negative integer representative.  fe is left unmodified.
func Parity(fe *dcred.FieldVal) uint64 {
	var tmp dcred.FieldVal
	tmp.Set(fe)
	tmp.Normalize()
	if tmp.IsOdd() {
		return 1
	}
	return 0
}
