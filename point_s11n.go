// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"errors"

	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// See: https://www.secg.org/sec1-v2.pdf

const (
	// CompressedPointSize is the size of a compressed point in bytes, in
	// the SEC 1 encoding (`Y_EvenOrOdd | X`).
	CompressedPointSize = 33

	// PointSize is the size of an uncompressed point in bytes, in the
	// SEC 1 encoding (`0x04 | X | Y`).
	PointSize = 65

	// IdentityPointSize is the size of the point at infinity in bytes.
	IdentityPointSize = 1

	prefixIdentity = 0x00
)

// UncompressedBytes returns the SEC 1 uncompressed encoding of v.  This is
// the only encoding used in hash-to-curve and VRF transcripts; any other
// framing (compressed, length-prefixed) would silently break
// interoperability with anything that reproduces this library's KATs.
func (v *Point) UncompressedBytes() []byte {
	if v.IsIdentity() {
		return []byte{prefixIdentity}
	}

	aff := NewPointFrom(v)
	aff.p.ToAffine()

	pk := dcred.NewPublicKey(&aff.p.X, &aff.p.Y)
	return pk.SerializeUncompressed()
}

// CompressedBytes returns the SEC 1 compressed encoding of v.
func (v *Point) CompressedBytes() []byte {
	if v.IsIdentity() {
		return []byte{prefixIdentity}
	}

	aff := NewPointFrom(v)
	aff.p.ToAffine()

	pk := dcred.NewPublicKey(&aff.p.X, &aff.p.Y)
	return pk.SerializeCompressed()
}

// SetBytes sets v = src, where src is a SEC 1 encoding of a point
// (identity, compressed, or uncompressed).  If src is not a valid
// encoding, SetBytes returns nil and an error, and the receiver is
// unchanged.
func (v *Point) SetBytes(src []byte) (*Point, error) {
	if len(src) == IdentityPointSize {
		if src[0] != prefixIdentity {
			return nil, errors.New("secp256k1: malformed point encoding")
		}
		v.Identity()
		return v, nil
	}

	pk, err := dcred.ParsePubKey(src)
	if err != nil {
		return nil, errors.New("secp256k1: malformed point encoding: " + err.Error())
	}

	var jp dcred.JacobianPoint
	pk.AsJacobian(&jp)
	v.p.Set(&jp)

	return v, nil
}

// NewPointFromBytes creates a new Point from either of the SEC 1 encodings
// (identity, compressed, or uncompressed).
func NewPointFromBytes(src []byte) (*Point, error) {
	return new(Point).SetBytes(src)
}
