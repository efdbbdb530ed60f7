// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"errors"
	"fmt"

	"gitlab.com/yawning/secp256k1-vrf/internal/h2c"
)

// ErrHashFailed is returned by HashToCurve when a map_to_curve branch hits
// its division-by-zero case; this has negligible probability for any msg,
// and only exists because the maps are not total functions over Fq.
var ErrHashFailed = errors.New("secp256k1: hash-to-curve failed")

// H2CKind selects a hash-to-curve map_to_curve variant.
type H2CKind = h2c.Kind

// The three map_to_curve variants this package implements.  SW and SSWU/
// OSWU reach the same point distribution by different paths; OSWU is the
// one worth reaching for when a single-inversion implementation matters,
// since it defers its isogeny's inversion instead of paying for it twice
// like SSWU does.  None of the three maps is constant-time: each branches
// on quadratic residuosity and on parity.
const (
	H2CSW   = h2c.SW
	H2CSSWU = h2c.SSWU
	H2COSWU = h2c.OSWU
)

// HashToCurve hashes msg to a point on secp256k1, using the given
// map_to_curve variant, per draft-irtf-cfrg-hash-to-curve.  The domain
// separation tag is fixed per variant (see h2c.Kind.DST) so that
// implementations of this library's test vectors agree bit-for-bit.
func HashToCurve(msg []byte, kind H2CKind) (*Point, error) {
	x, y, err := h2c.Hash(msg, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrHashFailed, err)
	}

	r := newPointFromAffine(x, y)
	return NewIdentityPoint().ClearCofactor(r), nil
}
