// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// toAffine converts a Jacobian (X, Y, Z) triple, x = X/Z^2, y = Y/Z^3, to
// affine coordinates.  Ported from
// original_source/elliptic-curve/src/hash_to_curve/optimized_swu/jacobian.rs.
func toAffine(x, y, z *dcred.FieldVal) (ax, ay *dcred.FieldVal) {
	if fIsZero(z) {
		// The isogeny map's denominators vanish only when both map_to_curve
		// branches fed it a degenerate input, which cannot happen for any
		// u produced by hash_to_field.
		panic("internal/h2c: toAffine: point at infinity")
	}
	if fEqual(z, fieldOne) {
		return x, y
	}

	zInv := fInverse(z)
	zInv2 := fSquare(zInv)
	ax = fMul(x, zInv2)
	ay = fMul(y, fMul(zInv2, zInv))
	return ax, ay
}
