// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"errors"

	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var errUnknownKind = errors.New("internal/h2c: unknown Kind")

// addAffine computes (x0, y0) + (x1, y1) as a secp256k1 group operation,
// returning the affine sum.  map_to_curve only ever produces points in
// affine form, so this is a lighter-weight path than round-tripping through
// the root package's Point type (which this package cannot import without
// creating an import cycle: the root package's HashToCurve wraps Hash, not
// vice versa).
func addAffine(x0, y0, x1, y1 *dcred.FieldVal) (x, y *dcred.FieldVal) {
	var p0, p1, sum dcred.JacobianPoint
	p0.X.Set(x0)
	p0.Y.Set(y0)
	p0.Z.SetInt(1)
	p1.X.Set(x1)
	p1.Y.Set(y1)
	p1.Z.SetInt(1)

	dcred.AddNonConst(&p0, &p1, &sum)
	sum.ToAffine()

	rx := new(dcred.FieldVal).Set(&sum.X)
	ry := new(dcred.FieldVal).Set(&sum.Y)
	return rx, ry
}

// Hash implements the shared hash_to_curve composition (draft-irtf-cfrg-
// hash-to-curve section 3): u = hash_to_field(msg, 2), Q0/Q1 =
// map_to_curve(u[0]), map_to_curve(u[1]), R = Q0 + Q1.  It returns the
// affine coordinates of R; cofactor clearing is the caller's job (secp256k1
// has cofactor 1, so the root package's Point.ClearCofactor is a no-op, but
// is still called explicitly to keep the composition's steps visible).
func Hash(msg []byte, kind Kind) (x, y *dcred.FieldVal, err error) {
	var mapFn func(*dcred.FieldVal) (*dcred.FieldVal, *dcred.FieldVal, error)
	switch kind {
	case SW:
		mapFn = MapSW
	case SSWU:
		mapFn = MapSSWU
	case OSWU:
		mapFn = MapOSWU
	default:
		return nil, nil, errUnknownKind
	}

	u, err := HashToField(msg, kind.DST(), 2)
	if err != nil {
		return nil, nil, err
	}

	x0, y0, err := mapFn(u[0])
	if err != nil {
		return nil, nil, err
	}
	x1, y1, err := mapFn(u[1])
	if err != nil {
		return nil, nil, err
	}

	x, y = addAffine(x0, y0, x1, y1)
	return x, y, nil
}
