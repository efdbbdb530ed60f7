// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package pedersen implements a Pedersen vector commitment over secp256k1:
// commit to a vector of scalars with a single blinding factor, binding and
// hiding under the discrete log assumption. Ported from
// original_source/commitment/src/pedersen.rs.
package pedersen

import (
	"errors"
	"fmt"
	"io"

	secp256k1 "gitlab.com/yawning/secp256k1-vrf"
)

// Parameters is a set of independent generators: one per vector slot, plus
// a blinding generator h.
type Parameters struct {
	G []*secp256k1.Point
	H *secp256k1.Point
}

// ErrCommitmentTooLong is returned by Commit when the vector being
// committed to is longer than the parameters support.
var ErrCommitmentTooLong = errors.New("secp256k1/pedersen: vector exceeds parameter length")

// Setup draws len+1 uniformly random curve points (len generators plus the
// blinding generator h) from rand.
func Setup(rand io.Reader, length uint32) (*Parameters, error) {
	g := make([]*secp256k1.Point, length)
	for i := range g {
		p, err := randomPoint(rand)
		if err != nil {
			return nil, err
		}
		g[i] = p
	}

	h, err := randomPoint(rand)
	if err != nil {
		return nil, err
	}

	return &Parameters{G: g, H: h}, nil
}

// randomPoint samples a uniform curve point by sampling a uniform scalar
// and multiplying it into the generator; this is the standard "hash/sample
// a scalar, scale the base point" substitute for a direct uniform-point
// sampler, which secp256k1.Point does not expose.
func randomPoint(rand io.Reader) (*secp256k1.Point, error) {
	s, err := secp256k1.SampleUniformScalar(rand)
	if err != nil {
		return nil, err
	}
	return secp256k1.NewIdentityPoint().ScalarBaseMult(s), nil
}

// Commit computes C = sum(params.G[i] * v[i]) + params.H * r. len(v) MUST
// be <= len(params.G); the excess generators are simply unused.
func Commit(params *Parameters, v []*secp256k1.Scalar, r *secp256k1.Scalar) (*secp256k1.Point, error) {
	if len(v) > len(params.G) {
		return nil, fmt.Errorf("%w: have %d, max %d", ErrCommitmentTooLong, len(v), len(params.G))
	}

	msm := secp256k1.NewIdentityPoint().MultiScalarMult(v, params.G[:len(v)])
	blind := secp256k1.NewIdentityPoint().ScalarMult(r, params.H)

	return secp256k1.NewIdentityPoint().Add(msm, blind), nil
}
