// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package vrf

import (
	"crypto/sha256"
	"io"

	secp256k1 "gitlab.com/yawning/secp256k1-vrf"
	"gitlab.com/yawning/secp256k1-vrf/internal/h2c"
)

// Proof is a Chaum-Pedersen proof that Gamma = sk*HashToCurve(enc(pk)||seed)
// for the secret key matching some known public key, without revealing it.
// Gamma doubles as the VRF's pseudorandom output (see Output).
type Proof struct {
	Gamma *secp256k1.Point
	C     *secp256k1.Scalar
	S     *secp256k1.Scalar
	Seed  []byte
}

// transcript builds the Fiat-Shamir input buf = enc(pk) || seed || enc(h)
// || enc(gamma) || enc(u) || enc(v), the framing both Prove and Verify
// must agree on bit-for-bit.
func transcript(pk, h, gamma, u, v *secp256k1.Point, seed []byte) []byte {
	buf := make([]byte, 0, 5*secp256k1.PointSize+len(seed))
	buf = append(buf, pk.UncompressedBytes()...)
	buf = append(buf, seed...)
	buf = append(buf, h.UncompressedBytes()...)
	buf = append(buf, gamma.UncompressedBytes()...)
	buf = append(buf, u.UncompressedBytes()...)
	buf = append(buf, v.UncompressedBytes()...)
	return buf
}

// Prove computes a VRF proof over seed for kp, using kind as the
// hash-to-curve map_to_curve variant.
func (kp *KeyPair) Prove(rand io.Reader, seed []byte, kind h2c.Kind) (*Proof, error) {
	pkSeed := append(append([]byte{}, kp.PublicKey.UncompressedBytes()...), seed...)

	h, err := secp256k1.HashToCurve(pkSeed, kind)
	if err != nil {
		return nil, err
	}

	gamma := secp256k1.NewIdentityPoint().ScalarMult(kp.PrivateKey, h)

	hedged, err := mitigateNonceBias(rand, kp.PrivateKey, pkSeed)
	if err != nil {
		return nil, err
	}
	r, err := secp256k1.SampleUniformScalar(hedged)
	if err != nil {
		return nil, err
	}

	u := secp256k1.NewIdentityPoint().ScalarBaseMult(r)
	v := secp256k1.NewIdentityPoint().ScalarMult(r, h)

	buf := transcript(kp.PublicKey, h, gamma, u, v, seed)
	c, err := hashToScalar(buf)
	if err != nil {
		return nil, err
	}

	// s = r - c*sk
	cSk := secp256k1.NewScalar().Multiply(c, kp.PrivateKey)
	s := secp256k1.NewScalar().Subtract(r, cSk)

	return &Proof{
		Gamma: gamma,
		C:     c,
		S:     s,
		Seed:  append([]byte{}, seed...),
	}, nil
}

// Verify checks proof against pk, using kind as the hash-to-curve
// map_to_curve variant (it MUST match the one Prove used).
func (proof *Proof) Verify(pk *secp256k1.Point, kind h2c.Kind) bool {
	pkSeed := append(append([]byte{}, pk.UncompressedBytes()...), proof.Seed...)

	h, err := secp256k1.HashToCurve(pkSeed, kind)
	if err != nil {
		return false
	}

	// u' = c*pk + s*G, v' = c*gamma + s*h
	u := secp256k1.DoubleScalarMultBasepointVartime(secp256k1.NewIdentityPoint(), proof.S, proof.C, pk)

	cGamma := secp256k1.NewIdentityPoint().ScalarMult(proof.C, proof.Gamma)
	sH := secp256k1.NewIdentityPoint().ScalarMult(proof.S, h)
	v := secp256k1.NewIdentityPoint().Add(cGamma, sH)

	buf := transcript(pk, h, proof.Gamma, u, v, proof.Seed)
	c, err := hashToScalar(buf)
	if err != nil {
		return false
	}

	return c.Equal(proof.C)
}

// Output derives the VRF's pseudorandom output from gamma. This is an
// addition over the original protocol (which treats gamma itself, or its
// serialization, as the output): hashing gamma's canonical encoding gives a
// fixed-size, uniformly-distributed output suitable for direct use as
// randomness, instead of requiring every caller to re-derive that from a
// curve point.
func (proof *Proof) Output() []byte {
	sum := sha256.Sum256(proof.Gamma.UncompressedBytes())
	return sum[:]
}
