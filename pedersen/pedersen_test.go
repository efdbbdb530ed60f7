// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package pedersen

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	secp256k1 "gitlab.com/yawning/secp256k1-vrf"
)

func randomVector(t *testing.T, n int) []*secp256k1.Scalar {
	t.Helper()

	v := make([]*secp256k1.Scalar, n)
	for i := range v {
		s, err := secp256k1.SampleUniformScalar(rand.Reader)
		require.NoError(t, err)
		v[i] = s
	}
	return v
}

// S6: len=4, random v/r, recomputed MSM matches Commit.
func TestCommitMatchesMSM(t *testing.T) {
	params, err := Setup(rand.Reader, 4)
	require.NoError(t, err)

	v := randomVector(t, 4)
	r, err := secp256k1.SampleUniformScalar(rand.Reader)
	require.NoError(t, err)

	got, err := Commit(params, v, r)
	require.NoError(t, err)

	msm := secp256k1.NewIdentityPoint().MultiScalarMult(v, params.G)
	blind := secp256k1.NewIdentityPoint().ScalarMult(r, params.H)
	want := secp256k1.NewIdentityPoint().Add(msm, blind)

	require.True(t, got.Equal(want))
}

// Property 7: commitment homomorphism.
func TestCommitHomomorphism(t *testing.T) {
	params, err := Setup(rand.Reader, 3)
	require.NoError(t, err)

	v1, v2 := randomVector(t, 3), randomVector(t, 3)
	r1, err := secp256k1.SampleUniformScalar(rand.Reader)
	require.NoError(t, err)
	r2, err := secp256k1.SampleUniformScalar(rand.Reader)
	require.NoError(t, err)

	c1, err := Commit(params, v1, r1)
	require.NoError(t, err)
	c2, err := Commit(params, v2, r2)
	require.NoError(t, err)

	vSum := make([]*secp256k1.Scalar, 3)
	for i := range vSum {
		vSum[i] = secp256k1.NewScalar().Add(v1[i], v2[i])
	}
	rSum := secp256k1.NewScalar().Add(r1, r2)

	cSum, err := Commit(params, vSum, rSum)
	require.NoError(t, err)

	lhs := secp256k1.NewIdentityPoint().Add(c1, c2)
	require.True(t, lhs.Equal(cSum))
}

func TestCommitTooLong(t *testing.T) {
	params, err := Setup(rand.Reader, 2)
	require.NoError(t, err)

	v := randomVector(t, 3)
	r, err := secp256k1.SampleUniformScalar(rand.Reader)
	require.NoError(t, err)

	_, err = Commit(params, v, r)
	require.ErrorIs(t, err, ErrCommitmentTooLong)
}

func TestCommitShorterThanParamsIsFine(t *testing.T) {
	params, err := Setup(rand.Reader, 4)
	require.NoError(t, err)

	v := randomVector(t, 2)
	r, err := secp256k1.SampleUniformScalar(rand.Reader)
	require.NoError(t, err)

	_, err = Commit(params, v, r)
	require.NoError(t, err)
}

func TestSetupDistinctGenerators(t *testing.T) {
	params, err := Setup(rand.Reader, 4)
	require.NoError(t, err)

	require.Len(t, params.G, 4)
	require.NotNil(t, params.H)

	seen := make(map[string]bool)
	for _, g := range params.G {
		seen[string(g.UncompressedBytes())] = true
	}
	seen[string(params.H.UncompressedBytes())] = true
	require.Len(t, seen, 5, "all sampled generators should be distinct")
}
