// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/secp256k1-vrf/internal/field"
)

var curveA = field.MustFromDecimal("0") // secp256k1: A == 0.

func TestDeriveSWConstantsAgreesWithLiterals(t *testing.T) {
	c1, c2, c3, c4, ok := deriveSWConstants(swZ, curveA, curveB)
	require.True(t, ok, "Z=1 must be a valid SW candidate for secp256k1")

	require.True(t, fEqual(c1, swC1), "C1")
	require.True(t, fEqual(c2, swC2), "C2")
	require.True(t, fEqual(c3, swC3), "C3")
	require.True(t, fEqual(c4, swC4), "C4")
}

func TestZCandidateFilter(t *testing.T) {
	// Property 4: Z=1 satisfies all three criteria for secp256k1 (A=0, B=7).
	require.True(t, zIsValidSWCandidate(swZ, curveA, curveB))

	found := false
	for _, cand := range []string{"1", "2", "3", "4", "5"} {
		z := field.MustFromDecimal(cand)
		if zIsValidSWCandidate(z, curveA, curveB) {
			found = true
		}
	}
	require.True(t, found, "Z candidate search must be non-empty for secp256k1")
}

func TestMapSWOnCurveAndParity(t *testing.T) {
	for i := 1; i < 50; i++ {
		u := field.MustFromDecimal(strconv.Itoa(i))
		x, y, err := MapSW(u)
		require.NoError(t, err, "MapSW(%d)", i)

		lhs := fSquare(y)
		rhs := gSecp256k1(x)
		require.True(t, fEqual(lhs, rhs), "MapSW(%d): point not on curve", i)
		require.Equal(t, field.Parity(u), field.Parity(y), "MapSW(%d): parity law", i)
	}
}
