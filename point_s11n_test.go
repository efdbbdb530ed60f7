// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestPointS11n(t *testing.T) {
	t.Run("GeneratorUncompressed", func(t *testing.T) {
		want := mustHex("0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

		g := NewGeneratorPoint()
		require.Equal(t, want, g.UncompressedBytes())

		p, err := NewPointFromBytes(want)
		require.NoError(t, err)
		require.True(t, p.Equal(g))
	})
	t.Run("GeneratorCompressed", func(t *testing.T) {
		want := mustHex("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")

		g := NewGeneratorPoint()
		require.Equal(t, want, g.CompressedBytes())

		p, err := NewPointFromBytes(want)
		require.NoError(t, err)
		require.True(t, p.Equal(g))
	})
	t.Run("Identity", func(t *testing.T) {
		id := NewIdentityPoint()

		require.Equal(t, []byte{prefixIdentity}, id.UncompressedBytes())
		require.Equal(t, []byte{prefixIdentity}, id.CompressedBytes())

		p, err := NewPointFromBytes([]byte{prefixIdentity})
		require.NoError(t, err)
		require.True(t, p.IsIdentity())
	})
	t.Run("RoundTripRandomPoints", func(t *testing.T) {
		s := NewScalar().One()
		p := NewIdentityPoint().ScalarBaseMult(s)
		for i := 0; i < 10; i++ {
			p.Double(p)

			uncompressed := p.UncompressedBytes()
			back, err := NewPointFromBytes(uncompressed)
			require.NoError(t, err, "[%d] uncompressed round trip", i)
			require.True(t, p.Equal(back), "[%d] uncompressed round trip", i)

			compressed := p.CompressedBytes()
			back2, err := NewPointFromBytes(compressed)
			require.NoError(t, err, "[%d] compressed round trip", i)
			require.True(t, p.Equal(back2), "[%d] compressed round trip", i)
		}
	})
	t.Run("RejectsMalformed", func(t *testing.T) {
		_, err := NewPointFromBytes([]byte{0x04, 0x01, 0x02})
		require.Error(t, err)
	})
	t.Run("RejectsMalformedIdentityPrefix", func(t *testing.T) {
		_, err := NewPointFromBytes([]byte{0x01})
		require.Error(t, err)
	})
}
