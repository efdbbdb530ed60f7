// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const katMsg = "hello, hash to secp256k1 "

func mustFieldPointFromDecimal(t *testing.T, xDec, yDec string) *Point {
	t.Helper()

	x, ok := new(big.Int).SetString(xDec, 10)
	require.True(t, ok)
	y, ok := new(big.Int).SetString(yDec, 10)
	require.True(t, ok)

	var buf [65]byte
	buf[0] = 0x04
	x.FillBytes(buf[1:33])
	y.FillBytes(buf[33:65])

	p, err := NewPointFromBytes(buf[:])
	require.NoError(t, err)
	return p
}

// S1/S2: the hash-to-curve KAT vectors from spec section 6/8.
func TestHashToCurveKATs(t *testing.T) {
	t.Run("SW", func(t *testing.T) {
		want := mustFieldPointFromDecimal(t,
			"30086692596842889525644937022152848460581736901329875745404997501727200602196",
			"27705106490549855196627610533769201525949575606514908196706981264818627387209",
		)

		got, err := HashToCurve([]byte(katMsg), H2CSW)
		require.NoError(t, err)
		require.True(t, got.Equal(want))
	})
	t.Run("SSWU", func(t *testing.T) {
		want := mustFieldPointFromDecimal(t,
			"10743741680020334228777834318532104455308224940808944015622063197025843808663",
			"38146701389086009568131611577699099700782252859687674831782271987177742184954",
		)

		got, err := HashToCurve([]byte(katMsg), H2CSSWU)
		require.NoError(t, err)
		require.True(t, got.Equal(want))
	})
}

func TestHashToCurveIsDeterministic(t *testing.T) {
	for _, kind := range []H2CKind{H2CSW, H2CSSWU, H2COSWU} {
		p1, err := HashToCurve([]byte("some message"), kind)
		require.NoError(t, err)
		p2, err := HashToCurve([]byte("some message"), kind)
		require.NoError(t, err)
		require.True(t, p1.Equal(p2))

		other, err := HashToCurve([]byte("some other message"), kind)
		require.NoError(t, err)
		require.False(t, p1.Equal(other))
	}
}
