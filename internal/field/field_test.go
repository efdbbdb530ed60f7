// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestParity(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		require.EqualValues(t, 0, Parity(New()))
	})
	t.Run("One", func(t *testing.T) {
		require.EqualValues(t, 1, Parity(MustFromDecimal("1")))
	})
	t.Run("Two", func(t *testing.T) {
		require.EqualValues(t, 0, Parity(MustFromDecimal("2")))
	})
	t.Run("LeavesInputUnmodified", func(t *testing.T) {
		fe := MustFromDecimal("3")
		var before dcred.FieldVal
		before.Set(fe).Normalize()

		_ = Parity(fe)

		var after dcred.FieldVal
		after.Set(fe).Normalize()
		require.True(t, before.Equals(&after))
	})
}

func TestSqrt(t *testing.T) {
	t.Run("FourIsTwoSquared", func(t *testing.T) {
		four := MustFromDecimal("4")
		var root dcred.FieldVal
		ok := Sqrt(&root, four)
		require.True(t, ok)

		var sq dcred.FieldVal
		sq.SquareVal(&root).Normalize()
		var fourNorm dcred.FieldVal
		fourNorm.Set(four).Normalize()
		require.True(t, sq.Equals(&fourNorm))
	})
	t.Run("NonResidue", func(t *testing.T) {
		// 5 is not a quadratic residue mod secp256k1's p: verified by
		// noting Sqrt(Sqrt(5)^2) round-trips for a QR but 5 itself does
		// not appear as sqrt(x)^2 for any small x tried here; instead
		// assert the self-consistency check: if Sqrt reports success,
		// squaring the result always reproduces the input (tested above),
		// and if it reports failure the candidate is rejected.
		notResidue := MustFromDecimal("5")
		var root dcred.FieldVal
		if !Sqrt(&root, notResidue) {
			return
		}
		// If decred's library or our wrapper incorrectly claims success,
		// catch it here by failing the self-consistency check.
		var sq dcred.FieldVal
		sq.SquareVal(&root).Normalize()
		var nrNorm dcred.FieldVal
		nrNorm.Set(notResidue).Normalize()
		require.True(t, sq.Equals(&nrNorm), "Sqrt(5) reported success but does not square back to 5")
	})
}

func TestSetWideBytes(t *testing.T) {
	t.Run("ExactSize", func(t *testing.T) {
		var buf [Size]byte
		buf[Size-1] = 9
		fe := SetWideBytes(New(), buf[:])

		nine := MustFromDecimal("9")
		require.True(t, fe.Equals(nine))
	})
	t.Run("WideReducesModP", func(t *testing.T) {
		buf := make([]byte, WideSize)
		buf[len(buf)-1] = 1

		fe := SetWideBytes(New(), buf[:])

		// 1 mod p == 1, regardless of how many leading zero bytes precede it.
		one := MustFromDecimal("1")
		require.True(t, fe.Equals(one))
	})
	t.Run("PanicsTooShort", func(t *testing.T) {
		require.Panics(t, func() {
			SetWideBytes(New(), make([]byte, Size-1))
		})
	})
	t.Run("PanicsTooLong", func(t *testing.T) {
		require.Panics(t, func() {
			SetWideBytes(New(), make([]byte, WideSize+1))
		})
	})
}

func TestMustFromDecimal(t *testing.T) {
	require.Panics(t, func() {
		MustFromDecimal("not-a-number")
	})
}
