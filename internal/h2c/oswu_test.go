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

func TestMapOSWUOnCurveAndParity(t *testing.T) {
	for i := 1; i < 50; i++ {
		u := field.MustFromDecimal(strconv.Itoa(i))
		x, y, err := MapOSWU(u)
		require.NoError(t, err, "MapOSWU(%d)", i)

		lhs := fSquare(y)
		rhs := gSecp256k1(x)
		require.True(t, fEqual(lhs, rhs), "MapOSWU(%d): point not on curve", i)
		require.Equal(t, field.Parity(u), field.Parity(y), "MapOSWU(%d): parity law", i)
	}
}
