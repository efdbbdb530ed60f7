// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"gitlab.com/yawning/secp256k1-vrf/internal/field"
)

// Additional isogeny-map constants for the Jacobian/optimized variant; Z,
// C1, A, B, K10-K13 and K20-K21 are shared with sswu.go since both target
// the same isogenous curve.  Ported from
// original_source/elliptic-curve/src/hash_to_curve/optimized_swu/secp256K1_oswu.rs.
var (
	k30 = field.MustFromDecimal("34308767181427020866243254817389009734302217678708315270950395261602617680444")
	k31 = field.MustFromDecimal("90176424683627901097894375140309208301239340832535417794535213712559228940707")
	k32 = field.MustFromDecimal("18838297850894827642325086593754480949722102663385265052647920822575864670513")
	k33 = field.MustFromDecimal("21442979488391888041402034260868131083938886049192697044343997038501636050308")

	k40 = field.MustFromDecimal("115792089237316195423570985008687907853269984665640564039457584007908834670907")
	k41 = field.MustFromDecimal("55193343495945455350115628863323870199952967620749340073805588608787913909619")
	k42 = field.MustFromDecimal("45465685024895564648493397996619354229416833248839900263663526177913007417199")
)

// isogenyMapJacobian evaluates the same 3-isogeny as isogenyMapAffine, but
// entirely in Jacobian coordinates so the whole map_to_curve defers to a
// single inversion (done by the caller, via toAffine) instead of inverting
// once here and once more in the ordinary field division of x.
func isogenyMapJacobian(isoX, isoY, isoZ *dcred.FieldVal) (x, y, z *dcred.FieldVal) {
	z2 := fSquare(isoZ)
	z3 := fMul(z2, isoZ)
	z4 := fSquare(z2)
	z6 := fSquare(z3)

	x2 := fSquare(isoX)
	x3 := fMul(x2, isoX)

	xNum := fAdd(fAdd(fAdd(fMul(x3, k13), fMul(fMul(x2, k12), z2)), fMul(fMul(isoX, k11), z4)), fMul(k10, z6))
	xDen := fAdd(fAdd(fMul(x2, z2), fMul(fMul(isoX, k21), z4)), fMul(k20, z6))

	yNum := fMul(fAdd(fAdd(fAdd(fMul(x3, k33), fMul(fMul(x2, k32), z2)), fMul(fMul(isoX, k31), z4)), fMul(k30, z6)), isoY)
	yDen := fMul(fAdd(fAdd(x3, fMul(fMul(x2, k42), z2)), fMul(fMul(isoX, k41), z4)), z3)
	yDen = fAdd(yDen, fMul(fMul(k40, z6), z3))

	zOut := fMul(xDen, yDen)
	xOut := fMul(fMul(xNum, yDen), zOut)
	yOut := fMul(fMul(fMul(yNum, xDen), zOut), zOut)

	return xOut, yOut, zOut
}

// MapOSWU maps a field element to a secp256k1 point using the same
// mathematics as MapSSWU, but carries the isogeny evaluation in Jacobian
// coordinates (Wahby-Boneh, https://eprint.iacr.org/2019/403.pdf section
// 4.2) so only the final coordinate conversion inverts. Like MapSSWU it
// never actually fails for this curve's constants; it returns an error for
// signature symmetry with MapSW.
func MapOSWU(u *dcred.FieldVal) (x, y *dcred.FieldVal, err error) {
	u2MulZ := fMul(fSquare(u), sswuZ)
	u4MulZ2 := fSquare(u2MulZ)
	x1Den := fAdd(u2MulZ, u4MulZ2)
	x1Num := fMul(fAdd(x1Den, fieldOne), sswuC1)
	if fIsZero(x1Den) {
		// x1 = C1, the same exceptional-case value MapSSWU arrives at.
		x1Den = fieldOne
	}

	num2 := fSquare(x1Num)
	den2 := fSquare(x1Den)
	den3 := fMul(den2, x1Den)

	x1 := fMul(x1Num, x1Den)
	y1Num := fAdd(fMul(fAdd(num2, fMul(sswuA, den2)), x1Num), fMul(sswuB, den3))
	// Y1^2 in Jacobian coordinates (Z = x1Den): g(x1) * den3^2.
	y1Square := fMul(y1Num, den3)

	var root dcred.FieldVal
	if field.Sqrt(&root, y1Square) {
		jx, jy, jz := isogenyMapJacobian(x1, &root, x1Den)
		ax, ay := toAffine(jx, jy, jz)
		fixParity(ay, u)
		return ax, ay, nil
	}

	x2 := fMul(x1, u2MulZ)
	y1SquareZ := fMul(y1Square, sswuZ)
	if !field.Sqrt(&root, y1SquareZ) {
		// y1_square is a non-residue here (the branch not taken above), and
		// Z is a non-residue by construction, so their product is always a
		// residue.
		panic("internal/h2c: MapOSWU: neither root candidate was a quadratic residue")
	}
	y2 := fMul(fMul(&root, u2MulZ), u)

	jx, jy, jz := isogenyMapJacobian(x2, y2, x1Den)
	ax, ay := toAffine(jx, jy, jz)
	fixParity(ay, u)
	return ax, ay, nil
}
