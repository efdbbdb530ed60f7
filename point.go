// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"

// Point represents a point on the secp256k1 curve, in Jacobian
// coordinates (X, Y, Z) where x = X/Z^2, y = Y/Z^3.  The zero value is the
// point at infinity (Z == 0), which is always valid.
type Point struct {
	p dcred.JacobianPoint
}

// Identity sets v = the point at infinity, and returns v.
func (v *Point) Identity() *Point {
	v.p.X.SetInt(0)
	v.p.Y.SetInt(0)
	v.p.Z.SetInt(0)
	return v
}

// Generator sets v = G, the canonical base point, and returns v.
func (v *Point) Generator() *Point {
	one := NewScalar().One()
	dcred.ScalarBaseMultNonConst(&one.s, &v.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	dcred.AddNonConst(&p.p, &q.p, &v.p)
	return v
}

// Double sets v = p + p, and returns v.
func (v *Point) Double(p *Point) *Point {
	dcred.DoubleNonConst(&p.p, &v.p)
	return v
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.p.X.Set(&p.p.X)
	v.p.Y.Set(&p.p.Y).Negate(1)
	v.p.Y.Normalize()
	v.p.Z.Set(&p.p.Z)
	return v
}

// Set sets v = p, and returns v.
func (v *Point) Set(p *Point) *Point {
	v.p.Set(&p.p)
	return v
}

// Equal returns true iff v == p.
func (v *Point) Equal(p *Point) bool {
	if v.IsIdentity() || p.IsIdentity() {
		return v.IsIdentity() == p.IsIdentity()
	}

	var vAff, pAff Point
	vAff.Set(v)
	pAff.Set(p)
	vAff.p.ToAffine()
	pAff.p.ToAffine()

	return vAff.p.X.Equals(&pAff.p.X) && vAff.p.Y.Equals(&pAff.p.Y)
}

// IsIdentity returns true iff v is the point at infinity.
func (v *Point) IsIdentity() bool {
	var z dcred.FieldVal
	z.Set(&v.p.Z)
	z.Normalize()
	return z.IsZero()
}

// ScalarMult sets v = s * p, and returns v.
func (v *Point) ScalarMult(s *Scalar, p *Point) *Point {
	dcred.ScalarMultNonConst(&s.s, &p.p, &v.p)
	return v
}

// ScalarBaseMult sets v = s * G, and returns v.
func (v *Point) ScalarBaseMult(s *Scalar) *Point {
	dcred.ScalarBaseMultNonConst(&s.s, &v.p)
	return v
}

// DoubleScalarMultBasepointVartime sets v = u1*G + u2*p, and returns v.
// This is variable-time in u1, u2, and p, and is intended for use in
// contexts (e.g. VRF/signature verification) where none of the inputs are
// secret.
func DoubleScalarMultBasepointVartime(v *Point, u1 *Scalar, u2 *Scalar, p *Point) *Point {
	var gTerm, pTerm Point
	gTerm.ScalarBaseMult(u1)
	pTerm.ScalarMult(u2, p)
	return v.Add(&gTerm, &pTerm)
}

// ClearCofactor sets v = cofactor * p, and returns v.  secp256k1 has
// cofactor 1, so this is the identity transform, but hash-to-curve calls
// it unconditionally so that the composition stays correct for any curve
// this package might be generalized to in the future.
func (v *Point) ClearCofactor(p *Point) *Point {
	return v.Set(p)
}

// MultiScalarMult sets v = sum(scalars[i] * points[i]), and returns v.
// len(scalars) MUST equal len(points).  This is a direct summation, not an
// optimized multi-scalar-multiplication algorithm (Pedersen vectors in
// this library's intended use are short enough that the difference does
// not matter).
func (v *Point) MultiScalarMult(scalars []*Scalar, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("secp256k1: MultiScalarMult: mismatched argument lengths")
	}

	acc := NewIdentityPoint()
	var term Point
	for i := range scalars {
		term.ScalarMult(scalars[i], points[i])
		acc.Add(acc, &term)
	}

	return v.Set(acc)
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	return new(Point).Generator()
}

// NewIdentityPoint returns a new Point set to the identity (point at infinity).
func NewIdentityPoint() *Point {
	return new(Point).Identity()
}

// NewPointFrom creates a new Point from another.
func NewPointFrom(p *Point) *Point {
	return new(Point).Set(p)
}

// newPointFromAffine builds a Point directly from affine field coordinates,
// without validating that (x, y) satisfies the curve equation; callers
// (the hash-to-curve maps) are responsible for that invariant.
func newPointFromAffine(x, y *dcred.FieldVal) *Point {
	v := new(Point)
	v.p.X.Set(x)
	v.p.Y.Set(y)
	v.p.Z.SetInt(1)
	return v
}
