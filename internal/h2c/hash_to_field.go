// Copyright (c) 2024 The secp256k1-vrf Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package h2c

import (
	"crypto/sha256"
	"errors"

	dcred "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"gitlab.com/yawning/secp256k1-vrf/internal/field"
)

// These match the SHA-256-based suites in draft-irtf-cfrg-hash-to-curve:
// bInBytes is the output size of the underlying hash, sInBytes is its
// internal block size, and l is the number of bytes pulled per field
// element (ceil((ceil(log2(p)) + k) / 8) for a 128-bit security margin k
// and secp256k1's 256-bit p).
const (
	bInBytes = sha256.Size
	sInBytes = 64
	l        = 48
)

var errInvalidLen = errors.New("internal/h2c: expand_message_xmd: len_in_bytes out of range")

// expandMessageXMD implements expand_message_xmd from
// draft-irtf-cfrg-hash-to-curve section 5.4.1, using SHA-256.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 || len(dst) > 255 {
		return nil, errInvalidLen
	}

	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	zPad := make([]byte, sInBytes)
	lIBStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	msgPrime := make([]byte, 0, len(zPad)+len(msg)+len(lIBStr)+1+len(dstPrime))
	msgPrime = append(msgPrime, zPad...)
	msgPrime = append(msgPrime, msg...)
	msgPrime = append(msgPrime, lIBStr...)
	msgPrime = append(msgPrime, 0)
	msgPrime = append(msgPrime, dstPrime...)

	b0 := sha256.Sum256(msgPrime)

	h1 := sha256.New()
	h1.Write(b0[:])
	h1.Write([]byte{1})
	h1.Write(dstPrime)
	var bPrev [bInBytes]byte
	copy(bPrev[:], h1.Sum(nil))

	uniformBytes := make([]byte, 0, ell*bInBytes)
	uniformBytes = append(uniformBytes, bPrev[:]...)

	for i := 2; i <= ell; i++ {
		var xored [bInBytes]byte
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}

		hi := sha256.New()
		hi.Write(xored[:])
		hi.Write([]byte{byte(i)})
		hi.Write(dstPrime)
		copy(bPrev[:], hi.Sum(nil))

		uniformBytes = append(uniformBytes, bPrev[:]...)
	}

	return uniformBytes[:lenInBytes], nil
}

// ExpandMessageXMD is the exported form of expandMessageXMD, for callers
// (the VRF's Fiat-Shamir challenge) that need expand_message_xmd's uniform
// bytes reduced against a different modulus than secp256k1's base field.
func ExpandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	return expandMessageXMD(msg, dst, lenInBytes)
}

// HashToField implements hash_to_field(msg, count) using expand_message_xmd
// and reduction mod p, returning count field elements.
func HashToField(msg, dst []byte, count int) ([]*dcred.FieldVal, error) {
	uniformBytes, err := expandMessageXMD(msg, dst, count*l)
	if err != nil {
		return nil, err
	}

	out := make([]*dcred.FieldVal, count)
	for i := 0; i < count; i++ {
		tv := uniformBytes[i*l : (i+1)*l]
		out[i] = field.SetWideBytes(field.New(), tv)
	}

	return out, nil
}
