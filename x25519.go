// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x25519 implements the X25519 function: scalar multiplication on
// the Montgomery curve known as Curve25519. See RFC 7748.
//
// Most users don't need the low-level ScalarMult/ScalarBaseMult pair;
// X25519 is the entry point that matches golang.org/x/crypto/curve25519's
// public shape and additionally rejects the low-order-point degenerate
// case that ScalarMult/ScalarBaseMult silently pass through as an
// all-zero output.
package x25519

import (
	"crypto/subtle"
	"fmt"

	"github.com/relaycrypt/x25519/field"
	"github.com/relaycrypt/x25519/montgomery"
)

const (
	// ScalarSize is the size, in bytes, of a private scalar input.
	ScalarSize = 32
	// PointSize is the size, in bytes, of an encoded Curve25519 point.
	PointSize = 32
)

// Basepoint is the canonical Curve25519 generator, u = 9. Passing this
// exact slice (by identity, not just by value) to X25519 selects the
// public-key-derivation code path.
var Basepoint []byte = basePointBytes[:]

var basePointBytes = [32]byte{9}

func basePointElement() *field.Element {
	e := new(field.Element)
	// basePointBytes has bit 7 of byte 31 clear, so SetBytes cannot fail
	// or alter the value.
	e.SetBytes(basePointBytes[:])
	return e
}

func clampScalar(e *[32]byte) {
	e[0] &= 0xF8
	e[31] &= 0x7F
	e[31] |= 0x40
}

// primitive runs the Montgomery ladder on a clamped copy of scalar
// against the field element base, and serializes the resulting affine
// u-coordinate.
func primitive(scalar *[32]byte, base *field.Element) []byte {
	var e [32]byte
	copy(e[:], scalar[:])
	clampScalar(&e)

	p := montgomery.Ladder(&e, base)

	var zInv, x field.Element
	zInv.Invert(&p.Z)
	x.Multiply(&p.X, &zInv)

	return x.Bytes()
}

// ScalarBaseMult sets dst to the product scalar*B, where B is the
// canonical basepoint u=9. It is always successful: it does not check
// scalar for any special structure.
func ScalarBaseMult(dst, scalar *[32]byte) {
	copy(dst[:], primitive(scalar, basePointElement()))
}

// ScalarMult sets dst to the product scalar*in, where in is the
// u-coordinate of another Curve25519 point, little-endian encoded. It is
// always successful, including for low-order in values, for which dst is
// set to all zeroes; callers needing to detect that case should use
// X25519 instead.
func ScalarMult(dst, scalar, in *[32]byte) {
	base := new(field.Element)
	base.SetBytes(in[:]) // 32-byte input, cannot fail.

	copy(dst[:], primitive(scalar, base))
}

// X25519 returns the result of the scalar multiplication (scalar * point),
// according to RFC 7748 section 5. scalar and point must each be 32
// bytes long.
//
// If point is Basepoint (by slice identity, not merely by value) the
// canonical generator is used via ScalarBaseMult (the same ladder as any
// other point; there is no precomputed table) and no low-order check is
// made. Otherwise, if the resulting shared value is the
// all-zero string -- which happens iff point encoded a low-order point --
// X25519 returns an error instead of the degenerate output, per RFC 7748
// section 6.1's recommendation that implementations check for this.
func X25519(scalar, point []byte) ([]byte, error) {
	if len(scalar) != ScalarSize {
		return nil, fmt.Errorf("x25519: bad scalar length: %d, expected %d", len(scalar), ScalarSize)
	}
	if len(point) != PointSize {
		return nil, fmt.Errorf("x25519: bad point length: %d, expected %d", len(point), PointSize)
	}

	var in [ScalarSize]byte
	copy(in[:], scalar)

	var dst [PointSize]byte
	if len(point) > 0 && &point[0] == &Basepoint[0] {
		ScalarBaseMult(&dst, &in)
		return dst[:], nil
	}

	var base [PointSize]byte
	copy(base[:], point)
	ScalarMult(&dst, &in, &base)

	var zero [PointSize]byte
	if subtle.ConstantTimeCompare(dst[:], zero[:]) == 1 {
		return nil, fmt.Errorf("x25519: bad input point: low order point")
	}
	return dst[:], nil
}
