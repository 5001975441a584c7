// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package montgomery implements the X-only Montgomery ladder used by
// X25519 scalar multiplication on the curve y^2 = x^3 + 486662x^2 + x.
//
// No y-coordinate is ever materialized; every point is carried as a
// projective (X, Z) pair whose affine u-coordinate is X/Z, with Z = 0
// representing the point at infinity.
package montgomery

import "github.com/relaycrypt/x25519/field"

// Point is a projective point (X, Z) on the Montgomery curve.
type Point struct {
	X, Z field.Element
}

// cswap conditionally swaps a and b, limb by limb, without branching on
// bit. bit must be 0 or 1.
func cswap(a, b *Point, bit int) {
	a.X.Swap(&b.X, bit)
	a.Z.Swap(&b.Z, bit)
}

// doubleAdd computes, from a and c and the base point's u-coordinate,
// the double 2*a (into dbl) and the differential sum a+c (into add),
// using only X-coordinates. See RFC 7748 section 4.1.
func doubleAdd(dbl, add *Point, a, c *Point, base *field.Element) {
	var A, B, C, D field.Element
	A.Add(&a.X, &a.Z)      // Xa + Za
	B.Subtract(&a.X, &a.Z) // Xa - Za
	C.Add(&c.X, &c.Z)      // Xc + Zc
	D.Subtract(&c.X, &c.Z) // Xc - Zc

	var E, F field.Element
	E.Multiply(&A, &D)
	F.Multiply(&B, &C)

	var sum, diff, diffSq field.Element
	sum.Add(&E, &F)
	diff.Subtract(&E, &F)
	diffSq.Square(&diff)

	add.X.Square(&sum)
	add.Z.Multiply(base, &diffSq)

	var G, H field.Element
	G.Square(&A)
	H.Square(&B)
	dbl.X.Multiply(&G, &H)

	var GminusH, scaled, sumGH field.Element
	GminusH.Subtract(&G, &H)
	scaled.Mult121665(&GminusH)
	sumGH.Add(&G, &scaled)
	dbl.Z.Multiply(&GminusH, &sumGH)
}

// Ladder computes the projective point whose affine u-coordinate is
// scalar*P, where P has u-coordinate base. scalar is read as 256 bits,
// most significant byte and bit first, and is expected to already be
// clamped by the caller (this package has no notion of clamping).
func Ladder(scalar *[32]byte, base *field.Element) *Point {
	a := new(Point)
	a.X.One()
	a.Z.Zero()

	b := new(Point)
	b.X.Set(base)
	b.Z.One()

	// c and d are scratch for the next iteration's double_add outputs;
	// their initial contents are never read.
	c := new(Point)
	d := new(Point)

	for i := 31; i >= 0; i-- {
		byteVal := scalar[i]
		for j := 7; j >= 0; j-- {
			bit := int((byteVal >> uint(j)) & 1)

			cswap(a, b, bit)
			doubleAdd(c, d, a, b, base)
			cswap(c, d, bit)

			a, c = c, a
			b, d = d, b
		}
	}

	return a
}
